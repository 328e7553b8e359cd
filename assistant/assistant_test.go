package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReply_PrependsSystemPrompt(t *testing.T) {
	var gotMessages []map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Messages []map[string]string `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotMessages = req.Messages

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "Stay calm and follow official guidance."}},
			},
		})
	}))
	defer srv.Close()

	a := New("test-key", srv.URL, "test-model")
	reply, err := a.Reply(context.Background(), []Message{{Role: "user", Content: "Is a cyclone dangerous?"}})

	require.NoError(t, err)
	assert.Equal(t, "assistant", reply.Role)
	assert.Contains(t, reply.Content, "Stay calm")

	require.Len(t, gotMessages, 2)
	assert.Equal(t, "system", gotMessages[0]["role"])
	assert.Contains(t, gotMessages[0]["content"], "disaster management assistant")
	assert.Equal(t, "user", gotMessages[1]["role"])
}

func TestReply_UpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	a := New("test-key", srv.URL, "test-model")
	_, err := a.Reply(context.Background(), []Message{{Role: "user", Content: "hello"}})
	require.Error(t, err)
}

func TestReply_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	a := New("test-key", srv.URL, "test-model")
	_, err := a.Reply(context.Background(), []Message{{Role: "user", Content: "hello"}})
	require.Error(t, err)
}
