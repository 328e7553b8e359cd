package registry

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_AddAndList(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	added, err := s.Add(ctx, "+919876543210")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = s.Add(ctx, "+911234567890")
	require.NoError(t, err)
	assert.True(t, added)

	all, err := s.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"+911234567890", "+919876543210"}, all)
}

func TestMemoryStore_Deduplicates(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	added, err := s.Add(ctx, "+919876543210")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = s.Add(ctx, "+919876543210")
	require.NoError(t, err)
	assert.False(t, added)

	all, err := s.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestMemoryStore_ConcurrentAdds(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.Add(ctx, "+919876543210")
			_, _ = s.Add(ctx, "+911234567890")
		}()
	}
	wg.Wait()

	all, err := s.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
