package earthquakes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feedWith(features ...Feature) FeatureCollection {
	return FeatureCollection{
		Type:     "FeatureCollection",
		Metadata: map[string]interface{}{"title": "USGS feed"},
		Features: features,
	}
}

func quakeAt(id string, lon, lat float64) Feature {
	return Feature{
		Type:       "Feature",
		Properties: map[string]interface{}{"mag": 4.0, "place": id},
		Geometry:   Geometry{Type: "Point", Coordinates: []float64{lon, lat, 10}},
		ID:         id,
	}
}

func TestCurrent_FiltersToBoundingBox(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(feedWith(
			quakeAt("inside-odisha", 85.8, 20.3),
			quakeAt("inside-north", 77.2, 28.6),
			quakeAt("tokyo", 139.7, 35.7),
			quakeAt("california", -122.4, 37.8),
		)))
	}))
	defer srv.Close()

	s := NewService(srv.URL, 5*time.Second)
	fc, degraded := s.Current(context.Background())

	assert.False(t, degraded)
	require.Len(t, fc.Features, 2)
	assert.Equal(t, "inside-odisha", fc.Features[0].ID)
	assert.Equal(t, "inside-north", fc.Features[1].ID)
}

func TestCurrent_ServesCacheWithoutRefetch(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(feedWith(quakeAt("inside", 85.8, 20.3))))
	}))
	defer srv.Close()

	s := NewService(srv.URL, 5*time.Second)
	_, _ = s.Current(context.Background())
	_, _ = s.Current(context.Background())
	_, _ = s.Current(context.Background())

	assert.Equal(t, int32(1), calls.Load())
}

func TestRefresh_UpstreamFailure_Fallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	s := NewService(srv.URL, 5*time.Second)
	fc, degraded := s.Refresh(context.Background())

	assert.True(t, degraded)
	require.Len(t, fc.Features, 3)
	assert.Equal(t, "mock1", fc.Features[0].ID)
	assert.Equal(t, "Mock Earthquake Data for India", fc.Metadata["title"])
}

func TestRefresh_ReplacesCache(t *testing.T) {
	var fail atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(feedWith(quakeAt("live", 85.8, 20.3))))
	}))
	defer srv.Close()

	s := NewService(srv.URL, 5*time.Second)

	fc, degraded := s.Refresh(context.Background())
	require.False(t, degraded)
	require.Len(t, fc.Features, 1)

	fail.Store(true)
	_, degraded = s.Refresh(context.Background())
	assert.True(t, degraded)

	// The cache now holds the fallback, and Current reports it as degraded.
	fc, degraded = s.Current(context.Background())
	assert.True(t, degraded)
	assert.Equal(t, "mock1", fc.Features[0].ID)
}

func TestFilterToRegion_SkipsMalformedGeometry(t *testing.T) {
	fc := filterToRegion(feedWith(Feature{ID: "broken", Geometry: Geometry{Coordinates: []float64{85.8}}}))
	assert.Empty(t, fc.Features)
}
