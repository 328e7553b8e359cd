package earthquakes

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"
)

// Bounding box for India and surrounding areas; everything outside is
// filtered out of the feed.
const (
	minLat = 5.0
	maxLat = 40.0
	minLon = 65.0
	maxLon = 100.0
)

// FeatureCollection is a GeoJSON feature collection as the USGS feed
// delivers it.
type FeatureCollection struct {
	Type     string                 `json:"type"`
	Metadata map[string]interface{} `json:"metadata"`
	Features []Feature              `json:"features"`
}

type Feature struct {
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties"`
	Geometry   Geometry               `json:"geometry"`
	ID         string                 `json:"id"`
}

// Geometry carries [lon, lat, depth].
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// Service fetches the USGS earthquake feed, filters it to the regional
// bounding box and keeps the last good result cached between the cron
// refreshes.
type Service struct {
	feedURL    string
	httpClient *http.Client

	mu       sync.Mutex
	cached   *FeatureCollection
	degraded bool
}

func NewService(feedURL string, timeout time.Duration) *Service {
	return &Service{
		feedURL:    feedURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Current returns the cached collection, fetching on a cold cache. The bool
// reports fallback data.
func (s *Service) Current(ctx context.Context) (FeatureCollection, bool) {
	s.mu.Lock()
	if s.cached != nil {
		fc, degraded := *s.cached, s.degraded
		s.mu.Unlock()
		return fc, degraded
	}
	s.mu.Unlock()

	return s.Refresh(ctx)
}

// Refresh fetches the live feed and replaces the cache. On failure the cache
// is set to the static mock collection so readers always get an answer.
func (s *Service) Refresh(ctx context.Context) (FeatureCollection, bool) {
	fc, err := s.fetch(ctx)
	degraded := false
	if err != nil {
		log.Printf("Earthquake feed refresh failed, serving fallback: %v", err)
		fc = FallbackCollection()
		degraded = true
	}

	s.mu.Lock()
	s.cached = &fc
	s.degraded = degraded
	s.mu.Unlock()

	return fc, degraded
}

func (s *Service) fetch(ctx context.Context) (FeatureCollection, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.feedURL, nil)
	if err != nil {
		return FeatureCollection{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return FeatureCollection{}, fmt.Errorf("earthquake feed request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return FeatureCollection{}, fmt.Errorf("earthquake feed returned status %d", resp.StatusCode)
	}

	var fc FeatureCollection
	if err := json.NewDecoder(resp.Body).Decode(&fc); err != nil {
		return FeatureCollection{}, fmt.Errorf("decode earthquake feed: %w", err)
	}

	return filterToRegion(fc), nil
}

func filterToRegion(fc FeatureCollection) FeatureCollection {
	filtered := fc
	filtered.Features = make([]Feature, 0, len(fc.Features))
	for _, f := range fc.Features {
		if len(f.Geometry.Coordinates) < 2 {
			continue
		}
		lon, lat := f.Geometry.Coordinates[0], f.Geometry.Coordinates[1]
		if lat >= minLat && lat <= maxLat && lon >= minLon && lon <= maxLon {
			filtered.Features = append(filtered.Features, f)
		}
	}
	return filtered
}

// FallbackCollection is the static mock served when the USGS feed is
// unreachable.
func FallbackCollection() FeatureCollection {
	now := time.Now().UnixMilli()
	day := int64(24 * time.Hour / time.Millisecond)
	return FeatureCollection{
		Type: "FeatureCollection",
		Metadata: map[string]interface{}{
			"generated": now,
			"title":     "Mock Earthquake Data for India",
		},
		Features: []Feature{
			{
				Type: "Feature",
				Properties: map[string]interface{}{
					"mag":    4.5,
					"place":  "75km NE of Bhubaneswar, India",
					"time":   now - day,
					"title":  "M 4.5 - 75km NE of Bhubaneswar, India",
					"status": "reviewed",
				},
				Geometry: Geometry{Type: "Point", Coordinates: []float64{86.5, 20.8, 10}},
				ID:       "mock1",
			},
			{
				Type: "Feature",
				Properties: map[string]interface{}{
					"mag":    3.2,
					"place":  "120km W of Kolkata, India",
					"time":   now - 2*day,
					"title":  "M 3.2 - 120km W of Kolkata, India",
					"status": "reviewed",
				},
				Geometry: Geometry{Type: "Point", Coordinates: []float64{87.1, 22.6, 5}},
				ID:       "mock2",
			},
			{
				Type: "Feature",
				Properties: map[string]interface{}{
					"mag":    5.1,
					"place":  "Northern India",
					"time":   now - 4*day,
					"title":  "M 5.1 - Northern India",
					"alert":  "yellow",
					"status": "reviewed",
				},
				Geometry: Geometry{Type: "Point", Coordinates: []float64{77.2, 28.6, 15}},
				ID:       "mock3",
			},
		},
	}
}
