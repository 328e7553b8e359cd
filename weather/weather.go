package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"go-suraksha/types"
)

// DefaultQuery is used when a request carries neither a text query nor
// coordinates.
const DefaultQuery = "Delhi"

// Client fetches current conditions from the weather provider. It privileges
// availability over correctness: any failure yields the fixed fallback
// report for the default location instead of an error. A single attempt per
// call, no retries.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey, baseURL string, timeout time.Duration) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchCurrent returns the provider report for a free-text query or a
// "lat,lon" pair. The second return value reports whether the data is the
// fallback rather than a live reading.
func (c *Client) FetchCurrent(ctx context.Context, query string) (types.WeatherReport, bool) {
	if query == "" {
		query = DefaultQuery
	}

	report, err := c.fetch(ctx, query)
	if err != nil {
		log.Printf("Weather fetch failed for %q, serving fallback: %v", query, err)
		return FallbackReport(), true
	}
	return report, false
}

// FetchCurrentForLocation fetches conditions at a resolved descriptor's
// coordinates.
func (c *Client) FetchCurrentForLocation(ctx context.Context, desc types.LocationDescriptor) (types.WeatherReport, bool) {
	return c.FetchCurrent(ctx, fmt.Sprintf("%.4f,%.4f", desc.Lat, desc.Lon))
}

func (c *Client) fetch(ctx context.Context, query string) (types.WeatherReport, error) {
	params := url.Values{
		"key": {c.apiKey},
		"q":   {query},
		"aqi": {"no"},
	}
	fullURL := c.baseURL + "/current.json?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return types.WeatherReport{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return types.WeatherReport{}, fmt.Errorf("weather request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.WeatherReport{}, fmt.Errorf("weather provider returned status %d", resp.StatusCode)
	}

	var report types.WeatherReport
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return types.WeatherReport{}, fmt.Errorf("decode weather response: %w", err)
	}
	return report, nil
}

// FallbackReport is the fixed snapshot served when the provider is
// unreachable. Deliberately recognizable placeholder data for Delhi.
func FallbackReport() types.WeatherReport {
	now := time.Now()
	return types.WeatherReport{
		Location: types.WeatherLocation{
			Name:           "Delhi",
			Region:         "Delhi",
			Country:        "India",
			Lat:            28.67,
			Lon:            77.22,
			TzID:           "Asia/Kolkata",
			LocaltimeEpoch: now.Unix(),
			Localtime:      now.Format("2006-01-02 15:04"),
		},
		Current: types.WeatherCurrent{
			LastUpdatedEpoch: now.Unix(),
			LastUpdated:      now.Format("2006-01-02 15:04"),
			TempC:            32.0,
			TempF:            89.6,
			IsDay:            1,
			Condition: types.WeatherCondition{
				Text: "Partly cloudy",
				Icon: "//cdn.weatherapi.com/weather/64x64/day/116.png",
				Code: 1003,
			},
			WindMph:    12.5,
			WindKph:    20.2,
			WindDegree: 280,
			WindDir:    "W",
			PressureMb: 1008.0,
			PrecipMm:   0.0,
			Humidity:   65,
			Cloud:      25,
			FeelslikeC: 34.5,
			FeelslikeF: 94.1,
			VisKm:      10.0,
			UV:         6.0,
			GustKph:    23.0,
		},
	}
}
