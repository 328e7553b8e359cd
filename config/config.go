package config

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// Config holds all service settings, populated from environment variables.
// Provider credentials are required up front so a missing key fails at
// startup instead of on the first user search.
type Config struct {
	Addr string

	WeatherAPIKey  string
	WeatherBaseURL string

	AIAPIKey  string
	AIBaseURL string
	AIModel   string
	ChatModel string

	MapsAPIKey string

	TwilioSID        string
	TwilioAuthToken  string
	TwilioFromNumber string

	// Optional; empty means in-memory stores only.
	FirebaseCredentials string
	// Optional; empty disables entity extraction on incident reports.
	NaturalLanguageCredentials string

	EarthquakeFeedURL string
	UpstreamTimeout   time.Duration
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads configuration from the environment, applying defaults where
// a value is genuinely optional.
func Load() (*Config, error) {
	cfg := &Config{
		Addr:                       envOrDefault("ADDR", ":8080"),
		WeatherAPIKey:              os.Getenv("WEATHER_API_KEY"),
		WeatherBaseURL:             envOrDefault("WEATHER_BASE_URL", "https://api.weatherapi.com/v1"),
		AIAPIKey:                   os.Getenv("AI_API_KEY"),
		AIBaseURL:                  envOrDefault("AI_BASE_URL", "https://openrouter.ai/api/v1"),
		AIModel:                    envOrDefault("AI_MODEL", "anthropic/claude-3-opus:beta"),
		ChatModel:                  envOrDefault("AI_CHAT_MODEL", "anthropic/claude-3-haiku:beta"),
		MapsAPIKey:                 os.Getenv("MAPS_CREDENTIALS"),
		TwilioSID:                  os.Getenv("TWILIO_SID"),
		TwilioAuthToken:            os.Getenv("TWILIO_TOKEN"),
		TwilioFromNumber:           os.Getenv("TWILIO_PHONE_NUMBER"),
		FirebaseCredentials:        os.Getenv("FIREBASE_CREDENTIALS"),
		NaturalLanguageCredentials: os.Getenv("NATURAL_LANGUAGE_CREDENTIALS"),
		EarthquakeFeedURL:          envOrDefault("EARTHQUAKE_FEED_URL", "https://earthquake.usgs.gov/earthquakes/feed/v1.0/summary/2.5_week.geojson"),
	}

	timeoutStr := envOrDefault("UPSTREAM_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		return nil, fmt.Errorf("invalid UPSTREAM_TIMEOUT %q", timeoutStr)
	}
	cfg.UpstreamTimeout = timeout

	if cfg.WeatherAPIKey == "" {
		return nil, errors.New("WEATHER_API_KEY is required")
	}
	if cfg.AIAPIKey == "" {
		return nil, errors.New("AI_API_KEY is required")
	}
	if cfg.MapsAPIKey == "" {
		return nil, errors.New("MAPS_CREDENTIALS is required")
	}
	if cfg.TwilioSID == "" || cfg.TwilioAuthToken == "" || cfg.TwilioFromNumber == "" {
		return nil, errors.New("TWILIO_SID, TWILIO_TOKEN and TWILIO_PHONE_NUMBER are required")
	}

	return cfg, nil
}
