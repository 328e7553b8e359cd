package types

// WeatherReport mirrors the provider's current-conditions payload. Handlers
// pass it through unchanged so existing clients keep working.
type WeatherReport struct {
	Location WeatherLocation `json:"location"`
	Current  WeatherCurrent  `json:"current"`
}

type WeatherLocation struct {
	Name           string  `json:"name"`
	Region         string  `json:"region"`
	Country        string  `json:"country"`
	Lat            float64 `json:"lat"`
	Lon            float64 `json:"lon"`
	TzID           string  `json:"tz_id"`
	LocaltimeEpoch int64   `json:"localtime_epoch"`
	Localtime      string  `json:"localtime"`
}

type WeatherCurrent struct {
	LastUpdatedEpoch int64            `json:"last_updated_epoch"`
	LastUpdated      string           `json:"last_updated"`
	TempC            float64          `json:"temp_c"`
	TempF            float64          `json:"temp_f"`
	IsDay            int              `json:"is_day"`
	Condition        WeatherCondition `json:"condition"`
	WindMph          float64          `json:"wind_mph"`
	WindKph          float64          `json:"wind_kph"`
	WindDegree       int              `json:"wind_degree"`
	WindDir          string           `json:"wind_dir"`
	PressureMb       float64          `json:"pressure_mb"`
	PrecipMm         float64          `json:"precip_mm"`
	Humidity         int              `json:"humidity"`
	Cloud            int              `json:"cloud"`
	FeelslikeC       float64          `json:"feelslike_c"`
	FeelslikeF       float64          `json:"feelslike_f"`
	VisKm            float64          `json:"vis_km"`
	UV               float64          `json:"uv"`
	GustKph          float64          `json:"gust_kph"`
}

type WeatherCondition struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
	Code int    `json:"code"`
}

// WeatherSnapshot is the normalized view of a report consumed by the risk
// assessor and the safety view. Created per search, discarded after.
type WeatherSnapshot struct {
	Condition       string             `json:"condition"`
	TemperatureC    float64            `json:"temperatureC"`
	HumidityPct     int                `json:"humidityPct"`
	WindKph         float64            `json:"windKph"`
	PrecipitationMm float64            `json:"precipitationMm"`
	FeelsLikeC      float64            `json:"feelsLikeC"`
	Location        LocationDescriptor `json:"location"`
}

// Snapshot normalizes a provider report.
func (r WeatherReport) Snapshot() WeatherSnapshot {
	return WeatherSnapshot{
		Condition:       r.Current.Condition.Text,
		TemperatureC:    r.Current.TempC,
		HumidityPct:     r.Current.Humidity,
		WindKph:         r.Current.WindKph,
		PrecipitationMm: r.Current.PrecipMm,
		FeelsLikeC:      r.Current.FeelslikeC,
		Location: LocationDescriptor{
			Name:      r.Location.Name,
			Region:    r.Location.Region,
			Country:   r.Location.Country,
			Lat:       r.Location.Lat,
			Lon:       r.Location.Lon,
			LocalTime: r.Location.Localtime,
		},
	}
}
