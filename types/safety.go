package types

// ShelterRecord is one entry from the static shelter table. Distance and
// capacity are kept human-formatted, exactly as the table stores them.
type ShelterRecord struct {
	Name     string `json:"name"`
	Distance string `json:"distance"`
	Capacity string `json:"capacity"`
}

// SafetyView is the aggregate a completed search produces: live or fallback
// weather, the AI risk assessment, and nearby shelters. The degraded flags
// tell clients which parts are fallback data rather than live answers.
type SafetyView struct {
	Weather         WeatherSnapshot `json:"weather"`
	Risk            RiskAssessment  `json:"risk"`
	Shelters        []ShelterRecord `json:"shelters"`
	WeatherDegraded bool            `json:"weatherDegraded"`
	RiskDegraded    bool            `json:"riskDegraded"`
}
