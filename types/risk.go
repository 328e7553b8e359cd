package types

// RiskLevel is the severity scale used across AI analysis and the chat
// assistant's system prompt.
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskHigh     RiskLevel = "High"
	RiskSevere   RiskLevel = "Severe"
	RiskExtreme  RiskLevel = "Extreme"

	// RiskUnknown marks an assessment where the model answered but the
	// payload did not parse. Distinct from the network-failure fallback.
	RiskUnknown RiskLevel = "Unknown"
)

// Known reports whether l is one of the five defined scale values.
func (l RiskLevel) Known() bool {
	switch l {
	case RiskLow, RiskModerate, RiskHigh, RiskSevere, RiskExtreme:
		return true
	}
	return false
}

type RiskAssessment struct {
	Level           RiskLevel `json:"riskLevel"`
	Score           int       `json:"riskScore"`
	Explanation     string    `json:"explanation"`
	Hazards         []string  `json:"potentialHazards"`
	Recommendations []string  `json:"safetyRecommendations"`
}
