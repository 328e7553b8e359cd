package types

type AlertSeverity string

const (
	SeverityMinor    AlertSeverity = "minor"
	SeverityModerate AlertSeverity = "moderate"
	SeveritySevere   AlertSeverity = "severe"
	SeverityExtreme  AlertSeverity = "extreme"
)

// ActiveAlert is the single emergency notice currently broadcast
// system-wide. At most one is held at a time; a process restart loses it.
type ActiveAlert struct {
	ID        string        `json:"id"`
	Type      string        `json:"type"`
	Severity  AlertSeverity `json:"severity"`
	Location  string        `json:"location"`
	Message   string        `json:"message"`
	Timestamp string        `json:"timestamp"`
}

// HistoricalAlert is one record from the static disaster-history table.
type HistoricalAlert struct {
	ID                 string          `json:"id"`
	Type               string          `json:"type"`
	Severity           AlertSeverity   `json:"severity"`
	Location           string          `json:"location"`
	AffectedAreas      []string        `json:"affectedAreas"`
	Timestamp          string          `json:"timestamp"`
	Description        string          `json:"description"`
	SafetyInstructions []string        `json:"safetyInstructions"`
	Shelters           []NamedLocation `json:"shelters"`
}

type NamedLocation struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Capacity int    `json:"capacity"`
}
