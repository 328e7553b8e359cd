package types

// IncidentReport is a citizen-submitted report of an ongoing incident.
type IncidentReport struct {
	ID           string   `firestore:"-" json:"id"`
	Name         string   `firestore:"name" json:"name"`
	Phone        string   `firestore:"phone" json:"phone"`
	DisasterType string   `firestore:"disasterType" json:"disasterType"`
	Location     string   `firestore:"location" json:"location"`
	Description  string   `firestore:"description" json:"description"`
	SubmittedAt  string   `firestore:"submittedAt" json:"submittedAt"`
	Lat          float64  `firestore:"lat" json:"lat"`
	Lon          float64  `firestore:"lon" json:"lon"`
	Places       []string `firestore:"places" json:"places,omitempty"`
}

// Entity represents a named entity detected in report text.
type Entity struct {
	Name     string            `json:"name"`
	Type     string            `json:"type"`
	Metadata map[string]string `json:"metadata"`
	Mentions []EntityMention   `json:"mentions"`
}

// EntityMention holds details about an entity mention.
type EntityMention struct {
	Content     string  `json:"content"`
	BeginOffset int32   `json:"begin_offset"`
	Probability float32 `json:"probability"`
}
