// Package history serves the static record of past disaster alerts.
package history

import (
	"strings"

	"go-suraksha/types"
)

var pastAlerts = []types.HistoricalAlert{
	{
		ID:            "flood-001",
		Type:          "flood",
		Severity:      types.SeverityModerate,
		Location:      "Cuttack District",
		AffectedAreas: []string{"Cuttack", "Choudwar", "Banki"},
		Timestamp:     "2023-08-15T08:30:00Z",
		Description:   "Moderate flooding reported in Cuttack district due to heavy rainfall and rising water levels in Mahanadi River.",
		SafetyInstructions: []string{
			"Move to higher ground immediately if in low-lying areas",
			"Avoid walking or driving through flood waters",
			"Follow evacuation orders if issued by local authorities",
			"Keep emergency supplies ready",
		},
		Shelters: []types.NamedLocation{
			{Name: "Cuttack High School", Location: "MG Road, Cuttack", Capacity: 200},
			{Name: "Government College", Location: "College Square, Cuttack", Capacity: 350},
		},
	},
	{
		ID:            "cyclone-001",
		Type:          "cyclone",
		Severity:      types.SeveritySevere,
		Location:      "Coastal Odisha",
		AffectedAreas: []string{"Puri", "Konark", "Astaranga", "Kakatpur"},
		Timestamp:     "2023-09-20T14:15:00Z",
		Description:   "Severe cyclonic storm approaching coastal Odisha with wind speeds of 120-130 km/h. Expected landfall near Puri within 24 hours.",
		SafetyInstructions: []string{
			"Stay indoors and away from windows",
			"Secure loose objects that could be blown away",
			"Keep emergency supplies including food, water, and medications",
			"Follow evacuation orders immediately if issued",
			"Keep mobile phones charged and stay updated with official alerts",
		},
		Shelters: []types.NamedLocation{
			{Name: "Puri Town Hall", Location: "Grand Road, Puri", Capacity: 500},
			{Name: "Government School", Location: "Beach Road, Puri", Capacity: 300},
		},
	},
	{
		ID:            "earthquake-001",
		Type:          "earthquake",
		Severity:      types.SeverityMinor,
		Location:      "Western Odisha",
		AffectedAreas: []string{"Sambalpur", "Bargarh", "Jharsuguda"},
		Timestamp:     "2023-10-05T03:45:00Z",
		Description:   "Minor earthquake of magnitude 3.5 recorded in Western Odisha. No major damage reported, but aftershocks possible.",
		SafetyInstructions: []string{
			"Drop, cover, and hold on if you feel shaking",
			"Stay away from windows and exterior walls",
			"Be prepared for aftershocks",
			"Check for gas leaks or damage to utilities",
		},
	},
	{
		ID:            "heatwave-001",
		Type:          "heatwave",
		Severity:      types.SeverityExtreme,
		Location:      "Interior Odisha",
		AffectedAreas: []string{"Bolangir", "Titlagarh", "Sonepur", "Boudh"},
		Timestamp:     "2023-05-12T10:00:00Z",
		Description:   "Extreme heatwave conditions with temperatures exceeding 45°C expected to continue for the next 3-4 days.",
		SafetyInstructions: []string{
			"Stay indoors during peak heat hours (11 AM - 4 PM)",
			"Drink plenty of water and stay hydrated",
			"Wear lightweight, light-colored clothing",
			"Check on elderly neighbors and those without air conditioning",
			"Never leave children or pets in parked vehicles",
		},
	},
}

// Filter returns past alerts matching a location substring (checked against
// the location and its affected areas) and an exact type. "all" or an empty
// value disables that filter.
func Filter(location, disasterType string) []types.HistoricalAlert {
	out := make([]types.HistoricalAlert, 0, len(pastAlerts))

	loc := strings.ToLower(strings.TrimSpace(location))
	for _, alert := range pastAlerts {
		if loc != "" && loc != "all" && !matchesLocation(alert, loc) {
			continue
		}
		if disasterType != "" && disasterType != "all" && alert.Type != disasterType {
			continue
		}
		out = append(out, alert)
	}
	return out
}

func matchesLocation(alert types.HistoricalAlert, loc string) bool {
	if strings.Contains(strings.ToLower(alert.Location), loc) {
		return true
	}
	for _, area := range alert.AffectedAreas {
		if strings.Contains(strings.ToLower(area), loc) {
			return true
		}
	}
	return false
}
