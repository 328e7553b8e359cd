// Package tips serves rule-based safety instructions per disaster type and
// severity. Pure lookup tables, no model call involved.
package tips

// baseTips apply to a disaster type at any severity.
var baseTips = map[string][]string{
	"flood": {
		"Move to higher ground immediately if in low-lying areas",
		"Avoid walking or driving through flood waters",
		"Follow evacuation orders if issued by local authorities",
		"Keep emergency supplies ready",
	},
	"cyclone": {
		"Stay indoors and away from windows",
		"Secure loose objects that could be blown away",
		"Keep emergency supplies including food, water, and medications",
		"Follow evacuation orders immediately if issued",
	},
	"earthquake": {
		"Drop, cover, and hold on if you feel shaking",
		"Stay away from windows and exterior walls",
		"Be prepared for aftershocks",
		"Check for gas leaks or damage to utilities after the shaking stops",
	},
	"heatwave": {
		"Stay in air-conditioned buildings as much as possible",
		"Drink plenty of fluids, even if you don't feel thirsty",
		"Wear lightweight, light-colored, loose-fitting clothing",
		"Check on those at high risk twice a day",
	},
}

// severityTips extend the base set for a given severity.
var severityTips = map[string]map[string][]string{
	"flood": {
		"minor": {"Monitor local news for updates", "Move valuable items to higher levels in your home"},
		"moderate": {
			"Prepare for possible evacuation",
			"Charge mobile devices and keep power banks ready",
			"Fill clean containers with drinking water",
		},
		"severe": {
			"Evacuate immediately if ordered",
			"If trapped, move to the highest level of the building",
			"Signal for help if needed",
			"Do not attempt to swim through fast-moving water",
		},
	},
	"cyclone": {
		"minor": {"Secure outdoor furniture and objects", "Charge electronic devices"},
		"moderate": {
			"Prepare a safe room in your home",
			"Have multiple ways to receive weather alerts",
			"Fill bathtubs and containers with water",
		},
		"severe": {
			"Evacuate immediately if in a coastal area",
			"If unable to evacuate, stay in a small, interior room",
			"Keep mattresses nearby to protect from flying debris",
			"Expect power outages that could last for days",
		},
	},
	"earthquake": {
		"minor": {"Check for small cracks in walls", "Secure items that may have shifted"},
		"moderate": {
			"Check for structural damage before re-entering buildings",
			"Be prepared for aftershocks",
			"Check on neighbors, especially the elderly",
		},
		"severe": {
			"Evacuate damaged buildings immediately",
			"Be aware of potential landslides",
			"Avoid bridges or roads that might be damaged",
			"Prepare for extended disruption to utilities and services",
		},
	},
	"heatwave": {
		"minor": {"Use fans to circulate air", "Take cool showers or baths"},
		"moderate": {
			"Avoid strenuous activities during peak heat hours",
			"Use a buddy system when working in the heat",
			"Know the signs of heat exhaustion and heat stroke",
		},
		"severe": {
			"Seek air-conditioned environments immediately",
			"Never leave children or pets in parked vehicles",
			"Check on elderly neighbors twice daily",
			"If you don't have AC, go to a public cooling center",
		},
	},
}

// For returns the tips for a disaster type and severity. An unknown type
// falls back to the flood set; an unknown severity adds nothing beyond the
// base tips.
func For(disasterType, severity string) []string {
	base, ok := baseTips[disasterType]
	if !ok {
		base = baseTips["flood"]
	}

	out := make([]string, 0, len(base)+4)
	out = append(out, base...)

	if bySeverity, ok := severityTips[disasterType]; ok {
		out = append(out, bySeverity[severity]...)
	}
	return out
}
