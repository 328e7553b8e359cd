package shelters

import (
	"strings"

	"go-suraksha/types"
)

// cityShelters maps normalized city names to their shelter lists. Each list
// is already distance-sorted; Nearest returns it verbatim.
var cityShelters = map[string][]types.ShelterRecord{
	"mumbai": {
		{Name: "Mumbai City Hall", Distance: "2.5 km", Capacity: "500 people"},
		{Name: "Andheri Sports Complex", Distance: "4.8 km", Capacity: "750 people"},
		{Name: "Juhu Municipal School", Distance: "6.2 km", Capacity: "300 people"},
	},
	"delhi": {
		{Name: "Delhi Community Center", Distance: "1.8 km", Capacity: "600 people"},
		{Name: "Connaught Place Shelter", Distance: "3.5 km", Capacity: "450 people"},
		{Name: "Nehru Stadium", Distance: "7.0 km", Capacity: "1200 people"},
	},
	"kolkata": {
		{Name: "Salt Lake Stadium", Distance: "4.2 km", Capacity: "800 people"},
		{Name: "Kolkata Municipal School", Distance: "2.9 km", Capacity: "350 people"},
		{Name: "Eden Gardens Complex", Distance: "5.5 km", Capacity: "650 people"},
	},
	"chennai": {
		{Name: "Marina Beach Shelter", Distance: "3.1 km", Capacity: "400 people"},
		{Name: "Chennai Central Stadium", Distance: "5.3 km", Capacity: "700 people"},
		{Name: "T Nagar Community Hall", Distance: "2.7 km", Capacity: "250 people"},
	},
	"bangalore": {
		{Name: "Cubbon Park Shelter", Distance: "2.3 km", Capacity: "350 people"},
		{Name: "Bangalore City Hall", Distance: "4.1 km", Capacity: "500 people"},
		{Name: "Electronic City Campus", Distance: "8.5 km", Capacity: "600 people"},
	},
	"hyderabad": {
		{Name: "Hussain Sagar Shelter", Distance: "3.7 km", Capacity: "450 people"},
		{Name: "HITEC City Complex", Distance: "6.2 km", Capacity: "550 people"},
		{Name: "Charminar Community Center", Distance: "2.9 km", Capacity: "300 people"},
	},
	"bhubaneswar": {
		{Name: "Bhubaneswar Community Center", Distance: "3.2 km", Capacity: "250 people"},
		{Name: "Kalinga Stadium", Distance: "5.7 km", Capacity: "1000 people"},
		{Name: "KIIT University Campus", Distance: "8.1 km", Capacity: "500 people"},
	},
	"cuttack": {
		{Name: "Cuttack High School", Distance: "2.1 km", Capacity: "200 people"},
		{Name: "Government College", Distance: "3.5 km", Capacity: "350 people"},
		{Name: "Barabati Stadium", Distance: "4.8 km", Capacity: "800 people"},
	},
	"puri": {
		{Name: "Puri Town Hall", Distance: "1.5 km", Capacity: "500 people"},
		{Name: "Government School", Distance: "2.8 km", Capacity: "300 people"},
		{Name: "Jagannath Temple Complex", Distance: "3.2 km", Capacity: "450 people"},
	},
}

// nearbyFallback is served when only coordinates are known. The coordinates
// are not used for distance computation.
var nearbyFallback = []types.ShelterRecord{
	{Name: "Nearest Community Center", Distance: "4.3 km", Capacity: "400 people"},
	{Name: "Regional Emergency Shelter", Distance: "6.8 km", Capacity: "650 people"},
	{Name: "District School Complex", Distance: "9.2 km", Capacity: "550 people"},
}

var defaultFallback = []types.ShelterRecord{
	{Name: "Central Community Shelter", Distance: "5.0 km", Capacity: "500 people"},
	{Name: "Regional Emergency Center", Distance: "7.5 km", Capacity: "600 people"},
	{Name: "National Disaster Relief Camp", Distance: "10.0 km", Capacity: "800 people"},
}

// Nearest returns the shelter list for a location name, matching the
// lower-cased, trimmed name exactly against the city table. coords may be
// nil; when present and the name has no match, the generic nearby list comes
// back. Pure lookup, no network call.
func Nearest(locationName string, coords *types.Coordinates) []types.ShelterRecord {
	normalized := strings.ToLower(strings.TrimSpace(locationName))

	if list, ok := cityShelters[normalized]; ok {
		return list
	}
	if coords != nil {
		return nearbyFallback
	}
	return defaultFallback
}
