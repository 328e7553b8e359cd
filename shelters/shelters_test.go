package shelters

import (
	"testing"

	"go-suraksha/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearest_KnownCity(t *testing.T) {
	list := Nearest("Puri", nil)

	require.Len(t, list, 3)
	assert.Equal(t, "Puri Town Hall", list[0].Name)
	assert.Equal(t, "1.5 km", list[0].Distance)
	assert.Equal(t, "Government School", list[1].Name)
	assert.Equal(t, "Jagannath Temple Complex", list[2].Name)
}

func TestNearest_NormalizesName(t *testing.T) {
	assert.Equal(t, Nearest("Puri", nil), Nearest("  pUrI  ", nil))
	assert.Equal(t, Nearest("delhi", nil), Nearest("Delhi", nil))
}

func TestNearest_UnknownCity_DefaultList(t *testing.T) {
	list := Nearest("Nowhereville", nil)

	require.Len(t, list, 3)
	assert.Equal(t, "Central Community Shelter", list[0].Name)
}

func TestNearest_UnknownCityWithCoords_NearbyList(t *testing.T) {
	coords := &types.Coordinates{Lat: 20.3, Lon: 85.8}
	list := Nearest("Nowhereville", coords)

	require.Len(t, list, 3)
	assert.Equal(t, "Nearest Community Center", list[0].Name)
}

func TestNearest_KnownCityWinsOverCoords(t *testing.T) {
	coords := &types.Coordinates{Lat: 19.8, Lon: 85.8}
	list := Nearest("puri", coords)
	assert.Equal(t, "Puri Town Hall", list[0].Name)
}

func TestNearest_EmptyName(t *testing.T) {
	assert.Equal(t, "Central Community Shelter", Nearest("", nil)[0].Name)
	assert.Equal(t, "Nearest Community Center", Nearest("", &types.Coordinates{Lat: 1, Lon: 1})[0].Name)
}
