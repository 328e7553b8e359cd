package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter_All(t *testing.T) {
	got := Filter("all", "all")
	assert.Len(t, got, 4)
}

func TestFilter_ByType(t *testing.T) {
	got := Filter("", "cyclone")
	require.Len(t, got, 1)
	assert.Equal(t, "cyclone-001", got[0].ID)
}

func TestFilter_ByLocationSubstring(t *testing.T) {
	got := Filter("puri", "")
	require.Len(t, got, 1)
	assert.Equal(t, "cyclone-001", got[0].ID)
}

func TestFilter_ByAffectedArea(t *testing.T) {
	got := Filter("Sambalpur", "")
	require.Len(t, got, 1)
	assert.Equal(t, "earthquake-001", got[0].ID)
}

func TestFilter_LocationAndType(t *testing.T) {
	got := Filter("odisha", "heatwave")
	require.Len(t, got, 1)
	assert.Equal(t, "heatwave-001", got[0].ID)
}

func TestFilter_NoMatch(t *testing.T) {
	assert.Empty(t, Filter("mars", ""))
	assert.Empty(t, Filter("", "tsunami"))
}
