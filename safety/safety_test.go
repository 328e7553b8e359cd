package safety

import (
	"context"
	"testing"

	"go-suraksha/geocode"
	"go-suraksha/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver struct {
	desc types.LocationDescriptor
	err  error
}

func (s *stubResolver) Resolve(_ context.Context, _ string) (types.LocationDescriptor, error) {
	return s.desc, s.err
}

func (s *stubResolver) ResolveCoords(_ context.Context, _ types.Coordinates) (types.LocationDescriptor, error) {
	return s.desc, s.err
}

type stubWeather struct {
	report   types.WeatherReport
	degraded bool
}

func (s *stubWeather) FetchCurrentForLocation(_ context.Context, _ types.LocationDescriptor) (types.WeatherReport, bool) {
	return s.report, s.degraded
}

type stubAssessor struct {
	assessment types.RiskAssessment
	degraded   bool
}

func (s *stubAssessor) Assess(_ context.Context, _ types.WeatherSnapshot) (types.RiskAssessment, bool) {
	return s.assessment, s.degraded
}

func puriDescriptor() types.LocationDescriptor {
	return types.LocationDescriptor{Name: "Puri", Region: "Odisha", Country: "India", Lat: 19.81, Lon: 85.83}
}

func puriReport() types.WeatherReport {
	return types.WeatherReport{
		Location: types.WeatherLocation{Name: "Puri", Region: "Odisha", Country: "India", Lat: 19.81, Lon: 85.83},
		Current: types.WeatherCurrent{
			TempC:     29.5,
			Humidity:  82,
			WindKph:   46.1,
			Condition: types.WeatherCondition{Text: "Heavy rain"},
		},
	}
}

func highRisk() types.RiskAssessment {
	return types.RiskAssessment{Level: types.RiskHigh, Score: 7, Explanation: "coastal storm"}
}

func TestBuild_HappyPath(t *testing.T) {
	b := NewBuilder(
		&stubResolver{desc: puriDescriptor()},
		&stubWeather{report: puriReport()},
		&stubAssessor{assessment: highRisk()},
	)

	view, err := b.Build(context.Background(), Query{Text: "Puri"})
	require.NoError(t, err)

	assert.Equal(t, "Puri", view.Weather.Location.Name)
	assert.Equal(t, types.RiskHigh, view.Risk.Level)
	require.Len(t, view.Shelters, 3)
	assert.Equal(t, "Puri Town Hall", view.Shelters[0].Name)
	assert.False(t, view.WeatherDegraded)
	assert.False(t, view.RiskDegraded)
}

func TestBuild_UnresolvedLocation(t *testing.T) {
	b := NewBuilder(
		&stubResolver{err: geocode.ErrLocationNotResolved},
		&stubWeather{report: puriReport()},
		&stubAssessor{assessment: highRisk()},
	)

	_, err := b.Build(context.Background(), Query{Text: "Nowhereville"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoWeather)
	assert.ErrorIs(t, err, geocode.ErrLocationNotResolved)
}

func TestBuild_DegradedStagesStillSucceed(t *testing.T) {
	b := NewBuilder(
		&stubResolver{desc: puriDescriptor()},
		&stubWeather{report: puriReport(), degraded: true},
		&stubAssessor{assessment: types.RiskAssessment{Level: types.RiskModerate, Score: 4}, degraded: true},
	)

	view, err := b.Build(context.Background(), Query{Text: "Puri"})
	require.NoError(t, err)
	assert.True(t, view.WeatherDegraded)
	assert.True(t, view.RiskDegraded)
	assert.NotEmpty(t, view.Shelters)
}

func TestBuild_Idempotent(t *testing.T) {
	b := NewBuilder(
		&stubResolver{desc: puriDescriptor()},
		&stubWeather{report: puriReport()},
		&stubAssessor{assessment: highRisk()},
	)

	first, err := b.Build(context.Background(), Query{Text: "Puri"})
	require.NoError(t, err)
	second, err := b.Build(context.Background(), Query{Text: "Puri"})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuild_CoordinateQuery(t *testing.T) {
	b := NewBuilder(
		&stubResolver{desc: puriDescriptor()},
		&stubWeather{report: puriReport()},
		&stubAssessor{assessment: highRisk()},
	)

	view, err := b.Build(context.Background(), Query{Coords: &types.Coordinates{Lat: 19.81, Lon: 85.83}})
	require.NoError(t, err)
	assert.Equal(t, "Puri", view.Weather.Location.Name)
}

func TestBuild_UnknownCityFallsBackToNearbyShelters(t *testing.T) {
	desc := types.LocationDescriptor{Name: "Gopalpur", Lat: 19.26, Lon: 84.91}
	report := puriReport()
	report.Location.Name = "Gopalpur"

	b := NewBuilder(
		&stubResolver{desc: desc},
		&stubWeather{report: report},
		&stubAssessor{assessment: highRisk()},
	)

	view, err := b.Build(context.Background(), Query{Text: "Gopalpur"})
	require.NoError(t, err)
	require.Len(t, view.Shelters, 3)
	assert.Equal(t, "Nearest Community Center", view.Shelters[0].Name)
}
