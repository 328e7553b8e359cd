package safety

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"go-suraksha/shelters"
	"go-suraksha/types"
)

// ErrNoWeather signals that no weather snapshot could be produced at all,
// which only happens when the location cannot be resolved. Everything past
// that point degrades to fallbacks instead of failing.
var ErrNoWeather = errors.New("no weather available")

// Resolver is the location resolution stage of the pipeline.
type Resolver interface {
	Resolve(ctx context.Context, query string) (types.LocationDescriptor, error)
	ResolveCoords(ctx context.Context, coords types.Coordinates) (types.LocationDescriptor, error)
}

// WeatherFetcher is the current-conditions stage. It cannot fail; the bool
// reports fallback data.
type WeatherFetcher interface {
	FetchCurrentForLocation(ctx context.Context, desc types.LocationDescriptor) (types.WeatherReport, bool)
}

// Assessor is the AI risk stage. It cannot fail; the bool reports fallback
// data.
type Assessor interface {
	Assess(ctx context.Context, snapshot types.WeatherSnapshot) (types.RiskAssessment, bool)
}

// Query is one search: free text or device coordinates.
type Query struct {
	Text   string
	Coords *types.Coordinates
}

// Builder composes resolver, weather, risk and shelter stages into a single
// safety view per search.
type Builder struct {
	resolver Resolver
	weather  WeatherFetcher
	assessor Assessor
}

func NewBuilder(resolver Resolver, weather WeatherFetcher, assessor Assessor) *Builder {
	return &Builder{resolver: resolver, weather: weather, assessor: assessor}
}

// Build runs the pipeline: resolve then fetch weather in sequence, then risk
// assessment and shelter lookup concurrently since neither depends on the
// other. Once a snapshot exists the build always succeeds; risk and shelter
// failures are absorbed by their own fallbacks.
func (b *Builder) Build(ctx context.Context, query Query) (types.SafetyView, error) {
	desc, err := b.resolve(ctx, query)
	if err != nil {
		return types.SafetyView{}, errors.Join(ErrNoWeather, err)
	}

	report, weatherDegraded := b.weather.FetchCurrentForLocation(ctx, desc)
	snapshot := report.Snapshot()
	if weatherDegraded {
		log.Printf("Safety view for %q built on fallback weather", desc.Name)
	}

	view := types.SafetyView{
		Weather:         snapshot,
		WeatherDegraded: weatherDegraded,
	}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		view.Risk, view.RiskDegraded = b.assessor.Assess(ctx, snapshot)
	}()

	go func() {
		defer wg.Done()
		coords := &types.Coordinates{Lat: desc.Lat, Lon: desc.Lon}
		view.Shelters = shelters.Nearest(snapshot.Location.Name, coords)
	}()

	wg.Wait()
	return view, nil
}

func (b *Builder) resolve(ctx context.Context, query Query) (types.LocationDescriptor, error) {
	if query.Coords != nil {
		desc, err := b.resolver.ResolveCoords(ctx, *query.Coords)
		if err != nil {
			return types.LocationDescriptor{}, fmt.Errorf("resolve coordinates: %w", err)
		}
		return desc, nil
	}

	desc, err := b.resolver.Resolve(ctx, query.Text)
	if err != nil {
		return types.LocationDescriptor{}, fmt.Errorf("resolve %q: %w", query.Text, err)
	}
	return desc, nil
}
