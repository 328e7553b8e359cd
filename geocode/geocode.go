package geocode

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	"go-suraksha/types"

	"googlemaps.github.io/maps"
)

// ErrLocationNotResolved is returned when the provider has no match for a
// query. There is deliberately no fallback location: the UI should show
// "no match" rather than silently substituting a default city.
var ErrLocationNotResolved = errors.New("location not resolved")

// mapsClient is a singleton maps client instance.
var (
	mapsClient *maps.Client
	clientOnce sync.Once
)

// InitMapsClient initializes and returns a singleton Google Maps client.
func InitMapsClient() (*maps.Client, error) {
	var err error
	clientOnce.Do(func() {
		apiKey := os.Getenv("MAPS_CREDENTIALS")
		if apiKey == "" {
			err = fmt.Errorf("MAPS_CREDENTIALS environment variable not set")
			return
		}
		mapsClient, err = maps.NewClient(maps.WithAPIKey(apiKey))
		if err != nil {
			log.Fatalf("Failed to create maps client: %v", err)
		}
	})
	return mapsClient, err
}

// Resolver turns free-text queries or device coordinates into canonical
// location descriptors using the Google Maps Geocoding API.
type Resolver struct {
	client *maps.Client
}

func NewResolver(client *maps.Client) *Resolver {
	return &Resolver{client: client}
}

// Resolve geocodes a free-text query. The query must be non-empty after
// trimming. Either a fully-populated descriptor or an error comes back,
// never a partial one.
func (r *Resolver) Resolve(ctx context.Context, query string) (types.LocationDescriptor, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return types.LocationDescriptor{}, fmt.Errorf("empty location query")
	}

	results, err := r.client.Geocode(ctx, &maps.GeocodingRequest{Address: query})
	if err != nil {
		return types.LocationDescriptor{}, fmt.Errorf("geocode %q: %w", query, err)
	}
	if len(results) == 0 {
		return types.LocationDescriptor{}, ErrLocationNotResolved
	}

	desc := descriptorFromResult(results[0])
	if desc.Name == "" {
		return types.LocationDescriptor{}, ErrLocationNotResolved
	}
	return desc, nil
}

// ResolveCoords reverse-geocodes device coordinates.
func (r *Resolver) ResolveCoords(ctx context.Context, coords types.Coordinates) (types.LocationDescriptor, error) {
	if !coords.Valid() {
		return types.LocationDescriptor{}, fmt.Errorf("coordinates out of range: %.4f,%.4f", coords.Lat, coords.Lon)
	}

	results, err := r.client.Geocode(ctx, &maps.GeocodingRequest{
		LatLng: &maps.LatLng{Lat: coords.Lat, Lng: coords.Lon},
	})
	if err != nil {
		return types.LocationDescriptor{}, fmt.Errorf("reverse geocode: %w", err)
	}
	if len(results) == 0 {
		return types.LocationDescriptor{}, ErrLocationNotResolved
	}

	desc := descriptorFromResult(results[0])
	if desc.Name == "" {
		return types.LocationDescriptor{}, ErrLocationNotResolved
	}
	return desc, nil
}

func descriptorFromResult(result maps.GeocodingResult) types.LocationDescriptor {
	desc := types.LocationDescriptor{
		Lat: result.Geometry.Location.Lat,
		Lon: result.Geometry.Location.Lng,
	}

	for _, comp := range result.AddressComponents {
		for _, t := range comp.Types {
			switch t {
			case "locality", "postal_town":
				if desc.Name == "" {
					desc.Name = comp.LongName
				}
			case "administrative_area_level_1":
				desc.Region = comp.LongName
			case "country":
				desc.Country = comp.LongName
			}
		}
	}

	// Some results carry no locality component (e.g. a bare district);
	// fall back to the leading segment of the formatted address.
	if desc.Name == "" && result.FormattedAddress != "" {
		desc.Name = strings.TrimSpace(strings.SplitN(result.FormattedAddress, ",", 2)[0])
	}

	return desc
}
