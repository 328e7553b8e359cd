// Package reports handles citizen-submitted incident reports: validation,
// best-effort location enrichment, and storage.
package reports

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"go-suraksha/nlp"
	"go-suraksha/sms"
	"go-suraksha/types"

	language "cloud.google.com/go/language/apiv2"
	"github.com/google/uuid"
)

// Store persists incident reports.
type Store interface {
	Save(ctx context.Context, report types.IncidentReport) error
	List(ctx context.Context) ([]types.IncidentReport, error)
}

// MemoryStore keeps reports in process memory, newest last.
type MemoryStore struct {
	mu      sync.Mutex
	reports []types.IncidentReport
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Save(_ context.Context, report types.IncidentReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports = append(s.reports, report)
	return nil
}

func (s *MemoryStore) List(_ context.Context) ([]types.IncidentReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.IncidentReport, len(s.reports))
	copy(out, s.reports)
	return out, nil
}

// locationResolver is the slice of the geocoder this package needs.
type locationResolver interface {
	Resolve(ctx context.Context, query string) (types.LocationDescriptor, error)
}

// Service validates and enriches reports before storing them. The language
// client is optional; without it reports skip entity extraction.
type Service struct {
	store    Store
	resolver locationResolver
	lang     *language.Client
}

func NewService(store Store, resolver locationResolver, lang *language.Client) *Service {
	return &Service{store: store, resolver: resolver, lang: lang}
}

// Submit validates the report, enriches it with extracted place names and
// coordinates, and stores it. Enrichment is best-effort: a failed geocode or
// entity extraction is logged, never fatal to the submission.
func (s *Service) Submit(ctx context.Context, report types.IncidentReport) (types.IncidentReport, error) {
	if strings.TrimSpace(report.Name) == "" {
		return types.IncidentReport{}, fmt.Errorf("reporter name is required")
	}
	if strings.TrimSpace(report.Location) == "" {
		return types.IncidentReport{}, fmt.Errorf("location is required")
	}
	if strings.TrimSpace(report.Description) == "" {
		return types.IncidentReport{}, fmt.Errorf("description is required")
	}
	if strings.TrimSpace(report.DisasterType) == "" {
		return types.IncidentReport{}, fmt.Errorf("disaster type is required")
	}
	if report.Phone != "" {
		normalized, err := sms.NormalizePhoneNumber(report.Phone)
		if err != nil {
			return types.IncidentReport{}, err
		}
		report.Phone = normalized
	}

	report.ID = uuid.New().String()
	report.SubmittedAt = time.Now().UTC().Format(time.RFC3339)

	if s.lang != nil {
		entities, err := nlp.AnalyzeEntities(ctx, s.lang, report.Description)
		if err != nil {
			log.Printf("Entity extraction failed for report %s: %v", report.ID, err)
		} else {
			report.Places = nlp.PlaceNames(entities)
		}
	}

	if s.resolver != nil {
		desc, err := s.resolver.Resolve(ctx, report.Location)
		if err != nil {
			log.Printf("Could not geocode report location %q: %v", report.Location, err)
		} else {
			report.Lat = desc.Lat
			report.Lon = desc.Lon
		}
	}

	if err := s.store.Save(ctx, report); err != nil {
		return types.IncidentReport{}, fmt.Errorf("save report: %w", err)
	}

	log.Printf("Incident report %s stored (%s at %s)", report.ID, report.DisasterType, report.Location)
	return report, nil
}

// List returns all stored reports.
func (s *Service) List(ctx context.Context) ([]types.IncidentReport, error) {
	return s.store.List(ctx)
}
