package reports

import (
	"context"
	"fmt"

	"go-suraksha/types"

	"cloud.google.com/go/firestore"
)

const reportsCollection = "reports"

// FirestoreStore persists reports across process restarts.
type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) Save(ctx context.Context, report types.IncidentReport) error {
	_, err := s.client.Collection(reportsCollection).Doc(report.ID).Set(ctx, report)
	if err != nil {
		return fmt.Errorf("save report %s: %w", report.ID, err)
	}
	return nil
}

func (s *FirestoreStore) List(ctx context.Context) ([]types.IncidentReport, error) {
	docs, err := s.client.Collection(reportsCollection).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}

	out := make([]types.IncidentReport, 0, len(docs))
	for _, doc := range docs {
		var report types.IncidentReport
		if err := doc.DataTo(&report); err != nil {
			return nil, fmt.Errorf("decode report %s: %w", doc.Ref.ID, err)
		}
		report.ID = doc.Ref.ID
		out = append(out, report)
	}
	return out, nil
}
