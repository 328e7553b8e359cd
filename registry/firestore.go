package registry

import (
	"context"
	"fmt"

	"go-suraksha/db"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const registrationsCollection = "registrations"

// FirestoreStore persists registrations so they survive a process restart.
// Document IDs are hashed numbers, which makes Add naturally idempotent.
type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) Add(ctx context.Context, number string) (bool, error) {
	docRef := s.client.Collection(registrationsCollection).Doc(db.HashString(number))

	_, err := docRef.Get(ctx)
	if err == nil {
		return false, nil
	}
	if status.Code(err) != codes.NotFound {
		return false, fmt.Errorf("check registration: %w", err)
	}

	_, err = docRef.Set(ctx, map[string]interface{}{"phoneNumber": number})
	if err != nil {
		return false, fmt.Errorf("save registration: %w", err)
	}
	return true, nil
}

func (s *FirestoreStore) All(ctx context.Context) ([]string, error) {
	docs, err := s.client.Collection(registrationsCollection).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}

	numbers := make([]string, 0, len(docs))
	for _, doc := range docs {
		if n, ok := doc.Data()["phoneNumber"].(string); ok && n != "" {
			numbers = append(numbers, n)
		}
	}
	return numbers, nil
}
