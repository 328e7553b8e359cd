package registry

import (
	"context"
	"sort"
	"sync"
)

// Store holds the set of registered phone numbers. Registration is
// append-only and de-duplicated; there is no removal operation.
type Store interface {
	// Add registers a number, reporting whether it was newly added.
	Add(ctx context.Context, number string) (bool, error)
	// All returns every registered number.
	All(ctx context.Context) ([]string, error)
}

// MemoryStore is the default mutex-guarded in-process store. Contents are
// lost on restart.
type MemoryStore struct {
	mu      sync.Mutex
	numbers map[string]struct{}
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{numbers: make(map[string]struct{})}
}

func (s *MemoryStore) Add(_ context.Context, number string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.numbers[number]; ok {
		return false, nil
	}
	s.numbers[number] = struct{}{}
	return true, nil
}

func (s *MemoryStore) All(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, 0, len(s.numbers))
	for n := range s.numbers {
		out = append(out, n)
	}
	sort.Strings(out)
	return out, nil
}
