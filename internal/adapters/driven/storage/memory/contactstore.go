// Package memory provides in-memory implementations of the driven store
// ports, used by tests and as a fallback when no data directory is
// configured.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/rolohq/rolo-cli/internal/core/domain"
	"github.com/rolohq/rolo-cli/internal/core/ports/driven"
)

// Ensure ContactStore implements the interface.
var _ driven.ContactStore = (*ContactStore)(nil)

// ContactStore is an in-memory implementation of driven.ContactStore.
// Contacts are value types, so storing copies in the map is enough to keep
// callers from mutating shared state.
type ContactStore struct {
	mu       sync.RWMutex
	contacts map[string]domain.Contact
}

// NewContactStore creates a new in-memory contact store.
func NewContactStore() *ContactStore {
	return &ContactStore{
		contacts: make(map[string]domain.Contact),
	}
}

// Save stores or updates a contact.
func (s *ContactStore) Save(_ context.Context, contact domain.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contacts[contact.ID] = contact
	return nil
}

// Get retrieves a contact by ID.
func (s *ContactStore) Get(_ context.Context, id string) (*domain.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	contact, ok := s.contacts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &contact, nil
}

// Delete removes a contact.
func (s *ContactStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.contacts, id)
	return nil
}

// List returns all contacts, ordered by last name then first name.
func (s *ContactStore) List(_ context.Context) ([]domain.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Contact, 0, len(s.contacts))
	for id := range s.contacts {
		result = append(result, s.contacts[id])
	}
	sort.Slice(result, func(i, j int) bool {
		li, lj := strings.ToLower(result[i].Name.Last), strings.ToLower(result[j].Name.Last)
		if li != lj {
			return li < lj
		}
		return strings.ToLower(result[i].Name.First) < strings.ToLower(result[j].Name.First)
	})
	return result, nil
}
