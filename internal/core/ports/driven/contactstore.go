package driven

import (
	"context"

	"github.com/rolohq/rolo-cli/internal/core/domain"
)

// ContactStore persists contacts. Implementations must reconstruct contacts
// through the domain's smart constructors on load, so a value that escapes
// the store is as valid as one freshly built.
type ContactStore interface {
	// Save stores or updates a contact.
	Save(ctx context.Context, contact domain.Contact) error

	// Get retrieves a contact by ID. Returns domain.ErrNotFound on miss.
	Get(ctx context.Context, id string) (*domain.Contact, error)

	// Delete removes a contact.
	Delete(ctx context.Context, id string) error

	// List returns all contacts, ordered by last name then first name.
	List(ctx context.Context) ([]domain.Contact, error)
}
