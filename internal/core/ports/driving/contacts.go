package driving

import (
	"context"

	"github.com/rolohq/rolo-cli/internal/core/domain"
)

// ContactService manages the contact book. All updates are whole-value
// replacements: the service loads a contact, applies a pure domain
// operation, and saves the result.
type ContactService interface {
	// Add stores a new contact. An empty ID is filled in by the service.
	// Returns the stored contact (with ID and timestamps set).
	Add(ctx context.Context, contact domain.Contact) (domain.Contact, error)

	// Get retrieves a contact by ID.
	Get(ctx context.Context, id string) (*domain.Contact, error)

	// List returns all contacts.
	List(ctx context.Context) ([]domain.Contact, error)

	// Remove deletes a contact.
	Remove(ctx context.Context, id string) error

	// UpdateEmail replaces the contact's email address. The verification
	// flag is reset; a contact without an email method gains one as a
	// secondary.
	UpdateEmail(ctx context.Context, id string, email domain.EmailAddress) (*domain.Contact, error)

	// VerifyEmail marks the contact's email method as verified.
	// Returns ErrNotFound if the contact has no email method.
	VerifyEmail(ctx context.Context, id string) (*domain.Contact, error)

	// UpdatePostal replaces the contact's postal address. The validity
	// flag is reset; a contact without a postal method gains one as a
	// secondary.
	UpdatePostal(ctx context.Context, id string, address domain.PostalAddress) (*domain.Contact, error)

	// UpdatePhone replaces the contact's home or work phone number.
	// kind must be MethodKindHomePhone or MethodKindWorkPhone.
	UpdatePhone(ctx context.Context, id string, kind domain.MethodKind, number domain.PhoneNumber) (*domain.Contact, error)

	// SetPrimary makes the supplied method the contact's primary; the old
	// primary becomes the first secondary.
	SetPrimary(ctx context.Context, id string, method domain.ContactMethod) (*domain.Contact, error)

	// PromoteSecondary makes the secondary at the given index the primary;
	// the old primary is appended to the secondaries.
	PromoteSecondary(ctx context.Context, id string, index int) (*domain.Contact, error)
}
