package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rolohq/rolo-cli/internal/core/domain"
	"github.com/rolohq/rolo-cli/internal/core/ports/driven"
	"github.com/rolohq/rolo-cli/internal/core/ports/driving"
)

// Ensure ContactService implements the interface.
var _ driving.ContactService = (*ContactService)(nil)

// ContactService manages the contact book. Contacts are immutable values:
// every update loads the current contact, applies a pure domain operation
// and saves the replacement.
type ContactService struct {
	store driven.ContactStore
	now   func() time.Time
}

// NewContactService creates a new contact service.
func NewContactService(store driven.ContactStore) *ContactService {
	return &ContactService{
		store: store,
		now:   time.Now,
	}
}

// Add stores a new contact, minting a UUID when the ID is empty.
func (s *ContactService) Add(ctx context.Context, contact domain.Contact) (domain.Contact, error) {
	if s.store == nil {
		return domain.Contact{}, domain.ErrNotImplemented
	}
	if contact.Primary() == nil {
		return domain.Contact{}, domain.ErrNoContactMethod
	}
	if contact.ID == "" {
		contact.ID = uuid.NewString()
	} else {
		existing, err := s.store.Get(ctx, contact.ID)
		switch {
		case err == nil && existing != nil:
			return domain.Contact{}, domain.ErrAlreadyExists
		case err != nil && !errors.Is(err, domain.ErrNotFound):
			return domain.Contact{}, fmt.Errorf("checking for existing contact: %w", err)
		}
	}
	now := s.now()
	contact.CreatedAt = now
	contact.UpdatedAt = now
	if err := s.store.Save(ctx, contact); err != nil {
		return domain.Contact{}, fmt.Errorf("saving contact: %w", err)
	}
	return contact, nil
}

// Get retrieves a contact by ID.
func (s *ContactService) Get(ctx context.Context, id string) (*domain.Contact, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.store.Get(ctx, id)
}

// List returns all contacts.
func (s *ContactService) List(ctx context.Context) ([]domain.Contact, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.store.List(ctx)
}

// Remove deletes a contact.
func (s *ContactService) Remove(ctx context.Context, id string) error {
	if s.store == nil {
		return domain.ErrNotImplemented
	}
	if _, err := s.store.Get(ctx, id); err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}

// UpdateEmail replaces the contact's email address, resetting verification.
func (s *ContactService) UpdateEmail(ctx context.Context, id string, email domain.EmailAddress) (*domain.Contact, error) {
	return s.apply(ctx, id, func(c domain.Contact) (domain.Contact, error) {
		info, _ := c.EmailInfo()
		return c.WithEmail(info.WithEmail(email)), nil
	})
}

// VerifyEmail marks the contact's email method as verified.
func (s *ContactService) VerifyEmail(ctx context.Context, id string) (*domain.Contact, error) {
	return s.apply(ctx, id, func(c domain.Contact) (domain.Contact, error) {
		info, ok := c.EmailInfo()
		if !ok {
			return domain.Contact{}, fmt.Errorf("contact has no email method: %w", domain.ErrNotFound)
		}
		return c.WithEmail(info.MarkVerified()), nil
	})
}

// UpdatePostal replaces the contact's postal address, resetting validity.
func (s *ContactService) UpdatePostal(ctx context.Context, id string, address domain.PostalAddress) (*domain.Contact, error) {
	return s.apply(ctx, id, func(c domain.Contact) (domain.Contact, error) {
		info, _ := c.PostalInfo()
		return c.WithPostal(info.WithAddress(address)), nil
	})
}

// UpdatePhone replaces the contact's home or work phone number.
func (s *ContactService) UpdatePhone(ctx context.Context, id string, kind domain.MethodKind, number domain.PhoneNumber) (*domain.Contact, error) {
	return s.apply(ctx, id, func(c domain.Contact) (domain.Contact, error) {
		info := domain.PhoneContactInfo{Number: number}
		switch kind {
		case domain.MethodKindHomePhone:
			return c.WithHomePhone(info), nil
		case domain.MethodKindWorkPhone:
			return c.WithWorkPhone(info), nil
		default:
			return domain.Contact{}, fmt.Errorf("%w: %q is not a phone method kind", domain.ErrInvalidInput, kind)
		}
	})
}

// SetPrimary makes the supplied method primary.
func (s *ContactService) SetPrimary(ctx context.Context, id string, method domain.ContactMethod) (*domain.Contact, error) {
	return s.apply(ctx, id, func(c domain.Contact) (domain.Contact, error) {
		return c.SetPrimary(method)
	})
}

// PromoteSecondary makes the secondary at index primary.
func (s *ContactService) PromoteSecondary(ctx context.Context, id string, index int) (*domain.Contact, error) {
	return s.apply(ctx, id, func(c domain.Contact) (domain.Contact, error) {
		return c.PromoteSecondary(index)
	})
}

// apply loads a contact, runs a pure transformation and saves the result.
func (s *ContactService) apply(ctx context.Context, id string, fn func(domain.Contact) (domain.Contact, error)) (*domain.Contact, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	current, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	updated, err := fn(*current)
	if err != nil {
		return nil, err
	}
	updated.UpdatedAt = s.now()
	if err := s.store.Save(ctx, updated); err != nil {
		return nil, fmt.Errorf("saving contact: %w", err)
	}
	return &updated, nil
}
