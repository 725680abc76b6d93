package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/rolohq/rolo-cli/internal/core/domain"
	"github.com/rolohq/rolo-cli/internal/core/ports/driven"
)

// contactStore implements driven.ContactStore.
type contactStore struct {
	store *Store
}

var _ driven.ContactStore = (*contactStore)(nil)

// methodRecord is the JSON payload stored per contact method. Raw strings
// are stored; loading runs them back through the smart constructors so an
// edited or corrupt row cannot produce an unvalidated domain value.
type methodRecord struct {
	Email    string `json:"email,omitempty"`
	Verified bool   `json:"verified,omitempty"`

	Line1        string `json:"line1,omitempty"`
	Line2        string `json:"line2,omitempty"`
	Line3        string `json:"line3,omitempty"`
	Line4        string `json:"line4,omitempty"`
	State        string `json:"state,omitempty"`
	Zip          string `json:"zip,omitempty"`
	AddressValid bool   `json:"address_valid,omitempty"`

	Phone string `json:"phone,omitempty"`
}

// Save stores or updates a contact and its methods in one transaction.
func (s *contactStore) Save(ctx context.Context, contact domain.Contact) error {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO contacts (id, first_name, middle_initial, last_name, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			first_name = excluded.first_name,
			middle_initial = excluded.middle_initial,
			last_name = excluded.last_name,
			updated_at = excluded.updated_at
	`, contact.ID, contact.Name.First, contact.Name.Middle, contact.Name.Last,
		contact.CreatedAt, contact.UpdatedAt)
	if err != nil {
		return fmt.Errorf("saving contact: %w", err)
	}

	// Methods are replaced wholesale: position 0 is the primary.
	if _, err := tx.ExecContext(ctx, "DELETE FROM contact_methods WHERE contact_id = ?", contact.ID); err != nil {
		return fmt.Errorf("clearing contact methods: %w", err)
	}
	for position, method := range contact.Methods() {
		payload, err := encodeMethod(method)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO contact_methods (contact_id, position, kind, payload)
			VALUES (?, ?, ?, ?)
		`, contact.ID, position, domain.KindOf(method).String(), payload)
		if err != nil {
			return fmt.Errorf("saving contact method: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing contact: %w", err)
	}
	return nil
}

// Get retrieves a contact by ID.
func (s *contactStore) Get(ctx context.Context, id string) (*domain.Contact, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, first_name, middle_initial, last_name, created_at, updated_at
		FROM contacts WHERE id = ?
	`, id)
	contact, err := s.scanContact(ctx, row)
	if err != nil {
		return nil, err
	}
	return contact, nil
}

// Delete removes a contact; methods cascade.
func (s *contactStore) Delete(ctx context.Context, id string) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM contacts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting contact: %w", err)
	}
	return nil
}

// List returns all contacts, ordered by last name then first name.
func (s *contactStore) List(ctx context.Context) ([]domain.Contact, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id FROM contacts
		ORDER BY last_name COLLATE NOCASE, first_name COLLATE NOCASE
	`)
	if err != nil {
		return nil, fmt.Errorf("querying contacts: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning contact id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating contacts: %w", err)
	}

	contacts := make([]domain.Contact, 0, len(ids))
	for _, id := range ids {
		contact, err := s.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, *contact)
	}
	return contacts, nil
}

// scanContact rebuilds a contact from its row plus its method rows.
func (s *contactStore) scanContact(ctx context.Context, row *sql.Row) (*domain.Contact, error) {
	var (
		id, first, middle, last string
		createdAt, updatedAt    sql.NullTime
	)
	if err := row.Scan(&id, &first, &middle, &last, &createdAt, &updatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning contact: %w", err)
	}

	name, err := domain.NewPersonalName(first, middle, last)
	if err != nil {
		return nil, fmt.Errorf("stored name for contact %s: %w", id, err)
	}

	methods, err := s.loadMethods(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(methods) == 0 {
		return nil, fmt.Errorf("contact %s has no stored methods: %w", id, domain.ErrInvalidInput)
	}

	contact, err := domain.NewContact(id, name, methods[0], methods[1:]...)
	if err != nil {
		return nil, fmt.Errorf("rebuilding contact %s: %w", id, err)
	}
	if createdAt.Valid {
		contact.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		contact.UpdatedAt = updatedAt.Time
	}
	return &contact, nil
}

// loadMethods loads a contact's methods in position order.
func (s *contactStore) loadMethods(ctx context.Context, contactID string) ([]domain.ContactMethod, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT kind, payload FROM contact_methods
		WHERE contact_id = ? ORDER BY position
	`, contactID)
	if err != nil {
		return nil, fmt.Errorf("querying contact methods: %w", err)
	}
	defer rows.Close()

	var methods []domain.ContactMethod
	for rows.Next() {
		var kind, payload string
		if err := rows.Scan(&kind, &payload); err != nil {
			return nil, fmt.Errorf("scanning contact method: %w", err)
		}
		method, err := decodeMethod(domain.MethodKind(kind), payload)
		if err != nil {
			return nil, fmt.Errorf("contact %s: %w", contactID, err)
		}
		methods = append(methods, method)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating contact methods: %w", err)
	}
	return methods, nil
}

// methodEncoder builds the stored payload for one method. It implements
// domain.MethodVisitor, so a new method variant cannot compile until this
// encoder handles it.
type methodEncoder struct {
	record methodRecord
}

var _ domain.MethodVisitor = (*methodEncoder)(nil)

// VisitEmail encodes the email payload.
func (e *methodEncoder) VisitEmail(info domain.EmailContactInfo) {
	e.record = methodRecord{Email: info.Email.String(), Verified: info.Verified}
}

// VisitPostal encodes the postal payload.
func (e *methodEncoder) VisitPostal(info domain.PostalContactInfo) {
	e.record = methodRecord{
		Line1:        info.Address.Line1,
		Line2:        info.Address.Line2,
		Line3:        info.Address.Line3,
		Line4:        info.Address.Line4,
		State:        info.Address.State.String(),
		Zip:          info.Address.Zip.String(),
		AddressValid: info.AddressValid,
	}
}

// VisitHomePhone encodes the home phone payload.
func (e *methodEncoder) VisitHomePhone(info domain.PhoneContactInfo) {
	e.record = methodRecord{Phone: info.Number.String()}
}

// VisitWorkPhone encodes the work phone payload.
func (e *methodEncoder) VisitWorkPhone(info domain.PhoneContactInfo) {
	e.record = methodRecord{Phone: info.Number.String()}
}

// encodeMethod serialises a method payload via the visitor.
func encodeMethod(m domain.ContactMethod) (string, error) {
	var enc methodEncoder
	m.Accept(&enc)

	data, err := json.Marshal(enc.record)
	if err != nil {
		return "", fmt.Errorf("marshalling method payload: %w", err)
	}
	return string(data), nil
}

// decodeMethod rebuilds a method through the domain constructors.
func decodeMethod(kind domain.MethodKind, payload string) (domain.ContactMethod, error) {
	var record methodRecord
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		return nil, fmt.Errorf("unmarshalling method payload: %w", err)
	}

	switch kind {
	case domain.MethodKindEmail:
		email, err := domain.NewEmailAddress(record.Email)
		if err != nil {
			return nil, fmt.Errorf("stored email: %w", err)
		}
		return domain.EmailMethod{Info: domain.EmailContactInfo{Email: email, Verified: record.Verified}}, nil

	case domain.MethodKindPostal:
		state, err := domain.NewStateCode(record.State)
		if err != nil {
			return nil, fmt.Errorf("stored state code: %w", err)
		}
		zip, err := domain.NewZipCode(record.Zip)
		if err != nil {
			return nil, fmt.Errorf("stored zip code: %w", err)
		}
		addr, err := domain.NewPostalAddress(record.Line1, record.Line2, record.Line3, record.Line4, state, zip)
		if err != nil {
			return nil, fmt.Errorf("stored address: %w", err)
		}
		return domain.PostalMethod{Info: domain.PostalContactInfo{Address: addr, AddressValid: record.AddressValid}}, nil

	case domain.MethodKindHomePhone, domain.MethodKindWorkPhone:
		number, err := domain.NewPhoneNumber(record.Phone)
		if err != nil {
			return nil, fmt.Errorf("stored phone number: %w", err)
		}
		info := domain.PhoneContactInfo{Number: number}
		if kind == domain.MethodKindHomePhone {
			return domain.HomePhoneMethod{Info: info}, nil
		}
		return domain.WorkPhoneMethod{Info: info}, nil

	default:
		return nil, fmt.Errorf("%w: unknown method kind %q", domain.ErrInvalidInput, kind)
	}
}
