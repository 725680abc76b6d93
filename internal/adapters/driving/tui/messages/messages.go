// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/rolohq/rolo-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewContacts is the contact list view.
	ViewContacts ViewType = iota
	// ViewDetail shows a single contact with all its methods.
	ViewDetail
	// ViewAdd is the add contact form.
	ViewAdd
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewContacts:
		return "contacts"
	case ViewDetail:
		return "detail"
	case ViewAdd:
		return "add"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ContactsLoaded carries the contact list from the service.
type ContactsLoaded struct {
	Contacts []domain.Contact
	Err      error
}

// ContactSelected signals a contact was selected for the detail view.
type ContactSelected struct {
	Contact domain.Contact
}

// ContactAdded signals a contact was added.
type ContactAdded struct {
	Contact domain.Contact
	Err     error
}

// ContactRemoved signals a contact was removed.
type ContactRemoved struct {
	ID  string
	Err error
}

// ContactUpdated carries a contact after a method update (verify, promote).
type ContactUpdated struct {
	Contact *domain.Contact
	Err     error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
