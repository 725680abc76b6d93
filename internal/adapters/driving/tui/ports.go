// Package tui provides an interactive terminal user interface for rolo.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/rolohq/rolo-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Contacts manages the contact book.
	Contacts driving.ContactService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(contacts driving.ContactService) *Ports {
	return &Ports{
		Contacts: contacts,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Contacts == nil {
		return ErrMissingContactService
	}
	return nil
}
