// Package contacts provides the contact list view component for the TUI.
package contacts

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rolohq/rolo-cli/internal/adapters/driving/tui/messages"
	"github.com/rolohq/rolo-cli/internal/adapters/driving/tui/styles"
	"github.com/rolohq/rolo-cli/internal/core/domain"
	"github.com/rolohq/rolo-cli/internal/core/ports/driving"
)

// View is the contact list view.
type View struct {
	styles         *styles.Styles
	contactService driving.ContactService

	contacts []domain.Contact
	selected int
	width    int
	height   int
	ready    bool
	err      error
	loading  bool
}

// NewView creates a new contact list view.
func NewView(s *styles.Styles, contactService driving.ContactService) *View {
	return &View{
		styles:         s,
		contactService: contactService,
		contacts:       []domain.Contact{},
	}
}

// Init initialises the view and loads contacts.
func (v *View) Init() tea.Cmd {
	v.loading = true
	return v.loadContacts()
}

// loadContacts returns a command that loads contacts from the service.
func (v *View) loadContacts() tea.Cmd {
	return func() tea.Msg {
		if v.contactService == nil {
			return messages.ContactsLoaded{Err: fmt.Errorf("contact service not available")}
		}

		contacts, err := v.contactService.List(context.Background())
		return messages.ContactsLoaded{Contacts: contacts, Err: err}
	}
}

// Update handles messages for the contact list view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.ContactsLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.contacts = msg.Contacts
			v.err = nil
			if v.selected >= len(v.contacts) {
				v.selected = 0
			}
		}
		return v, nil

	case messages.ContactRemoved:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		return v, v.loadContacts()
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case "down", "j":
		if v.selected < len(v.contacts)-1 {
			v.selected++
		}
	case "enter":
		if len(v.contacts) > 0 && v.selected < len(v.contacts) {
			contact := v.contacts[v.selected]
			return v, func() tea.Msg {
				return messages.ContactSelected{Contact: contact}
			}
		}
	case "a":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewAdd}
		}
	case "d", "delete", "backspace":
		if len(v.contacts) > 0 && v.selected < len(v.contacts) {
			return v, v.removeContact(v.contacts[v.selected].ID)
		}
	case "r":
		v.loading = true
		return v, v.loadContacts()
	case "q":
		return v, func() tea.Msg {
			return messages.Quit{}
		}
	}

	return v, nil
}

// removeContact returns a command that removes a contact.
func (v *View) removeContact(id string) tea.Cmd {
	return func() tea.Msg {
		if v.contactService == nil {
			return messages.ContactRemoved{ID: id, Err: fmt.Errorf("contact service not available")}
		}

		err := v.contactService.Remove(context.Background(), id)
		return messages.ContactRemoved{ID: id, Err: err}
	}
}

// View renders the contact list.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Contacts"))
	b.WriteString("\n\n")

	if v.loading {
		b.WriteString(v.styles.Muted.Render("Loading contacts..."))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	if len(v.contacts) == 0 {
		b.WriteString(v.styles.Muted.Render("No contacts yet. Press 'a' to add one."))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	for i := range v.contacts {
		b.WriteString(v.renderContact(i, &v.contacts[i]))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

// renderContact renders a single contact line.
func (v *View) renderContact(index int, contact *domain.Contact) string {
	indicator := "  "
	if index == v.selected {
		indicator = "> "
	}

	name := contact.Name.Full()
	primary := domain.DescribeMethod(contact.Primary())

	maxLen := v.width - len(name) - 8
	if maxLen < 10 {
		maxLen = 10
	}
	// Truncate by runes so a multi-byte character is never split.
	if runes := []rune(primary); len(runes) > maxLen {
		primary = string(runes[:maxLen-3]) + "..."
	}

	if index == v.selected {
		return v.styles.Selected.Render(fmt.Sprintf("%s%-24s %s", indicator, name, primary))
	}
	return v.styles.Normal.Render(indicator) +
		v.styles.Subtitle.Render(fmt.Sprintf("%-24s ", name)) +
		v.styles.Muted.Render(primary)
}

// renderHelp renders the help footer.
func (v *View) renderHelp() string {
	return v.styles.Help.Render("[a] add  [enter] details  [d] delete  [r] reload  [q] quit")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Contacts returns the current list of contacts.
func (v *View) Contacts() []domain.Contact {
	return v.contacts
}

// SelectedIndex returns the currently selected contact index.
func (v *View) SelectedIndex() int {
	return v.selected
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
