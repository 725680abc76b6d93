// Package contactdetail provides the contact detail view component for the TUI.
package contactdetail

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

// View is the contact detail view. It shows every contact method, primary
// first, and lets the user promote a secondary or verify the email address.
type View struct {
	styles         *styles.Styles
	contactService driving.ContactService

	contact *domain.Contact
	width   int
	height  int
	ready   bool
	err     error
}

// NewView creates a new contact detail view.
func NewView(s *styles.Styles, contactService driving.ContactService) *View {
	return &View{
		styles:         s,
		contactService: contactService,
	}
}

// SetContact sets the contact to display.
func (v *View) SetContact(contact domain.Contact) {
	v.contact = &contact
	v.err = nil
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the detail view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.ContactUpdated:
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.contact = msg.Contact
			v.err = nil
		}
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.contact == nil {
		return v, nil
	}

	switch key := msg.String(); key {
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewContacts}
		}
	case "v":
		return v, v.verifyEmail(v.contact.ID)
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		index := int(key[0] - '1')
		if index < len(v.contact.Secondaries()) {
			return v, v.promoteSecondary(v.contact.ID, index)
		}
	}

	return v, nil
}

// verifyEmail returns a command that marks the contact's email as verified.
func (v *View) verifyEmail(id string) tea.Cmd {
	return func() tea.Msg {
		contact, err := v.contactService.VerifyEmail(context.Background(), id)
		return messages.ContactUpdated{Contact: contact, Err: err}
	}
}

// promoteSecondary returns a command that makes the secondary at index primary.
func (v *View) promoteSecondary(id string, index int) tea.Cmd {
	return func() tea.Msg {
		contact, err := v.contactService.PromoteSecondary(context.Background(), id, index)
		return messages.ContactUpdated{Contact: contact, Err: err}
	}
}

// methodRenderer renders one method line for display. It implements
// domain.MethodVisitor, so a new method variant cannot compile until this
// view renders it.
type methodRenderer struct {
	line string
}

var _ domain.MethodVisitor = (*methodRenderer)(nil)

// VisitEmail renders the email method with its verification state.
func (r *methodRenderer) VisitEmail(info domain.EmailContactInfo) {
	if info.Verified {
		r.line = fmt.Sprintf("Email: %s (verified)", info.Email)
		return
	}
	r.line = fmt.Sprintf("Email: %s (unverified)", info.Email)
}

// VisitPostal renders the postal method, skipping empty address lines.
func (r *methodRenderer) VisitPostal(info domain.PostalContactInfo) {
	addr := info.Address
	s := "Postal: " + addr.Line1
	for _, line := range []string{addr.Line2, addr.Line3, addr.Line4} {
		if line != "" {
			s += ", " + line
		}
	}
	s += fmt.Sprintf(", %s %s", addr.State, addr.Zip)
	if info.AddressValid {
		s += " (validated)"
	}
	r.line = s
}

// VisitHomePhone renders the home phone method.
func (r *methodRenderer) VisitHomePhone(info domain.PhoneContactInfo) {
	r.line = fmt.Sprintf("Home phone: %s", info.Number)
}

// VisitWorkPhone renders the work phone method.
func (r *methodRenderer) VisitWorkPhone(info domain.PhoneContactInfo) {
	r.line = fmt.Sprintf("Work phone: %s", info.Number)
}

// renderMethod renders a method line via the visitor.
func renderMethod(m domain.ContactMethod) string {
	var r methodRenderer
	m.Accept(&r)
	return r.line
}

// View renders the contact detail.
func (v *View) View() string {
	var b strings.Builder

	if v.contact == nil {
		b.WriteString(v.styles.Muted.Render("No contact selected."))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	b.WriteString(v.styles.Title.Render(v.contact.Name.Full()))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(v.contact.ID))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}

	b.WriteString(v.styles.Subtitle.Render("Methods"))
	b.WriteString("\n")
	b.WriteString(v.styles.Success.Render("  * " + renderMethod(v.contact.Primary())))
	b.WriteString("\n")
	for i, m := range v.contact.Secondaries() {
		b.WriteString(v.styles.Normal.Render(fmt.Sprintf("  %d %s", i+1, renderMethod(m))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

// renderHelp renders the help footer.
func (v *View) renderHelp() string {
	return v.styles.Help.Render("[1-9] make primary  [v] verify email  [esc] back")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Contact returns the displayed contact.
func (v *View) Contact() *domain.Contact {
	return v.contact
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
