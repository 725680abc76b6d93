// Package addcontact provides the add contact form view for the TUI.
package addcontact

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rolohq/rolo-cli/internal/adapters/driving/tui/messages"
	"github.com/rolohq/rolo-cli/internal/adapters/driving/tui/styles"
	"github.com/rolohq/rolo-cli/internal/core/domain"
	"github.com/rolohq/rolo-cli/internal/core/ports/driving"
)

// Form field indices, in tab order.
const (
	fieldFirst = iota
	fieldMiddle
	fieldLast
	fieldEmail
	fieldHomePhone
	fieldWorkPhone
	fieldLine1
	fieldLine2
	fieldState
	fieldZip
	fieldCount
)

// View is the add contact form. Name fields are required; at least one
// contact method must be supplied. Validation runs on submit through the
// domain constructors, so the form can never produce a half-valid contact.
type View struct {
	styles         *styles.Styles
	contactService driving.ContactService

	inputs  []textinput.Model
	focused int
	width   int
	height  int
	err     error
}

// NewView creates a new add contact form view.
func NewView(s *styles.Styles, contactService driving.ContactService) *View {
	v := &View{
		styles:         s,
		contactService: contactService,
		inputs:         make([]textinput.Model, fieldCount),
	}

	placeholders := [fieldCount]string{
		fieldFirst:     "First name (required)",
		fieldMiddle:    "Middle initial",
		fieldLast:      "Last name (required)",
		fieldEmail:     "Email address",
		fieldHomePhone: "Home phone",
		fieldWorkPhone: "Work phone",
		fieldLine1:     "Address line 1",
		fieldLine2:     "Address line 2",
		fieldState:     "State code",
		fieldZip:       "Zip code",
	}

	for i := range v.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 100
		ti.Width = 40
		v.inputs[i] = ti
	}
	v.inputs[fieldFirst].Focus()

	return v
}

// Init initialises the form.
func (v *View) Init() tea.Cmd {
	return textinput.Blink
}

// Reset clears all fields and focuses the first.
func (v *View) Reset() {
	for i := range v.inputs {
		v.inputs[i].Reset()
		v.inputs[i].Blur()
	}
	v.focused = fieldFirst
	v.inputs[fieldFirst].Focus()
	v.err = nil
}

// Update handles messages for the form.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewContacts}
			}
		case "tab", "down":
			v.focusField((v.focused + 1) % fieldCount)
			return v, nil
		case "shift+tab", "up":
			v.focusField((v.focused + fieldCount - 1) % fieldCount)
			return v, nil
		case "enter":
			return v, v.submit()
		}

	case messages.ContactAdded:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.Reset()
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewContacts}
		}
	}

	var cmd tea.Cmd
	v.inputs[v.focused], cmd = v.inputs[v.focused].Update(msg)
	return v, cmd
}

// focusField moves focus to the given field.
func (v *View) focusField(i int) {
	v.inputs[v.focused].Blur()
	v.focused = i
	v.inputs[v.focused].Focus()
}

// submit validates the form and returns a command that adds the contact.
func (v *View) submit() tea.Cmd {
	contact, err := v.buildContact()
	if err != nil {
		v.err = err
		return nil
	}

	return func() tea.Msg {
		if v.contactService == nil {
			return messages.ContactAdded{Err: fmt.Errorf("contact service not available")}
		}

		stored, err := v.contactService.Add(context.Background(), contact)
		return messages.ContactAdded{Contact: stored, Err: err}
	}
}

// buildContact assembles a domain.Contact from the form fields.
func (v *View) buildContact() (domain.Contact, error) {
	value := func(i int) string { return strings.TrimSpace(v.inputs[i].Value()) }

	name, err := domain.NewPersonalName(value(fieldFirst), value(fieldMiddle), value(fieldLast))
	if err != nil {
		return domain.Contact{}, err
	}

	var methods []domain.ContactMethod

	if raw := value(fieldEmail); raw != "" {
		email, err := domain.NewEmailAddress(raw)
		if err != nil {
			return domain.Contact{}, err
		}
		methods = append(methods, domain.EmailMethod{Info: domain.EmailContactInfo{Email: email}})
	}

	if value(fieldLine1) != "" || value(fieldState) != "" || value(fieldZip) != "" {
		state, err := domain.NewStateCode(value(fieldState))
		if err != nil {
			return domain.Contact{}, err
		}
		zip, err := domain.NewZipCode(value(fieldZip))
		if err != nil {
			return domain.Contact{}, err
		}
		address, err := domain.NewPostalAddress(value(fieldLine1), value(fieldLine2), "", "", state, zip)
		if err != nil {
			return domain.Contact{}, err
		}
		methods = append(methods, domain.PostalMethod{Info: domain.PostalContactInfo{Address: address}})
	}

	if raw := value(fieldHomePhone); raw != "" {
		number, err := domain.NewPhoneNumber(raw)
		if err != nil {
			return domain.Contact{}, err
		}
		methods = append(methods, domain.HomePhoneMethod{Info: domain.PhoneContactInfo{Number: number}})
	}

	if raw := value(fieldWorkPhone); raw != "" {
		number, err := domain.NewPhoneNumber(raw)
		if err != nil {
			return domain.Contact{}, err
		}
		methods = append(methods, domain.WorkPhoneMethod{Info: domain.PhoneContactInfo{Number: number}})
	}

	if len(methods) == 0 {
		return domain.Contact{}, fmt.Errorf("%w: supply an email, phone or postal address", domain.ErrNoContactMethod)
	}

	return domain.NewContact("", name, methods[0], methods[1:]...)
}

// View renders the form.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Add Contact"))
	b.WriteString("\n\n")

	labels := [fieldCount]string{
		fieldFirst:     "First",
		fieldMiddle:    "Middle",
		fieldLast:      "Last",
		fieldEmail:     "Email",
		fieldHomePhone: "Home phone",
		fieldWorkPhone: "Work phone",
		fieldLine1:     "Line 1",
		fieldLine2:     "Line 2",
		fieldState:     "State",
		fieldZip:       "Zip",
	}

	for i := range v.inputs {
		label := fmt.Sprintf("%-12s", labels[i])
		if i == v.focused {
			b.WriteString(v.styles.Subtitle.Render(label))
		} else {
			b.WriteString(v.styles.Muted.Render(label))
		}
		b.WriteString(v.inputs[i].View())
		b.WriteString("\n")
	}

	if v.err != nil {
		b.WriteString("\n")
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[tab] next field  [enter] save  [esc] cancel"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// FocusedField returns the index of the focused field.
func (v *View) FocusedField() int {
	return v.focused
}

// Err returns the last validation or submit error.
func (v *View) Err() error {
	return v.err
}
