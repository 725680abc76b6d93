package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rolohq/rolo-cli/internal/adapters/driving/tui/messages"
	"github.com/rolohq/rolo-cli/internal/adapters/driving/tui/styles"
	"github.com/rolohq/rolo-cli/internal/adapters/driving/tui/views/addcontact"
	"github.com/rolohq/rolo-cli/internal/adapters/driving/tui/views/contactdetail"
	"github.com/rolohq/rolo-cli/internal/adapters/driving/tui/views/contacts"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// styles holds the TUI styles.
	styles *styles.Styles

	// contactsView is the contact list view.
	contactsView *contacts.View

	// detailView is the contact detail view.
	detailView *contactdetail.View

	// addView is the add contact form.
	addView *addcontact.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()

	return &App{
		ports:        ports,
		styles:       s,
		contactsView: contacts.NewView(s, ports.Contacts),
		detailView:   contactdetail.NewView(s, ports.Contacts),
		addView:      addcontact.NewView(s, ports.Contacts),
		currentView:  messages.ViewContacts,
	}, nil
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("rolo - Contacts"),
		a.contactsView.Init(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.contactsView.SetDimensions(msg.Width, msg.Height)
		a.detailView.SetDimensions(msg.Width, msg.Height)
		a.addView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

	case messages.ViewChanged:
		a.currentView = msg.View
		switch msg.View {
		case messages.ViewContacts:
			return a, a.contactsView.Init()
		case messages.ViewAdd:
			a.addView.Reset()
			return a, a.addView.Init()
		case messages.ViewDetail:
			return a, a.detailView.Init()
		}
		return a, nil

	case messages.ContactSelected:
		a.detailView.SetContact(msg.Contact)
		a.currentView = messages.ViewDetail
		return a, a.detailView.Init()

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward everything else to the active view.
	switch a.currentView {
	case messages.ViewContacts:
		a.contactsView, cmd = a.contactsView.Update(msg)
	case messages.ViewDetail:
		a.detailView, cmd = a.detailView.Update(msg)
	case messages.ViewAdd:
		a.addView, cmd = a.addView.Update(msg)
	}

	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewContacts:
		return a.contactsView.View()
	case messages.ViewDetail:
		return a.detailView.View()
	case messages.ViewAdd:
		return a.addView.View()
	default:
		return a.contactsView.View()
	}
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.contactsView.SetDimensions(width, height)
	a.detailView.SetDimensions(width, height)
	a.addView.SetDimensions(width, height)
}
