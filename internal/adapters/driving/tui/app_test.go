package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rolohq/rolo-cli/internal/adapters/driven/storage/memory"
	"github.com/rolohq/rolo-cli/internal/adapters/driving/tui/messages"
	"github.com/rolohq/rolo-cli/internal/core/services"
)

// newTestApp builds an app over an in-memory contact book.
func newTestApp(t *testing.T) *App {
	t.Helper()

	contacts := services.NewContactService(memory.NewContactStore())
	app, err := NewApp(NewPorts(contacts))
	require.NoError(t, err)
	return app
}

func TestNewApp_RequiresContactService(t *testing.T) {
	_, err := NewApp(&Ports{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingContactService)
}

func TestApp_StartsOnContactList(t *testing.T) {
	app := newTestApp(t)

	assert.Equal(t, messages.ViewContacts, app.CurrentView())
	assert.False(t, app.Ready())
}

func TestApp_WindowSizeMakesReady(t *testing.T) {
	app := newTestApp(t)

	model, _ := app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	updated, ok := model.(*App)
	require.True(t, ok)
	assert.True(t, updated.Ready())
}

func TestApp_ViewBeforeReady(t *testing.T) {
	app := newTestApp(t)

	assert.Contains(t, app.View(), "Initialising")
}

func TestApp_ViewChangedSwitchesView(t *testing.T) {
	app := newTestApp(t)
	app.SetDimensions(80, 24)

	model, _ := app.Update(messages.ViewChanged{View: messages.ViewAdd})

	updated, ok := model.(*App)
	require.True(t, ok)
	assert.Equal(t, messages.ViewAdd, updated.CurrentView())
	assert.Contains(t, updated.View(), "Add Contact")
}

func TestApp_CtrlCQuits(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_QuitMessage(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(messages.Quit{})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
