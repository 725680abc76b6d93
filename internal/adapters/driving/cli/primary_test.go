package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rolohq/rolo-cli/internal/core/domain"
)

func TestPrimaryCmd_HasSubcommands(t *testing.T) {
	commands := primaryCmd.Commands()
	commandNames := make([]string, 0, len(commands))
	for _, cmd := range commands {
		commandNames = append(commandNames, cmd.Name())
	}

	assert.Contains(t, commandNames, "set")
	assert.Contains(t, commandNames, "promote")
}

func TestPrimarySetCmd_PromotesByKind(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()
	id := addTestContact(t)

	output, err := executeCommand("primary", "set", id, "home_phone")

	assert.NoError(t, err)
	assert.Contains(t, output, "* Home phone: 5551234567")
	// The old primary survives as a secondary.
	assert.Contains(t, output, "Email: ada@example.com")
}

func TestPrimarySetCmd_AlreadyPrimary(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()
	id := addTestContact(t)

	output, err := executeCommand("primary", "set", id, "email")

	assert.NoError(t, err)
	assert.Contains(t, output, "already primary")
}

func TestPrimarySetCmd_MissingKind(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()
	id := addTestContact(t)

	_, err := executeCommand("primary", "set", id, "postal")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPrimarySetCmd_RejectsUnknownKind(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()
	id := addTestContact(t)

	_, err := executeCommand("primary", "set", id, "carrier_pigeon")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPrimaryPromoteCmd_PromotesByIndex(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()
	id := addTestContact(t)

	output, err := executeCommand("primary", "promote", id, "0")

	assert.NoError(t, err)
	assert.Contains(t, output, "* Home phone: 5551234567")
}

func TestPrimaryPromoteCmd_OutOfRange(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()
	id := addTestContact(t)

	_, err := executeCommand("primary", "promote", id, "5")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPrimaryPromoteCmd_RejectsNonNumericIndex(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()
	id := addTestContact(t)

	_, err := executeCommand("primary", "promote", id, "first")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
