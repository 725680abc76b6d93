package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportCmd_Use(t *testing.T) {
	assert.Equal(t, "import [file]", importCmd.Use)
}

func TestImportCmd_RequiresFileWithoutWatch(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	_, err := executeCommand("import")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "supply a CSV file")
}

func TestImportCmd_ImportsValidRows(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	path := filepath.Join(t.TempDir(), "contacts.csv")
	content := "first,middle,last,email,home_phone,work_phone,line1,line2,state,zip\n" +
		"Ada,,Lovelace,ada@example.com,,,,,,\n" +
		"Grace,B,Hopper,,555 867 5309,,,,,\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	output, err := executeCommand("import", path)

	assert.NoError(t, err)
	assert.Contains(t, output, "imported 2 contact(s), 0 failure(s)")

	list, err := executeCommand("list")
	assert.NoError(t, err)
	assert.Contains(t, list, "Grace B. Hopper")
	assert.Contains(t, list, "Ada Lovelace")
}

func TestImportCmd_ReportsRowFailures(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	path := filepath.Join(t.TempDir(), "contacts.csv")
	content := "first,middle,last,email,home_phone,work_phone,line1,line2,state,zip\n" +
		"Ada,,Lovelace,not-an-email,,,,,,\n" +
		"Grace,B,Hopper,grace@example.com,,,,,,\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	output, err := executeCommand("import", path)

	assert.NoError(t, err)
	assert.Contains(t, output, "imported 1 contact(s), 1 failure(s)")
	assert.Contains(t, output, "row 2:")
}
