// Command rolo is a contact book CLI. Validation happens once, at the edge:
// every email address, phone number, state and zip code in the store was
// built by a domain constructor, so the rest of the program never re-checks.
package main

import (
	"fmt"
	"os"

	"github.com/rolohq/rolo-cli/internal/adapters/driven/config/file"
	"github.com/rolohq/rolo-cli/internal/adapters/driven/storage/sqlite"
	"github.com/rolohq/rolo-cli/internal/adapters/driving/cli"
	"github.com/rolohq/rolo-cli/internal/core/services"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}

	store, err := sqlite.NewStore(configStore.GetString("data.dir"))
	if err != nil {
		return fmt.Errorf("opening contact store: %w", err)
	}
	defer store.Close()

	contacts := services.NewContactService(store.ContactStore())
	imports := services.NewImportService(contacts)
	imports.RemoveAfterImport = configStore.GetBool("import.remove_after")

	cli.SetVersion(version)
	cli.SetServices(contacts, imports, configStore)
	return cli.Execute()
}
