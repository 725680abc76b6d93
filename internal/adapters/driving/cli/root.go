// Package cli implements the cobra command tree for rolo.
// It is a driving adapter: commands parse input, call the driving port
// services and print results. All validation happens in the domain's smart
// constructors; commands only relay the reasons they return.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/rolohq/rolo-cli/internal/core/ports/driven"
	"github.com/rolohq/rolo-cli/internal/core/ports/driving"
	"github.com/rolohq/rolo-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services injected by cmd/rolo before Execute.
var (
	contactService driving.ContactService
	importService  driving.ImportService
	configStore    driven.ConfigStore
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "rolo",
	Short: "A contact book that refuses to hold invalid data",
	Long: `rolo manages contacts whose email addresses, phone numbers, state codes
and zip codes are validated on the way in, never after the fact.

Each contact always has a primary contact method; secondary methods are
optional. Start with "rolo add" or import a CSV with "rolo import".`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// SetServices injects the core services used by the commands.
func SetServices(contacts driving.ContactService, imports driving.ImportService, config driven.ConfigStore) {
	contactService = contacts
	importService = imports
	configStore = config
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
