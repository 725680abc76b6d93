package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/rolohq/rolo-cli/internal/adapters/driving/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive terminal interface",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	if contactService == nil {
		return errors.New("contact service not configured")
	}

	app, err := tui.NewApp(tui.NewPorts(contactService))
	if err != nil {
		return err
	}

	return app.Run()
}
