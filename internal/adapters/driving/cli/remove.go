package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Remove a contact",
	Args:    cobra.ExactArgs(1),
	RunE:    runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	if contactService == nil {
		return errors.New("contact service not configured")
	}

	if err := contactService.Remove(cmd.Context(), args[0]); err != nil {
		return err
	}

	cmd.Printf("Removed contact %s\n", args[0])
	return nil
}
