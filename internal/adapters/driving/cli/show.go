package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a contact's details",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	if contactService == nil {
		return errors.New("contact service not configured")
	}

	contact, err := contactService.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	printContact(cmd, *contact)
	cmd.Printf("  created %s, updated %s\n",
		contact.CreatedAt.Format("2006-01-02 15:04"),
		contact.UpdatedAt.Format("2006-01-02 15:04"))
	return nil
}
