package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/rolohq/rolo-cli/internal/core/domain"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all contacts",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	if contactService == nil {
		return errors.New("contact service not configured")
	}

	contacts, err := contactService.List(cmd.Context())
	if err != nil {
		return err
	}

	if len(contacts) == 0 {
		cmd.Println("No contacts yet. Add one with 'rolo add'.")
		return nil
	}

	for _, c := range contacts {
		extra := len(c.Secondaries())
		if extra > 0 {
			cmd.Printf("%s  %s  %s (+%d more)\n", c.ID, c.Name.Full(), domain.DescribeMethod(c.Primary()), extra)
		} else {
			cmd.Printf("%s  %s  %s\n", c.ID, c.Name.Full(), domain.DescribeMethod(c.Primary()))
		}
	}
	return nil
}
