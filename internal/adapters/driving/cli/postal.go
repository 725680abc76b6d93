package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var postalFlags struct {
	line1 string
	line2 string
	state string
	zip   string
}

var postalCmd = &cobra.Command{
	Use:   "postal",
	Short: "Manage a contact's postal method",
}

var postalSetCmd = &cobra.Command{
	Use:   "set <id>",
	Short: "Set or replace the postal address",
	Long: `Set or replace the contact's postal address. Replacing an address clears
its validated flag.`,
	Args: cobra.ExactArgs(1),
	RunE: runPostalSet,
}

func init() {
	postalSetCmd.Flags().StringVar(&postalFlags.line1, "line1", "", "address line 1 (required)")
	postalSetCmd.Flags().StringVar(&postalFlags.line2, "line2", "", "address line 2")
	postalSetCmd.Flags().StringVar(&postalFlags.state, "state", "", "state code (required)")
	postalSetCmd.Flags().StringVar(&postalFlags.zip, "zip", "", "zip code (required)")
	_ = postalSetCmd.MarkFlagRequired("line1")
	_ = postalSetCmd.MarkFlagRequired("state")
	_ = postalSetCmd.MarkFlagRequired("zip")
	postalCmd.AddCommand(postalSetCmd)
	rootCmd.AddCommand(postalCmd)
}

func runPostalSet(cmd *cobra.Command, args []string) error {
	if contactService == nil {
		return errors.New("contact service not configured")
	}

	address, err := postalAddressFromFlags(postalFlags.line1, postalFlags.line2, postalFlags.state, postalFlags.zip)
	if err != nil {
		return err
	}

	contact, err := contactService.UpdatePostal(cmd.Context(), args[0], address)
	if err != nil {
		return err
	}

	printContact(cmd, *contact)
	return nil
}
