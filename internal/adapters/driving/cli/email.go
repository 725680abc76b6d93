package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/rolohq/rolo-cli/internal/core/domain"
)

var emailCmd = &cobra.Command{
	Use:   "email",
	Short: "Manage a contact's email method",
}

var emailSetCmd = &cobra.Command{
	Use:   "set <id> <address>",
	Short: "Set or replace the email address",
	Long: `Set or replace the contact's email address. Replacing an address clears
its verified flag; re-verify with 'rolo email verify'.`,
	Args: cobra.ExactArgs(2),
	RunE: runEmailSet,
}

var emailVerifyCmd = &cobra.Command{
	Use:   "verify <id>",
	Short: "Mark the email address as verified",
	Args:  cobra.ExactArgs(1),
	RunE:  runEmailVerify,
}

func init() {
	emailCmd.AddCommand(emailSetCmd)
	emailCmd.AddCommand(emailVerifyCmd)
	rootCmd.AddCommand(emailCmd)
}

func runEmailSet(cmd *cobra.Command, args []string) error {
	if contactService == nil {
		return errors.New("contact service not configured")
	}

	email, err := domain.NewEmailAddress(args[1])
	if err != nil {
		return err
	}

	contact, err := contactService.UpdateEmail(cmd.Context(), args[0], email)
	if err != nil {
		return err
	}

	printContact(cmd, *contact)
	return nil
}

func runEmailVerify(cmd *cobra.Command, args []string) error {
	if contactService == nil {
		return errors.New("contact service not configured")
	}

	contact, err := contactService.VerifyEmail(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	printContact(cmd, *contact)
	return nil
}
