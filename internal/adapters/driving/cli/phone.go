package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rolohq/rolo-cli/internal/core/domain"
)

var phoneCmd = &cobra.Command{
	Use:   "phone",
	Short: "Manage a contact's phone methods",
}

var phoneSetCmd = &cobra.Command{
	Use:   "set <id> <home|work> <number>",
	Short: "Set or replace a phone number",
	Args:  cobra.ExactArgs(3),
	RunE:  runPhoneSet,
}

func init() {
	phoneCmd.AddCommand(phoneSetCmd)
	rootCmd.AddCommand(phoneCmd)
}

func runPhoneSet(cmd *cobra.Command, args []string) error {
	if contactService == nil {
		return errors.New("contact service not configured")
	}

	var kind domain.MethodKind
	switch args[1] {
	case "home":
		kind = domain.MethodKindHomePhone
	case "work":
		kind = domain.MethodKindWorkPhone
	default:
		return fmt.Errorf("%w: phone kind must be \"home\" or \"work\", got %q", domain.ErrInvalidInput, args[1])
	}

	number, err := domain.NewPhoneNumber(args[2])
	if err != nil {
		return err
	}

	contact, err := contactService.UpdatePhone(cmd.Context(), args[0], kind, number)
	if err != nil {
		return err
	}

	printContact(cmd, *contact)
	return nil
}
