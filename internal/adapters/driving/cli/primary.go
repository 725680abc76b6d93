package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rolohq/rolo-cli/internal/core/domain"
)

var primaryCmd = &cobra.Command{
	Use:   "primary",
	Short: "Manage which contact method is primary",
}

var primarySetCmd = &cobra.Command{
	Use:   "set <id> <email|postal|home_phone|work_phone>",
	Short: "Make the method of the given kind primary",
	Args:  cobra.ExactArgs(2),
	RunE:  runPrimarySet,
}

var primaryPromoteCmd = &cobra.Command{
	Use:   "promote <id> <index>",
	Short: "Make the secondary at the given index primary",
	Long: `Make the secondary method at the given index the primary. Indices are the
numbers shown by 'rolo show'. The old primary joins the secondaries, so the
contact never loses its last method.`,
	Args: cobra.ExactArgs(2),
	RunE: runPrimaryPromote,
}

func init() {
	primaryCmd.AddCommand(primarySetCmd)
	primaryCmd.AddCommand(primaryPromoteCmd)
	rootCmd.AddCommand(primaryCmd)
}

func runPrimarySet(cmd *cobra.Command, args []string) error {
	if contactService == nil {
		return errors.New("contact service not configured")
	}

	kind := domain.MethodKind(args[1])
	if !kind.IsValid() {
		return fmt.Errorf("%w: unknown method kind %q", domain.ErrInvalidInput, args[1])
	}

	contact, err := contactService.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if domain.KindOf(contact.Primary()) == kind {
		cmd.Printf("%s method is already primary\n", kind)
		return nil
	}

	index := -1
	for i, m := range contact.Secondaries() {
		if domain.KindOf(m) == kind {
			index = i
			break
		}
	}
	if index < 0 {
		return fmt.Errorf("%w: contact has no %s method", domain.ErrNotFound, kind)
	}

	updated, err := contactService.PromoteSecondary(cmd.Context(), args[0], index)
	if err != nil {
		return err
	}

	printContact(cmd, *updated)
	return nil
}

func runPrimaryPromote(cmd *cobra.Command, args []string) error {
	if contactService == nil {
		return errors.New("contact service not configured")
	}

	index, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("%w: index must be a number, got %q", domain.ErrInvalidInput, args[1])
	}

	contact, err := contactService.PromoteSecondary(cmd.Context(), args[0], index)
	if err != nil {
		return err
	}

	printContact(cmd, *contact)
	return nil
}
