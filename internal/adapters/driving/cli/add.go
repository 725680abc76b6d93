package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rolohq/rolo-cli/internal/core/domain"
)

var addFlags struct {
	first  string
	middle string
	last   string
	email  string
	home   string
	work   string
	line1  string
	line2  string
	state  string
	zip    string
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new contact",
	Long: `Add a new contact. At least one contact method is required: an email,
a postal address (--line1, --state and --zip together) or a phone number.
The first method given, in the order email, postal, home phone, work phone,
becomes the primary.`,
	Example: `  rolo add --first Ada --last Lovelace --email ada@example.com
  rolo add --first Grace --last Hopper --line1 "1 Navy Way" --state VA --zip 22217`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addFlags.first, "first", "", "first name (required)")
	addCmd.Flags().StringVar(&addFlags.middle, "middle", "", "middle initial")
	addCmd.Flags().StringVar(&addFlags.last, "last", "", "last name (required)")
	addCmd.Flags().StringVar(&addFlags.email, "email", "", "email address")
	addCmd.Flags().StringVar(&addFlags.home, "home-phone", "", "home phone number")
	addCmd.Flags().StringVar(&addFlags.work, "work-phone", "", "work phone number")
	addCmd.Flags().StringVar(&addFlags.line1, "line1", "", "postal address line 1")
	addCmd.Flags().StringVar(&addFlags.line2, "line2", "", "postal address line 2")
	addCmd.Flags().StringVar(&addFlags.state, "state", "", "postal state code")
	addCmd.Flags().StringVar(&addFlags.zip, "zip", "", "postal zip code")
	_ = addCmd.MarkFlagRequired("first")
	_ = addCmd.MarkFlagRequired("last")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, _ []string) error {
	if contactService == nil {
		return errors.New("contact service not configured")
	}

	name, err := domain.NewPersonalName(addFlags.first, addFlags.middle, addFlags.last)
	if err != nil {
		return err
	}

	methods, err := methodsFromAddFlags()
	if err != nil {
		return err
	}
	if len(methods) == 0 {
		return fmt.Errorf("%w: supply --email, --home-phone, --work-phone or a postal address", domain.ErrNoContactMethod)
	}

	contact, err := domain.NewContact("", name, methods[0], methods[1:]...)
	if err != nil {
		return err
	}

	stored, err := contactService.Add(cmd.Context(), contact)
	if err != nil {
		return err
	}

	cmd.Printf("Added contact %s (%s)\n", stored.Name.Full(), stored.ID)
	printMethods(cmd, stored)
	return nil
}

// methodsFromAddFlags builds contact methods from the add flags, in primary
// preference order.
func methodsFromAddFlags() ([]domain.ContactMethod, error) {
	var methods []domain.ContactMethod

	if addFlags.email != "" {
		email, err := domain.NewEmailAddress(addFlags.email)
		if err != nil {
			return nil, err
		}
		methods = append(methods, domain.EmailMethod{Info: domain.EmailContactInfo{Email: email}})
	}

	if addFlags.line1 != "" || addFlags.state != "" || addFlags.zip != "" {
		address, err := postalAddressFromFlags(addFlags.line1, addFlags.line2, addFlags.state, addFlags.zip)
		if err != nil {
			return nil, err
		}
		methods = append(methods, domain.PostalMethod{Info: domain.PostalContactInfo{Address: address}})
	}

	if addFlags.home != "" {
		number, err := domain.NewPhoneNumber(addFlags.home)
		if err != nil {
			return nil, err
		}
		methods = append(methods, domain.HomePhoneMethod{Info: domain.PhoneContactInfo{Number: number}})
	}

	if addFlags.work != "" {
		number, err := domain.NewPhoneNumber(addFlags.work)
		if err != nil {
			return nil, err
		}
		methods = append(methods, domain.WorkPhoneMethod{Info: domain.PhoneContactInfo{Number: number}})
	}

	return methods, nil
}

// postalAddressFromFlags validates the postal flags as a unit.
func postalAddressFromFlags(line1, line2, state, zip string) (domain.PostalAddress, error) {
	stateCode, err := domain.NewStateCode(state)
	if err != nil {
		return domain.PostalAddress{}, err
	}
	zipCode, err := domain.NewZipCode(zip)
	if err != nil {
		return domain.PostalAddress{}, err
	}
	return domain.NewPostalAddress(line1, line2, "", "", stateCode, zipCode)
}
