package cli

import (
	"github.com/spf13/cobra"

	"github.com/rolohq/rolo-cli/internal/core/domain"
)

// printContact renders a full contact: header line plus all methods.
func printContact(cmd *cobra.Command, c domain.Contact) {
	cmd.Printf("%s (%s)\n", c.Name.Full(), c.ID)
	printMethods(cmd, c)
}

// printMethods renders the contact methods, primary first.
func printMethods(cmd *cobra.Command, c domain.Contact) {
	cmd.Printf("  * %s\n", domain.DescribeMethod(c.Primary()))
	for i, m := range c.Secondaries() {
		cmd.Printf("  %d %s\n", i, domain.DescribeMethod(m))
	}
}
