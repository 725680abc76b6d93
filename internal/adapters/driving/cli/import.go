package cli

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rolohq/rolo-cli/internal/core/domain"
)

var importWatch bool

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import contacts from a CSV file",
	Long: `Import contacts from a CSV file. Expected columns: first, middle, last,
email, home_phone, work_phone, line1, line2, state, zip. Rows that fail
validation are reported and skipped; valid rows are still imported.

With --watch, rolo watches the import inbox directory (import.inbox_dir in
the config, ~/.rolo/inbox by default) and imports every .csv dropped into
it until interrupted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVar(&importWatch, "watch", false, "watch the inbox directory for CSV files")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	if importService == nil {
		return errors.New("import service not configured")
	}

	if importWatch {
		return runImportWatch(cmd)
	}

	if len(args) != 1 {
		return errors.New("supply a CSV file to import, or use --watch")
	}

	report, err := importService.ImportFile(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	printReport(cmd, report)
	return nil
}

func runImportWatch(cmd *cobra.Command) error {
	dir := ""
	if configStore != nil {
		dir = configStore.GetString("import.inbox_dir")
	}
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		dir = home + "/.rolo/inbox"
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd.Printf("Watching %s for CSV files (ctrl-c to stop)\n", dir)
	return importService.Watch(ctx, dir, func(report *domain.ImportReport) {
		printReport(cmd, report)
	})
}

// printReport renders an import report, per-row failures included.
func printReport(cmd *cobra.Command, report *domain.ImportReport) {
	cmd.Printf("%s: imported %d contact(s), %d failure(s)\n",
		report.Source, len(report.Imported), len(report.Failures))
	for _, f := range report.Failures {
		cmd.Printf("  row %d: %s\n", f.Row, f.Reason)
	}
}
