package driving

import (
	"context"
	"io"

	"github.com/rolohq/rolo-cli/internal/core/domain"
)

// ImportService loads contacts from external files through the domain's
// smart constructors. Rows that fail validation are reported as data in the
// ImportReport, never thrown: the caller decides whether to log, prompt or
// ignore them.
type ImportService interface {
	// ImportFile imports contacts from a CSV file on disk.
	ImportFile(ctx context.Context, path string) (*domain.ImportReport, error)

	// ImportReader imports contacts from CSV content. name labels the
	// source in the report.
	ImportReader(ctx context.Context, name string, r io.Reader) (*domain.ImportReport, error)

	// Watch imports .csv files dropped into dir until ctx is cancelled.
	// Each completed import is passed to onReport.
	Watch(ctx context.Context, dir string, onReport func(*domain.ImportReport)) error
}
