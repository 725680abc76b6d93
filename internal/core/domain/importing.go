package domain

// RowError records one rejected row from an import. Failures are data, not
// control flow: the import keeps going and the caller decides how to
// surface them.
type RowError struct {
	// Row is the 1-based row number in the source file, header included.
	Row int

	// Reason is the human-readable validation failure.
	Reason string
}

// ImportReport summarises an import run.
type ImportReport struct {
	// Source labels where the rows came from (file path or reader name).
	Source string

	// Imported holds the IDs of contacts created, in row order.
	Imported []string

	// Failures holds the rejected rows.
	Failures []RowError
}

// Ok returns true if every row imported cleanly.
func (r *ImportReport) Ok() bool {
	return len(r.Failures) == 0
}
