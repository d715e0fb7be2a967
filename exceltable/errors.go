package exceltable

import "errors"

var (
	// ErrNoColumns is returned when none of the columns
	// is included in downloads.
	ErrNoColumns = errors.New("no downloadable columns")
)
