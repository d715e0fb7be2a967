package widget

import "errors"

var (
	// ErrNotComputed is returned by Table methods that need
	// normalized state before Table.Recompute was called.
	ErrNotComputed = errors.New("table state not computed")

	// ErrDisabled is returned for an action that is
	// disabled by the table options.
	ErrDisabled = errors.New("disabled by table options")

	// ErrIndexOutOfRange is returned for a row, column or page
	// index outside of the displayed table.
	ErrIndexOutOfRange = errors.New("index out of range")
)
