package datatable

import "errors"

var (
	// ErrColumnWithoutName is returned by NormalizeColumns
	// for a column spec that has an empty name.
	ErrColumnWithoutName = errors.New("column without name")

	// ErrDuplicateColumnName is returned by NormalizeColumns
	// if two column specs share the same name.
	ErrDuplicateColumnName = errors.New("duplicate column name")

	// ErrColumnNotFound is returned when a column name
	// is not part of the normalized columns of a table.
	ErrColumnNotFound = errors.New("column not found")
)
