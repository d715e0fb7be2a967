package datatable

import (
	"slices"
)

// FilterValues returns the distinct CellString values
// of column in rows, in order of first occurrence
// or sorted if sorted is true.
func FilterValues(rows []Row, column string, sorted bool) []string {
	var (
		values []string
		seen   = make(map[string]struct{})
	)
	for _, row := range rows {
		value, ok := row[column]
		if !ok {
			continue
		}
		str := CellString(value)
		if _, ok := seen[str]; ok {
			continue
		}
		seen[str] = struct{}{}
		values = append(values, str)
	}
	if sorted {
		slices.Sort(values)
	}
	return values
}

// FilterRows returns the rows where the CellString value of every
// filtered column is one of the column's filter values.
// Columns with an empty filter list don't filter.
// The returned slice shares the row maps with rows.
func FilterRows(rows []Row, filters map[string][]string) []Row {
	result := make([]Row, 0, len(rows))
	for _, row := range rows {
		if rowPassesFilters(row, filters) {
			result = append(result, row)
		}
	}
	return result
}

func rowPassesFilters(row Row, filters map[string][]string) bool {
	for column, values := range filters {
		if len(values) == 0 {
			continue
		}
		if !slices.Contains(values, CellString(row[column])) {
			return false
		}
	}
	return true
}

// Paginate returns the rows of the zero based page
// with rowsPerPage rows per page.
// Pages out of range return an empty slice,
// rowsPerPage <= 0 returns all rows.
func Paginate(rows []Row, page, rowsPerPage int) []Row {
	if rowsPerPage <= 0 {
		return rows
	}
	start := page * rowsPerPage
	if page < 0 || start >= len(rows) {
		return []Row{}
	}
	return rows[start:min(start+rowsPerPage, len(rows))]
}

// NumPages returns the number of pages needed
// for numRows with rowsPerPage, at least 1.
func NumPages(numRows, rowsPerPage int) int {
	if rowsPerPage <= 0 || numRows <= rowsPerPage {
		return 1
	}
	return (numRows + rowsPerPage - 1) / rowsPerPage
}
