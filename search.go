package datatable

import "strings"

// SearchFunc reports whether row matches query.
type SearchFunc func(row Row, query string) bool

// NewSearchFunc returns the default search predicate.
//
// A row matches if the trimmed string form of any of its cells
// contains the trimmed query as substring.
// If caseSensitive is false, both sides are compared lower-cased.
// An empty query matches every row.
// Column options like Searchable are not considered.
func NewSearchFunc(caseSensitive bool) SearchFunc {
	return func(row Row, query string) bool {
		query = strings.TrimSpace(query)
		if query == "" {
			return true
		}
		if !caseSensitive {
			query = strings.ToLower(query)
		}
		for _, value := range row {
			str := CellString(value)
			if !caseSensitive {
				str = strings.ToLower(str)
			}
			if strings.Contains(strings.TrimSpace(str), query) {
				return true
			}
		}
		return false
	}
}

// SearchRows returns the rows matching query using match.
// The returned slice shares the row maps with rows.
func SearchRows(rows []Row, query string, match SearchFunc) []Row {
	result := make([]Row, 0, len(rows))
	for _, row := range rows {
		if match(row, query) {
			result = append(result, row)
		}
	}
	return result
}
