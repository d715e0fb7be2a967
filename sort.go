package datatable

import (
	"cmp"
	"slices"
	"strings"
	"time"
)

// SortRows returns a new slice of rows stably sorted
// by the values of column in order.
// SortNone returns an unsorted copy.
//
// Numbers are compared numerically, times chronologically,
// booleans false before true, and all other values
// by their CellString. Missing values sort first.
func SortRows(rows []Row, column string, order SortDirection) []Row {
	sorted := slices.Clone(rows)
	if order == SortNone {
		return sorted
	}
	slices.SortStableFunc(sorted, func(a, b Row) int {
		c := CompareCells(a[column], b[column])
		if order == SortDesc {
			return -c
		}
		return c
	})
	return sorted
}

// CompareCells compares two cell values for sorting.
func CompareCells(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	if fa, ok := cellNumber(a); ok {
		if fb, ok := cellNumber(b); ok {
			return cmp.Compare(fa, fb)
		}
	}
	if ta, ok := a.(time.Time); ok {
		if tb, ok := b.(time.Time); ok {
			return ta.Compare(tb)
		}
	}
	if ba, ok := a.(bool); ok {
		if bb, ok := b.(bool); ok {
			switch {
			case ba == bb:
				return 0
			case !ba:
				return -1
			}
			return 1
		}
	}
	return strings.Compare(CellString(a), CellString(b))
}

func cellNumber(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}
