package datatable

import (
	"fmt"
	"maps"
	"slices"
)

// Selection is the set of selected row data indices.
// It is only changed by its own methods.
// The zero value is not usable, use NewSelection.
type Selection struct {
	mode       SelectableRows
	selectable func(dataIndex int) bool
	selected   map[int]struct{}
}

// NewSelection returns an empty Selection for mode.
// A nil isSelectable allows every row.
func NewSelection(mode SelectableRows, isSelectable func(dataIndex int) bool) *Selection {
	if isSelectable == nil {
		isSelectable = func(int) bool { return true }
	}
	return &Selection{
		mode:       mode,
		selectable: isSelectable,
		selected:   make(map[int]struct{}),
	}
}

// Mode returns the selection mode.
func (s *Selection) Mode() SelectableRows { return s.mode }

// Select adds dataIndex and reports if the selection changed.
// In SelectSingle mode a previous selection is replaced,
// in SelectNone mode nothing can be selected.
func (s *Selection) Select(dataIndex int) bool {
	if s.mode == SelectNone || dataIndex < 0 || !s.selectable(dataIndex) {
		return false
	}
	if _, ok := s.selected[dataIndex]; ok {
		return false
	}
	if s.mode == SelectSingle {
		clear(s.selected)
	}
	s.selected[dataIndex] = struct{}{}
	return true
}

// Deselect removes dataIndex and reports if the selection changed.
func (s *Selection) Deselect(dataIndex int) bool {
	if _, ok := s.selected[dataIndex]; !ok {
		return false
	}
	delete(s.selected, dataIndex)
	return true
}

// Toggle selects or deselects dataIndex
// and reports if it is selected afterwards.
func (s *Selection) Toggle(dataIndex int) bool {
	if s.IsSelected(dataIndex) {
		s.Deselect(dataIndex)
		return false
	}
	return s.Select(dataIndex)
}

// SelectAll selects all selectable rows of numRows.
// In SelectSingle mode only the first selectable row is selected
// and an existing selection is kept.
func (s *Selection) SelectAll(numRows int) {
	if s.mode == SelectSingle && len(s.selected) > 0 {
		return
	}
	for i := 0; i < numRows; i++ {
		if s.Select(i) && s.mode == SelectSingle {
			return
		}
	}
}

// Clear deselects all rows.
func (s *Selection) Clear() {
	clear(s.selected)
}

// IsSelected reports if dataIndex is selected.
func (s *Selection) IsSelected(dataIndex int) bool {
	_, ok := s.selected[dataIndex]
	return ok
}

// Selected returns the selected data indices in ascending order.
func (s *Selection) Selected() []int {
	return slices.Sorted(maps.Keys(s.selected))
}

// Len returns the number of selected rows.
func (s *Selection) Len() int {
	return len(s.selected)
}

// IsAllSelected reports if the number of selected
// rows equals numRows. It is false for zero rows.
func (s *Selection) IsAllSelected(numRows int) bool {
	return numRows > 0 && len(s.selected) == numRows
}

// MasterToggle clears the selection if all numRows are selected,
// else it selects all rows.
func (s *Selection) MasterToggle(numRows int) {
	if s.IsAllSelected(numRows) {
		s.Clear()
	} else {
		s.SelectAll(numRows)
	}
}

// Retain removes all selected indices >= numRows.
func (s *Selection) Retain(numRows int) {
	for i := range s.selected {
		if i >= numRows {
			delete(s.selected, i)
		}
	}
}

// CheckboxLabel returns the accessibility label of the checkbox
// for the row at dataIndex, or of the select all checkbox
// if dataIndex is negative.
func (s *Selection) CheckboxLabel(dataIndex, numRows int) string {
	if dataIndex < 0 {
		if s.IsAllSelected(numRows) {
			return "deselect all"
		}
		return "select all"
	}
	if s.IsSelected(dataIndex) {
		return fmt.Sprintf("deselect row %d", dataIndex+1)
	}
	return fmt.Sprintf("select row %d", dataIndex+1)
}
