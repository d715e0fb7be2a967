package datatable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelection(t *testing.T) {
	t.Run("multiple", func(t *testing.T) {
		s := NewSelection(SelectMultiple, nil)
		require.True(t, s.Select(2))
		require.False(t, s.Select(2), "already selected")
		require.True(t, s.Select(0))
		require.False(t, s.Select(-1))
		require.Equal(t, []int{0, 2}, s.Selected())
		require.Equal(t, 2, s.Len())

		require.True(t, s.Deselect(2))
		require.False(t, s.Deselect(2))
		require.Equal(t, []int{0}, s.Selected())

		require.True(t, s.Toggle(1))
		require.False(t, s.Toggle(0))
		require.Equal(t, []int{1}, s.Selected())
	})

	t.Run("single", func(t *testing.T) {
		s := NewSelection(SelectSingle, nil)
		require.True(t, s.Select(1))
		require.True(t, s.Select(3))
		require.Equal(t, []int{3}, s.Selected())
		s.SelectAll(5)
		require.Equal(t, 1, s.Len())
	})

	t.Run("none", func(t *testing.T) {
		s := NewSelection(SelectNone, nil)
		require.False(t, s.Select(0))
		s.SelectAll(3)
		require.Empty(t, s.Selected())
	})

	t.Run("selectable rows", func(t *testing.T) {
		even := func(i int) bool { return i%2 == 0 }
		s := NewSelection(SelectMultiple, even)
		require.False(t, s.Select(1))
		s.SelectAll(5)
		require.Equal(t, []int{0, 2, 4}, s.Selected())
	})

	t.Run("master toggle", func(t *testing.T) {
		s := NewSelection(SelectMultiple, nil)
		s.Select(1)
		require.Equal(t, "select all", s.CheckboxLabel(-1, 3))
		s.MasterToggle(3)
		require.True(t, s.IsAllSelected(3))
		require.Equal(t, "deselect all", s.CheckboxLabel(-1, 3))
		require.Equal(t, "deselect row 2", s.CheckboxLabel(1, 3))
		s.MasterToggle(3)
		require.Empty(t, s.Selected())
		require.Equal(t, "select row 2", s.CheckboxLabel(1, 3))
	})

	t.Run("single keeps selection on select all", func(t *testing.T) {
		s := NewSelection(SelectSingle, nil)
		s.Select(0)
		s.SelectAll(3)
		require.Equal(t, []int{0}, s.Selected())
		s.MasterToggle(3)
		require.Equal(t, []int{0}, s.Selected())
	})

	t.Run("no rows", func(t *testing.T) {
		s := NewSelection(SelectMultiple, nil)
		require.False(t, s.IsAllSelected(0))
		require.Equal(t, "select all", s.CheckboxLabel(-1, 0))
		s.MasterToggle(0)
		require.Empty(t, s.Selected())
	})

	t.Run("retain", func(t *testing.T) {
		s := NewSelection(SelectMultiple, nil)
		s.SelectAll(5)
		s.Retain(2)
		require.Equal(t, []int{0, 1}, s.Selected())
		s.Clear()
		require.Zero(t, s.Len())
	})
}
