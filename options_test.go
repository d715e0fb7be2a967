package datatable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()
	require.True(t, o.Pagination)
	require.Equal(t, SelectMultiple, o.SelectableRows)
	require.Equal(t, FilterDropdown, o.FilterType)
	require.Equal(t, 10, o.RowsPerPage)
	require.Equal(t, []int{10, 15, 20}, o.RowsPerPageOptions)
	require.Equal(t, 4, o.Elevation)
	require.Equal(t, ResponsiveStacked, o.Responsive)
	require.Equal(t, DownloadOptions{Filename: "tableDownload.csv", Separator: ",", Encoding: "UTF-8"}, o.DownloadOptions)
	require.Equal(t, DefaultTextLabels(), o.TextLabels)
	require.True(t, o.IsRowSelectable(123))
	require.True(t, o.OnRowsDelete([]int{0}))

	// Every call returns a fresh value
	o.RowsPerPageOptions[0] = 99
	o.TextLabels.Body.NoMatch = "changed"
	require.Equal(t, []int{10, 15, 20}, DefaultOptions().RowsPerPageOptions)
	require.Equal(t, DefaultTextLabels().Body.NoMatch, DefaultOptions().TextLabels.Body.NoMatch)
}

func TestResolveOptions(t *testing.T) {
	t.Run("nil patch", func(t *testing.T) {
		o := ResolveOptions(nil)
		require.True(t, o.Search)
		require.True(t, o.Download)
		require.NotNil(t, o.OnDownload)
		require.NotNil(t, o.OnTableChange)
	})

	t.Run("search disabled", func(t *testing.T) {
		o := ResolveOptions(&OptionsPatch{Search: Bool(false)})
		def := DefaultOptions()
		require.False(t, o.Search)
		require.Equal(t, def.Pagination, o.Pagination)
		require.Equal(t, def.Sort, o.Sort)
		require.Equal(t, def.Filter, o.Filter)
		require.Equal(t, def.RowsPerPage, o.RowsPerPage)
		require.Equal(t, def.TextLabels, o.TextLabels)
		require.Equal(t, def.DownloadOptions, o.DownloadOptions)
	})

	t.Run("nested records replaced wholesale", func(t *testing.T) {
		o := ResolveOptions(&OptionsPatch{
			DownloadOptions: &DownloadOptions{Filename: "export.csv"},
			TextLabels:      &TextLabels{},
		})
		require.Equal(t, DownloadOptions{Filename: "export.csv"}, o.DownloadOptions)
		require.Equal(t, TextLabels{}, o.TextLabels)
	})

	t.Run("case sensitive search", func(t *testing.T) {
		row := Row{"Name": "Alice"}
		insensitive := ResolveOptions(nil)
		require.True(t, insensitive.CustomSearch("alice", row, nil))

		sensitive := ResolveOptions(&OptionsPatch{CaseSensitive: Bool(true)})
		require.False(t, sensitive.CustomSearch("alice", row, nil))
		require.True(t, sensitive.CustomSearch("Alice", row, nil))
	})

	t.Run("custom search replaces predicate", func(t *testing.T) {
		o := ResolveOptions(&OptionsPatch{
			CustomSearch: func(query string, row Row, columns []Column) bool {
				return row["Name"] == query
			},
		})
		match := o.SearchFunc(nil)
		require.True(t, match(Row{"Name": "Alice"}, "Alice"))
		require.False(t, match(Row{"Name": "Alice"}, "Ali"))
	})

	t.Run("callbacks", func(t *testing.T) {
		var deleted []int
		o := ResolveOptions(&OptionsPatch{
			OnRowsDelete: func(rows []int) bool {
				deleted = rows
				return false
			},
		})
		require.False(t, o.OnRowsDelete([]int{1, 2}))
		require.Equal(t, []int{1, 2}, deleted)
		// Unset callbacks keep their no-op defaults
		o.OnRowsSelect(nil, nil)
		o.OnSearchOpen()
	})

	t.Run("patch slices are copied", func(t *testing.T) {
		patch := &OptionsPatch{RowsSelected: []int{1}, RowsPerPageOptions: []int{5, 50}}
		o := ResolveOptions(patch)
		patch.RowsSelected[0] = 7
		require.Equal(t, []int{1}, o.RowsSelected)
		require.Equal(t, []int{5, 50}, o.RowsPerPageOptions)
	})
}

func TestDefaultDownload(t *testing.T) {
	head := func([]Column) string { return "\"a\"\r\n" }
	body := func([]Row) string { return "\"1\"\r\n  " }
	csv, ok := DefaultDownload(head, body, nil, nil)
	require.True(t, ok)
	require.Equal(t, "\"a\"\r\n\"1\"", csv)
}
