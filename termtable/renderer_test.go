package termtable

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/domonda/go-datatable"
	"github.com/domonda/go-datatable/widget"
)

func TestRenderer_Render(t *testing.T) {
	table := widget.New(zerolog.Nop())
	table.SetTitle("People")
	table.SetColumns(
		datatable.ColumnName("Name"),
		datatable.ColumnDef{Name: "Secret", Options: datatable.ColumnOptionsPatch{Display: datatable.Bool(false)}},
		datatable.ColumnName("City"),
	)
	table.SetData(
		datatable.Keyed{"Name": "Alice", "Secret": "hidden value", "City": "Vienna"},
		datatable.Keyed{"Name": "Bob", "City": "Berlin"},
	)
	require.NoError(t, table.Recompute())
	require.NoError(t, table.Select(1))

	var out strings.Builder
	require.NoError(t, table.Push(context.Background(), NewRenderer(&out)))
	text := out.String()
	require.Contains(t, text, "People")
	require.Contains(t, text, "Alice")
	require.Contains(t, text, "Berlin")
	require.NotContains(t, text, "hidden value")
	require.Contains(t, text, "Rows per page: 10  1-2 of 2")
	require.Contains(t, text, "1 row(s) selected")
}

func TestRenderer_RenderNoMatch(t *testing.T) {
	table := widget.New(zerolog.Nop())
	table.SetColumns(datatable.ColumnName("Name"))
	table.SetData(datatable.Keyed{"Name": "Alice"})
	require.NoError(t, table.Recompute())
	require.NoError(t, table.Search("nobody"))

	var out strings.Builder
	require.NoError(t, table.Push(context.Background(), NewRenderer(&out)))
	require.Equal(t, datatable.DefaultTextLabels().Body.NoMatch+"\n", out.String())
}

func TestRenderer_Model(t *testing.T) {
	columns, err := datatable.NormalizeColumns(
		datatable.ColumnName("ID"),
		datatable.ColumnName("Description"),
	)
	require.NoError(t, err)
	rows := []datatable.Row{
		{"ID": 12345, "Description": strings.Repeat("x", 100)},
		{"ID": 7, "Description": "日本語"},
	}
	tableColumns, tableRows := NewRenderer(nil).WithMaxColumnWidth(20).Model(columns, rows)
	require.Equal(t, 5, tableColumns[0].Width)
	require.Equal(t, 20, tableColumns[1].Width)
	require.Equal(t, "12345", tableRows[0][0])
	require.Equal(t, "日本語", tableRows[1][1])
}
