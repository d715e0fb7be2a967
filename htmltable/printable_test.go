package htmltable

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	fs "github.com/ungerik/go-fs"

	"github.com/domonda/go-datatable"
)

func TestEscapeString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "plain", want: "plain"},
		{in: "<script>", want: "&lt;script&gt;"},
		{in: `a & "b" 'c' ` + "`d`", want: "a &amp; &quot;b&quot; &#x27;c&#x27; &#x60;d&#x60;"},
		{in: "&amp;", want: "&amp;amp;"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, EscapeString(tt.in))
		})
	}
}

func TestPrintableHTML(t *testing.T) {
	columns, err := datatable.NormalizeColumns(
		datatable.ColumnDef{Name: "name", Label: "Name <b>"},
		datatable.ColumnDef{Name: "secret", Options: datatable.ColumnOptionsPatch{Print: datatable.Bool(false)}},
		datatable.ColumnName("age"),
	)
	require.NoError(t, err)
	rows := []datatable.Row{
		{"name": "<script>", "secret": "x", "age": 30},
		{"name": "Bob"},
	}

	html := PrintableHTML(columns, rows)
	require.True(t, strings.HasPrefix(html, Style))
	require.Equal(t, ``+
		`<table style="width:100%;height:100%">`+
		`<tr><th>Name &lt;b&gt;</th><th>age</th></tr>`+
		`<tr><td>&lt;script&gt;</td><td>30</td></tr>`+
		`<tr><td>Bob</td><td></td></tr>`+
		`</table>`,
		strings.TrimPrefix(html, Style),
	)
	require.NotContains(t, html, "<script>")
	require.NotContains(t, html, "secret")
}

func TestPrintableHTML_NoRows(t *testing.T) {
	columns, err := datatable.NormalizeColumns(datatable.ColumnName("a"))
	require.NoError(t, err)
	html, err := NewBuilder().WithStyle("").Build(columns, nil)
	require.NoError(t, err)
	require.Equal(t, `<table style="width:100%;height:100%"><tr><th>a</th></tr></table>`, html)
}

func TestDocument(t *testing.T) {
	require.Equal(t, `<html><head></head><body><p>x</p></body></html>`, Document(`<p>x</p>`))
}

func TestPrint(t *testing.T) {
	columns, err := datatable.NormalizeColumns(datatable.ColumnName("a"))
	require.NoError(t, err)
	rows := []datatable.Row{{"a": 1}}

	var printed string
	printer := PrinterFunc(func(ctx context.Context, html string) error {
		printed = html
		return nil
	})
	require.NoError(t, Print(context.Background(), printer, columns, rows))
	require.Equal(t, PrintableHTML(columns, rows), printed)

	file := fs.File(t.TempDir()).Join("print.html")
	require.NoError(t, Print(context.Background(), FilePrinter{File: file}, columns, rows))
	data, err := file.ReadAll()
	require.NoError(t, err)
	require.Equal(t, Document(printed), string(data))
}
