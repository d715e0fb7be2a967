package htmltable

import "html/template"

// Style is the fixed stylesheet of printable tables.
const Style = `
    <style>
        tr{width:100%;height:48px;}
        td{border-bottom:1px solid #E0E0E0;}
        th{color: #383838;border-bottom:1px solid #E0E0E0;text-align:left;}
        td:first-of-type{padding-left:5px;}
        th:first-of-type{padding-left:5px;}
        body{font-family: Roboto,"Helvetica Neue",sans-serif;}
        table{
            box-shadow: 0px 2px 4px -1px rgba(0, 0, 0, 0.2), 0px 4px 5px 0px rgba(0, 0, 0, 0.14), 0px 1px 10px 0px rgba(0, 0, 0, 0.12);
            border-spacing: 0;
        }
    </style>`

var (
	// TableTemplate renders a PrintContext.
	// Cells are already escaped with EscapeString.
	TableTemplate = template.Must(template.New("table").Parse("" +
		`<table style="width:100%;height:100%">` +
		`<tr>{{range $cell := .Header}}<th>{{$cell}}</th>{{end}}</tr>` +
		`{{range $row := .Rows}}<tr>{{range $cell := $row}}<td>{{$cell}}</td>{{end}}</tr>{{end}}` +
		`</table>`,
	))

	// DocumentTemplate wraps printable markup in a HTML document.
	DocumentTemplate = template.Must(template.New("document").Parse(
		`<html><head></head><body>{{.}}</body></html>`,
	))
)

// PrintContext is the data of TableTemplate.
type PrintContext struct {
	Header []template.HTML
	Rows   [][]template.HTML
}
