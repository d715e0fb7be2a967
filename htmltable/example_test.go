package htmltable_test

import (
	"fmt"

	"github.com/domonda/go-datatable"
	"github.com/domonda/go-datatable/htmltable"
)

func ExampleBuilder_Build() {
	columns, _ := datatable.NormalizeColumns(
		datatable.ColumnName("Company"),
		datatable.ColumnDef{Name: "ID", Label: "Company ID"},
	)
	rows := datatable.NormalizeRows(columns,
		datatable.Positional{"Smith & Sons", 1},
		datatable.Positional{`"Quoted" Ltd`, 2},
	)
	html, err := htmltable.NewBuilder().WithStyle("").Build(columns, rows)
	if err != nil {
		panic(err)
	}
	fmt.Println(html)

	// Output:
	// <table style="width:100%;height:100%"><tr><th>Company</th><th>Company ID</th></tr><tr><td>Smith &amp; Sons</td><td>1</td></tr><tr><td>&quot;Quoted&quot; Ltd</td><td>2</td></tr></table>
}
