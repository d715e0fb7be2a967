// Package datatable contains the data pipeline of a data-table widget.
//
// Raw column specs and raw rows are normalized into a uniform shape
// that the rendering widget, the search predicate and the export
// packages (csvtable, htmltable, exceltable) consume:
//
//	columns, err := datatable.NormalizeColumns(
//	    datatable.ColumnName("Name"),
//	    datatable.ColumnDef{Name: "Age", Options: datatable.ColumnOptionsPatch{Print: datatable.Bool(false)}},
//	)
//	rows := datatable.NormalizeRows(columns,
//	    datatable.Positional{"Alice", 30},
//	    datatable.Keyed{"Name": "Bob", "Age": 25},
//	)
//	options := datatable.ResolveOptions(&datatable.OptionsPatch{Search: datatable.Bool(false)})
//
// Normalization and option resolution are pure functions:
// every call returns fresh values and never mutates its input.
package datatable
