package csvtable_test

import (
	"fmt"

	"github.com/domonda/go-datatable"
	"github.com/domonda/go-datatable/csvtable"
)

func ExampleWriter_Build() {
	type Employee struct {
		Name   string `col:"Name"`
		Age    int    `col:"Age"`
		Salary int    `col:"-"`
	}
	columns, err := datatable.NormalizeColumns(
		datatable.DefaultStructFieldNaming.Columns(Employee{})...,
	)
	if err != nil {
		panic(err)
	}
	rows := datatable.NormalizeRows(columns, datatable.RowInputs(
		Employee{Name: "Alice", Age: 30, Salary: 1000},
		Employee{Name: `Bob "The Builder"`, Age: 25},
	)...)

	csv, _ := csvtable.NewWriter().WithNewLine("\n").Build(columns, rows, nil)
	fmt.Println(csv)

	// Output:
	// "Name","Age"
	// "Alice","30"
	// "Bob ""The Builder""","25"
}
