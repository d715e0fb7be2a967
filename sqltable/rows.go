// Package sqltable loads table columns and rows
// from SQL query results.
package sqltable

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/domonda/go-datatable"
)

var _ Rows = &sql.Rows{}

// Rows abstracts the methods of *sql.Rows
// used for scanning query results.
type Rows interface {
	Columns() ([]string, error)
	Scan(dest ...any) error
	Close() error
	Next() bool
	Err() error
}

// Queryer is implemented by *sql.DB, *sql.Conn and *sql.Tx.
type Queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Query executes query and returns the result columns
// as column specs and the result rows as keyed row inputs.
func Query(ctx context.Context, db Queryer, query string, args ...any) ([]datatable.ColumnSpec, []datatable.RowInput, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("can't query table data: %w", err)
	}
	return ScanRows(ctx, rows)
}

// ScanRows reads all rows and closes them.
// Every result column becomes a column spec named like the column
// and every result row a datatable.Keyed input.
// Byte slice values are converted to strings.
func ScanRows(ctx context.Context, rows Rows) (specs []datatable.ColumnSpec, inputs []datatable.RowInput, err error) {
	defer func() {
		if e := rows.Close(); e != nil && err == nil {
			err = e
		}
	}()

	columns, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}
	specs = make([]datatable.ColumnSpec, len(columns))
	for i, name := range columns {
		specs[i] = datatable.ColumnName(name)
	}

	for rows.Next() {
		if ctx.Err() != nil {
			return nil, nil, ctx.Err()
		}
		scannedValues := make([]any, len(columns))
		valueScanners := make([]any, len(columns))
		for i := range valueScanners {
			valueScanners[i] = valueScanner{&scannedValues[i]}
		}
		err = rows.Scan(valueScanners...)
		if err != nil {
			return nil, nil, err
		}
		row := make(datatable.Keyed, len(columns))
		for i, name := range columns {
			row[name] = scannedValues[i]
		}
		inputs = append(inputs, row)
	}
	if err = rows.Err(); err != nil {
		return nil, nil, err
	}
	return specs, inputs, nil
}

var _ sql.Scanner = new(valueScanner)

type valueScanner struct {
	dest *any
}

// Scan implements the database/sql.Scanner interface.
func (s valueScanner) Scan(src any) error {
	if b, ok := src.([]byte); ok {
		// Copy bytes because they won't be valid after this method call
		src = string(b)
	}
	*s.dest = src
	return nil
}
