package sqltable

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/domonda/go-datatable"
)

type fakeRows struct {
	columns []string
	values  [][]any
	next    int
	scanErr error
	closed  bool
}

func (r *fakeRows) Columns() ([]string, error) { return r.columns, nil }

func (r *fakeRows) Next() bool {
	if r.next >= len(r.values) {
		return false
	}
	r.next++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	for i, value := range r.values[r.next-1] {
		if err := dest[i].(sql.Scanner).Scan(value); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeRows) Close() error {
	r.closed = true
	return nil
}

func (r *fakeRows) Err() error { return nil }

func TestScanRows(t *testing.T) {
	raw := []byte("raw")
	rows := &fakeRows{
		columns: []string{"id", "name", "data"},
		values: [][]any{
			{int64(1), "Alice", raw},
			{int64(2), nil, nil},
		},
	}
	specs, inputs, err := ScanRows(context.Background(), rows)
	require.NoError(t, err)
	require.True(t, rows.closed)
	require.Equal(t, []datatable.ColumnSpec{
		datatable.ColumnName("id"),
		datatable.ColumnName("name"),
		datatable.ColumnName("data"),
	}, specs)
	require.Equal(t, []datatable.RowInput{
		datatable.Keyed{"id": int64(1), "name": "Alice", "data": "raw"},
		datatable.Keyed{"id": int64(2), "name": nil, "data": nil},
	}, inputs)

	// Scanned bytes are not shared with the driver buffer
	raw[0] = 'X'
	require.Equal(t, "raw", inputs[0].(datatable.Keyed)["data"])

	columns, err := datatable.NormalizeColumns(specs...)
	require.NoError(t, err)
	normalized := datatable.NormalizeRows(columns, inputs...)
	require.Equal(t, datatable.Row{"id": int64(1), "name": "Alice", "data": "raw"}, normalized[0])
}

func TestScanRows_Errors(t *testing.T) {
	scanErr := errors.New("scan failed")
	rows := &fakeRows{
		columns: []string{"id"},
		values:  [][]any{{1}},
		scanErr: scanErr,
	}
	_, _, err := ScanRows(context.Background(), rows)
	require.ErrorIs(t, err, scanErr)
	require.True(t, rows.closed)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = ScanRows(ctx, &fakeRows{columns: []string{"id"}, values: [][]any{{1}}})
	require.ErrorIs(t, err, context.Canceled)
}
