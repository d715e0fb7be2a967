// Package exceltable exports normalized table columns and rows
// as Excel XLSX workbook.
package exceltable

import (
	"context"
	"io"
	"reflect"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/domonda/go-datatable"
)

// DefaultSheet is the sheet name used for an empty sheet argument.
const DefaultSheet = "Sheet1"

// Write writes the downloadable columns of rows as a workbook
// with a single sheet to dest.
// The first row holds the column labels.
//
// Numbers, booleans and times are written as native Excel values,
// all other values as their datatable.CellString.
//
// The sheet name is cleaned with SheetName.
func Write(ctx context.Context, dest io.Writer, sheet string, columns []datatable.Column, rows []datatable.Row) (err error) {
	sheet = SheetName(sheet)
	var included []*datatable.Column
	for i := range columns {
		if columns[i].Options.Download {
			included = append(included, &columns[i])
		}
	}
	if len(included) == 0 {
		return ErrNoColumns
	}

	f := excelize.NewFile()
	defer func() {
		if e := f.Close(); e != nil && err == nil {
			err = e
		}
	}()
	if sheet != DefaultSheet {
		if err = f.SetSheetName(DefaultSheet, sheet); err != nil {
			return err
		}
	}

	header := make([]any, len(included))
	for i, col := range included {
		header[i] = col.Label
	}
	if err = f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	values := make([]any, len(included))
	for r, row := range rows {
		if err = ctx.Err(); err != nil {
			return err
		}
		for i, col := range included {
			values[i] = CellValue(row[col.Name])
		}
		var cell string
		if cell, err = excelize.CoordinatesToCellName(1, r+2); err != nil {
			return err
		}
		if err = f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}

	_, err = f.WriteTo(dest)
	return err
}

// MaxSheetNameLength is the maximum number of characters
// of an Excel sheet name.
const MaxSheetNameLength = 31

var sheetNameReplacer = strings.NewReplacer(
	`:`, "_",
	`\`, "_",
	`/`, "_",
	`?`, "_",
	`*`, "_",
	`[`, "(",
	`]`, ")",
)

// SheetName returns name as valid Excel sheet name.
// Characters not allowed in sheet names are replaced,
// leading and trailing apostrophes and white space are removed
// and the result is truncated to MaxSheetNameLength characters.
// DefaultSheet is returned if nothing is left of name.
func SheetName(name string) string {
	name = sheetNameReplacer.Replace(name)
	name = strings.Trim(name, "' \t\r\n")
	if runes := []rune(name); len(runes) > MaxSheetNameLength {
		name = strings.TrimRight(string(runes[:MaxSheetNameLength]), "' \t\r\n")
	}
	if name == "" {
		return DefaultSheet
	}
	return name
}

// CellValue returns value as type supported natively
// by excelize or else as datatable.CellString.
func CellValue(value any) any {
	switch x := value.(type) {
	case nil:
		return nil
	case string, bool, time.Time,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return x
	case *time.Time:
		if x == nil {
			return nil
		}
		return *x
	}
	if datatable.ValueIsNil(reflect.ValueOf(value)) {
		return nil
	}
	return datatable.CellString(value)
}
