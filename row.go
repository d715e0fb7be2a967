package datatable

import (
	"fmt"
	"maps"
	"reflect"
)

// Row maps column names to cell values.
type Row map[string]any

// RowInput is the raw input for one row.
// It is implemented by Keyed and Positional.
type RowInput interface {
	normalizeRow(displayed []string) Row
}

var (
	_ RowInput = Keyed(nil)
	_ RowInput = Positional(nil)
)

// Keyed is a row input already keyed by column name.
type Keyed Row

func (k Keyed) normalizeRow([]string) Row {
	row := Row(maps.Clone(k))
	if row == nil {
		row = Row{}
	}
	return row
}

// Positional is a row input given as ordered values
// that are mapped to the displayed columns by position.
type Positional []any

func (p Positional) normalizeRow(displayed []string) Row {
	row := make(Row, min(len(p), len(displayed)))
	for i, name := range displayed {
		if i >= len(p) {
			break
		}
		row[name] = p[i]
	}
	return row
}

// NormalizeRows converts row inputs into keyed rows.
//
// Positional inputs are zipped against the names of the displayed
// columns in order. Hidden columns can't receive positional values,
// extra values are dropped and missing trailing values leave
// their keys unset.
// Cell values are not validated against their columns.
func NormalizeRows(columns []Column, inputs ...RowInput) []Row {
	displayed := DisplayedColumnNames(columns)
	rows := make([]Row, 0, len(inputs))
	for _, input := range inputs {
		if input == nil {
			rows = append(rows, Row{})
			continue
		}
		rows = append(rows, input.normalizeRow(displayed))
	}
	return rows
}

// RowInputs classifies raw row values once at ingestion
// using DefaultStructFieldNaming for struct rows.
// See StructFieldNaming.RowInputs.
func RowInputs(data ...any) []RowInput {
	return DefaultStructFieldNaming.RowInputs(data...)
}

// RowInputs classifies raw row values once at ingestion:
//   - Row, Keyed, Positional and RowInput values are used as is
//   - maps with string keys and structs (or pointers to them) become Keyed,
//     struct fields named with n
//   - slices and arrays except []byte become Positional
//   - nil becomes an empty Keyed row
//   - any other value becomes a Positional with that single value
func (n *StructFieldNaming) RowInputs(data ...any) []RowInput {
	inputs := make([]RowInput, len(data))
	for i, d := range data {
		inputs[i] = n.rowInput(d)
	}
	return inputs
}

func (n *StructFieldNaming) rowInput(d any) RowInput {
	switch x := d.(type) {
	case nil:
		return Keyed{}
	case RowInput:
		return x
	case Row:
		return Keyed(x)
	case map[string]any:
		return Keyed(x)
	case []any:
		return Positional(x)
	case []byte:
		return Positional{x}
	}

	v := reflect.ValueOf(d)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return Keyed{}
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return Positional{d}
		}
		row := make(Keyed, v.Len())
		for iter := v.MapRange(); iter.Next(); {
			row[iter.Key().String()] = iter.Value().Interface()
		}
		return row
	case reflect.Struct:
		if _, ok := v.Interface().(fmt.Stringer); ok {
			// Stringer structs like time.Time are cell values
			return Positional{d}
		}
		return n.keyedStruct(v)
	case reflect.Slice, reflect.Array:
		row := make(Positional, v.Len())
		for i := range row {
			row[i] = v.Index(i).Interface()
		}
		return row
	}
	return Positional{d}
}
