package datatable

import (
	"encoding"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"time"
)

// CellFormatter formats cell values as strings for export.
type CellFormatter interface {
	// FormatCell formats the value of a cell in column
	// or returns a wrapped errors.ErrUnsupported error if
	// it doesn't support formatting the value.
	FormatCell(column *Column, value any) (string, error)
}

// CellFormatterFunc implements CellFormatter for a function.
type CellFormatterFunc func(column *Column, value any) (string, error)

func (f CellFormatterFunc) FormatCell(column *Column, value any) (string, error) {
	return f(column, value)
}

// PrintfCellFormatter implements CellFormatter by calling
// fmt.Sprintf with this type's string value as format.
type PrintfCellFormatter string

func (format PrintfCellFormatter) FormatCell(_ *Column, value any) (string, error) {
	return fmt.Sprintf(string(format), value), nil
}

// Ensure that TypeFormatters implements CellFormatter
var _ CellFormatter = new(TypeFormatters)

// TypeFormatters selects a CellFormatter by the value's type,
// then by column name, then by reflect.Kind.
// A nil *TypeFormatters supports no values.
type TypeFormatters struct {
	Types   map[reflect.Type]CellFormatter
	Columns map[string]CellFormatter
	Kinds   map[reflect.Kind]CellFormatter
}

func (f *TypeFormatters) FormatCell(column *Column, value any) (string, error) {
	if f == nil || value == nil {
		return "", errors.ErrUnsupported
	}
	typ := reflect.TypeOf(value)
	if tf, ok := f.Types[typ]; ok {
		str, err := tf.FormatCell(column, value)
		if !errors.Is(err, errors.ErrUnsupported) {
			return str, err
		}
	}
	if column != nil {
		if cf, ok := f.Columns[column.Name]; ok {
			str, err := cf.FormatCell(column, value)
			if !errors.Is(err, errors.ErrUnsupported) {
				return str, err
			}
		}
	}
	if kf, ok := f.Kinds[typ.Kind()]; ok {
		return kf.FormatCell(column, value)
	}
	return "", errors.ErrUnsupported
}

func (f *TypeFormatters) cloneOrNew() *TypeFormatters {
	if f == nil {
		return new(TypeFormatters)
	}
	c := new(TypeFormatters)
	if len(f.Types) > 0 {
		c.Types = make(map[reflect.Type]CellFormatter, len(f.Types))
		for key, val := range f.Types {
			c.Types[key] = val
		}
	}
	if len(f.Columns) > 0 {
		c.Columns = make(map[string]CellFormatter, len(f.Columns))
		for key, val := range f.Columns {
			c.Columns[key] = val
		}
	}
	if len(f.Kinds) > 0 {
		c.Kinds = make(map[reflect.Kind]CellFormatter, len(f.Kinds))
		for key, val := range f.Kinds {
			c.Kinds[key] = val
		}
	}
	return c
}

func (f *TypeFormatters) WithTypeFormatter(typ reflect.Type, formatter CellFormatter) *TypeFormatters {
	mod := f.cloneOrNew()
	if mod.Types == nil {
		mod.Types = make(map[reflect.Type]CellFormatter)
	}
	mod.Types[typ] = formatter
	return mod
}

func (f *TypeFormatters) WithColumnFormatter(column string, formatter CellFormatter) *TypeFormatters {
	mod := f.cloneOrNew()
	if mod.Columns == nil {
		mod.Columns = make(map[string]CellFormatter)
	}
	mod.Columns[column] = formatter
	return mod
}

func (f *TypeFormatters) WithKindFormatter(kind reflect.Kind, formatter CellFormatter) *TypeFormatters {
	mod := f.cloneOrNew()
	if mod.Kinds == nil {
		mod.Kinds = make(map[reflect.Kind]CellFormatter)
	}
	mod.Kinds[kind] = formatter
	return mod
}

// FormatCell formats value with formatter if it is not nil
// and supports the value, else CellString is used.
// Errors other than errors.ErrUnsupported are returned.
func FormatCell(formatter CellFormatter, column *Column, value any) (string, error) {
	if formatter != nil {
		str, err := formatter.FormatCell(column, value)
		if !errors.Is(err, errors.ErrUnsupported) {
			return str, err
		}
	}
	return CellString(value), nil
}

// TimeFormat is the ISO 8601 layout used for time.Time cells.
const TimeFormat = "2006-01-02T15:04:05.000Z07:00"

// CellString converts a cell value of any type to a string.
//
//   - nil and nil pointers become ""
//   - strings pass through
//   - numbers use their shortest decimal form
//   - booleans become "true" or "false"
//   - time.Time becomes an ISO 8601 UTC timestamp with milliseconds
//   - error, fmt.Stringer and encoding.TextMarshaler use their methods
//   - every other value falls back to fmt.Sprint
//
// CellString never fails, malformed values are coerced best effort.
func CellString(value any) string {
	switch x := value.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return formatFloat(x, 64)
	case float32:
		return formatFloat(float64(x), 32)
	case time.Time:
		return x.UTC().Format(TimeFormat)
	case *time.Time:
		if x == nil {
			return ""
		}
		return x.UTC().Format(TimeFormat)
	case []byte:
		return string(x)
	}

	v := reflect.ValueOf(value)
	if ValueIsNil(v) {
		return ""
	}
	switch x := value.(type) {
	case error:
		return x.Error()
	case fmt.Stringer:
		return x.String()
	case encoding.TextMarshaler:
		if text, err := x.MarshalText(); err == nil {
			return string(text)
		}
	}
	switch v.Kind() {
	case reflect.Pointer:
		return CellString(v.Elem().Interface())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32:
		return formatFloat(v.Float(), 32)
	case reflect.Float64:
		return formatFloat(v.Float(), 64)
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.String:
		return v.String()
	}
	return fmt.Sprint(value)
}

func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		return strconv.FormatFloat(f, 'g', -1, bitSize)
	}
	return strconv.FormatFloat(f, 'f', -1, bitSize)
}
