package datatable

import (
	"fmt"
	"go/token"
	"reflect"
	"strings"
)

// DefaultStructFieldNaming uses "col" as column name tag,
// ignores "-" named fields, and uses SpacePascalCase
// for untagged fields.
var DefaultStructFieldNaming = StructFieldNaming{
	Tag:      "col",
	Ignore:   "-",
	Untagged: SpacePascalCase,
}

// StructFieldNaming defines how struct fields
// are mapped to column names for struct rows.
//
// nil is a valid value for *StructFieldNaming
// and is equal to the zero value
// which will use all exported struct fields
// with their field name as column name.
type StructFieldNaming struct {
	// Tag is the struct field tag to be used as column name.
	// If Tag is empty, then every struct field will be treated as untagged.
	Tag string
	// Ignore is the column name of fields that are skipped.
	Ignore string
	// Untagged will be called with the struct field name to
	// return a column name in case the struct field has no tag named Tag.
	// If Untagged is nil, then the struct field name will be used.
	Untagged func(fieldName string) (column string)
}

// String implements the fmt.Stringer interface for StructFieldNaming.
func (n *StructFieldNaming) String() string {
	if n == nil {
		return `StructFieldNaming{Tag: "", Ignore: ""}`
	}
	return fmt.Sprintf("StructFieldNaming{Tag: %#v, Ignore: %#v}", n.Tag, n.Ignore)
}

// StructFieldColumn returns the column name for a struct field.
func (n *StructFieldNaming) StructFieldColumn(field reflect.StructField) string {
	if n == nil {
		return field.Name
	}
	if n.Tag != "" {
		if tag, ok := field.Tag.Lookup(n.Tag); ok {
			if i := strings.IndexByte(tag, ','); i != -1 {
				tag = tag[:i]
			}
			if tag != "" {
				return tag
			}
		}
	}
	if n.Untagged == nil {
		return field.Name
	}
	return n.Untagged(field.Name)
}

func (n *StructFieldNaming) isIgnored(column string) bool {
	return column == "" || (n != nil && n.Ignore != "" && column == n.Ignore)
}

// Columns returns the column specs for the exported fields
// of a struct or struct pointer, including the inlined fields
// of anonymously embedded structs.
func (n *StructFieldNaming) Columns(strct any) []ColumnSpec {
	typ := reflect.TypeOf(strct)
	for typ != nil && typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	specs := []ColumnSpec{}
	if typ == nil || typ.Kind() != reflect.Struct {
		return specs
	}
	for _, field := range structFields(typ) {
		if column := n.StructFieldColumn(field); !n.isIgnored(column) {
			specs = append(specs, ColumnName(column))
		}
	}
	return specs
}

func (n *StructFieldNaming) keyedStruct(v reflect.Value) Keyed {
	row := Keyed{}
	n.addStructFields(row, v)
	return row
}

func (n *StructFieldNaming) addStructFields(row Keyed, v reflect.Value) {
	typ := v.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		switch {
		case field.Anonymous && field.Type.Kind() == reflect.Struct:
			n.addStructFields(row, v.Field(i))
		case token.IsExported(field.Name):
			if column := n.StructFieldColumn(field); !n.isIgnored(column) {
				row[column] = v.Field(i).Interface()
			}
		}
	}
}

// structFields returns the exported fields of a struct type
// including the inlined fields of any anonymously embedded structs.
func structFields(typ reflect.Type) (fields []reflect.StructField) {
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		switch {
		case field.Anonymous && field.Type.Kind() == reflect.Struct:
			fields = append(fields, structFields(field.Type)...)
		case token.IsExported(field.Name):
			fields = append(fields, field)
		}
	}
	return fields
}
