package datatable

import (
	"fmt"
	"maps"
	"slices"
)

// FilterType is the kind of filter view used for a column.
type FilterType string

const (
	FilterCheckbox    FilterType = "checkbox"
	FilterDropdown    FilterType = "dropdown"
	FilterMultiselect FilterType = "multiselect"
	FilterTextField   FilterType = "textField"
	FilterCustom      FilterType = "custom"
)

// SortDirection of a sorted column.
// The zero value means not sorted.
type SortDirection string

const (
	SortNone SortDirection = ""
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Column is the normalized descriptor of one table column.
type Column struct {
	// Name is the unique key of the column within a table
	// and the key of the column's values in a Row.
	Name string `yaml:"name"`
	// Label is the display name, defaults to Name.
	Label string `yaml:"label"`
	// Options controlling display, filter, sort, search, print and download.
	Options ColumnOptions `yaml:"options"`
	// Extra holds unknown descriptor fields passed through unchanged.
	Extra map[string]any `yaml:",inline"`
}

// ColumnOptions is the flat per-column behavior record.
type ColumnOptions struct {
	// Display column in table
	Display bool `yaml:"display"`
	// Empty marks an intentionally empty column without data
	Empty bool `yaml:"empty"`
	// ViewColumns allows toggling visibility through the view columns list
	ViewColumns bool `yaml:"viewColumns"`
	// Filter shows the column in the filter list
	Filter bool `yaml:"filter"`
	// FilterType takes priority over the table wide filter type
	FilterType FilterType `yaml:"filterType"`
	// FilterList holds preselected filter values
	FilterList []string `yaml:"filterList"`
	// FilterOptions holds custom filter field names
	FilterOptions []string `yaml:"filterOptions"`
	// Sort enables sorting on the column
	Sort bool `yaml:"sort"`
	// Searchable includes the column in search results
	Searchable bool `yaml:"searchable"`
	// SortDirection is the initial sort order
	SortDirection SortDirection `yaml:"sortDirection"`
	// Print includes the column when printing
	Print bool `yaml:"print"`
	// Download includes the column in the CSV download
	Download bool `yaml:"download"`
	// Hint is shown as tooltip
	Hint string `yaml:"hint"`
}

// DefaultColumnOptions returns a new ColumnOptions
// with every field at its documented default.
func DefaultColumnOptions() ColumnOptions {
	return ColumnOptions{
		Display:     true,
		Empty:       false,
		ViewColumns: false,
		Filter:      true,
		FilterType:  FilterDropdown,
		Sort:        true,
		Searchable:  true,
		Print:       true,
		Download:    true,
	}
}

// ColumnOptionsPatch overlays ColumnOptions field by field.
// A nil field keeps the default value,
// a non nil slice replaces the default slice wholesale.
type ColumnOptionsPatch struct {
	Display       *bool          `yaml:"display,omitempty"`
	Empty         *bool          `yaml:"empty,omitempty"`
	ViewColumns   *bool          `yaml:"viewColumns,omitempty"`
	Filter        *bool          `yaml:"filter,omitempty"`
	FilterType    *FilterType    `yaml:"filterType,omitempty"`
	FilterList    []string       `yaml:"filterList,omitempty"`
	FilterOptions []string       `yaml:"filterOptions,omitempty"`
	Sort          *bool          `yaml:"sort,omitempty"`
	Searchable    *bool          `yaml:"searchable,omitempty"`
	SortDirection *SortDirection `yaml:"sortDirection,omitempty"`
	Print         *bool          `yaml:"print,omitempty"`
	Download      *bool          `yaml:"download,omitempty"`
	Hint          *string        `yaml:"hint,omitempty"`
}

// Apply returns a copy of base with all non nil fields of p set.
func (p *ColumnOptionsPatch) Apply(base ColumnOptions) ColumnOptions {
	if p == nil {
		return base
	}
	setIfNotNil(&base.Display, p.Display)
	setIfNotNil(&base.Empty, p.Empty)
	setIfNotNil(&base.ViewColumns, p.ViewColumns)
	setIfNotNil(&base.Filter, p.Filter)
	setIfNotNil(&base.FilterType, p.FilterType)
	if p.FilterList != nil {
		base.FilterList = slices.Clone(p.FilterList)
	}
	if p.FilterOptions != nil {
		base.FilterOptions = slices.Clone(p.FilterOptions)
	}
	setIfNotNil(&base.Sort, p.Sort)
	setIfNotNil(&base.Searchable, p.Searchable)
	setIfNotNil(&base.SortDirection, p.SortDirection)
	setIfNotNil(&base.Print, p.Print)
	setIfNotNil(&base.Download, p.Download)
	setIfNotNil(&base.Hint, p.Hint)
	return base
}

// ColumnSpec is the raw input for one column.
// It is implemented by ColumnName, ColumnDef and Column.
type ColumnSpec interface {
	normalizeColumn() Column
}

var (
	_ ColumnSpec = ColumnName("")
	_ ColumnSpec = ColumnDef{}
	_ ColumnSpec = Column{}
)

// ColumnName is a column spec given only by its name.
type ColumnName string

func (n ColumnName) normalizeColumn() Column {
	return Column{
		Name:    string(n),
		Label:   string(n),
		Options: DefaultColumnOptions(),
	}
}

// ColumnDef is a partial column descriptor.
// Unset fields take their defaults.
type ColumnDef struct {
	Name    string             `yaml:"name"`
	Label   string             `yaml:"label,omitempty"`
	Options ColumnOptionsPatch `yaml:"options,omitempty"`
	Extra   map[string]any     `yaml:",inline"`
}

func (d ColumnDef) normalizeColumn() Column {
	col := Column{
		Name:    d.Name,
		Label:   d.Label,
		Options: d.Options.Apply(DefaultColumnOptions()),
		Extra:   maps.Clone(d.Extra),
	}
	if col.Label == "" {
		col.Label = col.Name
	}
	return col
}

func (c Column) normalizeColumn() Column {
	c.Options.FilterList = slices.Clone(c.Options.FilterList)
	c.Options.FilterOptions = slices.Clone(c.Options.FilterOptions)
	c.Extra = maps.Clone(c.Extra)
	if c.Label == "" {
		c.Label = c.Name
	}
	return c
}

// NormalizeColumns converts column specs into fully populated
// column descriptors in the same order.
//
// A spec without a name results in an error wrapping ErrColumnWithoutName,
// a repeated name in an error wrapping ErrDuplicateColumnName.
// Normalizing already normalized columns returns equal columns.
func NormalizeColumns(specs ...ColumnSpec) ([]Column, error) {
	columns := make([]Column, 0, len(specs))
	names := make(map[string]int, len(specs))
	for i, spec := range specs {
		if spec == nil {
			return nil, fmt.Errorf("%w: column spec %d is nil", ErrColumnWithoutName, i)
		}
		col := spec.normalizeColumn()
		if col.Name == "" {
			return nil, fmt.Errorf("%w: column %d (label %q)", ErrColumnWithoutName, i, col.Label)
		}
		if prev, ok := names[col.Name]; ok {
			return nil, fmt.Errorf("%w: %q at column %d and %d", ErrDuplicateColumnName, col.Name, prev, i)
		}
		names[col.Name] = i
		columns = append(columns, col)
	}
	return columns, nil
}

// ColumnNames returns the names of all columns.
func ColumnNames(columns []Column) []string {
	names := make([]string, len(columns))
	for i := range columns {
		names[i] = columns[i].Name
	}
	return names
}

// DisplayedColumnNames returns the names
// of the columns with Options.Display set.
func DisplayedColumnNames(columns []Column) []string {
	var names []string
	for i := range columns {
		if columns[i].Options.Display {
			names = append(names, columns[i].Name)
		}
	}
	return names
}

// ColumnIndex returns the index of the column with name
// or -1 if there is no such column.
func ColumnIndex(columns []Column, name string) int {
	return slices.IndexFunc(columns, func(c Column) bool { return c.Name == name })
}

// SpecsOf converts normalized columns back to specs,
// for example to pass them to NormalizeColumns again.
func SpecsOf(columns []Column) []ColumnSpec {
	specs := make([]ColumnSpec, len(columns))
	for i := range columns {
		specs[i] = columns[i]
	}
	return specs
}

func setIfNotNil[T any](dest *T, src *T) {
	if src != nil {
		*dest = *src
	}
}

// Bool returns a pointer to b for use in patch structs.
func Bool(b bool) *bool { return &b }

// Int returns a pointer to i for use in patch structs.
func Int(i int) *int { return &i }

// String returns a pointer to s for use in patch structs.
func String(s string) *string { return &s }
