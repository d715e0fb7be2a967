// Package widget implements the controller of a data-table widget.
//
// A Table holds the raw title, column specs, rows and options
// as set by the host. Recompute normalizes them and Push hands
// the normalized State to a Renderer. User actions like search,
// sort, filter, paging and selection update the view state
// and call the matching callbacks of the resolved options.
//
// A Table is not safe for concurrent use.
package widget

import (
	"context"
	"fmt"
	"maps"
	"reflect"
	"slices"

	"github.com/rs/zerolog"

	"github.com/domonda/go-datatable"
)

// Table actions passed to datatable.Options.OnTableChange.
const (
	ActionRecompute         = "recompute"
	ActionSearch            = "search"
	ActionSearchOpen        = "searchOpen"
	ActionSearchClose       = "searchClose"
	ActionFilterChange      = "filterChange"
	ActionResetFilters      = "resetFilters"
	ActionSort              = "sort"
	ActionChangePage        = "changePage"
	ActionChangeRowsPerPage = "changeRowsPerPage"
	ActionViewColumnsChange = "viewColumnsChange"
	ActionRowsSelect        = "rowsSelect"
	ActionRowDelete         = "rowDelete"
	ActionExpandRow         = "expandRow"
)

// Table is the controller of one data-table widget instance.
type Table struct {
	log zerolog.Logger

	title          string
	specs          []datatable.ColumnSpec
	inputs         []datatable.RowInput
	patch          *datatable.OptionsPatch
	columnsChanged bool
	optionsChanged bool

	computed bool
	columns  []datatable.Column
	rows     []datatable.Row
	options  datatable.Options

	// view state
	displayOverrides map[string]bool
	selection        *datatable.Selection
	expanded         map[int]struct{}
	searching        bool
	searchText       string
	filters          map[string][]string
	sortColumn       string
	sortDirection    datatable.SortDirection
	page             int
	rowsPerPage      int
}

// New returns an empty Table logging to logger.
// Use zerolog.Nop() to disable logging.
func New(logger zerolog.Logger) *Table {
	return &Table{
		log:              logger,
		columnsChanged:   true,
		optionsChanged:   true,
		displayOverrides: make(map[string]bool),
		expanded:         make(map[int]struct{}),
		filters:          make(map[string][]string),
	}
}

// SetTitle replaces the title.
func (t *Table) SetTitle(title string) {
	t.title = title
}

// SetColumns replaces the raw column specs.
// Changes take effect with the next Recompute.
func (t *Table) SetColumns(specs ...datatable.ColumnSpec) {
	t.specs = slices.Clone(specs)
	t.columnsChanged = true
}

// SetData replaces the raw rows.
// Changes take effect with the next Recompute.
func (t *Table) SetData(inputs ...datatable.RowInput) {
	t.inputs = slices.Clone(inputs)
}

// SetOptions replaces the user options.
// Changes take effect with the next Recompute.
func (t *Table) SetOptions(patch *datatable.OptionsPatch) {
	t.patch = patch
	t.optionsChanged = true
}

// ApplyConfig sets title, columns and options from config,
// and the data if config has any.
func (t *Table) ApplyConfig(config *datatable.Config) {
	t.SetTitle(config.Title)
	t.SetColumns(config.Columns...)
	patch := config.Options
	t.SetOptions(&patch)
	if config.Data != nil {
		t.SetData(config.RowInputs()...)
	}
}

// Recompute normalizes the raw inputs.
//
// Options are resolved first, then columns are normalized
// and rows are normalized against the new columns.
// Changed options reset the view state (selection, search text,
// page and rows per page) from the options, changed columns
// reset the filters from the column filter lists.
// Calling Recompute without changed inputs keeps the state unchanged.
//
// On error the previous normalized state is kept.
func (t *Table) Recompute() error {
	columns, err := datatable.NormalizeColumns(t.specs...)
	if err != nil {
		t.log.Error().Err(err).Str("title", t.title).Msg("can't normalize table columns")
		return err
	}
	options := datatable.ResolveOptions(t.patch)
	rows := datatable.NormalizeRows(columns, t.inputs...)

	// Column visibility toggled by the user does not
	// change which columns receive positional values
	for i := range columns {
		if display, ok := t.displayOverrides[columns[i].Name]; ok {
			columns[i].Options.Display = display
		}
	}

	t.columns = columns
	t.rows = rows
	t.options = options

	if t.optionsChanged || t.selection == nil {
		t.selection = datatable.NewSelection(options.SelectableRows, options.IsRowSelectable)
		for _, i := range options.RowsSelected {
			if i < len(rows) {
				t.selection.Select(i)
			}
		}
		t.searchText = options.SearchText
		t.page = max(options.Page, 0)
		t.rowsPerPage = options.RowsPerPage
		t.optionsChanged = false
	} else {
		t.selection.Retain(len(rows))
	}
	for i := range t.expanded {
		if i >= len(rows) {
			delete(t.expanded, i)
		}
	}

	if t.columnsChanged {
		clear(t.filters)
		t.sortColumn, t.sortDirection = "", datatable.SortNone
		for i := range columns {
			if len(columns[i].Options.FilterList) > 0 {
				t.filters[columns[i].Name] = slices.Clone(columns[i].Options.FilterList)
			}
			if t.sortColumn == "" && columns[i].Options.SortDirection != datatable.SortNone {
				t.sortColumn = columns[i].Name
				t.sortDirection = columns[i].Options.SortDirection
			}
		}
		t.columnsChanged = false
	}

	t.computed = true
	if numPages := t.numPages(); t.page >= numPages {
		t.page = numPages - 1
	}

	t.log.Debug().
		Str("title", t.title).
		Int("columns", len(columns)).
		Int("rows", len(rows)).
		Msg("table recomputed")
	t.tableChange(ActionRecompute)
	return nil
}

// Columns returns the normalized columns.
func (t *Table) Columns() []datatable.Column {
	return t.columns
}

// Rows returns all normalized rows.
func (t *Table) Rows() []datatable.Row {
	return t.rows
}

// Options returns the resolved options.
func (t *Table) Options() *datatable.Options {
	return &t.options
}

// Selection returns the row selection.
// It is nil before the first Recompute.
func (t *Table) Selection() *datatable.Selection {
	return t.selection
}

// State returns a snapshot of the normalized state.
func (t *Table) State() *State {
	display := t.DisplayRows()
	return &State{
		Title:         t.title,
		Columns:       slices.Clone(t.columns),
		Rows:          slices.Clone(t.rows),
		Options:       t.options,
		DisplayRows:   display,
		PageRows:      t.paginate(display),
		Page:          t.page,
		NumPages:      t.numPages(),
		RowsPerPage:   t.rowsPerPage,
		SearchText:    t.searchText,
		Selected:      t.selectedIndices(),
		SortColumn:    t.sortColumn,
		SortDirection: t.sortDirection,
		Filters:       t.cloneFilters(),
	}
}

// Push hands the current State to renderer.
// It does not recompute, so it can be called repeatedly
// to repaint the same state.
func (t *Table) Push(ctx context.Context, renderer Renderer) error {
	if !t.computed {
		return ErrNotComputed
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	err := renderer.Render(ctx, t.State())
	if err != nil {
		t.log.Error().Err(err).Str("title", t.title).Msg("can't render table")
		return err
	}
	return nil
}

// TableState returns the user facing view state.
func (t *Table) TableState() datatable.TableState {
	return datatable.TableState{
		Page:          t.page,
		RowsPerPage:   t.rowsPerPage,
		SearchText:    t.searchText,
		Selected:      t.selectedIndices(),
		SortColumn:    t.sortColumn,
		SortDirection: t.sortDirection,
		Filters:       t.cloneFilters(),
	}
}

// DisplayRows returns the rows after applying
// the filters, the search text and the sort order
// as far as enabled by the options.
func (t *Table) DisplayRows() []datatable.Row {
	rows := t.rows
	if t.options.Filter && len(t.filters) > 0 {
		rows = datatable.FilterRows(rows, t.filters)
	}
	if t.options.Search && t.searchText != "" {
		rows = datatable.SearchRows(rows, t.searchText, t.options.SearchFunc(t.columns))
	}
	if t.options.Sort && t.sortColumn != "" && t.sortDirection != datatable.SortNone {
		rows = t.options.CustomSort(rows, t.sortColumn, t.sortDirection)
	}
	return slices.Clone(rows)
}

// PageRows returns the DisplayRows of the current page
// or all DisplayRows if pagination is disabled.
func (t *Table) PageRows() []datatable.Row {
	return t.paginate(t.DisplayRows())
}

func (t *Table) paginate(rows []datatable.Row) []datatable.Row {
	if !t.options.Pagination {
		return rows
	}
	return datatable.Paginate(rows, t.page, t.rowsPerPage)
}

func (t *Table) numPages() int {
	if !t.options.Pagination {
		return 1
	}
	return datatable.NumPages(len(t.DisplayRows()), t.rowsPerPage)
}

// DataIndex returns the index in Rows of a row
// returned by DisplayRows or PageRows, or -1.
func (t *Table) DataIndex(row datatable.Row) int {
	ptr := reflect.ValueOf(row).UnsafePointer()
	return slices.IndexFunc(t.rows, func(r datatable.Row) bool {
		return reflect.ValueOf(r).UnsafePointer() == ptr
	})
}

func (t *Table) selectedIndices() []int {
	if t.selection == nil {
		return nil
	}
	return t.selection.Selected()
}

func (t *Table) cloneFilters() map[string][]string {
	filters := make(map[string][]string, len(t.filters))
	for column, values := range t.filters {
		filters[column] = slices.Clone(values)
	}
	return filters
}

func (t *Table) column(name string) (*datatable.Column, error) {
	i := datatable.ColumnIndex(t.columns, name)
	if i < 0 {
		return nil, fmt.Errorf("%w: %q", datatable.ErrColumnNotFound, name)
	}
	return &t.columns[i], nil
}

func (t *Table) tableChange(action string) {
	t.log.Debug().Str("title", t.title).Str("action", action).Msg("table change")
	t.options.OnTableChange(action, t.TableState())
}

func (t *Table) checkComputed() error {
	if !t.computed {
		return ErrNotComputed
	}
	return nil
}

func (t *Table) isExpanded(dataIndex int) bool {
	_, ok := t.expanded[dataIndex]
	return ok
}

// ExpandedRows returns the data indices of the expanded rows.
func (t *Table) ExpandedRows() []int {
	return slices.Sorted(maps.Keys(t.expanded))
}
