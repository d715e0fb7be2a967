package widget

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/domonda/go-datatable"
	"github.com/domonda/go-datatable/csvtable"
	"github.com/domonda/go-datatable/exceltable"
	"github.com/domonda/go-datatable/htmltable"
)

// OpenSearch opens the search box.
func (t *Table) OpenSearch() error {
	if err := t.checkComputed(); err != nil {
		return err
	}
	if !t.options.Search {
		return fmt.Errorf("search: %w", ErrDisabled)
	}
	t.searching = true
	t.options.OnSearchOpen()
	t.tableChange(ActionSearchOpen)
	return nil
}

// CloseSearch closes the search box and clears the search text.
func (t *Table) CloseSearch() {
	if !t.searching {
		return
	}
	t.searching = false
	if t.searchText != "" {
		t.searchText = ""
		t.page = 0
		t.options.OnSearchChange("")
	}
	t.tableChange(ActionSearchClose)
}

// IsSearching reports if the search box is open.
func (t *Table) IsSearching() bool {
	return t.searching
}

// Search sets the search text and goes to the first page.
func (t *Table) Search(text string) error {
	if err := t.checkComputed(); err != nil {
		return err
	}
	if !t.options.Search {
		return fmt.Errorf("search: %w", ErrDisabled)
	}
	if text == t.searchText {
		return nil
	}
	t.searchText = text
	t.page = 0
	t.options.OnSearchChange(text)
	t.tableChange(ActionSearch)
	return nil
}

// SearchText returns the current search text.
func (t *Table) SearchText() string {
	return t.searchText
}

// FilterValues returns the values a user can choose from
// to filter column: the column's FilterOptions if set,
// else the distinct values of the column.
func (t *Table) FilterValues(column string) ([]string, error) {
	col, err := t.column(column)
	if err != nil {
		return nil, err
	}
	if col.Options.FilterOptions != nil {
		return slices.Clone(col.Options.FilterOptions), nil
	}
	return datatable.FilterValues(t.rows, column, t.options.SortFilterList), nil
}

// SetFilter sets the values to filter column by.
// Empty values remove the column's filter.
func (t *Table) SetFilter(column string, values ...string) error {
	if err := t.checkComputed(); err != nil {
		return err
	}
	if !t.options.Filter {
		return fmt.Errorf("filter: %w", ErrDisabled)
	}
	col, err := t.column(column)
	if err != nil {
		return err
	}
	if !col.Options.Filter {
		return fmt.Errorf("filter column %q: %w", column, ErrDisabled)
	}
	if len(values) == 0 {
		delete(t.filters, column)
	} else {
		t.filters[column] = slices.Clone(values)
	}
	t.page = 0
	t.options.OnFilterChange(column, t.cloneFilters())
	t.tableChange(ActionFilterChange)
	return nil
}

// ResetFilters removes all filters.
func (t *Table) ResetFilters() {
	if len(t.filters) == 0 {
		return
	}
	clear(t.filters)
	t.page = 0
	t.tableChange(ActionResetFilters)
}

// SortBy sorts the displayed rows by column in direction.
// datatable.SortNone removes the sort order.
func (t *Table) SortBy(column string, direction datatable.SortDirection) error {
	if err := t.checkComputed(); err != nil {
		return err
	}
	if !t.options.Sort {
		return fmt.Errorf("sort: %w", ErrDisabled)
	}
	col, err := t.column(column)
	if err != nil {
		return err
	}
	if !col.Options.Sort {
		return fmt.Errorf("sort column %q: %w", column, ErrDisabled)
	}
	switch direction {
	case datatable.SortNone:
		t.sortColumn = ""
	case datatable.SortAsc, datatable.SortDesc:
		t.sortColumn = column
	default:
		return fmt.Errorf("invalid sort direction %q", direction)
	}
	t.sortDirection = direction
	t.options.OnColumnSortChange(column, direction)
	t.tableChange(ActionSort)
	return nil
}

// ToggleSort sorts by column ascending,
// or descending if it is already sorted ascending.
func (t *Table) ToggleSort(column string) error {
	direction := datatable.SortAsc
	if t.sortColumn == column && t.sortDirection == datatable.SortAsc {
		direction = datatable.SortDesc
	}
	return t.SortBy(column, direction)
}

// ChangePage goes to the zero based page.
func (t *Table) ChangePage(page int) error {
	if err := t.checkComputed(); err != nil {
		return err
	}
	if page < 0 || page >= t.numPages() {
		return fmt.Errorf("page %d: %w", page, ErrIndexOutOfRange)
	}
	if page == t.page {
		return nil
	}
	t.page = page
	t.options.OnChangePage(page)
	t.tableChange(ActionChangePage)
	return nil
}

// ChangeRowsPerPage sets the number of rows per page
// and goes to the first page.
func (t *Table) ChangeRowsPerPage(numberOfRows int) error {
	if err := t.checkComputed(); err != nil {
		return err
	}
	if numberOfRows <= 0 {
		return fmt.Errorf("rows per page %d: %w", numberOfRows, ErrIndexOutOfRange)
	}
	t.rowsPerPage = numberOfRows
	t.page = 0
	t.options.OnChangeRowsPerPage(numberOfRows)
	t.tableChange(ActionChangeRowsPerPage)
	return nil
}

// SetColumnDisplay shows or hides column.
// The change is kept over following Recomputes.
func (t *Table) SetColumnDisplay(column string, display bool) error {
	if err := t.checkComputed(); err != nil {
		return err
	}
	if !t.options.ViewColumns {
		return fmt.Errorf("view columns: %w", ErrDisabled)
	}
	col, err := t.column(column)
	if err != nil {
		return err
	}
	if col.Options.Display == display {
		return nil
	}
	col.Options.Display = display
	t.displayOverrides[column] = display
	action := datatable.ColumnViewRemove
	if display {
		action = datatable.ColumnViewAdd
	}
	t.options.OnColumnViewChange(column, action)
	t.tableChange(ActionViewColumnsChange)
	return nil
}

// Select selects the row at dataIndex.
func (t *Table) Select(dataIndex int) error {
	if err := t.checkDataIndex(dataIndex); err != nil {
		return err
	}
	if t.selection.Select(dataIndex) {
		t.rowsSelected([]int{dataIndex})
	}
	return nil
}

// Deselect deselects the row at dataIndex.
func (t *Table) Deselect(dataIndex int) error {
	if err := t.checkDataIndex(dataIndex); err != nil {
		return err
	}
	if t.selection.Deselect(dataIndex) {
		t.rowsSelected([]int{dataIndex})
	}
	return nil
}

// ToggleAll selects all rows or clears the selection
// if all rows are selected.
func (t *Table) ToggleAll() error {
	if err := t.checkComputed(); err != nil {
		return err
	}
	before := t.selection.Selected()
	t.selection.MasterToggle(len(t.rows))
	after := t.selection.Selected()
	if !slices.Equal(before, after) {
		t.rowsSelected(symmetricDifference(before, after))
	}
	return nil
}

func (t *Table) rowsSelected(current []int) {
	t.options.OnRowsSelect(current, t.selection.Selected())
	t.tableChange(ActionRowsSelect)
}

// DeleteSelected deletes the selected rows from the data
// unless Options.OnRowsDelete returns false.
// It reports whether rows were deleted.
func (t *Table) DeleteSelected() (bool, error) {
	if err := t.checkComputed(); err != nil {
		return false, err
	}
	selected := t.selection.Selected()
	if len(selected) == 0 {
		return false, nil
	}
	if !t.options.OnRowsDelete(selected) {
		t.log.Warn().Str("title", t.title).Ints("rows", selected).Msg("row deletion prevented")
		return false, nil
	}
	deleted := func(i int) bool {
		_, found := slices.BinarySearch(selected, i)
		return found
	}
	var (
		inputs = make([]datatable.RowInput, 0, len(t.inputs))
		rows   = make([]datatable.Row, 0, len(t.rows))
	)
	for i := range t.rows {
		if deleted(i) {
			continue
		}
		if i < len(t.inputs) {
			inputs = append(inputs, t.inputs[i])
		}
		rows = append(rows, t.rows[i])
	}
	t.inputs = inputs
	t.rows = rows
	t.selection.Clear()
	clear(t.expanded)
	if numPages := t.numPages(); t.page >= numPages {
		t.page = numPages - 1
	}
	t.log.Info().Str("title", t.title).Int("deleted", len(selected)).Msg("rows deleted")
	t.tableChange(ActionRowDelete)
	return true, nil
}

// ClickRow handles a click on the row at rowIndex of PageRows.
// It calls Options.OnRowClick and toggles selection
// and expansion if enabled for row clicks.
func (t *Table) ClickRow(rowIndex int) error {
	row, dataIndex, err := t.pageRow(rowIndex)
	if err != nil {
		return err
	}
	t.options.OnRowClick(row, datatable.RowMeta{DataIndex: dataIndex, RowIndex: rowIndex})
	if t.options.SelectableRowsOnClick && t.options.SelectableRows != datatable.SelectNone {
		before := t.selection.IsSelected(dataIndex)
		if t.selection.Toggle(dataIndex) != before {
			t.rowsSelected([]int{dataIndex})
		}
	}
	if t.options.ExpandableRows && t.options.ExpandableRowsOnClick {
		return t.ToggleExpanded(dataIndex)
	}
	return nil
}

// ClickCell handles a click on the cell of the displayed column
// at colIndex in the row at rowIndex of PageRows.
func (t *Table) ClickCell(rowIndex, colIndex int) error {
	row, dataIndex, err := t.pageRow(rowIndex)
	if err != nil {
		return err
	}
	displayed := datatable.DisplayedColumnNames(t.columns)
	if colIndex < 0 || colIndex >= len(displayed) {
		return fmt.Errorf("column %d: %w", colIndex, ErrIndexOutOfRange)
	}
	t.options.OnCellClick(row[displayed[colIndex]], datatable.CellMeta{
		ColIndex:  colIndex,
		RowIndex:  rowIndex,
		DataIndex: dataIndex,
	})
	return nil
}

// ToggleExpanded expands or collapses the row at dataIndex.
func (t *Table) ToggleExpanded(dataIndex int) error {
	if err := t.checkDataIndex(dataIndex); err != nil {
		return err
	}
	if !t.options.ExpandableRows {
		return fmt.Errorf("expandable rows: %w", ErrDisabled)
	}
	if t.isExpanded(dataIndex) {
		delete(t.expanded, dataIndex)
	} else {
		t.expanded[dataIndex] = struct{}{}
	}
	t.tableChange(ActionExpandRow)
	return nil
}

func (t *Table) pageRow(rowIndex int) (row datatable.Row, dataIndex int, err error) {
	if err := t.checkComputed(); err != nil {
		return nil, -1, err
	}
	rows := t.PageRows()
	if rowIndex < 0 || rowIndex >= len(rows) {
		return nil, -1, fmt.Errorf("row %d: %w", rowIndex, ErrIndexOutOfRange)
	}
	dataIndex = t.DataIndex(rows[rowIndex])
	if dataIndex < 0 {
		// CustomSort returned rows that are not part of the data
		return nil, -1, fmt.Errorf("row %d not found in table data: %w", rowIndex, ErrIndexOutOfRange)
	}
	return rows[rowIndex], dataIndex, nil
}

func (t *Table) checkDataIndex(dataIndex int) error {
	if err := t.checkComputed(); err != nil {
		return err
	}
	if dataIndex < 0 || dataIndex >= len(t.rows) {
		return fmt.Errorf("row %d: %w", dataIndex, ErrIndexOutOfRange)
	}
	return nil
}

// DownloadCSV saves all normalized rows as CSV file
// configured by the download options.
// A download aborted by Options.OnDownload
// doesn't call saver and returns nil.
func (t *Table) DownloadCSV(ctx context.Context, saver csvtable.Saver) error {
	if err := t.checkComputed(); err != nil {
		return err
	}
	if !t.options.Download {
		return fmt.Errorf("download: %w", ErrDisabled)
	}
	saved, err := csvtable.Download(ctx, saver, t.columns, t.rows, &t.options)
	if err != nil {
		t.log.Error().Err(err).Str("title", t.title).Msg("CSV download failed")
		return err
	}
	if !saved {
		t.log.Warn().Str("title", t.title).Msg("CSV download aborted by OnDownload")
		return nil
	}
	t.log.Info().
		Str("title", t.title).
		Str("filename", t.options.DownloadOptions.Filename).
		Int("rows", len(t.rows)).
		Msg("CSV downloaded")
	return nil
}

// Print prints all normalized rows
// of the printable columns with printer.
func (t *Table) Print(ctx context.Context, printer htmltable.Printer) error {
	if err := t.checkComputed(); err != nil {
		return err
	}
	if !t.options.Print {
		return fmt.Errorf("print: %w", ErrDisabled)
	}
	err := htmltable.Print(ctx, printer, t.columns, t.rows)
	if err != nil {
		t.log.Error().Err(err).Str("title", t.title).Msg("print failed")
		return err
	}
	t.log.Info().Str("title", t.title).Int("rows", len(t.rows)).Msg("table printed")
	return nil
}

// ExportXLSX writes all normalized rows of the downloadable
// columns as Excel workbook to dest using the title as sheet name.
func (t *Table) ExportXLSX(ctx context.Context, dest io.Writer) error {
	if err := t.checkComputed(); err != nil {
		return err
	}
	if !t.options.Download {
		return fmt.Errorf("download: %w", ErrDisabled)
	}
	return exceltable.Write(ctx, dest, t.title, t.columns, t.rows)
}

func symmetricDifference(a, b []int) []int {
	var diff []int
	for _, i := range a {
		if !slices.Contains(b, i) {
			diff = append(diff, i)
		}
	}
	for _, i := range b {
		if !slices.Contains(a, i) {
			diff = append(diff, i)
		}
	}
	slices.Sort(diff)
	return diff
}
