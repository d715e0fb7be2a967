package datatable

import (
	"reflect"
	"slices"
	"strings"
)

// SelectableRows is the number of rows that can be selected.
type SelectableRows string

const (
	SelectMultiple SelectableRows = "multiple"
	SelectSingle   SelectableRows = "single"
	SelectNone     SelectableRows = "none"
)

// Responsive table view modes.
const (
	ResponsiveStacked = "stacked"
	ResponsiveScroll  = "scroll"
)

// Column view change actions passed to Options.OnColumnViewChange.
const (
	ColumnViewAdd    = "add"
	ColumnViewRemove = "remove"
)

// RowMeta locates a clicked row.
type RowMeta struct {
	// DataIndex is the index of the row in the normalized data
	DataIndex int
	// RowIndex is the index of the row in the displayed rows
	RowIndex int
}

// CellMeta locates a clicked cell.
type CellMeta struct {
	ColIndex  int
	RowIndex  int
	DataIndex int
}

// TableState is the user facing state passed to Options.OnTableChange.
type TableState struct {
	Page          int
	RowsPerPage   int
	SearchText    string
	Selected      []int
	SortColumn    string
	SortDirection SortDirection
	Filters       map[string][]string
}

// DownloadOptions configure the CSV download.
type DownloadOptions struct {
	Filename  string `yaml:"filename"`
	Separator string `yaml:"separator"`
	// Encoding is the character set name of the CSV file,
	// empty means UTF-8.
	Encoding string `yaml:"encoding"`
}

// DownloadFunc controls what is written to a downloaded CSV file.
// It receives the builders for the header and the body,
// and the normalized columns and rows.
// Returning ok as false aborts the download.
type DownloadFunc func(buildHead func([]Column) string, buildBody func([]Row) string, columns []Column, rows []Row) (csv string, ok bool)

// DefaultDownload concatenates the built head and body and trims the result.
func DefaultDownload(buildHead func([]Column) string, buildBody func([]Row) string, columns []Column, rows []Row) (csv string, ok bool) {
	return strings.TrimSpace(buildHead(columns) + buildBody(rows)), true
}

// SortFunc sorts rows by the named column.
// The returned slice must contain the same Row maps
// as rows, not copies, so that displayed rows can be
// mapped back to their data index.
type SortFunc func(rows []Row, column string, order SortDirection) []Row

// CustomSearchFunc replaces the default search predicate.
type CustomSearchFunc func(query string, row Row, columns []Column) bool

// Options is the fully resolved table configuration.
// Every field has a defined value after ResolveOptions,
// including every callback.
type Options struct {
	// ServerSide enables a remote data source
	ServerSide bool
	// Page is the starting page for pagination
	Page int
	// Count overrides the total number of rows if > 0
	Count int
	// RowsSelected are the initially selected data indices
	RowsSelected []int
	FilterType   FilterType
	TextLabels   TextLabels
	Pagination   bool

	SelectableRows        SelectableRows
	SelectableRowsOnClick bool
	IsRowSelectable       func(dataIndex int) bool

	ResizableColumns      bool
	ExpandableRows        bool
	ExpandableRowsOnClick bool

	CustomSort   SortFunc
	CustomSearch CustomSearchFunc

	Elevation          int
	CaseSensitive      bool
	Responsive         string
	RowsPerPage        int
	RowsPerPageOptions []int
	RowHover           bool
	FixedHeader        bool
	SortFilterList     bool
	Sort               bool
	Filter             bool
	Search             bool
	SearchText         string
	Print              bool
	Download           bool
	DownloadOptions    DownloadOptions
	OnDownload         DownloadFunc
	ViewColumns        bool

	OnRowsSelect        func(currentRowsSelected, allRowsSelected []int)
	OnRowsDelete        func(rowsDeleted []int) (allow bool)
	OnRowClick          func(row Row, meta RowMeta)
	OnCellClick         func(value any, meta CellMeta)
	OnChangePage        func(currentPage int)
	OnChangeRowsPerPage func(numberOfRows int)
	OnSearchChange      func(searchText string)
	OnSearchOpen        func()
	OnFilterChange      func(changedColumn string, filterList map[string][]string)
	OnColumnSortChange  func(changedColumn string, direction SortDirection)
	OnColumnViewChange  func(changedColumn string, action string)
	OnTableChange       func(action string, state TableState)
}

// DefaultOptions returns a new Options value
// with every field at its documented default.
func DefaultOptions() Options {
	return Options{
		ServerSide:            false,
		Page:                  0,
		Count:                 0,
		RowsSelected:          nil,
		FilterType:            FilterDropdown,
		TextLabels:            DefaultTextLabels(),
		Pagination:            true,
		SelectableRows:        SelectMultiple,
		SelectableRowsOnClick: false,
		IsRowSelectable:       func(int) bool { return true },
		ResizableColumns:      false,
		ExpandableRows:        false,
		ExpandableRowsOnClick: false,
		CustomSort:            SortRows,
		CustomSearch:          defaultCustomSearch(false),
		Elevation:             4,
		CaseSensitive:         false,
		Responsive:            ResponsiveStacked,
		RowsPerPage:           10,
		RowsPerPageOptions:    []int{10, 15, 20},
		RowHover:              true,
		FixedHeader:           true,
		SortFilterList:        true,
		Sort:                  true,
		Filter:                true,
		Search:                true,
		SearchText:            "",
		Print:                 true,
		Download:              true,
		DownloadOptions: DownloadOptions{
			Filename:  "tableDownload.csv",
			Separator: ",",
			Encoding:  "UTF-8",
		},
		OnDownload:          DefaultDownload,
		ViewColumns:         true,
		OnRowsSelect:        func([]int, []int) {},
		OnRowsDelete:        func([]int) bool { return true },
		OnRowClick:          func(Row, RowMeta) {},
		OnCellClick:         func(any, CellMeta) {},
		OnChangePage:        func(int) {},
		OnChangeRowsPerPage: func(int) {},
		OnSearchChange:      func(string) {},
		OnSearchOpen:        func() {},
		OnFilterChange:      func(string, map[string][]string) {},
		OnColumnSortChange:  func(string, SortDirection) {},
		OnColumnViewChange:  func(string, string) {},
		OnTableChange:       func(string, TableState) {},
	}
}

func defaultCustomSearch(caseSensitive bool) CustomSearchFunc {
	match := NewSearchFunc(caseSensitive)
	return func(query string, row Row, _ []Column) bool {
		return match(row, query)
	}
}

// OptionsPatch holds user supplied partial options.
// Nil fields keep their default value, set fields replace
// the default wholesale. Nested records like TextLabels
// and DownloadOptions are not merged field by field.
type OptionsPatch struct {
	ServerSide            *bool            `yaml:"serverSide,omitempty"`
	Page                  *int             `yaml:"page,omitempty"`
	Count                 *int             `yaml:"count,omitempty"`
	RowsSelected          []int            `yaml:"rowsSelected,omitempty"`
	FilterType            *FilterType      `yaml:"filterType,omitempty"`
	TextLabels            *TextLabels      `yaml:"textLabels,omitempty"`
	Pagination            *bool            `yaml:"pagination,omitempty"`
	SelectableRows        *SelectableRows  `yaml:"selectableRows,omitempty"`
	SelectableRowsOnClick *bool            `yaml:"selectableRowsOnClick,omitempty"`
	ResizableColumns      *bool            `yaml:"resizableColumns,omitempty"`
	ExpandableRows        *bool            `yaml:"expandableRows,omitempty"`
	ExpandableRowsOnClick *bool            `yaml:"expandableRowsOnClick,omitempty"`
	Elevation             *int             `yaml:"elevation,omitempty"`
	CaseSensitive         *bool            `yaml:"caseSensitive,omitempty"`
	Responsive            *string          `yaml:"responsive,omitempty"`
	RowsPerPage           *int             `yaml:"rowsPerPage,omitempty"`
	RowsPerPageOptions    []int            `yaml:"rowsPerPageOptions,omitempty"`
	RowHover              *bool            `yaml:"rowHover,omitempty"`
	FixedHeader           *bool            `yaml:"fixedHeader,omitempty"`
	SortFilterList        *bool            `yaml:"sortFilterList,omitempty"`
	Sort                  *bool            `yaml:"sort,omitempty"`
	Filter                *bool            `yaml:"filter,omitempty"`
	Search                *bool            `yaml:"search,omitempty"`
	SearchText            *string          `yaml:"searchText,omitempty"`
	Print                 *bool            `yaml:"print,omitempty"`
	Download              *bool            `yaml:"download,omitempty"`
	DownloadOptions       *DownloadOptions `yaml:"downloadOptions,omitempty"`
	ViewColumns           *bool            `yaml:"viewColumns,omitempty"`

	IsRowSelectable     func(dataIndex int) bool                                   `yaml:"-"`
	CustomSort          SortFunc                                                   `yaml:"-"`
	CustomSearch        CustomSearchFunc                                           `yaml:"-"`
	OnDownload          DownloadFunc                                               `yaml:"-"`
	OnRowsSelect        func(currentRowsSelected, allRowsSelected []int)           `yaml:"-"`
	OnRowsDelete        func(rowsDeleted []int) (allow bool)                       `yaml:"-"`
	OnRowClick          func(row Row, meta RowMeta)                                `yaml:"-"`
	OnCellClick         func(value any, meta CellMeta)                             `yaml:"-"`
	OnChangePage        func(currentPage int)                                      `yaml:"-"`
	OnChangeRowsPerPage func(numberOfRows int)                                     `yaml:"-"`
	OnSearchChange      func(searchText string)                                    `yaml:"-"`
	OnSearchOpen        func()                                                     `yaml:"-"`
	OnFilterChange      func(changedColumn string, filterList map[string][]string) `yaml:"-"`
	OnColumnSortChange  func(changedColumn string, direction SortDirection)        `yaml:"-"`
	OnColumnViewChange  func(changedColumn string, action string)                  `yaml:"-"`
	OnTableChange       func(action string, state TableState)                      `yaml:"-"`
}

// ResolveOptions returns a new Options value with all set fields
// of patch overlaid on DefaultOptions.
// A nil patch returns the defaults.
//
// If patch has no CustomSearch, the default search predicate
// is built with the resolved CaseSensitive value.
func ResolveOptions(patch *OptionsPatch) Options {
	o := DefaultOptions()
	if patch == nil {
		return o
	}
	p := patch

	setIfNotNil(&o.ServerSide, p.ServerSide)
	setIfNotNil(&o.Page, p.Page)
	setIfNotNil(&o.Count, p.Count)
	if p.RowsSelected != nil {
		o.RowsSelected = slices.Clone(p.RowsSelected)
	}
	setIfNotNil(&o.FilterType, p.FilterType)
	setIfNotNil(&o.TextLabels, p.TextLabels)
	setIfNotNil(&o.Pagination, p.Pagination)
	setIfNotNil(&o.SelectableRows, p.SelectableRows)
	setIfNotNil(&o.SelectableRowsOnClick, p.SelectableRowsOnClick)
	setIfNotNil(&o.ResizableColumns, p.ResizableColumns)
	setIfNotNil(&o.ExpandableRows, p.ExpandableRows)
	setIfNotNil(&o.ExpandableRowsOnClick, p.ExpandableRowsOnClick)
	setIfNotNil(&o.Elevation, p.Elevation)
	setIfNotNil(&o.CaseSensitive, p.CaseSensitive)
	setIfNotNil(&o.Responsive, p.Responsive)
	setIfNotNil(&o.RowsPerPage, p.RowsPerPage)
	if p.RowsPerPageOptions != nil {
		o.RowsPerPageOptions = slices.Clone(p.RowsPerPageOptions)
	}
	setIfNotNil(&o.RowHover, p.RowHover)
	setIfNotNil(&o.FixedHeader, p.FixedHeader)
	setIfNotNil(&o.SortFilterList, p.SortFilterList)
	setIfNotNil(&o.Sort, p.Sort)
	setIfNotNil(&o.Filter, p.Filter)
	setIfNotNil(&o.Search, p.Search)
	setIfNotNil(&o.SearchText, p.SearchText)
	setIfNotNil(&o.Print, p.Print)
	setIfNotNil(&o.Download, p.Download)
	setIfNotNil(&o.DownloadOptions, p.DownloadOptions)
	setIfNotNil(&o.ViewColumns, p.ViewColumns)

	setFuncIfNotNil(&o.IsRowSelectable, p.IsRowSelectable)
	setFuncIfNotNil(&o.CustomSort, p.CustomSort)
	if p.CustomSearch != nil {
		o.CustomSearch = p.CustomSearch
	} else {
		o.CustomSearch = defaultCustomSearch(o.CaseSensitive)
	}
	setFuncIfNotNil(&o.OnDownload, p.OnDownload)
	setFuncIfNotNil(&o.OnRowsSelect, p.OnRowsSelect)
	setFuncIfNotNil(&o.OnRowsDelete, p.OnRowsDelete)
	setFuncIfNotNil(&o.OnRowClick, p.OnRowClick)
	setFuncIfNotNil(&o.OnCellClick, p.OnCellClick)
	setFuncIfNotNil(&o.OnChangePage, p.OnChangePage)
	setFuncIfNotNil(&o.OnChangeRowsPerPage, p.OnChangeRowsPerPage)
	setFuncIfNotNil(&o.OnSearchChange, p.OnSearchChange)
	setFuncIfNotNil(&o.OnSearchOpen, p.OnSearchOpen)
	setFuncIfNotNil(&o.OnFilterChange, p.OnFilterChange)
	setFuncIfNotNil(&o.OnColumnSortChange, p.OnColumnSortChange)
	setFuncIfNotNil(&o.OnColumnViewChange, p.OnColumnViewChange)
	setFuncIfNotNil(&o.OnTableChange, p.OnTableChange)
	return o
}

// SearchFunc returns the search predicate of the options
// bound to columns.
func (o *Options) SearchFunc(columns []Column) SearchFunc {
	return func(row Row, query string) bool {
		return o.CustomSearch(query, row, columns)
	}
}

func setFuncIfNotNil[F any](dest *F, src F) {
	if v := reflect.ValueOf(src); v.IsValid() && !v.IsNil() {
		*dest = src
	}
}
