package datatable

// TextLabels localize the texts of the table.
type TextLabels struct {
	Body         BodyLabels         `yaml:"body"`
	Pagination   PaginationLabels   `yaml:"pagination"`
	Toolbar      ToolbarLabels      `yaml:"toolbar"`
	Filter       FilterLabels       `yaml:"filter"`
	ViewColumns  ViewColumnsLabels  `yaml:"viewColumns"`
	SelectedRows SelectedRowsLabels `yaml:"selectedRows"`
}

type BodyLabels struct {
	NoMatch string `yaml:"noMatch"`
	ToolTip string `yaml:"toolTip"`
}

type PaginationLabels struct {
	Next        string `yaml:"next"`
	Previous    string `yaml:"previous"`
	RowsPerPage string `yaml:"rowsPerPage"`
	DisplayRows string `yaml:"displayRows"`
}

type ToolbarLabels struct {
	Search      string `yaml:"search"`
	DownloadCSV string `yaml:"downloadCsv"`
	Print       string `yaml:"print"`
	ViewColumns string `yaml:"viewColumns"`
	FilterTable string `yaml:"filterTable"`
}

type FilterLabels struct {
	All   string `yaml:"all"`
	Title string `yaml:"title"`
	Reset string `yaml:"reset"`
}

type ViewColumnsLabels struct {
	Title     string `yaml:"title"`
	TitleAria string `yaml:"titleAria"`
}

type SelectedRowsLabels struct {
	Text       string `yaml:"text"`
	Delete     string `yaml:"delete"`
	DeleteAria string `yaml:"deleteAria"`
}

// DefaultTextLabels returns the english default labels.
func DefaultTextLabels() TextLabels {
	return TextLabels{
		Body: BodyLabels{
			NoMatch: "Sorry, no matching records found",
			ToolTip: "Sort",
		},
		Pagination: PaginationLabels{
			Next:        "Next Page",
			Previous:    "Previous Page",
			RowsPerPage: "Rows per page:",
			DisplayRows: "of",
		},
		Toolbar: ToolbarLabels{
			Search:      "Search",
			DownloadCSV: "Download CSV",
			Print:       "Print",
			ViewColumns: "View Columns",
			FilterTable: "Filter Table",
		},
		Filter: FilterLabels{
			All:   "All",
			Title: "Filters",
			Reset: "Reset",
		},
		ViewColumns: ViewColumnsLabels{
			Title:     "Show Columns",
			TitleAria: "Show/Hide Table Columns",
		},
		SelectedRows: SelectedRowsLabels{
			Text:       "row(s) selected",
			Delete:     "Delete",
			DeleteAria: "Delete Selected Rows",
		},
	}
}
