package widget

import (
	"context"

	"github.com/domonda/go-datatable"
)

// Renderer paints a table State,
// for example a third-party table widget.
type Renderer interface {
	Render(ctx context.Context, state *State) error
}

// RendererFunc implements Renderer for a function.
type RendererFunc func(ctx context.Context, state *State) error

func (f RendererFunc) Render(ctx context.Context, state *State) error {
	return f(ctx, state)
}

// State is the normalized state of a Table
// handed to a Renderer.
type State struct {
	Title   string
	Columns []datatable.Column
	// Rows are all normalized rows
	Rows    []datatable.Row
	Options datatable.Options

	// DisplayRows are Rows after filters, search and sort
	DisplayRows []datatable.Row
	// PageRows are the DisplayRows of the current page
	PageRows []datatable.Row

	Page          int
	NumPages      int
	RowsPerPage   int
	SearchText    string
	Selected      []int
	SortColumn    string
	SortDirection datatable.SortDirection
	Filters       map[string][]string
}

// DisplayedColumns returns the columns with Options.Display set.
func (s *State) DisplayedColumns() []datatable.Column {
	var columns []datatable.Column
	for i := range s.Columns {
		if s.Columns[i].Options.Display {
			columns = append(columns, s.Columns[i])
		}
	}
	return columns
}
