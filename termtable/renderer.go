// Package termtable renders a widget.State as text table
// for terminals using the bubbles table component.
package termtable

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/domonda/go-datatable"
	"github.com/domonda/go-datatable/widget"
)

var _ widget.Renderer = new(Renderer)

// Renderer writes the title, the current page of the displayed
// columns and a pagination footer of a table state to a writer.
type Renderer struct {
	out        io.Writer
	maxWidth   int
	styles     table.Styles
	titleStyle lipgloss.Style
}

// NewRenderer returns a Renderer writing to out
// with the default bubbles table styles.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{
		out:        out,
		maxWidth:   40,
		styles:     table.DefaultStyles(),
		titleStyle: lipgloss.NewStyle().Bold(true),
	}
}

// WithMaxColumnWidth returns a new Renderer that
// limits every column to width cells.
func (r *Renderer) WithMaxColumnWidth(width int) *Renderer {
	mod := *r
	mod.maxWidth = width
	return &mod
}

// WithStyles returns a new Renderer using styles for the table.
func (r *Renderer) WithStyles(styles table.Styles) *Renderer {
	mod := *r
	mod.styles = styles
	return &mod
}

// Render implements widget.Renderer.
func (r *Renderer) Render(ctx context.Context, state *widget.State) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var b strings.Builder
	if state.Title != "" {
		b.WriteString(r.titleStyle.Render(state.Title))
		b.WriteByte('\n')
	}

	displayed := state.DisplayedColumns()
	if len(state.PageRows) == 0 {
		b.WriteString(state.Options.TextLabels.Body.NoMatch)
		b.WriteByte('\n')
		_, err := io.WriteString(r.out, b.String())
		return err
	}

	columns, rows := r.Model(displayed, state.PageRows)
	headerHeight := lipgloss.Height(r.styles.Header.Render(" "))
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithStyles(r.styles),
		table.WithHeight(len(rows)+headerHeight),
	)
	b.WriteString(t.View())
	b.WriteByte('\n')

	if state.Options.Pagination {
		labels := state.Options.TextLabels.Pagination
		fmt.Fprintf(&b, "%s %d  %d-%d %s %d\n",
			labels.RowsPerPage,
			state.RowsPerPage,
			state.Page*state.RowsPerPage+1,
			state.Page*state.RowsPerPage+len(state.PageRows),
			labels.DisplayRows,
			len(state.DisplayRows),
		)
	}
	if n := len(state.Selected); n > 0 {
		fmt.Fprintf(&b, "%d %s\n", n, state.Options.TextLabels.SelectedRows.Text)
	}
	_, err := io.WriteString(r.out, b.String())
	return err
}

// Model returns the bubbles table columns and rows
// for the labels and cell strings of columns.
// Column widths fit the widest label or cell up to
// the maximum column width.
func (r *Renderer) Model(columns []datatable.Column, rows []datatable.Row) ([]table.Column, []table.Row) {
	tableColumns := make([]table.Column, len(columns))
	for i := range columns {
		tableColumns[i] = table.Column{
			Title: columns[i].Label,
			Width: runewidth.StringWidth(columns[i].Label),
		}
	}
	tableRows := make([]table.Row, len(rows))
	for row := range rows {
		cells := make(table.Row, len(columns))
		for i := range columns {
			cells[i] = datatable.CellString(rows[row][columns[i].Name])
			tableColumns[i].Width = max(tableColumns[i].Width, runewidth.StringWidth(cells[i]))
		}
		tableRows[row] = cells
	}
	if r.maxWidth > 0 {
		for i := range tableColumns {
			tableColumns[i].Width = min(tableColumns[i].Width, r.maxWidth)
		}
	}
	return tableColumns, tableRows
}
