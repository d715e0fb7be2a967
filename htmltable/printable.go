// Package htmltable builds printable HTML views
// of normalized table columns and rows
// and hands them to a Printer.
//
// All labels and cell values are escaped with EscapeString.
package htmltable

import (
	"context"
	"html/template"
	"strings"

	"github.com/domonda/go-datatable"
)

// Builder builds printable HTML.
//
// Builder is immutable after creation, all With* methods
// return a new Builder with the modified configuration.
type Builder struct {
	style     string
	template  *template.Template
	formatter datatable.CellFormatter
}

// NewBuilder returns a Builder using Style and TableTemplate.
func NewBuilder() *Builder {
	return &Builder{
		style:    Style,
		template: TableTemplate,
	}
}

func (b *Builder) clone() *Builder {
	c := new(Builder)
	*c = *b
	return c
}

// WithStyle returns a new builder prepending style instead of Style.
func (b *Builder) WithStyle(style string) *Builder {
	mod := b.clone()
	mod.style = style
	return mod
}

// WithTemplate returns a new builder executing tmpl
// with a PrintContext instead of TableTemplate.
func (b *Builder) WithTemplate(tmpl *template.Template) *Builder {
	mod := b.clone()
	mod.template = tmpl
	return mod
}

// WithFormatter returns a new builder that formats cells with formatter
// before falling back to datatable.CellString.
func (b *Builder) WithFormatter(formatter datatable.CellFormatter) *Builder {
	mod := b.clone()
	mod.formatter = formatter
	return mod
}

// Context returns the escaped header labels and cells
// of the printable columns.
func (b *Builder) Context(columns []datatable.Column, rows []datatable.Row) *PrintContext {
	ctx := &PrintContext{
		Rows: make([][]template.HTML, len(rows)),
	}
	for i := range columns {
		if columns[i].Options.Print {
			ctx.Header = append(ctx.Header, escapedHTML(columns[i].Label))
		}
	}
	for r, row := range rows {
		cells := make([]template.HTML, 0, len(ctx.Header))
		for i := range columns {
			col := &columns[i]
			if !col.Options.Print {
				continue
			}
			str, err := datatable.FormatCell(b.formatter, col, row[col.Name])
			if err != nil {
				str = datatable.CellString(row[col.Name])
			}
			cells = append(cells, escapedHTML(str))
		}
		ctx.Rows[r] = cells
	}
	return ctx
}

// Build returns the style block followed by the table markup.
func (b *Builder) Build(columns []datatable.Column, rows []datatable.Row) (string, error) {
	var buf strings.Builder
	buf.WriteString(b.style)
	err := b.template.Execute(&buf, b.Context(columns, rows))
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// PrintableHTML returns the printable markup for columns and rows
// using the default Builder.
func PrintableHTML(columns []datatable.Column, rows []datatable.Row) string {
	html, err := NewBuilder().Build(columns, rows)
	if err != nil {
		// TableTemplate only fails on write errors
		// which a strings.Builder doesn't return
		panic(err)
	}
	return html
}

// Document wraps markup in a minimal HTML document.
func Document(markup string) string {
	var buf strings.Builder
	_ = DocumentTemplate.Execute(&buf, template.HTML(markup)) //#nosec G203
	return buf.String()
}

// Print builds the printable markup for columns and rows
// and passes it to printer.
func Print(ctx context.Context, printer Printer, columns []datatable.Column, rows []datatable.Row) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return printer.Print(ctx, PrintableHTML(columns, rows))
}

func escapedHTML(s string) template.HTML {
	return template.HTML(EscapeString(s)) //#nosec G203
}
