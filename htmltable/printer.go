package htmltable

import (
	"context"

	fs "github.com/ungerik/go-fs"
)

// Printer opens a rendering surface for printable markup
// and triggers printing it.
type Printer interface {
	Print(ctx context.Context, html string) error
}

// PrinterFunc implements Printer for a function.
type PrinterFunc func(ctx context.Context, html string) error

func (f PrinterFunc) Print(ctx context.Context, html string) error {
	return f(ctx, html)
}

// FilePrinter writes the printable markup wrapped by Document
// to File, for example to be picked up by a print spooler
// or a headless browser.
type FilePrinter struct {
	File fs.File
}

func (p FilePrinter) Print(ctx context.Context, html string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return p.File.WriteAllString(Document(html))
}
