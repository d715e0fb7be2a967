// Package csvtable serializes normalized table columns and rows as CSV
// and hands the result to a Saver.
//
// Every included field is double quoted with embedded quotes doubled,
// fields are joined with the separator and lines end with "\r\n":
//
//	"Name","Age"
//	"Alice","30"
//	"Bob","25"
package csvtable

import (
	"errors"
	"fmt"
	"strings"

	"github.com/domonda/go-types/charset"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/domonda/go-datatable"
)

var (
	// ErrInvalidSeparator is returned for an empty separator.
	ErrInvalidSeparator = errors.New("invalid CSV separator")

	// ErrUnknownEncoding is returned for an unsupported character set name.
	ErrUnknownEncoding = errors.New("unknown CSV encoding")
)

// Writer builds CSV text from normalized columns and rows.
//
// Writer is immutable after creation, all With* methods
// return a new Writer with the modified configuration.
type Writer struct {
	separator string
	newLine   string
	formatter datatable.CellFormatter
	encoding  string
}

// NewWriter returns a Writer using "," as separator,
// "\r\n" as line ending, UTF-8 encoding and
// datatable.CellString for cell values.
func NewWriter() *Writer {
	return &Writer{
		separator: ",",
		newLine:   "\r\n",
		formatter: nil,
		encoding:  "UTF-8",
	}
}

// NewWriterFromOptions returns a Writer configured
// with the separator and encoding of options.DownloadOptions.
func NewWriterFromOptions(options *datatable.Options) *Writer {
	return NewWriter().
		WithSeparator(options.DownloadOptions.Separator).
		WithEncoding(options.DownloadOptions.Encoding)
}

func (w *Writer) clone() *Writer {
	c := new(Writer)
	*c = *w
	return c
}

// WithSeparator returns a new writer using separator between fields.
func (w *Writer) WithSeparator(separator string) *Writer {
	mod := w.clone()
	mod.separator = separator
	return mod
}

// WithNewLine returns a new writer ending lines with newLine.
func (w *Writer) WithNewLine(newLine string) *Writer {
	mod := w.clone()
	mod.newLine = newLine
	return mod
}

// WithFormatter returns a new writer that formats cells with formatter
// before falling back to datatable.CellString.
func (w *Writer) WithFormatter(formatter datatable.CellFormatter) *Writer {
	mod := w.clone()
	mod.formatter = formatter
	return mod
}

// WithEncoding returns a new writer encoding the CSV
// with the named character set. Empty means UTF-8.
func (w *Writer) WithEncoding(encoding string) *Writer {
	mod := w.clone()
	mod.encoding = encoding
	return mod
}

func (w *Writer) Separator() string { return w.separator }
func (w *Writer) NewLine() string   { return w.newLine }
func (w *Writer) Encoding() string  { return w.encoding }

// BuildHead returns the quoted names of the downloadable
// columns joined by the separator and terminated by a new line.
func (w *Writer) BuildHead(columns []datatable.Column) string {
	var b strings.Builder
	first := true
	for i := range columns {
		if !columns[i].Options.Download {
			continue
		}
		if !first {
			b.WriteString(w.separator)
		}
		first = false
		b.WriteString(Quote(columns[i].Name))
	}
	b.WriteString(w.newLine)
	return b.String()
}

// BodyBuilder returns a function that builds the CSV body
// of rows for the downloadable columns.
func (w *Writer) BodyBuilder(columns []datatable.Column) func(rows []datatable.Row) string {
	return func(rows []datatable.Row) string {
		return w.BuildBody(columns, rows)
	}
}

// BuildBody returns one line per row with the quoted cell strings
// of the downloadable columns joined by the separator.
// Trailing white space of the body is trimmed.
func (w *Writer) BuildBody(columns []datatable.Column, rows []datatable.Row) string {
	if len(rows) == 0 {
		return ""
	}
	var b strings.Builder
	for _, row := range rows {
		first := true
		for i := range columns {
			col := &columns[i]
			if !col.Options.Download {
				continue
			}
			if !first {
				b.WriteString(w.separator)
			}
			first = false
			b.WriteString(Quote(w.cellString(col, row[col.Name])))
		}
		if first {
			// No downloadable columns still writes an empty field
			b.WriteString(`""`)
		}
		b.WriteString(w.newLine)
	}
	return strings.TrimRight(b.String(), " \t\r\n")
}

func (w *Writer) cellString(col *datatable.Column, value any) string {
	str, err := datatable.FormatCell(w.formatter, col, value)
	if err != nil {
		// Malformed cells never halt an export
		return datatable.CellString(value)
	}
	return str
}

// Build returns the CSV text for columns and rows.
//
// If onDownload is not nil, it is called with the head and body
// builders and its result is returned, ok being false
// means the download should be aborted.
// Without onDownload the head and body are concatenated and trimmed.
func (w *Writer) Build(columns []datatable.Column, rows []datatable.Row, onDownload datatable.DownloadFunc) (csv string, ok bool) {
	if onDownload == nil {
		onDownload = datatable.DefaultDownload
	}
	return onDownload(w.BuildHead, w.BodyBuilder(columns), columns, rows)
}

// Encode returns csv encoded with the writer's character set.
//
// The encoding name is looked up with charset.GetEncoding
// and then as IANA name or alias like "ISO-8859-1",
// "windows-1252" or "latin1".
func (w *Writer) Encode(csv string) ([]byte, error) {
	if w.encoding == "" || strings.EqualFold(w.encoding, "UTF-8") {
		return []byte(csv), nil
	}
	if enc, err := charset.GetEncoding(w.encoding); err == nil {
		data, err := enc.Encode([]byte(csv))
		if err != nil {
			return nil, fmt.Errorf("can't encode CSV as %s: %w", w.encoding, err)
		}
		return data, nil
	}
	enc, err := ianaindex.IANA.Encoding(w.encoding)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, w.encoding)
	}
	data, err := enc.NewEncoder().Bytes([]byte(csv))
	if err != nil {
		return nil, fmt.Errorf("can't encode CSV as %s: %w", w.encoding, err)
	}
	return data, nil
}

// Quote wraps str in double quotes
// and doubles any embedded double quote.
func Quote(str string) string {
	return `"` + strings.ReplaceAll(str, `"`, `""`) + `"`
}
