package csvtable

import (
	"context"
	"fmt"
	"slices"

	fs "github.com/ungerik/go-fs"

	"github.com/domonda/go-datatable"
)

// Saver saves a downloaded CSV file.
type Saver interface {
	SaveCSV(ctx context.Context, filename string, data []byte) error
}

// SaverFunc implements Saver for a function.
type SaverFunc func(ctx context.Context, filename string, data []byte) error

func (f SaverFunc) SaveCSV(ctx context.Context, filename string, data []byte) error {
	return f(ctx, filename, data)
}

// DirSaver saves CSV files into a directory.
type DirSaver struct {
	Dir fs.File
}

func (s DirSaver) SaveCSV(ctx context.Context, filename string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !s.Dir.IsDir() {
		return fmt.Errorf("can't save %s: %s is not a directory", filename, s.Dir)
	}
	return s.Dir.Join(filename).WriteAll(data)
}

// MemSaver keeps saved CSV files in memory.
type MemSaver struct {
	Files []fs.MemFile
}

func (s *MemSaver) SaveCSV(ctx context.Context, filename string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.Files = append(s.Files, fs.MemFile{FileName: filename, FileData: slices.Clone(data)})
	return nil
}

// Download builds the CSV for columns and rows with onDownload
// (see Writer.Build), encodes it and saves it as filename.
// If onDownload aborts, saver is not called and nil is returned.
func (w *Writer) Download(ctx context.Context, saver Saver, filename string, columns []datatable.Column, rows []datatable.Row, onDownload datatable.DownloadFunc) error {
	if w.separator == "" {
		return ErrInvalidSeparator
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	csv, ok := w.Build(columns, rows, onDownload)
	if !ok {
		return nil
	}
	data, err := w.Encode(csv)
	if err != nil {
		return err
	}
	return saver.SaveCSV(ctx, filename, data)
}

// Download downloads columns and rows as CSV
// configured by options.DownloadOptions and options.OnDownload.
// It returns false if the download was aborted by options.OnDownload.
func Download(ctx context.Context, saver Saver, columns []datatable.Column, rows []datatable.Row, options *datatable.Options) (saved bool, err error) {
	onDownload := options.OnDownload
	if onDownload == nil {
		onDownload = datatable.DefaultDownload
	}
	tracked := func(buildHead func([]datatable.Column) string, buildBody func([]datatable.Row) string, columns []datatable.Column, rows []datatable.Row) (string, bool) {
		var csv string
		csv, saved = onDownload(buildHead, buildBody, columns, rows)
		return csv, saved
	}
	err = NewWriterFromOptions(options).Download(ctx, saver, options.DownloadOptions.Filename, columns, rows, tracked)
	if err != nil {
		return false, err
	}
	return saved, nil
}
