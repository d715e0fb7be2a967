// Command datatable loads a table from a YAML config file
// and optionally a SQL query, paints it to the terminal
// and exports it as CSV, XLSX or printable HTML.
//
// Usage:
//
//	datatable [flags] table.yaml
//
// The database URL for -query is read from the DATABASE_URL
// environment variable, which may be set in a .env file.
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // Register "pgx" database/sql driver
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	fs "github.com/ungerik/go-fs"

	"github.com/domonda/go-datatable"
	"github.com/domonda/go-datatable/csvtable"
	"github.com/domonda/go-datatable/htmltable"
	"github.com/domonda/go-datatable/sqltable"
	"github.com/domonda/go-datatable/termtable"
	"github.com/domonda/go-datatable/widget"
)

var (
	query     = flag.String("query", "", "SQL query loading columns and rows from DATABASE_URL")
	search    = flag.String("search", "", "search text")
	sortBy    = flag.String("sort", "", "column to sort by")
	desc      = flag.Bool("desc", false, "sort descending")
	page      = flag.Int("page", 0, "zero based page")
	csvDir    = flag.String("csv", "", "directory to download the CSV file into")
	xlsxFile  = flag.String("xlsx", "", "XLSX file to export to")
	printFile = flag.String("print", "", "HTML file to print to")
	maxWidth  = flag.Int("width", 40, "maximum column width")
	verbose   = flag.Bool("verbose", false, "log debug messages")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] table.yaml\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(level).
		With().
		Timestamp().
		Logger()

	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using environment variables")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx, log, fs.File(flag.Arg(0)))
	if err != nil {
		log.Error().Err(err).Msg("datatable failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, log zerolog.Logger, configFile fs.File) error {
	config, err := datatable.LoadConfig(configFile)
	if err != nil {
		return err
	}
	table := widget.New(log)
	table.ApplyConfig(config)

	if *query != "" {
		columns, rows, err := queryRows(ctx, *query)
		if err != nil {
			return err
		}
		if len(config.Columns) == 0 {
			table.SetColumns(columns...)
		}
		table.SetData(rows...)
	}

	if err = table.Recompute(); err != nil {
		return err
	}
	if err = applyFlags(table); err != nil {
		return err
	}

	renderer := termtable.NewRenderer(os.Stdout).WithMaxColumnWidth(*maxWidth)
	if err = table.Push(ctx, renderer); err != nil {
		return err
	}

	if *csvDir != "" {
		err = table.DownloadCSV(ctx, csvtable.DirSaver{Dir: fs.File(*csvDir)})
		if err != nil {
			return err
		}
	}
	if *xlsxFile != "" {
		err = exportXLSX(ctx, table, fs.File(*xlsxFile))
		if err != nil {
			return err
		}
	}
	if *printFile != "" {
		err = table.Print(ctx, htmltable.FilePrinter{File: fs.File(*printFile)})
		if err != nil {
			return err
		}
	}
	return nil
}

func queryRows(ctx context.Context, query string) ([]datatable.ColumnSpec, []datatable.RowInput, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, nil, errors.New("DATABASE_URL is required for -query")
	}
	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return nil, nil, fmt.Errorf("can't open database: %w", err)
	}
	defer db.Close()

	return sqltable.Query(ctx, db, query)
}

func applyFlags(table *widget.Table) error {
	if *search != "" {
		if err := table.Search(*search); err != nil {
			return err
		}
	}
	if *sortBy != "" {
		direction := datatable.SortAsc
		if *desc {
			direction = datatable.SortDesc
		}
		if err := table.SortBy(*sortBy, direction); err != nil {
			return err
		}
	}
	if *page > 0 {
		return table.ChangePage(*page)
	}
	return nil
}

func exportXLSX(ctx context.Context, table *widget.Table, file fs.File) error {
	writer, err := file.OpenWriter()
	if err != nil {
		return err
	}
	err = table.ExportXLSX(ctx, writer)
	return errors.Join(err, writer.Close())
}
