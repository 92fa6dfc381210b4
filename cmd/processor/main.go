package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"weekcast/internal/dataprocessing"
	"weekcast/internal/exporter"
	"weekcast/internal/reader"
	"weekcast/internal/validation"
)

func main() {
	inFile := flag.String("in", "", "input spreadsheet (.xlsx, .xlsm, .xls or .xlsb)")
	sheet := flag.String("sheet", "", "sheet name (blank = first sheet)")
	headerRow := flag.Int("header-row", 0, "0-based header row index")
	outDir := flag.String("out", ".", "output directory")
	format := flag.String("format", "xlsx", "output format: xlsx or csv")
	noSort := flag.Bool("no-sort", false, "keep week columns in first-seen order instead of sorting")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if *inFile == "" {
		fmt.Fprintln(os.Stderr, "usage: processor -in <file> [-sheet name] [-header-row n] [-out dir] [-format xlsx|csv]")
		os.Exit(2)
	}
	if *format != "xlsx" && *format != "csv" {
		logger.Error("unknown output format", "format", *format)
		os.Exit(2)
	}

	validator := validation.NewFileValidator(logger)
	if err := validator.ValidateSpreadsheetFile(*inFile); err != nil {
		logger.Error("input validation failed", "error", err)
		os.Exit(1)
	}
	if err := validator.ValidateOutputDirectory(*outDir); err != nil {
		logger.Error("output validation failed", "error", err)
		os.Exit(1)
	}

	t, err := reader.ReadTable(*inFile, reader.ReadOptions{Sheet: *sheet, HeaderRow: *headerRow})
	if err != nil {
		logger.Error("failed to read spreadsheet", "file", *inFile, "error", err)
		os.Exit(1)
	}
	logger.Info("spreadsheet loaded",
		"file", *inFile,
		"columns", len(t.Columns),
		"rows", t.Rows())

	out := dataprocessing.Process(t, dataprocessing.Options{SortWeekColumns: !*noSort})

	name := exporter.OutputFileName(time.Now(), "."+*format)
	path := filepath.Join(*outDir, name)
	switch *format {
	case "csv":
		err = exporter.WriteCSV(out, path)
	default:
		err = exporter.WriteXLSX(out, path)
	}
	if err != nil {
		logger.Error("failed to write output", "file", path, "error", err)
		os.Exit(1)
	}

	logger.Info("output written",
		"file", path,
		"columns", len(out.Columns),
		"rows", out.Rows())
}
