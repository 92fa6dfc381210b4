// Package exporter serializes processed tables into downloadable
// spreadsheet artifacts.
package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"weekcast/internal/table"
)

const outputSheet = "Sheet1"

// OutputFileName names an output artifact by the given date, e.g.
// "20240815.xlsx".
func OutputFileName(now time.Time, ext string) string {
	return now.Format("20060102") + ext
}

// WriteXLSX writes the table to an xlsx workbook at the given path.
// Missing cells are left blank so the output round-trips through the
// reader without inventing zeros.
func WriteXLSX(t table.Table, filePath string) error {
	slog.Info("writing xlsx output",
		slog.String("file_path", filePath),
		slog.Int("columns", len(t.Columns)),
		slog.Int("rows", t.Rows()))

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	for j, col := range t.Columns {
		cell, err := excelize.CoordinatesToCellName(j+1, 1)
		if err != nil {
			return fmt.Errorf("failed to map header coordinates: %w", err)
		}
		if err := f.SetCellValue(outputSheet, cell, col.Label); err != nil {
			return fmt.Errorf("failed to write header %q: %w", col.Label, err)
		}
	}

	for j, col := range t.Columns {
		for i, c := range col.Cells {
			if c.IsMissing() {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return fmt.Errorf("failed to map cell coordinates: %w", err)
			}
			var v interface{}
			if c.Kind == table.Number {
				v = c.Number
			} else {
				v = c.Text
			}
			if err := f.SetCellValue(outputSheet, cell, v); err != nil {
				return fmt.Errorf("failed to write cell %s: %w", cell, err)
			}
		}
	}

	if err := f.SaveAs(filePath); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
