package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"weekcast/internal/table"
)

// WriteCSV writes the table to a CSV file with a UTF-8 BOM prefix so
// Excel recognizes the encoding when the file is opened directly.
func WriteCSV(t table.Table, filePath string) error {
	slog.Info("writing csv output",
		slog.String("file_path", filePath),
		slog.Int("columns", len(t.Columns)),
		slog.Int("rows", t.Rows()))

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(t.Labels()); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}

	for i := 0; i < t.Rows(); i++ {
		record := make([]string, len(t.Columns))
		for j, cell := range t.Row(i) {
			record[j] = cell.String()
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	return writer.Error()
}
