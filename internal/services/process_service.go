// Package services implements the application services between the HTTP
// transport and the processing pipeline.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"weekcast/internal/config"
	"weekcast/internal/dataprocessing"
	"weekcast/internal/exporter"
	"weekcast/internal/reader"
	"weekcast/internal/table"
)

// ProcessService reads an uploaded spreadsheet, runs the week
// normalization pipeline, and persists the cleaned workbook under the
// outputs directory. It holds no per-request state; every invocation is a
// single synchronous pass.
type ProcessService struct {
	cfg    *config.Config
	logger *slog.Logger
	now    func() time.Time
}

// NewProcessService creates a new process service.
func NewProcessService(cfg *config.Config, logger *slog.Logger) *ProcessService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProcessService{
		cfg:    cfg,
		logger: logger.With(slog.String("component", "process_service")),
		now:    time.Now,
	}
}

// Result describes a completed processing pass.
type Result struct {
	// Columns are the output column labels in final order.
	Columns []string `json:"columns"`
	// Preview holds the text form of the first rows of the output table.
	Preview [][]string `json:"preview"`
	// Rows and ColumnsTotal are the full output dimensions.
	Rows         int `json:"rows"`
	ColumnsTotal int `json:"columns_total"`
	// OutputFile is the name of the downloadable artifact.
	OutputFile string `json:"output_file"`
}

// ProcessFile runs the full pipeline over the spreadsheet at path and
// writes the consolidated workbook to the outputs directory. The sheet
// may be blank to select the first sheet; headerRow is 0-based and
// bounded by the configured maximum.
func (s *ProcessService) ProcessFile(ctx context.Context, path, sheet string, headerRow int) (*Result, error) {
	if headerRow < 0 || headerRow > s.cfg.Processing.MaxHeaderRow {
		return nil, fmt.Errorf("header row %d: %w", headerRow, ErrHeaderRowHigh)
	}

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	s.logger.InfoContext(ctx, "processing spreadsheet",
		slog.String("path", path),
		slog.String("sheet", sheet),
		slog.Int("header_row", headerRow),
		slog.String("format", format))

	t, err := reader.ReadTable(path, reader.ReadOptions{Sheet: sheet, HeaderRow: headerRow})
	if err != nil {
		filesFailed.WithLabelValues(failureReason(err)).Inc()
		return nil, err
	}

	inputColumns := len(t.Columns)
	out := dataprocessing.Process(t, dataprocessing.Options{
		SortWeekColumns: s.cfg.Processing.SortWeekColumns,
	})
	if merged := inputColumns - len(out.Columns); merged > 0 {
		columnsConsolidated.Add(float64(merged))
	}

	outputName := exporter.OutputFileName(s.now(), ".xlsx")
	outputPath := filepath.Join(s.cfg.Paths.OutputsDir, outputName)
	if err := exporter.WriteXLSX(out, outputPath); err != nil {
		filesFailed.WithLabelValues("write").Inc()
		return nil, fmt.Errorf("writing output workbook: %w", err)
	}

	filesProcessed.WithLabelValues(format).Inc()
	s.logger.InfoContext(ctx, "processing complete",
		slog.Int("input_columns", inputColumns),
		slog.Int("output_columns", len(out.Columns)),
		slog.Int("output_rows", out.Rows()),
		slog.String("output_file", outputName))

	return &Result{
		Columns:      out.Labels(),
		Preview:      previewRows(out, s.cfg.Processing.PreviewRows),
		Rows:         out.Rows(),
		ColumnsTotal: len(out.Columns),
		OutputFile:   outputName,
	}, nil
}

// OutputPath resolves a previously produced output file name inside the
// outputs directory, rejecting anything that escapes it.
func (s *ProcessService) OutputPath(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("output file name %q: %w", name, ErrInvalidInput)
	}
	return filepath.Join(s.cfg.Paths.OutputsDir, name), nil
}

func previewRows(t table.Table, limit int) [][]string {
	n := t.Rows()
	if n > limit {
		n = limit
	}
	preview := make([][]string, n)
	for i := 0; i < n; i++ {
		row := make([]string, len(t.Columns))
		for j, cell := range t.Row(i) {
			row[j] = cell.String()
		}
		preview[i] = row
	}
	return preview
}

func failureReason(err error) string {
	var unsupported *reader.UnsupportedFormatError
	if errors.As(err, &unsupported) {
		return "unsupported_format"
	}
	var readErr *reader.ReadError
	if errors.As(err, &readErr) {
		return "read_failure"
	}
	return "other"
}
