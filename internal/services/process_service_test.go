package services

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"weekcast/internal/config"
	"weekcast/internal/reader"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		Paths: config.PathsConfig{
			DataDir:    dir,
			UploadsDir: filepath.Join(dir, "uploads"),
			OutputsDir: filepath.Join(dir, "outputs"),
		},
		Processing: config.ProcessingConfig{
			PreviewRows:     50,
			MaxHeaderRow:    100,
			SortWeekColumns: true,
		},
	}
}

func writeFixture(t *testing.T, dir string, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		for j, v := range row {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", cell, v))
		}
	}

	path := filepath.Join(dir, "input.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestProcessFile(t *testing.T) {
	cfg := testConfig(t)
	svc := NewProcessService(cfg, slog.Default())
	svc.now = func() time.Time {
		return time.Date(2024, 8, 15, 0, 0, 0, 0, time.UTC)
	}

	path := writeFixture(t, t.TempDir(), [][]interface{}{
		{"Name", "Status", "01/22/2024", "202404", "03/01/2024"},
		{"widget", "Firm", 10, 5, nil},
		{"gadget", "Cancelled", 99, 99, 99},
		{"gizmo", "forecast", nil, 7, 2},
	})

	result, err := svc.ProcessFile(context.Background(), path, "", 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"Name", "Status", "202401", "202404"}, result.Columns)
	assert.Equal(t, 2, result.Rows)
	assert.Equal(t, 4, result.ColumnsTotal)
	assert.Equal(t, "20240815.xlsx", result.OutputFile)

	require.Len(t, result.Preview, 2)
	assert.Equal(t, []string{"widget", "Firm", "", "15"}, result.Preview[0])
	assert.Equal(t, []string{"gizmo", "forecast", "2", "7"}, result.Preview[1])

	_, err = os.Stat(filepath.Join(cfg.Paths.OutputsDir, result.OutputFile))
	assert.NoError(t, err)
}

func TestProcessFilePreviewBounded(t *testing.T) {
	cfg := testConfig(t)
	cfg.Processing.PreviewRows = 2
	svc := NewProcessService(cfg, slog.Default())

	rows := [][]interface{}{{"Name", "Status", "202404"}}
	for i := 0; i < 5; i++ {
		rows = append(rows, []interface{}{"item", "Firm", i})
	}
	path := writeFixture(t, t.TempDir(), rows)

	result, err := svc.ProcessFile(context.Background(), path, "", 0)
	require.NoError(t, err)

	assert.Equal(t, 5, result.Rows)
	assert.Len(t, result.Preview, 2)
}

func TestProcessFileHeaderRowAboveMax(t *testing.T) {
	cfg := testConfig(t)
	svc := NewProcessService(cfg, slog.Default())

	_, err := svc.ProcessFile(context.Background(), "input.xlsx", "", 101)
	require.ErrorIs(t, err, ErrHeaderRowHigh)
}

func TestProcessFileUnsupportedFormat(t *testing.T) {
	cfg := testConfig(t)
	svc := NewProcessService(cfg, slog.Default())

	_, err := svc.ProcessFile(context.Background(), "input.csv", "", 0)

	var ufe *reader.UnsupportedFormatError
	require.ErrorAs(t, err, &ufe)
}

func TestOutputPath(t *testing.T) {
	cfg := testConfig(t)
	svc := NewProcessService(cfg, slog.Default())

	tests := []struct {
		name    string
		file    string
		wantErr bool
	}{
		{name: "plain name", file: "20240815.xlsx", wantErr: false},
		{name: "empty", file: "", wantErr: true},
		{name: "path traversal", file: "../secrets.xlsx", wantErr: true},
		{name: "nested path", file: "a/b.xlsx", wantErr: true},
		{name: "dotfile", file: ".hidden", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, err := svc.OutputPath(tt.file)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(cfg.Paths.OutputsDir, tt.file), path)
		})
	}
}
