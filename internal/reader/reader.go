// Package reader loads tabular data from spreadsheet files into the shared
// table model. The file format is routed by extension: xlsx/xlsm through
// excelize, legacy xls through extrame/xls, and xlsb through go-xlsb.
package reader

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"weekcast/internal/table"
)

// ReadOptions selects what to read from a workbook.
type ReadOptions struct {
	// Sheet is the worksheet name. Blank selects the first sheet.
	Sheet string
	// HeaderRow is the 0-based index of the row holding column labels.
	// Rows above it are discarded.
	HeaderRow int
}

// UnsupportedFormatError is returned before any parse attempt when the
// file extension is not one of the recognized spreadsheet kinds.
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported spreadsheet format: %q (want .xlsx, .xlsm, .xls or .xlsb)", e.Ext)
}

// ReadError wraps a failure from one of the underlying format readers.
// Hint carries a format-specific suggestion for the end user; it is only
// populated for xlsb, the hardest format to read reliably.
type ReadError struct {
	Path   string
	Format string
	Hint   string
	Err    error
}

func (e *ReadError) Error() string {
	msg := fmt.Sprintf("reading %s file %s: %v", e.Format, e.Path, e.Err)
	if e.Hint != "" {
		msg += " (" + e.Hint + ")"
	}
	return msg
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// xlsbHint is shown when an xlsb workbook cannot be read.
const xlsbHint = "could not read .xlsb; open the file in Excel and save it as .xlsx, then retry"

var errSheetNotFound = errors.New("sheet not found")

// ReadTable reads one worksheet from the file at path into a table.
// Unsupported extensions fail with *UnsupportedFormatError before the file
// is opened; any failure inside a format reader surfaces as *ReadError.
func ReadTable(path string, opts ReadOptions) (table.Table, error) {
	if opts.HeaderRow < 0 {
		return table.Table{}, fmt.Errorf("header row must not be negative: %d", opts.HeaderRow)
	}

	ext := strings.ToLower(filepath.Ext(path))
	var (
		rows [][]table.Cell
		err  error
	)
	switch ext {
	case ".xlsx", ".xlsm":
		rows, err = readXLSX(path, opts.Sheet)
	case ".xls":
		rows, err = readXLS(path, opts.Sheet)
	case ".xlsb":
		rows, err = readXLSB(path, opts.Sheet)
	default:
		return table.Table{}, &UnsupportedFormatError{Ext: ext}
	}
	if err != nil {
		re := &ReadError{Path: path, Format: strings.TrimPrefix(ext, "."), Err: err}
		if ext == ".xlsb" {
			re.Hint = xlsbHint
		}
		return table.Table{}, re
	}

	t, err := buildTable(rows, opts.HeaderRow)
	if err != nil {
		return table.Table{}, &ReadError{Path: path, Format: strings.TrimPrefix(ext, "."), Err: err}
	}
	return t, nil
}

// buildTable converts row-major cell data into the column-major table
// model. The header row supplies column labels; columns past the end of a
// short header row get empty labels, matching how ragged sheets surface.
func buildTable(rows [][]table.Cell, headerRow int) (table.Table, error) {
	if headerRow >= len(rows) {
		return table.Table{}, fmt.Errorf("header row %d is beyond the last sheet row %d", headerRow, len(rows)-1)
	}

	header := rows[headerRow]
	data := rows[headerRow+1:]

	width := len(header)
	for _, row := range data {
		if len(row) > width {
			width = len(row)
		}
	}

	t := table.Table{Columns: make([]table.Column, width)}
	for j := 0; j < width; j++ {
		label := ""
		if j < len(header) {
			label = header[j].String()
		}
		cells := make([]table.Cell, len(data))
		for i, row := range data {
			if j < len(row) {
				cells[i] = row[j]
			} else {
				cells[i] = table.MissingCell()
			}
		}
		t.Columns[j] = table.Column{Label: label, Cells: cells}
	}
	return t, nil
}
