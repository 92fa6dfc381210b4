package reader

import (
	"fmt"
	"os"

	"github.com/TsubasaBE/go-xlsb/workbook"

	"weekcast/internal/table"
)

// readXLSB reads a sheet from an xlsb workbook via go-xlsb.
func readXLSB(path, sheet string) ([][]table.Cell, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat workbook: %w", err)
	}

	wb, err := workbook.OpenReader(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer wb.Close()

	ws, err := wb.Sheet(1)
	if sheet != "" {
		ws, err = wb.SheetByName(sheet)
	}
	if err != nil {
		return nil, fmt.Errorf("select sheet: %w", err)
	}

	var rows [][]table.Cell
	for row := range ws.Rows(false) {
		cells := make([]table.Cell, len(row))
		for j, c := range row {
			cells[j] = xlsbCell(c.V)
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

// xlsbCell maps a decoded xlsb value onto the table cell model.
func xlsbCell(v interface{}) table.Cell {
	switch val := v.(type) {
	case nil:
		return table.MissingCell()
	case float64:
		return table.NumberCell(val)
	case bool:
		if val {
			return table.TextCell("TRUE")
		}
		return table.TextCell("FALSE")
	case string:
		return table.ParseCell(val)
	default:
		return table.ParseCell(fmt.Sprint(val))
	}
}
