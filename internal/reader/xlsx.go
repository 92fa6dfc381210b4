package reader

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"weekcast/internal/table"
)

// readXLSX reads a sheet from an xlsx or xlsm workbook via excelize.
func readXLSX(path, sheet string) ([][]table.Cell, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		list := f.GetSheetList()
		if len(list) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		sheet = list[0]
	}

	raw, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	rows := make([][]table.Cell, len(raw))
	for i, row := range raw {
		cells := make([]table.Cell, len(row))
		for j, v := range row {
			cells[j] = table.ParseCell(v)
		}
		rows[i] = cells
	}
	return rows, nil
}
