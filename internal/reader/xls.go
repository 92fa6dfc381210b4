package reader

import (
	"fmt"

	"github.com/extrame/xls"

	"weekcast/internal/table"
)

// readXLS reads a sheet from a legacy binary xls workbook.
func readXLS(path, sheet string) ([][]table.Cell, error) {
	wb, err := xls.Open(path, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}

	if wb.NumSheets() == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	ws := wb.GetSheet(0)
	if sheet != "" {
		ws = nil
		for i := 0; i < wb.NumSheets(); i++ {
			if candidate := wb.GetSheet(i); candidate != nil && candidate.Name == sheet {
				ws = candidate
				break
			}
		}
		if ws == nil {
			return nil, fmt.Errorf("sheet %q: %w", sheet, errSheetNotFound)
		}
	}
	if ws == nil {
		return nil, fmt.Errorf("workbook sheet is unreadable")
	}

	rows := make([][]table.Cell, 0, int(ws.MaxRow)+1)
	for i := 0; i <= int(ws.MaxRow); i++ {
		row := ws.Row(i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		cells := make([]table.Cell, row.LastCol()+1)
		for j := range cells {
			cells[j] = table.ParseCell(row.Col(j))
		}
		rows = append(rows, cells)
	}
	return rows, nil
}
