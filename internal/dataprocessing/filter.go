package dataprocessing

import (
	"strings"

	"weekcast/internal/table"
)

// statusColumn is the 0-based index of the order status column.
const statusColumn = 1

// statusAllowSet holds the retained order statuses, compared after
// trimming and lowercasing the cell text.
var statusAllowSet = map[string]struct{}{
	"firm":     {},
	"forecast": {},
}

// FilterStatus keeps only the rows whose status column holds a firm or
// forecast marker, preserving row order. Tables with fewer than two
// columns have no status column and are returned unchanged.
func FilterStatus(t table.Table) table.Table {
	if len(t.Columns) <= statusColumn {
		return t
	}
	var keep []int
	for i, cell := range t.Columns[statusColumn].Cells {
		status := strings.ToLower(strings.TrimSpace(cell.String()))
		if _, ok := statusAllowSet[status]; ok {
			keep = append(keep, i)
		}
	}
	return t.SelectRows(keep)
}
