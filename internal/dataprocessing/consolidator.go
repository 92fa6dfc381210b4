package dataprocessing

import (
	"sort"
	"strconv"

	"weekcast/internal/table"
)

// weekGroups is an ordered grouping of week column indices by canonical
// week key. Key order is first-seen order over the input columns.
type weekGroups struct {
	keys    []string
	members map[string][]int
}

func groupWeekColumns(t table.Table, isWeek []bool) weekGroups {
	g := weekGroups{members: make(map[string][]int)}
	for i, col := range t.Columns {
		if !isWeek[i] {
			continue
		}
		if _, seen := g.members[col.Label]; !seen {
			g.keys = append(g.keys, col.Label)
		}
		g.members[col.Label] = append(g.members[col.Label], i)
	}
	return g
}

// consolidateGroup merges the columns at the given indices into a single
// column. When the group holds at least one numeric cell anywhere, each
// row becomes the sum of the non-missing numeric values across the group;
// rows with no data in any member stay missing. A group with no numeric
// content at all keeps the first member's cells verbatim, so placeholder
// text columns survive consolidation instead of collapsing to missing.
func consolidateGroup(t table.Table, key string, members []int) table.Column {
	rows := t.Rows()
	sums := make([]table.Cell, rows)
	hasNumeric := false
	for i := 0; i < rows; i++ {
		total := 0.0
		found := false
		for _, j := range members {
			if v, ok := t.Columns[j].Cells[i].AsNumber(); ok {
				total += v
				found = true
			}
		}
		if found {
			sums[i] = table.NumberCell(total)
			hasNumeric = true
		} else {
			sums[i] = table.MissingCell()
		}
	}
	if !hasNumeric {
		first := t.Columns[members[0]]
		cells := make([]table.Cell, rows)
		copy(cells, first.Cells)
		return table.Column{Label: key, Cells: cells}
	}
	return table.Column{Label: key, Cells: sums}
}

// ConsolidateWeeks merges week-flagged columns that share a canonical week
// key and rebuilds the table schema: non-week columns first in their
// original order, then one column per distinct week key. When sortWeeks is
// set the week columns are ordered ascending by their six-digit key
// interpreted as an integer; otherwise they keep first-seen key order.
// A table with no week columns is returned unchanged.
func ConsolidateWeeks(t table.Table, isWeek []bool, sortWeeks bool) table.Table {
	any := false
	for _, w := range isWeek {
		if w {
			any = true
			break
		}
	}
	if !any {
		return t
	}

	out := table.Table{}
	for i, col := range t.Columns {
		if !isWeek[i] {
			out.Columns = append(out.Columns, col)
		}
	}

	groups := groupWeekColumns(t, isWeek)
	keys := groups.keys
	if sortWeeks {
		keys = append([]string(nil), keys...)
		sort.Slice(keys, func(a, b int) bool {
			ka, _ := strconv.Atoi(keys[a])
			kb, _ := strconv.Atoi(keys[b])
			return ka < kb
		})
	}
	for _, key := range keys {
		out.Columns = append(out.Columns, consolidateGroup(t, key, groups.members[key]))
	}
	return out
}
