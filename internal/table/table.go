// Package table defines the in-memory tabular model shared by the reader,
// the processing pipeline, and the exporters. Cells are a tagged variant
// over number, text, and missing so that mixed-content spreadsheet columns
// keep their identity through transformation.
package table

import (
	"strconv"
	"strings"
)

// Kind identifies the content of a Cell.
type Kind int

const (
	// Missing marks an empty or absent cell.
	Missing Kind = iota
	// Number marks a numeric cell.
	Number
	// Text marks a free-form text cell.
	Text
)

// Cell is a single spreadsheet value.
type Cell struct {
	Kind   Kind
	Number float64
	Text   string
}

// MissingCell returns the missing value.
func MissingCell() Cell {
	return Cell{Kind: Missing}
}

// NumberCell returns a numeric cell.
func NumberCell(v float64) Cell {
	return Cell{Kind: Number, Number: v}
}

// TextCell returns a text cell.
func TextCell(s string) Cell {
	return Cell{Kind: Text, Text: s}
}

// IsMissing reports whether the cell holds no value.
func (c Cell) IsMissing() bool {
	return c.Kind == Missing
}

// AsNumber coerces the cell to a number. Text cells are parsed after
// trimming whitespace and stripping thousands separators; text that does
// not parse, and missing cells, coerce to no value rather than an error.
func (c Cell) AsNumber() (float64, bool) {
	switch c.Kind {
	case Number:
		return c.Number, true
	case Text:
		s := strings.ReplaceAll(strings.TrimSpace(c.Text), ",", "")
		if s == "" {
			return 0, false
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return v, true
	default:
		return 0, false
	}
}

// String returns the text form of the cell. Missing cells render empty.
func (c Cell) String() string {
	switch c.Kind {
	case Number:
		return strconv.FormatFloat(c.Number, 'g', -1, 64)
	case Text:
		return c.Text
	default:
		return ""
	}
}

// ParseCell converts a raw spreadsheet string into a typed cell: empty
// becomes missing, numeric strings become numbers, everything else text.
func ParseCell(raw string) Cell {
	if strings.TrimSpace(raw) == "" {
		return MissingCell()
	}
	if v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(raw), ",", ""), 64); err == nil {
		return NumberCell(v)
	}
	return TextCell(raw)
}

// Column is an ordered sequence of cells under a header label.
type Column struct {
	Label string
	Cells []Cell
}

// Table is an ordered sequence of columns. All columns carry the same
// number of cells; order of both rows and columns is significant.
type Table struct {
	Columns []Column
}

// Rows returns the number of rows in the table.
func (t Table) Rows() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Cells)
}

// Labels returns the column labels in order.
func (t Table) Labels() []string {
	labels := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		labels[i] = col.Label
	}
	return labels
}

// Row returns the cells of row i across all columns.
func (t Table) Row(i int) []Cell {
	row := make([]Cell, len(t.Columns))
	for j, col := range t.Columns {
		row[j] = col.Cells[i]
	}
	return row
}

// SelectRows returns a new table containing only the rows whose indices
// appear in keep, in the given order. Column labels are preserved.
func (t Table) SelectRows(keep []int) Table {
	out := Table{Columns: make([]Column, len(t.Columns))}
	for j, col := range t.Columns {
		cells := make([]Cell, len(keep))
		for i, idx := range keep {
			cells[i] = col.Cells[idx]
		}
		out.Columns[j] = Column{Label: col.Label, Cells: cells}
	}
	return out
}
