package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellAsNumber(t *testing.T) {
	tests := []struct {
		name   string
		cell   Cell
		want   float64
		wantOK bool
	}{
		{name: "number", cell: NumberCell(1.5), want: 1.5, wantOK: true},
		{name: "numeric text", cell: TextCell("42"), want: 42, wantOK: true},
		{name: "numeric text with spaces", cell: TextCell("  7.25 "), want: 7.25, wantOK: true},
		{name: "numeric text with thousands separator", cell: TextCell("1,250"), want: 1250, wantOK: true},
		{name: "non-numeric text", cell: TextCell("pending"), wantOK: false},
		{name: "blank text", cell: TextCell("   "), wantOK: false},
		{name: "missing", cell: MissingCell(), wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.cell.AsNumber()
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestCellString(t *testing.T) {
	assert.Equal(t, "1.5", NumberCell(1.5).String())
	assert.Equal(t, "10", NumberCell(10).String())
	assert.Equal(t, "Firm", TextCell("Firm").String())
	assert.Equal(t, "", MissingCell().String())
}

func TestParseCell(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Cell
	}{
		{name: "empty", raw: "", want: MissingCell()},
		{name: "whitespace only", raw: "  ", want: MissingCell()},
		{name: "integer", raw: "12", want: NumberCell(12)},
		{name: "float", raw: "3.5", want: NumberCell(3.5)},
		{name: "thousands separator", raw: "1,000", want: NumberCell(1000)},
		{name: "text", raw: "Firm", want: TextCell("Firm")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCell(tt.raw))
		})
	}
}

func TestTableSelectRows(t *testing.T) {
	tbl := Table{Columns: []Column{
		{Label: "Name", Cells: []Cell{TextCell("a"), TextCell("b"), TextCell("c")}},
		{Label: "Qty", Cells: []Cell{NumberCell(1), NumberCell(2), NumberCell(3)}},
	}}

	got := tbl.SelectRows([]int{2, 0})

	assert.Equal(t, []string{"Name", "Qty"}, got.Labels())
	assert.Equal(t, 2, got.Rows())
	assert.Equal(t, TextCell("c"), got.Columns[0].Cells[0])
	assert.Equal(t, TextCell("a"), got.Columns[0].Cells[1])
	assert.Equal(t, NumberCell(3), got.Columns[1].Cells[0])

	empty := tbl.SelectRows(nil)
	assert.Equal(t, 0, empty.Rows())
	assert.Len(t, empty.Columns, 2)
}
