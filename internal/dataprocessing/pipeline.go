package dataprocessing

import (
	"weekcast/internal/table"
)

// Options configures pipeline behavior.
type Options struct {
	// SortWeekColumns orders consolidated week columns ascending by their
	// numeric week key. Disabled, week columns keep first-seen order.
	SortWeekColumns bool
}

// DefaultOptions returns the default pipeline options.
func DefaultOptions() Options {
	return Options{SortWeekColumns: true}
}

// Process runs the full transformation over a table: status row filter,
// header classification, then week column consolidation. The pipeline is
// synchronous and stateless; each stage derives a new table value and
// nothing is retried or partially applied.
func Process(t table.Table, opts Options) table.Table {
	t = FilterStatus(t)

	labels, isWeek := ClassifyHeaders(t.Labels())
	for i := range t.Columns {
		t.Columns[i].Label = labels[i]
	}

	return ConsolidateWeeks(t, isWeek, opts.SortWeekColumns)
}
