package dataprocessing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassifyHeaders(t *testing.T) {
	tests := []struct {
		name      string
		label     string
		wantLabel string
		wantWeek  bool
	}{
		{
			name:      "canonical six digit key passes through",
			label:     "202415",
			wantLabel: "202415",
			wantWeek:  true,
		},
		{
			name:      "six digits never date-parsed",
			label:     "202413",
			wantLabel: "202413",
			wantWeek:  true,
		},
		{
			name:      "ambiguous date resolves day-first",
			label:     "03/04/2024", // 3 April 2024
			wantLabel: "202414",
			wantWeek:  true,
		},
		{
			name:      "month-first fallback when day-first invalid",
			label:     "01/22/2024", // 22 January 2024
			wantLabel: "202404",
			wantWeek:  true,
		},
		{
			name:      "iso date",
			label:     "2024-01-22",
			wantLabel: "202404",
			wantWeek:  true,
		},
		{
			name:      "dash separated day-first",
			label:     "03-01-2024", // 3 January 2024
			wantLabel: "202401",
			wantWeek:  true,
		},
		{
			name:      "iso year differs from calendar year at boundary",
			label:     "29/12/2025", // Monday of ISO week 1, 2026
			wantLabel: "202601",
			wantWeek:  true,
		},
		{
			name:      "plain text unchanged",
			label:     "Customer",
			wantLabel: "Customer",
			wantWeek:  false,
		},
		{
			name:      "empty label unchanged",
			label:     "",
			wantLabel: "",
			wantWeek:  false,
		},
		{
			name:      "five digits not a week key",
			label:     "20241",
			wantLabel: "20241",
			wantWeek:  false,
		},
		{
			name:      "seven digits not a week key",
			label:     "2024131",
			wantLabel: "2024131",
			wantWeek:  false,
		},
		{
			name:      "garbage date unchanged",
			label:     "32/13/2024",
			wantLabel: "32/13/2024",
			wantWeek:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			labels, isWeek := ClassifyHeaders([]string{tt.label})
			assert.Equal(t, tt.wantLabel, labels[0])
			assert.Equal(t, tt.wantWeek, isWeek[0])
		})
	}
}

func TestClassifyHeadersParallelSlices(t *testing.T) {
	in := []string{"Name", "202401", "03/01/2024"}
	labels, isWeek := ClassifyHeaders(in)

	assert.Equal(t, []string{"Name", "202401", "202401"}, labels)
	assert.Equal(t, []bool{false, true, true}, isWeek)
}

func TestWeekKey(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{name: "mid year", date: time.Date(2024, 1, 22, 0, 0, 0, 0, time.UTC), want: "202404"},
		{name: "single digit week zero padded", date: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), want: "202401"},
		{name: "december in next iso year", date: time.Date(2025, 12, 29, 0, 0, 0, 0, time.UTC), want: "202601"},
		{name: "january in previous iso year", date: time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), want: "202653"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeekKey(tt.date)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, 6)
		})
	}
}
