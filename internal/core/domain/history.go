package domain

import "fmt"

// HistoryRange is a user-selectable bucket width for the synthesized
// history chart.
type HistoryRange string

const (
	RangeDay   HistoryRange = "24h"
	RangeWeek  HistoryRange = "7d"
	RangeMonth HistoryRange = "30d"
	RangeYear  HistoryRange = "1y"
)

// rangeBuckets maps a range to its bucket count N; a synthesized series
// always has N+1 points (inclusive end-points).
var rangeBuckets = map[HistoryRange]int{
	RangeDay:   1,
	RangeWeek:  7,
	RangeMonth: 30,
	RangeYear:  365,
}

// ParseHistoryRange converts a raw string into a HistoryRange.
func ParseHistoryRange(raw string) (HistoryRange, error) {
	r := HistoryRange(raw)
	if _, ok := rangeBuckets[r]; !ok {
		return "", fmt.Errorf("unknown history range %q", raw)
	}
	return r, nil
}

// Buckets returns the bucket count N for the range.
func (r HistoryRange) Buckets() int {
	return rangeBuckets[r]
}

// IsIntraday reports whether the range spans a single day and therefore
// uses hourly offsets with clock labels; all other ranges use daily offsets.
func (r HistoryRange) IsIntraday() bool {
	return r == RangeDay
}

// HistoryPoint is one charted bucket of the synthesized series. Points are
// regenerated whole on every (currency, range, snapshot) change and never
// persisted.
type HistoryPoint struct {
	Label string  `json:"label"` // Formatted time bucket: "15:04" for 24h, "02/01" otherwise
	Rate  float64 `json:"rate"`
}
