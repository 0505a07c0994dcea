package domain

import "time"

// Snapshot is one fetched, validated set of currency rate records. It is
// immutable once produced and replaced wholesale by each successful fetch;
// a failed fetch leaves the previous Snapshot in place.
type Snapshot struct {
	Records    []CurrencyRecord `json:"records"`
	ObservedAt time.Time        `json:"observedAt"` // Upstream-reported update time, not local fetch time
}

// RateFor returns the normalized rate for code and whether the snapshot
// carries a record for it.
func (s *Snapshot) RateFor(code string) (float64, bool) {
	if s == nil {
		return 0, false
	}
	for _, rec := range s.Records {
		if rec.Code == code {
			return rec.Rate, true
		}
	}
	return 0, false
}
