package domain

import "time"

// AlertDirection indicates which side of the target rate an alert watches.
type AlertDirection string

const (
	AlertAbove AlertDirection = "above"
	AlertBelow AlertDirection = "below"
)

// AlertRule is a user-defined rate threshold. Rules are kept in creation
// order, duplicates are permitted, and identity for deletion is the
// positional index. Rules are recorded only; nothing evaluates them against
// live rates.
type AlertRule struct {
	Currency   string         `json:"currency"`
	TargetRate float64        `json:"targetRate"`
	Direction  AlertDirection `json:"direction"`
	CreatedAt  time.Time      `json:"createdAt"`
}
