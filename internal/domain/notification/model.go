package notification

import "time"

type Kind string

const (
	KindWarning Kind = "warning"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Notification is derived from the current employee/project state on
// every scan pass. It is never persisted; ids are stable across scans
// of the same snapshot so re-scans are idempotent.
type Notification struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Category  string    `json:"category"`
	Priority  Priority  `json:"priority"`
	Read      bool      `json:"read"`
}
