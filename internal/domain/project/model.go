package project

import "time"

// Status is a closed set; anything unrecognized falls back to Planned.
type Status string

const (
	StatusPlanned    Status = "Planned"
	StatusInProgress Status = "InProgress"
	StatusDone       Status = "Done"
	StatusSuspended  Status = "Suspended"
)

func NormalizeStatus(s string) Status {
	switch Status(s) {
	case StatusPlanned, StatusInProgress, StatusDone, StatusSuspended:
		return Status(s)
	default:
		return StatusPlanned
	}
}

type Material struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

type Attachment struct {
	Name     string `json:"name"`
	Size     int64  `json:"size"`
	MimeType string `json:"mimeType"`
	BlobRef  string `json:"blobRef"`
}

type ProgressEntry struct {
	Timestamp   string `json:"timestamp"`
	Description string `json:"description"`
	Responsible string `json:"responsible"`
	Status      string `json:"status"`
	Notes       string `json:"notes"`
}

// Project is the display shape handed to forms and lists. Dates are plain
// ISO strings as the forms submit them.
type Project struct {
	ID              string          `json:"id,omitempty"`
	Nature          string          `json:"nature" validate:"required"`
	Description     string          `json:"description" validate:"required"`
	Materials       []Material      `json:"materials"`
	Responsible     string          `json:"responsible" validate:"required"`
	Requester       string          `json:"requester"`
	Client          string          `json:"client" validate:"required"`
	Company         string          `json:"company"`
	StartDate       string          `json:"startDate"`
	EndDate         string          `json:"endDate"`
	Attachments     []Attachment    `json:"attachments"`
	Progress        int             `json:"progress"`
	Status          Status          `json:"status"`
	ProgressEntries []ProgressEntry `json:"progressEntries"`
	CreatedAt       time.Time       `json:"createdAt,omitempty"`
	UpdatedAt       time.Time       `json:"updatedAt,omitempty"`
}

// ClampedProgress bounds the raw stored value to [0,100] for display.
// The stored value itself is not range-validated on input.
func (p Project) ClampedProgress() int {
	if p.Progress < 0 {
		return 0
	}
	if p.Progress > 100 {
		return 100
	}
	return p.Progress
}
