package client

import "time"

// Status is a closed set; anything unrecognized falls back to Active.
type Status string

const (
	StatusProspect Status = "Prospect"
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

func NormalizeStatus(s string) Status {
	switch Status(s) {
	case StatusProspect, StatusActive, StatusInactive:
		return Status(s)
	default:
		return StatusActive
	}
}

// Client is the display shape of a customer record.
type Client struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name" validate:"required"`
	Company   string    `json:"company"`
	Email     string    `json:"email" validate:"required,email"`
	Phone     string    `json:"phone" validate:"required"`
	Address   string    `json:"address"`
	Sector    string    `json:"sector"`
	Status    Status    `json:"status"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}
