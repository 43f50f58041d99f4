package order

import "time"

// Status is a closed set; anything unrecognized falls back to Pending.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusOrdered   Status = "Ordered"
	StatusInTransit Status = "InTransit"
	StatusDelivered Status = "Delivered"
	StatusCancelled Status = "Cancelled"
)

func NormalizeStatus(s string) Status {
	switch Status(s) {
	case StatusPending, StatusOrdered, StatusInTransit, StatusDelivered, StatusCancelled:
		return Status(s)
	default:
		return StatusPending
	}
}

type Article struct {
	Name        string  `json:"name"`
	Reference   string  `json:"reference"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
}

type AttachedDocument struct {
	Name     string `json:"name"`
	Size     int64  `json:"size"`
	MimeType string `json:"mimeType"`
	BlobRef  string `json:"blobRef"`
}

// Order is the display shape of a purchase order.
type Order struct {
	ID                    string             `json:"id,omitempty"`
	Articles              []Article          `json:"articles" validate:"min=1"`
	Supplier              string             `json:"supplier" validate:"required"`
	Requester             string             `json:"requester" validate:"required"`
	PurchasingResponsible string             `json:"purchasingResponsible"`
	Client                string             `json:"client"`
	DeliveryDate          string             `json:"deliveryDate"`
	Documents             []AttachedDocument `json:"documents"`
	Status                Status             `json:"status"`
	CreatedAt             time.Time          `json:"createdAt,omitempty"`
	UpdatedAt             time.Time          `json:"updatedAt,omitempty"`
}
