package order

import "time"

// StorageRecord mirrors the purchase_orders table row.
type StorageRecord struct {
	ID                    string             `json:"id,omitempty"`
	OwnerID               string             `json:"owner_id,omitempty"`
	Articles              []Article          `json:"articles"`
	Supplier              string             `json:"supplier"`
	Requester             string             `json:"requester"`
	PurchasingResponsible string             `json:"purchasing_responsible"`
	Client                string             `json:"client"`
	DeliveryDate          string             `json:"delivery_date"`
	Documents             []AttachedDocument `json:"documents"`
	Status                string             `json:"status"`
	CreatedAt             time.Time          `json:"created_at,omitempty"`
	UpdatedAt             time.Time          `json:"updated_at,omitempty"`
}

func FromStorage(r StorageRecord) Order {
	return Order{
		ID:                    r.ID,
		Articles:              emptyIfNil(r.Articles),
		Supplier:              r.Supplier,
		Requester:             r.Requester,
		PurchasingResponsible: r.PurchasingResponsible,
		Client:                r.Client,
		DeliveryDate:          r.DeliveryDate,
		Documents:             emptyIfNil(r.Documents),
		Status:                NormalizeStatus(r.Status),
		CreatedAt:             r.CreatedAt,
		UpdatedAt:             r.UpdatedAt,
	}
}

func ToStorage(o Order) StorageRecord {
	return StorageRecord{
		ID:                    o.ID,
		Articles:              emptyIfNil(o.Articles),
		Supplier:              o.Supplier,
		Requester:             o.Requester,
		PurchasingResponsible: o.PurchasingResponsible,
		Client:                o.Client,
		DeliveryDate:          o.DeliveryDate,
		Documents:             emptyIfNil(o.Documents),
		Status:                string(NormalizeStatus(string(o.Status))),
		CreatedAt:             o.CreatedAt,
		UpdatedAt:             o.UpdatedAt,
	}
}

func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
