package client

import "time"

// StorageRecord mirrors the clients table row.
type StorageRecord struct {
	ID        string    `json:"id,omitempty"`
	OwnerID   string    `json:"owner_id,omitempty"`
	Name      string    `json:"name"`
	Company   string    `json:"company"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Sector    string    `json:"sector"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

func FromStorage(r StorageRecord) Client {
	return Client{
		ID:        r.ID,
		Name:      r.Name,
		Company:   r.Company,
		Email:     r.Email,
		Phone:     r.Phone,
		Address:   r.Address,
		Sector:    r.Sector,
		Status:    NormalizeStatus(r.Status),
		Notes:     r.Notes,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func ToStorage(c Client) StorageRecord {
	return StorageRecord{
		ID:        c.ID,
		Name:      c.Name,
		Company:   c.Company,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		Sector:    c.Sector,
		Status:    string(NormalizeStatus(string(c.Status))),
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
