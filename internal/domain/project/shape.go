package project

import "time"

// ClientInfo is the nested client/company pair as it is stored.
type ClientInfo struct {
	Client  string `json:"client"`
	Company string `json:"company"`
}

// StorageRecord mirrors the projects table row, nested collections
// included. Field names follow the persistence schema.
type StorageRecord struct {
	ID              string          `json:"id,omitempty"`
	OwnerID         string          `json:"owner_id,omitempty"`
	Nature          string          `json:"nature"`
	Description     string          `json:"description"`
	Materials       []Material      `json:"materials"`
	Responsible     string          `json:"responsible"`
	Requester       string          `json:"requester"`
	ClientInfo      ClientInfo      `json:"client_info"`
	StartDate       string          `json:"start_date"`
	EndDate         string          `json:"end_date"`
	Attachments     []Attachment    `json:"attachments"`
	Progress        int             `json:"progress"`
	Status          string          `json:"status"`
	ProgressEntries []ProgressEntry `json:"progress_entries"`
	CreatedAt       time.Time       `json:"created_at,omitempty"`
	UpdatedAt       time.Time       `json:"updated_at,omitempty"`
}

// FromStorage maps a stored row to the display shape. Missing nested
// values get empty defaults; an unknown status falls back to Planned.
// Never fails.
func FromStorage(r StorageRecord) Project {
	return Project{
		ID:              r.ID,
		Nature:          r.Nature,
		Description:     r.Description,
		Materials:       emptyIfNil(r.Materials),
		Responsible:     r.Responsible,
		Requester:       r.Requester,
		Client:          r.ClientInfo.Client,
		Company:         r.ClientInfo.Company,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		Attachments:     emptyIfNil(r.Attachments),
		Progress:        r.Progress,
		Status:          NormalizeStatus(r.Status),
		ProgressEntries: emptyIfNil(r.ProgressEntries),
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// ToStorage maps a display record back to the stored row. Inverse of
// FromStorage for every field the row defines.
func ToStorage(p Project) StorageRecord {
	return StorageRecord{
		ID:          p.ID,
		Nature:      p.Nature,
		Description: p.Description,
		Materials:   emptyIfNil(p.Materials),
		Responsible: p.Responsible,
		Requester:   p.Requester,
		ClientInfo: ClientInfo{
			Client:  p.Client,
			Company: p.Company,
		},
		StartDate:       p.StartDate,
		EndDate:         p.EndDate,
		Attachments:     emptyIfNil(p.Attachments),
		Progress:        p.Progress,
		Status:          string(NormalizeStatus(string(p.Status))),
		ProgressEntries: emptyIfNil(p.ProgressEntries),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
