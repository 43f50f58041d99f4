package employee

import "time"

// StorageRecord mirrors the employees table row. Field names follow the
// persistence schema.
type StorageRecord struct {
	ID                 string             `json:"id,omitempty"`
	OwnerID            string             `json:"owner_id,omitempty"`
	FullName           string             `json:"full_name"`
	Position           string             `json:"position"`
	Email              string             `json:"email"`
	Phone              string             `json:"phone"`
	IDCardNumber       string             `json:"id_card_number"`
	SocialSecurity     string             `json:"social_security_number"`
	MedicalCertificate MedicalCertificate `json:"medical_certificate"`
	Insurance          Insurance          `json:"insurance_info"`
	ContractStart      string             `json:"contract_start"`
	ContractEnd        string             `json:"contract_end"`
	Status             string             `json:"status"`
	Equipment          []Equipment        `json:"equipment"`
	Documents          []AttachedDocument `json:"documents"`
	CreatedAt          time.Time          `json:"created_at,omitempty"`
	UpdatedAt          time.Time          `json:"updated_at,omitempty"`
}

// FromStorage maps a stored row to the display shape. Missing nested
// objects stay at their zero values; an unknown status falls back to
// Active. Never fails.
func FromStorage(r StorageRecord) Employee {
	return Employee{
		ID:                 r.ID,
		FullName:           r.FullName,
		Position:           r.Position,
		Email:              r.Email,
		Phone:              r.Phone,
		IDCardNumber:       r.IDCardNumber,
		SocialSecurity:     r.SocialSecurity,
		MedicalCertificate: r.MedicalCertificate,
		Insurance:          r.Insurance,
		ContractStart:      r.ContractStart,
		ContractEnd:        r.ContractEnd,
		Status:             NormalizeStatus(r.Status),
		Equipment:          emptyIfNil(r.Equipment),
		Documents:          emptyIfNil(r.Documents),
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}

// ToStorage maps a display record back to the stored row. Inverse of
// FromStorage for every field the row defines.
func ToStorage(e Employee) StorageRecord {
	return StorageRecord{
		ID:                 e.ID,
		FullName:           e.FullName,
		Position:           e.Position,
		Email:              e.Email,
		Phone:              e.Phone,
		IDCardNumber:       e.IDCardNumber,
		SocialSecurity:     e.SocialSecurity,
		MedicalCertificate: e.MedicalCertificate,
		Insurance:          e.Insurance,
		ContractStart:      e.ContractStart,
		ContractEnd:        e.ContractEnd,
		Status:             string(NormalizeStatus(string(e.Status))),
		Equipment:          emptyIfNil(e.Equipment),
		Documents:          emptyIfNil(e.Documents),
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}

func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
