package employee

import "time"

// Status is a closed set; anything unrecognized falls back to Active.
type Status string

const (
	StatusActive     Status = "Active"
	StatusInactive   Status = "Inactive"
	StatusOnLeave    Status = "OnLeave"
	StatusInTraining Status = "InTraining"
)

func NormalizeStatus(s string) Status {
	switch Status(s) {
	case StatusActive, StatusInactive, StatusOnLeave, StatusInTraining:
		return Status(s)
	default:
		return StatusActive
	}
}

// MedicalCertificate and Insurance both carry an expiration date the
// notification scanner tracks. Absent objects decode to zero values.
type MedicalCertificate struct {
	Number         string `json:"number"`
	ExpirationDate string `json:"expirationDate"`
	Issuer         string `json:"issuer"`
}

type Insurance struct {
	Company        string `json:"company"`
	PolicyNumber   string `json:"policyNumber"`
	ExpirationDate string `json:"expirationDate"`
}

type Equipment struct {
	Type         string `json:"type"`
	Description  string `json:"description"`
	AssignedDate string `json:"assignedDate"`
	ReturnDate   string `json:"returnDate"`
	Condition    string `json:"condition"`
}

type AttachedDocument struct {
	Name     string `json:"name"`
	Size     int64  `json:"size"`
	MimeType string `json:"mimeType"`
	BlobRef  string `json:"blobRef"`
}

// Employee is the display shape handed to forms and lists.
type Employee struct {
	ID                 string             `json:"id,omitempty"`
	FullName           string             `json:"fullName" validate:"required"`
	Position           string             `json:"position" validate:"required"`
	Email              string             `json:"email" validate:"required,email"`
	Phone              string             `json:"phone" validate:"required"`
	IDCardNumber       string             `json:"idCardNumber"`
	SocialSecurity     string             `json:"socialSecurityNumber"`
	MedicalCertificate MedicalCertificate `json:"medicalCertificate"`
	Insurance          Insurance          `json:"insurance"`
	ContractStart      string             `json:"contractStart"`
	ContractEnd        string             `json:"contractEnd"`
	Status             Status             `json:"status"`
	Equipment          []Equipment        `json:"equipment"`
	Documents          []AttachedDocument `json:"documents"`
	CreatedAt          time.Time          `json:"createdAt,omitempty"`
	UpdatedAt          time.Time          `json:"updatedAt,omitempty"`
}
