package employee

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	rec := StorageRecord{
		ID:             "e-1",
		FullName:       "Karim Haddad",
		Position:       "Site foreman",
		Email:          "karim@example.com",
		Phone:          "+33 6 11 22 33 44",
		IDCardNumber:   "AB123456",
		SocialSecurity: "1 85 06 75 123 456 78",
		MedicalCertificate: MedicalCertificate{
			Number:         "MC-2026-42",
			ExpirationDate: "2026-10-01",
			Issuer:         "Dr. Leroy",
		},
		Insurance: Insurance{
			Company:        "AXA",
			PolicyNumber:   "POL-99",
			ExpirationDate: "2027-01-15",
		},
		ContractStart: "2024-03-01",
		ContractEnd:   "2026-09-03",
		Status:        "OnLeave",
		Equipment: []Equipment{
			{Type: "Helmet", Description: "White, size M", AssignedDate: "2024-03-01", Condition: "good"},
		},
		Documents: []AttachedDocument{},
		CreatedAt: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, rec, ToStorage(FromStorage(rec)))
}

func TestMissingNestedObjectsDefault(t *testing.T) {
	// A row stored before certificate/insurance tracking existed.
	raw := []byte(`{"id":"e-2","full_name":"Old Hand","position":"Driver","email":"old@example.com","phone":"0600000000"}`)

	var rec StorageRecord
	require.NoError(t, json.Unmarshal(raw, &rec))

	e := FromStorage(rec)
	assert.Equal(t, MedicalCertificate{}, e.MedicalCertificate)
	assert.Equal(t, Insurance{}, e.Insurance)
	assert.Equal(t, []Equipment{}, e.Equipment)
	assert.Equal(t, []AttachedDocument{}, e.Documents)
	assert.Equal(t, StatusActive, e.Status)
}

func TestFilterSearch(t *testing.T) {
	employees := []Employee{
		{ID: "1", FullName: "Karim Haddad", Position: "Foreman", Email: "karim@example.com", Status: StatusActive},
		{ID: "2", FullName: "Ana Costa", Position: "Electrician", Email: "ana@example.com", Status: StatusOnLeave},
		{ID: "3", FullName: "Marc Petit", Position: "Foreman", Email: "marc@example.com", Status: StatusActive},
	}

	got := Filter{SearchTerm: "electr"}.Apply(employees)
	assert.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)

	got = Filter{SearchTerm: "foreman", Status: "Active"}.Apply(employees)
	assert.Len(t, got, 2)

	got = Filter{Position: "Foreman", Status: "OnLeave"}.Apply(employees)
	assert.Empty(t, got)
}
