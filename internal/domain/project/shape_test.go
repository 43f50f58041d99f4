package project

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRoundTripPreservesStoredFields(t *testing.T) {
	created := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	rec := StorageRecord{
		ID:          "p-1",
		Nature:      "Rewire bldg A",
		Description: "Full rewiring of building A",
		Materials: []Material{
			{Name: "Cable 3G2.5", Quantity: 250, Unit: "m"},
		},
		Responsible: "Durand",
		Requester:   "Martin",
		ClientInfo:  ClientInfo{Client: "ACME", Company: "ACME SARL"},
		StartDate:   "2025-05-02",
		EndDate:     "2025-08-30",
		Attachments: []Attachment{
			{Name: "plan.pdf", Size: 120_000, MimeType: "application/pdf", BlobRef: "blobs/plan"},
		},
		Progress: 40,
		Status:   "InProgress",
		ProgressEntries: []ProgressEntry{
			{Timestamp: "2025-06-01T09:00:00Z", Description: "Ground floor done", Responsible: "Durand", Status: "InProgress"},
		},
		CreatedAt: created,
		UpdatedAt: created,
	}

	got := ToStorage(FromStorage(rec))
	assert.Equal(t, rec, got)
}

func TestFromStorageDefaults(t *testing.T) {
	p := FromStorage(StorageRecord{Status: "whatever"})

	assert.Equal(t, StatusPlanned, p.Status)
	assert.NotNil(t, p.Materials)
	assert.Empty(t, p.Materials)
	assert.NotNil(t, p.Attachments)
	assert.NotNil(t, p.ProgressEntries)
	assert.Equal(t, "", p.Client)
}

func TestClampedProgress(t *testing.T) {
	assert.Equal(t, 0, Project{Progress: -10}.ClampedProgress())
	assert.Equal(t, 100, Project{Progress: 150}.ClampedProgress())
	assert.Equal(t, 65, Project{Progress: 65}.ClampedProgress())
	// the stored value is untouched
	assert.Equal(t, 150, ToStorage(Project{Progress: 150}).Progress)
}
