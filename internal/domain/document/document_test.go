package document

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCategoryFromMimeType(t *testing.T) {
	tests := []struct {
		mimeType string
		want     Category
	}{
		{"image/png", CategoryImages},
		{"image/jpeg", CategoryImages},
		{"application/pdf", CategoryPDF},
		{"text/plain", CategoryDocuments},
		{"application/msword", CategoryDocuments},
		{"application/vnd.ms-excel", CategoryDocuments},
		{"application/vnd.openxmlformats-officedocument.wordprocessingml.document", CategoryDocuments},
		{"video/mp4", CategoryVideos},
		{"audio/mpeg", CategoryAudio},
		{"application/zip", CategoryOther},
		{"", CategoryOther},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CategoryFromMimeType(tt.mimeType), tt.mimeType)
	}
}

func TestCategoryRederivedFromStorage(t *testing.T) {
	// A stale stored category must not survive the transform.
	rec := StorageRecord{ID: "d-1", Name: "photo.png", MimeType: "image/png", Category: "documents"}
	assert.Equal(t, CategoryImages, FromStorage(rec).Category)
}

func TestFilterSearchNameAndTags(t *testing.T) {
	docs := []Document{
		{ID: "1", Name: "site-plan.pdf", Category: CategoryPDF, Tags: []string{"plans", "chantier"}},
		{ID: "2", Name: "invoice-042.pdf", Category: CategoryPDF, Tags: []string{"compta"}},
		{ID: "3", Name: "team.jpg", Category: CategoryImages, Tags: []string{}},
	}

	got := Filter{SearchTerm: "chantier"}.Apply(docs)
	assert.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	got = Filter{SearchTerm: "pdf", Category: "images"}.Apply(docs)
	assert.Empty(t, got)

	got = Filter{Category: "pdf"}.Apply(docs)
	assert.Len(t, got, 2)
}

func TestSort(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	docs := []Document{
		{ID: "1", Name: "beta", Size: 10, Category: CategoryPDF, CreatedAt: base},
		{ID: "2", Name: "alpha", Size: 30, Category: CategoryImages, CreatedAt: base.Add(time.Hour)},
		{ID: "3", Name: "gamma", Size: 20, Category: CategoryAudio, CreatedAt: base.Add(2 * time.Hour)},
	}

	Sort(docs, "name")
	assert.Equal(t, []string{"2", "1", "3"}, ids(docs))

	Sort(docs, "size")
	assert.Equal(t, []string{"2", "3", "1"}, ids(docs))

	Sort(docs, "type")
	assert.Equal(t, []string{"3", "2", "1"}, ids(docs))

	Sort(docs, "")
	assert.Equal(t, []string{"3", "2", "1"}, ids(docs))
}

func ids(docs []Document) []string {
	out := make([]string, len(docs))
	for i, d := range docs {
		out[i] = d.ID
	}
	return out
}
