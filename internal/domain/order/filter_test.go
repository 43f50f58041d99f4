package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleOrders() []Order {
	return []Order{
		{
			ID:       "o-1",
			Supplier: "Fastenings SA",
			Client:   "ACME",
			Status:   StatusDelivered,
			Articles: []Article{
				{Name: "Steel bolt M8", Reference: "BLT-M8"},
				{Name: "Washer", Reference: "WSH-8"},
			},
		},
		{
			ID:       "o-2",
			Supplier: "Fastenings SA",
			Client:   "ACME",
			Status:   StatusPending,
			Articles: []Article{
				{Name: "Anchor bolt", Reference: "ANC-12"},
			},
		},
		{
			ID:       "o-3",
			Supplier: "Paints & Co",
			Client:   "Bolt Industries",
			Status:   StatusDelivered,
			Articles: []Article{
				{Name: "Primer", Reference: "PRM-1"},
			},
		},
	}
}

// status AND search must both hold: only delivered orders with an
// article matching "bolt" qualify.
func TestFilter_StatusAndArticleSearch(t *testing.T) {
	f := Filter{Status: string(StatusDelivered), SearchTerm: "bolt"}

	got := f.Apply(sampleOrders())

	// o-2 matches "bolt" but is Pending; o-3 is Delivered but only its
	// client name contains "bolt", which the article search ignores.
	assert.Len(t, got, 1)
	assert.Equal(t, "o-1", got[0].ID)
}

func TestFilter_ArticleReferenceSearch(t *testing.T) {
	f := Filter{SearchTerm: "anc-12"}

	got := f.Apply(sampleOrders())
	assert.Len(t, got, 1)
	assert.Equal(t, "o-2", got[0].ID)
}

func TestFilter_EmptyIsIdentity(t *testing.T) {
	orders := sampleOrders()
	assert.Equal(t, orders, Filter{}.Apply(orders))
}

func TestNormalizeStatusFallback(t *testing.T) {
	assert.Equal(t, StatusPending, NormalizeStatus("Unknown"))
	assert.Equal(t, StatusDelivered, NormalizeStatus("Delivered"))
}

func TestRoundTrip(t *testing.T) {
	rec := StorageRecord{
		ID:                    "o-1",
		Articles:              []Article{{Name: "Bolt", Reference: "B-1", Quantity: 10, Unit: "pcs"}},
		Supplier:              "Fastenings SA",
		Requester:             "Martin",
		PurchasingResponsible: "Durand",
		Client:                "ACME",
		DeliveryDate:          "2025-07-01",
		Documents:             []AttachedDocument{{Name: "quote.pdf", Size: 5000, MimeType: "application/pdf"}},
		Status:                "Ordered",
	}

	assert.Equal(t, rec, ToStorage(FromStorage(rec)))
}
