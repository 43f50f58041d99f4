package order

import "opsboard/internal/domain/query"

// Filter holds the purchase-order list criteria; AND-combined, zero
// values unconstrained.
type Filter struct {
	SearchTerm   string `query:"search"`
	Status       string `query:"status"`
	Supplier     string `query:"supplier"`
	Client       string `query:"client"`
	DeliveryFrom string `query:"deliveryFrom"`
	DeliveryTo   string `query:"deliveryTo"`
	HasDocuments string `query:"hasDocuments"`
}

func (f Filter) Apply(orders []Order) []Order {
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		if f.matches(o) {
			out = append(out, o)
		}
	}
	return out
}

// The free-text search covers article names and references; supplier and
// client have their own criteria.
func (f Filter) matches(o Order) bool {
	fields := make([]string, 0, len(o.Articles)*2)
	for _, a := range o.Articles {
		fields = append(fields, a.Name, a.Reference)
	}
	if !query.MatchesText(f.SearchTerm, fields...) {
		return false
	}
	if !query.MatchesExact(f.Status, string(o.Status)) {
		return false
	}
	if !query.ContainsFold(f.Supplier, o.Supplier) {
		return false
	}
	if !query.ContainsFold(f.Client, o.Client) {
		return false
	}
	if !query.InDateRange(o.DeliveryDate, f.DeliveryFrom, f.DeliveryTo) {
		return false
	}
	if !query.MatchesPresence(f.HasDocuments, len(o.Documents)) {
		return false
	}
	return true
}

func Sort(orders []Order, key string) {
	switch key {
	case "supplier":
		query.SortStable(orders, func(a, b Order) bool {
			return query.CompareNames(a.Supplier, b.Supplier) < 0
		})
	case "client":
		query.SortStable(orders, func(a, b Order) bool {
			return query.CompareNames(a.Client, b.Client) < 0
		})
	default:
		query.SortStable(orders, func(a, b Order) bool {
			return a.CreatedAt.After(b.CreatedAt)
		})
	}
}
