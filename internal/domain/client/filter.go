package client

import "opsboard/internal/domain/query"

type Filter struct {
	SearchTerm string `query:"search"`
	Status     string `query:"status"`
	Sector     string `query:"sector"`
}

func (f Filter) Apply(clients []Client) []Client {
	out := make([]Client, 0, len(clients))
	for _, c := range clients {
		if query.MatchesText(f.SearchTerm, c.Name, c.Company, c.Email) &&
			query.MatchesExact(f.Status, string(c.Status)) &&
			query.MatchesExact(f.Sector, c.Sector) {
			out = append(out, c)
		}
	}
	return out
}

func Sort(clients []Client, key string) {
	switch key {
	case "name":
		query.SortStable(clients, func(a, b Client) bool {
			return query.CompareNames(a.Name, b.Name) < 0
		})
	default:
		query.SortStable(clients, func(a, b Client) bool {
			return a.CreatedAt.After(b.CreatedAt)
		})
	}
}
