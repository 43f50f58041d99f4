package employee

import "opsboard/internal/domain/query"

type Filter struct {
	SearchTerm    string `query:"search"`
	Status        string `query:"status"`
	Position      string `query:"position"`
	ContractEndTo string `query:"contractEndTo"`
}

func (f Filter) Apply(employees []Employee) []Employee {
	out := make([]Employee, 0, len(employees))
	for _, e := range employees {
		if f.matches(e) {
			out = append(out, e)
		}
	}
	return out
}

func (f Filter) matches(e Employee) bool {
	return query.MatchesText(f.SearchTerm, e.FullName, e.Position, e.Email) &&
		query.MatchesExact(f.Status, string(e.Status)) &&
		query.MatchesExact(f.Position, e.Position) &&
		query.InDateRange(e.ContractEnd, "", f.ContractEndTo)
}

func Sort(employees []Employee, key string) {
	switch key {
	case "name":
		query.SortStable(employees, func(a, b Employee) bool {
			return query.CompareNames(a.FullName, b.FullName) < 0
		})
	default:
		query.SortStable(employees, func(a, b Employee) bool {
			return a.CreatedAt.After(b.CreatedAt)
		})
	}
}
