package project

import "opsboard/internal/domain/query"

const (
	progressMin = 0
	progressMax = 100
)

// Filter collects every list criterion the project view offers. Zero
// values mean "no constraint"; all active criteria are AND-combined.
type Filter struct {
	SearchTerm   string `query:"search"`
	Status       string `query:"status"`
	Responsible  string `query:"responsible"`
	Client       string `query:"client"`
	StartFrom    string `query:"startFrom"`
	StartTo      string `query:"startTo"`
	EndFrom      string `query:"endFrom"`
	EndTo        string `query:"endTo"`
	ProgressMin  *int   `query:"progressMin"`
	ProgressMax  *int   `query:"progressMax"`
	HasDocuments string `query:"hasDocuments"`
	HasMaterials string `query:"hasMaterials"`
}

func (f Filter) Apply(projects []Project) []Project {
	out := make([]Project, 0, len(projects))
	for _, p := range projects {
		if f.matches(p) {
			out = append(out, p)
		}
	}
	return out
}

func (f Filter) matches(p Project) bool {
	if !query.MatchesText(f.SearchTerm, p.Nature, p.Client, p.Responsible) {
		return false
	}
	if !query.MatchesExact(f.Status, string(p.Status)) {
		return false
	}
	if !query.ContainsFold(f.Responsible, p.Responsible) {
		return false
	}
	if !query.ContainsFold(f.Client, p.Client) {
		return false
	}
	if !query.InDateRange(p.StartDate, f.StartFrom, f.StartTo) {
		return false
	}
	if !query.InDateRange(p.EndDate, f.EndFrom, f.EndTo) {
		return false
	}

	min, max := progressMin, progressMax
	if f.ProgressMin != nil {
		min = *f.ProgressMin
	}
	if f.ProgressMax != nil {
		max = *f.ProgressMax
	}
	if !query.InIntRange(p.ClampedProgress(), min, max) {
		return false
	}

	if !query.MatchesPresence(f.HasDocuments, len(p.Attachments)) {
		return false
	}
	if !query.MatchesPresence(f.HasMaterials, len(p.Materials)) {
		return false
	}
	return true
}

// Sort orders projects in place: name and client keys ascend with a
// locale-aware compare, every other key falls back to newest-first.
func Sort(projects []Project, key string) {
	switch key {
	case "name":
		query.SortStable(projects, func(a, b Project) bool {
			return query.CompareNames(a.Nature, b.Nature) < 0
		})
	case "client":
		query.SortStable(projects, func(a, b Project) bool {
			return query.CompareNames(a.Client, b.Client) < 0
		})
	case "progress":
		query.SortStable(projects, func(a, b Project) bool {
			return a.ClampedProgress() > b.ClampedProgress()
		})
	default:
		query.SortStable(projects, func(a, b Project) bool {
			return a.CreatedAt.After(b.CreatedAt)
		})
	}
}
