package document

import "opsboard/internal/domain/query"

type Filter struct {
	SearchTerm string `query:"search"`
	Category   string `query:"category"`
	FolderID   string `query:"folder"`
	Favorite   string `query:"favorite"`
}

func (f Filter) Apply(docs []Document) []Document {
	out := make([]Document, 0, len(docs))
	for _, d := range docs {
		if f.matches(d) {
			out = append(out, d)
		}
	}
	return out
}

// The search term matches the name or any tag.
func (f Filter) matches(d Document) bool {
	if f.SearchTerm != "" {
		hit := query.ContainsFold(d.Name, f.SearchTerm)
		for _, tag := range d.Tags {
			hit = hit || query.ContainsFold(tag, f.SearchTerm)
		}
		if !hit {
			return false
		}
	}
	switch f.Favorite {
	case "yes":
		if !d.Favorite {
			return false
		}
	case "no":
		if d.Favorite {
			return false
		}
	}
	return query.MatchesExact(f.Category, string(d.Category)) &&
		query.MatchesExact(f.FolderID, d.FolderID)
}

// Sort orders documents in place: name and type ascending, size
// descending, anything else newest first.
func Sort(docs []Document, key string) {
	switch key {
	case "name":
		query.SortStable(docs, func(a, b Document) bool {
			return query.CompareNames(a.Name, b.Name) < 0
		})
	case "size":
		query.SortStable(docs, func(a, b Document) bool {
			return a.Size > b.Size
		})
	case "type":
		query.SortStable(docs, func(a, b Document) bool {
			return a.Category < b.Category
		})
	default:
		query.SortStable(docs, func(a, b Document) bool {
			return a.CreatedAt.After(b.CreatedAt)
		})
	}
}
