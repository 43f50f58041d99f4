// Package query provides the building blocks shared by the per-entity
// list filters: text matching, inclusive range checks and stable sorting.
// Every predicate treats an empty criterion as "no constraint" and never
// fails on a missing or malformed record field.
package query

import (
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const dateLayout = "2006-01-02"

// collate.Collator keeps internal iterator buffers, so the shared
// instance must not be used from two goroutines at once.
var (
	collatorMu sync.Mutex
	collator   = collate.New(language.French, collate.IgnoreCase)
)

// ParseDate accepts the two date encodings found in stored rows: plain
// ISO dates and full RFC3339 timestamps.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// MatchesText reports whether any field contains term, case-insensitively.
// An empty term matches everything.
func MatchesText(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), strings.ToLower(term)) {
			return true
		}
	}
	return false
}

// MatchesExact is an equality constraint; empty want means unconstrained.
func MatchesExact(want, got string) bool {
	return want == "" || want == got
}

// ContainsFold is a single-field case-insensitive substring constraint;
// empty want means unconstrained.
func ContainsFold(want, got string) bool {
	if want == "" {
		return true
	}
	return strings.Contains(strings.ToLower(got), strings.ToLower(want))
}

// InDateRange applies inclusive from/to bounds, either of which may be
// empty. A record lacking the date is non-matching only when a bound is
// supplied; an unparsable bound is ignored.
func InDateRange(value, from, to string) bool {
	if from == "" && to == "" {
		return true
	}

	v, ok := ParseDate(value)
	if !ok {
		return false
	}

	if f, ok := ParseDate(from); ok && v.Before(f) {
		return false
	}
	if t, ok := ParseDate(to); ok && v.After(t) {
		return false
	}
	return true
}

// InIntRange applies inclusive numeric bounds.
func InIntRange(v, min, max int) bool {
	return v >= min && v <= max
}

// MatchesPresence applies a tri-state list-presence constraint:
// "yes" requires a non-empty list, "no" an empty one, anything else passes.
func MatchesPresence(setting string, n int) bool {
	switch setting {
	case "yes":
		return n > 0
	case "no":
		return n == 0
	default:
		return true
	}
}

// Clamp bounds v to [lo, hi] for display purposes.
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// CompareNames is the locale-aware ascending comparison used for
// name-like sort keys. Safe for concurrent use.
func CompareNames(a, b string) int {
	collatorMu.Lock()
	defer collatorMu.Unlock()
	return collator.CompareString(a, b)
}

// SortStable sorts items in place keeping the relative order of records
// with equal keys.
func SortStable[T any](items []T, less func(a, b T) bool) {
	sort.SliceStable(items, func(i, j int) bool { return less(items[i], items[j]) })
}
