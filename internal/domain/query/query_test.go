package query

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesText(t *testing.T) {
	tests := []struct {
		name   string
		term   string
		fields []string
		want   bool
	}{
		{"empty term matches", "", []string{"anything"}, true},
		{"case-insensitive hit", "BOLT", []string{"Steel bolt M8"}, true},
		{"hit in later field", "acme", []string{"bolt", "ACME Corp"}, true},
		{"no hit", "washer", []string{"bolt", "nut"}, false},
		{"no fields", "bolt", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesText(tt.term, tt.fields...))
		})
	}
}

func TestInDateRange(t *testing.T) {
	tests := []struct {
		name             string
		value, from, to  string
		want             bool
	}{
		{"no bounds", "", "", "", true},
		{"no bounds with value", "2025-03-01", "", "", true},
		{"inside", "2025-03-01", "2025-02-01", "2025-04-01", true},
		{"on lower bound", "2025-02-01", "2025-02-01", "", true},
		{"on upper bound", "2025-04-01", "", "2025-04-01", true},
		{"before lower", "2025-01-31", "2025-02-01", "", false},
		{"after upper", "2025-04-02", "", "2025-04-01", false},
		{"missing value with bound", "", "2025-02-01", "", false},
		{"malformed value with bound", "not-a-date", "2025-02-01", "", false},
		{"malformed bound ignored", "2025-03-01", "garbage", "", true},
		{"rfc3339 value", "2025-03-01T10:00:00Z", "2025-03-01", "2025-03-01T12:00:00Z", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InDateRange(tt.value, tt.from, tt.to))
		})
	}
}

func TestMatchesPresence(t *testing.T) {
	assert.True(t, MatchesPresence("", 0))
	assert.True(t, MatchesPresence("", 3))
	assert.True(t, MatchesPresence("yes", 1))
	assert.False(t, MatchesPresence("yes", 0))
	assert.True(t, MatchesPresence("no", 0))
	assert.False(t, MatchesPresence("no", 2))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(-5, 0, 100))
	assert.Equal(t, 100, Clamp(150, 0, 100))
	assert.Equal(t, 42, Clamp(42, 0, 100))
}

func TestSortStableKeepsEqualOrder(t *testing.T) {
	type row struct {
		key  int
		tag  string
	}
	rows := []row{
		{2, "a"}, {1, "b"}, {2, "c"}, {1, "d"}, {2, "e"},
	}

	SortStable(rows, func(a, b row) bool { return a.key < b.key })

	assert.Equal(t, []row{{1, "b"}, {1, "d"}, {2, "a"}, {2, "c"}, {2, "e"}}, rows)
}

func TestCompareNames(t *testing.T) {
	assert.Negative(t, CompareNames("alpha", "beta"))
	assert.Positive(t, CompareNames("zinc", "Alpha"))
	// accent-insensitive ordering close to the plain letter
	assert.Negative(t, CompareNames("échafaudage", "zinc"))
}

// Concurrent list requests sort by name keys at the same time, so the
// shared collator must tolerate parallel callers.
func TestCompareNamesConcurrent(t *testing.T) {
	names := []string{"échafaudage", "Zinc", "béton", "acier", "Étude", "chaux"}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				a := names[i%len(names)]
				b := names[(i+1)%len(names)]
				CompareNames(a, b)
			}
		}()
	}
	wg.Wait()

	assert.Negative(t, CompareNames("acier", "béton"))
}
