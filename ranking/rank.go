package ranking

import (
	"cmp"
	"slices"
	"strings"
)

// SortKey names the counter standings are ordered by.
type SortKey string

const (
	ByPoints  SortKey = "points"
	ByWins    SortKey = "wins"
	ByPodiums SortKey = "podiums"
)

// ParseSortKey maps a query value to a SortKey, defaulting to points.
func ParseSortKey(s string) SortKey {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case ByWins, ByPodiums:
		return k
	}
	return ByPoints
}

// Scorer exposes the counters a collection can be ranked on.
type Scorer interface {
	Score(key SortKey) int
}

func (d Driver) Score(key SortKey) int {
	return score(key, d.Points, d.Wins, d.Podiums)
}

func (t Team) Score(key SortKey) int {
	return score(key, t.Points, t.Wins, t.Podiums)
}

func score(key SortKey, points, wins, podiums int) int {
	switch key {
	case ByWins:
		return wins
	case ByPodiums:
		return podiums
	}
	return points
}

// Ranked pairs an entity with the position computed for it in one pass.
type Ranked[T any] struct {
	Entry              T   `json:"entry"`
	CalculatedPosition int `json:"calculatedPosition"`
}

// Score delegates to the wrapped entry so ranked slices can be re-ranked.
func (r Ranked[T]) Score(key SortKey) int {
	if s, ok := any(r.Entry).(Scorer); ok {
		return s.Score(key)
	}
	return 0
}

// CompetitionKey delegates to the wrapped entry.
func (r Ranked[T]) CompetitionKey() string {
	if s, ok := any(r.Entry).(Scoped); ok {
		return s.CompetitionKey()
	}
	return ""
}

// Rank orders items descending by key and numbers them 1..n. Equal scores
// keep their input order; no secondary key is applied and no two entries
// share a position. The input slice is left untouched.
func Rank[T Scorer](items []T, key SortKey) []Ranked[T] {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b T) int {
		return cmp.Compare(b.Score(key), a.Score(key))
	})

	out := make([]Ranked[T], len(sorted))
	for i, item := range sorted {
		out[i] = Ranked[T]{Entry: item, CalculatedPosition: i + 1}
	}
	return out
}
