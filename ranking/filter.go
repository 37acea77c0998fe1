package ranking

// Scoped is anything that belongs to a single competition.
type Scoped interface {
	CompetitionKey() string
}

func (d Driver) CompetitionKey() string { return d.CompetitionID }
func (t Team) CompetitionKey() string   { return t.CompetitionID }

// FilterByCompetition returns the items whose competition equals
// competitionID, preserving input order. Both sides are compared in their
// CompetitionID string form, so a numeric 1 matches the route value "1".
// A blank competitionID matches nothing.
func FilterByCompetition[T Scoped](items []T, competitionID any) []T {
	target := CompetitionID(competitionID)
	out := make([]T, 0, len(items))
	if target == "" {
		return out
	}
	for _, item := range items {
		if item.CompetitionKey() == target {
			out = append(out, item)
		}
	}
	return out
}
