package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drivers(recs ...Record) []Driver {
	return NormalizeDrivers(recs)
}

func names(ranked []Ranked[Driver]) []string {
	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.Entry.DisplayName
	}
	return out
}

func TestRank_TieKeepsInputOrder(t *testing.T) {
	in := drivers(
		Record{"driver": "A", "points": 10},
		Record{"driver": "B", "points": 25},
		Record{"driver": "C", "points": 25},
	)

	ranked := Rank(in, ByPoints)

	require.Len(t, ranked, 3)
	assert.Equal(t, []string{"B", "C", "A"}, names(ranked))
	for i, r := range ranked {
		assert.Equal(t, i+1, r.CalculatedPosition)
	}
	assert.Equal(t, "A", in[0].DisplayName, "input must not be reordered")
}

func TestRank_Properties(t *testing.T) {
	in := drivers(
		Record{"driver": "d1", "points": 3},
		Record{"driver": "d2"},
		Record{"driver": "d3", "points": "x"},
		Record{"driver": "d4", "points": 40},
		Record{"driver": "d5", "points": 3},
		Record{"driver": "d6", "points": 12},
		Record{"driver": "d7", "points": -2},
	)

	ranked := Rank(in, ByPoints)

	require.Len(t, ranked, len(in))
	assert.ElementsMatch(t, []string{"d1", "d2", "d3", "d4", "d5", "d6", "d7"}, names(ranked))
	for i := range ranked {
		assert.Equal(t, i+1, ranked[i].CalculatedPosition)
		if i > 0 {
			assert.GreaterOrEqual(t, ranked[i-1].Entry.Points, ranked[i].Entry.Points)
		}
	}
	// d2 and d3 both score 0 and keep their input order.
	assert.Equal(t, []string{"d4", "d6", "d1", "d5", "d2", "d3", "d7"}, names(ranked))
}

func TestRank_Idempotent(t *testing.T) {
	in := drivers(
		Record{"driver": "A", "points": 10},
		Record{"driver": "B", "points": 25},
		Record{"driver": "C", "points": 25},
		Record{"driver": "D", "points": 1},
	)

	once := Rank(in, ByPoints)
	twice := Rank(once, ByPoints)

	require.Len(t, twice, len(once))
	for i := range once {
		assert.Equal(t, once[i].CalculatedPosition, twice[i].CalculatedPosition)
		assert.Equal(t, once[i].Entry.DisplayName, twice[i].Entry.Entry.DisplayName)
	}
}

func TestRank_IgnoresUpstreamPosition(t *testing.T) {
	in := drivers(
		Record{"driver": "A", "points": 1, "position": 1},
		Record{"driver": "B", "points": 9, "position": 2},
	)

	ranked := Rank(in, ByPoints)

	assert.Equal(t, "B", ranked[0].Entry.DisplayName)
	assert.Equal(t, 1, ranked[0].CalculatedPosition)
}

func TestRank_SortKeys(t *testing.T) {
	in := []Team{
		{Name: "X", Points: 100, Wins: 1, Podiums: 9},
		{Name: "Y", Points: 50, Wins: 4, Podiums: 5},
	}

	assert.Equal(t, "X", Rank(in, ByPoints)[0].Entry.Name)
	assert.Equal(t, "Y", Rank(in, ByWins)[0].Entry.Name)
	assert.Equal(t, "X", Rank(in, ByPodiums)[0].Entry.Name)
	assert.Equal(t, "X", Rank(in, SortKey("laps"))[0].Entry.Name, "unknown key ranks by points")
}

func TestRank_Empty(t *testing.T) {
	assert.Empty(t, Rank([]Driver(nil), ByPoints))
	assert.NotNil(t, Rank([]Driver{}, ByPoints))
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, ByPoints, ParseSortKey(""))
	assert.Equal(t, ByWins, ParseSortKey("Wins"))
	assert.Equal(t, ByPodiums, ParseSortKey(" podiums "))
	assert.Equal(t, ByPoints, ParseSortKey("fastest-laps"))
}

func TestFilterByCompetition(t *testing.T) {
	in := drivers(
		Record{"driver": "A", "competition_id": "f1"},
		Record{"driver": "B", "competition_id": "motogp"},
		Record{"driver": "C", "competition_id": "f1"},
		Record{"driver": "D"},
	)

	got := FilterByCompetition(in, "f1")
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].DisplayName)
	assert.Equal(t, "C", got[1].DisplayName)

	none := FilterByCompetition(in, "wec")
	assert.NotNil(t, none)
	assert.Empty(t, none)

	assert.Empty(t, FilterByCompetition(in, ""), "blank id matches nothing, not the unscoped driver")
	assert.Empty(t, FilterByCompetition([]Driver(nil), "f1"))
}

// Numeric stored ids and string route params compare as strings.
func TestFilterByCompetition_NumericAndStringIDs(t *testing.T) {
	in := drivers(
		Record{"driver": "num", "competition_id": float64(1)},
		Record{"driver": "str", "competition_id": "1"},
		Record{"driver": "other", "competition_id": 2},
	)

	fromRoute := FilterByCompetition(in, "1")
	require.Len(t, fromRoute, 2)
	assert.Equal(t, "num", fromRoute[0].DisplayName)
	assert.Equal(t, "str", fromRoute[1].DisplayName)

	fromNumber := FilterByCompetition(in, 1)
	assert.Len(t, fromNumber, 2)
}

func TestFilterByCompetition_RankedEntries(t *testing.T) {
	teams := NormalizeTeams([]Record{
		{"name": "T1", "competition_id": "a", "points": 1},
		{"name": "T2", "competition_id": "b", "points": 2},
	})

	got := FilterByCompetition(Rank(teams, ByPoints), "a")
	require.Len(t, got, 1)
	assert.Equal(t, "T1", got[0].Entry.Name)
}
