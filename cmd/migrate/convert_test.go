package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padraicbc/paddock/ranking"
)

func TestToCompetition(t *testing.T) {
	c, err := toCompetition(ranking.Record{
		"id":     []byte("F1"),
		"name":   []byte(" Formula 1 "),
		"season": int64(2024),
		"status": "FINISHED",
	})
	require.NoError(t, err)
	assert.Equal(t, "f1", c.ID)
	assert.Equal(t, "Formula 1", c.Name)
	require.NotNil(t, c.Season)
	assert.Equal(t, "2024", *c.Season)
	require.NotNil(t, c.Status)
	assert.Equal(t, "finished", *c.Status)
	assert.Nil(t, c.Color, "brand color is not persisted")

	c, err = toCompetition(ranking.Record{"id": "x", "name": "X", "status": "paused"})
	require.NoError(t, err)
	assert.Nil(t, c.Status)

	_, err = toCompetition(ranking.Record{"name": "No id"})
	assert.Error(t, err)
}

func TestToTeam(t *testing.T) {
	team, err := toTeam(ranking.Record{
		"id":             []byte("12"),
		"team":           "Ferrari",
		"points":         "120",
		"competition_id": int64(1),
	})
	require.NoError(t, err)
	assert.EqualValues(t, 12, team.ID)
	assert.Equal(t, "Ferrari", team.Name)
	assert.Equal(t, 120, *team.Points)
	assert.Equal(t, 0, *team.Wins)
	assert.Equal(t, "1", team.CompetitionID)
	assert.Nil(t, team.Color)

	_, err = toTeam(ranking.Record{"id": "abc", "name": "Bad", "competition_id": "f1"})
	assert.Error(t, err)

	_, err = toTeam(ranking.Record{"id": 3, "name": "Loose"})
	assert.Error(t, err)
}

func TestToDriver(t *testing.T) {
	d, err := toDriver(ranking.Record{
		"id":             int64(44),
		"first_name":     "Lewis",
		"last_name":      "Hamilton",
		"nationality":    "GBR",
		"vehicle_number": "44",
		"points":         float64(190),
		"active":         []byte("0"),
		"team_id":        int64(12),
		"competition_id": "F1",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 44, d.ID)
	assert.Equal(t, "Lewis", *d.FirstName)
	assert.Equal(t, "GBR", *d.BirthCountry)
	require.NotNil(t, d.VehicleNumber)
	assert.Equal(t, 44, *d.VehicleNumber)
	assert.Equal(t, 190, *d.Points)
	assert.False(t, *d.Active)
	require.NotNil(t, d.TeamID)
	assert.EqualValues(t, 12, *d.TeamID)
	assert.Equal(t, "f1", d.CompetitionID)

	d, err = toDriver(ranking.Record{"id": "7", "name": "Ogier", "competition_id": "wrc", "team_id": ""})
	require.NoError(t, err)
	assert.Nil(t, d.TeamID)
	assert.True(t, *d.Active)
	assert.Equal(t, "Ogier", *d.Name)
}

func TestConvertAll(t *testing.T) {
	recs := []ranking.Record{
		{"id": 1, "name": "A", "competition_id": "f1"},
		{"id": "nope", "name": "B", "competition_id": "f1"},
		{"id": 3, "name": "C", "competition_id": "f1"},
	}
	got := convertAll(recs, toTeam)
	require.Len(t, got, 2)
	assert.EqualValues(t, 1, got[0].ID)
	assert.EqualValues(t, 3, got[1].ID)
}
