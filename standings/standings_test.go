package standings

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/padraicbc/paddock/ranking"
)

type fakeSource struct {
	comps, drivers, teams       []ranking.Record
	compErr, driverErr, teamErr error
	calls                       atomic.Int32
}

func (f *fakeSource) Competitions(context.Context) ([]ranking.Record, error) {
	f.calls.Add(1)
	return f.comps, f.compErr
}

func (f *fakeSource) Drivers(context.Context) ([]ranking.Record, error) {
	f.calls.Add(1)
	return f.drivers, f.driverErr
}

func (f *fakeSource) Teams(context.Context) ([]ranking.Record, error) {
	f.calls.Add(1)
	return f.teams, f.teamErr
}

func seeded() *fakeSource {
	return &fakeSource{
		comps: []ranking.Record{
			{"id": "f1", "name": "Formula 1"},
			{"id": int64(7), "name": "Rally"},
		},
		drivers: []ranking.Record{
			{"id": int64(1), "first_name": "Max", "last_name": "Verstappen", "points": int64(25), "competition_id": "f1", "team_id": int64(20)},
			{"id": int64(2), "name": "Rossi", "points": int64(300), "competition_id": "motogp"},
			{"id": int64(3), "first_name": "Lando", "last_name": "Norris", "points": int64(40), "competition_id": "f1"},
			{"id": int64(4), "driver": "Ogier", "competition_id": int64(7)},
		},
		teams: []ranking.Record{
			{"id": int64(20), "name": "Red Bull Racing", "competition_id": "f1", "points": int64(25)},
			{"id": int64(21), "name": "McLaren", "competition_id": "f1", "points": int64(40), "color": "#FF8000"},
		},
	}
}

func newService(src Source) *Service {
	return New(src, zap.NewNop())
}

func TestGetDriversByCompetition(t *testing.T) {
	svc := newService(seeded())

	got, err := svc.GetDriversByCompetition(context.Background(), "f1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Max Verstappen", got[0].DisplayName, "unsorted, storage order")
	assert.Equal(t, "Lando Norris", got[1].DisplayName)

	rally, err := svc.GetDriversByCompetition(context.Background(), "7")
	require.NoError(t, err)
	require.Len(t, rally, 1)
	assert.Equal(t, "Ogier", rally[0].DisplayName)

	none, err := svc.GetDriversByCompetition(context.Background(), "indycar")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGetTeamsByCompetition(t *testing.T) {
	svc := newService(seeded())

	got, err := svc.GetTeamsByCompetition(context.Background(), "f1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Red Bull Racing", got[0].Team)

	src := seeded()
	src.teamErr = errors.New("db down")
	_, err = newService(src).GetTeamsByCompetition(context.Background(), "f1")
	assert.Error(t, err)
}

func TestCompetition(t *testing.T) {
	svc := newService(seeded())

	c, err := svc.Competition(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Rally", c.Name)

	_, err = svc.Competition(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBoard(t *testing.T) {
	src := seeded()
	board, err := newService(src).Board(context.Background(), "f1", ranking.ByPoints)
	require.NoError(t, err)

	assert.EqualValues(t, 3, src.calls.Load())
	assert.Empty(t, board.Unavailable)
	require.NotNil(t, board.Competition)
	assert.Equal(t, "Formula 1", board.Competition.Name)

	require.Len(t, board.Drivers.Rows, 2)
	assert.Equal(t, "Lando Norris", board.Drivers.Rows[0].Driver)
	assert.Equal(t, ranking.BadgeGold, board.Drivers.Rows[0].Badge)
	assert.Equal(t, ranking.UnknownTeam, board.Drivers.Rows[0].Team)
	assert.Equal(t, "Red Bull Racing", board.Drivers.Rows[1].Team)

	require.Len(t, board.Teams.Rows, 2)
	assert.Equal(t, "McLaren", board.Teams.Rows[0].Team)
	assert.Equal(t, "#FF8000", board.Teams.Rows[0].Color)
}

func TestBoard_PartialFailure(t *testing.T) {
	src := seeded()
	src.teamErr = errors.New("timeout")

	board, err := newService(src).Board(context.Background(), "f1", ranking.ByPoints)
	require.NoError(t, err)

	assert.Equal(t, []string{CollectionTeams}, board.Unavailable)
	assert.False(t, board.AllUnavailable())
	assert.True(t, board.Teams.Empty)
	assert.Equal(t, ranking.EmptyMessage, board.Teams.Message)
	require.Len(t, board.Drivers.Rows, 2)
	assert.Equal(t, ranking.UnknownTeamColor, board.Drivers.Rows[1].TeamColor)
}

func TestBoard_EmptyCompetition(t *testing.T) {
	board, err := newService(seeded()).Board(context.Background(), "motogp", ranking.ByPoints)
	require.NoError(t, err)

	assert.Nil(t, board.Competition)
	require.Len(t, board.Drivers.Rows, 1)
	assert.True(t, board.Teams.Empty)

	empty, err := newService(&fakeSource{}).Board(context.Background(), "motogp", ranking.ByPoints)
	require.NoError(t, err)
	assert.True(t, empty.Drivers.Empty)
	assert.Equal(t, ranking.EmptyMessage, empty.Drivers.Message)
	assert.Empty(t, empty.Drivers.Rows)
}

func TestBoard_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newService(seeded()).Board(ctx, "f1", ranking.ByPoints)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResolveTeamColor(t *testing.T) {
	svc := newService(seeded())

	c, err := svc.ResolveTeamColor(context.Background(), ranking.TeamRef{ID: "21"})
	require.NoError(t, err)
	assert.Equal(t, "#FF8000", c)

	c, err = svc.ResolveTeamColor(context.Background(), ranking.TeamRef{Name: "Red Bull Racing"})
	require.NoError(t, err)
	assert.Equal(t, ranking.HashColor("Red Bull Racing"), c)

	c, err = svc.ResolveTeamColor(context.Background(), ranking.TeamRef{ID: "404"})
	require.NoError(t, err)
	assert.Equal(t, ranking.UnknownTeamColor, c)
}

func TestBoard_AllUnavailable(t *testing.T) {
	down := errors.New("down")
	src := &fakeSource{compErr: down, driverErr: down, teamErr: down}

	board, err := newService(src).Board(context.Background(), "f1", ranking.ByPoints)
	require.NoError(t, err)
	assert.ElementsMatch(t, Collections, board.Unavailable)
	assert.True(t, board.AllUnavailable())
	assert.True(t, board.Drivers.Empty)
}
