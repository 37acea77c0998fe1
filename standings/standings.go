// Package standings fetches the raw collections behind the standings pages
// and hands them to the ranking engine.
package standings

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/padraicbc/paddock/ranking"
)

// Collection names reported in Board.Unavailable.
const (
	CollectionCompetitions = "competitions"
	CollectionDrivers      = "drivers"
	CollectionTeams        = "teams"
)

// Collections lists every collection a Board is built from.
var Collections = []string{CollectionCompetitions, CollectionDrivers, CollectionTeams}

// ErrNotFound is returned when a competition id matches nothing.
var ErrNotFound = errors.New("competition not found")

// Source yields every raw record of each collection.
type Source interface {
	Competitions(ctx context.Context) ([]ranking.Record, error)
	Drivers(ctx context.Context) ([]ranking.Record, error)
	Teams(ctx context.Context) ([]ranking.Record, error)
}

// Board is a standings page plus the collections that could not be loaded.
// A missing collection renders exactly like an empty one; Unavailable is the
// only place the two differ.
type Board struct {
	ranking.Standings
	Unavailable []string `json:"unavailable,omitempty"`
}

// AllUnavailable reports whether no collection could be loaded.
func (b Board) AllUnavailable() bool {
	return len(b.Unavailable) >= len(Collections)
}

// Service serves normalized, competition-scoped data.
type Service struct {
	src Source
	log *zap.Logger
}

// New builds a Service over src.
func New(src Source, log *zap.Logger) *Service {
	return &Service{src: src, log: log.Named("standings")}
}

// Competitions lists every competition.
func (s *Service) Competitions(ctx context.Context) ([]ranking.Competition, error) {
	recs, err := s.src.Competitions(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading competitions: %w", err)
	}
	return ranking.NormalizeCompetitions(recs), nil
}

// Competition returns one competition or ErrNotFound.
func (s *Service) Competition(ctx context.Context, id any) (ranking.Competition, error) {
	comps, err := s.Competitions(ctx)
	if err != nil {
		return ranking.Competition{}, err
	}
	target := ranking.CompetitionID(id)
	for _, c := range comps {
		if c.ID != "" && c.ID == target {
			return c, nil
		}
	}
	return ranking.Competition{}, ErrNotFound
}

// GetDriversByCompetition returns the normalized drivers of one
// competition in storage order.
func (s *Service) GetDriversByCompetition(ctx context.Context, competitionID any) ([]ranking.Driver, error) {
	recs, err := s.src.Drivers(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading drivers: %w", err)
	}
	return ranking.FilterByCompetition(ranking.NormalizeDrivers(recs), competitionID), nil
}

// GetTeamsByCompetition returns the normalized teams of one competition in
// storage order.
func (s *Service) GetTeamsByCompetition(ctx context.Context, competitionID any) ([]ranking.Team, error) {
	recs, err := s.src.Teams(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading teams: %w", err)
	}
	return ranking.FilterByCompetition(ranking.NormalizeTeams(recs), competitionID), nil
}

// Board loads the three collections concurrently and derives the standings
// of competitionID ranked by key. A failed load is logged, reported in
// Unavailable and treated as empty; only cancellation of ctx is an error.
func (s *Service) Board(ctx context.Context, competitionID any, key ranking.SortKey) (Board, error) {
	var (
		src     ranking.Sources
		compErr error
		drvErr  error
		teamErr error
	)

	var g errgroup.Group
	g.Go(func() error {
		src.Competitions, compErr = s.src.Competitions(ctx)
		return nil
	})
	g.Go(func() error {
		src.Drivers, drvErr = s.src.Drivers(ctx)
		return nil
	})
	g.Go(func() error {
		src.Teams, teamErr = s.src.Teams(ctx)
		return nil
	})
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return Board{}, err
	}

	board := Board{Standings: ranking.Derive(src, competitionID, key)}
	for _, f := range []struct {
		name string
		err  error
	}{
		{CollectionCompetitions, compErr},
		{CollectionDrivers, drvErr},
		{CollectionTeams, teamErr},
	} {
		if f.err == nil {
			continue
		}
		s.log.Warn("collection unavailable",
			zap.String("collection", f.name),
			zap.String("competition", ranking.CompetitionID(competitionID)),
			zap.Error(f.err))
		board.Unavailable = append(board.Unavailable, f.name)
	}

	s.log.Debug("standings derived",
		zap.String("competition", ranking.CompetitionID(competitionID)),
		zap.String("sort", string(key)),
		zap.Int("drivers", len(board.Drivers.Rows)),
		zap.Int("teams", len(board.Teams.Rows)))

	return board, nil
}

// ResolveTeamColor returns the display color of the referenced team.
func (s *Service) ResolveTeamColor(ctx context.Context, ref ranking.TeamRef) (string, error) {
	recs, err := s.src.Teams(ctx)
	if err != nil {
		return "", fmt.Errorf("loading teams: %w", err)
	}
	return ranking.NewPalette(ranking.NormalizeTeams(recs)).Resolve(ref), nil
}
