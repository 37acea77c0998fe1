package store

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/padraicbc/paddock/models"
	"github.com/padraicbc/paddock/ranking"
)

func (s *Store) CreateCompetition(ctx context.Context, c *models.Competition) error {
	return insert(ctx, s.db, c)
}

func (s *Store) UpdateCompetition(ctx context.Context, c *models.Competition) error {
	return update(ctx, s.db, c)
}

func (s *Store) DeleteCompetition(ctx context.Context, id string) error {
	return remove(ctx, s.db, &models.Competition{ID: id})
}

// GetCompetition loads one competition by id.
func (s *Store) GetCompetition(ctx context.Context, id string) (*models.Competition, error) {
	c := &models.Competition{ID: id}
	if err := s.db.NewSelect().Model(c).WherePK().Scan(ctx); err != nil {
		return nil, mapErr(err)
	}
	return c, nil
}

// SetCompetitionImage points a competition at an uploaded logo.
func (s *Store) SetCompetitionImage(ctx context.Context, id, url string) error {
	return setColumn(ctx, s.db, (*models.Competition)(nil), "image", url, "cp.id = ?", id)
}

func (s *Store) CreateDriver(ctx context.Context, d *models.Driver) error {
	return insert(ctx, s.db, d)
}

func (s *Store) UpdateDriver(ctx context.Context, d *models.Driver) error {
	return update(ctx, s.db, d)
}

func (s *Store) DeleteDriver(ctx context.Context, id int64) error {
	return remove(ctx, s.db, &models.Driver{ID: id})
}

func (s *Store) CreateTeam(ctx context.Context, t *models.Team) error {
	return insert(ctx, s.db, t)
}

func (s *Store) UpdateTeam(ctx context.Context, t *models.Team) error {
	return update(ctx, s.db, t)
}

func (s *Store) DeleteTeam(ctx context.Context, id int64) error {
	return remove(ctx, s.db, &models.Team{ID: id})
}

// GetTeam loads one team by id.
func (s *Store) GetTeam(ctx context.Context, id int64) (*models.Team, error) {
	t := &models.Team{ID: id}
	if err := s.db.NewSelect().Model(t).WherePK().Scan(ctx); err != nil {
		return nil, mapErr(err)
	}
	return t, nil
}

// SetTeamLogo points a team at an uploaded logo.
func (s *Store) SetTeamLogo(ctx context.Context, id int64, url string) error {
	return setColumn(ctx, s.db, (*models.Team)(nil), "logo", url, "t.id = ?", id)
}

// TeamDriversOutside counts the drivers of a team that race in a
// competition other than competitionID.
func (s *Store) TeamDriversOutside(ctx context.Context, teamID int64, competitionID string) (int, error) {
	n, err := s.db.NewSelect().
		Model((*models.Driver)(nil)).
		Where("team_id = ?", teamID).
		Where("competition_id <> ?", competitionID).
		Count(ctx)
	return n, mapErr(err)
}

// Import inserts a batch of normalized legacy rows in one transaction,
// keeping their ids. Rows whose id already exists are left alone so an
// import can be rerun.
func (s *Store) Import(ctx context.Context, comps []*models.Competition, teams []*models.Team, drivers []*models.Driver) error {
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if len(comps) > 0 {
			if _, err := tx.NewInsert().Model(&comps).On("CONFLICT (id) DO NOTHING").Exec(ctx); err != nil {
				return mapErr(err)
			}
		}
		if len(teams) > 0 {
			if _, err := tx.NewInsert().Model(&teams).On("CONFLICT (id) DO NOTHING").Exec(ctx); err != nil {
				return mapErr(err)
			}
		}
		if len(drivers) > 0 {
			if _, err := tx.NewInsert().Model(&drivers).On("CONFLICT (id) DO NOTHING").Exec(ctx); err != nil {
				return mapErr(err)
			}
		}
		for _, table := range []string{"teams", "drivers"} {
			if _, err := tx.ExecContext(ctx, SequenceResetSQL(table)); err != nil {
				return fmt.Errorf("resetting %s sequence: %w", table, err)
			}
		}
		return nil
	})
}

func insert[T any](ctx context.Context, db bun.IDB, m *T) error {
	_, err := db.NewInsert().Model(m).ExcludeColumn("created_at").Exec(ctx)
	return mapErr(err)
}

func update[T any](ctx context.Context, db bun.IDB, m *T) error {
	res, err := db.NewUpdate().Model(m).WherePK().ExcludeColumn("created_at").Exec(ctx)
	if err != nil {
		return mapErr(err)
	}
	return affected(res)
}

func remove[T any](ctx context.Context, db bun.IDB, m *T) error {
	res, err := db.NewDelete().Model(m).WherePK().Exec(ctx)
	if err != nil {
		return mapErr(err)
	}
	return affected(res)
}

func setColumn(ctx context.Context, db bun.IDB, model any, column, value, where string, id any) error {
	res, err := db.NewUpdate().Model(model).
		Set("? = ?", bun.Ident(column), value).
		Where(where, id).
		Exec(ctx)
	if err != nil {
		return mapErr(err)
	}
	return affected(res)
}

type rowsAffecter interface {
	RowsAffected() (int64, error)
}

func affected(res rowsAffecter) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// SequenceResetSQL moves table's id sequence past its highest id. The teams
// sequence never goes below the ids reserved for the legacy seed teams.
func SequenceResetSQL(table string) string {
	floor := 1
	if table == "teams" {
		floor = ranking.MaxLegacyTeamID
	}
	return fmt.Sprintf(`SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), GREATEST(COALESCE(MAX(id), 0), %[2]d)) FROM %[1]s`, table, floor)
}
