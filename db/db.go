package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"
	"go.uber.org/zap"

	"github.com/padraicbc/paddock/config"
	"github.com/padraicbc/paddock/models"
	"github.com/padraicbc/paddock/store"
)

// Setup opens and pings a PostgreSQL connection using the provided config.
func Setup(ctx context.Context, cfg *config.Config) (*bun.DB, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.PostgresDSN())))
	db := bun.NewDB(sqldb, pgdialect.New())

	if cfg.Debug {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	return db, nil
}

type table struct {
	model       any
	foreignKeys []string
}

// CreateTables creates all tables in dependency order. Deleting a
// competition removes its teams and drivers; deleting a team leaves its
// drivers teamless.
func CreateTables(ctx context.Context, db *bun.DB) error {
	tables := []table{
		{model: (*models.User)(nil)},
		{model: (*models.Competition)(nil)},
		{
			model: (*models.Team)(nil),
			foreignKeys: []string{
				`("competition_id") REFERENCES "competitions" ("id") ON DELETE CASCADE`,
			},
		},
		{
			model: (*models.Driver)(nil),
			foreignKeys: []string{
				`("competition_id") REFERENCES "competitions" ("id") ON DELETE CASCADE`,
				`("team_id") REFERENCES "teams" ("id") ON DELETE SET NULL`,
			},
		},
	}

	for _, t := range tables {
		q := db.NewCreateTable().Model(t.model).IfNotExists()
		for _, fk := range t.foreignKeys {
			q = q.ForeignKey(fk)
		}
		if _, err := q.Exec(ctx); err != nil {
			return fmt.Errorf("creating table for %T: %w", t.model, err)
		}
	}

	statements := []string{
		`CREATE INDEX IF NOT EXISTS drivers_competition_idx ON drivers (competition_id)`,
		`CREATE INDEX IF NOT EXISTS teams_competition_idx ON teams (competition_id)`,
		`ALTER TABLE users ADD COLUMN IF NOT EXISTS admin boolean NOT NULL DEFAULT false`,
		store.SequenceResetSQL("teams"),
	}
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			zap.L().Warn("schema statement failed", zap.String("stmt", stmt), zap.Error(err))
		}
	}

	return nil
}
