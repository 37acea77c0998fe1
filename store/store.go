// Package store persists competitions, drivers, teams and users in
// PostgreSQL. Reads for the standings views come back as raw rows so the
// ranking normalizer sees exactly what the database holds.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/uptrace/bun"

	"github.com/padraicbc/paddock/models"
	"github.com/padraicbc/paddock/ranking"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("already exists")
	ErrInvalidReference = errors.New("references a missing competition or team")
)

// Store is a bun-backed repository.
type Store struct {
	db bun.IDB
}

// New wraps a bun database or transaction.
func New(db bun.IDB) *Store {
	return &Store{db: db}
}

// Competitions returns every competition row, ordered by name.
func (s *Store) Competitions(ctx context.Context) ([]ranking.Record, error) {
	return s.records(ctx, (*models.Competition)(nil), "cp.name ASC")
}

// Drivers returns every driver row in insertion order.
func (s *Store) Drivers(ctx context.Context) ([]ranking.Record, error) {
	return s.records(ctx, (*models.Driver)(nil), "d.id ASC")
}

// Teams returns every team row in insertion order.
func (s *Store) Teams(ctx context.Context) ([]ranking.Record, error) {
	return s.records(ctx, (*models.Team)(nil), "t.id ASC")
}

func (s *Store) records(ctx context.Context, model any, order string) ([]ranking.Record, error) {
	var rows []map[string]interface{}
	err := s.db.NewSelect().
		Model(model).
		ExcludeColumn("created_at").
		OrderExpr(order).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("listing %T: %w", model, err)
	}

	out := make([]ranking.Record, len(rows))
	for i, row := range rows {
		out[i] = ranking.Record(row)
	}
	return out, nil
}

// UserByUsername loads a user for sign-in.
func (s *Store) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	user := &models.User{}
	err := s.db.NewSelect().Model(user).Where("username = ?", username).Scan(ctx)
	if err != nil {
		return nil, mapErr(err)
	}
	return user, nil
}

// SaveUser inserts a user or replaces the password and admin flag of an
// existing one with the same username.
func (s *Store) SaveUser(ctx context.Context, user *models.User) error {
	_, err := s.db.NewInsert().Model(user).
		On("CONFLICT (username) DO UPDATE").
		Set("password = EXCLUDED.password").
		Set("admin = EXCLUDED.admin").
		Exec(ctx)
	return mapErr(err)
}

// mapErr turns driver errors into the package sentinels.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "duplicate key value"):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	case strings.Contains(msg, "violates foreign key constraint"):
		return fmt.Errorf("%w: %v", ErrInvalidReference, err)
	}
	return err
}
