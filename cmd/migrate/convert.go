package main

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/padraicbc/paddock/models"
	"github.com/padraicbc/paddock/ranking"
)

// convertAll converts every record, logging and skipping the ones that
// cannot be stored.
func convertAll[T any](recs []ranking.Record, fn func(ranking.Record) (*T, error)) []*T {
	out := make([]*T, 0, len(recs))
	for i, rec := range recs {
		m, err := fn(rec)
		if err != nil {
			log.Printf("skip row %d: %v", i, err)
			continue
		}
		out = append(out, m)
	}
	return out
}

func toCompetition(rec ranking.Record) (*models.Competition, error) {
	c := ranking.NormalizeCompetition(rec)
	if c.ID == "" {
		return nil, fmt.Errorf("competition without id")
	}
	if c.Name == "" {
		return nil, fmt.Errorf("competition %s without name", c.ID)
	}
	return &models.Competition{
		ID:          strings.ToLower(c.ID),
		Name:        c.Name,
		Description: optional(c.Description),
		Season:      optional(c.Season),
		Image:       optional(c.Image),
		// Derived colors and statuses are left to the normalizer at read time.
		Color:  optional(rec.Str("color")),
		Status: optional(explicitStatus(rec.Str("status"))),
	}, nil
}

func toTeam(rec ranking.Record) (*models.Team, error) {
	t := ranking.NormalizeTeam(rec)
	id, err := parseID(t.ID)
	if err != nil {
		return nil, fmt.Errorf("team: %w", err)
	}
	if t.CompetitionID == "" {
		return nil, fmt.Errorf("team %d without competition", id)
	}
	return &models.Team{
		ID:            id,
		Name:          t.Name,
		Color:         optional(rec.Str("color")),
		Logo:          optional(t.Logo),
		Points:        &t.Points,
		Wins:          &t.Wins,
		Podiums:       &t.Podiums,
		CompetitionID: strings.ToLower(t.CompetitionID),
	}, nil
}

func toDriver(rec ranking.Record) (*models.Driver, error) {
	d := ranking.NormalizeDriver(rec)
	id, err := parseID(d.ID)
	if err != nil {
		return nil, fmt.Errorf("driver: %w", err)
	}
	if d.CompetitionID == "" {
		return nil, fmt.Errorf("driver %d without competition", id)
	}

	m := &models.Driver{
		ID:            id,
		FirstName:     optional(d.FirstName),
		LastName:      optional(d.LastName),
		Name:          optional(rec.Str("driver", "name")),
		BirthCountry:  optional(rec.Str("nationality", "birth_country")),
		BirthDate:     optional(d.BirthDate),
		ProfileImage:  optional(d.ProfileImage),
		VehicleNumber: rec.OptInt("vehicle_number"),
		Points:        &d.Points,
		Wins:          &d.Wins,
		Podiums:       &d.Podiums,
		Active:        &d.Active,
		CompetitionID: strings.ToLower(d.CompetitionID),
	}
	if d.TeamID != "" {
		if teamID, err := parseID(d.TeamID); err == nil {
			m.TeamID = &teamID
		}
	}
	return m, nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func explicitStatus(s string) string {
	switch st := ranking.Status(strings.ToLower(s)); st {
	case ranking.StatusOngoing, ranking.StatusFinished, ranking.StatusUpcoming:
		return string(st)
	}
	return ""
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
