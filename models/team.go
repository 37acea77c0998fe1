package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Team groups drivers inside one competition.
type Team struct {
	bun.BaseModel `bun:"table:teams,alias:t"`

	ID            int64     `bun:"id,pk,autoincrement" json:"id"`
	Name          string    `bun:"name,notnull" json:"name"`
	Color         *string   `bun:"color" json:"color,omitempty"`
	Logo          *string   `bun:"logo" json:"logo,omitempty"`
	Points        *int      `bun:"points,default:0" json:"points,omitempty"`
	Wins          *int      `bun:"wins,default:0" json:"wins,omitempty"`
	Podiums       *int      `bun:"podiums,default:0" json:"podiums,omitempty"`
	CompetitionID string    `bun:"competition_id,notnull" json:"competition_id"`
	CreatedAt     time.Time `bun:"created_at,notnull,default:current_timestamp" json:"-"`
}
