package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Driver is a competitor in exactly one competition. Name holds the single
// display name of records imported before first/last names were split.
type Driver struct {
	bun.BaseModel `bun:"table:drivers,alias:d"`

	ID            int64     `bun:"id,pk,autoincrement" json:"id"`
	FirstName     *string   `bun:"first_name" json:"first_name,omitempty"`
	LastName      *string   `bun:"last_name" json:"last_name,omitempty"`
	Name          *string   `bun:"name" json:"name,omitempty"`
	BirthCountry  *string   `bun:"birth_country" json:"birth_country,omitempty"`
	BirthDate     *string   `bun:"birth_date" json:"birth_date,omitempty"`
	VehicleNumber *int      `bun:"vehicle_number" json:"vehicle_number,omitempty"`
	Points        *int      `bun:"points,default:0" json:"points,omitempty"`
	Wins          *int      `bun:"wins,default:0" json:"wins,omitempty"`
	Podiums       *int      `bun:"podiums,default:0" json:"podiums,omitempty"`
	Active        *bool     `bun:"active,default:true" json:"active,omitempty"`
	ProfileImage  *string   `bun:"profile_image" json:"profile_image,omitempty"`
	TeamID        *int64    `bun:"team_id" json:"team_id,omitempty"`
	CompetitionID string    `bun:"competition_id,notnull" json:"competition_id"`
	CreatedAt     time.Time `bun:"created_at,notnull,default:current_timestamp" json:"-"`
}
