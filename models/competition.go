package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Competition is a championship drivers and teams are scored in.
// The id is a caller-chosen slug such as "f1" or "motogp".
type Competition struct {
	bun.BaseModel `bun:"table:competitions,alias:cp"`

	ID          string    `bun:"id,pk" json:"id"`
	Name        string    `bun:"name,notnull" json:"name"`
	Description *string   `bun:"description" json:"description,omitempty"`
	Season      *string   `bun:"season" json:"season,omitempty"`
	Image       *string   `bun:"image" json:"image,omitempty"`
	Color       *string   `bun:"color" json:"color,omitempty"`
	Status      *string   `bun:"status" json:"status,omitempty"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:current_timestamp" json:"-"`
}
