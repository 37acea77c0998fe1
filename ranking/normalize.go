package ranking

import (
	"strconv"
	"strings"
	"time"
)

// Placeholders shown when a record carries no usable value.
const (
	UnnamedDriver     = "Piloto sin nombre"
	UnknownTeam       = "Equipo desconocido"
	UnknownNation     = "---"
	DefaultBrandColor = "#E10600"
)

// Status is a competition's lifecycle state.
type Status string

const (
	StatusOngoing  Status = "ongoing"
	StatusFinished Status = "finished"
	StatusUpcoming Status = "upcoming"
)

// now is swapped in tests to pin the current season.
var now = time.Now

// Competition is the canonical competition shape.
type Competition struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Season      string `json:"season"`
	Image       string `json:"image"`
	Color       string `json:"color"`
	Status      Status `json:"status"`
}

// Driver is the canonical driver shape. Position is the upstream value and
// is only consulted when no ranking pass ran.
type Driver struct {
	ID            string `json:"id"`
	DisplayName   string `json:"driver"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Nationality   string `json:"nationality"`
	VehicleNumber int    `json:"vehicle_number"`
	Points        int    `json:"points"`
	Wins          int    `json:"wins"`
	Podiums       int    `json:"podiums"`
	Active        bool   `json:"active"`
	TeamID        string `json:"team_id"`
	CompetitionID string `json:"competition_id"`
	ProfileImage  string `json:"profile_image"`
	BirthDate     string `json:"birth_date"`
	Position      *int   `json:"position,omitempty"`
}

// Team is the canonical team shape. Team mirrors Name for views that key
// on "team".
type Team struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Team          string `json:"team"`
	Logo          string `json:"logo"`
	Color         string `json:"color"`
	Points        int    `json:"points"`
	Wins          int    `json:"wins"`
	Podiums       int    `json:"podiums"`
	CompetitionID string `json:"competition_id"`
	Position      *int   `json:"position,omitempty"`
}

// Normalize converts rec into the canonical value for kind. Unknown kinds
// return rec unchanged.
func Normalize(kind Kind, rec Record) any {
	switch kind {
	case KindCompetition:
		return NormalizeCompetition(rec)
	case KindDriver:
		return NormalizeDriver(rec)
	case KindTeam:
		return NormalizeTeam(rec)
	}
	return rec
}

// NormalizeCompetition fills every field a competition view needs.
func NormalizeCompetition(rec Record) Competition {
	season := rec.Str("season", "year")
	if season == "" {
		season = strconv.Itoa(now().Year())
	}
	color := rec.Str("color")
	if color == "" {
		color = DefaultBrandColor
	}
	return Competition{
		ID:          rec.Str("id"),
		Name:        rec.Str("name"),
		Description: rec.Str("description"),
		Season:      season,
		Image:       rec.Str("image", "logo"),
		Color:       color,
		Status:      competitionStatus(rec.Str("status"), season),
	}
}

// competitionStatus keeps a known status and otherwise derives one from the
// season relative to the current year.
func competitionStatus(raw, season string) Status {
	switch s := Status(strings.ToLower(raw)); s {
	case StatusOngoing, StatusFinished, StatusUpcoming:
		return s
	}
	year, err := strconv.Atoi(leadingDigits(season))
	if err != nil {
		return StatusOngoing
	}
	current := now().Year()
	switch {
	case year < current:
		return StatusFinished
	case year > current:
		return StatusUpcoming
	}
	return StatusOngoing
}

// leadingDigits keeps "2024" out of seasons written like "2024/25".
func leadingDigits(s string) string {
	for i, r := range s {
		if r < '0' || r > '9' {
			return s[:i]
		}
	}
	return s
}

// NormalizeDriver fills every field a driver row needs.
func NormalizeDriver(rec Record) Driver {
	first, last := rec.Str("first_name"), rec.Str("last_name")
	return Driver{
		ID:            rec.Str("id"),
		DisplayName:   driverName(rec, first, last),
		FirstName:     first,
		LastName:      last,
		Nationality:   orDefault(rec.Str("nationality", "birth_country"), UnknownNation),
		VehicleNumber: rec.Int("vehicle_number"),
		Points:        rec.Int("points"),
		Wins:          rec.Int("wins"),
		Podiums:       rec.Int("podiums"),
		Active:        rec.Bool("active", true),
		TeamID:        rec.Str("team_id"),
		CompetitionID: CompetitionID(rec["competition_id"]),
		ProfileImage:  rec.Str("profile_image"),
		BirthDate:     rec.Str("birth_date"),
		Position:      rec.OptInt("position"),
	}
}

func driverName(rec Record, first, last string) string {
	if name := rec.Str("driver"); name != "" {
		return name
	}
	if first != "" && last != "" {
		return first + " " + last
	}
	return orDefault(rec.Str("name"), UnnamedDriver)
}

// NormalizeTeam fills every field a team row needs, including a color.
func NormalizeTeam(rec Record) Team {
	return Team{
		ID:            rec.Str("id"),
		Name:          orDefault(rec.Str("name", "team"), UnknownTeam),
		Team:          orDefault(rec.Str("team", "name"), UnknownTeam),
		Logo:          rec.Str("logo", "image"),
		Color:         TeamColor(rec),
		Points:        rec.Int("points"),
		Wins:          rec.Int("wins"),
		Podiums:       rec.Int("podiums"),
		CompetitionID: CompetitionID(rec["competition_id"]),
		Position:      rec.OptInt("position"),
	}
}

// NormalizeCompetitions normalizes every record; nil input yields an empty slice.
func NormalizeCompetitions(recs []Record) []Competition {
	return normalizeAll(recs, NormalizeCompetition)
}

// NormalizeDrivers normalizes every record; nil input yields an empty slice.
func NormalizeDrivers(recs []Record) []Driver {
	return normalizeAll(recs, NormalizeDriver)
}

// NormalizeTeams normalizes every record; nil input yields an empty slice.
func NormalizeTeams(recs []Record) []Team {
	return normalizeAll(recs, NormalizeTeam)
}

func normalizeAll[T any](recs []Record, fn func(Record) T) []T {
	out := make([]T, 0, len(recs))
	for _, rec := range recs {
		out = append(out, fn(rec))
	}
	return out
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
