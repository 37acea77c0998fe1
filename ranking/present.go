package ranking

// EmptyMessage is shown instead of a table for a competition with no entries.
const EmptyMessage = "No hay datos para esta competición"

// Badge is the rank badge tier of a row.
type Badge string

const (
	BadgeGold    Badge = "gold"
	BadgeSilver  Badge = "silver"
	BadgeBronze  Badge = "bronze"
	BadgeNeutral Badge = "neutral"
)

// BadgeFor maps a 1-based position to its badge tier.
func BadgeFor(position int) Badge {
	switch position {
	case 1:
		return BadgeGold
	case 2:
		return BadgeSilver
	case 3:
		return BadgeBronze
	}
	return BadgeNeutral
}

// DisplayPosition prefers the computed position, then the upstream one,
// then the row index.
func DisplayPosition(calculated int, upstream *int, index int) int {
	if calculated > 0 {
		return calculated
	}
	if upstream != nil && *upstream > 0 {
		return *upstream
	}
	return index + 1
}

// DriverRow is one rendered line of the drivers standings.
type DriverRow struct {
	Position      int    `json:"position"`
	Badge         Badge  `json:"badge"`
	DriverID      string `json:"driverId"`
	Driver        string `json:"driver"`
	Nationality   string `json:"nationality"`
	VehicleNumber int    `json:"vehicleNumber"`
	ProfileImage  string `json:"profileImage,omitempty"`
	TeamID        string `json:"teamId,omitempty"`
	Team          string `json:"team"`
	TeamColor     string `json:"teamColor"`
	Points        int    `json:"points"`
	Wins          int    `json:"wins"`
	Podiums       int    `json:"podiums"`
	Active        bool   `json:"active"`
}

// TeamRow is one rendered line of the teams standings.
type TeamRow struct {
	Position int    `json:"position"`
	Badge    Badge  `json:"badge"`
	TeamID   string `json:"teamId"`
	Team     string `json:"team"`
	Logo     string `json:"logo,omitempty"`
	Color    string `json:"color"`
	Points   int    `json:"points"`
	Wins     int    `json:"wins"`
	Podiums  int    `json:"podiums"`
}

// DriverTable is either a list of rows or, when Empty, only a message.
type DriverTable struct {
	Empty   bool        `json:"empty"`
	Message string      `json:"message,omitempty"`
	Rows    []DriverRow `json:"rows,omitempty"`
}

// TeamTable is either a list of rows or, when Empty, only a message.
type TeamTable struct {
	Empty   bool      `json:"empty"`
	Message string    `json:"message,omitempty"`
	Rows    []TeamRow `json:"rows,omitempty"`
}

// PresentDrivers shapes ranked drivers into rows, resolving each driver's
// team name and color through palette.
func PresentDrivers(ranked []Ranked[Driver], palette *Palette) DriverTable {
	if len(ranked) == 0 {
		return DriverTable{Empty: true, Message: EmptyMessage}
	}
	rows := make([]DriverRow, len(ranked))
	for i, r := range ranked {
		d := r.Entry
		pos := DisplayPosition(r.CalculatedPosition, d.Position, i)
		ref := TeamRef{ID: d.TeamID}
		rows[i] = DriverRow{
			Position:      pos,
			Badge:         BadgeFor(pos),
			DriverID:      d.ID,
			Driver:        d.DisplayName,
			Nationality:   d.Nationality,
			VehicleNumber: d.VehicleNumber,
			ProfileImage:  d.ProfileImage,
			TeamID:        d.TeamID,
			Team:          palette.TeamName(ref),
			TeamColor:     driverTeamColor(palette, ref),
			Points:        d.Points,
			Wins:          d.Wins,
			Podiums:       d.Podiums,
			Active:        d.Active,
		}
	}
	return DriverTable{Rows: rows}
}

// driverTeamColor grays out drivers whose team is missing from the palette
// rather than guessing a color from a bare id.
func driverTeamColor(palette *Palette, ref TeamRef) string {
	if _, ok := palette.Lookup(ref); !ok {
		return UnknownTeamColor
	}
	return palette.Resolve(ref)
}

// PresentTeams shapes ranked teams into rows.
func PresentTeams(ranked []Ranked[Team]) TeamTable {
	if len(ranked) == 0 {
		return TeamTable{Empty: true, Message: EmptyMessage}
	}
	rows := make([]TeamRow, len(ranked))
	for i, r := range ranked {
		t := r.Entry
		pos := DisplayPosition(r.CalculatedPosition, t.Position, i)
		rows[i] = TeamRow{
			Position: pos,
			Badge:    BadgeFor(pos),
			TeamID:   t.ID,
			Team:     t.Team,
			Logo:     t.Logo,
			Color:    colorChain(t.Color, t.ID, t.Team),
			Points:   t.Points,
			Wins:     t.Wins,
			Podiums:  t.Podiums,
		}
	}
	return TeamTable{Rows: rows}
}
