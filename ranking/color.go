package ranking

import (
	"fmt"
	"unicode/utf16"
)

// UnknownTeamColor is used when a team can be neither found nor named.
const UnknownTeamColor = "#CCCCCC"

// MaxLegacyTeamID is the highest id in legacyTeamColors. Team ids up to it
// are reserved for the seed teams; new teams are numbered above it.
const MaxLegacyTeamID = 10

// legacyTeamColors holds the colors of the seed teams the portal shipped
// with, keyed by their reserved ids.
//
//nolint:gochecknoglobals // Static lookup table
var legacyTeamColors = map[string]string{
	"1":  "#3671C6",
	"2":  "#E8002D",
	"3":  "#27F4D2",
	"4":  "#FF8000",
	"5":  "#229971",
	"6":  "#FF87BC",
	"7":  "#64C4FF",
	"8":  "#6692FF",
	"9":  "#52E252",
	"10": "#B6BABD",
}

// TeamColor resolves a team record's color: explicit color, then the
// legacy seed table by id, then a hash of the team's name.
func TeamColor(rec Record) string {
	return colorChain(rec.Str("color"), rec.Str("id"), rec.Str("team", "name"))
}

func colorChain(explicit, id, name string) string {
	if explicit != "" {
		return explicit
	}
	if c, ok := legacyTeamColors[id]; ok {
		return c
	}
	if name != "" {
		return HashColor(name)
	}
	return UnknownTeamColor
}

// HashColor derives a stable #RRGGBB color from a name using the classic
// hash = c + ((hash << 5) - hash) over UTF-16 code units. The shift runs on
// the 32-bit truncation of the accumulator so colors match the ones the
// portal's browser views have always generated.
func HashColor(name string) string {
	if name == "" {
		return UnknownTeamColor
	}
	var h int64
	for _, c := range utf16.Encode([]rune(name)) {
		h = int64(c) + int64(int32(h)<<5) - h
	}
	return fmt.Sprintf("#%06X", int32(h)&0xFFFFFF)
}

// TeamRef points at a team by id, by name, or both.
type TeamRef struct {
	ID   string `query:"id" json:"id"`
	Name string `query:"name" json:"name"`
}

// Palette resolves team references against one collection of teams.
type Palette struct {
	byID   map[string]Team
	byName map[string]Team
}

// NewPalette indexes teams by id, by name and by display name. Earlier
// entries win on duplicate keys.
func NewPalette(teams []Team) *Palette {
	p := &Palette{
		byID:   make(map[string]Team, len(teams)),
		byName: make(map[string]Team, len(teams)),
	}
	for _, t := range teams {
		if _, ok := p.byID[t.ID]; t.ID != "" && !ok {
			p.byID[t.ID] = t
		}
		for _, name := range []string{t.Name, t.Team} {
			if _, ok := p.byName[name]; name != "" && !ok {
				p.byName[name] = t
			}
		}
	}
	return p
}

// Lookup finds the referenced team, trying the id first.
func (p *Palette) Lookup(ref TeamRef) (Team, bool) {
	if p == nil {
		return Team{}, false
	}
	if t, ok := p.byID[ref.ID]; ok && ref.ID != "" {
		return t, true
	}
	if t, ok := p.byName[ref.Name]; ok && ref.Name != "" {
		return t, true
	}
	return Team{}, false
}

// Resolve returns the display color for ref. A known team goes through the
// full color chain; an unknown one can still be colored from a legacy id or
// a name, and is gray otherwise.
func (p *Palette) Resolve(ref TeamRef) string {
	if t, ok := p.Lookup(ref); ok {
		return colorChain(t.Color, t.ID, t.Team)
	}
	return colorChain("", ref.ID, ref.Name)
}

// TeamName returns the display name for ref, or UnknownTeam on a miss.
func (p *Palette) TeamName(ref TeamRef) string {
	if t, ok := p.Lookup(ref); ok {
		return orDefault(t.Team, orDefault(t.Name, UnknownTeam))
	}
	return UnknownTeam
}
