package ranking

// Sources are the three raw collections a standings page is built from.
// Any of them may be nil when its fetch has not arrived or failed.
type Sources struct {
	Competitions []Record
	Drivers      []Record
	Teams        []Record
}

// Standings is everything the standings views render for one competition.
type Standings struct {
	Competition *Competition `json:"competition,omitempty"`
	SortKey     SortKey      `json:"sortKey"`
	Drivers     DriverTable  `json:"drivers"`
	Teams       TeamTable    `json:"teams"`
}

// Derive recomputes the standings of competitionID from scratch. Call it
// again whenever a source collection, the sort key or the competition
// changes; nothing is cached between calls.
func Derive(src Sources, competitionID any, key SortKey) Standings {
	target := CompetitionID(competitionID)

	var comp *Competition
	for _, c := range NormalizeCompetitions(src.Competitions) {
		if c.ID != "" && c.ID == target {
			comp = &c
			break
		}
	}

	allTeams := NormalizeTeams(src.Teams)
	teams := FilterByCompetition(allTeams, target)
	drivers := FilterByCompetition(NormalizeDrivers(src.Drivers), target)

	return Standings{
		Competition: comp,
		SortKey:     key,
		Drivers:     PresentDrivers(Rank(drivers, key), NewPalette(allTeams)),
		Teams:       PresentTeams(Rank(teams, key)),
	}
}
