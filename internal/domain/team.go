package domain

import "strings"

// Team is one of the fixed set of groups documents can be browsed by.
type Team string

const (
	TeamFerrari  Team = "Ferrari"
	TeamMercedes Team = "Mercedes"
	TeamMcLaren  Team = "McLaren"
)

// Accent colours
const (
	AccentRed    = "red"
	AccentTeal   = "teal"
	AccentOrange = "orange"
	AccentGray   = "gray"
)

// AllTeams returns the teams in tile order
func AllTeams() []Team {
	return []Team{TeamFerrari, TeamMercedes, TeamMcLaren}
}

// ParseTeam matches a team by its display name, ignoring case
func ParseTeam(name string) (Team, bool) {
	name = strings.TrimSpace(name)
	for _, t := range AllTeams() {
		if strings.EqualFold(string(t), name) {
			return t, true
		}
	}
	return "", false
}

// String returns the display name, which doubles as the search term
// used to list the team's documents.
func (t Team) String() string {
	return string(t)
}

// Accent returns the display accent colour for the team.
func (t Team) Accent() string {
	switch t {
	case TeamFerrari:
		return AccentRed
	case TeamMercedes:
		return AccentTeal
	case TeamMcLaren:
		return AccentOrange
	default:
		return AccentGray
	}
}
