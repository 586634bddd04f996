package models

type Player struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Team     string `json:"team"`
	Position string `json:"position"`
}

type LeagueSummary struct {
	LeagueID string `json:"league_id"`
	Name     string `json:"name"`
}

// LeagueLineup is one league's starters view for the requested week.
// OpponentRosterID is nil on a bye week.
type LeagueLineup struct {
	LeagueID         string   `json:"league_id"`
	Name             string   `json:"name"`
	MyRosterID       int      `json:"my_roster_id"`
	MyStarters       []string `json:"my_starters"`
	OpponentRosterID *int     `json:"opponent_roster_id"`
	OpponentStarters []string `json:"opponent_starters"`
}

type LineupsResponse struct {
	Leagues []LeagueLineup    `json:"leagues"`
	Players map[string]Player `json:"players"`
}

type PlayerMatch struct {
	Player Player `json:"player"`
	Score  int    `json:"score"`
}
