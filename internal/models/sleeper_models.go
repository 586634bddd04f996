package models

// Raw Sleeper API shapes. Only the fields the service reads are decoded;
// everything else upstream sends is ignored.

type SleeperUser struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

type SleeperLeague struct {
	LeagueID string `json:"league_id"`
	Name     string `json:"name"`
}

type SleeperRoster struct {
	RosterID int    `json:"roster_id"`
	OwnerID  string `json:"owner_id"`
}

// SleeperMatchup is one roster's record for a week. Two rosters share a
// MatchupID; Starters holds null for unfilled lineup slots, which decodes
// to the empty string.
type SleeperMatchup struct {
	RosterID  int      `json:"roster_id"`
	MatchupID int      `json:"matchup_id"`
	Starters  []string `json:"starters"`
}

type SleeperPlayer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
	Team      string `json:"team"`
	Position  string `json:"position"`
}
