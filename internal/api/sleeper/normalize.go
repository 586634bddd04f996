package sleeper

import (
	"strings"

	"github.com/sleeperview/sleeperview/internal/models"
)

// NormalizePlayers maps the raw player directory into the compact shape the
// frontend consumes. Every input entry produces exactly one output entry.
// Name falls back from full_name to "first last" to the raw id; players
// without a team are marked as free agents.
func NormalizePlayers(raw map[string]models.SleeperPlayer) map[string]models.Player {
	players := make(map[string]models.Player, len(raw))
	for id, info := range raw {
		name := info.FullName
		if name == "" {
			name = strings.TrimSpace(strings.TrimSpace(info.FirstName) + " " + strings.TrimSpace(info.LastName))
		}
		if name == "" {
			name = id
		}

		team := info.Team
		if team == "" {
			team = "FA"
		}

		players[id] = models.Player{
			ID:       id,
			Name:     name,
			Team:     team,
			Position: info.Position,
		}
	}
	return players
}
