package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jonboulle/clockwork"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/sleeperview/sleeperview/internal/api/sleeper"
	"github.com/sleeperview/sleeperview/internal/models"
	"github.com/sleeperview/sleeperview/internal/repository/memory"
)

type FantasyService struct {
	api   *sleeper.API
	repo  *memory.Repository
	clock clockwork.Clock
}

func NewFantasyService(api *sleeper.API, repo *memory.Repository, clock clockwork.Clock) *FantasyService {
	return &FantasyService{api: api, repo: repo, clock: clock}
}

// resolveSeason fills in the current calendar year when the caller did not
// pin a season.
func (s *FantasyService) resolveSeason(season int) int {
	if season == 0 {
		return s.clock.Now().Year()
	}
	return season
}

func (s *FantasyService) ListLeagues(ctx context.Context, username string, season int) ([]models.LeagueSummary, error) {
	season = s.resolveSeason(season)

	user, err := s.api.GetUser(ctx, username)
	if err != nil {
		return nil, err
	}

	leagues, err := s.api.GetLeagues(ctx, user.UserID, season)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.LeagueSummary, 0, len(leagues))
	for _, lg := range leagues {
		summaries = append(summaries, models.LeagueSummary{
			LeagueID: lg.LeagueID,
			Name:     leagueName(lg),
		})
	}
	return summaries, nil
}

func leagueName(lg models.SleeperLeague) string {
	if lg.Name == "" {
		return "Unnamed League"
	}
	return lg.Name
}

// GetLineups builds the per-league starters view for one user and week.
// Leagues where the user has no roster, or no matchup entry for the week,
// are left out of the result. A failing roster or matchup fetch fails the
// whole request.
func (s *FantasyService) GetLineups(ctx context.Context, username string, week, season int) (*models.LineupsResponse, error) {
	season = s.resolveSeason(season)

	user, err := s.api.GetUser(ctx, username)
	if err != nil {
		return nil, err
	}

	leagues, err := s.api.GetLeagues(ctx, user.UserID, season)
	if err != nil {
		return nil, err
	}

	players, err := s.playerDirectory(ctx)
	if err != nil {
		return nil, err
	}

	out := &models.LineupsResponse{
		Leagues: make([]models.LeagueLineup, 0, len(leagues)),
		Players: players,
	}

	for _, lg := range leagues {
		lineup, ok, err := s.leagueLineup(ctx, lg, user.UserID, week)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		out.Leagues = append(out.Leagues, lineup)
	}

	return out, nil
}

func (s *FantasyService) leagueLineup(ctx context.Context, lg models.SleeperLeague, userID string, week int) (models.LeagueLineup, bool, error) {
	rosters, err := s.api.GetRosters(ctx, lg.LeagueID)
	if err != nil {
		return models.LeagueLineup{}, false, err
	}

	myRosterID, found := 0, false
	for _, r := range rosters {
		if r.OwnerID == userID {
			myRosterID = r.RosterID
			found = true
			break
		}
	}
	if !found {
		return models.LeagueLineup{}, false, nil
	}

	matchups, err := s.api.GetMatchups(ctx, lg.LeagueID, week)
	if err != nil {
		return models.LeagueLineup{}, false, err
	}

	// The opponent is the first other roster sharing my matchup id; it can
	// stay nil on a bye week.
	var myMatchup, oppMatchup *models.SleeperMatchup
	for i := range matchups {
		if matchups[i].RosterID != myRosterID {
			continue
		}
		myMatchup = &matchups[i]
		for j := range matchups {
			if matchups[j].MatchupID == myMatchup.MatchupID && matchups[j].RosterID != myRosterID {
				oppMatchup = &matchups[j]
				break
			}
		}
		break
	}
	if myMatchup == nil {
		return models.LeagueLineup{}, false, nil
	}

	lineup := models.LeagueLineup{
		LeagueID:         lg.LeagueID,
		Name:             leagueName(lg),
		MyRosterID:       myRosterID,
		MyStarters:       filterStarters(myMatchup.Starters),
		OpponentStarters: []string{},
	}
	if oppMatchup != nil {
		lineup.OpponentRosterID = &oppMatchup.RosterID
		lineup.OpponentStarters = filterStarters(oppMatchup.Starters)
	}
	return lineup, true, nil
}

// filterStarters drops the empty slots Sleeper reports as null in the
// starters array.
func filterStarters(starters []string) []string {
	out := make([]string, 0, len(starters))
	for _, p := range starters {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (s *FantasyService) playerDirectory(ctx context.Context) (map[string]models.Player, error) {
	if players, ok := s.repo.GetPlayers(); ok {
		return players, nil
	}
	return s.api.GetPlayers(ctx)
}

// RefreshPlayers re-downloads the player directory into the snapshot repo.
func (s *FantasyService) RefreshPlayers(ctx context.Context) error {
	players, err := s.api.GetPlayers(ctx)
	if err != nil {
		return fmt.Errorf("refreshing players: %w", err)
	}
	s.repo.SavePlayers(players)
	return nil
}

const searchThreshold = 0.6

// SearchPlayers ranks directory entries by Levenshtein similarity to the
// query, best first.
func (s *FantasyService) SearchPlayers(ctx context.Context, query string, limit int) ([]models.PlayerMatch, error) {
	if limit <= 0 {
		limit = 10
	}

	players, err := s.playerDirectory(ctx)
	if err != nil {
		return nil, err
	}

	matches := make([]models.PlayerMatch, 0, limit)
	for _, p := range players {
		maxLen := max(len(query), len(p.Name))
		if maxLen == 0 {
			continue
		}
		distance := fuzzy.LevenshteinDistance(strings.ToLower(query), strings.ToLower(p.Name))
		similarity := 1 - float64(distance)/float64(maxLen)
		if similarity > searchThreshold {
			matches = append(matches, models.PlayerMatch{Player: p, Score: int(similarity * 100)})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Player.Name < matches[j].Player.Name
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}
