package sleeper

import (
	"context"
	"errors"
	"fmt"

	"github.com/sleeperview/sleeperview/internal/models"
)

// The two lookups that resolve a person get their own not-found signal so
// the HTTP layer can answer 404. Roster, matchup and player failures
// propagate as raw upstream errors.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrLeaguesNotFound = errors.New("leagues not found for user")
)

type API struct {
	client *Client
}

func NewAPI(client *Client) *API {
	return &API{client: client}
}

// GetUser resolves a username or user id. Any non-success upstream status
// maps to ErrUserNotFound.
func (a *API) GetUser(ctx context.Context, identifier string) (*models.SleeperUser, error) {
	var user models.SleeperUser
	endpoint := fmt.Sprintf("/user/%s", identifier)
	if err := a.client.Get(ctx, endpoint, &user); err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("fetching user: %w", err)
	}
	return &user, nil
}

func (a *API) GetLeagues(ctx context.Context, userID string, season int) ([]models.SleeperLeague, error) {
	var leagues []models.SleeperLeague
	endpoint := fmt.Sprintf("/user/%s/leagues/nfl/%d", userID, season)
	if err := a.client.Get(ctx, endpoint, &leagues); err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) {
			return nil, ErrLeaguesNotFound
		}
		return nil, fmt.Errorf("fetching leagues: %w", err)
	}
	return leagues, nil
}

func (a *API) GetRosters(ctx context.Context, leagueID string) ([]models.SleeperRoster, error) {
	var rosters []models.SleeperRoster
	endpoint := fmt.Sprintf("/league/%s/rosters", leagueID)
	if err := a.client.Get(ctx, endpoint, &rosters); err != nil {
		return nil, fmt.Errorf("fetching rosters: %w", err)
	}
	return rosters, nil
}

func (a *API) GetMatchups(ctx context.Context, leagueID string, week int) ([]models.SleeperMatchup, error) {
	var matchups []models.SleeperMatchup
	endpoint := fmt.Sprintf("/league/%s/matchups/%d", leagueID, week)
	if err := a.client.Get(ctx, endpoint, &matchups); err != nil {
		return nil, fmt.Errorf("fetching matchups: %w", err)
	}
	return matchups, nil
}

// GetPlayers downloads the full NFL player directory and normalizes it.
// The payload is several MB; callers decide whether to hold on to it.
func (a *API) GetPlayers(ctx context.Context) (map[string]models.Player, error) {
	var raw map[string]models.SleeperPlayer
	if err := a.client.Get(ctx, "/players/nfl", &raw); err != nil {
		return nil, fmt.Errorf("fetching players: %w", err)
	}
	return NormalizePlayers(raw), nil
}
