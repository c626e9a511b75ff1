package sleeper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sethvargo/go-retry"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/ColdZealDky/sleeper-scripts/model"
)

const SleeperURL = "https://api.sleeper.app"

// Client is the read-only surface of the Sleeper API that the scripts use.
// All calls are unauthenticated GETs.
type Client interface {
	GetLeague(ctx context.Context, leagueID string) (*model.League, error)
	GetRosters(ctx context.Context, leagueID string) ([]model.Roster, error)
	GetUsers(ctx context.Context, leagueID string) ([]model.User, error)
	GetMatchups(ctx context.Context, leagueID string, week int) ([]model.Matchup, error)
	LoadPlayers(ctx context.Context) ([]model.Player, error)
}

type client struct {
	url        string
	httpClient *http.Client
	limiter    *rate.Limiter
	retry      RetryPolicy
	log        *logrus.Logger
}

func New(log *logrus.Logger) (Client, error) {
	url := SleeperURL
	if v := os.Getenv("SLEEPER_URL"); v != "" {
		url = v
	}
	return newClient(url, DefaultRetryPolicy(), log), nil
}

// NewForTest returns a client pointed at a fake server, with no retry delay
// and no request pacing so failure paths run instantly.
func NewForTest(url string) Client {
	c := newClient(url, RetryPolicy{MaxAttempts: 3, Delay: time.Nanosecond}, logrus.New())
	c.limiter = rate.NewLimiter(rate.Inf, 0)
	return c
}

func newClient(url string, policy RetryPolicy, log *logrus.Logger) *client {
	return &client{
		url: url,
		httpClient: &http.Client{
			Timeout: 1 * time.Minute,
		},
		// Sleeper asks clients to stay under ~1000 calls per minute; one
		// request every 100ms keeps a whole run well clear of that.
		limiter: rate.NewLimiter(rate.Every(100*time.Millisecond), 1),
		retry:   policy,
		log:     log,
	}
}

func (c *client) GetLeague(ctx context.Context, leagueID string) (*model.League, error) {
	var parsed sleeperLeague
	if err := c.getJSON(ctx, fmt.Sprintf("/v1/league/%s", leagueID), &parsed); err != nil {
		return nil, fmt.Errorf("error fetching league %s: %w", leagueID, err)
	}
	if parsed.ID == "" {
		return nil, fmt.Errorf("league %s not found", leagueID)
	}
	return parsed.toLeague(), nil
}

func (c *client) GetRosters(ctx context.Context, leagueID string) ([]model.Roster, error) {
	var parsed []sleeperRoster
	if err := c.getJSON(ctx, fmt.Sprintf("/v1/league/%s/rosters", leagueID), &parsed); err != nil {
		return nil, fmt.Errorf("error fetching rosters for league %s: %w", leagueID, err)
	}
	if len(parsed) == 0 {
		return nil, fmt.Errorf("no rosters found for league %s", leagueID)
	}

	rosters := make([]model.Roster, 0, len(parsed))
	for _, r := range parsed {
		rosters = append(rosters, *r.toRoster())
	}
	return rosters, nil
}

func (c *client) GetUsers(ctx context.Context, leagueID string) ([]model.User, error) {
	var parsed []sleeperUser
	if err := c.getJSON(ctx, fmt.Sprintf("/v1/league/%s/users", leagueID), &parsed); err != nil {
		return nil, fmt.Errorf("error fetching users for league %s: %w", leagueID, err)
	}

	users := make([]model.User, 0, len(parsed))
	for _, u := range parsed {
		users = append(users, *u.toUser())
	}
	return users, nil
}

func (c *client) GetMatchups(ctx context.Context, leagueID string, week int) ([]model.Matchup, error) {
	var parsed []sleeperMatchup
	if err := c.getJSON(ctx, fmt.Sprintf("/v1/league/%s/matchups/%d", leagueID, week), &parsed); err != nil {
		return nil, fmt.Errorf("error fetching matchups for league %s week %d: %w", leagueID, week, err)
	}

	matchups := make([]model.Matchup, 0, len(parsed))
	for _, m := range parsed {
		matchups = append(matchups, *m.toMatchup())
	}
	return matchups, nil
}

func (c *client) LoadPlayers(ctx context.Context) ([]model.Player, error) {
	var parsed map[string]sleeperPlayer
	if err := c.getJSON(ctx, "/v1/players/nfl", &parsed); err != nil {
		return nil, fmt.Errorf("error fetching player directory: %w", err)
	}

	// Convert the players into model.Players, dropping entries that have no
	// usable position (coaches, linemen) and the API's own placeholder.
	result := make([]model.Player, 0, len(parsed))
	for id, p := range parsed {
		pos := model.ParsePosition(p.Position)
		if pos == model.POS_UNKNOWN || (p.FirstName == "Player" && p.LastName == "Invalid") {
			continue
		}
		result = append(result, *p.toPlayer(id))
	}

	return result, nil
}

// getJSON issues a GET against the API and decodes the body into target,
// retrying transport errors and retryable statuses per the client's policy.
func (c *client) getJSON(ctx context.Context, path string, target any) error {
	url := c.url + path

	var raw []byte
	err := retry.Do(ctx, c.retry.backoff(), func(ctx context.Context) error {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return fmt.Errorf("error creating http request: %w", err)
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return retry.RetryableError(fmt.Errorf("error sending http request: %w", err))
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			err := fmt.Errorf("unexpected status code: %d", resp.StatusCode)
			if isRetryableStatus(resp.StatusCode) {
				c.log.WithField("url", url).WithField("status", resp.StatusCode).Warn("retrying sleeper request")
				return retry.RetryableError(err)
			}
			return err
		}

		raw, err = io.ReadAll(resp.Body)
		if err != nil {
			return retry.RetryableError(fmt.Errorf("error reading response body: %w", err))
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := jsoniter.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("error parsing response from sleeper: %w", err)
	}
	return nil
}
