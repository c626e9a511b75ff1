package nflverse

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ColdZealDky/sleeper-scripts/model"
)

// NFLverseURL is the host serving the nflverse-data release assets.
const NFLverseURL = "https://github.com"

const playByPlayPath = "/nflverse/nflverse-data/releases/download/pbp/play_by_play_%d.csv"

// Client reads play-by-play data from the nflverse data releases.
type Client interface {
	FieldGoalAttempts(ctx context.Context, season int) ([]model.FieldGoalAttempt, error)
}

type client struct {
	url        string
	httpClient *http.Client
	log        *logrus.Logger
}

func New(log *logrus.Logger) (Client, error) {
	url := NFLverseURL
	if v := os.Getenv("NFLVERSE_URL"); v != "" {
		url = v
	}
	return newClient(url, log), nil
}

func NewForTest(url string) Client {
	return newClient(url, logrus.New())
}

func newClient(url string, log *logrus.Logger) *client {
	return &client{
		url: url,
		// The season files are tens of MB, so allow plenty of time.
		httpClient: &http.Client{Timeout: 5 * time.Minute},
		log:        log,
	}
}

// FieldGoalAttempts streams the season's play-by-play CSV and returns one
// entry per field goal attempt. Attempts with no recorded distance are
// dropped. Columns are located by header name so upstream column reordering
// doesn't break parsing.
func (c *client) FieldGoalAttempts(ctx context.Context, season int) ([]model.FieldGoalAttempt, error) {
	url := c.url + fmt.Sprintf(playByPlayPath, season)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating http request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error fetching play-by-play for %d: %w", season, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code fetching play-by-play for %d: %d", season, resp.StatusCode)
	}

	r := csv.NewReader(resp.Body)
	r.ReuseRecord = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("error reading play-by-play header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, required := range []string{"play_type", "kick_distance", "field_goal_result"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("play-by-play data is missing the %s column", required)
		}
	}

	var attempts []model.FieldGoalAttempt
	var dropped int
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading play-by-play row: %w", err)
		}

		if rec[cols["play_type"]] != "field_goal" {
			continue
		}

		// Distances occasionally come through as floats like "45.0".
		dist, err := strconv.ParseFloat(rec[cols["kick_distance"]], 64)
		if err != nil {
			dropped++
			continue
		}

		attempts = append(attempts, model.FieldGoalAttempt{
			Distance: int(dist),
			Made:     rec[cols["field_goal_result"]] == "made",
		})
	}

	if dropped > 0 {
		c.log.WithField("season", season).WithField("dropped", dropped).
			Warn("dropped field goal attempts with no recorded distance")
	}
	return attempts, nil
}
