package controller

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/ColdZealDky/sleeper-scripts/model"
	"github.com/ColdZealDky/sleeper-scripts/nflverse"
	"github.com/ColdZealDky/sleeper-scripts/sleeper"
	"github.com/ColdZealDky/sleeper-scripts/store"
)

// C encapsulates the analysis logic without worrying about the CLI layer.
type C interface {
	// Players returns the player directory keyed by player ID, from the
	// local cache when it is fresh and from the Sleeper API otherwise.
	Players(ctx context.Context) (map[string]model.Player, error)

	// BestLineups computes the optimal lineup for every roster in the
	// league for one week, sorted by lineup total.
	BestLineups(ctx context.Context, leagueID string, week int) (*WeekLineups, error)

	// Standings accumulates every roster's overall and divisional record
	// over weeks 1 through maxWeek.
	Standings(ctx context.Context, leagueID string, maxWeek int) (*StandingsReport, error)

	// PositionRanks extracts the weekly highest score and the score at the
	// given rank for each position over a range of weeks.
	PositionRanks(ctx context.Context, leagueID string, startWeek, endWeek, rank int, positions []model.Position) ([]PositionRankSeries, error)

	// FieldGoalSummary aggregates a season's field goal attempts into
	// distance buckets.
	FieldGoalSummary(ctx context.Context, season int) ([]model.BucketSummary, error)
}

type controller struct {
	sleeper  sleeper.Client
	nflverse nflverse.Client
	players  *store.PlayerCache
	log      *logrus.Logger
}

func New(sleeper sleeper.Client, nflverse nflverse.Client, players *store.PlayerCache, log *logrus.Logger) (C, error) {
	c := &controller{
		sleeper:  sleeper,
		nflverse: nflverse,
		players:  players,
		log:      log,
	}
	return c, nil
}
