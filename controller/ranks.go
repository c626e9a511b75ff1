package controller

import (
	"context"

	"github.com/ColdZealDky/sleeper-scripts/model"
)

// PositionRankSeries is one position's weekly rank statistics over a range
// of weeks, plus the averages across the weeks where the statistic existed.
type PositionRankSeries struct {
	Position       model.Position
	Rank           int
	Weeks          []model.WeekRanks
	AverageHighest *float64
	AverageAtRank  *float64
}

func (c *controller) PositionRanks(ctx context.Context, leagueID string, startWeek, endWeek, rank int, positions []model.Position) ([]PositionRankSeries, error) {
	players, err := c.Players(ctx)
	if err != nil {
		return nil, err
	}

	series := make([]PositionRankSeries, len(positions))
	for i, pos := range positions {
		series[i] = PositionRankSeries{Position: pos, Rank: rank}
	}

	for week := startWeek; week <= endWeek; week++ {
		matchups, err := c.sleeper.GetMatchups(ctx, leagueID, week)
		if err != nil {
			c.log.WithError(err).WithField("week", week).Warn("skipping week")
			matchups = nil
		}

		scores := scoresByPosition(matchups, players)
		for i := range series {
			highest, atRank := model.RankScores(scores[series[i].Position], rank)
			series[i].Weeks = append(series[i].Weeks, model.WeekRanks{
				Week:    week,
				Highest: highest,
				AtRank:  atRank,
			})
		}
	}

	for i := range series {
		var highs, atRanks []*float64
		for _, w := range series[i].Weeks {
			highs = append(highs, w.Highest)
			atRanks = append(atRanks, w.AtRank)
		}
		series[i].AverageHighest = model.Mean(highs)
		series[i].AverageAtRank = model.Mean(atRanks)
	}
	return series, nil
}

// scoresByPosition collects every rostered player's score for the week,
// grouped by the player's position.
func scoresByPosition(matchups []model.Matchup, players map[string]model.Player) map[model.Position][]float64 {
	scores := make(map[model.Position][]float64)
	for _, m := range matchups {
		for _, id := range m.PlayerIDs {
			p, ok := players[id]
			if !ok {
				continue
			}
			scores[p.Position] = append(scores[p.Position], m.PlayerPoints[id])
		}
	}
	return scores
}
