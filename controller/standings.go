package controller

import (
	"context"
	"sort"

	"github.com/ColdZealDky/sleeper-scripts/model"
)

// StandingsReport is the cumulative standings through a given week. Names
// maps roster IDs to owner display names for presentation.
type StandingsReport struct {
	LeagueID    string
	LeagueName  string
	ThroughWeek int
	Standings   []model.Standing
	Names       map[int]string
}

func (c *controller) Standings(ctx context.Context, leagueID string, maxWeek int) (*StandingsReport, error) {
	league, err := c.sleeper.GetLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	rosters, err := c.sleeper.GetRosters(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	users, err := c.sleeper.GetUsers(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	standings := model.NewStandings(rosters)
	for week := 1; week <= maxWeek; week++ {
		matchups, err := c.sleeper.GetMatchups(ctx, leagueID, week)
		if err != nil {
			// One bad week shouldn't lose the rest of the season.
			c.log.WithError(err).WithField("week", week).Warn("skipping week")
			continue
		}
		if len(matchups) == 0 {
			c.log.WithField("week", week).Info("no matchups, week not played yet")
			continue
		}

		for _, m := range model.AccumulateWeek(standings, matchups) {
			c.log.WithFields(map[string]any{
				"week":    week,
				"roster":  m.RosterID,
				"matchup": m.MatchupID,
			}).Warn("matchup entry has no resolvable opponent, not counted")
		}
	}

	report := &StandingsReport{
		LeagueID:    leagueID,
		LeagueName:  league.Name,
		ThroughWeek: maxWeek,
		Names:       ownerNames(rosters, users),
	}
	for _, s := range standings {
		report.Standings = append(report.Standings, *s)
	}
	sort.Slice(report.Standings, func(i, j int) bool {
		a, b := report.Standings[i], report.Standings[j]
		if a.Overall.Wins != b.Overall.Wins {
			return a.Overall.Wins > b.Overall.Wins
		}
		return a.RosterID < b.RosterID
	})
	return report, nil
}
