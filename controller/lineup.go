package controller

import (
	"context"
	"fmt"
	"sort"

	"github.com/ColdZealDky/sleeper-scripts/model"
)

// RosterLineup is one roster's optimal lineup for the week.
type RosterLineup struct {
	RosterID int
	Owner    string
	Lineup   model.Lineup
}

// WeekLineups is the week's full best-lineup report, sorted by lineup total
// descending with ties broken by owner name.
type WeekLineups struct {
	LeagueID   string
	LeagueName string
	Week       int
	Required   model.SlotRequirements
	Rosters    []RosterLineup
}

func (c *controller) BestLineups(ctx context.Context, leagueID string, week int) (*WeekLineups, error) {
	league, err := c.sleeper.GetLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	required := model.RequirementsFromLeague(league.RosterPositions)

	rosters, err := c.sleeper.GetRosters(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	users, err := c.sleeper.GetUsers(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	players, err := c.Players(ctx)
	if err != nil {
		return nil, err
	}

	matchups, err := c.sleeper.GetMatchups(ctx, leagueID, week)
	if err != nil {
		return nil, err
	}
	if len(matchups) == 0 {
		return nil, fmt.Errorf("no matchups for league %s week %d", leagueID, week)
	}

	names := ownerNames(rosters, users)

	result := &WeekLineups{
		LeagueID:   leagueID,
		LeagueName: league.Name,
		Week:       week,
		Required:   required,
	}
	for _, m := range matchups {
		pool := c.scorePool(m, players)
		result.Rosters = append(result.Rosters, RosterLineup{
			RosterID: m.RosterID,
			Owner:    names[m.RosterID],
			Lineup:   model.OptimalLineup(pool, required),
		})
	}

	sort.SliceStable(result.Rosters, func(i, j int) bool {
		a, b := result.Rosters[i], result.Rosters[j]
		if a.Lineup.Total != b.Lineup.Total {
			return a.Lineup.Total > b.Lineup.Total
		}
		return a.Owner < b.Owner
	})
	return result, nil
}

// scorePool turns a matchup entry into the roster's pool of scored players.
// Players missing from the directory can't be assigned a position, so they
// are skipped.
func (c *controller) scorePool(m model.Matchup, players map[string]model.Player) []model.PlayerScore {
	pool := make([]model.PlayerScore, 0, len(m.PlayerIDs))
	for _, id := range m.PlayerIDs {
		p, ok := players[id]
		if !ok {
			c.log.WithField("player", id).Debug("skipping player missing from directory")
			continue
		}
		pool = append(pool, model.PlayerScore{
			PlayerID: id,
			Name:     p.DisplayName(),
			Position: p.Position,
			Score:    m.PlayerPoints[id],
		})
	}
	return pool
}

// ownerNames maps each roster ID to its best display name: the owner's team
// name or display name when the owner is known, a roster placeholder
// otherwise.
func ownerNames(rosters []model.Roster, users []model.User) map[int]string {
	byUser := make(map[string]string, len(users))
	for i := range users {
		byUser[users[i].ID] = users[i].Name()
	}

	names := make(map[int]string, len(rosters))
	for _, r := range rosters {
		if name, ok := byUser[r.OwnerID]; ok {
			names[r.ID] = name
		} else {
			names[r.ID] = fmt.Sprintf("Roster %d", r.ID)
		}
	}
	return names
}
