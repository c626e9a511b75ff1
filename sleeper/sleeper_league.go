package sleeper

import (
	"strconv"

	"github.com/ColdZealDky/sleeper-scripts/model"
)

type sleeperLeague struct {
	ID              string   `json:"league_id"`
	Name            string   `json:"name"`
	Season          string   `json:"season"`
	RosterPositions []string `json:"roster_positions"`
}

func (l *sleeperLeague) toLeague() *model.League {
	return &model.League{
		ID:              l.ID,
		Name:            l.Name,
		Season:          l.Season,
		RosterPositions: l.RosterPositions,
	}
}

type sleeperRoster struct {
	RosterID int    `json:"roster_id"`
	OwnerID  string `json:"owner_id"`
	Settings struct {
		Division *int `json:"division"`
	} `json:"settings"`
}

// Leagues without divisions leave the setting out entirely; those rosters
// all share the "Unknown" label so divisional records still accumulate
// consistently.
func (r *sleeperRoster) toRoster() *model.Roster {
	division := "Unknown"
	if r.Settings.Division != nil {
		division = strconv.Itoa(*r.Settings.Division)
	}
	return &model.Roster{
		ID:       r.RosterID,
		OwnerID:  r.OwnerID,
		Division: division,
	}
}

type sleeperUser struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Metadata    *struct {
		TeamName string `json:"team_name"`
	} `json:"metadata"`
}

func (u *sleeperUser) toUser() *model.User {
	user := &model.User{
		ID:          u.UserID,
		DisplayName: u.DisplayName,
	}
	if u.Metadata != nil {
		user.TeamName = u.Metadata.TeamName
	}
	return user
}

type sleeperMatchup struct {
	RosterID      int                 `json:"roster_id"`
	MatchupID     *int                `json:"matchup_id"`
	Points        float64             `json:"points"`
	Players       []string            `json:"players"`
	PlayersPoints map[string]*float64 `json:"players_points"`
}

func (m *sleeperMatchup) toMatchup() *model.Matchup {
	// A nil matchup_id means the roster has no scoring group this week
	// (bye or league oddity). A negative per-roster ID keeps the entry
	// from ever pairing with another.
	matchupID := -m.RosterID
	if m.MatchupID != nil {
		matchupID = *m.MatchupID
	}

	points := make(map[string]float64, len(m.PlayersPoints))
	for id, score := range m.PlayersPoints {
		if score == nil {
			points[id] = 0
			continue
		}
		points[id] = *score
	}

	return &model.Matchup{
		RosterID:     m.RosterID,
		MatchupID:    matchupID,
		Points:       m.Points,
		PlayerIDs:    m.Players,
		PlayerPoints: points,
	}
}
