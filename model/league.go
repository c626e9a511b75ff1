package model

// League carries the metadata needed to derive lineup requirements.
type League struct {
	ID              string
	Name            string
	Season          string
	RosterPositions []string
}

// Roster is a fantasy team's drafted set for the season along with its
// owner and division label.
type Roster struct {
	ID       int
	OwnerID  string
	Division string
}

// User is a league member. TeamName comes from user metadata and is often
// empty, in which case DisplayName is the fallback.
type User struct {
	ID          string
	DisplayName string
	TeamName    string
}

// Name returns the team name when the user set one, else the display name,
// else the user ID.
func (u *User) Name() string {
	if u.TeamName != "" {
		return u.TeamName
	}
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.ID
}

// Matchup is one roster's side of a weekly scoring comparison. PlayerIDs is
// everyone rostered that week (starters, bench, IR); PlayerPoints maps
// player ID to that week's score. Rosters sharing a MatchupID play each other.
type Matchup struct {
	RosterID     int
	MatchupID    int
	Points       float64
	PlayerIDs    []string
	PlayerPoints map[string]float64
}
