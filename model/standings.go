package model

// Record is a win/loss/tie counter.
type Record struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Ties   int `json:"ties"`
}

// Standing is a roster's cumulative record plus the same counters restricted
// to games against divisional opponents.
type Standing struct {
	RosterID   int    `json:"roster_id"`
	Division   string `json:"division"`
	Overall    Record `json:"record"`
	Divisional Record `json:"division_record"`
}

// NewStandings builds an empty standings table keyed by roster ID, carrying
// each roster's division label for the divisional counters.
func NewStandings(rosters []Roster) map[int]*Standing {
	standings := make(map[int]*Standing, len(rosters))
	for _, r := range rosters {
		standings[r.ID] = &Standing{RosterID: r.ID, Division: r.Division}
	}
	return standings
}

// AccumulateWeek applies one week of matchups to the standings. Matchup
// entries sharing a MatchupID are treated as the two sides of one game and
// recorded exactly once per pair: strictly higher points is a win for that
// side and a loss for the other, equal points a tie for both. When both
// rosters carry the same division label the divisional counters move too.
//
// Entries whose opponent cannot be resolved are returned instead of being
// counted, so the caller can log them and continue. This covers groups with
// a single entry (bye weeks) and groups with more than two entries
// (multi-team scoring groups), neither of which this pairing model handles.
func AccumulateWeek(standings map[int]*Standing, matchups []Matchup) []Matchup {
	byGroup := make(map[int][]Matchup)
	for _, m := range matchups {
		byGroup[m.MatchupID] = append(byGroup[m.MatchupID], m)
	}

	var unresolved []Matchup
	for _, group := range byGroup {
		if len(group) != 2 {
			unresolved = append(unresolved, group...)
			continue
		}
		a, b := group[0], group[1]
		sa, okA := standings[a.RosterID]
		sb, okB := standings[b.RosterID]
		if !okA || !okB {
			unresolved = append(unresolved, a, b)
			continue
		}

		recordResult(&sa.Overall, &sb.Overall, a.Points, b.Points)
		if sa.Division == sb.Division {
			recordResult(&sa.Divisional, &sb.Divisional, a.Points, b.Points)
		}
	}
	return unresolved
}

func recordResult(a, b *Record, aPoints, bPoints float64) {
	switch {
	case aPoints > bPoints:
		a.Wins++
		b.Losses++
	case aPoints < bPoints:
		a.Losses++
		b.Wins++
	default:
		a.Ties++
		b.Ties++
	}
}
