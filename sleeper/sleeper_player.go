package sleeper

import (
	"strings"

	"github.com/ColdZealDky/sleeper-scripts/model"
)

type sleeperPlayer struct {
	ID        string `json:"player_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
	Position  string `json:"position"`
	Team      string `json:"team"`
	Active    bool   `json:"active"`
}

// toPlayer converts a directory entry. The entry's own player_id field is
// sometimes empty, so the directory map key is passed in as the canonical ID.
// Team defenses have no full_name; their ID doubles as the team code.
func (p *sleeperPlayer) toPlayer(id string) *model.Player {
	if p.ID != "" {
		id = p.ID
	}

	full := strings.TrimSpace(p.FullName)
	if full == "" {
		full = strings.TrimSpace(p.FirstName + " " + p.LastName)
	}

	return &model.Player{
		ID:        id,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		FullName:  full,
		Position:  model.ParsePosition(p.Position),
		Team:      p.Team,
		Active:    p.Active,
	}
}
