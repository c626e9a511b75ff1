package model

import (
	"strings"
)

// Player is read-only reference data for a run: who a player ID belongs to
// and what position they play.
type Player struct {
	ID        string
	FirstName string
	LastName  string
	FullName  string
	Position  Position
	Team      string
	Active    bool
}

// DisplayName returns the best printable name for the player: the full name
// when the database has one, a joined first/last otherwise, and the raw ID
// as a last resort.
func (p *Player) DisplayName() string {
	if p.FullName != "" {
		return p.FullName
	}
	name := strings.TrimSpace(p.FirstName + " " + p.LastName)
	if name != "" {
		return name
	}
	return p.ID
}

// PlayerScore is one player's fantasy score in a single week.
type PlayerScore struct {
	PlayerID string
	Name     string
	Position Position
	Score    float64
}
