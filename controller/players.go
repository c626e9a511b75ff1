package controller

import (
	"context"
	"fmt"

	"github.com/ColdZealDky/sleeper-scripts/model"
)

func (c *controller) Players(ctx context.Context) (map[string]model.Player, error) {
	if c.players.Fresh() {
		players, err := c.players.Load()
		if err == nil {
			c.log.WithField("players", len(players)).Debug("loaded player directory from cache")
			return players, nil
		}
		// An unreadable cache isn't fatal, the API still has the data.
		c.log.WithError(err).Warn("ignoring unreadable player cache")
	}

	players, err := c.sleeper.LoadPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading player directory: %w", err)
	}
	if err := c.players.Save(players); err != nil {
		c.log.WithError(err).Warn("error caching player directory")
	}

	byID := make(map[string]model.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}
	return byID, nil
}
