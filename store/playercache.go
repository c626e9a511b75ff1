package store

import (
	"fmt"
	"os"
	"time"

	"github.com/itbasis/go-clock"
	jsoniter "github.com/json-iterator/go"

	"github.com/ColdZealDky/sleeper-scripts/model"
)

// DefaultPlayerCachePath is where the player directory is cached between
// runs, relative to the working directory.
const DefaultPlayerCachePath = "player_database.json"

const defaultMaxAge = 24 * time.Hour

// PlayerCache persists the Sleeper player directory as a single JSON
// document keyed by player ID. The directory is large and changes slowly,
// so a day-old copy is considered fresh.
type PlayerCache struct {
	path   string
	maxAge time.Duration
	clock  clock.Clock
}

func NewPlayerCache(path string, clock clock.Clock) *PlayerCache {
	return &PlayerCache{
		path:   path,
		maxAge: defaultMaxAge,
		clock:  clock,
	}
}

// Fresh reports whether a cached copy exists and was written recently
// enough to use without refetching.
func (c *PlayerCache) Fresh() bool {
	info, err := os.Stat(c.path)
	if err != nil {
		return false
	}
	return c.clock.Now().Sub(info.ModTime()) < c.maxAge
}

func (c *PlayerCache) Load() (map[string]model.Player, error) {
	b, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("error reading player cache %s: %w", c.path, err)
	}

	players := make(map[string]model.Player)
	if err := jsoniter.Unmarshal(b, &players); err != nil {
		return nil, fmt.Errorf("error parsing player cache %s: %w", c.path, err)
	}
	return players, nil
}

func (c *PlayerCache) Save(players []model.Player) error {
	byID := make(map[string]model.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}

	b, err := jsoniter.MarshalIndent(byID, "", "  ")
	if err != nil {
		return fmt.Errorf("error serializing player cache: %w", err)
	}
	if err := os.WriteFile(c.path, b, 0644); err != nil {
		return fmt.Errorf("error writing player cache %s: %w", c.path, err)
	}
	return nil
}
