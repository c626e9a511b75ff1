package model

import (
	"sort"
)

// SlotRequirements maps a canonical position to the number of lineup slots
// that must be filled at that position. There is no flex slot, so the keys
// are always drawn from the fixed six-position set.
type SlotRequirements map[Position]int

// SlotOrder is the display order for lineup slots.
var SlotOrder = []Position{POS_QB, POS_RB, POS_WR, POS_TE, POS_DEF, POS_K}

// DefaultSlotRequirements returns the fixed lineup shape used when a league
// does not supply a usable count for a position: 1 QB, 2 RB, 3 WR, 1 TE,
// 1 DEF, 1 K.
func DefaultSlotRequirements() SlotRequirements {
	return SlotRequirements{
		POS_QB:  1,
		POS_RB:  2,
		POS_WR:  3,
		POS_TE:  1,
		POS_DEF: 1,
		POS_K:   1,
	}
}

// RequirementsFromLeague derives slot requirements from a league's roster
// position list. Bench, IR and taxi slots are ignored, as is any slot that
// does not normalize into the fixed six-position set (FLEX, SUPER_FLEX and
// friends). A position the league leaves at zero falls back to its default
// count so the result always describes a complete lineup.
func RequirementsFromLeague(rosterPositions []string) SlotRequirements {
	counts := make(SlotRequirements)
	for _, raw := range rosterPositions {
		switch raw {
		case "BN", "IR", "TAXI":
			continue
		}
		pos := ParsePosition(raw)
		if pos == POS_UNKNOWN {
			continue
		}
		counts[pos]++
	}
	for pos, n := range DefaultSlotRequirements() {
		if counts[pos] == 0 {
			counts[pos] = n
		}
	}
	return counts
}

// LineupSlot is one filled lineup spot: the player and the slot they were
// assigned to.
type LineupSlot struct {
	Slot   Position
	Player PlayerScore
}

// Lineup is the selection produced by OptimalLineup plus the summed total.
type Lineup struct {
	Slots []LineupSlot
	Total float64
}

// OptimalLineup picks the highest-scoring eligible players for each required
// slot. Because slots are fixed per position with no substitution, the
// maximum total decomposes independently per position and greedy top-K per
// position is optimal. Sorting is stable, so ties keep pool order. A
// position with fewer eligible players than required contributes what it
// has; a position absent from the pool contributes nothing. The result
// lists slots in SlotOrder.
func OptimalLineup(pool []PlayerScore, required SlotRequirements) Lineup {
	byPos := make(map[Position][]PlayerScore)
	for _, p := range pool {
		if _, ok := required[p.Position]; ok {
			byPos[p.Position] = append(byPos[p.Position], p)
		}
	}
	for _, players := range byPos {
		sort.SliceStable(players, func(i, j int) bool {
			return players[i].Score > players[j].Score
		})
	}

	var lineup Lineup
	for _, pos := range SlotOrder {
		need, ok := required[pos]
		if !ok {
			continue
		}
		candidates := byPos[pos]
		if len(candidates) > need {
			candidates = candidates[:need]
		}
		for _, p := range candidates {
			lineup.Slots = append(lineup.Slots, LineupSlot{Slot: pos, Player: p})
			lineup.Total += p.Score
		}
	}
	return lineup
}
