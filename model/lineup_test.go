package model

import (
	"reflect"
	"testing"
)

func TestRequirementsFromLeague(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected SlotRequirements
	}{
		{
			name:     "empty falls back to defaults",
			input:    nil,
			expected: DefaultSlotRequirements(),
		},
		{
			name:  "bench and flex slots ignored",
			input: []string{"QB", "RB", "RB", "WR", "WR", "WR", "TE", "FLEX", "DEF", "K", "BN", "BN", "BN", "IR", "TAXI"},
			expected: SlotRequirements{
				POS_QB: 1, POS_RB: 2, POS_WR: 3, POS_TE: 1, POS_DEF: 1, POS_K: 1,
			},
		},
		{
			name:  "aliases normalized and zero counts backfilled",
			input: []string{"QB", "QB", "RB", "WR", "DST", "PK"},
			expected: SlotRequirements{
				POS_QB: 2, POS_RB: 1, POS_WR: 1, POS_TE: 1, POS_DEF: 1, POS_K: 1,
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := RequirementsFromLeague(tc.input)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestOptimalLineup(t *testing.T) {
	pool := []PlayerScore{
		{PlayerID: "1", Position: POS_QB, Score: 20},
		{PlayerID: "2", Position: POS_RB, Score: 15},
		{PlayerID: "3", Position: POS_RB, Score: 10},
		{PlayerID: "4", Position: POS_RB, Score: 5},
	}
	required := SlotRequirements{POS_QB: 1, POS_RB: 2}

	lineup := OptimalLineup(pool, required)

	if lineup.Total != 45 {
		t.Errorf("expected total 45, got %v", lineup.Total)
	}
	expected := []LineupSlot{
		{Slot: POS_QB, Player: pool[0]},
		{Slot: POS_RB, Player: pool[1]},
		{Slot: POS_RB, Player: pool[2]},
	}
	if !reflect.DeepEqual(lineup.Slots, expected) {
		t.Errorf("expected slots %v, got %v", expected, lineup.Slots)
	}
}

func TestOptimalLineup_shortPositions(t *testing.T) {
	pool := []PlayerScore{
		{PlayerID: "1", Position: POS_WR, Score: 12.5},
		{PlayerID: "2", Position: POS_QB, Score: 18},
	}
	required := DefaultSlotRequirements()

	lineup := OptimalLineup(pool, required)

	// 1 of 3 WR slots filled, 1 QB, nothing else available. No padding, no error.
	if len(lineup.Slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(lineup.Slots))
	}
	if lineup.Total != 30.5 {
		t.Errorf("expected total 30.5, got %v", lineup.Total)
	}
}

func TestOptimalLineup_emptyPool(t *testing.T) {
	lineup := OptimalLineup(nil, DefaultSlotRequirements())
	if len(lineup.Slots) != 0 || lineup.Total != 0 {
		t.Errorf("expected empty lineup, got %+v", lineup)
	}
}

func TestOptimalLineup_ignoresPositionsOutsideRequirements(t *testing.T) {
	pool := []PlayerScore{
		{PlayerID: "1", Position: POS_K, Score: 30},
		{PlayerID: "2", Position: POS_QB, Score: 10},
	}
	lineup := OptimalLineup(pool, SlotRequirements{POS_QB: 1})
	if len(lineup.Slots) != 1 || lineup.Slots[0].Player.PlayerID != "2" {
		t.Errorf("expected only the QB to be selected, got %+v", lineup.Slots)
	}
}

func TestOptimalLineup_tiesKeepPoolOrder(t *testing.T) {
	pool := []PlayerScore{
		{PlayerID: "a", Position: POS_RB, Score: 10},
		{PlayerID: "b", Position: POS_RB, Score: 10},
		{PlayerID: "c", Position: POS_RB, Score: 10},
	}
	lineup := OptimalLineup(pool, SlotRequirements{POS_RB: 2})
	if lineup.Slots[0].Player.PlayerID != "a" || lineup.Slots[1].Player.PlayerID != "b" {
		t.Errorf("stable sort should keep pool order on ties, got %+v", lineup.Slots)
	}
}

// Verifies the greedy selection is never beaten by another selection that
// respects the same per-position counts.
func TestOptimalLineup_greedyBeatsAlternatives(t *testing.T) {
	pool := []PlayerScore{
		{PlayerID: "1", Position: POS_QB, Score: 22.1},
		{PlayerID: "2", Position: POS_QB, Score: 17.3},
		{PlayerID: "3", Position: POS_RB, Score: 14.2},
		{PlayerID: "4", Position: POS_RB, Score: 9.8},
		{PlayerID: "5", Position: POS_RB, Score: 21.0},
		{PlayerID: "6", Position: POS_WR, Score: 3.4},
		{PlayerID: "7", Position: POS_WR, Score: 11.6},
	}
	required := SlotRequirements{POS_QB: 1, POS_RB: 2, POS_WR: 1}

	best := OptimalLineup(pool, required)

	// Enumerate every valid selection and check none scores higher.
	var maxTotal float64
	var check func(posIdx int, chosen map[string]bool, total float64)
	positions := []Position{POS_QB, POS_RB, POS_WR}
	var eligible = func(pos Position) []PlayerScore {
		var out []PlayerScore
		for _, p := range pool {
			if p.Position == pos {
				out = append(out, p)
			}
		}
		return out
	}
	var pick func(players []PlayerScore, need int, start int, chosen map[string]bool, total float64, next func(float64))
	pick = func(players []PlayerScore, need int, start int, chosen map[string]bool, total float64, next func(float64)) {
		if need == 0 {
			next(total)
			return
		}
		for i := start; i < len(players); i++ {
			pick(players, need-1, i+1, chosen, total+players[i].Score, next)
		}
	}
	check = func(posIdx int, chosen map[string]bool, total float64) {
		if posIdx == len(positions) {
			if total > maxTotal {
				maxTotal = total
			}
			return
		}
		pos := positions[posIdx]
		pick(eligible(pos), required[pos], 0, chosen, total, func(t float64) {
			check(posIdx+1, chosen, t)
		})
	}
	check(0, map[string]bool{}, 0)

	if best.Total < maxTotal {
		t.Errorf("greedy total %v is below best enumerated total %v", best.Total, maxTotal)
	}
}

func TestOptimalLineup_capsPerPosition(t *testing.T) {
	pool := []PlayerScore{
		{PlayerID: "1", Position: POS_TE, Score: 9},
		{PlayerID: "2", Position: POS_TE, Score: 8},
		{PlayerID: "3", Position: POS_TE, Score: 7},
	}
	required := DefaultSlotRequirements()

	lineup := OptimalLineup(pool, required)

	counts := make(map[Position]int)
	for _, s := range lineup.Slots {
		counts[s.Slot]++
		if s.Player.Position != s.Slot {
			t.Errorf("player %s at slot %s has position %s", s.Player.PlayerID, s.Slot, s.Player.Position)
		}
	}
	for pos, n := range counts {
		if n > required[pos] {
			t.Errorf("position %s has %d players, requirement is %d", pos, n, required[pos])
		}
	}
}
