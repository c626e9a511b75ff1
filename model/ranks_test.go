package model

import "testing"

func TestRankScores(t *testing.T) {
	tests := []struct {
		name    string
		scores  []float64
		rank    int
		highest *float64
		atRank  *float64
	}{
		{
			name:    "full field",
			scores:  []float64{3.2, 18.4, 9.9, 12.0, 7.5, 11.1, 2.0, 15.6, 8.8, 10.0, 6.1, 4.4, 1.0},
			rank:    12,
			highest: f(18.4),
			atRank:  f(2.0),
		},
		{
			name:    "fewer entries than rank reports absent",
			scores:  []float64{8, 7, 6, 5, 4, 3, 2, 1},
			rank:    12,
			highest: f(8),
			atRank:  nil,
		},
		{
			name:    "no scores at all",
			scores:  nil,
			rank:    12,
			highest: nil,
			atRank:  nil,
		},
		{
			name:    "rank one equals highest",
			scores:  []float64{5, 9},
			rank:    1,
			highest: f(9),
			atRank:  f(9),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			highest, atRank := RankScores(tc.scores, tc.rank)
			assertFloatPtr(t, "highest", tc.highest, highest)
			assertFloatPtr(t, "atRank", tc.atRank, atRank)
		})
	}
}

func TestRankScores_doesNotMutateInput(t *testing.T) {
	scores := []float64{1, 3, 2}
	RankScores(scores, 2)
	if scores[0] != 1 || scores[1] != 3 || scores[2] != 2 {
		t.Errorf("input slice was reordered: %v", scores)
	}
}

func TestMean(t *testing.T) {
	if got := Mean([]*float64{f(10), nil, f(20)}); got == nil || *got != 15 {
		t.Errorf("expected mean 15, got %v", got)
	}
	if got := Mean([]*float64{nil, nil}); got != nil {
		t.Errorf("all-absent mean should be nil, got %v", *got)
	}
	if got := Mean(nil); got != nil {
		t.Errorf("empty mean should be nil, got %v", *got)
	}
}

func f(v float64) *float64 {
	return &v
}

func assertFloatPtr(t *testing.T, label string, expected, got *float64) {
	t.Helper()
	if expected == nil {
		if got != nil {
			t.Errorf("%s: expected absent, got %v", label, *got)
		}
		return
	}
	if got == nil {
		t.Errorf("%s: expected %v, got absent", label, *expected)
		return
	}
	if *got != *expected {
		t.Errorf("%s: expected %v, got %v", label, *expected, *got)
	}
}
