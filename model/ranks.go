package model

import (
	"sort"
)

// WeekRanks reports the rank statistics for one position in one week.
// Highest is nil when the week had no scores at all; AtRank is nil whenever
// fewer scores exist than the requested rank, so downstream averages can
// exclude the week instead of counting a zero.
type WeekRanks struct {
	Week    int
	Highest *float64
	AtRank  *float64
}

// RankScores sorts a week's scores for one position in descending order and
// returns the maximum and the score at the given 1-based rank.
func RankScores(scores []float64, rank int) (highest, atRank *float64) {
	if len(scores) == 0 {
		return nil, nil
	}
	sorted := make([]float64, len(scores))
	copy(sorted, scores)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))

	highest = &sorted[0]
	if rank >= 1 && len(sorted) >= rank {
		atRank = &sorted[rank-1]
	}
	return highest, atRank
}

// Mean averages the non-nil values, returning nil when every value is
// absent.
func Mean(values []*float64) *float64 {
	var sum float64
	var n int
	for _, v := range values {
		if v == nil {
			continue
		}
		sum += *v
		n++
	}
	if n == 0 {
		return nil
	}
	avg := sum / float64(n)
	return &avg
}
