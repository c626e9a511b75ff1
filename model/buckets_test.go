package model

import "testing"

func TestSummarizeFieldGoals(t *testing.T) {
	attempts := []FieldGoalAttempt{
		{Distance: 20, Made: true},
		{Distance: 28, Made: true},
		{Distance: 29, Made: false}, // boundary: first bucket is [0,29)
		{Distance: 35, Made: true},
		{Distance: 48, Made: false},
		{Distance: 52, Made: true},
		{Distance: 58, Made: false},
		{Distance: 61, Made: true},
		{Distance: 66, Made: false},
	}

	summaries := SummarizeFieldGoals(attempts, DefaultDistanceBuckets())

	expected := []struct {
		label    string
		attempts int
		makes    int
	}{
		{"<30", 2, 2},
		{"30-39", 2, 1},
		{"40-49", 1, 0},
		{"50-54", 1, 1},
		{"55-59", 1, 0},
		{"60+", 2, 1},
	}
	for i, e := range expected {
		s := summaries[i]
		if s.Bucket.Label != e.label || s.Attempts != e.attempts || s.Makes != e.makes {
			t.Errorf("bucket %d: expected %s %d/%d, got %s %d/%d",
				i, e.label, e.makes, e.attempts, s.Bucket.Label, s.Makes, s.Attempts)
		}
	}
}

// The buckets are half-open and adjacent, so every distance in [0,99) lands
// in exactly one bucket and makes never exceed attempts.
func TestDefaultDistanceBuckets_partition(t *testing.T) {
	buckets := DefaultDistanceBuckets()
	for d := 0; d < 99; d++ {
		matches := 0
		for _, b := range buckets {
			if b.Contains(d) {
				matches++
			}
		}
		if matches != 1 {
			t.Errorf("distance %d falls into %d buckets", d, matches)
		}
	}
}

func TestSummarizeFieldGoals_makesNeverExceedAttempts(t *testing.T) {
	attempts := []FieldGoalAttempt{
		{Distance: 25, Made: true},
		{Distance: 25, Made: true},
		{Distance: 25, Made: false},
	}
	for _, s := range SummarizeFieldGoals(attempts, DefaultDistanceBuckets()) {
		if s.Makes > s.Attempts {
			t.Errorf("bucket %s: makes %d > attempts %d", s.Bucket.Label, s.Makes, s.Attempts)
		}
	}
}

func TestBucketSummary_successRate(t *testing.T) {
	s := BucketSummary{Attempts: 4, Makes: 3}
	if rate := s.SuccessRate(); rate == nil || *rate != 75 {
		t.Errorf("expected 75, got %v", rate)
	}

	empty := BucketSummary{}
	if rate := empty.SuccessRate(); rate != nil {
		t.Errorf("no attempts should have an undefined rate, got %v", *rate)
	}
}

func TestSummarizeFieldGoals_outOfRangeDropped(t *testing.T) {
	summaries := SummarizeFieldGoals([]FieldGoalAttempt{{Distance: 99, Made: true}}, DefaultDistanceBuckets())
	for _, s := range summaries {
		if s.Attempts != 0 {
			t.Errorf("99-yard attempt should not be bucketed, found in %s", s.Bucket.Label)
		}
	}
}
