package model

// FieldGoalAttempt is one field-goal play: the kick distance in yards and
// whether it was made.
type FieldGoalAttempt struct {
	Distance int
	Made     bool
}

// DistanceBucket is a half-open distance range [Min, Max).
type DistanceBucket struct {
	Label string
	Min   int
	Max   int
}

// Contains reports whether a distance falls inside the bucket.
func (b DistanceBucket) Contains(distance int) bool {
	return distance >= b.Min && distance < b.Max
}

// DefaultDistanceBuckets returns the fixed buckets used for field-goal
// analysis. The boundaries partition [0, 99) into six half-open ranges.
func DefaultDistanceBuckets() []DistanceBucket {
	return []DistanceBucket{
		{Label: "<30", Min: 0, Max: 29},
		{Label: "30-39", Min: 29, Max: 39},
		{Label: "40-49", Min: 39, Max: 49},
		{Label: "50-54", Min: 49, Max: 54},
		{Label: "55-59", Min: 54, Max: 59},
		{Label: "60+", Min: 59, Max: 99},
	}
}

// BucketSummary counts attempts and makes for one distance bucket.
type BucketSummary struct {
	Bucket   DistanceBucket
	Attempts int
	Makes    int
}

// SuccessRate is makes/attempts as a percentage, or nil when the bucket has
// no attempts. Absent is distinct from zero: a bucket nobody kicked from has
// no rate, a bucket where every kick missed has rate 0.
func (s BucketSummary) SuccessRate() *float64 {
	if s.Attempts == 0 {
		return nil
	}
	rate := float64(s.Makes) / float64(s.Attempts) * 100
	return &rate
}

// SummarizeFieldGoals partitions attempts into the given buckets and counts
// attempts and makes per bucket. Each attempt lands in at most one bucket;
// distances outside every bucket are dropped.
func SummarizeFieldGoals(attempts []FieldGoalAttempt, buckets []DistanceBucket) []BucketSummary {
	summaries := make([]BucketSummary, len(buckets))
	for i, b := range buckets {
		summaries[i].Bucket = b
	}
	for _, a := range attempts {
		for i := range summaries {
			if summaries[i].Bucket.Contains(a.Distance) {
				summaries[i].Attempts++
				if a.Made {
					summaries[i].Makes++
				}
				break
			}
		}
	}
	return summaries
}
