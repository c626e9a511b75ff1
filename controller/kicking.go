package controller

import (
	"context"

	"github.com/ColdZealDky/sleeper-scripts/model"
)

func (c *controller) FieldGoalSummary(ctx context.Context, season int) ([]model.BucketSummary, error) {
	attempts, err := c.nflverse.FieldGoalAttempts(ctx, season)
	if err != nil {
		return nil, err
	}
	c.log.WithFields(map[string]any{
		"season":   season,
		"attempts": len(attempts),
	}).Info("loaded field goal attempts")

	return model.SummarizeFieldGoals(attempts, model.DefaultDistanceBuckets()), nil
}
