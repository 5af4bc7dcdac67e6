package cmd

import (
	"testing"

	"predictBot/domain"

	"github.com/stretchr/testify/assert"
)

func TestRenderPrediction(t *testing.T) {
	got := renderPrediction(domain.PredictionResult{
		LastObserved: 3,
		Shortlist: []domain.ScoredCandidate{
			{Number: 3, Score: 4, Category: domain.CategorySmall},
			{Number: 5, Score: 1, Category: domain.CategoryBig},
		},
		Category: domain.CategorySmall,
	})

	want := "🎯 Prediction Based on Last Number 3:\n\n" +
		"Top Predicted Numbers:\n" +
		"1. 3 (Small)\n" +
		"2. 5 (Big)\n" +
		"\n➡️ Prediction Bet on : SMALL\n"
	assert.Equal(t, want, got)
}
