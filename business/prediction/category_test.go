package prediction

import (
	"testing"

	"predictBot/domain"

	"github.com/stretchr/testify/assert"
)

func shortlistOf(values ...int) []domain.ScoredCandidate {
	out := make([]domain.ScoredCandidate, 0, len(values))
	for _, v := range values {
		out = append(out, domain.ScoredCandidate{Number: v, Score: 1, Category: domain.CategoryOf(v)})
	}
	return out
}

func TestCountCategories(t *testing.T) {
	small, big := countCategories(shortlistOf(1, 2, 3, 8))
	assert.Equal(t, 3, small)
	assert.Equal(t, 1, big)

	small, big = countCategories(shortlistOf(4, 5))
	assert.Equal(t, 1, small)
	assert.Equal(t, 1, big)
}

func TestTransition_CountDriven(t *testing.T) {
	tests := []struct {
		name      string
		shortlist []domain.ScoredCandidate
		start     domain.Category
		want      domain.Category
	}{
		{"small majority recommends BIG", shortlistOf(1, 2, 3, 8), domain.CategorySmall, domain.CategoryBig},
		{"big majority recommends SMALL", shortlistOf(6, 7, 8, 9), domain.CategoryBig, domain.CategorySmall},
		{"tie recommends SMALL", shortlistOf(0, 9), domain.CategoryBig, domain.CategorySmall},
		{"empty shortlist recommends SMALL", nil, domain.CategoryBig, domain.CategorySmall},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := domain.UserPredictionState{Category: tt.start}
			small, big := countCategories(tt.shortlist)

			flipped := transition(&st, small, big)

			assert.False(t, flipped)
			assert.Equal(t, tt.want, st.Category)
			assert.False(t, st.PendingLoss)
		})
	}
}

func TestTransition_PendingLossFlipsAndIgnoresCounts(t *testing.T) {
	for _, start := range []domain.Category{domain.CategoryBig, domain.CategorySmall} {
		// counts that would otherwise pick BIG
		st := domain.UserPredictionState{Category: start, PendingLoss: true}

		flipped := transition(&st, 4, 0)

		assert.True(t, flipped)
		assert.Equal(t, start.Opposite(), st.Category)
		assert.False(t, st.PendingLoss)
	}
}

func TestApplyFeedback(t *testing.T) {
	st := domain.DefaultUserPredictionState(1)

	applyFeedback(&st, domain.OutcomeWin)
	assert.Equal(t, domain.DefaultUserPredictionState(1), st)

	applyFeedback(&st, domain.OutcomeLoss)
	assert.True(t, st.PendingLoss)
	assert.Equal(t, domain.CategoryBig, st.Category)

	// a second loss before the next prediction is not double-applied
	applyFeedback(&st, domain.OutcomeLoss)
	assert.True(t, st.PendingLoss)
	transition(&st, 0, 0)
	assert.Equal(t, domain.CategorySmall, st.Category)
	assert.False(t, st.PendingLoss)
}
