package prediction

import (
	"testing"

	"predictBot/domain"

	"github.com/stretchr/testify/assert"
)

func numbers(list []domain.ScoredCandidate) []int {
	out := make([]int, 0, len(list))
	for _, c := range list {
		out = append(out, c.Number)
	}
	return out
}

func TestRank(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name   string
		scores ScoreVector
		want   []int
	}{
		{
			name:   "only positive scores survive",
			scores: ScoreVector{0, 0, 0, 4, 0, 1, 0, 0, 0, -1},
			want:   []int{3, 5},
		},
		{
			name:   "capped at seven",
			scores: ScoreVector{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
			want:   []int{9, 8, 7, 6, 5, 4, 3},
		},
		{
			name:   "ties keep ascending value order",
			scores: ScoreVector{2, 5, 2, 5, 0, 2, 0, 0, 0, 0},
			want:   []int{1, 3, 0, 2, 5},
		},
		{
			name:   "nothing positive gives an empty shortlist",
			scores: ScoreVector{0, -1, 0, -3, 0, 0, 0, 0, 0, 0},
			want:   []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cfg.Rank(tt.scores)
			assert.Equal(t, tt.want, numbers(got))
			assert.LessOrEqual(t, len(got), cfg.ShortlistSize)
			for _, c := range got {
				assert.Greater(t, c.Score, 0)
				assert.Equal(t, domain.CategoryOf(c.Number), c.Category)
			}
		})
	}
}

func TestRank_CustomCap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ShortlistSize = 2

	got := cfg.Rank(ScoreVector{10, 10, 10, 10, 10, 10, 10, 10, 10, 10})
	assert.Equal(t, []int{0, 1}, numbers(got))
}
