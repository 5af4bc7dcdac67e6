package prediction

import (
	"testing"

	"predictBot/domain"

	"github.com/stretchr/testify/assert"
)

func TestBaseScores_ReferenceHistory(t *testing.T) {
	cfg := DefaultConfig()

	got := cfg.BaseScores(3, []int{5, 8, 8, 9, 3})

	// positions 0,1 reinforce 5 and 8; positions 2,3,4 penalize 8, 9, 3; 3 gets the bonus
	want := ScoreVector{0, 0, 0, 4, 0, 1, 0, 0, 0, -1}
	assert.Equal(t, want, got)
}

func TestBaseScores_ShortHistoryIsAllRecent(t *testing.T) {
	cfg := DefaultConfig()

	got := cfg.BaseScores(0, []int{7, 7})
	assert.Equal(t, -2, got[7])
	assert.Equal(t, 5, got[0])

	empty := cfg.BaseScores(9, nil)
	assert.Equal(t, ScoreVector{0, 0, 0, 0, 0, 0, 0, 0, 0, 5}, empty)
}

func TestSignalScores_HandComputed(t *testing.T) {
	cfg := DefaultConfig()
	snap := domain.Snapshot{
		0: {Frequency: 3, Missing: 4},  // 8 + 7
		1: {Frequency: 12, Missing: 0}, // 0 - 2
		2: {Frequency: 0, Missing: 1},  // 2 + 10
		// 3..9 absent: 0 + 10
	}

	got := cfg.SignalScores(snap)

	want := ScoreVector{15, -2, 12, 10, 10, 10, 10, 10, 10, 10}
	assert.Equal(t, want, got)
	assert.Len(t, got, domain.NumCandidates)
}

func TestScore_CombinesBaseAndSignal(t *testing.T) {
	cfg := DefaultConfig()
	snap := domain.Snapshot{
		3: {Frequency: 10, Missing: 0},
		5: {Frequency: 10, Missing: 0},
		9: {Frequency: 10, Missing: 0},
	}

	got := cfg.Score(3, []int{5, 8, 8, 9, 3}, snap)

	base := cfg.BaseScores(3, []int{5, 8, 8, 9, 3})
	signal := cfg.SignalScores(snap)
	for v := range got {
		assert.Equal(t, base[v]+signal[v], got[v], "candidate %d", v)
	}
	assert.Equal(t, 4, got[3])
	assert.Equal(t, -1, got[9])
}

func TestScore_NilSnapshot(t *testing.T) {
	cfg := DefaultConfig()

	got := cfg.Score(0, nil, nil)
	assert.Equal(t, 15, got[0])
	for v := 1; v < domain.NumCandidates; v++ {
		assert.Equal(t, 10, got[v])
	}
}
