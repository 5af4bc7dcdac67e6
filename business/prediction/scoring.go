package prediction

import "predictBot/domain"

type ScoreVector [domain.NumCandidates]int

// BaseScores is the history + last-observed part of the score, before any
// snapshot terms. Older positions are reinforced, the trailing RecentSpan
// positions are penalized. With fewer entries than RecentSpan every entry is
// penalized.
func (cfg Config) BaseScores(lastObserved int, history []int) ScoreVector {
	var scores ScoreVector

	stableUntil := len(history) - cfg.RecentSpan
	for i, v := range history {
		if !domain.IsCandidate(v) {
			continue
		}
		if i < stableUntil {
			scores[v] += cfg.StableReward
		} else {
			scores[v] -= cfg.RecentPenalty
		}
	}

	if domain.IsCandidate(lastObserved) {
		scores[lastObserved] += cfg.LastObservedBonus
	}

	return scores
}

// SignalScores is the snapshot-only contribution: missing*w + (ceiling - frequency).
func (cfg Config) SignalScores(snap domain.Snapshot) ScoreVector {
	var scores ScoreVector
	for v := domain.MinCandidate; v <= domain.MaxCandidate; v++ {
		st := snap.Stat(v)
		scores[v] = st.Missing*cfg.MissingWeight + (cfg.FrequencyCeiling - st.Frequency)
	}
	return scores
}

// Score computes the full vector for one request. Nothing is cached between calls.
func (cfg Config) Score(lastObserved int, history []int, snap domain.Snapshot) ScoreVector {
	scores := cfg.BaseScores(lastObserved, history)
	signal := cfg.SignalScores(snap)
	for v := range scores {
		scores[v] += signal[v]
	}
	return scores
}
