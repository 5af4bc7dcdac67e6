package prediction

import (
	"sort"

	"predictBot/domain"
)

// Rank keeps strictly positive candidates, sorts them by score descending and
// truncates to ShortlistSize. Ties keep ascending value order.
func (cfg Config) Rank(scores ScoreVector) []domain.ScoredCandidate {
	ranked := make([]domain.ScoredCandidate, 0, len(scores))
	for v, score := range scores {
		if score <= 0 {
			continue
		}
		ranked = append(ranked, domain.ScoredCandidate{
			Number:   v,
			Score:    score,
			Category: domain.CategoryOf(v),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > cfg.ShortlistSize {
		ranked = ranked[:cfg.ShortlistSize]
	}

	return ranked
}
