package prediction

import "predictBot/domain"

func countCategories(shortlist []domain.ScoredCandidate) (small, big int) {
	for _, c := range shortlist {
		if domain.CategoryOf(c.Number) == domain.CategorySmall {
			small++
		} else {
			big++
		}
	}
	return small, big
}

// transition runs one step of the category machine and reports whether a
// pending loss drove it. A pending loss flips the current category and ignores
// the counts. Otherwise a SMALL majority recommends BIG and anything else
// recommends SMALL.
func transition(state *domain.UserPredictionState, small, big int) bool {
	if state.PendingLoss {
		state.Category = state.Category.Opposite()
		state.PendingLoss = false
		return true
	}

	if small > big {
		state.Category = domain.CategoryBig
	} else {
		state.Category = domain.CategorySmall
	}
	return false
}

// applyFeedback records a loss for the next transition. A win changes nothing.
func applyFeedback(state *domain.UserPredictionState, outcome domain.Outcome) {
	if outcome == domain.OutcomeLoss {
		state.PendingLoss = true
	}
}
