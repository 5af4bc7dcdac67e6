package domain

import "time"

// Category is one half of the candidate domain and doubles as the betting recommendation.
type Category string

const (
	CategoryBig   Category = "BIG"
	CategorySmall Category = "SMALL"
)

const (
	MinCandidate  = 0
	MaxCandidate  = 9
	NumCandidates = MaxCandidate - MinCandidate + 1

	// values up to and including this one are SMALL
	smallUpperBound = 4
)

// IsCandidate reports whether v belongs to the closed candidate domain 0..9.
func IsCandidate(v int) bool {
	return v >= MinCandidate && v <= MaxCandidate
}

// CategoryOf maps a candidate value to its half of the domain.
func CategoryOf(v int) Category {
	if v <= smallUpperBound {
		return CategorySmall
	}
	return CategoryBig
}

func (c Category) Opposite() Category {
	if c == CategoryBig {
		return CategorySmall
	}
	return CategoryBig
}

// Label is the short human label shown next to each shortlist entry.
func (c Category) Label() string {
	if c == CategoryBig {
		return "Big"
	}
	return "Small"
}

type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLoss Outcome = "loss"
)

func (o Outcome) Valid() bool {
	return o == OutcomeWin || o == OutcomeLoss
}

type ScoredCandidate struct {
	Number   int      `json:"number"`
	Score    int      `json:"score"`
	Category Category `json:"category"`
}

type UserPredictionState struct {
	UserID      int64     `json:"user_id"`
	Category    Category  `json:"category"`
	PendingLoss bool      `json:"pending_loss"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DefaultUserPredictionState is the record every user starts from.
func DefaultUserPredictionState(userID int64) UserPredictionState {
	return UserPredictionState{
		UserID:      userID,
		Category:    CategoryBig,
		PendingLoss: false,
	}
}

type PredictionResult struct {
	UserID       int64               `json:"user_id"`
	LastObserved int                 `json:"last_observed"`
	History      []int               `json:"history"`
	Scores       [NumCandidates]int  `json:"scores"`
	Shortlist    []ScoredCandidate   `json:"shortlist"`
	Category     Category            `json:"category"`
	SmallCount   int                 `json:"small_count"`
	BigCount     int                 `json:"big_count"`
	Flipped      bool                `json:"flipped_by_feedback"`
	TraceID      string              `json:"trace_id,omitempty"`
	State        UserPredictionState `json:"state"`
}
