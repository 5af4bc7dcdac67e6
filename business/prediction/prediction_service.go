package prediction

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"predictBot/domain"
	"predictBot/pkg/logger"

	"gorm.io/datatypes"
)

// ---- Collaborator interfaces ----

type SignalFetcher interface {
	FetchSnapshot(ctx context.Context) (domain.Snapshot, error)
}

// EventRepository is the optional audit log. Failures are logged, never returned.
type EventRepository interface {
	SavePrediction(ctx context.Context, event domain.PredictionEvent) error
	SaveFeedback(ctx context.Context, event domain.FeedbackEvent) error
}

// ---- Service ----

type PredictionService struct {
	fetcher   SignalFetcher
	store     StateStore
	eventRepo EventRepository
	cfg       Config
	locks     *userLocks
	now       func() time.Time
}

func NewPredictionService(
	fetcher SignalFetcher,
	store StateStore,
	eventRepo EventRepository,
	cfg Config,
) *PredictionService {
	return &PredictionService{
		fetcher:   fetcher,
		store:     store,
		eventRepo: eventRepo,
		cfg:       cfg,
		locks:     newUserLocks(),
		now:       time.Now,
	}
}

func (s *PredictionService) Config() Config {
	return s.cfg
}

// Predict fetches a fresh snapshot, scores and ranks the candidates, then runs
// one category transition for the user. Nothing is mutated when validation or
// the fetch fails.
func (s *PredictionService) Predict(
	ctx context.Context,
	userID int64,
	lastObserved int,
	history []int,
) (domain.PredictionResult, error) {

	if err := ctx.Err(); err != nil {
		return domain.PredictionResult{}, fmt.Errorf("context error: %w", err)
	}

	// 1) validate before touching the network
	if err := validateDraws(lastObserved, history); err != nil {
		PredictionRequestsTotal.WithLabelValues(resultInvalidInput).Inc()
		return domain.PredictionResult{}, err
	}
	window := s.cfg.trimHistory(history)

	tid := TraceIDFromContext(ctx)

	// 2) fetch
	snap, err := s.fetcher.FetchSnapshot(ctx)
	if err != nil {
		PredictionRequestsTotal.WithLabelValues(resultFetchError).Inc()
		logger.Error("prediction_fetch_failed",
			"trace_id", tid,
			"user_id", userID,
			"error", err,
		)
		return domain.PredictionResult{}, asFetchError(err)
	}

	// 3) score + rank
	scores := s.cfg.Score(lastObserved, window, snap)
	shortlist := s.cfg.Rank(scores)
	small, big := countCategories(shortlist)

	// 4) category transition, serialized per user
	var flipped bool
	unlock := s.locks.lock(userID)
	state, err := s.store.Update(ctx, userID, func(st *domain.UserPredictionState) {
		flipped = transition(st, small, big)
		st.UpdatedAt = s.now()
	})
	unlock()
	if err != nil {
		PredictionRequestsTotal.WithLabelValues(resultStateError).Inc()
		return domain.PredictionResult{}, fmt.Errorf("update user state: %w", err)
	}

	result := domain.PredictionResult{
		UserID:       userID,
		LastObserved: lastObserved,
		History:      window,
		Scores:       [domain.NumCandidates]int(scores),
		Shortlist:    shortlist,
		Category:     state.Category,
		SmallCount:   small,
		BigCount:     big,
		Flipped:      flipped,
		TraceID:      tid,
		State:        state,
	}

	source := sourceSignal
	if flipped {
		source = sourceFeedback
	}
	PredictionRequestsTotal.WithLabelValues(resultOK).Inc()
	PredictionCategoryTotal.WithLabelValues(string(state.Category), source).Inc()

	logger.Debug("prediction_served",
		"trace_id", tid,
		"user_id", userID,
		"last_observed", lastObserved,
		"history", window,
		"shortlist_len", len(shortlist),
		"small_count", small,
		"big_count", big,
		"category", state.Category,
		"flipped", flipped,
	)

	s.recordPrediction(ctx, result)

	return result, nil
}

// ReportFeedback records a win or loss for the user. A loss makes the next
// Predict flip the category.
func (s *PredictionService) ReportFeedback(
	ctx context.Context,
	userID int64,
	outcome domain.Outcome,
) (domain.UserPredictionState, error) {

	if err := ctx.Err(); err != nil {
		return domain.UserPredictionState{}, fmt.Errorf("context error: %w", err)
	}
	if !outcome.Valid() {
		return domain.UserPredictionState{}, invalidInput("unknown outcome %q", outcome)
	}

	unlock := s.locks.lock(userID)
	var (
		state domain.UserPredictionState
		err   error
	)
	if outcome == domain.OutcomeLoss {
		state, err = s.store.Update(ctx, userID, func(st *domain.UserPredictionState) {
			applyFeedback(st, outcome)
			st.UpdatedAt = s.now()
		})
	} else {
		state, err = s.store.GetOrCreate(ctx, userID)
	}
	unlock()
	if err != nil {
		return domain.UserPredictionState{}, fmt.Errorf("apply feedback: %w", err)
	}

	FeedbackEventsTotal.WithLabelValues(string(outcome)).Inc()

	tid := TraceIDFromContext(ctx)
	logger.Debug("prediction_feedback",
		"trace_id", tid,
		"user_id", userID,
		"outcome", outcome,
		"pending_loss", state.PendingLoss,
	)

	if s.eventRepo != nil {
		event := domain.FeedbackEvent{
			UserID:  userID,
			Outcome: string(outcome),
			TraceID: tid,
		}
		if err := s.eventRepo.SaveFeedback(ctx, event); err != nil {
			logger.Warn("failed to save feedback event", "user_id", userID, "error", err)
		}
	}

	return state, nil
}

// GetState returns the user's current record, creating the default on first access.
func (s *PredictionService) GetState(ctx context.Context, userID int64) (domain.UserPredictionState, error) {
	if err := ctx.Err(); err != nil {
		return domain.UserPredictionState{}, fmt.Errorf("context error: %w", err)
	}
	state, err := s.store.GetOrCreate(ctx, userID)
	if err != nil {
		return domain.UserPredictionState{}, fmt.Errorf("load user state: %w", err)
	}
	return state, nil
}

// ResetState drops the user's record.
func (s *PredictionService) ResetState(ctx context.Context, userID int64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	unlock := s.locks.lock(userID)
	defer unlock()

	if err := s.store.Delete(ctx, userID); err != nil {
		return fmt.Errorf("reset user state: %w", err)
	}
	logger.Info("prediction_state_reset", "user_id", userID)
	return nil
}

func validateDraws(lastObserved int, history []int) error {
	if !domain.IsCandidate(lastObserved) {
		return invalidInput("last observed value %d outside %d..%d", lastObserved, domain.MinCandidate, domain.MaxCandidate)
	}
	for i, v := range history {
		if !domain.IsCandidate(v) {
			return invalidInput("history[%d]=%d outside %d..%d", i, v, domain.MinCandidate, domain.MaxCandidate)
		}
	}
	return nil
}

func (s *PredictionService) recordPrediction(ctx context.Context, result domain.PredictionResult) {
	if s.eventRepo == nil {
		return
	}

	shortlist, err := json.Marshal(result.Shortlist)
	if err != nil {
		logger.Warn("failed to marshal shortlist", "error", err)
		return
	}
	history, err := json.Marshal(result.History)
	if err != nil {
		logger.Warn("failed to marshal history", "error", err)
		return
	}

	event := domain.PredictionEvent{
		UserID:       result.UserID,
		TraceID:      result.TraceID,
		LastObserved: result.LastObserved,
		Category:     string(result.Category),
		Flipped:      result.Flipped,
		Shortlist:    datatypes.JSON(shortlist),
		History:      datatypes.JSON(history),
	}
	if err := s.eventRepo.SavePrediction(ctx, event); err != nil {
		logger.Warn("failed to save prediction event", "user_id", result.UserID, "error", err)
	}
}
