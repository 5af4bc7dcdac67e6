package memory

import (
	"context"
	"fmt"
	"sync"

	"predictBot/domain"
)

// StateStore keeps user prediction state for the lifetime of the process.
type StateStore struct {
	mu     sync.Mutex
	states map[int64]*domain.UserPredictionState
}

func NewStateStore() *StateStore {
	return &StateStore{
		states: make(map[int64]*domain.UserPredictionState),
	}
}

// getOrCreateLocked must be called with mu held.
func (s *StateStore) getOrCreateLocked(userID int64) *domain.UserPredictionState {
	st, ok := s.states[userID]
	if !ok {
		def := domain.DefaultUserPredictionState(userID)
		st = &def
		s.states[userID] = st
	}
	return st
}

func (s *StateStore) GetOrCreate(ctx context.Context, userID int64) (domain.UserPredictionState, error) {
	if err := ctx.Err(); err != nil {
		return domain.UserPredictionState{}, fmt.Errorf("context error: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return *s.getOrCreateLocked(userID), nil
}

func (s *StateStore) Update(
	ctx context.Context,
	userID int64,
	fn func(*domain.UserPredictionState),
) (domain.UserPredictionState, error) {
	if err := ctx.Err(); err != nil {
		return domain.UserPredictionState{}, fmt.Errorf("context error: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.getOrCreateLocked(userID)
	next := *st
	fn(&next)
	next.UserID = userID
	*st = next

	return next, nil
}

// Delete forgets the user; the next access starts from the default.
func (s *StateStore) Delete(ctx context.Context, userID int64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	s.mu.Lock()
	delete(s.states, userID)
	s.mu.Unlock()

	return nil
}

// Len reports how many users have state.
func (s *StateStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.states)
}
