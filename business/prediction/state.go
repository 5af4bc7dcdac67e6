package prediction

import (
	"context"
	"sync"

	"predictBot/domain"
)

// StateStore holds one UserPredictionState per user.
type StateStore interface {
	// GetOrCreate returns the stored record, creating the default one on first access.
	GetOrCreate(ctx context.Context, userID int64) (domain.UserPredictionState, error)
	// Update applies fn to the current record (default if absent) and persists the result.
	Update(ctx context.Context, userID int64, fn func(*domain.UserPredictionState)) (domain.UserPredictionState, error)
	// Delete drops the record so the next access recreates the default.
	Delete(ctx context.Context, userID int64) error
}

// userLocks serializes state transitions per user inside the process.
type userLocks struct {
	mu    sync.Mutex
	locks map[int64]*userLock
}

type userLock struct {
	mu   sync.Mutex
	refs int
}

func newUserLocks() *userLocks {
	return &userLocks{locks: make(map[int64]*userLock)}
}

func (l *userLocks) lock(userID int64) (unlock func()) {
	l.mu.Lock()
	ul, ok := l.locks[userID]
	if !ok {
		ul = &userLock{}
		l.locks[userID] = ul
	}
	ul.refs++
	l.mu.Unlock()

	ul.mu.Lock()

	return func() {
		ul.mu.Unlock()

		l.mu.Lock()
		ul.refs--
		if ul.refs == 0 {
			delete(l.locks, userID)
		}
		l.mu.Unlock()
	}
}
