package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"predictBot/domain"

	"github.com/redis/go-redis/v9"
)

const defaultMaxTxRetries = 5

// getter is satisfied by both *redis.Client and *redis.Tx.
type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// StateRepository stores one JSON-encoded UserPredictionState per user.
type StateRepository struct {
	client     *redis.Client
	ttl        time.Duration
	maxRetries int
}

func NewStateRepository(client *redis.Client, ttl time.Duration) *StateRepository {
	return &StateRepository{
		client:     client,
		ttl:        ttl,
		maxRetries: defaultMaxTxRetries,
	}
}

func stateKey(userID int64) string {
	// key format: "prediction:state:user:{user_id}"
	return fmt.Sprintf("prediction:state:user:%d", userID)
}

// GetOrCreate reads the user's state, writing the default record if none exists.
func (r *StateRepository) GetOrCreate(ctx context.Context, userID int64) (domain.UserPredictionState, error) {
	key := stateKey(userID)

	st, found, err := r.get(ctx, r.client, key)
	if err != nil {
		return domain.UserPredictionState{}, err
	}
	if found {
		return st, nil
	}

	def := domain.DefaultUserPredictionState(userID)
	raw, err := json.Marshal(def)
	if err != nil {
		return domain.UserPredictionState{}, fmt.Errorf("failed to marshal state: %w", err)
	}

	created, err := r.client.SetNX(ctx, key, string(raw), r.ttl).Result()
	if err != nil {
		return domain.UserPredictionState{}, fmt.Errorf("failed to store state in Redis: %w", err)
	}
	if created {
		return def, nil
	}

	// someone else created it first
	st, found, err = r.get(ctx, r.client, key)
	if err != nil {
		return domain.UserPredictionState{}, err
	}
	if !found {
		return def, nil
	}
	return st, nil
}

// Update runs fn inside a WATCH/MULTI transaction and retries on conflicts.
func (r *StateRepository) Update(
	ctx context.Context,
	userID int64,
	fn func(*domain.UserPredictionState),
) (domain.UserPredictionState, error) {
	key := stateKey(userID)

	var out domain.UserPredictionState
	txf := func(tx *redis.Tx) error {
		st, found, err := r.get(ctx, tx, key)
		if err != nil {
			return err
		}
		if !found {
			st = domain.DefaultUserPredictionState(userID)
		}

		fn(&st)
		st.UserID = userID

		raw, err := json.Marshal(st)
		if err != nil {
			return fmt.Errorf("failed to marshal state: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, string(raw), r.ttl)
			return nil
		})
		if err != nil {
			return err
		}

		out = st
		return nil
	}

	for i := 0; i < r.maxRetries; i++ {
		err := r.client.Watch(ctx, txf, key)
		if err == nil {
			return out, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return domain.UserPredictionState{}, fmt.Errorf("failed to update state in Redis: %w", err)
	}

	return domain.UserPredictionState{}, errors.New("failed to update state in Redis: too many concurrent writers")
}

// Delete removes the user's state; the next access starts from the default.
func (r *StateRepository) Delete(ctx context.Context, userID int64) error {
	if err := r.client.Del(ctx, stateKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete state from Redis: %w", err)
	}
	return nil
}

func (r *StateRepository) get(ctx context.Context, c getter, key string) (domain.UserPredictionState, bool, error) {
	val, err := c.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.UserPredictionState{}, false, nil
		}
		return domain.UserPredictionState{}, false, fmt.Errorf("failed to get state from Redis: %w", err)
	}

	var st domain.UserPredictionState
	if err := json.Unmarshal([]byte(val), &st); err != nil {
		return domain.UserPredictionState{}, false, fmt.Errorf("failed to unmarshal state: %w", err)
	}

	return st, true, nil
}
