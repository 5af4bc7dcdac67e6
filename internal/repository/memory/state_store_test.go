package memory

import (
	"context"
	"sync"
	"testing"

	"predictBot/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateStore_GetOrCreateDefaults(t *testing.T) {
	store := NewStateStore()

	st, err := store.GetOrCreate(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryBig, st.Category)
	assert.False(t, st.PendingLoss)
	assert.Equal(t, int64(7), st.UserID)

	_, err = store.GetOrCreate(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 1, store.Len())
}

func TestStateStore_UpdatePersists(t *testing.T) {
	store := NewStateStore()
	ctx := context.Background()

	_, err := store.Update(ctx, 1, func(st *domain.UserPredictionState) {
		st.PendingLoss = true
	})
	require.NoError(t, err)

	st, err := store.GetOrCreate(ctx, 1)
	require.NoError(t, err)
	assert.True(t, st.PendingLoss)
	assert.Equal(t, domain.CategoryBig, st.Category)
}

func TestStateStore_ReturnsCopies(t *testing.T) {
	store := NewStateStore()
	ctx := context.Background()

	st, err := store.GetOrCreate(ctx, 1)
	require.NoError(t, err)
	st.Category = domain.CategorySmall

	again, err := store.GetOrCreate(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryBig, again.Category)
}

func TestStateStore_ConcurrentUpdates(t *testing.T) {
	store := NewStateStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = store.Update(ctx, 9, func(st *domain.UserPredictionState) {
				st.Category = st.Category.Opposite()
			})
		}()
	}
	wg.Wait()

	// an even number of flips lands back on the default
	st, err := store.GetOrCreate(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryBig, st.Category)
}

func TestStateStore_CancelledContext(t *testing.T) {
	store := NewStateStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.GetOrCreate(ctx, 1)
	assert.Error(t, err)
	assert.Equal(t, 0, store.Len())
}

func TestStateStore_Delete(t *testing.T) {
	store := NewStateStore()
	ctx := context.Background()

	_, err := store.Update(ctx, 2, func(st *domain.UserPredictionState) {
		st.Category = domain.CategorySmall
	})
	require.NoError(t, err)
	require.NoError(t, store.Delete(ctx, 2))

	st, err := store.GetOrCreate(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryBig, st.Category)
}
