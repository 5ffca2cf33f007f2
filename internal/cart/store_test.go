package cart

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSessionsAreIndependent(t *testing.T) {
	store := NewStore(time.Hour)

	_, err := store.Dispatch("a", Add{Product: product(1, "10.00"), Quantity: 2})
	require.NoError(t, err)

	assert.Equal(t, 2, store.Get("a").TotalItems())
	assert.True(t, store.Get("b").IsEmpty())
	assert.Equal(t, 2, store.Len())
}

func TestStoreKeepsStateOnError(t *testing.T) {
	store := NewStore(time.Hour)
	_, err := store.Dispatch("a", Add{Product: product(1, "10.00"), Quantity: 1})
	require.NoError(t, err)

	got, err := store.Dispatch("a", Add{Product: product(1, "10.00"), Quantity: 0})
	assert.ErrorIs(t, err, ErrInvalidQuantity)
	assert.Equal(t, 1, got.TotalItems())

	boom := errors.New("boom")
	_, err = store.Update("a", func(State) (State, error) { return State{}, boom })
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, store.Get("a").TotalItems())
}

func TestStoreSerializesDispatches(t *testing.T) {
	store := NewStore(time.Hour)
	p := product(1, "1.00")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = store.Dispatch("shared", Add{Product: p, Quantity: 1})
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, store.Get("shared").Quantity(p.ID))
}

func TestStoreEvictsIdleSessions(t *testing.T) {
	store := NewStore(time.Minute)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	store.Get("old")
	now = now.Add(2 * time.Minute)
	store.Get("fresh")

	assert.Equal(t, 1, store.Evict())
	assert.Equal(t, 1, store.Len())

	store.mtx.Lock()
	_, exists := store.sessions["fresh"]
	store.mtx.Unlock()
	assert.True(t, exists)
}

func TestRunJanitorStopsWithContext(t *testing.T) {
	store := NewStore(time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- store.RunJanitor(ctx, time.Millisecond) }()

	store.Get("a")
	assert.Eventually(t, func() bool { return store.Len() == 0 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}
