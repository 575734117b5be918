package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-course-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestMemoryStore(capacity int) (*memoryOAuthStateStore, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	return newMemoryOAuthStateStore(10*time.Minute, capacity, clock.Now), clock
}

func TestMemoryOAuthStateStore_PutGet(t *testing.T) {
	s, _ := newTestMemoryStore(10)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, models.OAuthStatus{State: "s1", Status: models.OAuthStatePending}))

	got, err := s.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, models.OAuthStatePending, got.Status)

	require.NoError(t, s.Put(ctx, models.OAuthStatus{State: "s1", Status: models.OAuthStateSuccess, UserID: 5}))

	got, err = s.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, models.OAuthStateSuccess, got.Status)
	assert.Equal(t, int64(5), got.UserID)
}

func TestMemoryOAuthStateStore_UnknownState(t *testing.T) {
	s, _ := newTestMemoryStore(10)

	_, err := s.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrOAuthStateNotFound)
}

func TestMemoryOAuthStateStore_ExpiresLazily(t *testing.T) {
	s, clock := newTestMemoryStore(10)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, models.OAuthStatus{State: "s1", Status: models.OAuthStatePending}))

	clock.Advance(10 * time.Minute)

	_, err := s.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrOAuthStateNotFound)
	assert.Empty(t, s.entries)
	assert.Zero(t, s.order.Len())
}

func TestMemoryOAuthStateStore_CapacityEvictsOldest(t *testing.T) {
	s, _ := newTestMemoryStore(2)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, models.OAuthStatus{State: "s1"}))
	require.NoError(t, s.Put(ctx, models.OAuthStatus{State: "s2"}))
	require.NoError(t, s.Put(ctx, models.OAuthStatus{State: "s3"}))

	_, err := s.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrOAuthStateNotFound)

	for _, state := range []string{"s2", "s3"} {
		_, err := s.Get(ctx, state)
		assert.NoError(t, err, state)
	}
}

func TestMemoryOAuthStateStore_RewriteRefreshesOrder(t *testing.T) {
	s, _ := newTestMemoryStore(2)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, models.OAuthStatus{State: "s1"}))
	require.NoError(t, s.Put(ctx, models.OAuthStatus{State: "s2"}))
	require.NoError(t, s.Put(ctx, models.OAuthStatus{State: "s1", Status: models.OAuthStateSuccess}))
	require.NoError(t, s.Put(ctx, models.OAuthStatus{State: "s3"}))

	_, err := s.Get(ctx, "s2")
	assert.ErrorIs(t, err, ErrOAuthStateNotFound)

	got, err := s.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, models.OAuthStateSuccess, got.Status)
}

func TestMemoryOAuthStateStore_Evict(t *testing.T) {
	s, clock := newTestMemoryStore(10)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, models.OAuthStatus{State: "old"}))
	clock.Advance(6 * time.Minute)
	require.NoError(t, s.Put(ctx, models.OAuthStatus{State: "new"}))

	evicted := s.Evict(ctx, clock.Now().Add(5*time.Minute))
	assert.Equal(t, 1, evicted)

	_, err := s.Get(ctx, "new")
	assert.NoError(t, err)
	_, err = s.Get(ctx, "old")
	assert.ErrorIs(t, err, ErrOAuthStateNotFound)
}

func TestMemoryOAuthStateStore_Concurrent(t *testing.T) {
	s, _ := newTestMemoryStore(50)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			state := fmt.Sprintf("s%d", i)
			_ = s.Put(ctx, models.OAuthStatus{State: state})
			_, _ = s.Get(ctx, state)
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, len(s.entries), 50)
	assert.Equal(t, len(s.entries), s.order.Len())
}

func TestMemoryOAuthStateStore_Claim(t *testing.T) {
	s, clock := newTestMemoryStore(10)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, models.OAuthStatus{State: "s1", Status: models.OAuthStatePending}))
	require.NoError(t, s.Put(ctx, models.OAuthStatus{State: "done", Status: models.OAuthStateSuccess}))

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		winners int
	)
	for range 16 {
		wg.Go(func() {
			ok, err := s.Claim(ctx, "s1")
			assert.NoError(t, err)
			if ok {
				mu.Lock()
				winners++
				mu.Unlock()
			}
		})
	}
	wg.Wait()
	assert.Equal(t, 1, winners)

	ok, err := s.Claim(ctx, "done")
	require.NoError(t, err)
	assert.False(t, ok, "terminal states cannot be claimed")

	_, err = s.Claim(ctx, "missing")
	assert.ErrorIs(t, err, ErrOAuthStateNotFound)

	clock.Advance(10 * time.Minute)
	_, err = s.Claim(ctx, "s1")
	assert.ErrorIs(t, err, ErrOAuthStateNotFound)
	assert.Empty(t, s.claimed)
}
