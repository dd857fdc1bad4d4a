package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(limit int, interval time.Duration) (*Limiter, *time.Time) {
	current := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	l := NewLimiter(limit, interval)
	l.now = func() time.Time { return current }
	return l, &current
}

func TestAttemptCountsDownToZeroThenRejects(t *testing.T) {
	l, clock := newTestLimiter(5, time.Minute)

	windowEnd := clock.Add(time.Minute)

	for i, wantRemaining := range []int{4, 3, 2, 1, 0} {
		res := l.Attempt("203.0.113.7")
		assert.True(t, res.Allowed, "attempt %d should be allowed", i+1)
		assert.Equal(t, 5, res.Limit)
		assert.Equal(t, wantRemaining, res.Remaining)
		assert.Equal(t, windowEnd, res.Reset)
	}

	// The limit-plus-first attempt in the same window is rejected.
	res := l.Attempt("203.0.113.7")
	assert.False(t, res.Allowed)
	assert.Equal(t, 0, res.Remaining)
	assert.Equal(t, windowEnd, res.Reset)
}

func TestWindowExpiryResetsTheCounter(t *testing.T) {
	l, clock := newTestLimiter(2, time.Minute)

	require.True(t, l.Attempt("k").Allowed)
	require.True(t, l.Attempt("k").Allowed)
	require.False(t, l.Attempt("k").Allowed)

	*clock = clock.Add(time.Minute)

	res := l.Attempt("k")
	assert.True(t, res.Allowed)
	assert.Equal(t, 1, res.Remaining)
	assert.Equal(t, clock.Add(time.Minute), res.Reset)
}

func TestKeysAreIndependent(t *testing.T) {
	l, _ := newTestLimiter(1, time.Minute)

	assert.True(t, l.Attempt("a").Allowed)
	assert.False(t, l.Attempt("a").Allowed)

	// A different key still has a fresh window.
	assert.True(t, l.Attempt("b").Allowed)
}

func TestConcurrentAttemptsNeverExceedLimit(t *testing.T) {
	const limit = 5
	const attempts = 50

	l := NewLimiter(limit, time.Minute)

	var wg sync.WaitGroup
	results := make(chan bool, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- l.Attempt("shared").Allowed
		}()
	}
	wg.Wait()
	close(results)

	allowed := 0
	for ok := range results {
		if ok {
			allowed++
		}
	}
	assert.Equal(t, limit, allowed)
}

func TestPruneDropsOnlyExpiredWindows(t *testing.T) {
	l, clock := newTestLimiter(5, time.Minute)

	for i := 0; i < 10; i++ {
		l.Attempt(fmt.Sprintf("old-%d", i))
	}

	*clock = clock.Add(2 * time.Minute)
	l.Attempt("fresh")

	assert.Equal(t, 10, l.Prune())

	// The fresh key survives and keeps its counter.
	res := l.Attempt("fresh")
	assert.Equal(t, 3, res.Remaining)
}
