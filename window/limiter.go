// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.

// Package window provides a sliding-window rate limiter built on the
// [list.List] deque: admitted event timestamps are pushed at the back, and
// timestamps that fall out of the trailing window are popped from the
// front.
package window

import (
	"fmt"
	"sync"
	"time"

	"github.com/GabrielCS08/data-structures/list"
)

type (
	// Limiter admits at most a fixed number of events within a trailing
	// time window. It is safe for concurrent use: the deque it is built on
	// is not, so the [Limiter] holds its own lock around every operation.
	Limiter struct {
		mu sync.Mutex

		// msSinceEpoch returns the current timestamp, as milliseconds since
		// Epoch.
		msSinceEpoch msSinceEpochFunc

		// stamps holds the timestamps of the events admitted within the
		// current window, oldest at the front.
		stamps *list.List[int64]

		// limit is the maximum number of events per window.
		limit int

		// interval is the length of the trailing window.
		interval time.Duration
	}

	msSinceEpochFunc = func() int64
)

// NewLimiter returns a new [*Limiter] admitting at most limit events per
// trailing interval, using the system clock. It panics if limit is less
// than 1, or interval shorter than a millisecond.
func NewLimiter(limit int, interval time.Duration) *Limiter {
	return newLimiter(limit, interval, msSinceEpoch)
}

// newLimiter allows creating a new [*Limiter] with a custom clock function,
// which is useful for testing.
func newLimiter(limit int, interval time.Duration, msSinceEpoch msSinceEpochFunc) *Limiter {
	if limit < 1 {
		panic(fmt.Errorf("NewLimiter: limit must be at least 1, got %d", limit))
	}
	if interval < time.Millisecond {
		panic(fmt.Errorf("NewLimiter: interval must be at least 1ms, got %s", interval))
	}
	return &Limiter{
		msSinceEpoch: msSinceEpoch,
		stamps:       list.New[int64](),
		limit:        limit,
		interval:     interval,
	}
}

// Allow reports whether one more event fits within the window ending now,
// recording the event if it does. If it returns false, the event has been
// rejected and nothing was recorded.
func (l *Limiter) Allow() bool {
	now := l.msSinceEpoch()
	cutoff := now - l.interval.Milliseconds()

	l.mu.Lock()
	defer l.mu.Unlock()

	// Slide the window: timestamps at or before the cutoff no longer count
	// against the limit.
	for front := l.stamps.Front(); front != nil && front.Value <= cutoff; front = l.stamps.Front() {
		l.stamps.PopFront()
	}

	if l.stamps.Len() >= l.limit {
		return false
	}

	l.stamps.PushBack(now)
	return true
}

// Size returns the number of events recorded in the current window. The
// count includes timestamps that have expired but have not yet been slid
// out by a call to [Limiter.Allow].
func (l *Limiter) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stamps.Len()
}

// msSinceEpoch returns the current time as milliseconds since Epoch.
func msSinceEpoch() int64 {
	return time.Now().UnixMilli()
}
