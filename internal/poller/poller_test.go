package poller

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aherranz/fichas-cli/internal/api"
)

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met in time")
		}
		time.Sleep(2 * time.Millisecond)
	}
}

func TestKickRunsStaggeredRechecks(t *testing.T) {
	var checks atomic.Int64
	p := New(
		func(ctx context.Context) (api.Availability, error) {
			checks.Add(1)
			return api.Availability{PuedeGenerar21: true}, nil
		},
		nil,
		WithInterval(time.Hour),
		WithRecheckOffsets([]time.Duration{5 * time.Millisecond, 10 * time.Millisecond, 15 * time.Millisecond}),
	)
	p.Start()
	defer p.Stop()

	waitFor(t, time.Second, func() bool { return checks.Load() == 1 }) // initial check

	p.Kick()
	// One immediate check plus three staggered rechecks.
	waitFor(t, time.Second, func() bool { return checks.Load() == 5 })
	time.Sleep(30 * time.Millisecond)
	require.Equal(t, int64(5), checks.Load())
}

func TestBaseIntervalStopsWhenFlagTrue(t *testing.T) {
	var checks atomic.Int64
	flag := atomic.Bool{}
	p := New(
		func(ctx context.Context) (api.Availability, error) {
			checks.Add(1)
			return api.Availability{PuedeGenerar21: flag.Load()}, nil
		},
		nil,
		WithInterval(5*time.Millisecond),
	)
	p.Start()
	defer p.Stop()

	// While both flags are false the base interval keeps checking.
	waitFor(t, time.Second, func() bool { return checks.Load() >= 3 })

	flag.Store(true)
	waitFor(t, time.Second, func() bool { return p.Last().PuedeGenerar21 })

	at := checks.Load()
	time.Sleep(50 * time.Millisecond)
	// At most one in-flight interval check may land after the flag turns.
	require.LessOrEqual(t, checks.Load(), at+1)
}

func TestStopSilencesNotifications(t *testing.T) {
	var notifications atomic.Int64
	p := New(
		func(ctx context.Context) (api.Availability, error) {
			return api.Availability{}, nil
		},
		func(api.Availability) { notifications.Add(1) },
		WithInterval(5*time.Millisecond),
	)
	p.Start()
	waitFor(t, time.Second, func() bool { return notifications.Load() >= 2 })

	p.Stop()
	after := notifications.Load()
	time.Sleep(50 * time.Millisecond)
	require.Equal(t, after, notifications.Load(), "notify fired after Stop")
}

func TestFailClosedOnCheckError(t *testing.T) {
	var calls atomic.Int64
	p := New(
		func(ctx context.Context) (api.Availability, error) {
			if calls.Add(1) == 1 {
				return api.Availability{PuedeGenerar21: true, PuedeGenerar22: true}, nil
			}
			return api.Availability{}, errors.New("transient")
		},
		nil,
		WithInterval(time.Hour),
		WithRecheckOffsets(nil),
	)
	p.Start()
	defer p.Stop()

	waitFor(t, time.Second, func() bool { return p.Last().PuedeGenerar21 })

	p.Kick()
	waitFor(t, time.Second, func() bool { return calls.Load() >= 2 })
	waitFor(t, time.Second, func() bool {
		last := p.Last()
		return !last.PuedeGenerar21 && !last.PuedeGenerar22
	})
}

func TestStopIsIdempotent(t *testing.T) {
	p := New(func(ctx context.Context) (api.Availability, error) {
		return api.Availability{}, nil
	}, nil, WithInterval(time.Hour))
	p.Start()
	p.Stop()
	p.Stop() // must not panic or block
}
