// Package poller keeps the ficha availability flags synchronized with the
// backend. Writes are processed asynchronously server-side, so a single
// read after a mutation may still see stale state; the poller absorbs that
// by re-checking on a staggered schedule and by a slow base interval while
// nothing is generatable yet.
package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/aherranz/fichas-cli/internal/api"
)

// Default schedule: a 1s base interval while both flags are false, and
// staggered rechecks after every mutation at +300ms, +600ms and +1000ms
// from the kick.
var (
	DefaultInterval       = time.Second
	DefaultRecheckOffsets = []time.Duration{
		300 * time.Millisecond,
		600 * time.Millisecond,
		1000 * time.Millisecond,
	}
)

// CheckFunc queries the backend for the current availability.
type CheckFunc func(ctx context.Context) (api.Availability, error)

// NotifyFunc receives every availability reading. It is never called after
// Stop returns.
type NotifyFunc func(api.Availability)

// Poller owns all polling timers for one tenancy key. When the key
// changes, the owner stops this poller and starts a fresh one; a stopped
// poller never delivers another notification, so no state update can land
// against a stale context.
type Poller struct {
	check    CheckFunc
	notify   NotifyFunc
	interval time.Duration
	offsets  []time.Duration
	logger   *slog.Logger

	mu      sync.Mutex
	last    api.Availability
	cancel  context.CancelFunc
	kick    chan struct{}
	wg      sync.WaitGroup
	started bool
}

// Option configures a Poller.
type Option func(*Poller)

// WithInterval overrides the base polling interval.
func WithInterval(d time.Duration) Option {
	return func(p *Poller) { p.interval = d }
}

// WithRecheckOffsets overrides the post-mutation recheck schedule. Offsets
// are measured from the kick and must be ascending.
func WithRecheckOffsets(offsets []time.Duration) Option {
	return func(p *Poller) { p.offsets = offsets }
}

// WithLogger sets the logger for transient check failures.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Poller) { p.logger = logger }
}

// New creates a poller. Call Start to begin polling.
func New(check CheckFunc, notify NotifyFunc, opts ...Option) *Poller {
	p := &Poller{
		check:    check,
		notify:   notify,
		interval: DefaultInterval,
		offsets:  DefaultRecheckOffsets,
		logger:   slog.Default(),
		kick:     make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start launches the polling loop with an immediate first check. Start is
// idempotent until Stop.
func (p *Poller) Start() {
	p.mu.Lock()
	if p.started {
		p.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.started = true
	p.mu.Unlock()

	p.wg.Add(1)
	go p.run(ctx)
}

// Kick schedules the post-mutation check burst: one immediate check plus
// the staggered rechecks. Coalesces if a burst is already pending.
func (p *Poller) Kick() {
	select {
	case p.kick <- struct{}{}:
	default:
	}
}

// Stop cancels all outstanding timers and waits for the loop to exit.
// After Stop returns, the notify callback will not fire again.
func (p *Poller) Stop() {
	p.mu.Lock()
	if !p.started {
		p.mu.Unlock()
		return
	}
	p.started = false
	cancel := p.cancel
	p.mu.Unlock()

	cancel()
	p.wg.Wait()
}

// Last returns the most recent availability reading.
func (p *Poller) Last() api.Availability {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last
}

func (p *Poller) run(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.checkOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			return

		case <-p.kick:
			p.checkOnce(ctx)
			elapsed := time.Duration(0)
			for _, offset := range p.offsets {
				wait := offset - elapsed
				if wait < 0 {
					wait = 0
				}
				select {
				case <-ctx.Done():
					return
				case <-time.After(wait):
				}
				elapsed = offset
				p.checkOnce(ctx)
			}

		case <-ticker.C:
			// The base interval only runs while nothing is generatable
			// yet; a later mutation re-enters via Kick.
			if av := p.Last(); av.PuedeGenerar21 || av.PuedeGenerar22 {
				continue
			}
			p.checkOnce(ctx)
		}
	}
}

// checkOnce performs one availability read. Failures are fail-closed: both
// flags drop to false rather than keeping a stale true, and the error is
// logged but never surfaced as an alert.
func (p *Poller) checkOnce(ctx context.Context) {
	av, err := p.check(ctx)
	if ctx.Err() != nil {
		return
	}
	if err != nil {
		p.logger.Debug("availability check failed", "error", err)
		av = api.Availability{}
	}

	p.mu.Lock()
	p.last = av
	p.mu.Unlock()

	if p.notify != nil {
		p.notify(av)
	}
}
