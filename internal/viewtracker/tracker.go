// Package viewtracker defers view registration until a viewer has
// plausibly read a quote: each mount arms a timer, and navigating away
// before it fires cancels the registration. Re-mounting arms a fresh
// cycle and registers again; views measure impressions, not unique
// visitors.
package viewtracker

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/frasehub/frasehub/internal/engagement"
)

// RegisterFunc is invoked once per fired tracker, normally
// engagement.Store.RegisterView behind a closure.
type RegisterFunc func(ctx context.Context, quoteID string, viewer engagement.Viewer) error

// State of one armed tracking cycle.
type State int32

const (
	StatePending State = iota // timer armed, registration deferred
	StateFired                // delay elapsed, view registered
	StateCancelled            // unmounted or context done before the delay
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateFired:
		return "fired"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Tracker arms deferred view registrations with a fixed delay.
type Tracker struct {
	delay    time.Duration
	register RegisterFunc
	log      *slog.Logger
}

// New creates a tracker. delay is how long a mount must survive before
// it counts as a view (2s in production config).
func New(delay time.Duration, register RegisterFunc, log *slog.Logger) *Tracker {
	return &Tracker{delay: delay, register: register, log: log}
}

// Pending is one armed cycle. Exactly one of Fired/Cancelled terminates
// it; Done closes either way.
type Pending struct {
	state  atomic.Int32
	cancel context.CancelFunc
	done   chan struct{}
}

// Arm starts a cycle for one mounted quote. The cycle dies with ctx,
// so tying ctx to the component/request lifetime gives
// cancel-on-unmount for free.
func (t *Tracker) Arm(ctx context.Context, quoteID string, viewer engagement.Viewer) *Pending {
	ctx, cancel := context.WithCancel(ctx)
	p := &Pending{cancel: cancel, done: make(chan struct{})}
	p.state.Store(int32(StatePending))

	timer := time.NewTimer(t.delay)
	go func() {
		defer close(p.done)
		defer cancel()
		select {
		case <-timer.C:
			if !p.state.CompareAndSwap(int32(StatePending), int32(StateFired)) {
				return
			}
			if err := t.register(ctx, quoteID, viewer); err != nil {
				t.log.Warn("view registration failed", "quote_id", quoteID, "err", err)
			}
		case <-ctx.Done():
			timer.Stop()
			p.state.CompareAndSwap(int32(StatePending), int32(StateCancelled))
		}
	}()
	return p
}

// Cancel stops the cycle if the timer has not fired yet. Safe to call
// any number of times and after firing.
func (p *Pending) Cancel() {
	p.cancel()
}

// State returns the cycle's current state.
func (p *Pending) State() State {
	return State(p.state.Load())
}

// Done closes when the cycle has either fired or been cancelled.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}
