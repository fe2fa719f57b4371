package viewtracker_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frasehub/frasehub/internal/engagement"
	"github.com/frasehub/frasehub/internal/viewtracker"
)

type recorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *recorder) register(_ context.Context, quoteID string, _ engagement.Viewer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, quoteID)
	return nil
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func newTracker(delay time.Duration, rec *recorder) *viewtracker.Tracker {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return viewtracker.New(delay, rec.register, log)
}

func TestFiresAfterDelay(t *testing.T) {
	rec := &recorder{}
	tracker := newTracker(10*time.Millisecond, rec)

	p := tracker.Arm(context.Background(), "quote-1", engagement.AnonViewer("device-1"))
	assert.Equal(t, viewtracker.StatePending, p.State())

	select {
	case <-p.Done():
	case <-time.After(time.Second):
		t.Fatal("tracker never finished")
	}

	assert.Equal(t, viewtracker.StateFired, p.State())
	assert.Equal(t, 1, rec.count())
}

func TestCancelBeforeDelayRegistersNothing(t *testing.T) {
	rec := &recorder{}
	tracker := newTracker(200*time.Millisecond, rec)

	p := tracker.Arm(context.Background(), "quote-1", engagement.Viewer{})
	p.Cancel()

	select {
	case <-p.Done():
	case <-time.After(time.Second):
		t.Fatal("tracker never finished")
	}

	assert.Equal(t, viewtracker.StateCancelled, p.State())
	assert.Equal(t, 0, rec.count())

	// cancelling again is harmless
	p.Cancel()
	assert.Equal(t, viewtracker.StateCancelled, p.State())
}

func TestContextCancellationCancelsCycle(t *testing.T) {
	rec := &recorder{}
	tracker := newTracker(200*time.Millisecond, rec)

	ctx, cancel := context.WithCancel(context.Background())
	p := tracker.Arm(ctx, "quote-1", engagement.Viewer{})
	cancel()

	<-p.Done()
	assert.Equal(t, viewtracker.StateCancelled, p.State())
	assert.Equal(t, 0, rec.count())
}

func TestRearmRegistersAnotherView(t *testing.T) {
	rec := &recorder{}
	tracker := newTracker(5*time.Millisecond, rec)

	// no cross-mount memory: every surviving mount counts
	for i := 0; i < 3; i++ {
		p := tracker.Arm(context.Background(), "quote-1", engagement.Viewer{})
		<-p.Done()
		require.Equal(t, viewtracker.StateFired, p.State())
	}
	assert.Equal(t, 3, rec.count())
}
