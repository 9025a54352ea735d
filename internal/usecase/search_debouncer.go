package usecase

import (
	"context"
	"sync"
	"time"
)

// DefaultSearchDelay is how long a keystroke-triggered search waits before
// firing; another trigger inside the window restarts it.
const DefaultSearchDelay = 300 * time.Millisecond

// SearchFunc runs one search. The context is canceled when the search is
// superseded by a newer trigger or explicitly canceled by the caller.
type SearchFunc func(ctx context.Context, query string)

// SearchDebouncer coalesces rapid search triggers into one delayed run.
// Cancel is the caller-visible control from the search box: it clears any
// pending timer and aborts the in-flight run's context.
type SearchDebouncer struct {
	delay time.Duration
	run   SearchFunc

	mu      sync.Mutex
	timer   *time.Timer
	current *searchRun
}

type searchRun struct {
	cancel context.CancelFunc
}

func NewSearchDebouncer(delay time.Duration, run SearchFunc) *SearchDebouncer {
	if delay <= 0 {
		delay = DefaultSearchDelay
	}
	return &SearchDebouncer{delay: delay, run: run}
}

// Trigger schedules a search for query, replacing any pending one and
// aborting any run still in flight.
func (d *SearchDebouncer) Trigger(query string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()

	d.timer = time.AfterFunc(d.delay, func() {
		ctx, cancel := context.WithCancel(context.Background())
		run := &searchRun{cancel: cancel}

		d.mu.Lock()
		d.timer = nil
		d.current = run
		d.mu.Unlock()

		d.run(ctx, query)
		cancel()

		d.mu.Lock()
		if d.current == run {
			d.current = nil
		}
		d.mu.Unlock()
	})
}

// Cancel clears the pending timer and aborts any outstanding search.
func (d *SearchDebouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
}

func (d *SearchDebouncer) stopLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if d.current != nil {
		d.current.cancel()
		d.current = nil
	}
}
