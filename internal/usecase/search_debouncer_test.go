package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSearchDebouncer_CoalescesRapidTriggers(t *testing.T) {
	var mu sync.Mutex
	var queries []string

	d := NewSearchDebouncer(30*time.Millisecond, func(_ context.Context, query string) {
		mu.Lock()
		queries = append(queries, query)
		mu.Unlock()
	})

	d.Trigger("ro")
	d.Trigger("roo")
	d.Trigger("roof")

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(queries) == 1
	}, time.Second, 5*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []string{"roof"}, queries, "only the newest query fires")
}

func TestSearchDebouncer_CancelClearsPendingTimer(t *testing.T) {
	var mu sync.Mutex
	ran := false

	d := NewSearchDebouncer(20*time.Millisecond, func(context.Context, string) {
		mu.Lock()
		ran = true
		mu.Unlock()
	})

	d.Trigger("roof")
	d.Cancel()

	time.Sleep(80 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	require.False(t, ran, "canceled search must never fire")
}

func TestSearchDebouncer_CancelAbortsInFlightSearch(t *testing.T) {
	started := make(chan struct{})
	aborted := make(chan struct{})

	d := NewSearchDebouncer(10*time.Millisecond, func(ctx context.Context, _ string) {
		close(started)
		select {
		case <-ctx.Done():
			close(aborted)
		case <-time.After(2 * time.Second):
		}
	})

	d.Trigger("roof")
	<-started
	d.Cancel()

	select {
	case <-aborted:
	case <-time.After(time.Second):
		t.Fatalf("expected in-flight search context to be canceled")
	}
}

func TestSearchDebouncer_NewTriggerAbortsPreviousRun(t *testing.T) {
	started := make(chan struct{})
	aborted := make(chan struct{})
	var once sync.Once

	d := NewSearchDebouncer(10*time.Millisecond, func(ctx context.Context, query string) {
		if query == "first" {
			once.Do(func() { close(started) })
			select {
			case <-ctx.Done():
				close(aborted)
			case <-time.After(2 * time.Second):
			}
		}
	})

	d.Trigger("first")
	<-started
	d.Trigger("second")

	select {
	case <-aborted:
	case <-time.After(time.Second):
		t.Fatalf("expected superseded search to be aborted")
	}
}

func TestSearchDebouncer_DefaultDelayApplied(t *testing.T) {
	d := NewSearchDebouncer(0, func(context.Context, string) {})
	require.Equal(t, DefaultSearchDelay, d.delay)
}
