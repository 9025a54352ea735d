package usecase

import (
	"sort"
	"sync"

	"casa_em_dia/internal/usecase/interfaces"
)

// ChangeBroadcaster is the process-wide pub/sub registry for record changes.
// It is constructed once at the composition root and injected into every
// cache instance; there is no package-level singleton.
//
// Notify invokes every registered callback synchronously, in registration
// order, over a snapshot copy of the registry so a callback may unsubscribe
// itself (or others) mid-notification. It returns once all callbacks have
// been invoked, not once the refetches they kick off have resolved.
type ChangeBroadcaster struct {
	mu      sync.Mutex
	nextID  uint64
	entries map[uint64]func()
}

var _ interfaces.IChangeBroadcaster = (*ChangeBroadcaster)(nil)

func NewChangeBroadcaster() *ChangeBroadcaster {
	return &ChangeBroadcaster{entries: make(map[uint64]func())}
}

func (b *ChangeBroadcaster) Subscribe(callback func()) interfaces.Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	id := b.nextID
	b.entries[id] = callback
	return &subscription{broadcaster: b, id: id}
}

func (b *ChangeBroadcaster) Notify() {
	b.mu.Lock()
	ids := make([]uint64, 0, len(b.entries))
	for id := range b.entries {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	callbacks := make([]func(), 0, len(ids))
	for _, id := range ids {
		callbacks = append(callbacks, b.entries[id])
	}
	b.mu.Unlock()

	for _, callback := range callbacks {
		callback()
	}
}

// Len reports the number of live subscriptions.
func (b *ChangeBroadcaster) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

type subscription struct {
	broadcaster *ChangeBroadcaster
	id          uint64
	once        sync.Once
}

func (s *subscription) Unsubscribe() {
	s.once.Do(func() {
		s.broadcaster.mu.Lock()
		defer s.broadcaster.mu.Unlock()
		delete(s.broadcaster.entries, s.id)
	})
}
