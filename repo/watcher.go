package repo

import "sync"

// Watcher fans out change notifications from repository writes. Every
// mutation pings all subscribers; each consumer re-reads the full ordered
// list, so a notification carries no payload.
type Watcher struct {
	mu   sync.Mutex
	subs map[int]chan struct{}
	next int
}

func NewWatcher() *Watcher {
	return &Watcher{subs: make(map[int]chan struct{})}
}

// Subscribe returns a notification channel and a cancel func. The channel
// has a buffer of one; coalesced notifications are fine since subscribers
// reload the whole list anyway.
func (w *Watcher) Subscribe() (<-chan struct{}, func()) {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.next
	w.next++
	ch := make(chan struct{}, 1)
	w.subs[id] = ch

	cancel := func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		if _, ok := w.subs[id]; ok {
			delete(w.subs, id)
			close(ch)
		}
	}
	return ch, cancel
}

func (w *Watcher) Notify() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, ch := range w.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
