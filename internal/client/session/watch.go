package session

import "sync"

// watchHub fans a key's latest value out to any number of subscribers.
// Each subscriber channel has capacity one; when a subscriber lags, the
// stale value is dropped so the channel always holds the newest one.
type watchHub struct {
	mu     sync.Mutex
	nextID int
	subs   map[string]map[int]chan string
	last   map[string]string
}

func newWatchHub() *watchHub {
	return &watchHub{
		subs: make(map[string]map[int]chan string),
		last: make(map[string]string),
	}
}

// subscribe registers a watcher for key. The channel is primed with the
// key's current value. The returned func cancels the subscription.
func (h *watchHub) subscribe(key string) (<-chan string, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++

	ch := make(chan string, 1)
	ch <- h.last[key]

	if h.subs[key] == nil {
		h.subs[key] = make(map[int]chan string)
	}
	h.subs[key][id] = ch

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if c, ok := h.subs[key][id]; ok {
			delete(h.subs[key], id)
			close(c)
		}
	}
	return ch, cancel
}

// publish records value as the key's latest and pushes it to every watcher.
func (h *watchHub) publish(key, value string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.last[key] = value
	for _, ch := range h.subs[key] {
		select {
		case <-ch:
		default:
		}
		ch <- value
	}
}
