package viewmodel

import "sync"

// Observable holds the latest value of a state stream and fans it out to
// subscribers. A new subscriber immediately receives the current value;
// slow subscribers only ever see the latest one.
type Observable[T any] struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan T
	last   T
}

// NewObservable creates an observable primed with initial.
func NewObservable[T any](initial T) *Observable[T] {
	return &Observable[T]{
		subs: make(map[int]chan T),
		last: initial,
	}
}

// Get returns the current value.
func (o *Observable[T]) Get() T {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.last
}

// Set stores v as the current value and notifies all subscribers.
func (o *Observable[T]) Set(v T) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.last = v
	for _, ch := range o.subs {
		select {
		case <-ch:
		default:
		}
		ch <- v
	}
}

// Subscribe registers a subscriber. The returned channel carries the
// current value right away and every change after it. The cancel func
// must be called when the subscriber is done.
func (o *Observable[T]) Subscribe() (<-chan T, func()) {
	o.mu.Lock()
	defer o.mu.Unlock()

	id := o.nextID
	o.nextID++

	ch := make(chan T, 1)
	ch <- o.last
	o.subs[id] = ch

	cancel := func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		delete(o.subs, id)
	}
	return ch, cancel
}
