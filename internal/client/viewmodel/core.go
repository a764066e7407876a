// Package viewmodel holds the per-screen presentation logic. Each
// view-model exposes observable resource state and a one-shot event
// channel; the UI layer only subscribes and forwards intents.
package viewmodel

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/stis-apps/titiktemu/internal/client/api"
	"github.com/stis-apps/titiktemu/internal/logging"
	"github.com/stis-apps/titiktemu/internal/resource"
)

// MsgSessionExpired is shown when a request fails because the stored
// token was rejected.
const MsgSessionExpired = "Session expired. Please login again."

// eventBuffer bounds the one-shot event channel. Events beyond the
// buffer are dropped with a warning rather than blocking an operation
// goroutine on an absent consumer.
const eventBuffer = 8

// Core carries the lifecycle shared by every view-model: a context
// scoping in-flight operations, the event channel and the per-operation
// in-flight guard. Close cancels outstanding work.
type Core struct {
	ctx    context.Context
	cancel context.CancelFunc
	log    logging.Logger

	events     chan Event
	logoutOnce sync.Once

	mu       sync.Mutex
	inflight map[string]bool
}

func newCore(log logging.Logger) *Core {
	ctx, cancel := context.WithCancel(context.Background())
	return &Core{
		ctx:      ctx,
		cancel:   cancel,
		log:      log,
		events:   make(chan Event, eventBuffer),
		inflight: make(map[string]bool),
	}
}

// Events returns the one-shot event channel.
func (c *Core) Events() <-chan Event { return c.events }

// Close cancels every in-flight operation. The view-model must not be
// used afterwards.
func (c *Core) Close() { c.cancel() }

// begin marks op as running. It reports false when the same operation is
// already in flight, in which case the caller must not start another.
func (c *Core) begin(op string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inflight[op] {
		c.log.Debug(c.ctx, "operation already in flight, ignoring", "op", op)
		return false
	}
	c.inflight[op] = true
	return true
}

func (c *Core) end(op string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.inflight, op)
}

// emit delivers ev without blocking. A full buffer means nobody is
// listening, so the event is dropped.
func (c *Core) emit(ev Event) {
	select {
	case c.events <- ev:
	default:
		c.log.Warn(c.ctx, "event dropped, channel full", "kind", ev.Kind)
	}
}

func (c *Core) toast(msg string) {
	c.emit(Event{Kind: EventToast, Message: msg})
}

// notifyLogout emits EventLogout at most once for this view-model, no
// matter how many concurrent operations hit an expired session.
func (c *Core) notifyLogout() {
	c.logoutOnce.Do(func() {
		c.emit(Event{Kind: EventLogout})
	})
}

// run executes call on a goroutine scoped to the view-model, publishing
// Loading first and then exactly one terminal state. An unauthorized
// failure becomes the session-expired error state plus a single logout
// event. A second invocation of the same op while one is running is a
// no-op.
func run[T any](c *Core, op string, state *Observable[resource.Resource[T]], call func(ctx context.Context) (resource.Resource[T], error)) {
	if !c.begin(op) {
		return
	}
	go func() {
		defer c.end(op)

		state.Set(resource.Loading[T]())
		res, err := call(c.ctx)
		if c.ctx.Err() != nil {
			// view-model closed mid-flight, nobody is watching; the
			// Loading state must be the last one ever published
			return
		}
		if err != nil {
			if errors.Is(err, api.ErrUnauthorized) {
				state.Set(resource.Error[T](MsgSessionExpired))
				c.notifyLogout()
				return
			}
			c.log.Error(c.ctx, "operation failed", "op", op, "error", err)
			state.Set(resource.Error[T](fmt.Sprintf("Something went wrong: %v", err)))
			return
		}
		state.Set(res)
	}()
}
