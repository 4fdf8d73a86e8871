// usage:
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{RejectEvery: 100})
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	c, _ := base26.New(base26.Options{
//	    Overflow: base26.OverflowSaturate,
//	    Hooks:    hooks,
//	})
package asynchook

import (
	"sync"

	"github.com/unkn0wn-root/base26"
)

// Hooks forwards events to inner on worker goroutines. Events are dropped
// when the queue is full or after Close.
type Hooks struct {
	inner base26.Hooks
	q     chan func()
	wg    sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

var _ base26.Hooks = (*Hooks)(nil)

func New(inner base26.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close drains queued events and stops the workers. Safe to call twice.
func (h *Hooks) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	close(h.q)
	h.mu.Unlock()
	h.wg.Wait()
}

func (h *Hooks) try(f func()) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return
	}
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) DecodeRejected(reason string, length int) {
	h.try(func() { h.inner.DecodeRejected(reason, length) })
}

func (h *Hooks) OverflowHandled(policy string, length int) {
	h.try(func() { h.inner.OverflowHandled(policy, length) })
}
