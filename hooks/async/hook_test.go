package asynchook

import (
	"sync"
	"testing"

	"github.com/unkn0wn-root/base26"
)

type counter struct {
	mu        sync.Mutex
	rejects   int
	overflows int
}

func (c *counter) DecodeRejected(string, int) {
	c.mu.Lock()
	c.rejects++
	c.mu.Unlock()
}

func (c *counter) OverflowHandled(string, int) {
	c.mu.Lock()
	c.overflows++
	c.mu.Unlock()
}

func TestDeliversQueuedEventsOnClose(t *testing.T) {
	inner := &counter{}
	h := New(inner, 2, 64)

	c, err := base26.New(base26.Options{Overflow: base26.OverflowWrap, Hooks: h})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := 0; i < 5; i++ {
		_, _ = c.Decode("a1")
	}
	_, _ = c.Decode("zzzzzzzzzzzzzzzzzz")
	h.Close()

	if inner.rejects != 5 || inner.overflows != 1 {
		t.Fatalf("rejects=%d overflows=%d, want 5/1", inner.rejects, inner.overflows)
	}
}

func TestCloseIdempotentAndDropsAfterClose(t *testing.T) {
	inner := &counter{}
	h := New(inner, 0, 0)
	h.Close()
	h.Close()

	h.DecodeRejected("overflow", 14)
	h.OverflowHandled("wrap", 20)
	if inner.rejects != 0 || inner.overflows != 0 {
		t.Fatalf("events delivered after Close")
	}
}
