// Package sloghooks reports base26 decode events through log/slog.
package sloghooks

import (
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/base26"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	RejectEvery   uint64
	OverflowEvery uint64
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	rejectCtr   atomic.Uint64
	overflowCtr atomic.Uint64
}

var _ base26.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) DecodeRejected(reason string, length int) {
	if h.l == nil || !sample(h.opts.RejectEvery, &h.rejectCtr) {
		return
	}
	h.l.Debug("base26.decode_rejected",
		"reason", reason,
		"len", length)
}

func (h *Hooks) OverflowHandled(policy string, length int) {
	if h.l == nil || !sample(h.opts.OverflowEvery, &h.overflowCtr) {
		return
	}
	h.l.Warn("base26.overflow_handled",
		"policy", policy,
		"len", length)
}
