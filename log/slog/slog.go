// Package slog adapts a *slog.Logger to base26.Logger.
package slog

import (
	"context"
	stdslog "log/slog"
	"maps"
	"slices"

	"github.com/unkn0wn-root/base26"
)

var _ base26.Logger = Logger{}

type Logger struct{ L *stdslog.Logger }

// New groups codec attributes under "base26".
func New(l *stdslog.Logger) Logger { return Logger{L: l.WithGroup("base26")} }

func (s Logger) Debug(msg string, f base26.Fields) { s.log(stdslog.LevelDebug, msg, f) }
func (s Logger) Info(msg string, f base26.Fields)  { s.log(stdslog.LevelInfo, msg, f) }
func (s Logger) Warn(msg string, f base26.Fields)  { s.log(stdslog.LevelWarn, msg, f) }
func (s Logger) Error(msg string, f base26.Fields) { s.log(stdslog.LevelError, msg, f) }

func (s Logger) log(lvl stdslog.Level, msg string, f base26.Fields) {
	ctx := context.Background()
	if !s.L.Enabled(ctx, lvl) {
		return
	}
	s.L.LogAttrs(ctx, lvl, msg, attrs(f)...)
}

// attrs are emitted in key order so output is stable.
func attrs(f base26.Fields) []stdslog.Attr {
	if len(f) == 0 {
		return nil
	}
	out := make([]stdslog.Attr, 0, len(f))
	for _, k := range slices.Sorted(maps.Keys(f)) {
		out = append(out, stdslog.Any(k, f[k]))
	}
	return out
}
