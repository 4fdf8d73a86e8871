// Package zap adapts a *zap.Logger to base26.Logger.
package zap

import (
	"maps"
	"slices"

	"github.com/unkn0wn-root/base26"
	"go.uber.org/zap"
)

var _ base26.Logger = Logger{}

type Logger struct{ L *zap.Logger }

// New names l "base26" so codec events are easy to filter.
func New(l *zap.Logger) Logger { return Logger{L: l.Named("base26")} }

func (z Logger) Debug(msg string, f base26.Fields) { z.L.Debug(msg, fields(f)...) }
func (z Logger) Info(msg string, f base26.Fields)  { z.L.Info(msg, fields(f)...) }
func (z Logger) Warn(msg string, f base26.Fields)  { z.L.Warn(msg, fields(f)...) }
func (z Logger) Error(msg string, f base26.Fields) { z.L.Error(msg, fields(f)...) }

func fields(f base26.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(f))
	for _, k := range slices.Sorted(maps.Keys(f)) {
		out = append(out, zap.Any(k, f[k]))
	}
	return out
}
