// Package logrus adapts a logrus entry to base26.Logger.
package logrus

import (
	"github.com/sirupsen/logrus"
	"github.com/unkn0wn-root/base26"
)

var _ base26.Logger = Logger{}

type Logger struct{ E *logrus.Entry }

// New tags every entry with component=base26.
func New(l *logrus.Logger) Logger {
	return Logger{E: l.WithField("component", "base26")}
}

func (l Logger) Debug(msg string, f base26.Fields) { l.with(f).Debug(msg) }
func (l Logger) Info(msg string, f base26.Fields)  { l.with(f).Info(msg) }
func (l Logger) Warn(msg string, f base26.Fields)  { l.with(f).Warn(msg) }
func (l Logger) Error(msg string, f base26.Fields) { l.with(f).Error(msg) }

func (l Logger) with(f base26.Fields) *logrus.Entry {
	if len(f) == 0 {
		return l.E
	}
	return l.E.WithFields(logrus.Fields(f))
}
