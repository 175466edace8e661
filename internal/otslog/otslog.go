// Package otslog is the thin structured-logging seam used by the
// transaction engine and the L2CAP channel. The teacher (paypal-gatt)
// reaches for bare log.Printf at exactly these call sites; this package
// swaps that for the logrus dependency the teacher's own go.mod already
// names but never imports.
package otslog

import "github.com/sirupsen/logrus"

// Logger is a *logrus.Entry with a couple of domain-shaped convenience
// methods. A nil *Logger is valid and discards everything, so callers that
// don't care about logging can leave it unset.
type Logger struct {
	entry *logrus.Entry
}

// New wraps a fresh logrus.Logger at the given level.
func New(level logrus.Level) *Logger {
	l := logrus.New()
	l.SetLevel(level)
	return &Logger{entry: logrus.NewEntry(l)}
}

// Discard returns a Logger that drops everything, for callers that don't
// want any log output.
func Discard() *Logger {
	l := logrus.New()
	l.SetOutput(discardWriter{})
	return &Logger{entry: logrus.NewEntry(l)}
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

// With returns a child Logger with the given fields attached to every
// subsequent entry.
func (l *Logger) With(fields logrus.Fields) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{entry: l.entry.WithFields(fields)}
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	if l == nil {
		return
	}
	l.entry.Debugf(format, args...)
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	if l == nil {
		return
	}
	l.entry.Warnf(format, args...)
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	if l == nil {
		return
	}
	l.entry.Errorf(format, args...)
}
