// Package solverlog adapts github.com/sirupsen/logrus to the sat.Logger
// interface, per the logging seam named in spec §9 and wired in
// SPEC_FULL.md §2.1.
package solverlog

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/rhartert/cdclsat/internal/sat"
)

// Adapter wraps a *logrus.Logger to satisfy sat.Logger.
type Adapter struct {
	log *logrus.Logger
}

var _ sat.Logger = (*Adapter)(nil)

// New returns an Adapter writing to stderr with the given format ("text" or
// "json") and level. An unrecognized format falls back to text.
func New(format string, level logrus.Level) *Adapter {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(level)
	if format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return &Adapter{log: l}
}

func (a *Adapter) Debugf(format string, args ...any) {
	a.log.Debugf(format, args...)
}

func (a *Adapter) Infof(format string, args ...any) {
	a.log.Infof(format, args...)
}
