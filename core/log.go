package core

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NopLogger returns a logger that discards everything.
func NopLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
