// Package log provides the one zerolog.Logger shape shared by cactus and
// reference, mirroring the ambient structured-logging stack pulled in from
// the rest of the example corpus (the teacher itself only reaches for
// stdlib log, in its runnable examples).
package log

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New returns a JSON logger writing to stderr, tagged with component. The
// cactus and reference packages accept such a logger (NewFlower,
// reference.Options.Log) but do not write any log entries to it.
func New(component string) zerolog.Logger {
	return NewWithWriter(os.Stderr, component)
}

// NewWithWriter is New with an explicit sink, used by tests that want to
// capture log output instead of writing to stderr.
func NewWithWriter(w io.Writer, component string) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Str("component", component).Logger()
}

// Nop returns a logger that discards everything, for call sites (such as
// tests of unrelated behavior) that don't care about log output.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
