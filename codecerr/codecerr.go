// Package codecerr provides the shared error scaffolding that every
// codec package in this module embeds into its own error type. Each
// codec keeps its own Kind enumeration (per spec, error kinds are not
// unified across codecs) and exports no sentinel error values; callers
// tell errors apart by unwrapping with errors.As and reading Kind. This package
// only factors out the captured-location plumbing so that six codecs
// and bytebuffer do not each hand-roll it.
package codecerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Base is embedded by every codec-specific error type. Kind is an
// opaque byte owned by the embedding package; codecerr never inspects
// it. Msg is the human-readable description. The wrapped error carries
// a stack frame captured at construction time, standing in for the
// spec's "file, function, line, column" source-location record.
type Base struct {
	Kind byte
	Msg  string
	err  error
}

// New captures the call site and returns a Base ready to be embedded
// in a codec-specific error value.
func New(kind byte, msg string) Base {
	return Base{
		Kind: kind,
		Msg:  msg,
		err:  errors.WithStack(fmt.Errorf("%s", msg)),
	}
}

// Newf is New with fmt.Sprintf-style formatting.
func Newf(kind byte, format string, args ...any) Base {
	return New(kind, fmt.Sprintf(format, args...))
}

func (e Base) Error() string {
	return e.Msg
}

// Unwrap exposes the stack-carrying cause so errors.Is/As can reach it.
// Formatting a Base itself with %+v prints only Msg; the captured frame
// is printed by formatting the unwrapped cause with %+v, or read through
// StackTrace.
func (e Base) Unwrap() error {
	return e.err
}

// StackTrace exposes the frames captured at construction, for callers
// that want to log or print the location the way the spec's captured
// source-location record does.
func (e Base) StackTrace() errors.StackTrace {
	type stackTracer interface {
		StackTrace() errors.StackTrace
	}
	if st, ok := e.err.(stackTracer); ok {
		return st.StackTrace()
	}
	return nil
}

// Unreachable panics with a recognizable prefix. It stands in for the
// spec's UnreachableTerminate path: a logic invariant the implementation
// believes cannot be violated. Callers at the process boundary (cmd/binarytext)
// recover it, print the message, and exit non-zero instead of letting the
// runtime print a bare panic trace.
func Unreachable(where string) {
	panic("codecerr: unreachable: " + where)
}
