//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package term

import (
	"errors"
	"os"
)

// Session holds the terminal attributes captured before any raw-mode
// mutation. Raw mode is not implemented on this platform.
type Session struct {
	in  *os.File
	out *os.File
}

var errUnsupported = errors.New("raw mode not supported on this platform")

// Open captures the current configuration of the controlling terminal.
func Open(in, out *os.File) (*Session, error) {
	return nil, &QueryError{Op: "open", Err: errUnsupported}
}

// EnterRaw applies the raw configuration.
func (s *Session) EnterRaw() error {
	return &ConfigureError{Op: "tcsetattr", Err: errUnsupported}
}

// Restore reapplies the attributes captured by Open.
func (s *Session) Restore() error { return nil }

// Input returns the terminal's input stream.
func (s *Session) Input() *os.File { return s.in }

// Output returns the terminal's output stream.
func (s *Session) Output() *os.File { return s.out }

// Size reports the terminal's visible dimensions.
func Size(f *os.File) (rows, cols int, err error) {
	return 0, 0, ErrGeometryUnavailable
}
