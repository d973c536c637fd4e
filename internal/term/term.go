// Package term owns the controlling terminal: it captures the terminal's
// original attributes, transitions it into raw mode for character-at-a-time
// unechoed input, guarantees restoration on every exit path, and probes the
// visible window size.
package term

import "errors"

// QueryError reports a failure to read the terminal's configuration.
// It is fatal at startup: the program has no interface without a terminal.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *QueryError) Unwrap() error { return e.Err }

// ConfigureError reports a failure to apply a terminal configuration.
type ConfigureError struct {
	Op  string
	Err error
}

func (e *ConfigureError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *ConfigureError) Unwrap() error { return e.Err }

// ErrGeometryUnavailable is returned by Size when the window-size query
// fails or reports zero columns. A zero-width answer is treated as a broken
// query, not a real terminal shape.
var ErrGeometryUnavailable = errors.New("terminal geometry unavailable")
