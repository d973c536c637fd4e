//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package term

import (
	"errors"
	"os"
	"sync/atomic"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// rawActive enforces the one-raw-session-per-process invariant.
var rawActive atomic.Bool

// Session holds the terminal attributes captured before any raw-mode
// mutation. The captured attributes are written once by Open and only read
// afterwards; they exist solely to put the terminal back the way it was.
type Session struct {
	in   *os.File
	out  *os.File
	orig *unix.Termios
	raw  bool
}

// Open captures the current configuration of the controlling terminal.
// It must succeed before any raw-mode mutation is attempted.
func Open(in, out *os.File) (*Session, error) {
	if !term.IsTerminal(int(in.Fd())) || !term.IsTerminal(int(out.Fd())) {
		return nil, &QueryError{Op: "open", Err: errors.New("stdin and stdout must be a terminal")}
	}
	orig, err := unix.IoctlGetTermios(int(in.Fd()), ioctlReadTermios)
	if err != nil {
		return nil, &QueryError{Op: "tcgetattr", Err: err}
	}
	return &Session{in: in, out: out, orig: orig}, nil
}

// makeRaw derives the raw configuration from orig: no echo, no canonical
// line assembly, no signal or flow-control keys, no extended processing, no
// output post-processing, no parity or bit stripping, 8-bit frames. Reads
// complete as soon as a byte is available and give up after 100ms
// (VMIN=0, VTIME=1).
func makeRaw(orig unix.Termios) unix.Termios {
	raw := orig
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1
	return raw
}

// EnterRaw applies the raw configuration derived from the captured
// attributes, discarding any unread pending input first. At most one
// session may be raw at a time.
func (s *Session) EnterRaw() error {
	if s == nil || s.orig == nil {
		return &ConfigureError{Op: "tcsetattr", Err: errors.New("no captured terminal attributes")}
	}
	if !rawActive.CompareAndSwap(false, true) {
		return &ConfigureError{Op: "tcsetattr", Err: errors.New("raw-mode session already active")}
	}
	raw := makeRaw(*s.orig)
	if err := unix.IoctlSetTermios(int(s.in.Fd()), ioctlWriteTermios, &raw); err != nil {
		rawActive.Store(false)
		return &ConfigureError{Op: "tcsetattr", Err: err}
	}
	// The runtime keeps pollable fds non-blocking, which lets EAGAIN
	// preempt the VTIME deadline. Reads must block in the syscall so the
	// 100ms policy applies.
	if err := unix.SetNonblock(int(s.in.Fd()), false); err != nil {
		restoreErr := unix.IoctlSetTermios(int(s.in.Fd()), ioctlWriteTermios, s.orig)
		rawActive.Store(false)
		if restoreErr == nil {
			return &ConfigureError{Op: "setblocking", Err: err}
		}
		return &ConfigureError{Op: "setblocking", Err: errors.Join(err, restoreErr)}
	}
	s.raw = true
	return nil
}

// Restore reapplies the attributes captured by Open. Callers run it
// deferred so the terminal is recovered on every exit path; calling it on a
// session that never entered raw mode is a no-op.
func (s *Session) Restore() error {
	if s == nil || s.orig == nil || !s.raw {
		return nil
	}
	s.raw = false
	rawActive.Store(false)
	if err := unix.IoctlSetTermios(int(s.in.Fd()), ioctlWriteTermios, s.orig); err != nil {
		return &ConfigureError{Op: "tcsetattr", Err: err}
	}
	return nil
}

// Input returns the terminal's input stream.
func (s *Session) Input() *os.File { return s.in }

// Output returns the terminal's output stream.
func (s *Session) Output() *os.File { return s.out }
