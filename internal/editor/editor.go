// Package editor implements the synchronous render-input loop: repaint the
// whole screen, wait up to 100ms for a single keystroke, dispatch it
// through the command table, repeat until quit.
package editor

import (
	"bytes"
	"context"
	"errors"
	"io"
)

// Screen control sequences (VT100).
const (
	escClearScreen = "\x1b[2J"
	escCursorHome  = "\x1b[H"
)

// ErrNoKey reports that a read timed out with no byte available. The loop
// treats it as a cue to repaint, not as a failure.
var ErrNoKey = errors.New("no key available")

// Command is the action bound to a key in the command table.
type Command int

const (
	// CommandNone leaves the loop running. Unbound bytes map here and are
	// reserved for future dispatch.
	CommandNone Command = iota
	// CommandQuit clears the screen and ends the session with success.
	CommandQuit
)

// KeyQuit ends the session. Ctrl-Q, the letter's code point masked to its
// control byte.
const KeyQuit = 'q' & 0x1f

// defaultCommands is the fixed command table. Represented as a map so new
// bindings extend it without restructuring the loop.
var defaultCommands = map[byte]Command{
	KeyQuit: CommandQuit,
}

// Editor drives one terminal session. It owns the raw byte source, the
// output stream, and the dimensions probed at startup.
type Editor struct {
	in       io.Reader
	out      io.Writer
	rows     int
	cols     int
	commands map[byte]Command
}

// New returns an Editor rendering rows×cols frames to out and reading
// single raw bytes from in.
func New(in io.Reader, out io.Writer, rows, cols int) *Editor {
	return &Editor{
		in:       in,
		out:      out,
		rows:     rows,
		cols:     cols,
		commands: defaultCommands,
	}
}

// RefreshScreen repaints the whole screen: clear, cursor home, one row
// marker per row, cursor home again. The frame is assembled in a buffer
// and written in a single call.
func (e *Editor) RefreshScreen() error {
	var buf bytes.Buffer
	buf.WriteString(escClearScreen)
	buf.WriteString(escCursorHome)
	e.drawRows(&buf)
	buf.WriteString(escCursorHome)
	_, err := e.out.Write(buf.Bytes())
	return err
}

// drawRows writes one marker line per screen row. OPOST is off in raw
// mode, so every line break carries its own carriage return.
func (e *Editor) drawRows(buf *bytes.Buffer) {
	for y := 0; y < e.rows; y++ {
		buf.WriteString("~\r\n")
	}
}

// ReadKey performs exactly one read of a single byte. With VMIN=0/VTIME=1
// a timed-out read returns zero bytes, which os.File surfaces as io.EOF;
// both shapes map to ErrNoKey. Genuine read failures propagate.
func (e *Editor) ReadKey() (byte, error) {
	var b [1]byte
	n, err := e.in.Read(b[:])
	if n == 0 {
		if err == nil || errors.Is(err, io.EOF) {
			return 0, ErrNoKey
		}
		return 0, err
	}
	return b[0], nil
}

// Dispatch resolves a key through the command table. Unbound bytes yield
// CommandNone.
func (e *Editor) Dispatch(key byte) Command {
	return e.commands[key]
}

// clearScreen leaves the terminal tidy for whatever runs next. Best effort:
// the session is ending either way.
func (e *Editor) clearScreen() {
	_, _ = io.WriteString(e.out, escClearScreen+escCursorHome)
}

// Run drives the loop until the quit command or ctx cancellation. A
// timed-out read skips dispatch and goes straight to the next repaint,
// which is what keeps the loop responsive without busy-spinning.
func (e *Editor) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			e.clearScreen()
			return err
		}
		if err := e.RefreshScreen(); err != nil {
			return err
		}
		key, err := e.ReadKey()
		if errors.Is(err, ErrNoKey) {
			continue
		}
		if err != nil {
			return err
		}
		if e.Dispatch(key) == CommandQuit {
			e.clearScreen()
			return nil
		}
	}
}
