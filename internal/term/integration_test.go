//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package term

import (
	"errors"
	"io"
	"os"
	"testing"
	"time"

	"github.com/creack/pty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// openPTY returns a pty pair or skips when the environment has none.
func openPTY(t *testing.T) (ptmx, tty *os.File) {
	t.Helper()
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("no pty available: %v", err)
	}
	t.Cleanup(func() {
		ptmx.Close()
		tty.Close()
	})
	return ptmx, tty
}

func getAttrs(t *testing.T, f *os.File) unix.Termios {
	t.Helper()
	attrs, err := unix.IoctlGetTermios(int(f.Fd()), ioctlReadTermios)
	require.NoError(t, err)
	return *attrs
}

func TestSession_RawRoundTrip(t *testing.T) {
	_, tty := openPTY(t)

	orig := getAttrs(t, tty)

	s, err := Open(tty, tty)
	require.NoError(t, err)
	require.NoError(t, s.EnterRaw())
	defer s.Restore()

	raw := getAttrs(t, tty)
	assert.Zero(t, raw.Lflag&unix.ECHO)
	assert.Zero(t, raw.Lflag&unix.ICANON)
	assert.Zero(t, raw.Lflag&unix.ISIG)
	assert.Zero(t, raw.Oflag&unix.OPOST)
	assert.EqualValues(t, 0, raw.Cc[unix.VMIN])
	assert.EqualValues(t, 1, raw.Cc[unix.VTIME])

	require.NoError(t, s.Restore())

	// Byte-for-byte back to the captured configuration.
	assert.Equal(t, orig, getAttrs(t, tty))
}

func TestSession_SecondRawSessionRejected(t *testing.T) {
	_, tty := openPTY(t)

	first, err := Open(tty, tty)
	require.NoError(t, err)
	second, err := Open(tty, tty)
	require.NoError(t, err)

	require.NoError(t, first.EnterRaw())

	var cerr *ConfigureError
	assert.ErrorAs(t, second.EnterRaw(), &cerr)

	require.NoError(t, first.Restore())

	// The guard is released with the session.
	require.NoError(t, second.EnterRaw())
	require.NoError(t, second.Restore())
}

func TestSession_RestoreTwiceIsNoOp(t *testing.T) {
	_, tty := openPTY(t)

	s, err := Open(tty, tty)
	require.NoError(t, err)
	require.NoError(t, s.EnterRaw())

	require.NoError(t, s.Restore())
	require.NoError(t, s.Restore())
}

func TestRawRead_TimesOutEmpty(t *testing.T) {
	_, tty := openPTY(t)

	s, err := Open(tty, tty)
	require.NoError(t, err)
	require.NoError(t, s.EnterRaw())
	defer s.Restore()

	// With VMIN=0/VTIME=1 an idle terminal yields a zero-byte read in
	// roughly 100ms, never an error.
	start := time.Now()
	buf := make([]byte, 1)
	n, err := tty.Read(buf)
	elapsed := time.Since(start)

	assert.Zero(t, n)
	if err != nil {
		assert.True(t, errors.Is(err, io.EOF), "unexpected read error: %v", err)
	}
	assert.Less(t, elapsed, 2*time.Second)
}

func TestRawRead_DeliversPendingByte(t *testing.T) {
	ptmx, tty := openPTY(t)

	s, err := Open(tty, tty)
	require.NoError(t, err)
	require.NoError(t, s.EnterRaw())
	defer s.Restore()

	_, err = ptmx.Write([]byte{0x11})
	require.NoError(t, err)

	buf := make([]byte, 1)
	n, err := tty.Read(buf)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	assert.Equal(t, byte(0x11), buf[0])
}

func TestSize_ReportsWindowDimensions(t *testing.T) {
	ptmx, tty := openPTY(t)

	require.NoError(t, pty.Setsize(ptmx, &pty.Winsize{Rows: 24, Cols: 80}))

	rows, cols, err := Size(tty)
	require.NoError(t, err)
	assert.Equal(t, 24, rows)
	assert.Equal(t, 80, cols)
}

func TestSize_ZeroColumnsIsUnavailable(t *testing.T) {
	ptmx, tty := openPTY(t)

	require.NoError(t, pty.Setsize(ptmx, &pty.Winsize{Rows: 24, Cols: 0}))

	_, _, err := Size(tty)
	assert.ErrorIs(t, err, ErrGeometryUnavailable)
}

func TestSize_NonTerminal(t *testing.T) {
	devnull, err := os.Open(os.DevNull)
	require.NoError(t, err)
	defer devnull.Close()

	_, _, err = Size(devnull)
	assert.ErrorIs(t, err, ErrGeometryUnavailable)
}
