//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package term

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Size reports the terminal's visible dimensions by querying the window
// size of the output stream. There is no fallback strategy: a failed query
// or a zero-column answer aborts startup.
func Size(f *os.File) (rows, cols int, err error) {
	ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrGeometryUnavailable, err)
	}
	if ws.Col == 0 {
		return 0, 0, fmt.Errorf("%w: window size reports zero columns", ErrGeometryUnavailable)
	}
	return int(ws.Row), int(ws.Col), nil
}
