//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package term

import "golang.org/x/sys/unix"

const (
	ioctlReadTermios = unix.TIOCGETA

	// TIOCSETAF drains pending output and discards unread input before
	// applying, matching tcsetattr(TCSAFLUSH).
	ioctlWriteTermios = unix.TIOCSETAF
)
