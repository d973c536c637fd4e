//go:build linux

package term

import "golang.org/x/sys/unix"

const (
	ioctlReadTermios = unix.TCGETS

	// TCSETSF drains pending output and discards unread input before
	// applying, matching tcsetattr(TCSAFLUSH).
	ioctlWriteTermios = unix.TCSETSF
)
