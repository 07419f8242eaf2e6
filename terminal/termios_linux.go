package terminal

import "golang.org/x/sys/unix"

const (
	ioctlGetTermios = unix.TCGETS
	// Flush pending input when switching, like tcsetattr(TCSAFLUSH).
	ioctlSetTermios = unix.TCSETSF
)
