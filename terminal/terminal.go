// Package terminal switches the controlling terminal into raw mode and
// restores it afterwards.
package terminal

import (
	"errors"
	"io"
	"time"
)

// DefaultReadTimeout is how long a read on Stdin waits for a byte before
// returning empty-handed.
const DefaultReadTimeout = 100 * time.Millisecond

// ErrNotTerminal is returned by EnableRawMode when stdin is not a tty.
var ErrNotTerminal = errors.New("not a terminal")

type Terminal interface {
	// EnableRawMode captures the current attributes and applies raw mode.
	EnableRawMode() error
	// DisableRawMode reinstalls the captured attributes. Calling it again,
	// or before EnableRawMode, is a no-op.
	DisableRawMode() error
	GetWindowSize() (width, height int, err error)
	// Stdin reads return (0, nil) when the read timeout elapses with no
	// input available.
	Stdin() io.Reader
	Stdout() io.Writer
	Close() error
}

// vtime converts a read timeout into termios VTIME units (tenths of a
// second), clamped to what the field can hold.
func vtime(d time.Duration) uint8 {
	t := (d + 50*time.Millisecond) / (100 * time.Millisecond)
	if t < 1 {
		return 1
	}
	if t > 255 {
		return 255
	}
	return uint8(t)
}
