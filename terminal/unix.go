//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

type stdTerminal struct {
	originalState *unix.Termios
	stdinFile     *os.File
	stdoutFile    *os.File
	readTimeout   time.Duration
}

// New returns the process's controlling terminal.
func New(readTimeout time.Duration) Terminal {
	return NewFromFiles(os.Stdin, os.Stdout, readTimeout)
}

// NewFromFiles builds a Terminal over an explicit tty pair.
func NewFromFiles(in, out *os.File, readTimeout time.Duration) Terminal {
	if readTimeout <= 0 {
		readTimeout = DefaultReadTimeout
	}
	return &stdTerminal{
		stdinFile:   in,
		stdoutFile:  out,
		readTimeout: readTimeout,
	}
}

func (t *stdTerminal) Close() error {
	return t.DisableRawMode()
}

func (t *stdTerminal) Stdin() io.Reader {
	return fdReader{fd: int(t.stdinFile.Fd())}
}

func (t *stdTerminal) Stdout() io.Writer {
	return t.stdoutFile
}

func (t *stdTerminal) EnableRawMode() error {
	fd := int(t.stdinFile.Fd())
	if !term.IsTerminal(fd) {
		return ErrNotTerminal
	}

	orig, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return fmt.Errorf("failed to get terminal attributes: %w", err)
	}
	saved := *orig
	t.originalState = &saved

	raw := *orig
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = vtime(t.readTimeout)

	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, &raw); err != nil {
		t.originalState = nil
		return fmt.Errorf("failed to set terminal attributes: %w", err)
	}
	return nil
}

func (t *stdTerminal) DisableRawMode() error {
	if t.originalState == nil {
		return nil
	}
	fd := int(t.stdinFile.Fd())
	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, t.originalState); err != nil {
		return fmt.Errorf("failed to restore terminal attributes: %w", err)
	}
	t.originalState = nil
	return nil
}

func (t *stdTerminal) GetWindowSize() (width, height int, err error) {
	width, height, err = term.GetSize(int(t.stdoutFile.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get window size: %w", err)
	}
	if width == 0 {
		return 0, 0, fmt.Errorf("failed to get window size: terminal reports zero columns")
	}
	return width, height, nil
}

// fdReader reads straight from the descriptor so that a VTIME expiry
// surfaces as (0, nil) rather than os.File's io.EOF.
type fdReader struct {
	fd int
}

func (r fdReader) Read(p []byte) (int, error) {
	n, err := unix.Read(r.fd, p)
	if err != nil {
		if errors.Is(err, unix.EINTR) || errors.Is(err, unix.EAGAIN) {
			return 0, nil
		}
		return 0, err
	}
	return n, nil
}
