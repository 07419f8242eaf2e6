// Package editor runs the interactive viewing session: it decodes key
// presses, moves the cursor, and redraws the screen.
package editor

import (
	"fmt"
	"io"
	"log"

	"github.com/bulga138/kilo/buffer"
	"github.com/bulga138/kilo/config"
	"github.com/bulga138/kilo/terminal"
)

// ANSI escape codes
const (
	ansiHideCursor  = "\x1b[?25l"
	ansiShowCursor  = "\x1b[?25h"
	ansiClearScreen = "\x1b[2J"
	ansiMoveToHome  = "\x1b[H"
	ansiClearLine   = "\x1b[K"
)

type sessionState int

const (
	stateRunning sessionState = iota
	stateTerminated
)

type Editor struct {
	term     terminal.Terminal
	in       io.Reader
	out      io.Writer
	config   config.Config
	filename string
	doc      *buffer.Document
	cursor   Cursor
	view     Viewport
	quitKey  Key
	state    sessionState
}

func NewEditor(term terminal.Terminal, cfg config.Config, file string) (*Editor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &Editor{
		term:     term,
		in:       term.Stdin(),
		out:      term.Stdout(),
		config:   cfg,
		filename: file,
		doc:      &buffer.Document{},
		quitKey:  CtrlKey(cfg.QuitKey[0]),
		state:    stateTerminated,
	}, nil
}

// Run enters raw mode, loads the file and loops until the quit key is
// pressed. Every return path restores the terminal. A non-nil error is a
// *FatalError, returned after the screen has been cleared.
func (e *Editor) Run() (err error) {
	defer func() {
		if r := recover(); r != nil {
			e.clearScreen()
			e.term.DisableRawMode()
			panic(r)
		}
		if err != nil {
			e.clearScreen()
		}
		if rerr := e.term.DisableRawMode(); rerr != nil && err == nil {
			e.clearScreen()
			err = fatal("restore terminal", rerr)
		}
		e.state = stateTerminated
		if err != nil {
			log.Printf("Session ended: %v", err)
		}
	}()

	if err := e.setup(); err != nil {
		return err
	}
	for e.state == stateRunning {
		if err := e.render(); err != nil {
			return err
		}
		key, err := readKey(e.in)
		if err != nil {
			return err
		}
		if err := e.processKey(key); err != nil {
			return err
		}
	}
	log.Println("Quit requested")
	return nil
}

func (e *Editor) setup() error {
	if err := e.term.EnableRawMode(); err != nil {
		return fatal("enable raw mode", err)
	}

	w, h, err := e.term.GetWindowSize()
	if err != nil {
		return fatal("get window size", err)
	}
	if w < 1 || h < 1 {
		return fatal("get window size", fmt.Errorf("invalid size %dx%d", w, h))
	}
	e.view = Viewport{ScreenRows: h, ScreenCols: w}
	log.Printf("Window size: %dx%d", w, h)

	if e.filename != "" {
		doc, err := buffer.Load(e.filename)
		if err != nil {
			return fatal("load file", err)
		}
		e.doc = doc
		log.Printf("Loaded %d rows from %s", doc.RowCount(), e.filename)
	}

	e.cursor = Cursor{}
	e.state = stateRunning
	return nil
}

func (e *Editor) processKey(k Key) error {
	switch {
	case k == e.quitKey:
		e.state = stateTerminated
		if _, err := io.WriteString(e.out, ansiClearScreen+ansiMoveToHome); err != nil {
			return fatal("write", err)
		}
	case isMovementKey(k):
		e.cursor.Move(k, e.doc.RowCount(), e.view)
	default:
		log.Printf("Ignoring key %v", k)
	}
	return nil
}

func (e *Editor) clearScreen() {
	io.WriteString(e.out, ansiClearScreen+ansiMoveToHome)
}
