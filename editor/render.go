package editor

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/bulga138/kilo/version"
)

// render scrolls the viewport to the cursor and writes one full frame
// with a single Write call.
func (e *Editor) render() error {
	e.view.Scroll(e.cursor.Y)
	if _, err := e.out.Write(e.frame()); err != nil {
		return fatal("write", err)
	}
	return nil
}

func (e *Editor) frame() []byte {
	var ab bytes.Buffer
	ab.Grow(e.view.ScreenRows * (e.view.ScreenCols + len(ansiClearLine) + 2))
	ab.WriteString(ansiHideCursor)
	ab.WriteString(ansiMoveToHome)
	e.drawRows(&ab)
	fmt.Fprintf(&ab, "\x1b[%d;%dH", e.cursor.Y-e.view.RowOffset+1, e.cursor.X+1)
	ab.WriteString(ansiShowCursor)
	return ab.Bytes()
}

func (e *Editor) drawRows(ab *bytes.Buffer) {
	for y := 0; y < e.view.ScreenRows; y++ {
		fileRow := y + e.view.RowOffset
		if row, ok := e.doc.Row(fileRow); ok {
			chars := row.Bytes()
			if len(chars) > e.view.ScreenCols {
				chars = chars[:e.view.ScreenCols]
			}
			ab.Write(chars)
		} else if e.doc.RowCount() == 0 && y == e.view.ScreenRows/3 {
			e.drawWelcome(ab)
		} else {
			ab.WriteByte('~')
		}

		ab.WriteString(ansiClearLine)
		if y < e.view.ScreenRows-1 {
			ab.WriteString("\r\n")
		}
	}
}

func (e *Editor) drawWelcome(ab *bytes.Buffer) {
	welcome := runewidth.Truncate(version.Banner(), e.view.ScreenCols, "")
	padding := (e.view.ScreenCols - runewidth.StringWidth(welcome)) / 2
	if padding > 0 {
		ab.WriteByte('~')
		padding--
	}
	ab.WriteString(strings.Repeat(" ", padding))
	ab.WriteString(welcome)
}
