package editor

import "fmt"

// Key is one decoded logical key press. Values below 256 are the raw byte
// read from the terminal; named keys start above that range.
type Key int

const keyEscape Key = 0x1b

const (
	ArrowLeft Key = iota + 1000
	ArrowRight
	ArrowUp
	ArrowDown
	DeleteKey
	HomeKey
	EndKey
	PageUp
	PageDown
)

// CtrlKey maps a letter to the byte the terminal sends for Ctrl+letter.
func CtrlKey(k byte) Key {
	return Key(k & 0x1f)
}

func (k Key) String() string {
	switch k {
	case keyEscape:
		return "Esc"
	case ArrowLeft:
		return "Left"
	case ArrowRight:
		return "Right"
	case ArrowUp:
		return "Up"
	case ArrowDown:
		return "Down"
	case DeleteKey:
		return "Delete"
	case HomeKey:
		return "Home"
	case EndKey:
		return "End"
	case PageUp:
		return "PageUp"
	case PageDown:
		return "PageDown"
	}
	if k >= 0 && k < 0x20 {
		return fmt.Sprintf("Ctrl+%c", byte(k)+'@')
	}
	if k < 0x7f {
		return fmt.Sprintf("%q", rune(k))
	}
	return fmt.Sprintf("0x%02x", int(k))
}
