package editor

// Cursor is a position in file coordinates: Y is the row index, with
// Y == RowCount meaning the line past the end of the file; X is a screen
// column.
type Cursor struct {
	X, Y int
}

// Viewport is the window of rows currently on screen. The screen size is
// captured once at startup.
type Viewport struct {
	RowOffset  int
	ScreenRows int
	ScreenCols int
}

// Scroll moves RowOffset the minimum amount needed to keep row cy visible.
func (v *Viewport) Scroll(cy int) {
	if cy < v.RowOffset {
		v.RowOffset = cy
	}
	if cy >= v.RowOffset+v.ScreenRows {
		v.RowOffset = cy - v.ScreenRows + 1
	}
	if v.RowOffset < 0 {
		v.RowOffset = 0
	}
}

// Move applies one movement key. X is bounded by the screen width rather
// than the length of the current row.
func (c *Cursor) Move(key Key, rowCount int, v Viewport) {
	switch key {
	case ArrowLeft:
		if c.X > 0 {
			c.X--
		}
	case ArrowRight:
		if c.X < v.ScreenCols-1 {
			c.X++
		}
	case ArrowUp:
		if c.Y > 0 {
			c.Y--
		}
	case ArrowDown:
		if c.Y < rowCount {
			c.Y++
		}
	case PageUp, PageDown:
		dir := ArrowUp
		if key == PageDown {
			dir = ArrowDown
		}
		for i := 0; i < v.ScreenRows; i++ {
			c.Move(dir, rowCount, v)
		}
	case HomeKey:
		c.X = 0
	case EndKey:
		c.X = v.ScreenCols - 1
	}
}

func isMovementKey(k Key) bool {
	switch k {
	case ArrowLeft, ArrowRight, ArrowUp, ArrowDown, PageUp, PageDown, HomeKey, EndKey:
		return true
	}
	return false
}
