package editor

import (
	"math/rand"
	"testing"
)

func TestViewport_Scroll(t *testing.T) {
	tests := []struct {
		name   string
		offset int
		cy     int
		want   int
	}{
		{"visible", 0, 5, 0},
		{"above", 10, 3, 3},
		{"below", 0, 24, 1},
		{"far below", 0, 100, 77},
		{"last visible row", 10, 33, 10},
		{"first visible row", 10, 10, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Viewport{RowOffset: tt.offset, ScreenRows: 24, ScreenCols: 80}
			v.Scroll(tt.cy)
			if v.RowOffset != tt.want {
				t.Errorf("RowOffset = %d, want %d", v.RowOffset, tt.want)
			}
			v.Scroll(tt.cy)
			if v.RowOffset != tt.want {
				t.Errorf("second Scroll changed RowOffset to %d", v.RowOffset)
			}
		})
	}
}

func TestCursor_Move(t *testing.T) {
	v := Viewport{ScreenRows: 5, ScreenCols: 10}
	tests := []struct {
		name     string
		start    Cursor
		key      Key
		rowCount int
		want     Cursor
	}{
		{"left at edge", Cursor{0, 0}, ArrowLeft, 3, Cursor{0, 0}},
		{"left", Cursor{4, 0}, ArrowLeft, 3, Cursor{3, 0}},
		{"right", Cursor{0, 0}, ArrowRight, 3, Cursor{1, 0}},
		{"right at screen edge", Cursor{9, 0}, ArrowRight, 3, Cursor{9, 0}},
		{"right ignores row length", Cursor{5, 0}, ArrowRight, 0, Cursor{6, 0}},
		{"up at top", Cursor{0, 0}, ArrowUp, 3, Cursor{0, 0}},
		{"up", Cursor{0, 2}, ArrowUp, 3, Cursor{0, 1}},
		{"down", Cursor{0, 2}, ArrowDown, 3, Cursor{0, 3}},
		{"down past end", Cursor{0, 3}, ArrowDown, 3, Cursor{0, 3}},
		{"page down", Cursor{0, 0}, PageDown, 20, Cursor{0, 5}},
		{"page down clamps", Cursor{0, 18}, PageDown, 20, Cursor{0, 20}},
		{"page up", Cursor{0, 12}, PageUp, 20, Cursor{0, 7}},
		{"page up clamps", Cursor{0, 2}, PageUp, 20, Cursor{0, 0}},
		{"home", Cursor{7, 1}, HomeKey, 3, Cursor{0, 1}},
		{"end", Cursor{2, 1}, EndKey, 3, Cursor{9, 1}},
		{"delete is not movement", Cursor{2, 1}, DeleteKey, 3, Cursor{2, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.start
			c.Move(tt.key, tt.rowCount, v)
			if c != tt.want {
				t.Errorf("Move(%v) = %+v, want %+v", tt.key, c, tt.want)
			}
		})
	}
}

func TestCursor_RandomWalkStaysInBounds(t *testing.T) {
	keys := []Key{ArrowLeft, ArrowRight, ArrowUp, ArrowDown, PageUp, PageDown, HomeKey, EndKey}
	rng := rand.New(rand.NewSource(1))

	for _, rowCount := range []int{0, 1, 7, 100} {
		v := Viewport{ScreenRows: 6, ScreenCols: 12}
		var c Cursor
		for i := 0; i < 2000; i++ {
			k := keys[rng.Intn(len(keys))]
			c.Move(k, rowCount, v)
			v.Scroll(c.Y)

			if c.Y < 0 || c.Y > rowCount {
				t.Fatalf("rows=%d: cursor.Y = %d out of [0, %d]", rowCount, c.Y, rowCount)
			}
			if c.X < 0 || c.X > v.ScreenCols-1 {
				t.Fatalf("rows=%d: cursor.X = %d out of [0, %d]", rowCount, c.X, v.ScreenCols-1)
			}
			if c.Y < v.RowOffset || c.Y > v.RowOffset+v.ScreenRows-1 {
				t.Fatalf("rows=%d: cursor.Y = %d not visible with offset %d", rowCount, c.Y, v.RowOffset)
			}
		}
	}
}

func TestCursor_InverseMoves(t *testing.T) {
	v := Viewport{ScreenRows: 24, ScreenCols: 80}
	c := Cursor{X: 3, Y: 1}
	c.Move(ArrowDown, 2, v)
	c.Move(ArrowUp, 2, v)
	if c.Y != 1 {
		t.Errorf("cursor.Y = %d after down/up, want 1", c.Y)
	}
	c.Move(ArrowRight, 2, v)
	c.Move(ArrowLeft, 2, v)
	if c.X != 3 {
		t.Errorf("cursor.X = %d after right/left, want 3", c.X)
	}
}
