package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Cell is one screen position; Rune 0 marks the trailing half of a wide glyph
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Buffer is a frame compositor flushed to a tcell screen in one pass
type Buffer struct {
	cells  []Cell
	base   tcell.Style
	width  int
	height int
}

// NewBuffer creates a buffer with the specified dimensions
func NewBuffer(width, height int, base tcell.Style) *Buffer {
	b := &Buffer{base: base}
	b.Resize(width, height)
	return b
}

// Size returns buffer dimensions
func (b *Buffer) Size() (int, int) { return b.width, b.height }

// SetBase changes the style used for cleared cells
func (b *Buffer) SetBase(style tcell.Style) { b.base = style }

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *Buffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to blank using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Style: b.base}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at x, y; out of bounds yields a zero cell
func (b *Buffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Set writes one rune and returns the number of columns it occupies
// Wide runes that would straddle the right edge are dropped
func (b *Buffer) Set(x, y int, r rune, style tcell.Style) int {
	w := runewidth.RuneWidth(r)
	if w == 0 {
		w = 1
	}
	if !b.inBounds(x, y) || x+w > b.width {
		return w
	}
	idx := y*b.width + x
	b.cells[idx] = Cell{Rune: r, Style: style}
	for i := 1; i < w; i++ {
		b.cells[idx+i] = Cell{Rune: 0, Style: style}
	}
	return w
}

// SetString writes s starting at x and returns the column after the last rune
func (b *Buffer) SetString(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		x += b.Set(x, y, r, style)
	}
	return x
}

// SetCentered writes s centered between x0 and x1 (exclusive)
func (b *Buffer) SetCentered(x0, x1, y int, s string, style tcell.Style) {
	w := runewidth.StringWidth(s)
	x := x0 + (x1-x0-w)/2
	if x < x0 {
		x = x0
	}
	b.SetString(x, y, s, style)
}

// Fill paints a rectangle with r
func (b *Buffer) Fill(x, y, w, h int, r rune, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			if b.inBounds(col, row) {
				b.cells[row*b.width+col] = Cell{Rune: r, Style: style}
			}
		}
	}
}

// HLine draws a horizontal run of r
func (b *Buffer) HLine(x, y, w int, r rune, style tcell.Style) {
	b.Fill(x, y, w, 1, r, style)
}

// Box draws a single-line frame
func (b *Buffer) Box(x, y, w, h int, style tcell.Style) {
	if w < 2 || h < 2 {
		return
	}
	b.HLine(x+1, y, w-2, '─', style)
	b.HLine(x+1, y+h-1, w-2, '─', style)
	for row := y + 1; row < y+h-1; row++ {
		b.Set(x, row, '│', style)
		b.Set(x+w-1, row, '│', style)
	}
	b.Set(x, y, '┌', style)
	b.Set(x+w-1, y, '┐', style)
	b.Set(x, y+h-1, '└', style)
	b.Set(x+w-1, y+h-1, '┘', style)
}

// Text returns row y as a string with wide-glyph placeholders skipped
func (b *Buffer) Text(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	runes := make([]rune, 0, b.width)
	for _, c := range b.cells[y*b.width : (y+1)*b.width] {
		if c.Rune != 0 {
			runes = append(runes, c.Rune)
		}
	}
	return string(runes)
}

// FlushToScreen writes the buffer to the screen; caller calls Show
func (b *Buffer) FlushToScreen(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x, c := range row {
			if c.Rune == 0 {
				continue
			}
			screen.SetContent(x, y, c.Rune, nil, c.Style)
		}
	}
}
