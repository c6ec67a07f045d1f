package render

import (
	"github.com/lixenwraith/orrery/terminal"
)

// RenderBuffer is a compositor backed by a terminal.Cell array
// Uses []terminal.Cell directly to allow zero-copy export
type RenderBuffer struct {
	cells  []terminal.Cell
	width  int
	height int
}

// NewRenderBuffer creates a cleared buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity is insufficient
func (b *RenderBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]terminal.Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to empty background using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = terminal.Cell{Fg: ColorText, Bg: ColorBackground}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Size returns buffer dimensions
func (b *RenderBuffer) Size() (int, int) {
	return b.width, b.height
}

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at (x, y), zero cell when out of bounds
func (b *RenderBuffer) Get(x, y int) terminal.Cell {
	if !b.inBounds(x, y) {
		return terminal.Cell{}
	}
	return b.cells[y*b.width+x]
}

// ===== COMPOSITOR API =====

// Set composites a cell with the given blend mode, a zero rune keeps the existing glyph
func (b *RenderBuffer) Set(x, y int, mainRune rune, fg, bg RGB, mode BlendMode, alpha float64, attrs terminal.Attr) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]

	op := uint8(mode) & 0x0F
	flags := uint8(mode) & 0xF0

	if mainRune != 0 {
		dst.Rune = mainRune
		dst.Attrs = attrs
	}
	if flags&flagBg != 0 {
		dst.Bg = apply(op, dst.Bg, bg, alpha)
	}
	if flags&flagFg != 0 {
		dst.Fg = apply(op, dst.Fg, fg, alpha)
	}
}

// SetFgOnly writes rune, foreground and attrs while preserving the background
func (b *RenderBuffer) SetFgOnly(x, y int, r rune, fg RGB, attrs terminal.Attr) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Fg = fg
	dst.Attrs = attrs
}

// SetBgOnly updates the background while preserving rune and foreground
func (b *RenderBuffer) SetBgOnly(x, y int, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x].Bg = bg
}

// SetWithBg writes an opaque cell
func (b *RenderBuffer) SetWithBg(x, y int, r rune, fg, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Fg = fg
	dst.Bg = bg
	dst.Attrs = terminal.AttrNone
}

// WriteString writes s left to right starting at (x, y) and returns the column after the last rune
func (b *RenderBuffer) WriteString(x, y int, s string, fg RGB, attrs terminal.Attr) int {
	for _, r := range s {
		b.SetFgOnly(x, y, r, fg, attrs)
		x++
	}
	return x
}

// FillRow paints background bg across row y from column x0 to x1 inclusive
func (b *RenderBuffer) FillRow(y, x0, x1 int, bg RGB) {
	for x := max(x0, 0); x <= x1 && x < b.width; x++ {
		b.SetWithBg(x, y, ' ', ColorText, bg)
	}
}

// ===== OUTPUT =====

// FlushToTerminal writes the buffer to the terminal
func (b *RenderBuffer) FlushToTerminal(term terminal.Terminal) {
	term.Flush(b.cells, b.width, b.height)
}
