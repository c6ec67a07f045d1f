package terminal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimTerminal(t *testing.T, w, h int, mode ColorMode) (Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	term := NewWithScreen(screen, mode)
	if err := term.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(term.Fini)
	return term, screen
}

func TestFlushWritesCells(t *testing.T) {
	term, screen := newSimTerminal(t, 4, 2, ColorModeTrueColor)

	cells := make([]Cell, 8)
	cells[1] = Cell{Rune: 'S', Fg: Hex(0xFDB813), Bg: RGBBlack, Attrs: AttrBold}
	cells[6] = Cell{Rune: '.', Fg: RGB{200, 200, 200}}
	term.Flush(cells, 4, 2)

	r, _, style, _ := screen.GetContent(1, 0)
	if r != 'S' {
		t.Errorf("cell(1,0) rune = %q, want 'S'", r)
	}
	fg, _, attrs := style.Decompose()
	if fg != tcell.NewRGBColor(0xFD, 0xB8, 0x13) {
		t.Errorf("cell(1,0) fg = %v", fg)
	}
	if attrs&tcell.AttrBold == 0 {
		t.Error("cell(1,0) not bold")
	}

	if r, _, _, _ := screen.GetContent(2, 1); r != '.' {
		t.Errorf("cell(2,1) rune = %q, want '.'", r)
	}
	// Zero rune renders as blank
	if r, _, _, _ := screen.GetContent(0, 0); r != ' ' {
		t.Errorf("cell(0,0) rune = %q, want ' '", r)
	}
}

func TestFiniIdempotent(t *testing.T) {
	term, _ := newSimTerminal(t, 2, 2, ColorMode256)
	term.Fini()
	term.Fini()
}

func TestRGBTo256(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want uint8
	}{
		{"black", RGB{0, 0, 0}, 16},
		{"white", RGB{255, 255, 255}, 231},
		{"pure red", RGB{255, 0, 0}, 196},
		{"mid gray", RGB{128, 128, 128}, 244},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGBTo256(tt.in); got != tt.want {
				t.Errorf("RGBTo256(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestHex(t *testing.T) {
	if got := Hex(0x6B93D6); got != (RGB{0x6B, 0x93, 0xD6}) {
		t.Errorf("Hex = %v", got)
	}
}

func TestParseColorMode(t *testing.T) {
	if ParseColorMode("256") != ColorMode256 {
		t.Error("256 not parsed")
	}
	if ParseColorMode("24bit") != ColorModeTrueColor {
		t.Error("24bit not parsed")
	}
}

func TestEmergencyReset(t *testing.T) {
	var buf bytes.Buffer
	EmergencyReset(&buf)
	if !strings.Contains(buf.String(), "\x1b[?1049l") {
		t.Error("missing alternate screen exit")
	}
}
