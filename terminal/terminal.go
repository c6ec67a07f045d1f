package terminal

import (
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
)

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone    Attr = 0
	AttrBold    Attr = 1 << 0
	AttrDim     Attr = 1 << 1
	AttrReverse Attr = 1 << 2
)

// Cell represents a single terminal cell
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs Attr
}

// Terminal is the output surface and input source the app runs against
type Terminal interface {
	// Init enters the alternate screen and enables mouse motion reporting
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions
	Size() (width, height int)

	// Flush writes cell buffer to the screen, cells are row-major: cells[y*width + x]
	Flush(cells []Cell, width, height int)

	// PollEvent blocks until next input event, nil once the screen is finalized
	PollEvent() tcell.Event

	// ColorMode returns the active color capability
	ColorMode() ColorMode
}

type tcellTerminal struct {
	screen    tcell.Screen
	colorMode ColorMode
	finalized bool
}

// New creates a Terminal on the process tty
func New(mode ColorMode) (Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return &tcellTerminal{screen: screen, colorMode: mode}, nil
}

// NewWithScreen wraps an existing screen, used with tcell.NewSimulationScreen in tests
func NewWithScreen(screen tcell.Screen, mode ColorMode) Terminal {
	return &tcellTerminal{screen: screen, colorMode: mode}
}

func (t *tcellTerminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	t.screen.EnableMouse(tcell.MouseMotionEvents)
	t.screen.HideCursor()
	t.screen.Clear()
	return nil
}

func (t *tcellTerminal) Fini() {
	if t.finalized {
		return
	}
	t.finalized = true
	t.screen.DisableMouse()
	t.screen.Fini()
}

func (t *tcellTerminal) Size() (int, int) {
	return t.screen.Size()
}

func (t *tcellTerminal) ColorMode() ColorMode {
	return t.colorMode
}

func (t *tcellTerminal) Flush(cells []Cell, width, height int) {
	for y := 0; y < height; y++ {
		row := cells[y*width : (y+1)*width]
		for x, c := range row {
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			t.screen.SetContent(x, y, r, nil, t.style(c))
		}
	}
	t.screen.Show()
}

func (t *tcellTerminal) PollEvent() tcell.Event {
	return t.screen.PollEvent()
}

func (t *tcellTerminal) style(c Cell) tcell.Style {
	st := tcell.StyleDefault.
		Foreground(c.Fg.toColor(t.colorMode)).
		Background(c.Bg.toColor(t.colorMode))
	if c.Attrs&AttrBold != 0 {
		st = st.Bold(true)
	}
	if c.Attrs&AttrDim != 0 {
		st = st.Dim(true)
	}
	if c.Attrs&AttrReverse != 0 {
		st = st.Reverse(true)
	}
	return st
}

// EmergencyReset writes raw restore sequences when the screen could not be finalized normally
func EmergencyReset(w io.Writer) {
	// Mouse tracking off, cursor on, leave alternate screen, reset attributes
	io.WriteString(w, "\x1b[?1003l\x1b[?1002l\x1b[?1000l\x1b[?1006l")
	io.WriteString(w, "\x1b[?25h\x1b[?1049l\x1b[0m")

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}
