package render

import (
	"fmt"
	"unicode/utf8"

	"github.com/lixenwraith/orrery/pick"
	"github.com/lixenwraith/orrery/terminal"
)

const (
	hudRows     = 2
	DefaultHelp = "1-8 select  +/- speed  [/] time  f/click focus  r reset  arrows/drag orbit  PgUp/PgDn/wheel zoom  q quit"
)

func (r *Renderer) drawTooltip(t pick.Tooltip) {
	if !t.Visible {
		return
	}
	w, h := r.buf.Size()
	width := max(utf8.RuneCountInString(t.Title), utf8.RuneCountInString(t.Text)) + 2
	x, y := t.X, t.Y
	if x+width > w {
		x = max(0, w-width)
	}
	if y+2 > h-hudRows {
		y = max(0, t.Y-3)
	}

	r.buf.FillRow(y, x, x+width-1, ColorTooltipBg)
	r.buf.FillRow(y+1, x, x+width-1, ColorTooltipBg)
	r.buf.WriteString(x+1, y, t.Title, ColorTooltipHdr, terminal.AttrBold)
	r.buf.WriteString(x+1, y+1, t.Text, ColorTooltipFg, terminal.AttrNone)
}

func (r *Renderer) drawHUD(ov Overlay) {
	w, h := r.buf.Size()
	if h < hudRows+1 {
		return
	}
	statusY := h - 2
	helpY := h - 1
	r.buf.FillRow(statusY, 0, w-1, ColorHUDBg)
	r.buf.FillRow(helpY, 0, w-1, ColorHUDBg)

	x := 1
	x = r.buf.WriteString(x, statusY, "[space] ", ColorHUDKey, terminal.AttrNone)
	x = r.buf.WriteString(x, statusY, ov.RunningLabel, ColorText, terminal.AttrBold)

	state, stateFg := "RUNNING", ColorRunning
	if !ov.Running {
		state, stateFg = "PAUSED", ColorPaused
	}
	x = r.buf.WriteString(x+2, statusY, state, stateFg, terminal.AttrBold)

	x = r.buf.WriteString(x+2, statusY, fmt.Sprintf("time ×%.2f", ov.TimeScale), ColorText, terminal.AttrNone)

	if ov.Selected != "" {
		x = r.buf.WriteString(x+2, statusY, fmt.Sprintf("%s ×%.1f", ov.Selected, ov.SelectedSpeed), ColorText, terminal.AttrNone)
	}

	toggles := [...]struct {
		label string
		on    bool
	}{
		{"[t]rails", ov.Visibility.Trails},
		{"[o]rbits", ov.Visibility.Orbits},
		{"[m]oon", ov.Visibility.Moon},
		{"[a]steroids", ov.Visibility.Asteroids},
	}
	x += 1
	for _, tg := range toggles {
		fg := ColorToggleOff
		if tg.on {
			fg = ColorToggleOn
		}
		x = r.buf.WriteString(x+1, statusY, tg.label, fg, terminal.AttrNone)
	}

	if ov.Focus != "" {
		r.buf.WriteString(x+2, statusY, "→ "+ov.Focus, ColorHUDKey, terminal.AttrNone)
	}

	help := ov.Help
	if help == "" {
		help = DefaultHelp
	}
	r.buf.WriteString(1, helpY, help, ColorDim, terminal.AttrNone)
}
