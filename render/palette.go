package render

import "github.com/lixenwraith/orrery/terminal"

// Scene and HUD colors
var (
	ColorBackground = terminal.Hex(0x000000)
	ColorText       = terminal.Hex(0xDDDDDD)
	ColorDim        = terminal.Hex(0x70707A)
	ColorStar       = terminal.Hex(0xFFFFFF)

	ColorHUDBg      = terminal.Hex(0x14141C)
	ColorHUDKey     = terminal.Hex(0xFDB813)
	ColorPaused     = terminal.Hex(0xFF6B6B)
	ColorRunning    = terminal.Hex(0x7BD88F)
	ColorToggleOn   = terminal.Hex(0xDDDDDD)
	ColorToggleOff  = terminal.Hex(0x55555F)
	ColorTooltipBg  = terminal.Hex(0x1E1E2E)
	ColorTooltipFg  = terminal.Hex(0xCCCCDD)
	ColorTooltipHdr = terminal.Hex(0xFFFFFF)
)
