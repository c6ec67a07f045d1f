package render

import "github.com/lixenwraith/orrery/terminal"

// Cell is an alias to terminal.Cell so the buffer flushes without copying
type Cell = terminal.Cell
type Attr = terminal.Attr
