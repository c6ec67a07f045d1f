package render

import (
	"math"

	"github.com/lixenwraith/orrery/terminal"
	"github.com/lixenwraith/orrery/vmath"
)

const (
	glyphStar  = '.'
	glyphOrbit = '·'
	glyphTrail = '∙'
)

// polyline draws consecutive segments with a color ramp from the first point to the last
// Segments with an endpoint behind the camera or entirely off one screen edge are skipped
func (r *Renderer) polyline(v viewport, pts []vmath.Vec3, from, to RGB, glyph rune) {
	if len(pts) < 2 {
		return
	}
	maxSpan := 4 * (v.w + v.h)
	last := float64(len(pts) - 1)

	px, py, _, pok := v.project(pts[0])
	for i := 1; i < len(pts); i++ {
		x, y, _, ok := v.project(pts[i])
		if ok && pok && !offscreen(v, px, py, x, y) && math.Abs(x-px)+math.Abs(y-py) <= maxSpan {
			fg := Lerp(from, to, float64(i)/last)
			vmath.Traverse(px, py, x, y, func(cx, cy int) bool {
				r.buf.SetFgOnly(cx, cy, glyph, fg, terminal.AttrNone)
				return true
			})
		}
		px, py, pok = x, y, ok
	}
}

func offscreen(v viewport, x1, y1, x2, y2 float64) bool {
	return (x1 < 0 && x2 < 0) || (y1 < 0 && y2 < 0) ||
		(x1 >= v.w && x2 >= v.w) || (y1 >= v.h && y2 >= v.h)
}
