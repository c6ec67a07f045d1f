package render

import (
	"math"

	"github.com/lixenwraith/orrery/scene"
	"github.com/lixenwraith/orrery/terminal"
	"github.com/lixenwraith/orrery/vmath"
)

const (
	ambient     = 0.2
	bandDepth   = 0.08 // surface banding that makes spin visible
	bandFreq    = 6.0
	edgeSoft    = 0.12
	coronaReach = 1.5
)

var white = RGB{R: 255, G: 255, B: 255}

// dotGlyph picks a glyph for bodies smaller than a cell
func dotGlyph(ry float64) rune {
	switch {
	case ry < 0.15:
		return '·'
	case ry < 0.3:
		return '•'
	default:
		return '●'
	}
}

func (it *drawItem) bounds(r *Renderer, reach float64) (minX, maxX, minY, maxY int) {
	w, h := r.buf.Size()
	minX = max(0, int(math.Floor(it.sx-it.rx*reach)))
	maxX = min(w-1, int(math.Ceil(it.sx+it.rx*reach)))
	minY = max(0, int(math.Floor(it.sy-it.ry*reach)))
	maxY = min(h-1, int(math.Ceil(it.sy+it.ry*reach)))
	return
}

// drawSphere shades a lit body with Lambert diffuse from the sun direction in view space
func (r *Renderer) drawSphere(it *drawItem, light vmath.Vec3) {
	base := it.node.Color
	if it.ry < 0.5 && it.rx < 0.5 {
		d := math.Max(0, light.Z)
		c := Scale(base, ambient+(1-ambient)*d)
		r.buf.SetFgOnly(int(it.sx), int(it.sy), dotGlyph(it.ry), c, terminal.AttrNone)
		return
	}

	minX, maxX, minY, maxY := it.bounds(r, 1)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			nx := (float64(x) + 0.5 - it.sx) / it.rx
			ny := (float64(y) + 0.5 - it.sy) / it.ry
			d2 := nx*nx + ny*ny
			if d2 > 1 {
				continue
			}
			nz := math.Sqrt(1 - d2)

			diffuse := math.Max(0, nx*light.X-ny*light.Y+nz*light.Z)
			band := 1 + bandDepth*math.Sin(bandFreq*(math.Atan2(nx, nz)+it.body.Spin))
			c := Scale(base, (ambient+(1-ambient)*diffuse)*band)

			alpha := 1.0
			if edge := 1 - math.Sqrt(d2); edge < edgeSoft {
				alpha = edge / edgeSoft
			}
			r.buf.Set(x, y, ' ', c, c, BlendAlpha, alpha, terminal.AttrNone)
		}
	}
}

// drawSun renders the emissive disk with a screen-blended corona
func (r *Renderer) drawSun(it *drawItem) {
	base := it.node.Color
	if it.ry < 0.5 && it.rx < 0.5 {
		r.buf.SetFgOnly(int(it.sx), int(it.sy), '☼', base, terminal.AttrBold)
		return
	}

	minX, maxX, minY, maxY := it.bounds(r, coronaReach)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			nx := (float64(x) + 0.5 - it.sx) / it.rx
			ny := (float64(y) + 0.5 - it.sy) / it.ry
			d2 := nx*nx + ny*ny
			if d2 > coronaReach*coronaReach {
				continue
			}
			if d2 > 1 {
				glow := math.Exp(-(math.Sqrt(d2)-1)*3) * 0.6
				r.buf.Set(x, y, 0, RGB{}, Scale(base, glow), BlendScreenBg, 1, terminal.AttrNone)
				continue
			}
			nz := math.Sqrt(1 - d2)
			c := Scale(base, 0.8+0.25*nz)
			c = Lerp(c, white, nz*nz*nz*nz*0.35)
			c = Scale(c, 1+bandDepth*0.5*math.Sin(bandFreq*(math.Atan2(nx, nz)+it.body.Spin)))
			r.buf.Set(x, y, ' ', c, c, BlendReplace, 1, terminal.AttrNone)
		}
	}
}

// drawRing tints the ring annulus on the XZ plane around the body, split into back and front halves
func (r *Renderer) drawRing(v viewport, it *drawItem, ring *scene.Node, back bool) {
	center := it.body.Position
	outerCells := math.Max(it.rx, it.ry) * ring.Outer / math.Max(it.node.Radius, 1e-9)
	steps := int(vmath.Clamp(outerCells*8, 48, 720))
	const radial = 4

	for k := 0; k < radial; k++ {
		rad := ring.Inner + (ring.Outer-ring.Inner)*(float64(k)+0.5)/radial
		for i := 0; i < steps; i++ {
			a := float64(i) / float64(steps) * 2 * math.Pi
			p := center.Add(vmath.Vec3{X: math.Cos(a) * rad, Z: math.Sin(a) * rad})
			sx, sy, pr, ok := v.project(p)
			if !ok || (pr.Depth > it.proj.Depth) != back {
				continue
			}
			r.buf.Set(int(sx), int(sy), 0, RGB{}, ring.Color, BlendAlphaBg, 0.6, terminal.AttrNone)
		}
	}
}
