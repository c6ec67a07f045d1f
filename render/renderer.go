package render

import (
	"sort"

	"github.com/lixenwraith/orrery/body"
	"github.com/lixenwraith/orrery/camera"
	"github.com/lixenwraith/orrery/pick"
	"github.com/lixenwraith/orrery/scene"
	"github.com/lixenwraith/orrery/sim"
	"github.com/lixenwraith/orrery/terminal"
	"github.com/lixenwraith/orrery/vmath"
)

// Overlay is the UI state drawn on top of the scene
type Overlay struct {
	RunningLabel  string // control label, "Pause" while running
	Running       bool
	TimeScale     float64
	Selected      string // display name of the speed-adjust target
	SelectedSpeed float64
	Focus         string // destination of an in-flight transition
	Visibility    sim.Visibility
	Tooltip       pick.Tooltip
	Help          string
}

// Renderer draws the scene into a RenderBuffer using the painter's algorithm
type Renderer struct {
	buf   *RenderBuffer
	items []drawItem
}

type drawItem struct {
	node   *scene.Node
	body   *sim.BodyState
	proj   camera.Projection
	sx, sy float64
	rx, ry float64
}

// viewport maps NDC into cell coordinates for one frame
type viewport struct {
	cam    *camera.Camera
	basis  camera.Basis
	w, h   float64
	aspect float64
}

func newViewport(cam *camera.Camera, w, h int) viewport {
	aspect := cam.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	return viewport{cam: cam, basis: cam.Basis(), w: float64(w), h: float64(h), aspect: aspect}
}

func (v viewport) project(p vmath.Vec3) (sx, sy float64, pr camera.Projection, ok bool) {
	pr, ok = v.cam.ProjectWith(v.basis, p)
	if !ok {
		return 0, 0, pr, false
	}
	sx = (pr.X + 1) / 2 * v.w
	sy = (1 - pr.Y) / 2 * v.h
	return sx, sy, pr, true
}

// radius returns the projected radius of a world-size sphere in columns and rows
func (v viewport) radius(pr camera.Projection, size float64) (rx, ry float64) {
	ry = size * pr.Scale * v.h / 2
	rx = size * pr.Scale / v.aspect * v.w / 2
	return rx, ry
}

// toView rotates a world direction into camera space, z toward the viewer
func (v viewport) toView(d vmath.Vec3) vmath.Vec3 {
	return vmath.Vec3{X: d.Dot(v.basis.Right), Y: d.Dot(v.basis.Up), Z: -d.Dot(v.basis.Forward)}
}

// NewRenderer creates a renderer with a buffer of the given size
func NewRenderer(width, height int) *Renderer {
	return &Renderer{buf: NewRenderBuffer(width, height)}
}

// Resize adjusts the buffer to the terminal size
func (r *Renderer) Resize(width, height int) {
	r.buf.Resize(width, height)
}

// Buffer exposes the composited frame
func (r *Renderer) Buffer() *RenderBuffer { return r.buf }

// Flush writes the last rendered frame to the terminal
func (r *Renderer) Flush(term terminal.Terminal) {
	r.buf.FlushToTerminal(term)
}

// Render composes one frame: starfield, orbit paths, trails, bodies far to near, tooltip, HUD
// Scene and system are only read
func (r *Renderer) Render(cam *camera.Camera, sc *scene.Scene, sys *sim.System, ov Overlay) {
	r.buf.Clear()
	w, h := r.buf.Size()
	if w == 0 || h == 0 {
		return
	}
	v := newViewport(cam, w, h)

	if stars := sc.Stars(); stars != nil && stars.Visible {
		r.drawStars(v, stars)
	}

	for _, n := range sc.Orbits() {
		if n.Visible {
			r.polyline(v, n.Points, n.Color, n.Color, glyphOrbit)
		}
	}

	for _, n := range sc.Trails() {
		if !n.Visible {
			continue
		}
		b, ok := sys.Body(n.BodyID)
		if !ok || b.Trail() == nil {
			continue
		}
		r.polyline(v, b.Trail().Geometry(), Scale(n.Color, 0.15), Scale(n.Color, 0.6), glyphTrail)
	}

	r.drawBodies(v, sc, sys)

	r.drawTooltip(ov.Tooltip)
	r.drawHUD(ov)
}

func (r *Renderer) drawStars(v viewport, stars *scene.Node) {
	for i, p := range stars.Points {
		sx, sy, _, ok := v.project(p)
		if !ok {
			continue
		}
		x, y := int(sx), int(sy)
		if !r.buf.inBounds(x, y) || sx < 0 || sy < 0 {
			continue
		}
		// Stable per-star brightness
		bright := 0.3 + 0.1*float64(i%6)
		r.buf.SetFgOnly(x, y, glyphStar, Scale(stars.Color, bright), terminal.AttrNone)
	}
}

func (r *Renderer) drawBodies(v viewport, sc *scene.Scene, sys *sim.System) {
	r.items = r.items[:0]
	for _, n := range sc.Nodes() {
		if n.Kind != scene.KindMesh || !n.Visible {
			continue
		}
		b, ok := sys.Body(n.BodyID)
		if !ok {
			continue
		}
		sx, sy, pr, ok := v.project(b.Position)
		if !ok {
			continue
		}
		rx, ry := v.radius(pr, n.Radius)
		// Saturn's ring and the sun's corona extend past the disk
		reach := 2.3
		if sx+rx*reach < 0 || sx-rx*reach >= v.w || sy+ry*reach < 0 || sy-ry*reach >= v.h {
			continue
		}
		r.items = append(r.items, drawItem{node: n, body: b, proj: pr, sx: sx, sy: sy, rx: rx, ry: ry})
	}

	sort.Slice(r.items, func(i, j int) bool {
		return r.items[i].proj.Depth > r.items[j].proj.Depth
	})

	var sunPos vmath.Vec3
	if sun := sys.Sun(); sun != nil {
		sunPos = sun.Position
	}

	rings := sc.Rings()
	for i := range r.items {
		it := &r.items[i]
		ring := ringFor(rings, it.node.BodyID)
		if ring != nil {
			r.drawRing(v, it, ring, true)
		}
		if it.body.Kind == body.KindStar {
			r.drawSun(it)
		} else {
			light := v.toView(sunPos.Sub(it.body.Position).Normalize())
			r.drawSphere(it, light)
		}
		if ring != nil {
			r.drawRing(v, it, ring, false)
		}
	}
}

func ringFor(rings []*scene.Node, id string) *scene.Node {
	for _, n := range rings {
		if n.BodyID == id && n.Visible {
			return n
		}
	}
	return nil
}
