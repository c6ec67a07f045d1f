// Package pick resolves pointer positions to bodies and tracks the hover tooltip
package pick

import (
	"math"

	"github.com/lixenwraith/orrery/camera"
	"github.com/lixenwraith/orrery/scene"
	"github.com/lixenwraith/orrery/sim"
	"github.com/lixenwraith/orrery/vmath"
)

// PointerToNDC maps the center of cell (x, y) in a w×h viewport into [-1, 1]², y up
func PointerToNDC(x, y, w, h int) (float64, float64) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	nx := (float64(x)+0.5)/float64(w)*2 - 1
	ny := -(float64(y)+0.5)/float64(h)*2 + 1
	return nx, ny
}

// Hit is the nearest pickable body under the pointer
type Hit struct {
	BodyID   string
	Name     string
	Info     string
	T        float64 // ray parameter, distance from the camera
	Position vmath.Vec3
}

// Picker intersects a pointer ray with the pickable meshes
type Picker struct {
	// MinCellRadius inflates spheres smaller than this many rows at their depth,
	// so bodies drawn into a single cell stay hoverable. Zero picks exact spheres.
	MinCellRadius float64
}

// NewPicker returns a picker tuned for terminal cells
func NewPicker() *Picker {
	return &Picker{MinCellRadius: 0.6}
}

// Pick returns the nearest pickable body hit by the ray through cell (x, y)
// Exact spheres are tried first, inflated ones only when the ray hits none of them
// Scene and system are only read
func (p *Picker) Pick(cam *camera.Camera, sys *sim.System, sc *scene.Scene, x, y, w, h int) (Hit, bool) {
	nx, ny := PointerToNDC(x, y, w, h)
	ray := cam.RayFromNDC(nx, ny)

	if hit, ok := p.nearest(ray, cam, sys, sc, 0); ok {
		return hit, true
	}
	if p.MinCellRadius <= 0 || h <= 0 {
		return Hit{}, false
	}
	rowWorld := 2 * math.Tan(cam.FOV*math.Pi/360) / float64(h)
	return p.nearest(ray, cam, sys, sc, p.MinCellRadius*rowWorld)
}

// nearest intersects every visible pickable, growing radii to minPerDepth×depth when larger
func (p *Picker) nearest(ray vmath.Ray, cam *camera.Camera, sys *sim.System, sc *scene.Scene, minPerDepth float64) (Hit, bool) {
	forward := cam.Basis().Forward

	var best Hit
	found := false
	for _, n := range sc.Pickable() {
		if !n.Visible {
			continue
		}
		b, ok := sys.Body(n.BodyID)
		if !ok {
			continue
		}
		radius := n.Radius
		if minPerDepth > 0 {
			depth := b.Position.Sub(cam.Position).Dot(forward)
			if minR := minPerDepth * depth; minR > radius {
				radius = minR
			}
		}
		t, ok := vmath.RaySphere(ray, b.Position, radius)
		if !ok {
			continue
		}
		if !found || t < best.T {
			best = Hit{BodyID: n.BodyID, Name: n.Name, Info: n.Info, T: t, Position: b.Position}
			found = true
		}
	}
	return best, found
}

// Tooltip is the hover label anchored near the pointer
type Tooltip struct {
	Visible bool
	X, Y    int
	BodyID  string
	Title   string
	Text    string
}

// Pointer offset in cells
const (
	tooltipDX = 2
	tooltipDY = 1
)

// Show places the tooltip for hit next to pointer cell (x, y)
func (t *Tooltip) Show(hit Hit, x, y int) {
	t.Visible = true
	t.X = x + tooltipDX
	t.Y = y + tooltipDY
	t.BodyID = hit.BodyID
	t.Title = hit.Name
	t.Text = hit.Info
}

// Hide clears the tooltip
func (t *Tooltip) Hide() {
	*t = Tooltip{}
}
