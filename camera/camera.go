// Package camera implements the perspective camera, damped orbit controls and the eased focus transition
package camera

import (
	"math"

	"github.com/lixenwraith/orrery/vmath"
)

// Startup view: above and behind the ecliptic looking at the sun
var (
	DefaultPosition = vmath.Vec3{X: 0, Y: 50, Z: 100}
	DefaultTarget   = vmath.Vec3{}
)

const (
	DefaultFOV  = 75.0 // vertical, degrees
	DefaultNear = 0.1
	DefaultFar  = 1000.0
)

var worldUp = vmath.Vec3{Y: 1}

// Camera is a perspective camera looking from Position at Target
type Camera struct {
	Position vmath.Vec3
	Target   vmath.Vec3
	Up       vmath.Vec3
	FOV      float64
	Aspect   float64 // viewport width / height in square units
	Near     float64
	Far      float64
}

// New creates a camera with the default projection
func New(position, target vmath.Vec3) *Camera {
	return &Camera{
		Position: position,
		Target:   target,
		Up:       worldUp,
		FOV:      DefaultFOV,
		Aspect:   1,
		Near:     DefaultNear,
		Far:      DefaultFar,
	}
}

// SetAspect updates the projection for a viewport of w×h cells, cells are twice as tall as wide
func (c *Camera) SetAspect(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	c.Aspect = float64(w) / (float64(h) * 2)
}

// Basis is the orthonormal view frame
type Basis struct {
	Right, Up, Forward vmath.Vec3
}

// Basis computes the view frame, falling back to a fixed up axis when looking straight along Up
func (c *Camera) Basis() Basis {
	f := c.Target.Sub(c.Position).Normalize()
	if f == (vmath.Vec3{}) {
		f = vmath.Vec3{Z: -1}
	}
	up := c.Up
	if up == (vmath.Vec3{}) {
		up = worldUp
	}
	r := f.Cross(up).Normalize()
	if r == (vmath.Vec3{}) {
		r = f.Cross(vmath.Vec3{Z: -1}).Normalize()
	}
	return Basis{Right: r, Up: r.Cross(f), Forward: f}
}

func (c *Camera) tanHalf() float64 {
	return math.Tan(c.FOV * math.Pi / 360)
}

// Projection is a point in normalized device coordinates
// Scale converts world lengths at this depth into vertical NDC units
type Projection struct {
	X, Y  float64
	Depth float64
	Scale float64
}

// Project maps a world point into NDC, false when outside the near/far range
func (c *Camera) Project(p vmath.Vec3) (Projection, bool) {
	return c.project(c.Basis(), p)
}

// ProjectWith reuses a precomputed basis, for per-frame batches
func (c *Camera) ProjectWith(b Basis, p vmath.Vec3) (Projection, bool) {
	return c.project(b, p)
}

func (c *Camera) project(b Basis, p vmath.Vec3) (Projection, bool) {
	d := p.Sub(c.Position)
	z := d.Dot(b.Forward)
	if z <= c.Near || z >= c.Far {
		return Projection{}, false
	}
	th := c.tanHalf()
	aspect := c.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	scale := 1 / (z * th)
	return Projection{
		X:     d.Dot(b.Right) * scale / aspect,
		Y:     d.Dot(b.Up) * scale,
		Depth: z,
		Scale: scale,
	}, true
}

// RayFromNDC builds the pick ray through an NDC point, the inverse of Project
func (c *Camera) RayFromNDC(x, y float64) vmath.Ray {
	b := c.Basis()
	th := c.tanHalf()
	aspect := c.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	dir := b.Forward.
		Add(b.Right.Scale(x * th * aspect)).
		Add(b.Up.Scale(y * th))
	return vmath.Ray{Origin: c.Position, Dir: dir.Normalize()}
}

// Distance returns the distance from camera to its look-at target
func (c *Camera) Distance() float64 {
	return vmath.Dist(c.Position, c.Target)
}
