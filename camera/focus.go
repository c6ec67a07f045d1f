package camera

import (
	"time"

	"github.com/lixenwraith/orrery/body"
	"github.com/lixenwraith/orrery/vmath"
)

const (
	DefaultFocusDuration = 2 * time.Second
	SunFocusDistance     = 20.0
	BodyFocusDistance    = 15.0
)

// Clock supplies wall-clock time to the transition
type Clock interface {
	Now() time.Time
}

// FocusDistance returns the standoff used when focusing a body of kind k
func FocusDistance(k body.Kind) float64 {
	if k == body.KindStar {
		return SunFocusDistance
	}
	return BodyFocusDistance
}

// Focus interpolates camera position and target toward a destination over a fixed duration
// At most one transition exists, Begin replaces any in flight
type Focus struct {
	clock    Clock
	duration time.Duration

	active     bool
	start      time.Time
	fromPos    vmath.Vec3
	fromTarget vmath.Vec3
	toPos      vmath.Vec3
	toTarget   vmath.Vec3
}

// NewFocus creates an idle focus controller
func NewFocus(clock Clock, duration time.Duration) *Focus {
	return &Focus{clock: clock, duration: duration}
}

// Begin starts a transition from the camera's current state
// An in-flight transition is dropped, its partially interpolated state becomes the new start
func (f *Focus) Begin(c *Camera, pos, target vmath.Vec3) {
	f.active = true
	f.start = f.clock.Now()
	f.fromPos = c.Position
	f.fromTarget = c.Target
	f.toPos = pos
	f.toTarget = target
}

// FocusOn moves to point + (d, d, d) looking at point
func (f *Focus) FocusOn(c *Camera, point vmath.Vec3, d float64) {
	f.Begin(c, point.Add(vmath.Vec3{X: d, Y: d, Z: d}), point)
}

// Progress returns linear progress in [0, 1], 1 when idle
func (f *Focus) Progress() float64 {
	if !f.active {
		return 1
	}
	if f.duration <= 0 {
		return 1
	}
	elapsed := f.clock.Now().Sub(f.start)
	return vmath.Clamp01(float64(elapsed) / float64(f.duration))
}

// Step advances the transition and reports whether it is finished
// On completion the camera is set to the destination exactly and the transition is discarded
func (f *Focus) Step(c *Camera) bool {
	if !f.active {
		return true
	}
	t := f.Progress()
	if t >= 1 {
		c.Position = f.toPos
		c.Target = f.toTarget
		f.active = false
		return true
	}
	e := vmath.EaseInOutCubic(t)
	c.Position = vmath.Lerp(f.fromPos, f.toPos, e)
	c.Target = vmath.Lerp(f.fromTarget, f.toTarget, e)
	return false
}

// Active reports whether a transition is in flight
func (f *Focus) Active() bool { return f.active }

// Destination returns the in-flight destination
func (f *Focus) Destination() (pos, target vmath.Vec3, ok bool) {
	return f.toPos, f.toTarget, f.active
}

// Start returns the captured start state of the in-flight transition
func (f *Focus) Start() (pos, target vmath.Vec3, ok bool) {
	return f.fromPos, f.fromTarget, f.active
}

// Cancel drops the transition leaving the camera where it is
func (f *Focus) Cancel() { f.active = false }
