package camera

import (
	"math"

	"github.com/lixenwraith/orrery/vmath"
)

const (
	DefaultDamping     = 0.05
	DefaultMinDistance = 10.0
	DefaultMaxDistance = 200.0

	polarEpsilon = 1e-6
	settleDelta  = 1e-6
)

// OrbitControls accumulates drag input and applies it with exponential damping around the camera target
type OrbitControls struct {
	Damping     float64
	MinDistance float64
	MaxDistance float64
	ZoomStep    float64 // distance factor per zoom step

	thetaDelta float64
	phiDelta   float64
	scale      float64
}

// NewOrbitControls creates controls with the reference damping and distance limits
func NewOrbitControls() *OrbitControls {
	return &OrbitControls{
		Damping:     DefaultDamping,
		MinDistance: DefaultMinDistance,
		MaxDistance: DefaultMaxDistance,
		ZoomStep:    0.9,
		scale:       1,
	}
}

// Rotate queues an azimuth/polar rotation in radians
func (o *OrbitControls) Rotate(dTheta, dPhi float64) {
	o.thetaDelta += dTheta
	o.phiDelta += dPhi
}

// Zoom queues a dolly, positive steps move closer
func (o *OrbitControls) Zoom(steps float64) {
	o.scale *= math.Pow(o.ZoomStep, steps)
}

// Pending reports whether Update would move the camera
func (o *OrbitControls) Pending() bool {
	return o.thetaDelta != 0 || o.phiDelta != 0 || o.scale != 1
}

// Stop discards queued input and residual momentum
func (o *OrbitControls) Stop() {
	o.thetaDelta, o.phiDelta, o.scale = 0, 0, 1
}

// Update applies one frame of damped input, untouched camera when nothing is pending
func (o *OrbitControls) Update(c *Camera) bool {
	if !o.Pending() {
		return false
	}

	offset := c.Position.Sub(c.Target)
	radius := offset.Mag()
	theta := math.Atan2(offset.X, offset.Z)
	phi := 0.0
	if radius > 0 {
		phi = math.Acos(vmath.Clamp(offset.Y/radius, -1, 1))
	}

	theta += o.thetaDelta * o.Damping
	phi += o.phiDelta * o.Damping
	phi = vmath.Clamp(phi, polarEpsilon, math.Pi-polarEpsilon)

	radius *= o.scale
	radius = vmath.Clamp(radius, o.MinDistance, o.MaxDistance)

	sinPhi := math.Sin(phi)
	c.Position = c.Target.Add(vmath.Vec3{
		X: radius * sinPhi * math.Sin(theta),
		Y: radius * math.Cos(phi),
		Z: radius * sinPhi * math.Cos(theta),
	})

	o.thetaDelta *= 1 - o.Damping
	o.phiDelta *= 1 - o.Damping
	if math.Abs(o.thetaDelta) < settleDelta {
		o.thetaDelta = 0
	}
	if math.Abs(o.phiDelta) < settleDelta {
		o.phiDelta = 0
	}
	o.scale = 1
	return true
}
