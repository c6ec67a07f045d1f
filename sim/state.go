package sim

import (
	"math"

	"github.com/lixenwraith/orrery/body"
	"github.com/lixenwraith/orrery/vmath"
)

// BodyState is the runtime record of one moving instance
// Position is derived from Angle and Radius and is never authoritative
type BodyState struct {
	ID         string
	Kind       body.Kind
	Size       float64
	Angle      float64 // radians, unbounded
	Radius     float64 // orbital radius around origin or parent
	BaseSpeed  float64
	Multiplier float64
	Speed      float64 // BaseSpeed * Multiplier
	Position   vmath.Vec3
	Spin       float64 // self-rotation, radians
	SpinRate   float64

	parent *BodyState
	trail  *Trail
}

// Trail returns the body's trail, nil for untrailed bodies
func (b *BodyState) Trail() *Trail { return b.trail }

// Parent returns the body this one orbits, nil when orbiting the origin
func (b *BodyState) Parent() *BodyState { return b.parent }

// place recomputes position from angle around origin, y is left untouched
func (b *BodyState) place(origin vmath.Vec3) {
	b.Position.X = origin.X + math.Cos(b.Angle)*b.Radius
	b.Position.Z = origin.Z + math.Sin(b.Angle)*b.Radius
}

func (b *BodyState) origin() vmath.Vec3 {
	if b.parent != nil {
		return b.parent.Position
	}
	return vmath.Vec3{}
}

func (b *BodyState) setMultiplier(m float64) {
	if m < 0 || math.IsNaN(m) {
		m = 0
	}
	b.Multiplier = m
	b.Speed = b.BaseSpeed * m
}
