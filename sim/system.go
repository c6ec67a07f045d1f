// Package sim owns per-body runtime state and advances it once per frame
package sim

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/orrery/body"
	"github.com/lixenwraith/orrery/vmath"
)

// ErrUnknownBody is returned for IDs not present in the system
var ErrUnknownBody = errors.New("unknown body")

// Options configures system construction
type Options struct {
	Seed          uint64
	RandomPhase   bool // planets start at random angles, otherwise at angle 0
	TrailCapacity int
	Belt          body.BeltSpec
}

// DefaultOptions returns the reference setup: random phases, 50-point trails, 200 asteroids
func DefaultOptions() Options {
	return Options{
		Seed:          1,
		RandomPhase:   true,
		TrailCapacity: DefaultTrailCapacity,
		Belt:          body.Belt,
	}
}

// System is the index of body runtime state and the per-frame motion update
type System struct {
	bodies map[string]*BodyState
	order  []*BodyState // update order, parents before children

	sun       *BodyState
	planets   []*BodyState
	moon      *BodyState
	asteroids []*BodyState
	trailed   []*BodyState

	frames uint64
}

// NewSystem builds runtime state for every registered body
func NewSystem(opts Options) *System {
	if opts.TrailCapacity <= 0 {
		opts.TrailCapacity = DefaultTrailCapacity
	}
	rng := vmath.NewFastRand(opts.Seed)

	s := &System{
		bodies: make(map[string]*BodyState),
	}

	sd := body.Sun()
	s.sun = s.add(&BodyState{
		ID:         sd.ID,
		Kind:       sd.Kind,
		Size:       sd.Size,
		Multiplier: 1,
		SpinRate:   body.SunSpinRate,
	})

	for _, pd := range body.Planets() {
		angle := 0.0
		if opts.RandomPhase {
			angle = rng.Float64() * 2 * math.Pi
		}
		p := &BodyState{
			ID:         pd.ID,
			Kind:       pd.Kind,
			Size:       pd.Size,
			Angle:      angle,
			Radius:     pd.Distance,
			BaseSpeed:  pd.Speed,
			Multiplier: 1,
			Speed:      pd.Speed,
			SpinRate:   body.PlanetSpinRate,
		}
		p.place(vmath.Vec3{})
		p.trail = NewTrail(opts.TrailCapacity, p.Position)
		s.add(p)
		s.planets = append(s.planets, p)
		s.trailed = append(s.trailed, p)
	}

	md := body.Moon()
	if parent, ok := s.bodies[md.Parent]; ok {
		m := &BodyState{
			ID:         md.ID,
			Kind:       md.Kind,
			Size:       md.Size,
			Radius:     md.Distance,
			BaseSpeed:  md.Speed,
			Multiplier: 1,
			Speed:      md.Speed,
			parent:     parent,
		}
		m.place(parent.Position)
		s.moon = s.add(m)
	}

	belt := opts.Belt
	for i := 0; i < belt.Count; i++ {
		size := rng.Range(belt.Size.Min, belt.Size.Max)
		angle := rng.Float64() * 2 * math.Pi
		radius := rng.Range(belt.Radius.Min, belt.Radius.Max)
		jitter := rng.Range(belt.Jitter.Min, belt.Jitter.Max)
		speed := rng.Range(belt.Speed.Min, belt.Speed.Max)

		a := &BodyState{
			ID:         fmt.Sprintf("asteroid-%03d", i),
			Kind:       body.KindAsteroid,
			Size:       size,
			Angle:      angle,
			Radius:     radius,
			BaseSpeed:  speed,
			Multiplier: 1,
			Speed:      speed,
			Position:   vmath.Vec3{Y: jitter},
		}
		a.place(vmath.Vec3{})
		s.add(a)
		s.asteroids = append(s.asteroids, a)
	}

	return s
}

func (s *System) add(b *BodyState) *BodyState {
	s.bodies[b.ID] = b
	s.order = append(s.order, b)
	return b
}

// Advance moves every body one frame forward, no-op while paused
func (s *System) Advance(p Params) {
	if !p.Running {
		return
	}
	ts := p.TimeScale
	for _, b := range s.order {
		b.Angle += b.Speed * ts
		b.place(b.origin())
		b.Spin += b.SpinRate * ts
	}
	s.frames++
}

// RecordTrails appends current positions to every trail and regenerates line geometry
// Runs regardless of trail visibility so re-enabling shows continuous history
func (s *System) RecordTrails(p Params) {
	if !p.Running {
		return
	}
	for _, b := range s.trailed {
		b.trail.Push(b.Position)
		b.trail.Rebuild(b.Position)
	}
}

// Step runs one frame of motion followed by trail accumulation
func (s *System) Step(p Params) {
	s.Advance(p)
	s.RecordTrails(p)
}

// SetSpeedMultiplier scales a body's base speed, negative values clamp to zero
// Takes effect on the next frame without interpolation
func (s *System) SetSpeedMultiplier(id string, m float64) error {
	b, ok := s.bodies[id]
	if !ok {
		return fmt.Errorf("set speed %q: %w", id, ErrUnknownBody)
	}
	b.setMultiplier(m)
	return nil
}

// Body returns runtime state by ID
func (s *System) Body(id string) (*BodyState, bool) {
	b, ok := s.bodies[id]
	return b, ok
}

func (s *System) Sun() *BodyState { return s.sun }
func (s *System) Moon() *BodyState { return s.moon }
func (s *System) Planets() []*BodyState { return s.planets }
func (s *System) Asteroids() []*BodyState { return s.asteroids }
func (s *System) Bodies() []*BodyState { return s.order }
func (s *System) Frames() uint64 { return s.frames }
func (s *System) Len() int { return len(s.order) }
func (s *System) Trailed() []*BodyState { return s.trailed }
