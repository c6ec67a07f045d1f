// Package control is the user-facing control surface: it writes plain parameters
// and starts camera transitions, the frame pipeline reads them on the next frame
package control

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orrery/body"
	"github.com/lixenwraith/orrery/camera"
	"github.com/lixenwraith/orrery/observability"
	"github.com/lixenwraith/orrery/pick"
	"github.com/lixenwraith/orrery/scene"
	"github.com/lixenwraith/orrery/sim"
	"github.com/lixenwraith/orrery/vmath"
)

const (
	SpeedStep    = 0.1
	MaxSpeed     = 5.0
	TimeStep     = 0.1
	MaxTimeScale = 5.0

	rotateStep = 0.15 // radians queued per key press
	zoomStep   = 1.0
	dragScale  = 0.05 // radians per cell of drag
)

// Sounder plays optional cues
type Sounder interface {
	PlayFocus()
	PlayToggle()
}

// Deps are the pieces the surface writes to
type Deps struct {
	Params   *sim.Params
	System   *sim.System
	Scene    *scene.Scene
	Camera   *camera.Camera
	Controls *camera.OrbitControls
	Focus    *camera.Focus

	Keymap  *Keymap
	Picker  *pick.Picker
	Sound   Sounder
	Metrics *observability.Collector

	// Reset view, zero values fall back to the defaults
	HomePosition vmath.Vec3
	HomeTarget   vmath.Vec3
	SunDistance  float64
	BodyDistance float64
}

// Surface applies user intents
type Surface struct {
	params   *sim.Params
	sys      *sim.System
	scene    *scene.Scene
	cam      *camera.Camera
	controls *camera.OrbitControls
	focus    *camera.Focus
	keymap   *Keymap
	picker   *pick.Picker
	sound    Sounder
	metrics  *observability.Collector

	homePos      vmath.Vec3
	homeTarget   vmath.Vec3
	sunDistance  float64
	bodyDistance float64

	width, height int
	tooltip       pick.Tooltip
	selected      string
	focusName     string

	dragging     bool
	dragX, dragY int
	buttons      tcell.ButtonMask
	quit         bool
}

// NewSurface binds a surface to its dependencies
func NewSurface(d Deps) *Surface {
	s := &Surface{
		params:       d.Params,
		sys:          d.System,
		scene:        d.Scene,
		cam:          d.Camera,
		controls:     d.Controls,
		focus:        d.Focus,
		keymap:       d.Keymap,
		picker:       d.Picker,
		sound:        d.Sound,
		metrics:      d.Metrics,
		homePos:      d.HomePosition,
		homeTarget:   d.HomeTarget,
		sunDistance:  d.SunDistance,
		bodyDistance: d.BodyDistance,
		selected:     body.EarthID,
	}
	if s.keymap == nil {
		s.keymap = DefaultKeymap()
	}
	if s.picker == nil {
		s.picker = pick.NewPicker()
	}
	if s.homePos == (vmath.Vec3{}) {
		s.homePos = camera.DefaultPosition
	}
	if s.sunDistance <= 0 {
		s.sunDistance = camera.SunFocusDistance
	}
	if s.bodyDistance <= 0 {
		s.bodyDistance = camera.BodyFocusDistance
	}
	return s
}

// SetSpeedMultiplier sets a body's speed multiplier, negative values clamp to 0
func (s *Surface) SetSpeedMultiplier(id string, m float64) error {
	return s.sys.SetSpeedMultiplier(id, m)
}

// SpeedMultiplier returns the multiplier of a body, 0 when unknown
func (s *Surface) SpeedMultiplier(id string) float64 {
	if b, ok := s.sys.Body(id); ok {
		return b.Multiplier
	}
	return 0
}

// AdjustSelectedSpeed steps the selected planet's multiplier within [0, MaxSpeed]
func (s *Surface) AdjustSelectedSpeed(delta float64) {
	m := roundTenth(vmath.Clamp(s.SpeedMultiplier(s.selected)+delta, 0, MaxSpeed))
	_ = s.sys.SetSpeedMultiplier(s.selected, m)
}

// SetTimeScale sets the global time scale, negative and NaN clamp to 0
func (s *Surface) SetTimeScale(f float64) {
	if f < 0 || math.IsNaN(f) {
		f = 0
	}
	s.params.TimeScale = f
}

// AdjustTimeScale steps the time scale within [0, MaxTimeScale]
func (s *Surface) AdjustTimeScale(delta float64) {
	s.SetTimeScale(roundTenth(vmath.Clamp(s.params.TimeScale+delta, 0, MaxTimeScale)))
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

// ToggleRunning flips pause state, effective from the next frame
func (s *Surface) ToggleRunning() {
	s.params.Running = !s.params.Running
	if s.sound != nil {
		s.sound.PlayToggle()
	}
}

// RunningLabel is the label of the pause control for the current state
func (s *Surface) RunningLabel() string {
	if s.params.Running {
		return "⏸ Pause"
	}
	return "▶ Resume"
}

func (s *Surface) ShowTrails(v bool) {
	s.params.Visibility.Trails = v
	s.scene.ApplyVisibility(s.params.Visibility)
}

func (s *Surface) ShowOrbits(v bool) {
	s.params.Visibility.Orbits = v
	s.scene.ApplyVisibility(s.params.Visibility)
}

func (s *Surface) ShowMoon(v bool) {
	s.params.Visibility.Moon = v
	s.scene.ApplyVisibility(s.params.Visibility)
}

func (s *Surface) ShowAsteroids(v bool) {
	s.params.Visibility.Asteroids = v
	s.scene.ApplyVisibility(s.params.Visibility)
}

// ResetCamera starts a transition back to the home view
func (s *Surface) ResetCamera() {
	s.beginFocus(s.homePos, s.homeTarget, "")
}

// FocusBody starts a transition to the body's position at call time
func (s *Surface) FocusBody(id string) error {
	b, ok := s.sys.Body(id)
	if !ok {
		return fmt.Errorf("focus %q: %w", id, sim.ErrUnknownBody)
	}
	d := s.bodyDistance
	if b.Kind == body.KindStar {
		d = s.sunDistance
	}
	p := b.Position
	name := id
	if desc, ok := body.Lookup(id); ok {
		name = desc.Name
	}
	s.beginFocus(p.Add(vmath.Vec3{X: d, Y: d, Z: d}), p, name)
	return nil
}

func (s *Surface) beginFocus(pos, target vmath.Vec3, name string) {
	s.focus.Begin(s.cam, pos, target)
	s.focusName = name
	s.metrics.ObserveFocus()
	if s.sound != nil {
		s.sound.PlayFocus()
	}
}

// Select chooses the planet whose speed the +/- controls adjust
func (s *Surface) Select(id string) error {
	d, ok := body.Lookup(id)
	if !ok || d.Kind != body.KindPlanet {
		return fmt.Errorf("select %q: %w", id, sim.ErrUnknownBody)
	}
	s.selected = id
	return nil
}

// Selected returns the selected planet ID
func (s *Surface) Selected() string { return s.selected }

func (s *Surface) cycleSelection(dir int) {
	planets := body.Planets()
	idx := 0
	for i, p := range planets {
		if p.ID == s.selected {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(planets)) % len(planets)
	s.selected = planets[idx].ID
}

// Resize records the viewport and updates the projection
func (s *Surface) Resize(w, h int) {
	s.width, s.height = w, h
	s.cam.SetAspect(w, h)
}

// PointerMove shows the tooltip for the body under the pointer or hides it
func (s *Surface) PointerMove(x, y int) {
	hit, ok := s.picker.Pick(s.cam, s.sys, s.scene, x, y, s.width, s.height)
	s.metrics.ObservePick(ok)
	if !ok {
		s.tooltip.Hide()
		return
	}
	s.tooltip.Show(hit, x, y)
}

// Click focuses the body under the pointer, reporting whether one was hit
func (s *Surface) Click(x, y int) bool {
	hit, ok := s.picker.Pick(s.cam, s.sys, s.scene, x, y, s.width, s.height)
	s.metrics.ObservePick(ok)
	if !ok {
		return false
	}
	_ = s.FocusBody(hit.BodyID)
	return true
}

// Tooltip returns the current tooltip state
func (s *Surface) Tooltip() pick.Tooltip { return s.tooltip }

// FocusName returns the destination name while a transition is in flight
func (s *Surface) FocusName() string {
	if !s.focus.Active() {
		return ""
	}
	if s.focusName == "" {
		return "home"
	}
	return s.focusName
}

// Quit reports whether a quit action was received
func (s *Surface) Quit() bool { return s.quit }
