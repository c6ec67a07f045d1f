package control

import (
	"github.com/gdamore/tcell/v2"
)

// HandleEvent applies a terminal event, returning false once the user asked to quit
func (s *Surface) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if b, ok := s.keymap.Lookup(ev); ok {
			s.Do(b)
		}
	case *tcell.EventMouse:
		s.handleMouse(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		s.Resize(w, h)
	}
	return !s.quit
}

// Do performs a bound action
func (s *Surface) Do(b Binding) {
	switch b.Action {
	case ActionQuit:
		s.quit = true
	case ActionToggleRunning:
		s.ToggleRunning()
	case ActionResetCamera:
		s.ResetCamera()
	case ActionToggleTrails:
		s.ShowTrails(!s.params.Visibility.Trails)
	case ActionToggleOrbits:
		s.ShowOrbits(!s.params.Visibility.Orbits)
	case ActionToggleMoon:
		s.ShowMoon(!s.params.Visibility.Moon)
	case ActionToggleAsteroids:
		s.ShowAsteroids(!s.params.Visibility.Asteroids)
	case ActionSelect:
		_ = s.Select(b.Body)
	case ActionSelectNext:
		s.cycleSelection(1)
	case ActionSelectPrev:
		s.cycleSelection(-1)
	case ActionSpeedUp:
		s.AdjustSelectedSpeed(SpeedStep)
	case ActionSpeedDown:
		s.AdjustSelectedSpeed(-SpeedStep)
	case ActionSpeedReset:
		_ = s.SetSpeedMultiplier(s.selected, 1)
	case ActionTimeFaster:
		s.AdjustTimeScale(TimeStep)
	case ActionTimeSlower:
		s.AdjustTimeScale(-TimeStep)
	case ActionFocus:
		_ = s.FocusBody(b.Body)
	case ActionFocusSelected:
		_ = s.FocusBody(s.selected)
	case ActionOrbitLeft:
		s.controls.Rotate(-rotateStep, 0)
	case ActionOrbitRight:
		s.controls.Rotate(rotateStep, 0)
	case ActionOrbitUp:
		s.controls.Rotate(0, -rotateStep)
	case ActionOrbitDown:
		s.controls.Rotate(0, rotateStep)
	case ActionZoomIn:
		s.controls.Zoom(zoomStep)
	case ActionZoomOut:
		s.controls.Zoom(-zoomStep)
	}
}

// handleMouse: motion hovers, primary press focuses, secondary drag orbits, wheel zooms
// tcell repeats held buttons on every motion event, so clicks fire on the press edge only
func (s *Surface) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	btn := ev.Buttons()
	prev := s.buttons
	s.buttons = btn

	switch {
	case btn&tcell.WheelUp != 0:
		s.controls.Zoom(zoomStep)
		return
	case btn&tcell.WheelDown != 0:
		s.controls.Zoom(-zoomStep)
		return
	}

	if btn&tcell.Button2 != 0 {
		if s.dragging {
			s.controls.Rotate(float64(x-s.dragX)*dragScale, float64(y-s.dragY)*dragScale)
		}
		s.dragging = true
		s.dragX, s.dragY = x, y
		s.tooltip.Hide()
		return
	}
	s.dragging = false

	if btn&tcell.Button1 != 0 {
		if prev&tcell.Button1 == 0 {
			s.Click(x, y)
		}
		return
	}
	s.PointerMove(x, y)
}
