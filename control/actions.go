package control

// Action is a user intent bound to a key
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionToggleRunning
	ActionResetCamera
	ActionToggleTrails
	ActionToggleOrbits
	ActionToggleMoon
	ActionToggleAsteroids
	ActionSelect // Binding.Body names the planet
	ActionSelectNext
	ActionSelectPrev
	ActionSpeedUp
	ActionSpeedDown
	ActionSpeedReset
	ActionTimeFaster
	ActionTimeSlower
	ActionFocus // Binding.Body names the target
	ActionFocusSelected
	ActionOrbitLeft
	ActionOrbitRight
	ActionOrbitUp
	ActionOrbitDown
	ActionZoomIn
	ActionZoomOut
)

// actionRegistry maps config action names to actions
// Parameterized actions ("select:<body>", "focus:<body>") are resolved in resolveAction
var actionRegistry = map[string]Action{
	"none":             ActionNone,
	"quit":             ActionQuit,
	"toggle_running":   ActionToggleRunning,
	"reset_camera":     ActionResetCamera,
	"toggle_trails":    ActionToggleTrails,
	"toggle_orbits":    ActionToggleOrbits,
	"toggle_moon":      ActionToggleMoon,
	"toggle_asteroids": ActionToggleAsteroids,
	"select_next":      ActionSelectNext,
	"select_prev":      ActionSelectPrev,
	"speed_up":         ActionSpeedUp,
	"speed_down":       ActionSpeedDown,
	"speed_reset":      ActionSpeedReset,
	"time_faster":      ActionTimeFaster,
	"time_slower":      ActionTimeSlower,
	"focus_selected":   ActionFocusSelected,
	"orbit_left":       ActionOrbitLeft,
	"orbit_right":      ActionOrbitRight,
	"orbit_up":         ActionOrbitUp,
	"orbit_down":       ActionOrbitDown,
	"zoom_in":          ActionZoomIn,
	"zoom_out":         ActionZoomOut,
}
