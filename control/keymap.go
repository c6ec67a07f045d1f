package control

import (
	"fmt"
	"log"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orrery/body"
)

// Binding is a resolved key action, Body is set for select and focus
type Binding struct {
	Action Action
	Body   string
}

// Keymap maps runes and special keys to bindings
type Keymap struct {
	runes map[rune]Binding
	keys  map[tcell.Key]Binding
}

// Rune aliases for keys that can't be written as a single character
var runeAliases = map[string]rune{
	"space":     ' ',
	"plus":      '+',
	"minus":     '-',
	"backslash": '\\',
}

// specialKeys is tcell.KeyNames inverted and lower-cased: "up", "pgup", "esc", "ctrl-c"
var specialKeys = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// DefaultKeymap returns the built-in bindings
func DefaultKeymap() *Keymap {
	km := &Keymap{
		runes: map[rune]Binding{
			' ': {Action: ActionToggleRunning},
			'r': {Action: ActionResetCamera},
			't': {Action: ActionToggleTrails},
			'o': {Action: ActionToggleOrbits},
			'm': {Action: ActionToggleMoon},
			'a': {Action: ActionToggleAsteroids},
			'+': {Action: ActionSpeedUp},
			'=': {Action: ActionSpeedUp},
			'-': {Action: ActionSpeedDown},
			'0': {Action: ActionSpeedReset},
			']': {Action: ActionTimeFaster},
			'[': {Action: ActionTimeSlower},
			'f': {Action: ActionFocusSelected},
			's': {Action: ActionFocus, Body: body.SunID},
			'n': {Action: ActionSelectNext},
			'p': {Action: ActionSelectPrev},
			'h': {Action: ActionOrbitLeft},
			'l': {Action: ActionOrbitRight},
			'k': {Action: ActionOrbitUp},
			'j': {Action: ActionOrbitDown},
			'q': {Action: ActionQuit},
		},
		keys: map[tcell.Key]Binding{
			tcell.KeyLeft:   {Action: ActionOrbitLeft},
			tcell.KeyRight:  {Action: ActionOrbitRight},
			tcell.KeyUp:     {Action: ActionOrbitUp},
			tcell.KeyDown:   {Action: ActionOrbitDown},
			tcell.KeyPgUp:   {Action: ActionZoomIn},
			tcell.KeyPgDn:   {Action: ActionZoomOut},
			tcell.KeyHome:   {Action: ActionResetCamera},
			tcell.KeyEscape: {Action: ActionQuit},
			tcell.KeyCtrlC:  {Action: ActionQuit},
		},
	}
	for i, p := range body.Planets() {
		km.runes[rune('1'+i)] = Binding{Action: ActionSelect, Body: p.ID}
	}
	return km
}

// Lookup resolves a key event
func (km *Keymap) Lookup(ev *tcell.EventKey) (Binding, bool) {
	if ev.Key() == tcell.KeyRune {
		b, ok := km.runes[ev.Rune()]
		return b, ok
	}
	b, ok := km.keys[ev.Key()]
	return b, ok
}

// Apply merges overrides of key name → action name into the keymap
// Invalid entries are skipped and logged, the returned errors describe each skipped entry
func (km *Keymap) Apply(overrides map[string]string) []error {
	var skipped []error
	for keyStr, actionName := range overrides {
		b, err := resolveAction(actionName)
		if err != nil {
			skipped = append(skipped, fmt.Errorf("key %q: %w", keyStr, err))
			continue
		}
		if err := km.bind(keyStr, b); err != nil {
			skipped = append(skipped, err)
		}
	}
	for _, err := range skipped {
		log.Printf("keymap: skipping binding: %v", err)
	}
	return skipped
}

// bind sets or, for ActionNone, removes a binding
func (km *Keymap) bind(keyStr string, b Binding) error {
	name := strings.ToLower(strings.TrimSpace(keyStr))

	if r, ok := resolveRune(keyStr); ok {
		if b.Action == ActionNone {
			delete(km.runes, r)
		} else {
			km.runes[r] = b
		}
		return nil
	}
	if k, ok := specialKeys[name]; ok {
		if b.Action == ActionNone {
			delete(km.keys, k)
		} else {
			km.keys[k] = b
		}
		return nil
	}
	return fmt.Errorf("unknown key name: %q", keyStr)
}

// resolveRune accepts single characters and named aliases
func resolveRune(s string) (rune, bool) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, true
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], true
	}
	return 0, false
}

// resolveAction converts an action name, including "select:<body>" and "focus:<body>", into a binding
func resolveAction(name string) (Binding, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	if verb, id, ok := strings.Cut(name, ":"); ok {
		d, found := body.Lookup(id)
		if !found {
			return Binding{}, fmt.Errorf("unknown body: %q", id)
		}
		switch verb {
		case "select":
			if d.Kind != body.KindPlanet {
				return Binding{}, fmt.Errorf("body %q has no speed control", id)
			}
			return Binding{Action: ActionSelect, Body: d.ID}, nil
		case "focus":
			return Binding{Action: ActionFocus, Body: d.ID}, nil
		}
		return Binding{}, fmt.Errorf("unknown action: %q", name)
	}

	a, ok := actionRegistry[name]
	if !ok {
		return Binding{}, fmt.Errorf("unknown action: %q", name)
	}
	return Binding{Action: a}, nil
}
