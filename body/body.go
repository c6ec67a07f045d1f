// Package body holds the static registry of celestial bodies
// Descriptors are immutable values, runtime state lives in package sim
package body

import "github.com/lixenwraith/orrery/terminal"

// Kind classifies a body for picking, focus distance and update order
type Kind uint8

const (
	KindStar Kind = iota
	KindPlanet
	KindMoon
	KindAsteroid
)

func (k Kind) String() string {
	switch k {
	case KindStar:
		return "star"
	case KindPlanet:
		return "planet"
	case KindMoon:
		return "moon"
	case KindAsteroid:
		return "asteroid"
	default:
		return "unknown"
	}
}

// Descriptor is the immutable description of a named body
type Descriptor struct {
	ID       string
	Name     string
	Kind     Kind
	Size     float64 // render radius
	Distance float64 // orbital distance from origin (or from parent for moons)
	Speed    float64 // base angular speed, radians per frame
	Color    terminal.RGB
	Info     string
	Parent   string // parent body ID for moons
}

// Range is a half-open interval [Min, Max)
type Range struct {
	Min, Max float64
}

// BeltSpec describes the procedurally placed asteroid belt
type BeltSpec struct {
	Count  int
	Radius Range
	Speed  Range
	Size   Range
	Jitter Range // y offset fixed at creation
	Color  terminal.RGB
}

// RingSpec describes a ring overlay around a planet
type RingSpec struct {
	Parent string
	Inner  float64 // multiple of parent size
	Outer  float64
	Color  terminal.RGB
}

const (
	SunID   = "sun"
	EarthID = "earth"
	MoonID  = "moon"
)

var sun = Descriptor{
	ID:    SunID,
	Name:  "Sun",
	Kind:  KindStar,
	Size:  5,
	Color: terminal.Hex(0xFDB813),
	Info:  "The Sun - Center of our solar system. Temperature: 5778K",
}

var planets = [...]Descriptor{
	{ID: "mercury", Name: "Mercury", Kind: KindPlanet, Size: 1.5, Distance: 20, Speed: 0.02, Color: terminal.Hex(0x8C7853),
		Info: "Closest planet to the Sun. Temperature: 427°C"},
	{ID: "venus", Name: "Venus", Kind: KindPlanet, Size: 2.2, Distance: 28, Speed: 0.015, Color: terminal.Hex(0xE6E6FA),
		Info: "Hottest planet in our solar system. Temperature: 462°C"},
	{ID: "earth", Name: "Earth", Kind: KindPlanet, Size: 2.5, Distance: 35, Speed: 0.01, Color: terminal.Hex(0x6B93D6),
		Info: "Our home planet. Perfect for life. Temperature: 15°C"},
	{ID: "mars", Name: "Mars", Kind: KindPlanet, Size: 1.8, Distance: 42, Speed: 0.008, Color: terminal.Hex(0xCD5C5C),
		Info: "The Red Planet. Temperature: -65°C"},
	{ID: "jupiter", Name: "Jupiter", Kind: KindPlanet, Size: 8, Distance: 55, Speed: 0.006, Color: terminal.Hex(0xD2691E),
		Info: "Largest planet. Great Red Spot storm. Temperature: -110°C"},
	{ID: "saturn", Name: "Saturn", Kind: KindPlanet, Size: 7, Distance: 70, Speed: 0.005, Color: terminal.Hex(0xFAD5A5),
		Info: "Beautiful ring system. Temperature: -140°C"},
	{ID: "uranus", Name: "Uranus", Kind: KindPlanet, Size: 4, Distance: 85, Speed: 0.004, Color: terminal.Hex(0x87CEEB),
		Info: "Ice giant tilted on its side. Temperature: -195°C"},
	{ID: "neptune", Name: "Neptune", Kind: KindPlanet, Size: 3.8, Distance: 100, Speed: 0.003, Color: terminal.Hex(0x4682B4),
		Info: "Windiest planet. Winds up to 2100 km/h. Temperature: -200°C"},
}

var moon = Descriptor{
	ID:       MoonID,
	Name:     "Moon",
	Kind:     KindMoon,
	Size:     0.3,
	Distance: 4,
	Speed:    0.1,
	Color:    terminal.Hex(0xAAAAAA),
	Info:     "Earth's only natural satellite.",
	Parent:   EarthID,
}

// Belt is the reference asteroid belt between Mars and Jupiter
var Belt = BeltSpec{
	Count:  200,
	Radius: Range{47, 52},
	Speed:  Range{0.001, 0.003},
	Size:   Range{0.1, 0.4},
	Jitter: Range{-1, 1},
	Color:  terminal.Hex(0x555555),
}

// Rings is saturn's ring overlay
var Rings = RingSpec{
	Parent: "saturn",
	Inner:  1.5,
	Outer:  2.2,
	Color:  terminal.Hex(0xC4A484),
}

// Self-rotation increments per frame at time scale 1
const (
	SunSpinRate    = 0.005
	PlanetSpinRate = 0.01
)

// Sun returns the central star
func Sun() Descriptor { return sun }

// Moon returns earth's moon
func Moon() Descriptor { return moon }

// Planets returns the eight planets ordered by orbital distance
func Planets() []Descriptor {
	out := make([]Descriptor, len(planets))
	copy(out, planets[:])
	return out
}

// Lookup finds a named body by ID
func Lookup(id string) (Descriptor, bool) {
	switch id {
	case SunID:
		return sun, true
	case MoonID:
		return moon, true
	}
	for _, p := range planets {
		if p.ID == id {
			return p, true
		}
	}
	return Descriptor{}, false
}
