package sim

// Visibility holds the per-feature render toggles
type Visibility struct {
	Trails    bool
	Orbits    bool
	Moon      bool
	Asteroids bool
}

// Params is the global simulation state threaded into every frame
// Mutated only by the control surface between frames
type Params struct {
	Running    bool
	TimeScale  float64
	Visibility Visibility
}

// DefaultParams returns running at 1x with every feature visible
func DefaultParams() Params {
	return Params{
		Running:   true,
		TimeScale: 1.0,
		Visibility: Visibility{
			Trails:    true,
			Orbits:    true,
			Moon:      true,
			Asteroids: true,
		},
	}
}
