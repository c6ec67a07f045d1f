package scene

import (
	"math"
	"testing"

	"github.com/lixenwraith/orrery/body"
	"github.com/lixenwraith/orrery/sim"
)

func newTestScene(t *testing.T) (*sim.System, *Scene) {
	t.Helper()
	sys := sim.NewSystem(sim.DefaultOptions())
	return sys, Build(sys, DefaultOptions())
}

func TestBuildPopulation(t *testing.T) {
	sys, s := newTestScene(t)

	if got, want := len(s.Group(GroupBodies)), 1+8+1; got != want {
		t.Errorf("body group = %d nodes, want %d (sun, planets, ring)", got, want)
	}
	if got := len(s.Group(GroupAsteroids)); got != 200 {
		t.Errorf("asteroid nodes = %d, want 200", got)
	}
	if got := len(s.Group(GroupMoon)); got != 1 {
		t.Errorf("moon nodes = %d, want 1", got)
	}
	if got := len(s.Orbits()); got != 8 {
		t.Errorf("orbit paths = %d, want 8", got)
	}
	if got := len(s.Trails()); got != len(sys.Trailed()) {
		t.Errorf("trail lines = %d, want %d", got, len(sys.Trailed()))
	}
	if got := len(s.Stars().Points); got != DefaultStarCount {
		t.Errorf("stars = %d, want %d", got, DefaultStarCount)
	}
	for _, b := range sys.Bodies() {
		if _, ok := s.Mesh(b.ID); !ok {
			t.Errorf("no mesh for %s", b.ID)
		}
	}
}

func TestOrbitPathClosed(t *testing.T) {
	_, s := newTestScene(t)
	for _, n := range s.Orbits() {
		if len(n.Points) != DefaultOrbitSegments+1 {
			t.Fatalf("%s: %d points", n.BodyID, len(n.Points))
		}
		d, _ := body.Lookup(n.BodyID)
		first, last := n.Points[0], n.Points[len(n.Points)-1]
		if math.Abs(first.X-last.X) > 1e-9 || math.Abs(first.Z-last.Z) > 1e-9 {
			t.Errorf("%s: path not closed", n.BodyID)
		}
		for _, p := range n.Points {
			if math.Abs(p.Mag()-d.Distance) > 1e-9 || p.Y != 0 {
				t.Errorf("%s: point %+v off orbit %v", n.BodyID, p, d.Distance)
				break
			}
		}
	}
}

func TestRingOnSaturn(t *testing.T) {
	_, s := newTestScene(t)
	rings := s.Rings()
	if len(rings) != 1 {
		t.Fatalf("rings = %d, want 1", len(rings))
	}
	r := rings[0]
	if r.BodyID != "saturn" || math.Abs(r.Inner-10.5) > 1e-9 || math.Abs(r.Outer-15.4) > 1e-9 {
		t.Errorf("ring = %+v", r)
	}
}

func TestStarfieldBoundsAndSeed(t *testing.T) {
	_, s := newTestScene(t)
	for _, p := range s.Stars().Points {
		if math.Abs(p.X) > 1000 || math.Abs(p.Y) > 1000 || math.Abs(p.Z) > 1000 {
			t.Fatalf("star %+v outside cube", p)
		}
	}

	sys := sim.NewSystem(sim.DefaultOptions())
	again := Build(sys, DefaultOptions())
	if again.Stars().Points[42] != s.Stars().Points[42] {
		t.Error("starfield not reproducible for equal seeds")
	}
}

func TestPickableSunAndPlanetsOnly(t *testing.T) {
	_, s := newTestScene(t)
	p := s.Pickable()
	if len(p) != 9 {
		t.Fatalf("pickable = %d, want 9", len(p))
	}
	for _, n := range p {
		d, ok := body.Lookup(n.BodyID)
		if !ok || (d.Kind != body.KindStar && d.Kind != body.KindPlanet) {
			t.Errorf("%s should not be pickable", n.BodyID)
		}
	}
}

func TestApplyVisibility(t *testing.T) {
	_, s := newTestScene(t)

	s.ApplyVisibility(sim.Visibility{Trails: false, Orbits: true, Moon: false, Asteroids: true})
	for _, n := range s.Trails() {
		if n.Visible {
			t.Fatal("trail visible after hide")
		}
	}
	if s.GroupVisible(GroupMoon) {
		t.Error("moon visible after hide")
	}
	if !s.GroupVisible(GroupOrbits) || !s.GroupVisible(GroupAsteroids) {
		t.Error("untoggled groups hidden")
	}
	if !s.GroupVisible(GroupBodies) {
		t.Error("bodies hidden")
	}

	s.ApplyVisibility(sim.DefaultParams().Visibility)
	for _, g := range []Group{GroupTrails, GroupOrbits, GroupMoon, GroupAsteroids} {
		if !s.GroupVisible(g) {
			t.Errorf("group %d hidden after reset", g)
		}
	}
}
