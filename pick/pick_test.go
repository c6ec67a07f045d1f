package pick

import (
	"math"
	"testing"

	"github.com/lixenwraith/orrery/camera"
	"github.com/lixenwraith/orrery/scene"
	"github.com/lixenwraith/orrery/sim"
	"github.com/lixenwraith/orrery/vmath"
)

func setup(t *testing.T) (*camera.Camera, *sim.System, *scene.Scene) {
	t.Helper()
	opts := sim.DefaultOptions()
	opts.RandomPhase = false
	sys := sim.NewSystem(opts)
	sc := scene.Build(sys, scene.DefaultOptions())
	cam := camera.New(camera.DefaultPosition, camera.DefaultTarget)
	cam.SetAspect(100, 50)
	return cam, sys, sc
}

func TestPointerToNDC(t *testing.T) {
	tests := []struct {
		name   string
		x, y   int
		wx, wy float64
	}{
		{"top-left", 0, 0, -0.99, 0.98},
		{"bottom-right", 99, 49, 0.99, -0.98},
		{"center-ish", 50, 25, 0.01, -0.02},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := PointerToNDC(tt.x, tt.y, 100, 50)
			if math.Abs(x-tt.wx) > 1e-9 || math.Abs(y-tt.wy) > 1e-9 {
				t.Errorf("got (%v, %v), want (%v, %v)", x, y, tt.wx, tt.wy)
			}
		})
	}
}

func TestPickSunAtCenter(t *testing.T) {
	cam, sys, sc := setup(t)
	p := &Picker{}

	hit, ok := p.Pick(cam, sys, sc, 50, 25, 100, 50)
	if !ok {
		t.Fatal("expected a hit at screen center")
	}
	if hit.BodyID != "sun" {
		t.Errorf("hit %s, want sun", hit.BodyID)
	}
	if hit.Name != "Sun" || hit.Info == "" {
		t.Errorf("hit descriptor not carried: %+v", hit)
	}
}

func TestPickNearestWins(t *testing.T) {
	cam, sys, sc := setup(t)
	// Angle 0 puts every planet on +X: mars (42), earth (35) and the sun line up
	cam.Position = vmath.Vec3{X: 45}
	cam.Target = vmath.Vec3{}

	hit, ok := (&Picker{}).Pick(cam, sys, sc, 50, 25, 100, 50)
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.BodyID != "mars" {
		t.Errorf("hit %s, want mars in front of earth and sun", hit.BodyID)
	}
	if math.Abs(hit.T-(45-42-1.8)) > 0.05 {
		t.Errorf("t = %v, want ~1.2", hit.T)
	}
}

// placeNearRay moves a body to distance off the ray through cell (x, y), t units from the camera
func placeNearRay(t *testing.T, cam *camera.Camera, b *sim.BodyState, x, y, w, h int, along, off float64) {
	t.Helper()
	ray := cam.RayFromNDC(PointerToNDC(x, y, w, h))
	perp := ray.Dir.Cross(cam.Basis().Up).Normalize()
	b.Position = ray.At(along).Add(perp.Scale(off))
	if _, ok := vmath.RaySphere(ray, b.Position, b.Size); ok {
		t.Fatalf("%s placed on the ray", b.ID)
	}
}

func TestDefaultPickerPrefersExactHit(t *testing.T) {
	cam, sys, sc := setup(t)
	cam.Position = vmath.Vec3{Z: 100}
	cam.SetAspect(80, 24)

	// Mercury passes just outside the ray, close enough for its inflated sphere to cover it
	mercury, _ := sys.Body("mercury")
	placeNearRay(t, cam, mercury, 39, 11, 80, 24, 80, 2.2)

	hit, ok := NewPicker().Pick(cam, sys, sc, 39, 11, 80, 24)
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.BodyID != "sun" {
		t.Errorf("hit %s, want sun: only the sun is on the ray", hit.BodyID)
	}
}

func TestDefaultPickerInflatesOnMiss(t *testing.T) {
	cam, sys, sc := setup(t)
	cam.Position = vmath.Vec3{Z: 100}
	cam.SetAspect(80, 24)

	mercury, _ := sys.Body("mercury")
	placeNearRay(t, cam, mercury, 10, 5, 80, 24, 150, 2.2)

	if hit, ok := (&Picker{}).Pick(cam, sys, sc, 10, 5, 80, 24); ok {
		t.Fatalf("exact picker hit %s", hit.BodyID)
	}
	hit, ok := NewPicker().Pick(cam, sys, sc, 10, 5, 80, 24)
	if !ok || hit.BodyID != "mercury" {
		t.Errorf("hit %q (%v), want mercury through its inflated sphere", hit.BodyID, ok)
	}
}

func TestPickIgnoresMoonAndAsteroids(t *testing.T) {
	cam, sys, sc := setup(t)
	moon := sys.Moon()
	cam.Position = moon.Position.Add(vmath.Vec3{Y: 3})
	cam.Target = moon.Position

	hit, ok := (&Picker{}).Pick(cam, sys, sc, 50, 25, 100, 50)
	if ok && hit.BodyID == "moon" {
		t.Error("moon must not be pickable")
	}
}

func TestPickMiss(t *testing.T) {
	cam, sys, sc := setup(t)
	cam.Position = vmath.Vec3{Y: 50}
	cam.Target = vmath.Vec3{Y: 100}

	if hit, ok := NewPicker().Pick(cam, sys, sc, 50, 25, 100, 50); ok {
		t.Errorf("looking at empty sky hit %s", hit.BodyID)
	}
}

func TestPickIsReadOnly(t *testing.T) {
	cam, sys, sc := setup(t)
	earth, _ := sys.Body("earth")
	pos := earth.Position
	camBefore := *cam

	NewPicker().Pick(cam, sys, sc, 10, 10, 100, 50)

	if earth.Position != pos || *cam != camBefore {
		t.Error("pick mutated state")
	}
}

func TestTooltip(t *testing.T) {
	var tip Tooltip
	tip.Show(Hit{BodyID: "mars", Name: "Mars", Info: "The Red Planet"}, 10, 5)
	if !tip.Visible || tip.Title != "Mars" || tip.X != 12 || tip.Y != 6 {
		t.Errorf("tooltip = %+v", tip)
	}
	tip.Hide()
	if tip.Visible || tip.Title != "" {
		t.Errorf("hidden tooltip = %+v", tip)
	}
}
