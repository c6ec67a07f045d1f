package sim

import (
	"testing"

	"github.com/lixenwraith/orrery/vmath"
)

func TestTrailNeverExceedsCapacity(t *testing.T) {
	tr := NewTrail(DefaultTrailCapacity, vmath.Vec3{})
	for i := 0; i < 10*DefaultTrailCapacity+7; i++ {
		tr.Push(vmath.Vec3{X: float64(i)})
		if tr.Len() > tr.Cap() {
			t.Fatalf("after %d pushes len %d > cap %d", i+1, tr.Len(), tr.Cap())
		}
	}
	if tr.Len() != DefaultTrailCapacity {
		t.Errorf("len = %d, want %d", tr.Len(), DefaultTrailCapacity)
	}
}

func TestTrailFullWindowOrder(t *testing.T) {
	tr := NewTrail(DefaultTrailCapacity, vmath.Vec3{})
	for i := 0; i < DefaultTrailCapacity; i++ {
		tr.Push(vmath.Vec3{X: float64(i), Z: float64(-i)})
	}

	pts := tr.Points()
	if pts[0] != (vmath.Vec3{X: 0, Z: 0}) {
		t.Errorf("first = %v, want first recorded position", pts[0])
	}
	last := DefaultTrailCapacity - 1
	if pts[last] != (vmath.Vec3{X: float64(last), Z: float64(-last)}) {
		t.Errorf("last = %v, want most recent position", pts[last])
	}

	// One more push drops the oldest
	tr.Push(vmath.Vec3{X: 999})
	pts = tr.Points()
	if pts[0].X != 1 || pts[len(pts)-1].X != 999 {
		t.Errorf("after overflow: first %v last %v", pts[0], pts[len(pts)-1])
	}
}

func TestTrailChronologicalAfterWrap(t *testing.T) {
	tr := NewTrail(4, vmath.Vec3{})
	for i := 0; i < 11; i++ {
		tr.Push(vmath.Vec3{X: float64(i)})
	}
	want := []float64{7, 8, 9, 10}
	for i, p := range tr.Points() {
		if p.X != want[i] {
			t.Errorf("points[%d] = %v, want %v", i, p.X, want[i])
		}
	}
}

func TestTrailGeometryBackfill(t *testing.T) {
	start := vmath.Vec3{X: 35}
	tr := NewTrail(5, start)

	for _, g := range tr.Geometry() {
		if g != start {
			t.Fatalf("initial geometry %v, want start position", g)
		}
	}

	a := vmath.Vec3{X: 1}
	b := vmath.Vec3{X: 2}
	tr.Push(a)
	tr.Rebuild(a)
	tr.Push(b)
	tr.Rebuild(b)

	geo := tr.Geometry()
	if len(geo) != 5 {
		t.Fatalf("geometry len = %d, want 5", len(geo))
	}
	// Leading slots take the current position, history fills the tail oldest first
	want := []vmath.Vec3{b, b, b, a, b}
	for i := range want {
		if geo[i] != want[i] {
			t.Errorf("geometry[%d] = %v, want %v", i, geo[i], want[i])
		}
	}
}

func TestTrailGeometryFull(t *testing.T) {
	tr := NewTrail(3, vmath.Vec3{})
	var cur vmath.Vec3
	for i := 1; i <= 5; i++ {
		cur = vmath.Vec3{Z: float64(i)}
		tr.Push(cur)
		tr.Rebuild(cur)
	}
	geo := tr.Geometry()
	for i, z := range []float64{3, 4, 5} {
		if geo[i].Z != z {
			t.Errorf("geometry[%d].Z = %v, want %v", i, geo[i].Z, z)
		}
	}
}

func TestTrailZeroCapacityDefaults(t *testing.T) {
	if got := NewTrail(0, vmath.Vec3{}).Cap(); got != DefaultTrailCapacity {
		t.Errorf("cap = %d, want %d", got, DefaultTrailCapacity)
	}
}
