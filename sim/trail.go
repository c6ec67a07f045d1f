package sim

import "github.com/lixenwraith/orrery/vmath"

// DefaultTrailCapacity is the number of recent positions a trail keeps
const DefaultTrailCapacity = 50

// Trail is a fixed-capacity rolling history of positions, oldest first
// Geometry is the renderable line, always Cap points long
type Trail struct {
	points   []vmath.Vec3 // ring storage
	head     int          // index of oldest entry
	n        int
	geometry []vmath.Vec3
}

// NewTrail creates a trail with its geometry pre-filled at the starting position
func NewTrail(capacity int, start vmath.Vec3) *Trail {
	if capacity <= 0 {
		capacity = DefaultTrailCapacity
	}
	t := &Trail{
		points:   make([]vmath.Vec3, capacity),
		geometry: make([]vmath.Vec3, capacity),
	}
	for i := range t.geometry {
		t.geometry[i] = start
	}
	return t
}

func (t *Trail) Len() int { return t.n }
func (t *Trail) Cap() int { return len(t.points) }

// Push appends a position, dropping the oldest once capacity is exceeded
func (t *Trail) Push(p vmath.Vec3) {
	c := len(t.points)
	if t.n < c {
		t.points[(t.head+t.n)%c] = p
		t.n++
		return
	}
	t.points[t.head] = p
	t.head = (t.head + 1) % c
}

// At returns the i-th retained position, 0 is the oldest
func (t *Trail) At(i int) vmath.Vec3 {
	return t.points[(t.head+i)%len(t.points)]
}

// Points returns a chronological copy of the retained history
func (t *Trail) Points() []vmath.Vec3 {
	out := make([]vmath.Vec3, t.n)
	for i := range out {
		out[i] = t.At(i)
	}
	return out
}

// Rebuild regenerates the line geometry from history, oldest first
// Slots without history yet are filled with current, recomputed on every rebuild until the buffer is full
func (t *Trail) Rebuild(current vmath.Vec3) {
	c := len(t.points)
	for i := 0; i < c; i++ {
		idx := t.n - c + i
		if idx >= 0 {
			t.geometry[i] = t.At(idx)
		} else {
			t.geometry[i] = current
		}
	}
}

// Geometry returns the line points last produced by Rebuild, owned by the trail
func (t *Trail) Geometry() []vmath.Vec3 {
	return t.geometry
}
