// Package scene builds the static render graph once at startup
// Nodes reference bodies by ID only, positions are read from sim at draw time
package scene

import (
	"math"

	"github.com/lixenwraith/orrery/body"
	"github.com/lixenwraith/orrery/sim"
	"github.com/lixenwraith/orrery/terminal"
	"github.com/lixenwraith/orrery/vmath"
)

// NodeKind selects how the renderer draws a node
type NodeKind uint8

const (
	KindMesh NodeKind = iota
	KindRing
	KindOrbitPath
	KindTrailLine
	KindStarfield
)

// Group is a visibility group toggled as a unit
type Group uint8

const (
	GroupBodies Group = iota
	GroupMoon
	GroupAsteroids
	GroupOrbits
	GroupTrails
	GroupStars
	groupCount
)

const (
	DefaultStarCount     = 5000
	DefaultStarSpread    = 2000.0
	DefaultOrbitSegments = 128
)

// Star and orbit colors
var (
	StarColor  = terminal.Hex(0xFFFFFF)
	OrbitColor = terminal.Hex(0x444444)
)

// Options controls procedural scene content
type Options struct {
	Seed          uint64
	StarCount     int
	StarSpread    float64 // edge of the cube centered on origin
	OrbitSegments int
}

// DefaultOptions returns the reference scene setup
func DefaultOptions() Options {
	return Options{
		Seed:          1,
		StarCount:     DefaultStarCount,
		StarSpread:    DefaultStarSpread,
		OrbitSegments: DefaultOrbitSegments,
	}
}

// Node is one drawable element
type Node struct {
	Kind    NodeKind
	Group   Group
	BodyID  string // non-owning, empty for starfield
	Name    string
	Info    string
	Color   terminal.RGB
	Visible bool

	Radius float64 // mesh radius
	Inner  float64 // ring radii in world units
	Outer  float64

	Points []vmath.Vec3 // orbit polyline or star positions
}

// Scene is the render graph
type Scene struct {
	nodes  []*Node
	meshes map[string]*Node
	groups [groupCount][]*Node

	pickable []*Node
	rings    []*Node
	orbits   []*Node
	trails   []*Node
	stars    *Node
}

// Build creates meshes, rings, orbit paths, trail lines and the starfield for sys
func Build(sys *sim.System, opts Options) *Scene {
	if opts.StarSpread <= 0 {
		opts.StarSpread = DefaultStarSpread
	}
	if opts.OrbitSegments < 3 {
		opts.OrbitSegments = DefaultOrbitSegments
	}
	if opts.StarCount < 0 {
		opts.StarCount = 0
	}

	s := &Scene{meshes: make(map[string]*Node)}

	if b := sys.Sun(); b != nil {
		d := body.Sun()
		s.pickable = append(s.pickable, s.addMesh(b, d.Name, d.Info, d.Color, GroupBodies))
	}

	for _, b := range sys.Planets() {
		d, _ := body.Lookup(b.ID)
		mesh := s.addMesh(b, d.Name, d.Info, d.Color, GroupBodies)
		s.pickable = append(s.pickable, mesh)

		if b.ID == body.Rings.Parent {
			s.rings = append(s.rings, s.add(&Node{
				Kind:   KindRing,
				Group:  GroupBodies,
				BodyID: b.ID,
				Name:   d.Name,
				Color:  body.Rings.Color,
				Inner:  b.Size * body.Rings.Inner,
				Outer:  b.Size * body.Rings.Outer,
			}))
		}

		s.orbits = append(s.orbits, s.add(&Node{
			Kind:   KindOrbitPath,
			Group:  GroupOrbits,
			BodyID: b.ID,
			Name:   d.Name,
			Color:  OrbitColor,
			Points: circle(b.Radius, opts.OrbitSegments),
		}))
	}

	if b := sys.Moon(); b != nil {
		d := body.Moon()
		s.addMesh(b, d.Name, d.Info, d.Color, GroupMoon)
	}

	for _, b := range sys.Asteroids() {
		s.addMesh(b, "Asteroid", "", body.Belt.Color, GroupAsteroids)
	}

	for _, b := range sys.Trailed() {
		d, _ := body.Lookup(b.ID)
		s.trails = append(s.trails, s.add(&Node{
			Kind:   KindTrailLine,
			Group:  GroupTrails,
			BodyID: b.ID,
			Name:   d.Name,
			Color:  d.Color,
		}))
	}

	s.stars = s.add(&Node{
		Kind:   KindStarfield,
		Group:  GroupStars,
		Name:   "Stars",
		Color:  StarColor,
		Points: starfield(opts.Seed, opts.StarCount, opts.StarSpread),
	})

	return s
}

func (s *Scene) add(n *Node) *Node {
	n.Visible = true
	s.nodes = append(s.nodes, n)
	s.groups[n.Group] = append(s.groups[n.Group], n)
	return n
}

func (s *Scene) addMesh(b *sim.BodyState, name, info string, color terminal.RGB, g Group) *Node {
	n := s.add(&Node{
		Kind:   KindMesh,
		Group:  g,
		BodyID: b.ID,
		Name:   name,
		Info:   info,
		Color:  color,
		Radius: b.Size,
	})
	s.meshes[b.ID] = n
	return n
}

// circle returns a closed polyline of segments+1 points on the XZ plane
func circle(radius float64, segments int) []vmath.Vec3 {
	pts := make([]vmath.Vec3, segments+1)
	for i := 0; i <= segments; i++ {
		theta := float64(i) / float64(segments) * 2 * math.Pi
		pts[i] = vmath.Vec3{X: math.Cos(theta) * radius, Z: math.Sin(theta) * radius}
	}
	return pts
}

func starfield(seed uint64, count int, spread float64) []vmath.Vec3 {
	// Distinct stream from the body placement
	rng := vmath.NewFastRand(seed ^ 0x9E3779B97F4A7C15)
	half := spread / 2
	pts := make([]vmath.Vec3, count)
	for i := range pts {
		pts[i] = vmath.Vec3{
			X: rng.Range(-half, half),
			Y: rng.Range(-half, half),
			Z: rng.Range(-half, half),
		}
	}
	return pts
}

// ApplyVisibility maps the toggles onto their groups
func (s *Scene) ApplyVisibility(v sim.Visibility) {
	s.setGroup(GroupTrails, v.Trails)
	s.setGroup(GroupOrbits, v.Orbits)
	s.setGroup(GroupMoon, v.Moon)
	s.setGroup(GroupAsteroids, v.Asteroids)
}

func (s *Scene) setGroup(g Group, visible bool) {
	for _, n := range s.groups[g] {
		n.Visible = visible
	}
}

// GroupVisible reports the visibility of the first node in g, true for empty groups
func (s *Scene) GroupVisible(g Group) bool {
	if len(s.groups[g]) == 0 {
		return true
	}
	return s.groups[g][0].Visible
}

// Nodes returns all nodes in build order
func (s *Scene) Nodes() []*Node { return s.nodes }

// Group returns the nodes of g
func (s *Scene) Group(g Group) []*Node { return s.groups[g] }

// Mesh returns the mesh node of a body
func (s *Scene) Mesh(id string) (*Node, bool) {
	n, ok := s.meshes[id]
	return n, ok
}

// Pickable returns the meshes eligible for picking: the sun and planets
func (s *Scene) Pickable() []*Node { return s.pickable }

func (s *Scene) Rings() []*Node  { return s.rings }
func (s *Scene) Orbits() []*Node { return s.orbits }
func (s *Scene) Trails() []*Node { return s.trails }
func (s *Scene) Stars() *Node    { return s.stars }
