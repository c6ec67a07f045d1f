package vmath

import "math"

// Ray is a half-line from Origin along unit direction Dir
type Ray struct {
	Origin Vec3
	Dir    Vec3
}

// At returns the point at parameter t
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Dir.Scale(t))
}

// RaySphere returns the smallest non-negative parameter at which the ray meets the sphere
// A ray starting inside the sphere reports the exit point
func RaySphere(r Ray, center Vec3, radius float64) (float64, bool) {
	oc := r.Origin.Sub(center)
	b := oc.Dot(r.Dir)
	c := oc.MagSq() - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t := -b - sq
	if t < 0 {
		t = -b + sq
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}
