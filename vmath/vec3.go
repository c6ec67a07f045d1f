package vmath

import "math"

// Vec3 is a float64 3D vector in world units
// Y is up, orbits lie in the XZ plane
type Vec3 struct {
	X, Y, Z float64
}

func V3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func (a Vec3) Scale(s float64) Vec3 {
	return Vec3{a.X * s, a.Y * s, a.Z * s}
}

func (a Vec3) Dot(b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func (a Vec3) MagSq() float64 {
	return a.X*a.X + a.Y*a.Y + a.Z*a.Z
}

func (a Vec3) Mag() float64 {
	return math.Sqrt(a.MagSq())
}

// Normalize returns the unit vector, zero vector stays zero
func (a Vec3) Normalize() Vec3 {
	mag := a.Mag()
	if mag == 0 {
		return Vec3{}
	}
	inv := 1.0 / mag
	return Vec3{a.X * inv, a.Y * inv, a.Z * inv}
}

// Lerp interpolates a→b, written as a*(1-t) + b*t so t=0 yields a and t=1 yields b exactly
func Lerp(a, b Vec3, t float64) Vec3 {
	s := 1 - t
	return Vec3{
		a.X*s + b.X*t,
		a.Y*s + b.Y*t,
		a.Z*s + b.Z*t,
	}
}

// Dist returns the euclidean distance between two points
func Dist(a, b Vec3) float64 {
	return a.Sub(b).Mag()
}
