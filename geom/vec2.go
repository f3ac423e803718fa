// Package geom provides the 2D vector, rotation matrix, and rigid-body
// kinematics that the continuous collision detection kernel (package ccd)
// is built on. Every scalar is an sf32.F: no hardware float32/float64 enters
// this package's arithmetic.
package geom

import "github.com/HunterWhyte/jumphysics/sf32"

// Vec2 is a 2D vector over the deterministic software-float scalar.
type Vec2 struct {
	X, Y sf32.F
}

// Go has no operator overloading, so vector arithmetic is method-form:
// Add, Sub, Neg, Scale replace the source's +, -, unary -, * operators.

// Add returns v + w.
func (v Vec2) Add(w Vec2) Vec2 { return Vec2{v.X.Add(w.X), v.Y.Add(w.Y)} }

// Sub returns v - w.
func (v Vec2) Sub(w Vec2) Vec2 { return Vec2{v.X.Sub(w.X), v.Y.Sub(w.Y)} }

// Neg returns -v.
func (v Vec2) Neg() Vec2 { return Vec2{v.X.Neg(), v.Y.Neg()} }

// Scale returns v * s.
func (v Vec2) Scale(s sf32.F) Vec2 { return Vec2{v.X.Mul(s), v.Y.Mul(s)} }

// Dot returns the scalar dot product a . b.
func Dot(a, b Vec2) sf32.F { return a.X.Mul(b.X).Add(a.Y.Mul(b.Y)) }

// Cross returns the scalar (2D) cross product a x b = a.x*b.y - a.y*b.x.
func Cross(a, b Vec2) sf32.F { return a.X.Mul(b.Y).Sub(a.Y.Mul(b.X)) }

// CrossVS returns the vector cross product a x s (a rotated -90 degrees,
// scaled by s): (s*a.y, -s*a.x).
func CrossVS(a Vec2, s sf32.F) Vec2 { return Vec2{a.Y.Mul(s), a.X.Mul(s).Neg()} }

// CrossSV returns the vector cross product s x a (a rotated +90 degrees,
// scaled by s): (-s*a.y, s*a.x).
func CrossSV(s sf32.F, a Vec2) Vec2 { return Vec2{a.Y.Mul(s).Neg(), a.X.Mul(s)} }

// DistanceSquared returns |a-b|^2.
func DistanceSquared(a, b Vec2) sf32.F {
	d := a.Sub(b)
	return Dot(d, d)
}

// Distance returns |a-b|.
func Distance(a, b Vec2) sf32.F { return DistanceSquared(a, b).Sqrt() }

// MagnitudeSquared returns |v|^2.
func MagnitudeSquared(v Vec2) sf32.F { return Dot(v, v) }

// Magnitude returns |v|.
func Magnitude(v Vec2) sf32.F { return Dot(v, v).Sqrt() }

// Normalize returns v / |v|. Undefined when |v| == 0: callers must guarantee
// non-zero input (GJK tests dot(d,d)==0 to terminate before normalising).
func Normalize(v Vec2) Vec2 { return v.Scale(sf32.One.Div(Magnitude(v))) }

// Max returns the component-wise maximum of a and b.
func Max(a, b Vec2) Vec2 { return Vec2{sf32.Max(a.X, b.X), sf32.Max(a.Y, b.Y)} }

// Min returns the component-wise minimum of a and b.
func Min(a, b Vec2) Vec2 { return Vec2{sf32.Min(a.X, b.X), sf32.Min(a.Y, b.Y)} }
