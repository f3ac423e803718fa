package geom

import "github.com/HunterWhyte/jumphysics/sf32"

// Mat22 is a 2x2 matrix stored column-major: Col1 is the first column,
// Col2 the second.
type Mat22 struct {
	Col1, Col2 Vec2
}

// NewRotation builds the rotation matrix for angle (radians):
// column1 = (cos, sin), column2 = (-sin, cos).
func NewRotation(angle sf32.F) Mat22 {
	c := sf32.Cos(angle)
	s := sf32.Sin(angle)
	return Mat22{
		Col1: Vec2{c, s},
		Col2: Vec2{s.Neg(), c},
	}
}

// MulVec returns m * v.
func (m Mat22) MulVec(v Vec2) Vec2 {
	return Vec2{
		X: m.Col1.X.Mul(v.X).Add(m.Col2.X.Mul(v.Y)),
		Y: m.Col1.Y.Mul(v.X).Add(m.Col2.Y.Mul(v.Y)),
	}
}
