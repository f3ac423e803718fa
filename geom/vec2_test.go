package geom

import (
	"testing"

	"github.com/HunterWhyte/jumphysics/sf32"
)

func f(v float32) sf32.F { return sf32.FromHardware(v) }

func vecEq(t *testing.T, got, want Vec2, tol float32) {
	t.Helper()
	if abs(got.X.Hardware()-want.X.Hardware()) > tol || abs(got.Y.Hardware()-want.Y.Hardware()) > tol {
		t.Errorf("got (%v,%v), want (%v,%v)", got.X.Hardware(), got.Y.Hardware(), want.X.Hardware(), want.Y.Hardware())
	}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func TestVecAddSubNeg(t *testing.T) {
	a := Vec2{f(1), f(2)}
	b := Vec2{f(3), f(-1)}
	vecEq(t, a.Add(b), Vec2{f(4), f(1)}, 1e-5)
	vecEq(t, a.Sub(b), Vec2{f(-2), f(3)}, 1e-5)
	vecEq(t, a.Neg(), Vec2{f(-1), f(-2)}, 1e-5)
}

func TestDotCross(t *testing.T) {
	a := Vec2{f(1), f(0)}
	b := Vec2{f(0), f(1)}
	if Dot(a, b).Hardware() != 0 {
		t.Errorf("perpendicular dot should be 0")
	}
	if Cross(a, b).Hardware() != 1 {
		t.Errorf("x cross y should be 1, got %v", Cross(a, b).Hardware())
	}
}

func TestCrossVariants(t *testing.T) {
	a := Vec2{f(1), f(2)}
	s := f(3)
	// a x s: (s*a.y, -s*a.x)
	vecEq(t, CrossVS(a, s), Vec2{f(6), f(-3)}, 1e-5)
	// s x a: (-s*a.y, s*a.x)
	vecEq(t, CrossSV(s, a), Vec2{f(-6), f(3)}, 1e-5)
}

func TestMagnitudeNormalizeDistance(t *testing.T) {
	v := Vec2{f(3), f(4)}
	if Magnitude(v).Hardware() != 5 {
		t.Errorf("magnitude of (3,4) should be 5, got %v", Magnitude(v).Hardware())
	}
	n := Normalize(v)
	if abs(Magnitude(n).Hardware()-1) > 1e-4 {
		t.Errorf("normalized vector should have unit magnitude, got %v", Magnitude(n).Hardware())
	}
	if abs(Distance(Vec2{f(0), f(0)}, v).Hardware()-5) > 1e-4 {
		t.Errorf("distance mismatch")
	}
}
