package ccd

import (
	"math"
	"math/rand"
	"testing"

	"github.com/HunterWhyte/jumphysics/geom"
)

func triangle(cx, cy float32) []geom.Vec2 {
	return []geom.Vec2{
		sv(cx+0, cy+0),
		sv(cx+2, cy+0),
		sv(cx+1, cy+2),
	}
}

func octagon(cx, cy, r float32) []geom.Vec2 {
	verts := make([]geom.Vec2, 8)
	for i := 0; i < 8; i++ {
		angle := float64(i) * math.Pi / 4
		verts[i] = sv(cx+r*float32(math.Cos(angle)), cy+r*float32(math.Sin(angle)))
	}
	return verts
}

func TestPolygonDistanceSeparatedSquares(t *testing.T) {
	a := square(0, 0, 1)
	b := square(10, 0, 1)
	dist, _, _, _, _ := PolygonDistance(a, b)
	want := float32(8) // gap between nearest edges
	if d := dist.Hardware(); abs(d-want) > 1e-2 {
		t.Errorf("got distance %v, want ~%v", d, want)
	}
}

func TestPolygonDistanceOverlapping(t *testing.T) {
	a := square(0, 0, 1)
	b := square(1, 0, 1)
	dist, ca, cb, _, _ := PolygonDistance(a, b)
	if dist.Hardware() != 0 {
		t.Errorf("overlapping squares should have distance 0, got %v", dist.Hardware())
	}
	if ca != cb {
		t.Errorf("overlap should report closestA == closestB, got %v != %v", ca, cb)
	}
}

func TestPolygonDistanceSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		a := square(rng.Float32()*4-2, rng.Float32()*4-2, 1+rng.Float32())
		b := octagon(rng.Float32()*10+5, rng.Float32()*10+5, 1+rng.Float32())
		dAB, _, _, _, _ := PolygonDistance(a, b)
		dBA, _, _, _, _ := PolygonDistance(b, a)
		if abs(dAB.Hardware()-dBA.Hardware()) > 1e-2 {
			t.Errorf("distance asymmetry: AB=%v BA=%v", dAB.Hardware(), dBA.Hardware())
		}
	}
}

func TestPolygonDistanceWitnessValidity(t *testing.T) {
	a := square(0, 0, 1)
	b := square(5, 0, 1)
	dist, ca, cb, fa, fb := PolygonDistance(a, b)
	gotDist := geom.Distance(ca, cb).Hardware()
	if abs(gotDist-dist.Hardware()) > 1e-3 {
		t.Errorf("|cb-ca| should equal reported distance: got %v want %v", gotDist, dist.Hardware())
	}
	if fa.Edge && fa.Index1 == fa.Index2 {
		t.Errorf("edge feature must reference two distinct vertices")
	}
	_ = fb
}

func TestPolygonDistanceTriangleVertices(t *testing.T) {
	a := triangle(0, 0)
	b := triangle(10, 0)
	dist, _, _, fa, fb := PolygonDistance(a, b)
	if dist.Hardware() <= 0 {
		t.Errorf("separated triangles should have positive distance")
	}
	_ = fa
	_ = fb
}

func TestPolygonDistanceOctagonBoundary(t *testing.T) {
	a := octagon(0, 0, 2)
	b := octagon(20, 0, 2)
	dist, _, _, _, _ := PolygonDistance(a, b)
	if dist.Hardware() <= 0 {
		t.Errorf("separated octagons should have positive distance")
	}
}

func TestPolygonDistanceParallelEdgeSliding(t *testing.T) {
	// Two squares face to face, sharing an aligned edge direction.
	a := square(0, 0, 1)
	b := square(2, 0.5, 1)
	_, _, _, fa, _ := PolygonDistance(a, b)
	// Should not panic or misreport an edge with duplicate indices.
	if fa.Edge && fa.Index1 == fa.Index2 {
		t.Errorf("degenerate edge feature")
	}
}

func f32Eq(a, b, tol float32) bool { return abs(a-b) <= tol }

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
