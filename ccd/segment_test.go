package ccd

import (
	"math/rand"
	"testing"
)

// bruteForceIntersect sweeps segment a's parameter and, for each sampled
// point, takes the closest point on segment b (its parameter clamped to
// [0, 1]); it reports whether the segments come within eps of each other,
// as a reference oracle independent of the Cramer's-rule implementation
// under test.
func bruteForceIntersect(a0, a1, b0, b1 sv2, steps int) bool {
	bx, by := b1.x-b0.x, b1.y-b0.y
	bLen2 := bx*bx + by*by
	for i := 0; i <= steps; i++ {
		ta := float32(i) / float32(steps)
		pa := lerp(a0, a1, ta)
		tb := max(0, min(1, ((pa.x-b0.x)*bx+(pa.y-b0.y)*by)/bLen2))
		pb := lerp(b0, b1, tb)
		if dist2(pa, pb) < 0.02*0.02 {
			return true
		}
	}
	return false
}

type sv2 struct{ x, y float32 }

func lerp(a, b sv2, t float32) sv2 {
	return sv2{a.x + (b.x-a.x)*t, a.y + (b.y-a.y)*t}
}

func dist2(a, b sv2) float32 {
	dx, dy := a.x-b.x, a.y-b.y
	return dx*dx + dy*dy
}

func TestSegmentIntersectBruteForceSweep(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	mismatches := 0
	for i := 0; i < 1000; i++ {
		a0 := sv2{rng.Float32()*20 - 10, rng.Float32()*20 - 10}
		a1 := sv2{rng.Float32()*20 - 10, rng.Float32()*20 - 10}
		b0 := sv2{rng.Float32()*20 - 10, rng.Float32()*20 - 10}
		b1 := sv2{rng.Float32()*20 - 10, rng.Float32()*20 - 10}

		hit, _, _, _ := SegmentIntersect(sv(a0.x, a0.y), sv(a1.x, a1.y), sv(b0.x, b0.y), sv(b1.x, b1.y))
		brute := bruteForceIntersect(a0, a1, b0, b1, 2000)

		if hit != brute {
			mismatches++
		}
	}
	// Allow a small number of disagreements right at segment endpoints,
	// where the discretised brute-force oracle is itself imprecise.
	if mismatches > 20 {
		t.Errorf("too many disagreements between SegmentIntersect and brute force: %d/1000", mismatches)
	}
}

func TestSegmentIntersectParallel(t *testing.T) {
	hit, _, _, _ := SegmentIntersect(sv(0, 0), sv(1, 0), sv(0, 1), sv(1, 1))
	if hit {
		t.Errorf("parallel segments should not intersect")
	}
}

func TestSegmentIntersectCrossing(t *testing.T) {
	hit, point, ta, tb := SegmentIntersect(sv(-1, 0), sv(1, 0), sv(0, -1), sv(0, 1))
	if !hit {
		t.Fatalf("expected crossing segments to intersect")
	}
	if abs(point.X.Hardware()) > 1e-3 || abs(point.Y.Hardware()) > 1e-3 {
		t.Errorf("expected intersection near origin, got (%v,%v)", point.X.Hardware(), point.Y.Hardware())
	}
	if abs(ta.Hardware()-0.5) > 1e-3 || abs(tb.Hardware()-0.5) > 1e-3 {
		t.Errorf("expected ta=tb=0.5, got ta=%v tb=%v", ta.Hardware(), tb.Hardware())
	}
}

func TestSegmentIntersectOutsideRange(t *testing.T) {
	hit, _, _, _ := SegmentIntersect(sv(0, 0), sv(1, 0), sv(5, -1), sv(5, 1))
	if hit {
		t.Errorf("non-overlapping segments should not intersect")
	}
}
