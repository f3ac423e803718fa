package ccd

import (
	"fmt"

	"github.com/HunterWhyte/jumphysics/geom"
	"github.com/HunterWhyte/jumphysics/sf32"
)

// ContinuousCollision is the main CCD entry point: given two bodies moving
// at constant linear/angular velocity over [tStart, 1], it finds the
// earliest time of impact via bilateral advancement — alternately advancing
// a conservative time t1 and re-solving GJK to pick a fresh separating
// feature pair, bisecting within [t1, t2] whenever the separation function
// crosses zero.
//
// ContinuousCollision is a pure function of its two body values and
// tStart; it is safe to call concurrently from multiple goroutines
// provided each goroutine owns its own *geom.Body values (bodies are
// logically immutable during a query).
func ContinuousCollision(bodyA, bodyB *geom.Body, tStart sf32.F, opts ...Option) (hit bool, tImpact sf32.F, featureA, featureB Feature, impact geom.Vec2) {
	cfg := newConfig(opts)
	t1 := tStart

	var bufA, bufB [geom.MaxVertices]geom.Vec2

	for outer := 0; outer < MaxTOIIters; outer++ {
		polyA := bodyA.AbsoluteVertices(t1, bufA[:])
		polyB := bodyB.AbsoluteVertices(t1, bufB[:])
		dist, _, _, fa, fb := PolygonDistance(polyA, polyB)

		if outer == 0 && dist.Eq(sf32.Zero) {
			return rescue(bodyA, bodyB, tStart, cfg)
		}

		if fa.Edge && fb.Edge {
			return invariantViolation(cfg, "edge-edge witness pair from polygon distance")
		}

		sep := buildSeparation(bodyA, bodyB, fa, fb, t1)

		t2 := sf32.One
		s2 := sep(t2)
		switch {
		case s2.Gt(Tol):
			return false, sf32.Zero, Feature{}, Feature{}, geom.Vec2{}
		case s2.Lt(Tol.Neg()):
			root, ok := bisect(sep, t1, t2, cfg)
			if !ok {
				return false, sf32.Zero, Feature{}, Feature{}, geom.Vec2{}
			}
			t1 = root
		default:
			t1 = t2
		}

		verifyA := bodyA.AbsoluteVertices(t1, bufA[:])
		verifyB := bodyB.AbsoluteVertices(t1, bufB[:])
		satHit, _, overlap := SATIntersect(verifyA, verifyB)
		if !satHit {
			continue // still separated: loop again, GJK picks the next axis
		}
		if overlap.Lt(Tol) {
			_, closestA, _, fa2, fb2 := PolygonDistance(verifyA, verifyB)
			return true, t1, fa2, fb2, closestA
		}
		return invariantViolation(cfg, fmt.Sprintf("went too deep: overlap %v exceeds tolerance after convergence", overlap.Hardware()))
	}

	cfg.logger.Warn("ccd: maxed out overall bilateral advancement iterations")
	return false, sf32.Zero, Feature{}, Feature{}, geom.Vec2{}
}

// invariantViolation handles a condition the algorithm's design asserts
// cannot occur in practice. In strict mode (debug builds, tests) it panics
// so the violation is loud; otherwise it logs and is reported as no
// collision, per the error-handling policy: invariant violations collapse
// to hit=false in production.
func invariantViolation(cfg *config, msg string) (bool, sf32.F, Feature, Feature, geom.Vec2) {
	if cfg.strict {
		panic(fmt.Errorf("ccd: invariant violation: %s", msg))
	}
	cfg.logger.Error("ccd: invariant violation", "detail", msg)
	return false, sf32.Zero, Feature{}, Feature{}, geom.Vec2{}
}

// bisect performs bisection root-finding on sep within [a, b], always
// approaching the root from the positive side (s(a) > 0 by construction of
// the caller). Capped at MaxBisectIters; exceeding the cap is treated as a
// safe non-collision.
func bisect(sep func(sf32.F) sf32.F, a, b sf32.F, cfg *config) (root sf32.F, ok bool) {
	for i := 0; i < MaxBisectIters; i++ {
		c := a.Add(b).Div(sf32.Two)
		sc := sep(c)
		if sc.Abs().Lt(Tol) {
			return c, true
		}
		if sc.Gt(sf32.Zero) {
			a = c
		} else {
			b = c
		}
	}
	cfg.logger.Warn("ccd: bisection root finding iterations exceeded")
	return sf32.Zero, false
}

// buildSeparation constructs the separation function s(t) for the feature
// pair GJK reported at t1. The support indices are captured now and held
// fixed through every later evaluation (including bisection), per the
// source's "fixed support index across bisection" invariant: this keeps s
// piecewise-linear-ish so bisection's sign behaviour is well defined.
func buildSeparation(bodyA, bodyB *geom.Body, fa, fb Feature, t1 sf32.F) func(sf32.F) sf32.F {
	if !fa.Edge && !fb.Edge {
		a0 := bodyA.AbsoluteVertex(fa.Index1, t1)
		b0 := bodyB.AbsoluteVertex(fb.Index1, t1)
		u := geom.Normalize(b0.Sub(a0))
		idxA, idxB := fa.Index1, fb.Index1
		return func(t sf32.F) sf32.F {
			pa := bodyA.AbsoluteVertex(idxA, t)
			pb := bodyB.AbsoluteVertex(idxB, t)
			return geom.Dot(pb.Sub(pa), u)
		}
	}
	if fa.Edge {
		return pointEdgeSeparation(bodyB, fb.Index1, bodyA, fa.Index1, fa.Index2)
	}
	return pointEdgeSeparation(bodyA, fa.Index1, bodyB, fb.Index1, fb.Index2)
}

// pointEdgeSeparation builds s(t) for a point witness on pointBody against
// an edge witness (e1->e2) on edgeBody. The edge normal is recomputed at
// every probe time, oriented outward relative to edgeBody's center.
func pointEdgeSeparation(pointBody *geom.Body, pointIdx int, edgeBody *geom.Body, e1, e2 int) func(sf32.F) sf32.F {
	return func(t sf32.F) sf32.F {
		edgeStart := edgeBody.AbsoluteVertex(e1, t)
		edgeEnd := edgeBody.AbsoluteVertex(e2, t)
		edge := edgeEnd.Sub(edgeStart)
		n := geom.Normalize(geom.Vec2{X: edge.Y, Y: edge.X.Neg()})
		center := edgeBody.CenterAt(t)
		if geom.Dot(n, edgeStart.Sub(center)).Lt(sf32.Zero) {
			n = n.Neg()
		}
		p := pointBody.AbsoluteVertex(pointIdx, t)
		return geom.Dot(p, n).Sub(geom.Dot(edgeStart, n))
	}
}

// rescue handles the precondition violation of GJK reporting zero distance
// on entry: it pushes the lower-inv_mass polygon apart along the SAT MTV
// (anchoring infinite-mass bodies; translating A if both are infinite),
// then re-runs GJK on the separated pair for fresh witness features.
func rescue(bodyA, bodyB *geom.Body, t sf32.F, cfg *config) (bool, sf32.F, Feature, Feature, geom.Vec2) {
	var bufA, bufB [geom.MaxVertices]geom.Vec2
	polyA := bodyA.AbsoluteVertices(t, bufA[:])
	polyB := bodyB.AbsoluteVertices(t, bufB[:])

	satHit, mtv, overlap := SATIntersect(polyA, polyB)
	if !satHit {
		cfg.logger.Warn("ccd: discrete collision rescue found no SAT overlap")
		return false, sf32.Zero, Feature{}, Feature{}, geom.Vec2{}
	}
	cfg.logger.Warn("ccd: discrete collision", "overlap", overlap.Hardware())

	push := overlap.Mul(sf32.FromHardware(1.1))
	delta := mtv.Scale(push)

	var movedA, movedB []geom.Vec2
	moveA := chooseMover(bodyA, bodyB)
	if moveA {
		movedA = translatePoly(polyA, delta)
		movedB = polyB
	} else {
		movedA = polyA
		movedB = translatePoly(polyB, delta.Neg())
	}

	_, closestA, _, fa, fb := PolygonDistance(movedA, movedB)
	return true, t, fa, fb, closestA
}

// chooseMover decides which body's polygon the rescue path translates:
// the one with the lower inv_mass, except that an infinite-mass body
// (inv_mass 0) is anchored and the other body moves; if both are
// infinite, A moves. On equal finite inv_mass, B moves.
func chooseMover(bodyA, bodyB *geom.Body) bool {
	aInfinite := bodyA.InvMass.Eq(sf32.Zero)
	bInfinite := bodyB.InvMass.Eq(sf32.Zero)
	switch {
	case aInfinite && bInfinite:
		return true
	case aInfinite:
		return false
	case bInfinite:
		return true
	default:
		return bodyA.InvMass.Lt(bodyB.InvMass)
	}
}

func translatePoly(poly []geom.Vec2, delta geom.Vec2) []geom.Vec2 {
	out := make([]geom.Vec2, len(poly))
	for i, v := range poly {
		out[i] = v.Add(delta)
	}
	return out
}
