package ccd

import (
	"github.com/HunterWhyte/jumphysics/geom"
	"github.com/HunterWhyte/jumphysics/sf32"
)

// SATIntersect tests two convex polygons via the separating axis theorem
// and, on overlap, returns the minimum translation vector. For each edge of
// polyA then polyB it projects both polygons onto the edge-perpendicular
// axis and tracks the smallest overlap.
//
// mtv is oriented so that applying polyA.Translate(mtv.Scale(overlap))
// moves polyA away from polyB. Borderline contact within Tol is reported as
// a hit (asymmetric tolerance) so the TOI engine can conclude on touching
// bodies; an axis with overlap < -Tol exits early as separated.
func SATIntersect(polyA, polyB []geom.Vec2) (hit bool, mtv geom.Vec2, overlap sf32.F) {
	var minOverlap sf32.F
	var minAxis geom.Vec2
	found := false

	test := func(poly, other []geom.Vec2, polyIsA bool) bool {
		n := len(poly)
		for i := 0; i < n; i++ {
			edge := poly[(i+1)%n].Sub(poly[i])
			axis := geom.Normalize(geom.Vec2{X: edge.Y, Y: edge.X.Neg()})

			minA, maxA := projectPolygon(poly, axis)
			minB, maxB := projectPolygon(other, axis)

			o := sf32.Min(maxA, maxB).Sub(sf32.Max(minA, minB))

			// Containment fix-up: when one interval contains the other the
			// naive overlap understates the separation actually required.
			if (minA.Le(minB) && maxA.Ge(maxB)) || (minB.Le(minA) && maxB.Ge(maxA)) {
				diffMin := minA.Sub(minB).Abs()
				diffMax := maxA.Sub(maxB).Abs()
				o = o.Add(sf32.Min(diffMin, diffMax))
			}

			if o.Lt(Tol.Neg()) {
				return false
			}

			if !found || o.Lt(minOverlap) {
				found = true
				minOverlap = o
				// Orient the axis so +axis*overlap moves polyA away from B.
				// On the polyB pass, poly is polyB, so the roles swap.
				negate := maxB.Sub(minA).Gt(maxA.Sub(minB))
				if !polyIsA {
					negate = maxA.Sub(minB).Gt(maxB.Sub(minA))
				}
				if negate {
					minAxis = axis.Neg()
				} else {
					minAxis = axis
				}
			}
		}
		return true
	}

	if !test(polyA, polyB, true) {
		return false, geom.Vec2{}, sf32.Zero
	}
	if !test(polyB, polyA, false) {
		return false, geom.Vec2{}, sf32.Zero
	}

	return true, minAxis, minOverlap
}

// projectPolygon returns the [min, max] projection of poly's vertices onto
// axis (assumed normalized).
func projectPolygon(poly []geom.Vec2, axis geom.Vec2) (min, max sf32.F) {
	min = geom.Dot(poly[0], axis)
	max = min
	for i := 1; i < len(poly); i++ {
		p := geom.Dot(poly[i], axis)
		min = sf32.Min(min, p)
		max = sf32.Max(max, p)
	}
	return
}
