package ccd

import (
	"github.com/HunterWhyte/jumphysics/geom"
	"github.com/HunterWhyte/jumphysics/sf32"
)

// SegmentIntersect tests segments a0->a1 and b0->b1 for intersection via
// Cramer's rule on the 2x2 system. It reports no hit when the segments are
// parallel/colinear (det == 0) or when either parameter falls outside
// [0, 1]. ta, tb are the normalised parameters along each segment;
// intersection = a0 + ta*(a1-a0).
func SegmentIntersect(a0, a1, b0, b1 geom.Vec2) (hit bool, intersection geom.Vec2, ta, tb sf32.F) {
	r := a1.Sub(a0)
	s := b1.Sub(b0)

	det := geom.Cross(r, s)
	if det.Eq(sf32.Zero) {
		return false, geom.Vec2{}, sf32.Zero, sf32.Zero
	}

	diff := b0.Sub(a0)
	ta = geom.Cross(diff, s).Div(det)
	tb = geom.Cross(diff, r).Div(det)

	if ta.Lt(sf32.Zero) || ta.Gt(sf32.One) || tb.Lt(sf32.Zero) || tb.Gt(sf32.One) {
		return false, geom.Vec2{}, ta, tb
	}

	return true, a0.Add(r.Scale(ta)), ta, tb
}
