package ccd

import (
	"github.com/HunterWhyte/jumphysics/geom"
	"github.com/HunterWhyte/jumphysics/sf32"
)

// simplexVertex is one vertex of the Minkowski-difference simplex GJK
// builds, carrying both source polygons' support indices so witness
// features can be recovered once the simplex is reduced.
type simplexVertex struct {
	pointA geom.Vec2
	indexA int
	pointB geom.Vec2
	indexB int
	point  geom.Vec2 // pointB - pointA, the Minkowski-difference point
	bCoord sf32.F     // unnormalised barycentric weight; true weight is bCoord/divisor
}

// supportPoint returns the polygon vertex (and its index) maximising
// dot(v, dir).
func supportPoint(poly []geom.Vec2, dir geom.Vec2) (geom.Vec2, int) {
	bestIdx := 0
	best := geom.Dot(poly[0], dir)
	for i := 1; i < len(poly); i++ {
		d := geom.Dot(poly[i], dir)
		if d.Gt(best) {
			best = d
			bestIdx = i
		}
	}
	return poly[bestIdx], bestIdx
}

// solveSimplex2 reduces a 2-vertex simplex using the standard unnormalised
// barycentric rule: u = dot(origin-B, A-B), v = dot(origin-A, B-A). v<=0
// keeps A, u<=0 keeps B, otherwise both vertices survive with unnormalised
// weights (u, v) and a shared divisor |B-A|^2.
func solveSimplex2(s *[3]simplexVertex) (newSize int, divisor sf32.F) {
	A, B := s[0].point, s[1].point
	var origin geom.Vec2
	u := geom.Dot(origin.Sub(B), A.Sub(B))
	v := geom.Dot(origin.Sub(A), B.Sub(A))
	switch {
	case v.Le(sf32.Zero):
		return 1, sf32.One
	case u.Le(sf32.Zero):
		s[0] = s[1]
		return 1, sf32.One
	default:
		s[0].bCoord = u
		s[1].bCoord = v
		return 2, geom.DistanceSquared(B, A)
	}
}

// solveSimplex3 reduces a 3-vertex simplex to whichever vertex, edge, or
// (on overlap) the full triangle is closest to the origin, following the
// classic unnormalised-barycentric closest-point-on-triangle construction:
// each region test combines a signed-area-like cross term with the
// edge-projection terms d1..d6.
func solveSimplex3(s *[3]simplexVertex) (newSize int, divisor sf32.F) {
	A, B, C := s[0].point, s[1].point, s[2].point
	ab := B.Sub(A)
	ac := C.Sub(A)
	ap := A.Neg()
	d1 := geom.Dot(ab, ap)
	d2 := geom.Dot(ac, ap)
	if d1.Le(sf32.Zero) && d2.Le(sf32.Zero) {
		return 1, sf32.One // vertex region A
	}

	bp := B.Neg()
	d3 := geom.Dot(ab, bp)
	d4 := geom.Dot(ac, bp)
	if d3.Ge(sf32.Zero) && d4.Le(d3) {
		s[0] = s[1]
		return 1, sf32.One // vertex region B
	}

	vc := d1.Mul(d4).Sub(d3.Mul(d2))
	if vc.Le(sf32.Zero) && d1.Ge(sf32.Zero) && d3.Le(sf32.Zero) {
		s[0].bCoord = d3.Neg()
		s[1].bCoord = d1
		return 2, d1.Sub(d3) // edge AB
	}

	cp := C.Neg()
	d5 := geom.Dot(ab, cp)
	d6 := geom.Dot(ac, cp)
	if d6.Ge(sf32.Zero) && d5.Le(d6) {
		s[0] = s[2]
		return 1, sf32.One // vertex region C
	}

	vb := d5.Mul(d2).Sub(d1.Mul(d6))
	if vb.Le(sf32.Zero) && d2.Ge(sf32.Zero) && d6.Le(sf32.Zero) {
		s[0].bCoord = d6.Neg()
		s[1] = s[2]
		s[1].bCoord = d2
		return 2, d2.Sub(d6) // edge AC
	}

	va := d3.Mul(d6).Sub(d5.Mul(d4))
	if va.Le(sf32.Zero) && d4.Sub(d3).Ge(sf32.Zero) && d5.Sub(d6).Ge(sf32.Zero) {
		s[0] = s[1]
		s[0].bCoord = d5.Sub(d6)
		s[1] = s[2]
		s[1].bCoord = d4.Sub(d3)
		return 2, d4.Sub(d3).Add(d5.Sub(d6)) // edge BC
	}

	// Interior: the origin's projection lies inside the triangle, so A and
	// B overlap.
	s[0].bCoord = va
	s[1].bCoord = vb
	s[2].bCoord = vc
	return 3, va.Add(vb).Add(vc)
}

// gjkSearchDirection returns the direction to search for a new Minkowski
// support point given the current (already-reduced) simplex.
func gjkSearchDirection(simplex [3]simplexVertex, size int) geom.Vec2 {
	if size == 1 {
		return simplex[0].point.Neg()
	}
	A, B := simplex[0].point, simplex[1].point
	edge := B.Sub(A)
	towardOrigin := A.Neg()
	if geom.Cross(edge, towardOrigin).Gt(sf32.Zero) {
		return geom.CrossSV(sf32.One, edge)
	}
	return geom.CrossVS(edge, sf32.One)
}

// PolygonDistance runs GJK between two convex polygons, returning the
// closest-point distance (0 on overlap), the closest points on each, and a
// witness Feature (vertex or edge) on each polygon.
func PolygonDistance(polyA, polyB []geom.Vec2) (dist sf32.F, closestA, closestB geom.Vec2, featureA, featureB Feature) {
	var simplex [3]simplexVertex
	simplex[0] = simplexVertex{
		pointA: polyA[0], indexA: 0,
		pointB: polyB[0], indexB: 0,
		point: polyB[0].Sub(polyA[0]),
	}
	size := 1

	for iter := 0; iter < MaxGJKIters; iter++ {
		var prevA, prevB [3]int
		prevSize := size
		for i := 0; i < size; i++ {
			prevA[i] = simplex[i].indexA
			prevB[i] = simplex[i].indexB
		}

		var divisor sf32.F
		switch size {
		case 2:
			size, divisor = solveSimplex2(&simplex)
		case 3:
			size, divisor = solveSimplex3(&simplex)
		default:
			divisor = sf32.One
		}

		if size == 3 {
			var closest geom.Vec2
			for i := 0; i < 3; i++ {
				w := simplex[i].bCoord.Div(divisor)
				closest = closest.Add(simplex[i].pointA.Scale(w))
			}
			return sf32.Zero, closest, closest,
				Feature{Index1: simplex[0].indexA}, Feature{Index1: simplex[0].indexB}
		}

		d := gjkSearchDirection(simplex, size)
		if geom.Dot(d, d).Eq(sf32.Zero) {
			break
		}

		newA, idxA := supportPoint(polyA, d.Neg())
		newB, idxB := supportPoint(polyB, d)

		duplicate := false
		for i := 0; i < prevSize; i++ {
			if prevA[i] == idxA && prevB[i] == idxB {
				duplicate = true
				break
			}
		}
		if duplicate {
			break
		}

		simplex[size] = simplexVertex{
			pointA: newA, indexA: idxA,
			pointB: newB, indexB: idxB,
			point: newB.Sub(newA),
		}
		size++
		_ = divisor
	}

	return reconstructDistance(simplex, size)
}

// reconstructDistance normalises the final simplex's barycentric weights to
// rebuild the closest points and extracts the witness features.
func reconstructDistance(simplex [3]simplexVertex, size int) (dist sf32.F, closestA, closestB geom.Vec2, featureA, featureB Feature) {
	if size == 1 {
		closestA = simplex[0].pointA
		closestB = simplex[0].pointB
	} else {
		divisor := simplex[0].bCoord.Add(simplex[1].bCoord)
		for i := 0; i < size; i++ {
			w := simplex[i].bCoord.Div(divisor)
			closestA = closestA.Add(simplex[i].pointA.Scale(w))
			closestB = closestB.Add(simplex[i].pointB.Scale(w))
		}
	}
	dist = geom.Distance(closestA, closestB)
	featureA, featureB = extractFeatures(simplex, size)
	return
}

// extractFeatures maps a reduced (size 1 or 2) simplex onto witness
// features per spec.md section 4.5: a size-1 simplex gives vertex-type
// witnesses on both polygons; a size-2 simplex gives an edge witness on
// whichever polygon contributed two distinct support vertices, or resolves
// the parallel-edge-aligned case (both polygons contributed two distinct
// vertices) via the containment-projection rule.
func extractFeatures(simplex [3]simplexVertex, size int) (featureA, featureB Feature) {
	if size == 1 {
		return Feature{Index1: simplex[0].indexA}, Feature{Index1: simplex[0].indexB}
	}

	if simplex[0].indexB == simplex[1].indexB {
		return Feature{Index1: simplex[0].indexA, Index2: simplex[1].indexA, Edge: true},
			Feature{Index1: simplex[0].indexB}
	}
	if simplex[0].indexA == simplex[1].indexA {
		return Feature{Index1: simplex[0].indexA},
			Feature{Index1: simplex[0].indexB, Index2: simplex[1].indexB, Edge: true}
	}

	A0, A1 := simplex[0].pointA, simplex[1].pointA
	dir := geom.Normalize(A1.Sub(A0))
	projA0, projA1 := geom.Dot(A0, dir), geom.Dot(A1, dir)
	aMin, aMax := sf32.Min(projA0, projA1), sf32.Max(projA0, projA1)

	B0, B1 := simplex[0].pointB, simplex[1].pointB
	projB0, projB1 := geom.Dot(B0, dir), geom.Dot(B1, dir)
	bMin, bMax := sf32.Min(projB0, projB1), sf32.Max(projB0, projB1)

	if aMin.Le(bMin) && aMax.Ge(bMax) {
		// A's interval brackets B's: B is the vertex witness, A the edge.
		return Feature{Index1: simplex[0].indexA, Index2: simplex[1].indexA, Edge: true},
			Feature{Index1: simplex[0].indexB}
	}

	aVertexIdx := simplex[1].indexA
	if projA0.Ge(bMin) && projA0.Le(bMax) {
		aVertexIdx = simplex[0].indexA
	}
	return Feature{Index1: aVertexIdx},
		Feature{Index1: simplex[0].indexB, Index2: simplex[1].indexB, Edge: true}
}
