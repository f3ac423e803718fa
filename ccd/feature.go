// Package ccd implements the narrow-phase continuous collision detection
// kernel: SAT intersection, GJK distance with witness features, and the
// bilateral-advancement time-of-impact loop, all over package geom's
// software-float vectors. The package never performs hardware IEEE
// arithmetic; every scalar that flows through it is an sf32.F.
package ccd

import "github.com/HunterWhyte/jumphysics/sf32"

// Tol is the separation/overlap tolerance, in distance units, used
// throughout SAT, GJK termination, and TOI root-finding.
var Tol = sf32.FromHardware(0.01)

// MaxGJKIters bounds the GJK simplex-reduction outer loop.
const MaxGJKIters = 20

// MaxTOIIters bounds the bilateral-advancement outer loop.
const MaxTOIIters = 20

// MaxBisectIters bounds the bisection root-finder inside one TOI step.
const MaxBisectIters = 20

// Feature identifies a witness vertex or edge on a polygon. If Edge is
// false, Index1 is a vertex index. If Edge is true, Index1 and Index2 bound
// an edge (Vertices[Index1] -> Vertices[Index2]).
type Feature struct {
	Index1, Index2 int
	Edge           bool
}
