// Command simpleScene is a minimal demonstration of the CCD core: it builds
// two moving squares with github.com/go-gl/mathgl/mgl64 in ordinary
// hardware float64 (the natural unit for a caller assembling a scene),
// using mgl64's 2D rotation matrix to orient one square's local shape, then
// converts the result to sf32-backed geom.Body values only at this boundary
// before running the deterministic ContinuousCollision query.
package main

import (
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/HunterWhyte/jumphysics/ccd"
	"github.com/HunterWhyte/jumphysics/geom"
	"github.com/HunterWhyte/jumphysics/sf32"
	"github.com/go-gl/mathgl/mgl64"
)

// toSF converts a caller-side hardware vector to the kernel's sf32-backed
// Vec2. This is the only place in the demo that touches sf32 conversion:
// everywhere else mgl64 is used naturally.
func toSF(v mgl64.Vec2) geom.Vec2 {
	return geom.Vec2{
		X: sf32.FromHardware(float32(v.X())),
		Y: sf32.FromHardware(float32(v.Y())),
	}
}

// square builds a body whose local vertices are a halfSide square rotated
// by angleRad (via mgl64's 2D rotation matrix) and centered at the origin;
// Body.Center/Vel carry the world-space pose and motion.
func square(center, vel mgl64.Vec2, halfSide, angleRad float64) *geom.Body {
	b := &geom.Body{
		Center:      toSF(center),
		Vel:         toSF(vel),
		NumVertices: 4,
	}
	local := [4]mgl64.Vec2{
		{-halfSide, -halfSide},
		{halfSide, -halfSide},
		{halfSide, halfSide},
		{-halfSide, halfSide},
	}
	rot := mgl64.Rotate2D(angleRad)
	for i, v := range local {
		b.Vertices[i] = toSF(rot.Mul2x1(v))
	}
	return b
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	a := square(mgl64.Vec2{0, 0}, mgl64.Vec2{1, 0}, 1, 0)
	b := square(mgl64.Vec2{10, 0}, mgl64.Vec2{0, 0}, 1, math.Pi/4)

	hit, tImpact, featureA, featureB, impact := ccd.ContinuousCollision(
		a, b, sf32.Zero, ccd.WithLogger(logger),
	)

	if !hit {
		fmt.Println("no collision in [0, 1]")
		return
	}

	fmt.Printf("hit at t=%v\n", tImpact.Hardware())
	fmt.Printf("feature A: %+v\n", featureA)
	fmt.Printf("feature B: %+v\n", featureB)
	fmt.Printf("impact point: (%v, %v)\n", impact.X.Hardware(), impact.Y.Hardware())
}
