package geometry

import (
	"math"

	"github.com/df07/go-scene-raytracer/pkg/core"
)

// HitRecord contains information about a ray-object intersection.
// All fields are in world space.
type HitRecord struct {
	T      float64    // Distance from the ray origin to Point
	Point  core.Vec3  // Point of intersection
	Normal core.Vec3  // Unit surface normal at intersection
	Color  core.Color // Flat color of the primitive that was hit
}

// valid rejects records poisoned by NaN or infinite arithmetic
func (h HitRecord) valid() bool {
	return h.T > 0 && !math.IsInf(h.T, 0) && h.Point.IsFinite() && h.Normal.IsFinite()
}
