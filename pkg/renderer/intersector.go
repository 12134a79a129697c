package renderer

import (
	"github.com/df07/go-scene-raytracer/pkg/core"
	"github.com/df07/go-scene-raytracer/pkg/geometry"
	"github.com/df07/go-scene-raytracer/pkg/scene"
)

// Intersector resolves the nearest hit by scanning every primitive of a
// scene. The primitive list is fixed at construction and only read
// afterwards, so one Intersector can serve any number of goroutines.
type Intersector struct {
	primitives []geometry.Primitive
	tMin       float64
}

// NewIntersector collects the scene's primitives (triangles, then spheres)
func NewIntersector(s *scene.Scene) *Intersector {
	return &Intersector{
		primitives: s.Primitives(),
		tMin:       core.Epsilon,
	}
}

// NearestHit returns the hit with the smallest positive t. On exactly equal
// t the primitive seen first keeps the hit.
func (in *Intersector) NearestHit(ray core.Ray) (geometry.HitRecord, bool) {
	var closest geometry.HitRecord
	hitAnything := false

	for _, primitive := range in.primitives {
		hit, isHit := primitive.Hit(ray, in.tMin)
		if !isHit || hit.T <= 0 {
			continue
		}
		if !hitAnything || hit.T < closest.T {
			closest = hit
			hitAnything = true
			ray.TMax = hit.T
		}
	}

	return closest, hitAnything
}

// NearestHit resolves a single ray against a scene
func NearestHit(ray core.Ray, s *scene.Scene) (geometry.HitRecord, bool) {
	return NewIntersector(s).NearestHit(ray)
}
