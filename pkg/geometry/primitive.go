package geometry

import "github.com/df07/go-scene-raytracer/pkg/core"

// Kind tags the concrete shape held by a Primitive
type Kind uint8

const (
	KindTriangle Kind = iota
	KindSphere
)

func (k Kind) String() string {
	switch k {
	case KindTriangle:
		return "triangle"
	case KindSphere:
		return "sphere"
	}
	return "unknown"
}

// Primitive is a closed variant over the shapes the tracer knows about.
// Exactly one of the shape pointers is set, selected by kind.
type Primitive struct {
	kind     Kind
	sphere   *Sphere
	triangle *Triangle
}

// SpherePrimitive wraps a sphere
func SpherePrimitive(s *Sphere) Primitive {
	return Primitive{kind: KindSphere, sphere: s}
}

// TrianglePrimitive wraps a triangle
func TrianglePrimitive(t *Triangle) Primitive {
	return Primitive{kind: KindTriangle, triangle: t}
}

// Kind returns which shape this primitive holds
func (p Primitive) Kind() Kind { return p.kind }

// Sphere returns the wrapped sphere, or nil
func (p Primitive) Sphere() *Sphere { return p.sphere }

// Triangle returns the wrapped triangle, or nil
func (p Primitive) Triangle() *Triangle { return p.triangle }

// BoundingBox returns the world-space bounds of the wrapped shape
func (p Primitive) BoundingBox() core.AABB {
	switch p.kind {
	case KindSphere:
		if p.sphere != nil {
			return p.sphere.BoundingBox()
		}
	case KindTriangle:
		if p.triangle != nil {
			return p.triangle.BoundingBox()
		}
	}
	return core.EmptyAABB()
}

// Hit dispatches to the wrapped shape
func (p Primitive) Hit(ray core.Ray, tMin float64) (HitRecord, bool) {
	switch p.kind {
	case KindSphere:
		if p.sphere != nil {
			return p.sphere.Hit(ray, tMin)
		}
	case KindTriangle:
		if p.triangle != nil {
			return p.triangle.Hit(ray, tMin)
		}
	}
	return HitRecord{}, false
}
