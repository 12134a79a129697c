package geometry

import (
	"math"

	"github.com/df07/go-scene-raytracer/pkg/core"
	"github.com/df07/go-scene-raytracer/pkg/transform"
)

// SphereColor is the flat color reported for every sphere hit
var SphereColor = core.Red

// Sphere represents a sphere defined in object space and placed in the
// world by its transform
type Sphere struct {
	Center    core.Vec3
	Radius    float64
	transform *transform.GeometricTransform
}

// NewSphere creates a new sphere. A nil transform means identity.
func NewSphere(center core.Vec3, radius float64, xf *transform.GeometricTransform) *Sphere {
	if xf == nil {
		xf = transform.Identity()
	}
	return &Sphere{
		Center:    center,
		Radius:    radius,
		transform: xf,
	}
}

// BoundingBox returns a world-space box enclosing the sphere. Under a
// rotation the box is conservative.
func (s *Sphere) BoundingBox() core.AABB {
	r := core.NewVec3(s.Radius, s.Radius, s.Radius)
	object := core.NewAABBFromPoints(s.Center.Subtract(r), s.Center.Add(r))

	corners := object.Corners()
	for i, c := range corners {
		corners[i] = s.transform.PointToWorld(c)
	}
	return core.NewAABBFromPoints(corners[:]...)
}

// Transform returns the sphere's object/world transform
func (s *Sphere) Transform() *transform.GeometricTransform {
	return s.transform
}

// Hit intersects a world-space ray with the sphere. The ray is carried into
// object space, the quadratic is solved there, and the result is carried
// back. The reported T is the world-space distance from the ray origin, so
// it stays comparable with other primitives under non-rigid transforms.
func (s *Sphere) Hit(ray core.Ray, tMin float64) (HitRecord, bool) {
	origin := s.transform.PointToObject(ray.Origin)
	direction := s.transform.VectorToObject(ray.Direction).Normalize()

	// Vector from sphere center to ray origin
	oc := origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := direction.Dot(direction)
	if a == 0 {
		return HitRecord{}, false
	}
	b := 2 * direction.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 || math.IsNaN(discriminant) {
		return HitRecord{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Nearest forward root; roots behind the origin are rejected
	root := (-b - sqrtD) / (2 * a)
	if root <= 0 {
		root = (-b + sqrtD) / (2 * a)
		if root <= 0 {
			return HitRecord{}, false
		}
	}

	objectPoint := origin.Add(direction.Multiply(root))
	worldPoint := s.transform.PointToWorld(objectPoint)
	worldNormal := s.transform.NormalToWorld(objectPoint.Subtract(s.Center).Normalize())

	rec := HitRecord{
		T:      worldPoint.Subtract(ray.Origin).Length(),
		Point:  worldPoint,
		Normal: worldNormal,
		Color:  SphereColor,
	}
	if !rec.valid() || rec.T < tMin || rec.T > ray.TMax {
		return HitRecord{}, false
	}
	return rec, true
}
