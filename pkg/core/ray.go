package core

// DefaultTMax is the far bound given to primary rays; it stands in for "no far clip".
const DefaultTMax = 10000.0

// Epsilon is the near bound used to keep a ray from hitting the surface it starts on.
const Epsilon = 1e-6

// Ray represents a ray with an origin, a unit direction and a far bound
type Ray struct {
	Origin    Vec3
	Direction Vec3
	TMax      float64
}

// NewRay creates a new ray. The direction is expected to be normalized by the caller.
func NewRay(origin, direction Vec3, tMax float64) Ray {
	return Ray{Origin: origin, Direction: direction, TMax: tMax}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
