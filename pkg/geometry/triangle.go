package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-scene-raytracer/pkg/core"
	"github.com/df07/go-scene-raytracer/pkg/transform"
)

// TriangleColor is the flat color reported for every triangle hit
var TriangleColor = core.Blue

// parallelEpsilon bounds |n·d| below which a ray counts as parallel to the plane
const parallelEpsilon = 1e-12

// Triangle represents a single triangle. Its homogeneous object-space
// vertices are carried to world space once at construction and
// intersection happens in world space.
type Triangle struct {
	A, B, C   mgl64.Vec4 // Object-space vertices (w = 1)
	transform *transform.GeometricTransform

	// Cached world-space data
	a, b, c core.Vec3
	edge1   core.Vec3
	edge2   core.Vec3
	normal  core.Vec3
}

// NewTriangle creates a triangle from three object-space vertices. A nil
// transform means identity.
func NewTriangle(a, b, c core.Vec3, xf *transform.GeometricTransform) *Triangle {
	if xf == nil {
		xf = transform.Identity()
	}
	t := &Triangle{
		A:         transform.Point(a),
		B:         transform.Point(b),
		C:         transform.Point(c),
		transform: xf,
	}

	toWorld := xf.ToWorld()
	t.a = transform.FromVec4(toWorld.Mul4x1(t.A))
	t.b = transform.FromVec4(toWorld.Mul4x1(t.B))
	t.c = transform.FromVec4(toWorld.Mul4x1(t.C))
	t.edge1 = t.b.Subtract(t.a)
	t.edge2 = t.c.Subtract(t.a)
	t.normal = t.edge1.Cross(t.edge2).Normalize()

	return t
}

// Transform returns the triangle's object/world transform
func (t *Triangle) Transform() *transform.GeometricTransform {
	return t.transform
}

// WorldVertices returns the cached world-space vertices
func (t *Triangle) WorldVertices() (a, b, c core.Vec3) {
	return t.a, t.b, t.c
}

// BoundingBox returns the world-space box around the triangle's vertices
func (t *Triangle) BoundingBox() core.AABB {
	return core.NewAABBFromPoints(t.a, t.b, t.c)
}

// Normal returns the world-space unit normal (zero for a degenerate triangle)
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}

// Barycentric solves q = a + β·e1 + γ·e2 for a point q assumed to lie in
// the triangle's plane. ok is false for a zero-area triangle.
func (t *Triangle) Barycentric(q core.Vec3) (beta, gamma float64, ok bool) {
	aq := q.Subtract(t.a)

	d00 := t.edge1.Dot(t.edge1)
	d01 := t.edge1.Dot(t.edge2)
	d11 := t.edge2.Dot(t.edge2)
	d20 := aq.Dot(t.edge1)
	d21 := aq.Dot(t.edge2)

	det := d00*d11 - d01*d01
	if det == 0 || math.IsNaN(det) {
		return 0, 0, false
	}

	beta = (d11*d20 - d01*d21) / det
	gamma = (d00*d21 - d01*d20) / det
	return beta, gamma, true
}

// Hit intersects the ray with the triangle's plane and accepts the hit when
// the barycentric coordinates fall inside the triangle and t lies in
// [tMin, ray.TMax].
func (t *Triangle) Hit(ray core.Ray, tMin float64) (HitRecord, bool) {
	denom := t.normal.Dot(ray.Direction)
	if math.Abs(denom) < parallelEpsilon || math.IsNaN(denom) {
		return HitRecord{}, false
	}

	tParam := t.normal.Dot(t.a.Subtract(ray.Origin)) / denom
	if tParam < tMin || tParam > ray.TMax {
		return HitRecord{}, false
	}

	q := ray.At(tParam)
	beta, gamma, ok := t.Barycentric(q)
	if !ok || beta < 0 || gamma < 0 || beta+gamma > 1 {
		return HitRecord{}, false
	}

	rec := HitRecord{
		T:      tParam,
		Point:  q,
		Normal: t.normal,
		Color:  TriangleColor,
	}
	if !rec.valid() {
		return HitRecord{}, false
	}
	return rec, true
}
