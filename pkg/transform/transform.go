package transform

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-scene-raytracer/pkg/core"
)

// singularThreshold is the smallest determinant, relative to the cube of the
// largest linear entry, for which a matrix still counts as invertible.
const singularThreshold = 1e-12

// GeometricTransform connects a primitive's object space to world space.
// It is built once from a local-to-world matrix and never mutated.
type GeometricTransform struct {
	toWorld      mgl64.Mat4
	toObject     mgl64.Mat4
	normalMatrix mgl64.Mat3 // upper 3x3 of transpose(toObject)
}

// New builds a transform from a local-to-world matrix. It fails when the
// matrix has no inverse. The determinant is compared against the magnitude of
// the matrix, so uniformly tiny or huge scales are accepted.
func New(toWorld mgl64.Mat4) (*GeometricTransform, error) {
	det := toWorld.Det()
	scale := maxLinearEntry(toWorld)
	if math.IsNaN(det) || math.IsNaN(scale) || scale == 0 || math.IsInf(scale, 0) ||
		math.Abs(det) < singularThreshold*scale*scale*scale {
		return nil, core.NewConfigError(core.SingularTransform, "determinant %g", det)
	}

	toObject := toWorld.Inv()
	for _, e := range toObject {
		if math.IsNaN(e) || math.IsInf(e, 0) {
			return nil, core.NewConfigError(core.SingularTransform, "inverse is not finite")
		}
	}
	return &GeometricTransform{
		toWorld:      toWorld,
		toObject:     toObject,
		normalMatrix: toObject.Transpose().Mat3(),
	}, nil
}

// maxLinearEntry returns the largest magnitude in the upper 3x3 of m
func maxLinearEntry(m mgl64.Mat4) float64 {
	largest := 0.0
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			if e := math.Abs(m.At(row, col)); e > largest || math.IsNaN(e) {
				largest = e
			}
		}
	}
	return largest
}

// Identity returns the identity transform
func Identity() *GeometricTransform {
	return &GeometricTransform{
		toWorld:      mgl64.Ident4(),
		toObject:     mgl64.Ident4(),
		normalMatrix: mgl64.Ident3(),
	}
}

// ToWorld returns the local-to-world matrix
func (g *GeometricTransform) ToWorld() mgl64.Mat4 { return g.toWorld }

// ToObject returns the world-to-local matrix
func (g *GeometricTransform) ToObject() mgl64.Mat4 { return g.toObject }

// NormalMatrix returns the matrix used to carry object-space normals into world space
func (g *GeometricTransform) NormalMatrix() mgl64.Mat3 { return g.normalMatrix }

// PointToWorld maps an object-space point (w = 1) to world space
func (g *GeometricTransform) PointToWorld(p core.Vec3) core.Vec3 {
	return FromVec4(g.toWorld.Mul4x1(Point(p)))
}

// PointToObject maps a world-space point (w = 1) to object space
func (g *GeometricTransform) PointToObject(p core.Vec3) core.Vec3 {
	return FromVec4(g.toObject.Mul4x1(Point(p)))
}

// VectorToObject maps a world-space direction (w = 0) to object space.
// The result is not normalized.
func (g *GeometricTransform) VectorToObject(v core.Vec3) core.Vec3 {
	return FromVec4(g.toObject.Mul4x1(Vector(v)))
}

// NormalToWorld maps an object-space normal to a unit world-space normal
func (g *GeometricTransform) NormalToWorld(n core.Vec3) core.Vec3 {
	m := g.normalMatrix.Mul3x1(mgl64.Vec3{n.X, n.Y, n.Z})
	return core.NewVec3(m[0], m[1], m[2]).Normalize()
}

// Point lifts a 3D point to homogeneous coordinates
func Point(p core.Vec3) mgl64.Vec4 {
	return mgl64.Vec4{p.X, p.Y, p.Z, 1}
}

// Vector lifts a 3D direction to homogeneous coordinates
func Vector(v core.Vec3) mgl64.Vec4 {
	return mgl64.Vec4{v.X, v.Y, v.Z, 0}
}

// FromVec4 drops the homogeneous coordinate. Affine transforms keep w at
// 0 or 1 so no perspective divide is needed.
func FromVec4(v mgl64.Vec4) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}
