package scene

import (
	"github.com/df07/go-scene-raytracer/pkg/core"
	"github.com/df07/go-scene-raytracer/pkg/geometry"
)

// Scene contains all the elements needed for rendering. It is built once by
// a loader and treated as read-only while a render is in progress.
type Scene struct {
	Cameras   []*geometry.Camera
	Spheres   []*geometry.Sphere
	Triangles []*geometry.Triangle

	// Output settings
	Width    int
	Height   int
	MaxDepth int    // Accepted from scene files; only primary rays are traced
	Output   string // Requested output path, may be empty
}

// Validate reports configuration errors that must stop a render before it starts
func (s *Scene) Validate() error {
	if len(s.Cameras) == 0 {
		return core.NewConfigError(core.NoCamera, "")
	}
	if s.Width <= 0 || s.Height <= 0 {
		return core.NewConfigError(core.InvalidDimensions, "scene size %dx%d", s.Width, s.Height)
	}
	return nil
}

// Camera returns the camera used for rendering (the first one declared)
func (s *Scene) Camera() (*geometry.Camera, error) {
	if len(s.Cameras) == 0 {
		return nil, core.NewConfigError(core.NoCamera, "")
	}
	return s.Cameras[0], nil
}

// Primitives returns every primitive in a fixed order: triangles first, then
// spheres, each in declaration order.
func (s *Scene) Primitives() []geometry.Primitive {
	primitives := make([]geometry.Primitive, 0, len(s.Triangles)+len(s.Spheres))
	for _, t := range s.Triangles {
		primitives = append(primitives, geometry.TrianglePrimitive(t))
	}
	for _, sp := range s.Spheres {
		primitives = append(primitives, geometry.SpherePrimitive(sp))
	}
	return primitives
}

// Bounds returns the world-space box around every primitive
func (s *Scene) Bounds() core.AABB {
	bounds := core.EmptyAABB()
	for _, p := range s.Primitives() {
		bounds = bounds.Union(p.BoundingBox())
	}
	return bounds
}
