package scene

import (
	"github.com/df07/go-scene-raytracer/pkg/core"
	"github.com/df07/go-scene-raytracer/pkg/geometry"
	"github.com/df07/go-scene-raytracer/pkg/transform"
)

// NewDemoScene builds a small scene with a floor made of two triangles, a
// sphere resting on it and an ellipsoid made by scaling a unit sphere.
func NewDemoScene(width, height int) (*Scene, error) {
	camera, err := geometry.NewCamera(
		width, height,
		core.NewVec3(0, 1.5, 6), // look from
		core.NewVec3(0, 0.5, 0), // look at
		core.NewVec3(0, 1, 0),   // up
		40,
	)
	if err != nil {
		return nil, err
	}

	s := &Scene{
		Cameras:  []*geometry.Camera{camera},
		Width:    width,
		Height:   height,
		MaxDepth: 5,
	}

	// Floor quad as two triangles
	floor := []core.Vec3{
		core.NewVec3(-4, 0, -4),
		core.NewVec3(4, 0, -4),
		core.NewVec3(4, 0, 4),
		core.NewVec3(-4, 0, 4),
	}
	s.Triangles = append(s.Triangles,
		geometry.NewTriangle(floor[0], floor[2], floor[1], nil),
		geometry.NewTriangle(floor[0], floor[3], floor[2], nil),
	)

	// Sphere resting on the floor
	s.Spheres = append(s.Spheres, geometry.NewSphere(core.NewVec3(-1, 0.75, 0), 0.75, nil))

	// Ellipsoid: unit sphere scaled and moved into place
	ellipsoid, err := transform.New(transform.Translate(1.5, 0.5, 0.5).Mul4(transform.Scale(0.9, 0.5, 0.5)))
	if err != nil {
		return nil, err
	}
	s.Spheres = append(s.Spheres, geometry.NewSphere(core.NewVec3(0, 0, 0), 1, ellipsoid))

	return s, nil
}
