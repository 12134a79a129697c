package renderer

import (
	"testing"

	"github.com/df07/go-scene-raytracer/pkg/core"
	"github.com/df07/go-scene-raytracer/pkg/geometry"
	"github.com/df07/go-scene-raytracer/pkg/scene"
)

// newTestScene builds a scene with a camera at (0,0,5) looking at the origin
// with a 90 degree vertical field of view.
func newTestScene(t *testing.T, width, height int) *scene.Scene {
	t.Helper()
	camera, err := geometry.NewCamera(width, height,
		core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 90)
	if err != nil {
		t.Fatalf("NewCamera failed: %v", err)
	}
	return &scene.Scene{
		Cameras: []*geometry.Camera{camera},
		Width:   width,
		Height:  height,
	}
}

func newTestRaytracer(t *testing.T, s *scene.Scene, options Options) *Raytracer {
	t.Helper()
	rt, err := NewRaytracer(s, options)
	if err != nil {
		t.Fatalf("NewRaytracer failed: %v", err)
	}
	return rt
}
