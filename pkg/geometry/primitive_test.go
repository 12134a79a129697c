package geometry

import (
	"testing"

	"github.com/df07/go-scene-raytracer/pkg/core"
)

func TestPrimitive_Dispatch(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1, nil)
	triangle := NewTriangle(core.NewVec3(-1, -1, -2), core.NewVec3(1, -1, -2), core.NewVec3(0, 1, -2), nil)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), core.DefaultTMax)

	tests := []struct {
		name      string
		primitive Primitive
		kind      Kind
		expectedT float64
		color     core.Color
	}{
		{"sphere", SpherePrimitive(sphere), KindSphere, 4, SphereColor},
		{"triangle", TrianglePrimitive(triangle), KindTriangle, 2, TriangleColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.primitive.Kind() != tt.kind {
				t.Errorf("Expected kind %v, got %v", tt.kind, tt.primitive.Kind())
			}
			hit, ok := tt.primitive.Hit(ray, core.Epsilon)
			if !ok {
				t.Fatal("Expected hit")
			}
			if hit.T < tt.expectedT-1e-9 || hit.T > tt.expectedT+1e-9 {
				t.Errorf("Expected t=%f, got %f", tt.expectedT, hit.T)
			}
			if hit.Color != tt.color {
				t.Errorf("Expected color %v, got %v", tt.color, hit.Color)
			}
		})
	}
}

func TestPrimitive_ZeroValue(t *testing.T) {
	var p Primitive
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), core.DefaultTMax)
	if _, ok := p.Hit(ray, core.Epsilon); ok {
		t.Error("Zero-value primitive should never report a hit")
	}
}

func TestKind_String(t *testing.T) {
	if KindSphere.String() != "sphere" || KindTriangle.String() != "triangle" {
		t.Errorf("Unexpected kind names %q %q", KindSphere, KindTriangle)
	}
}
