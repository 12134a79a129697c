package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-scene-raytracer/pkg/core"
	"github.com/df07/go-scene-raytracer/pkg/transform"
)

func mustTransform(xf *transform.GeometricTransform, err error) *transform.GeometricTransform {
	if err != nil {
		panic(err)
	}
	return xf
}

func TestSphere_Hit_AlongAxis(t *testing.T) {
	sphere := NewSphere(core.NewVec3(20, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), 10000)

	hit, isHit := sphere.Hit(ray, 0)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.T-19) > 1e-9 {
		t.Errorf("Expected t=19, got t=%f", hit.T)
	}
	if !hit.Point.ApproxEqual(core.NewVec3(19, 0, 0), 1e-9) {
		t.Errorf("Expected point (19,0,0), got %v", hit.Point)
	}
	if !hit.Normal.ApproxEqual(core.NewVec3(-1, 0, 0), 1e-9) {
		t.Errorf("Expected normal (-1,0,0), got %v", hit.Normal)
	}
	if hit.Color != SphereColor {
		t.Errorf("Expected sphere color %v, got %v", SphereColor, hit.Color)
	}
}

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(100, 100, 100), 1.0, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), 100000)

	hit, isHit := sphere.Hit(ray, 0)
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_Roots(t *testing.T) {
	tests := []struct {
		name         string
		rayOrigin    core.Vec3
		rayDirection core.Vec3
		tMax         float64
		shouldHit    bool
		expectedT    float64
	}{
		{
			name:         "origin inside uses far root",
			rayOrigin:    core.NewVec3(0, 0, 0),
			rayDirection: core.NewVec3(0, 0, 1),
			tMax:         1000,
			shouldHit:    true,
			expectedT:    1.0,
		},
		{
			name:         "sphere behind origin",
			rayOrigin:    core.NewVec3(0, 0, 5),
			rayDirection: core.NewVec3(0, 0, 1),
			tMax:         1000,
			shouldHit:    false,
		},
		{
			name:         "beyond far bound",
			rayOrigin:    core.NewVec3(0, 0, 5),
			rayDirection: core.NewVec3(0, 0, -1),
			tMax:         3,
			shouldHit:    false,
		},
		{
			name:         "grazing ray",
			rayOrigin:    core.NewVec3(1, 0, 5),
			rayDirection: core.NewVec3(0, 0, -1),
			tMax:         1000,
			shouldHit:    true,
			expectedT:    5.0,
		},
	}

	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection, tt.tMax)
			hit, isHit := sphere.Hit(ray, 0)
			if isHit != tt.shouldHit {
				t.Fatalf("Expected hit=%t, got %t", tt.shouldHit, isHit)
			}
			if isHit && math.Abs(hit.T-tt.expectedT) > 1e-6 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
		})
	}
}

func TestSphere_Hit_Transformed(t *testing.T) {
	translated := mustTransform(transform.New(transform.Translate(5, 0, 0)))
	stretched := mustTransform(transform.New(transform.Scale(2, 1, 1)))

	tests := []struct {
		name           string
		xf             *transform.GeometricTransform
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedPoint  core.Vec3
		expectedNormal core.Vec3
	}{
		{
			name:           "translated",
			xf:             translated,
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(1, 0, 0),
			expectedT:      4,
			expectedPoint:  core.NewVec3(4, 0, 0),
			expectedNormal: core.NewVec3(-1, 0, 0),
		},
		{
			name:           "stretched along x, hit on the long axis",
			xf:             stretched,
			rayOrigin:      core.NewVec3(10, 0, 0),
			rayDirection:   core.NewVec3(-1, 0, 0),
			expectedT:      8,
			expectedPoint:  core.NewVec3(2, 0, 0),
			expectedNormal: core.NewVec3(1, 0, 0),
		},
		{
			name:           "stretched along x, hit on the short axis",
			xf:             stretched,
			rayOrigin:      core.NewVec3(0, 10, 0),
			rayDirection:   core.NewVec3(0, -1, 0),
			expectedT:      9,
			expectedPoint:  core.NewVec3(0, 1, 0),
			expectedNormal: core.NewVec3(0, 1, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, tt.xf)
			hit, isHit := sphere.Hit(core.NewRay(tt.rayOrigin, tt.rayDirection, 1000), 0)
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if !hit.Point.ApproxEqual(tt.expectedPoint, 1e-9) {
				t.Errorf("Expected point %v, got %v", tt.expectedPoint, hit.Point)
			}
			if !hit.Normal.ApproxEqual(tt.expectedNormal, 1e-9) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestSphere_Hit_TowardsCenterFromOutside(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	center := core.NewVec3(3, -2, 7)
	radius := 1.5
	sphere := NewSphere(center, radius, nil)

	for i := 0; i < 200; i++ {
		dir := core.NewVec3(random.Float64()*2-1, random.Float64()*2-1, random.Float64()*2-1).Normalize()
		if dir.Length() == 0 {
			continue
		}
		distance := radius + 0.01 + random.Float64()*50
		origin := center.Add(dir.Multiply(distance))
		ray := core.NewRay(origin, center.Subtract(origin).Normalize(), core.DefaultTMax)

		hit, isHit := sphere.Hit(ray, 0)
		if !isHit {
			t.Fatalf("Ray %d from %v should hit", i, origin)
		}
		if hit.T <= 0 {
			t.Errorf("Ray %d: expected positive t, got %f", i, hit.T)
		}
		if math.Abs(hit.Normal.Length()-1) > 1e-9 {
			t.Errorf("Ray %d: expected unit normal, length %f", i, hit.Normal.Length())
		}
		outward := hit.Point.Subtract(center).Normalize()
		if hit.Normal.Dot(outward) < 1-1e-9 {
			t.Errorf("Ray %d: normal %v does not point away from center (%v)", i, hit.Normal, outward)
		}
	}
}

func TestSphere_Hit_ClosestApproachBeyondRadius(t *testing.T) {
	random := rand.New(rand.NewSource(7))
	sphere := NewSphere(core.NewVec3(0, 0, 0), 2.0, nil)

	for i := 0; i < 200; i++ {
		// Line passing at distance > radius from the center along the z axis
		offset := 2.0 + 0.001 + random.Float64()*10
		angle := random.Float64() * 2 * math.Pi
		origin := core.NewVec3(offset*math.Cos(angle), offset*math.Sin(angle), -20)
		ray := core.NewRay(origin, core.NewVec3(0, 0, 1), core.DefaultTMax)

		if hit, isHit := sphere.Hit(ray, 0); isHit {
			t.Errorf("Ray %d at offset %f should miss, got t=%f", i, offset, hit.T)
		}
	}
}

func TestSphere_BoundingBox(t *testing.T) {
	plain := NewSphere(core.NewVec3(1, 2, 3), 0.5, nil).BoundingBox()
	if !plain.Min.ApproxEqual(core.NewVec3(0.5, 1.5, 2.5), 1e-12) || !plain.Max.ApproxEqual(core.NewVec3(1.5, 2.5, 3.5), 1e-12) {
		t.Errorf("Unexpected bounds %v", plain)
	}

	xf := mustTransform(transform.New(transform.Translate(0, 1, 0).Mul4(transform.Scale(2, 1, 1))))
	scaled := NewSphere(core.NewVec3(0, 0, 0), 1, xf).BoundingBox()
	if !scaled.Min.ApproxEqual(core.NewVec3(-2, 0, -1), 1e-12) || !scaled.Max.ApproxEqual(core.NewVec3(2, 2, 1), 1e-12) {
		t.Errorf("Unexpected bounds for scaled sphere %v", scaled)
	}
}
