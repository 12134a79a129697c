package geometry

import (
	"math"

	"github.com/df07/go-scene-raytracer/pkg/core"
)

// Camera is a pinhole camera. Everything derived from the view parameters
// is computed in NewCamera and never changes afterwards.
type Camera struct {
	width, height int
	lookFrom      core.Vec3
	lookAt        core.Vec3
	up            core.Vec3
	fovY          float64 // degrees

	// Derived
	u, v, w     core.Vec3 // Orthonormal camera basis; w points away from the view direction
	fovX        float64   // radians
	tanHalfFovX float64
	tanHalfFovY float64
	halfWidth   float64
	halfHeight  float64
}

// NewCamera creates a camera for an image of width x height pixels looking
// from lookFrom towards lookAt with a vertical field of view of fovY degrees.
func NewCamera(width, height int, lookFrom, lookAt, up core.Vec3, fovY float64) (*Camera, error) {
	if width <= 0 || height <= 0 {
		return nil, core.NewConfigError(core.InvalidDimensions, "camera image %dx%d", width, height)
	}
	if !(fovY > 0 && fovY < 180) {
		return nil, core.NewConfigError(core.DegenerateCamera, "vertical field of view %g must be in (0, 180) degrees", fovY)
	}

	view := lookFrom.Subtract(lookAt)
	if view.Length() < 1e-12 || !view.IsFinite() {
		return nil, core.NewConfigError(core.DegenerateCamera, "look_from %v equals look_at %v", lookFrom, lookAt)
	}
	w := view.Normalize()

	side := up.Cross(w)
	if side.Length() < 1e-12 || !side.IsFinite() {
		return nil, core.NewConfigError(core.DegenerateCamera, "up %v is parallel to the view direction", up)
	}
	u := side.Normalize()
	v := w.Cross(u)

	fovYRad := fovY * math.Pi / 180.0
	aspectRatio := float64(width) / float64(height)
	fovX := 2.0 * math.Atan(math.Tan(fovYRad/2.0)*aspectRatio)

	return &Camera{
		width:       width,
		height:      height,
		lookFrom:    lookFrom,
		lookAt:      lookAt,
		up:          up,
		fovY:        fovY,
		u:           u,
		v:           v,
		w:           w,
		fovX:        fovX,
		tanHalfFovX: math.Tan(fovX / 2.0),
		tanHalfFovY: math.Tan(fovYRad / 2.0),
		halfWidth:   float64(width) / 2.0,
		halfHeight:  float64(height) / 2.0,
	}, nil
}

func (c *Camera) Width() int          { return c.width }
func (c *Camera) Height() int         { return c.height }
func (c *Camera) LookFrom() core.Vec3 { return c.lookFrom }
func (c *Camera) LookAt() core.Vec3   { return c.lookAt }
func (c *Camera) Up() core.Vec3       { return c.up }

// FovY returns the vertical field of view in degrees
func (c *Camera) FovY() float64 { return c.fovY }

// FovX returns the derived horizontal field of view in radians
func (c *Camera) FovX() float64 { return c.fovX }

// Basis returns the orthonormal camera frame
func (c *Camera) Basis() (u, v, w core.Vec3) { return c.u, c.v, c.w }

// TanHalfFov returns tan(fovX/2) and tan(fovY/2)
func (c *Camera) TanHalfFov() (x, y float64) { return c.tanHalfFovX, c.tanHalfFovY }

// RayThroughPixel returns the primary ray through image coordinates (x, y),
// origin top-left, x to the right and y downwards. Pixel centers sit at
// (i+0.5, j+0.5).
//
// beta grows towards the top of the image and the direction takes -beta·v,
// so row j of a rendered buffer holds the scanline that a bottom-left origin
// encoder expects as row j. Image.RGBA flips rows for top-left encoders.
func (c *Camera) RayThroughPixel(x, y float64) core.Ray {
	alpha := c.tanHalfFovX * ((x - c.halfWidth) / c.halfWidth)
	beta := c.tanHalfFovY * ((c.halfHeight - y) / c.halfHeight)

	direction := c.u.Multiply(alpha).
		Subtract(c.v.Multiply(beta)).
		Subtract(c.w).
		Normalize()

	return core.NewRay(c.lookFrom, direction, core.DefaultTMax)
}
