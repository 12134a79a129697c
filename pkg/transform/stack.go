package transform

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-scene-raytracer/pkg/core"
)

// Stack is an immutable stack of cumulative object-to-world matrices.
// Every operation returns a new Stack; the receiver is left untouched, so a
// saved Stack value always describes the same transform scope.
type Stack struct {
	top    mgl64.Mat4
	parent *Stack
	depth  int
}

// NewStack returns a stack holding only the identity frame
func NewStack() Stack {
	return Stack{top: mgl64.Ident4()}
}

// Top returns the current cumulative transform
func (s Stack) Top() mgl64.Mat4 {
	return s.top
}

// Depth returns the number of pushed frames above the base frame
func (s Stack) Depth() int {
	return s.depth
}

// Push returns a stack with a copy of the current frame on top
func (s Stack) Push() Stack {
	parent := s
	return Stack{top: s.top, parent: &parent, depth: s.depth + 1}
}

// Pop returns the stack as it was before the matching Push
func (s Stack) Pop() (Stack, error) {
	if s.parent == nil {
		return s, core.NewConfigError(core.TransformStackUnderflow, "popTransform without matching pushTransform")
	}
	return *s.parent, nil
}

// Apply right-multiplies the top frame by m, so m acts on object
// coordinates before any transform already on the frame.
func (s Stack) Apply(m mgl64.Mat4) Stack {
	return Stack{top: s.top.Mul4(m), parent: s.parent, depth: s.depth}
}

// Translate builds a translation matrix
func Translate(x, y, z float64) mgl64.Mat4 {
	return mgl64.Translate3D(x, y, z)
}

// Scale builds a scale matrix
func Scale(x, y, z float64) mgl64.Mat4 {
	return mgl64.Scale3D(x, y, z)
}

// Rotate builds a rotation of degrees around axis (right-handed). The axis
// does not need to be normalized but must not be zero.
func Rotate(axis core.Vec3, degrees float64) (mgl64.Mat4, error) {
	if axis.Length() < 1e-12 || !axis.IsFinite() {
		return mgl64.Mat4{}, core.NewConfigError(core.InvalidAxis, "axis %v", axis)
	}
	n := axis.Normalize()
	radians := degrees * math.Pi / 180.0
	return mgl64.HomogRotate3D(radians, mgl64.Vec3{n.X, n.Y, n.Z}), nil
}
