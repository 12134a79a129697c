package transform

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-scene-raytracer/pkg/core"
)

func TestStack_PushPopScoping(t *testing.T) {
	base := NewStack().Apply(Translate(1, 0, 0))

	inner := base.Push().Apply(Scale(2, 2, 2))
	if inner.Depth() != 1 {
		t.Errorf("Expected depth 1, got %d", inner.Depth())
	}

	// Base is unaffected by anything done to the pushed stack.
	if !base.Top().ApproxEqual(Translate(1, 0, 0)) {
		t.Errorf("Base stack was mutated: %v", base.Top())
	}

	popped, err := inner.Pop()
	if err != nil {
		t.Fatalf("Pop failed: %v", err)
	}
	if !popped.Top().ApproxEqual(base.Top()) {
		t.Errorf("Pop should restore prior frame, got %v", popped.Top())
	}
	if popped.Depth() != 0 {
		t.Errorf("Expected depth 0 after pop, got %d", popped.Depth())
	}
}

func TestStack_PopUnderflow(t *testing.T) {
	_, err := NewStack().Pop()
	if !errors.Is(err, core.ErrTransformStackUnderflow) {
		t.Errorf("Expected underflow error, got %v", err)
	}
}

func TestStack_ApplyOrder(t *testing.T) {
	// translate then scale: the scale acts on object coordinates first.
	s := NewStack().Apply(Translate(10, 0, 0)).Apply(Scale(2, 2, 2))
	p := FromVec4(s.Top().Mul4x1(mgl64.Vec4{1, 0, 0, 1}))
	if !p.ApproxEqual(core.NewVec3(12, 0, 0), 1e-12) {
		t.Errorf("Expected (12,0,0), got %v", p)
	}
}

func TestRotate(t *testing.T) {
	m, err := Rotate(core.NewVec3(0, 0, 5), 90)
	if err != nil {
		t.Fatalf("Rotate failed: %v", err)
	}
	p := FromVec4(m.Mul4x1(mgl64.Vec4{1, 0, 0, 1}))
	if !p.ApproxEqual(core.NewVec3(0, 1, 0), 1e-12) {
		t.Errorf("Expected (0,1,0), got %v", p)
	}

	if _, err := Rotate(core.NewVec3(0, 0, 0), 45); !errors.Is(err, core.ErrInvalidAxis) {
		t.Errorf("Expected invalid axis error, got %v", err)
	}
}
