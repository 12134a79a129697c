package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestConfigError_Is(t *testing.T) {
	tests := []struct {
		kind     ConfigErrorKind
		sentinel error
	}{
		{SingularTransform, ErrSingularTransform},
		{DegenerateCamera, ErrDegenerateCamera},
		{NoCamera, ErrNoCamera},
		{VertexIndexOutOfRange, ErrVertexIndexOutOfRange},
		{VertexLimitExceeded, ErrVertexLimitExceeded},
		{InvalidDimensions, ErrInvalidDimensions},
		{TransformStackUnderflow, ErrTransformStackUnderflow},
		{InvalidAxis, ErrInvalidAxis},
	}

	for _, tt := range tests {
		t.Run(tt.sentinel.Error(), func(t *testing.T) {
			err := fmt.Errorf("scene.txt:3: %w", NewConfigError(tt.kind, "detail %d", 7))
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("Expected errors.Is to match %v", tt.sentinel)
			}

			var configErr *ConfigError
			if !errors.As(err, &configErr) || configErr.Kind != tt.kind {
				t.Errorf("Expected errors.As to find kind %v", tt.kind)
			}
		})
	}
}

func TestConfigError_Message(t *testing.T) {
	if got := NewConfigError(NoCamera, "").Error(); got != "scene has no camera" {
		t.Errorf("Unexpected message %q", got)
	}
	if got := NewConfigError(VertexIndexOutOfRange, "index %d of %d", 5, 3).Error(); got != "vertex index out of range: index 5 of 3" {
		t.Errorf("Unexpected message %q", got)
	}
}
