package core

import (
	"errors"
	"fmt"
)

// ConfigErrorKind classifies scene configuration failures. All of them are
// fatal and are reported before any pixel is traced.
type ConfigErrorKind int

const (
	SingularTransform ConfigErrorKind = iota
	DegenerateCamera
	NoCamera
	VertexIndexOutOfRange
	VertexLimitExceeded
	InvalidDimensions
	TransformStackUnderflow
	InvalidAxis
)

// Sentinel errors, one per kind, for use with errors.Is.
var (
	ErrSingularTransform       = errors.New("transform matrix is not invertible")
	ErrDegenerateCamera        = errors.New("degenerate camera view")
	ErrNoCamera                = errors.New("scene has no camera")
	ErrVertexIndexOutOfRange   = errors.New("vertex index out of range")
	ErrVertexLimitExceeded     = errors.New("vertex limit exceeded")
	ErrInvalidDimensions       = errors.New("invalid image dimensions")
	ErrTransformStackUnderflow = errors.New("transform stack underflow")
	ErrInvalidAxis             = errors.New("invalid rotation axis")
)

var kindSentinels = map[ConfigErrorKind]error{
	SingularTransform:       ErrSingularTransform,
	DegenerateCamera:        ErrDegenerateCamera,
	NoCamera:                ErrNoCamera,
	VertexIndexOutOfRange:   ErrVertexIndexOutOfRange,
	VertexLimitExceeded:     ErrVertexLimitExceeded,
	InvalidDimensions:       ErrInvalidDimensions,
	TransformStackUnderflow: ErrTransformStackUnderflow,
	InvalidAxis:             ErrInvalidAxis,
}

// ConfigError describes a scene that cannot be rendered as given
type ConfigError struct {
	Kind   ConfigErrorKind
	Detail string
}

// NewConfigError creates a configuration error of the given kind
func NewConfigError(kind ConfigErrorKind, format string, args ...interface{}) *ConfigError {
	return &ConfigError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

func (e *ConfigError) Error() string {
	sentinel := kindSentinels[e.Kind]
	if e.Detail == "" {
		return sentinel.Error()
	}
	return fmt.Sprintf("%s: %s", sentinel, e.Detail)
}

// Unwrap exposes the sentinel so errors.Is(err, ErrSingularTransform) works
func (e *ConfigError) Unwrap() error {
	return kindSentinels[e.Kind]
}
