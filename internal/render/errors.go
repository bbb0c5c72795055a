package render

import "errors"

var (
	// ErrInvalidSize indicates a canvas dimension below one pixel.
	ErrInvalidSize = errors.New("render: canvas width and height must be positive")

	// ErrUnknownMode indicates a mode name or value outside the five renderers.
	ErrUnknownMode = errors.New("render: unknown mode")

	// ErrInvalidLineWidth indicates a stroke width below one pixel.
	ErrInvalidLineWidth = errors.New("render: line width must be at least 1")

	// ErrInvalidOffset indicates a color offset outside [0, 1].
	ErrInvalidOffset = errors.New("render: color offset must be within [0, 1]")
)

// ConfigError wraps a validation failure with the offending field.
type ConfigError struct {
	Field   string
	Wrapped error
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Wrapped.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Wrapped
}
