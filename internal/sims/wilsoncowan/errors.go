package wilsoncowan

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig matches every *ConfigError.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrBoundsViolation matches every *BoundsError.
	ErrBoundsViolation = errors.New("neighbor outside grid")
	// ErrHistoryComplete is returned when stepping past the configured length.
	ErrHistoryComplete = errors.New("history complete")
	// ErrAlreadyStarted is returned when initial activity is edited after
	// step 0 was recorded.
	ErrAlreadyStarted = errors.New("simulation already started")
)

// ConfigError names the parameter that failed validation.
type ConfigError struct {
	Param  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Param, e.Value, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidConfig) true.
func (e *ConfigError) Is(target error) bool { return target == ErrInvalidConfig }

// BoundsError reports a neighbour position that fell outside the grid. It
// indicates a geometry bug and is never retried.
type BoundsError struct {
	Origin   Position
	Position Position
	Shape    Shape
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("neighbor %v of %v outside %dx%d grid", e.Position, e.Origin, e.Shape.Rows, e.Shape.Cols)
}

// Is makes errors.Is(err, ErrBoundsViolation) true.
func (e *BoundsError) Is(target error) bool { return target == ErrBoundsViolation }
