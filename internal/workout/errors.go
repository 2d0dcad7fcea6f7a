package workout

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownWorkoutType is returned when an activity code is not one of SWM, RUN or WLK.
	ErrUnknownWorkoutType = errors.New("unknown workout type")
	// ErrArgumentCount is returned when a sensor package carries the wrong number of values.
	ErrArgumentCount = errors.New("incorrect argument count")
	// ErrNotImplemented is the panic value raised when a variant lacks a calorie formula.
	ErrNotImplemented = errors.New("spent calories not implemented")
	// ErrDivisionByZero is the panic value raised when a zero duration or height reaches a formula.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrInvalidReading is returned by Validate for out-of-range sensor values.
	ErrInvalidReading = errors.New("invalid sensor reading")
)

// UnknownWorkoutTypeError reports the offending activity code.
type UnknownWorkoutTypeError struct {
	Code string
}

func (e *UnknownWorkoutTypeError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownWorkoutType, e.Code)
}

// Is lets errors.Is match ErrUnknownWorkoutType.
func (e *UnknownWorkoutTypeError) Is(target error) bool {
	return target == ErrUnknownWorkoutType
}

// ArgumentCountError reports an arity mismatch for a variant constructor.
type ArgumentCountError struct {
	Code string
	Want int
	Got  int
}

func (e *ArgumentCountError) Error() string {
	return fmt.Sprintf("%s for %s: want %d values, got %d", ErrArgumentCount, e.Code, e.Want, e.Got)
}

// Is lets errors.Is match ErrArgumentCount.
func (e *ArgumentCountError) Is(target error) bool {
	return target == ErrArgumentCount
}
