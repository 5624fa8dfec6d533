package parameter

import "errors"

// Array errors.
var (
	// ErrUnknownState is returned when a requested state label is absent
	// from the array's state mapping.
	ErrUnknownState = errors.New("unknown state")

	// ErrInvalidAssignment is returned when a range assignment receives a
	// sequence whose length is neither 1 nor the number of target
	// positions, or a scalar write receives an unusable operand.
	ErrInvalidAssignment = errors.New("invalid assignment")

	// ErrShapeMismatch is returned when two sequences that must have the
	// same length do not (mask vs values, condition vs array).
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrIndexOutOfRange is returned for out-of-bounds element access on
	// the error-returning accessors.
	ErrIndexOutOfRange = errors.New("index out of range")
)
