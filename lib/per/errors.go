package per

import (
	"errors"
	"fmt"
)

// Sentinel errors for the decode and encode paths. Callers should use
// errors.Is against these rather than matching on message text.
var (
	// ErrEndOfInput is returned when a read would consume more bits than
	// remain in the input.
	ErrEndOfInput = errors.New("per: end of input")

	// ErrNotImplemented is returned for encoding forms this codec does not
	// support, notably fragmented length determinants (X.691 11.9.3.8).
	ErrNotImplemented = errors.New("per: not implemented")

	// ErrOutOfRange is returned when a decoded or supplied value falls
	// outside the bounds given by a Constraint.
	ErrOutOfRange = errors.New("per: value out of range")

	// ErrMissingSizeConstraint is returned by adapters (bit string, octet
	// string, sequence-of) that require Constraints.Size to be set.
	ErrMissingSizeConstraint = errors.New("per: missing size constraint")

	// ErrMissingValueConstraint is returned by adapters that require
	// Constraints.Value to be set in order to encode.
	ErrMissingValueConstraint = errors.New("per: missing value constraint")

	// ErrInvalidChoice is returned when a Choice selector does not name
	// any known alternative.
	ErrInvalidChoice = errors.New("per: invalid choice selector")

	// ErrWrite is returned when assembling an Encoding's underlying bytes
	// fails (practically unreachable, kept for parity with the encode
	// error kinds named above).
	ErrWrite = errors.New("per: write error")
)

func wrapf(base error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", base, fmt.Sprintf(format, args...))
}
