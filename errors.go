package plotpy

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter reports a numeric argument that violates a
// documented precondition, such as a non-positive exponent or radius,
// a resolution below the minimum, or an empty domain.
var ErrInvalidParameter = errors.New("plotpy: invalid parameter")

// ErrMalformedPath reports a pen-command sequence that violates the
// expected ordering or control-point arity.
var ErrMalformedPath = errors.New("plotpy: malformed path")

func invalidParamf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameter, fmt.Sprintf(format, args...))
}

func malformedPathf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedPath, fmt.Sprintf(format, args...))
}
