package valueobject

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is matched by every *ValidationError through errors.Is.
	ErrValidation = errors.New("valueobject: validation failed")

	// ErrKindMismatch is returned when two values of different kinds are ordered.
	ErrKindMismatch = errors.New("valueobject: kind mismatch")
)

// ValidationError reports a raw value rejected by the rule of a kind.
type ValidationError struct {
	Kind   Kind
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Kind == "" {
		return fmt.Sprintf("valueobject: %s", e.Reason)
	}
	return fmt.Sprintf("valueobject: %s: %s", e.Kind, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError returns a *ValidationError as an error.
func NewValidationError(kind Kind, value any, reason string) error {
	return &ValidationError{Kind: kind, Value: value, Reason: reason}
}

// AsValidationError finds the first *ValidationError in err's chain.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

func newKindMismatchError(left, right Kind) error {
	return fmt.Errorf("%w, %q -> %q", ErrKindMismatch, left, right)
}
