package valueobject

import (
	"github.com/go-leo/valueobject/specification"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Rule pairs a specification with the reason reported when it is not satisfied.
type Rule[T any] struct {
	spec   specification.Specification[T]
	reason string
}

// Satisfies builds a Rule from an existing specification.
func Satisfies[T any](spec specification.Specification[T], reason string) Rule[T] {
	return Rule[T]{spec: spec, reason: reason}
}

// NewRule builds a Rule from a predicate.
func NewRule[T any](reason string, predicate func(v T) bool) Rule[T] {
	return Satisfies(specification.New(predicate), reason)
}

// Tag builds a Rule from a validator tag such as "required" or "max=100".
// String lengths are counted in runes.
func Tag[T any](tag string, reason string) Rule[T] {
	return NewRule(reason, func(v T) bool {
		return validate.Var(v, tag) == nil
	})
}

// Reason returns the message reported when the rule rejects a value.
func (r Rule[T]) Reason() string {
	return r.reason
}

// Specification returns the predicate behind the rule.
func (r Rule[T]) Specification() specification.Specification[T] {
	return r.spec
}

// Check returns a *ValidationError for kind when v does not satisfy the rule.
func (r Rule[T]) Check(kind Kind, v T) error {
	if r.spec == nil || !r.spec.IsSatisfiedBy(v) {
		return NewValidationError(kind, v, r.reason)
	}
	return nil
}
