package specification

// Specification is a predicate over T that can be combined with other
// specifications. Use New to create one from a plain function.
type Specification[T any] interface {

	// IsSatisfiedBy check if t is satisfied by the specification.
	IsSatisfiedBy(t T) bool

	// And create a new specification that is satisfied when both the current
	// specification and another are satisfied.
	And(another Specification[T]) Specification[T]

	// Or create a new specification that is satisfied when either the current
	// specification or another is satisfied.
	Or(another Specification[T]) Specification[T]

	// Not create a new specification that is the inverse of the current one.
	Not() Specification[T]
}

// New wraps predicate into a Specification.
func New[T any](predicate func(t T) bool) Specification[T] {
	return &base[T]{predicate: predicate}
}

// And used to create a new specification that is the AND of two other specifications.
func And[T any](left Specification[T], right Specification[T]) Specification[T] {
	return New(func(t T) bool {
		return left.IsSatisfiedBy(t) && right.IsSatisfiedBy(t)
	})
}

// Or used to create a new specification that is the OR of two other specifications.
func Or[T any](left Specification[T], right Specification[T]) Specification[T] {
	return New(func(t T) bool {
		return left.IsSatisfiedBy(t) || right.IsSatisfiedBy(t)
	})
}

// Not used to create a new specification that is the inverse (NOT) of the given spec.
func Not[T any](spec Specification[T]) Specification[T] {
	return New(func(t T) bool {
		return !spec.IsSatisfiedBy(t)
	})
}

// Conjunction is satisfied when every spec is satisfied. An empty conjunction is always satisfied.
func Conjunction[T any](specs ...Specification[T]) Specification[T] {
	return New(func(t T) bool {
		for _, spec := range specs {
			if !spec.IsSatisfiedBy(t) {
				return false
			}
		}
		return true
	})
}

// Disjunction is satisfied when at least one spec is satisfied. An empty disjunction is never satisfied.
func Disjunction[T any](specs ...Specification[T]) Specification[T] {
	return New(func(t T) bool {
		for _, spec := range specs {
			if spec.IsSatisfiedBy(t) {
				return true
			}
		}
		return false
	})
}
