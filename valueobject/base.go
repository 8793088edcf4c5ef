package valueobject

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Object is implemented by Base and by every type embedding one.
type Object interface {
	Kind() Kind
	Raw() any
}

var _ Object = Base[string]{}

// Base is the validated wrapper shared by all variants. Concrete value
// objects embed it and add a typed Equals. The zero Base has no kind and is
// never returned by a successful Type.New.
type Base[T comparable] struct {
	typ   *Type[T]
	value T
}

// Kind returns the variant discriminator, or "" for the zero Base.
func (b Base[T]) Kind() Kind {
	if b.typ == nil {
		return ""
	}
	return b.typ.kind
}

// Value returns the wrapped primitive.
func (b Base[T]) Value() T {
	return b.value
}

// Raw returns the wrapped primitive as any.
func (b Base[T]) Raw() any {
	return b.value
}

// IsZero reports whether b was not produced by a Type.
func (b Base[T]) IsZero() bool {
	return b.typ == nil
}

// Equals compares kinds first, then the wrapped values.
func (b Base[T]) Equals(other Base[T]) bool {
	return b.Kind() == other.Kind() && b.value == other.value
}

// Validate re-runs the rules of b's kind against its value.
func (b Base[T]) Validate() error {
	if b.typ == nil {
		return NewValidationError("", b.value, "value object is not initialised")
	}
	return b.typ.Validate(b.value)
}

func (b Base[T]) IsValid() bool {
	return b.Validate() == nil
}

func (b Base[T]) String() string {
	return fmt.Sprint(b.value)
}

// Equal compares two objects of any variant. Objects of different kinds are
// never equal, even when their wrapped primitives are.
func Equal(a, b Object) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Kind() == b.Kind() && a.Raw() == b.Raw()
}

// Less orders two values of the same kind.
func Less[T constraints.Ordered](a, b Base[T]) (bool, error) {
	if a.Kind() != b.Kind() {
		return false, newKindMismatchError(a.Kind(), b.Kind())
	}
	return a.value < b.value, nil
}
