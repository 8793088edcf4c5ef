package ddd

// Equatable compares by value. The parameter is the implementing type itself,
// so two unrelated value object types can not be compared with each other.
type Equatable[T any] interface {
	// Equals return true if other holds the same value.
	Equals(other T) bool
}

// Comparable orders values of the same type.
type Comparable[T any] interface {
	// IsLessThan return true if the receiver sorts before other.
	IsLessThan(other T) bool
}

// Copyable returns a copy equal to the receiver.
type Copyable[T any] interface {
	Copy() T
}

// Validatable exposes the validation rule of a value after construction.
type Validatable interface {
	// Validate return nil if the value is accepted by its rule.
	Validate() error

	// IsValid reports whether Validate returns nil.
	IsValid() bool
}

// ValueObject as described in the DDD book.
// Value objects compare by the values of their attributes, they don't have an identity.
type ValueObject[T any] interface {
	Equatable[T]
	Validatable
}
