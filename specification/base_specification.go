package specification

var _ Specification[any] = (*base[any])(nil)

type base[T any] struct {
	predicate func(t T) bool
}

func (spec *base[T]) IsSatisfiedBy(t T) bool {
	if spec.predicate == nil {
		return false
	}
	return spec.predicate(t)
}

func (spec *base[T]) And(another Specification[T]) Specification[T] {
	return And[T](spec, another)
}

func (spec *base[T]) Or(another Specification[T]) Specification[T] {
	return Or[T](spec, another)
}

func (spec *base[T]) Not() Specification[T] {
	return Not[T](spec)
}
