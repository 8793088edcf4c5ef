package valueobject

import "golang.org/x/exp/slices"

// Type defines a value object variant: its kind and the ordered rules a raw
// value must satisfy. A Type is immutable after Define.
type Type[T comparable] struct {
	kind  Kind
	rules []Rule[T]
}

// Define declares a variant. It panics on an empty kind.
func Define[T comparable](kind Kind, rules ...Rule[T]) *Type[T] {
	if kind == "" {
		panic("valueobject: empty kind")
	}
	return &Type[T]{kind: kind, rules: slices.Clone(rules)}
}

// Extend declares a specialization of parent. The parent rules run first.
func Extend[T comparable](parent *Type[T], kind Kind, rules ...Rule[T]) *Type[T] {
	all := make([]Rule[T], 0, len(parent.rules)+len(rules))
	all = append(all, parent.rules...)
	all = append(all, rules...)
	return Define(kind, all...)
}

func (t *Type[T]) Kind() Kind {
	return t.kind
}

// Validate runs the rules in order and returns the first failure.
func (t *Type[T]) Validate(raw T) error {
	for _, rule := range t.rules {
		if err := rule.Check(t.kind, raw); err != nil {
			return err
		}
	}
	return nil
}

// New validates raw and wraps it. On failure the zero Base is returned.
func (t *Type[T]) New(raw T) (Base[T], error) {
	if err := t.Validate(raw); err != nil {
		return Base[T]{}, err
	}
	return Base[T]{typ: t, value: raw}, nil
}

// Must is like New but panics on a validation failure.
func (t *Type[T]) Must(raw T) Base[T] {
	b, err := t.New(raw)
	if err != nil {
		panic(err)
	}
	return b
}
