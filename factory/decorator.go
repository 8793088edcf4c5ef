package factory

import (
	"context"
	"strings"
)

// Decorator wraps a Factory, adding behaviour before or after Create.
type Decorator[T any, P any] interface {
	// Decorate wraps the underlying factory.
	Decorate(f Factory[T, P]) Factory[T, P]
}

// The DecoratorFunc type is an adapter to allow the use of ordinary functions as Decorator.
type DecoratorFunc[T any, P any] func(f Factory[T, P]) Factory[T, P]

// Decorate call f(factory).
func (f DecoratorFunc[T, P]) Decorate(factory Factory[T, P]) Factory[T, P] {
	return f(factory)
}

// Chain decorates f with all decorators. The first decorator is the outermost.
func Chain[T any, P any](f Factory[T, P], decorators ...Decorator[T, P]) Factory[T, P] {
	for i := len(decorators) - 1; i >= 0; i-- {
		f = decorators[i].Decorate(f)
	}
	return f
}

// TrimSpace removes leading and trailing white space from the raw string
// before it reaches the decorated factory.
func TrimSpace[T any]() Decorator[T, string] {
	return DecoratorFunc[T, string](func(f Factory[T, string]) Factory[T, string] {
		return Func[T, string](func(ctx context.Context, param string) (T, error) {
			return f.Create(ctx, strings.TrimSpace(param))
		})
	})
}

// Checked rejects the call with ctx.Err() when the context is already done.
func Checked[T any, P any]() Decorator[T, P] {
	return DecoratorFunc[T, P](func(f Factory[T, P]) Factory[T, P] {
		return Func[T, P](func(ctx context.Context, param P) (T, error) {
			if err := ctx.Err(); err != nil {
				var zero T
				return zero, err
			}
			return f.Create(ctx, param)
		})
	})
}
