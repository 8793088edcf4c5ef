package factory

import "context"

// Factory creates a T from a raw parameter P, failing when P is not acceptable.
type Factory[T any, P any] interface {
	Create(ctx context.Context, param P) (T, error)
}

// The Func type is an adapter to allow the use of ordinary functions as Factory.
// If f is a function with the appropriate signature, Func(f) is a Factory that calls f.
type Func[T any, P any] func(ctx context.Context, param P) (T, error)

// Create calls f(ctx, param).
func (f Func[T, P]) Create(ctx context.Context, param P) (T, error) {
	return f(ctx, param)
}

// Of adapts a plain constructor, such as a value object New function, to a Factory.
func Of[T any, P any](constructor func(param P) (T, error)) Factory[T, P] {
	return Func[T, P](func(_ context.Context, param P) (T, error) {
		return constructor(param)
	})
}
