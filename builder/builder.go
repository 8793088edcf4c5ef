package builder

import (
	"context"
	"errors"
)

// Builder assembles a T from the parts it has been given.
type Builder[T any] interface {
	Build(ctx context.Context) (T, error)
}

// The Func type is an adapter to allow the use of ordinary functions as Builder.
type Func[T any] func(ctx context.Context) (T, error)

// Build calls f(ctx).
func (f Func[T]) Build(ctx context.Context) (T, error) {
	return f(ctx)
}

// Collector gathers the errors of several build steps so that all of them
// can be reported at once. The zero Collector is ready to use.
type Collector struct {
	errs []error
}

// Collect records err if it is not nil and reports whether it was.
func (c *Collector) Collect(err error) bool {
	if err == nil {
		return true
	}
	c.errs = append(c.errs, err)
	return false
}

// Len returns the number of collected errors.
func (c *Collector) Len() int {
	return len(c.errs)
}

// Err joins the collected errors, or returns nil when there are none.
func (c *Collector) Err() error {
	return errors.Join(c.errs...)
}

// Set assigns the value produced by a build step to dst when the step succeeds,
// and collects its error otherwise.
func Set[T any](c *Collector, dst *T, v T, err error) {
	if c.Collect(err) {
		*dst = v
	}
}
