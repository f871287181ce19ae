package comparator

import (
	"context"

	"github.com/amp-labs/amp-compare/logger"
)

// Logged returns a Comparator that behaves like c and logs every comparison
// at debug level to logger.Get(ctx), tagged with name. It is meant for
// finding out why a chain puts two elements in an unexpected order.
func Logged[T any](ctx context.Context, name string, c Comparator[T]) Comparator[T] {
	if c.err != nil {
		return c
	}

	log := logger.Get(logger.With(ctx, "comparator", name))

	return NewWithError(func(a, b T) (int, error) {
		res, err := c.Compare(a, b)
		if err != nil {
			log.Debug("comparison failed", "a", a, "b", b, "error", err)

			return res, err
		}

		log.Debug("compared", "a", a, "b", b, "result", res)

		return res, nil
	})
}
