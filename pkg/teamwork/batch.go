package teamwork

import (
	"context"
	"time"

	"github.com/samber/mo"
	"github.com/sourcegraph/conc/iter"
)

// BatchResult is the outcome of one descriptor of an ExecuteBatch call.
type BatchResult[T any] struct {
	Descriptor string
	Value      mo.Option[T]
	Err        error
	Duration   time.Duration
}

// ExecuteBatch runs Execute for every descriptor concurrently and returns the
// results in input order. Calls are independent: one failing does not cancel
// the others.
func ExecuteBatch[T any](ctx context.Context, requester Requester, descriptors []string, opts ...ExecuteOption) []BatchResult[T] {
	options := newExecuteOptions(requester, opts)

	limit := options.maxConcurrency
	if limit <= 0 {
		limit = len(descriptors)
	}

	mapper := iter.Mapper[string, BatchResult[T]]{MaxGoroutines: limit}

	return mapper.Map(descriptors, func(descriptor *string) BatchResult[T] {
		start := time.Now()

		value, err := Execute[T](ctx, requester, *descriptor, opts...)

		return BatchResult[T]{
			Descriptor: *descriptor,
			Value:      value,
			Err:        err,
			Duration:   time.Since(start),
		}
	})
}
