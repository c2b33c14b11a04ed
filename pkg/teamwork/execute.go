package teamwork

import (
	"context"
	"errors"
	"fmt"

	"github.com/fivetwenty-io/teamwork/internal/decode"
	"github.com/samber/mo"
)

type executeOptions struct {
	mode           decode.Mode
	logger         Logger
	maxConcurrency int
}

// ExecuteOption configures a single Execute or ExecuteBatch call.
type ExecuteOption func(*executeOptions)

// WithStrictDecoding reports fields that fail to convert as an
// *UnparseableResponseError instead of skipping them.
func WithStrictDecoding() ExecuteOption {
	return func(o *executeOptions) {
		o.mode = decode.Strict
	}
}

// WithLenientDecoding skips fields that fail to convert. It is the default and
// only needed to override a Requester's strict defaults.
func WithLenientDecoding() ExecuteOption {
	return func(o *executeOptions) {
		o.mode = decode.Lenient
	}
}

// WithLogger sets the logger used to report absent results and skipped fields.
func WithLogger(logger Logger) ExecuteOption {
	return func(o *executeOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMaxConcurrency bounds the number of in-flight requests of ExecuteBatch.
// Zero or a negative value means one goroutine per descriptor.
func WithMaxConcurrency(n int) ExecuteOption {
	return func(o *executeOptions) {
		o.maxConcurrency = n
	}
}

func newExecuteOptions(requester Requester, opts []ExecuteOption) *executeOptions {
	options := &executeOptions{
		mode:   decode.Lenient,
		logger: NopLogger(),
	}

	if defaulter, ok := requester.(ExecuteDefaulter); ok {
		for _, opt := range defaulter.ExecuteDefaults() {
			opt(options)
		}
	}

	for _, opt := range opts {
		opt(options)
	}

	return options
}

// Execute performs one request for descriptor and decodes the body into T.
//
// The result is absent, with a nil error, when the service answers with a
// non-2xx status, when the request fails in transport, or when the body is
// empty or a JSON null. A body that cannot be mapped onto T at all yields an
// *UnparseableResponseError. Individual fields that fail to convert are
// skipped and logged at debug level unless WithStrictDecoding is given.
// Cancelling ctx aborts the request and returns the context error.
func Execute[T any](ctx context.Context, requester Requester, descriptor string, opts ...ExecuteOption) (mo.Option[T], error) {
	options := newExecuteOptions(requester, opts)

	resp, err := requester.Request(ctx, descriptor)
	if err != nil {
		ctxErr := ctx.Err()
		if ctxErr != nil {
			return mo.None[T](), fmt.Errorf("requesting %s: %w", descriptor, ctxErr)
		}

		options.logger.Warn("Request failed, no data returned", map[string]interface{}{
			"descriptor": descriptor,
			"error":      err.Error(),
		})

		return mo.None[T](), nil
	}

	if !resp.IsSuccess() {
		options.logger.Warn("Unsuccessful status, no data returned", map[string]interface{}{
			"descriptor":  descriptor,
			"status_code": resp.StatusCode,
		})

		return mo.None[T](), nil
	}

	value, skipped, err := decode.Into[T](resp.Body, options.mode)

	if options.mode == decode.Lenient {
		for _, fieldErr := range skipped {
			options.logger.Debug("Skipped field", map[string]interface{}{
				"descriptor": descriptor,
				"error":      fieldErr.Error(),
			})
		}
	}

	if err != nil {
		if errors.Is(err, decode.ErrNull) {
			return mo.None[T](), nil
		}

		return mo.None[T](), &UnparseableResponseError{
			Descriptor: descriptor,
			StatusCode: resp.StatusCode,
			Err:        err,
		}
	}

	return mo.Some(value), nil
}
