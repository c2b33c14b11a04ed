package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/teamwork/pkg/teamwork"
	"github.com/samber/mo"
)

// execute runs teamwork.Execute and prefixes any error with action.
func execute[T any](ctx context.Context, requester teamwork.Requester, descriptor, action string) (mo.Option[T], error) {
	result, err := teamwork.Execute[T](ctx, requester, descriptor)
	if err != nil {
		return result, fmt.Errorf("%s: %w", action, err)
	}

	return result, nil
}
