package services

import (
	"context"
	"errors"
	"time"
)

// ErrStoreTimeout marks a store operation that exceeded its deadline.
// Handlers map it to 503 rather than a generic failure.
var ErrStoreTimeout = errors.New("store operation timed out")

// boundCtx derives a per-operation deadline for store access.
func boundCtx(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

// storeErr normalizes deadline errors into ErrStoreTimeout.
func storeErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrStoreTimeout
	}
	return err
}
