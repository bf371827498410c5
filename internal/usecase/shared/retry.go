package shared

import (
	"context"
	"log/slog"
	"time"

	"github.com/KostasTheodoro/GArts-Edu/internal/infra"
	"github.com/KostasTheodoro/GArts-Edu/internal/pkg/errs"
)

const defaultMaxRetries = 3

var ErrMaxRetriesExceeded = errs.New("optimistic transaction failed after max retries")

// RunWithRetry re-runs fn while it fails with a CONFLICT store error, the
// signal of a lost optimistic WATCH/MULTI race.
func RunWithRetry[T any](ctx context.Context, maxRetries int, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	for attempt := 0; attempt <= maxRetries; attempt++ {
		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}

		if !isRetryableError(err) {
			return zero, err
		}

		if attempt == maxRetries {
			slog.Error("optimistic transaction failed after max retries",
				"attempts", attempt+1,
				"error", err)
			return zero, errs.Mark(err, ErrMaxRetriesExceeded)
		}

		waitTime := time.Duration(attempt+1) * 20 * time.Millisecond
		slog.Warn("retrying optimistic transaction",
			"attempt", attempt+1,
			"wait_time", waitTime,
			"error", err)

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return zero, ErrMaxRetriesExceeded
}

func isRetryableError(err error) bool {
	return infra.IsKind(err, infra.KindConflict)
}

func WithDefaultRetry[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) (T, error) {
	return RunWithRetry(ctx, defaultMaxRetries, fn)
}
