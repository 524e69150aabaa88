package lsp

import (
	"context"
	"time"

	"github.com/vivikey/rust-analyzer/utils/logger"
)

// backoffExponents fixes the retry schedule: delay = 10ms << exp, giving
// 40ms, 160ms, 640ms, 2560ms, 10240ms, then one final attempt.
var backoffExponents = []uint{2, 4, 6, 8, 10}

// sleepFn is swapped out in tests to observe delays without real waits.
var sleepFn = sleep

// SendRequestWithRetry issues the request through client, retrying transient
// content-modified conflicts on a fixed backoff schedule before giving up.
//
// Exactly one of success or propagated failure resolves every call:
//   - success returns immediately, with no further attempts;
//   - cancellation propagates untouched, with no warning;
//   - any other non-transient failure propagates after a single warning
//     carrying method, params and the raw error;
//   - a content-modified failure on the final attempt propagates after the
//     same single warning.
func SendRequestWithRetry(ctx context.Context, client Client, method string, params, result any, log *logger.Logger) error {
	for attempt := 0; attempt <= len(backoffExponents); attempt++ {
		err := client.SendRequest(ctx, method, params, result)
		if err == nil {
			return nil
		}
		if IsCancellation(err) {
			return err
		}
		if attempt == len(backoffExponents) || !IsContentModified(err) {
			log.Warn("request", method, "failed with params:", params, "error:", err)
			return err
		}
		delay := 10 * time.Millisecond << backoffExponents[attempt]
		if serr := sleepFn(ctx, delay); serr != nil {
			return serr
		}
	}
	panic("unreachable: retry loop must resolve")
}

// sleep waits for d, returning early with ctx.Err() when the caller cancels.
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
