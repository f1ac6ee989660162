package crawl

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docboost"
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, url string) (string, error)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// Retryable reports whether a fetch error may succeed on another attempt.
// Application errors, such as a missing page or an oversized body, are final.
func Retryable(err error) bool {
	return err != nil && docboost.ErrorCode(err) == docboost.EINTERNAL
}

// FetchWithRetryDelays calls fetch until it succeeds or fails with an error
// that is not Retryable. delays[i] is slept before retry i+1, so at most
// len(delays)+1 attempts are made.
func FetchWithRetryDelays(ctx context.Context, url string, fetch FetchFunc, logger *slog.Logger, delays []time.Duration) (string, error) {
	for attempt := 0; ; attempt++ {
		html, err := fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		if attempt == len(delays) || !Retryable(err) {
			return "", err
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		if logger != nil {
			logger.DebugContext(ctx, "retrying fetch", "url", url, "attempt", attempt+2, "delay", delays[attempt], "err", err)
		}

		timer := time.NewTimer(delays[attempt])
		select {
		case <-ctx.Done():
			timer.Stop()
			return "", ctx.Err()
		case <-timer.C:
		}
	}
}
