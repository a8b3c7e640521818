package store

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
)

const (
	retryBaseDelay  = 20 * time.Millisecond
	retryMaxRetries = 3
)

// withRetry runs op again when the driver reports a transient failure:
// a busy SQLite file, a dropped PostgreSQL connection, a deadlock.
// Any other error is returned after the first attempt.
func (db *DB) withRetry(ctx context.Context, op func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(retryMaxRetries, retry.NewFibonacci(retryBaseDelay))

	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := op(ctx)
		if err != nil && db.errorClassificator.Classify(err) == Retryable {
			db.logger.Warn().Err(err).Int("attempt", attempt).Msg("transient database error, retrying")
			return retry.RetryableError(err)
		}
		return err
	})
}
