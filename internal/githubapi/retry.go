// Package githubapi provides a resilient client for the GitHub REST API.
//
// This file (retry.go) turns one logical request into a bounded sequence
// of attempts. It is structured as an explicit state machine so the two
// different waiting regimes stay separate: transient failures consume the
// retry budget and back off exponentially, while rate-limit responses
// wait until the quota window resets without consuming budget at all.
package githubapi

import (
	"context"
	"net/url"
	"time"

	"github.com/cenkalti/backoff"
	"go.uber.org/zap"
)

// Retry tuning constants.
const (
	defaultRetryAttempts  = 3
	defaultRetryDelay     = 5 * time.Second
	defaultRequestTimeout = 30 * time.Second
	backoffMultiplier     = 2.0
	maxBackoffInterval    = 2 * time.Minute

	// Small cushion added to rate-limit waits so the quota window has
	// actually rolled over before the next attempt.
	rateLimitResetBuffer = 5 * time.Second
)

// retryState enumerates the states of the retry machine.
type retryState int

const (
	stateAttempting retryState = iota
	stateBackoff
	stateRateLimitWait
	stateFailed
)

// retryPolicy is the immutable retry configuration for one client.
type retryPolicy struct {
	maxAttempts int
	baseDelay   time.Duration
	multiplier  float64
}

// newBackoff builds the delay schedule for one logical request:
// baseDelay * multiplier^(attempt-1), capped at maxBackoffInterval.
// Randomization is disabled so the schedule is deterministic.
func (p retryPolicy) newBackoff() *backoff.ExponentialBackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = p.baseDelay
	bo.Multiplier = p.multiplier
	bo.RandomizationFactor = 0
	bo.MaxInterval = maxBackoffInterval
	bo.MaxElapsedTime = 0
	bo.Reset()
	return bo
}

// retryController wraps an executor with bounded retry and rate-limit
// recovery. One controller serves one client; its rate limit state is
// never shared.
type retryController struct {
	exec   executor
	policy retryPolicy
	limits rateLimitState
	logger *zap.Logger

	// Injection points for tests.
	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

func newRetryController(exec executor, policy retryPolicy, logger *zap.Logger) *retryController {
	return &retryController{
		exec:   exec,
		policy: policy,
		logger: logger,
		now:    time.Now,
		sleep:  sleepContext,
	}
}

// execute runs the retry state machine for one logical request.
//
// Transitions:
//   - attempting → done: 2xx response (rate limit state updated from headers)
//   - attempting → done: non-rate-limit 4xx, returned as *ClientError with no retry
//   - attempting → backoff: transport failure or 5xx
//   - attempting → rateLimitWait: 403 with a zero remaining-quota header
//   - backoff → attempting: budget remains, after sleeping the scheduled delay
//   - backoff → failed: budget exhausted, returned as *ServerError
//   - rateLimitWait → attempting: after sleeping until the reset window,
//     with the attempt counter untouched
//
// Cancellation interrupts either wait and returns the context error
// unwrapped, so callers can distinguish it from terminal API failures.
func (rc *retryController) execute(ctx context.Context, method, rawURL string, params url.Values) (*response, error) {
	var (
		bo         = rc.policy.newBackoff()
		attempt    = 1
		lastStatus int
		lastErr    error
		rlReset    time.Time
	)

	state := stateAttempting
	for {
		switch state {
		case stateAttempting:
			resp, err := rc.exec.do(ctx, method, rawURL, params)
			switch {
			case err != nil:
				lastErr = err
				lastStatus = 0
				state = stateBackoff
			case resp.statusCode >= 500:
				lastErr = nil
				lastStatus = resp.statusCode
				state = stateBackoff
			case resp.statusCode >= 400:
				if reset, limited := isRateLimited(resp.statusCode, resp.header); limited {
					rlReset = reset
					state = stateRateLimitWait
					continue
				}
				return nil, &ClientError{
					StatusCode: resp.statusCode,
					URL:        rawURL,
					Body:       string(resp.body),
				}
			default:
				rc.limits.update(resp.header)
				return resp, nil
			}

		case stateBackoff:
			if attempt >= rc.policy.maxAttempts {
				state = stateFailed
				continue
			}
			delay := bo.NextBackOff()
			rc.logger.Warn("transient failure, backing off",
				zap.String("url", rawURL),
				zap.Int("attempt", attempt),
				zap.Int("status", lastStatus),
				zap.Duration("delay", delay),
				zap.Error(lastErr))
			if err := rc.sleep(ctx, delay); err != nil {
				return nil, err
			}
			attempt++
			state = stateAttempting

		case stateRateLimitWait:
			wait := rlReset.Sub(rc.now())
			if wait < 0 {
				wait = 0
			}
			wait += rateLimitResetBuffer
			rc.logger.Warn("rate limit exhausted, waiting for reset",
				zap.String("url", rawURL),
				zap.Time("reset", rlReset),
				zap.Duration("wait", wait))
			if err := rc.sleep(ctx, wait); err != nil {
				return nil, err
			}
			// Rate-limit waits do not consume the retry budget: waiting
			// out the window is guaranteed to make progress.
			state = stateAttempting

		case stateFailed:
			return nil, &ServerError{
				StatusCode: lastStatus,
				URL:        rawURL,
				Attempts:   attempt,
				Err:        lastErr,
			}
		}
	}
}

// sleepContext sleeps for d or until the context is cancelled, whichever
// comes first.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
