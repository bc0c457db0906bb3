// Package githubapi provides a resilient client for the GitHub REST API.
//
// This file (ratelimit.go) tracks the REST API rate limit for one client
// instance and detects the rate-limit response signature. GitHub reports
// quota via the X-RateLimit-Remaining and X-RateLimit-Reset headers and
// signals exhaustion with HTTP 403 plus a zero remaining count.
package githubapi

import (
	"net/http"
	"strconv"
	"time"
)

const (
	headerRateLimitRemaining = "X-RateLimit-Remaining"
	headerRateLimitReset     = "X-RateLimit-Reset"
)

// rateLimitState holds the most recent rate limit headers seen by one
// retry controller. Each client owns its own instance; requests from one
// client are serial, so no locking is needed.
type rateLimitState struct {
	remaining int64
	reset     time.Time
	known     bool
}

// update records the rate limit headers from a successful response.
// Responses without rate limit headers leave the state untouched.
func (s *rateLimitState) update(h http.Header) {
	remaining, ok := parseIntHeader(h, headerRateLimitRemaining)
	if !ok {
		return
	}
	s.remaining = remaining
	s.known = true
	if reset, ok := parseIntHeader(h, headerRateLimitReset); ok {
		s.reset = time.Unix(reset, 0)
	}
}

// isRateLimited reports whether the response carries the rate-limit
// signature: HTTP 403 with a zero remaining-request count. Plain 403s
// (missing permissions, forbidden resources) do not match and are
// treated as client errors.
func isRateLimited(statusCode int, h http.Header) (reset time.Time, ok bool) {
	if statusCode != http.StatusForbidden {
		return time.Time{}, false
	}
	remaining, found := parseIntHeader(h, headerRateLimitRemaining)
	if !found || remaining != 0 {
		return time.Time{}, false
	}
	if epoch, found := parseIntHeader(h, headerRateLimitReset); found {
		return time.Unix(epoch, 0), true
	}
	return time.Time{}, true
}

func parseIntHeader(h http.Header, name string) (int64, bool) {
	v := h.Get(name)
	if v == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
