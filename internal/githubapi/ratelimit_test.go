package githubapi

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsRateLimited(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		remaining string
		reset     string
		want      bool
	}{
		{"403 with zero remaining", http.StatusForbidden, "0", "1717243200", true},
		{"403 with quota left", http.StatusForbidden, "12", "1717243200", false},
		{"403 without headers", http.StatusForbidden, "", "", false},
		{"429 is not the signature", http.StatusTooManyRequests, "0", "1717243200", false},
		{"200 never matches", http.StatusOK, "0", "1717243200", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := http.Header{}
			if tt.remaining != "" {
				h.Set(headerRateLimitRemaining, tt.remaining)
			}
			if tt.reset != "" {
				h.Set(headerRateLimitReset, tt.reset)
			}
			reset, ok := isRateLimited(tt.status, h)
			assert.Equal(t, tt.want, ok)
			if tt.want {
				assert.Equal(t, time.Unix(1717243200, 0), reset)
			}
		})
	}
}

func TestRateLimitStateUpdate(t *testing.T) {
	var s rateLimitState

	h := http.Header{}
	s.update(h)
	assert.False(t, s.known, "responses without headers leave state untouched")

	h.Set(headerRateLimitRemaining, "4999")
	h.Set(headerRateLimitReset, "1717243200")
	s.update(h)
	assert.True(t, s.known)
	assert.Equal(t, int64(4999), s.remaining)
	assert.Equal(t, time.Unix(1717243200, 0), s.reset)

	// Garbage headers are ignored rather than corrupting state.
	h.Set(headerRateLimitRemaining, "not-a-number")
	s.update(h)
	assert.Equal(t, int64(4999), s.remaining)
}
