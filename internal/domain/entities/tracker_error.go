package entities

import (
	"fmt"
	"net/http"
)

// UnknownRateLimit marks a response without an X-RateLimit-Remaining header.
const UnknownRateLimit = -1

// TrackerError is a failed issue-tracker call with the response details needed to
// tell rate limiting and gateway hiccups apart from hard failures.
type TrackerError struct {
	Operation          string
	StatusCode         int // 0 when no response was received
	RateLimitRemaining int
	Err                error
}

func (e *TrackerError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s failed: %v", e.Operation, e.Err)
	}
	return fmt.Sprintf("%s failed (status %d, rate limit remaining %s): %v",
		e.Operation, e.StatusCode, e.remainingText(), e.Err)
}

func (e *TrackerError) Unwrap() error {
	return e.Err
}

// Retryable reports whether the failure looks transient: rate limiting (403 with no
// remaining quota, or 429) or a gateway error (502, 503). Nothing retries automatically.
func (e *TrackerError) Retryable() bool {
	switch e.StatusCode {
	case http.StatusTooManyRequests, http.StatusBadGateway, http.StatusServiceUnavailable:
		return true
	case http.StatusForbidden:
		return e.RateLimitRemaining == 0 || e.RateLimitRemaining == UnknownRateLimit
	default:
		return false
	}
}

func (e *TrackerError) remainingText() string {
	if e.RateLimitRemaining == UnknownRateLimit {
		return "unknown"
	}
	return fmt.Sprintf("%d", e.RateLimitRemaining)
}
