//go:build unit

package entities_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/docsentinel/internal/domain/entities"
)

func TestTrackerErrorRetryable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		status    int
		remaining int
		expected  bool
	}{
		{name: "should flag 429 as retryable", status: http.StatusTooManyRequests, remaining: 10, expected: true},
		{name: "should flag 502 as retryable", status: http.StatusBadGateway, remaining: entities.UnknownRateLimit, expected: true},
		{name: "should flag 503 as retryable", status: http.StatusServiceUnavailable, remaining: 5, expected: true},
		{name: "should flag 403 with exhausted quota as retryable", status: http.StatusForbidden, remaining: 0, expected: true},
		{name: "should treat 403 with quota left as hard failure", status: http.StatusForbidden, remaining: 42, expected: false},
		{name: "should treat 422 as hard failure", status: http.StatusUnprocessableEntity, remaining: 42, expected: false},
		{name: "should treat transport errors as hard failure", status: 0, remaining: entities.UnknownRateLimit, expected: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			err := &entities.TrackerError{Operation: "create issue", StatusCode: tt.status, RateLimitRemaining: tt.remaining, Err: errors.New("boom")}

			// when
			retryable := err.Retryable()

			// then
			assert.Equal(t, tt.expected, retryable)
		})
	}

	t.Run("should unwrap and describe the failure", func(t *testing.T) {
		t.Parallel()

		// given
		cause := errors.New("boom")
		err := &entities.TrackerError{Operation: "add comment", StatusCode: 403, RateLimitRemaining: 0, Err: cause}

		// then
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, "add comment failed (status 403, rate limit remaining 0): boom", err.Error())
	})
}
