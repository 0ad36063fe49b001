package github

import (
	"net/http"
	"net/url"
	"strconv"

	gh "github.com/google/go-github/v66/github"

	"github.com/rios0rios0/docsentinel/internal/domain/entities"
	"github.com/rios0rios0/docsentinel/internal/infrastructure/repositories/httpclient"
)

const perPage = 100

// NewClient builds a go-github client on top of the shared HTTP client. An empty token
// yields an anonymous client.
func NewClient(httpClient *http.Client, token string) *gh.Client {
	client := gh.NewClient(httpClient)
	if token != "" {
		client = client.WithAuthToken(token)
	}
	client.UserAgent = httpclient.UserAgent
	return client
}

// WithBaseURL points client at another API root (GitHub Enterprise or a test server).
func WithBaseURL(client *gh.Client, baseURL string) (*gh.Client, error) {
	if baseURL == "" {
		return client, nil
	}
	if baseURL[len(baseURL)-1] != '/' {
		baseURL += "/"
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	client.BaseURL = parsed
	return client, nil
}

// trackerError captures status and rate-limit details of a failed API call.
func trackerError(operation string, resp *gh.Response, err error) error {
	result := &entities.TrackerError{
		Operation:          operation,
		RateLimitRemaining: entities.UnknownRateLimit,
		Err:                err,
	}
	if resp != nil && resp.Response != nil {
		result.StatusCode = resp.StatusCode
		if remaining, parseErr := strconv.Atoi(resp.Header.Get("X-RateLimit-Remaining")); parseErr == nil {
			result.RateLimitRemaining = remaining
		}
	}
	return result
}
