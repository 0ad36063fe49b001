//go:build unit

package github_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	gh "github.com/google/go-github/v66/github"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/docsentinel/internal/infrastructure/repositories/github"
	"github.com/rios0rios0/docsentinel/internal/infrastructure/repositories/httpclient"
)

func newTestClient(t *testing.T, mux *http.ServeMux) *gh.Client {
	t.Helper()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client, err := github.WithBaseURL(github.NewClient(httpclient.NewClient(), "test-token"), server.URL)
	require.NoError(t, err)
	return client
}
