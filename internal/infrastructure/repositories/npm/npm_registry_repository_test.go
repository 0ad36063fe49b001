//go:build unit

package npm_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/docsentinel/internal/domain/entities"
	"github.com/rios0rios0/docsentinel/internal/infrastructure/repositories/httpclient"
	"github.com/rios0rios0/docsentinel/internal/infrastructure/repositories/npm"
)

func TestNpmRegistryRepositoryLatestRelease(t *testing.T) {
	t.Parallel()

	t.Run("should serve the CategoryJavaScriptPackages category", func(t *testing.T) {
		t.Parallel()

		// given
		repo := npm.NewNpmRegistryRepository(httpclient.NewClient(), npm.DefaultBaseURL)

		// when
		category := repo.Category()

		// then
		assert.Equal(t, entities.CategoryJavaScriptPackages, category)
	})

	t.Run("should read the latest version from the registry", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/@polkadot/api" {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			_, _ = w.Write([]byte(`{"dist-tags": {"latest": "15.0.1", "next": "16.0.0-1"}}`))
		}))
		defer server.Close()
		repo := npm.NewNpmRegistryRepository(httpclient.NewClient(), server.URL)

		// when
		release, err := repo.LatestRelease(context.Background(), entities.ManifestItem{Name: "@polkadot/api", Version: "0.0.1"})

		// then
		require.NoError(t, err)
		assert.Equal(t, "15.0.1", release.Version)
		assert.Equal(t, "https://www.npmjs.com/package/@polkadot/api/v/15.0.1", release.URL)
	})

	t.Run("should fail when the registry answers with an error", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()
		repo := npm.NewNpmRegistryRepository(httpclient.NewClient(), server.URL)

		// when
		_, err := repo.LatestRelease(context.Background(), entities.ManifestItem{Name: "@polkadot/api"})

		// then
		require.ErrorIs(t, err, httpclient.ErrUnexpectedStatus)
	})

	t.Run("should reject entries without a package name", func(t *testing.T) {
		t.Parallel()

		// given
		repo := npm.NewNpmRegistryRepository(httpclient.NewClient(), npm.DefaultBaseURL)

		// when
		_, err := repo.LatestRelease(context.Background(), entities.ManifestItem{Version: "1.0.0"})

		// then
		require.Error(t, err)
	})
}
