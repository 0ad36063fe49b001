//go:build unit

package crates_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/docsentinel/internal/domain/entities"
	"github.com/rios0rios0/docsentinel/internal/infrastructure/repositories/crates"
	"github.com/rios0rios0/docsentinel/internal/infrastructure/repositories/httpclient"
)

func TestCratesRegistryRepositoryLatestRelease(t *testing.T) {
	t.Parallel()

	t.Run("should serve the CategoryCrates category", func(t *testing.T) {
		t.Parallel()

		// given
		repo := crates.NewCratesRegistryRepository(httpclient.NewClient(), crates.DefaultBaseURL)

		// when
		category := repo.Category()

		// then
		assert.Equal(t, entities.CategoryCrates, category)
	})

	t.Run("should read the latest version from the registry", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/crates/subxt" {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			_, _ = w.Write([]byte(`{"crate": {"max_stable_version": "0.41.0", "max_version": "0.42.0-rc"}}`))
		}))
		defer server.Close()
		repo := crates.NewCratesRegistryRepository(httpclient.NewClient(), server.URL)

		// when
		release, err := repo.LatestRelease(context.Background(), entities.ManifestItem{Name: "subxt", Version: "0.0.1"})

		// then
		require.NoError(t, err)
		assert.Equal(t, "0.41.0", release.Version)
		assert.Equal(t, "https://crates.io/crates/subxt/0.41.0", release.URL)
	})

	t.Run("should fail when the registry answers with an error", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()
		repo := crates.NewCratesRegistryRepository(httpclient.NewClient(), server.URL)

		// when
		_, err := repo.LatestRelease(context.Background(), entities.ManifestItem{Name: "subxt"})

		// then
		require.ErrorIs(t, err, httpclient.ErrUnexpectedStatus)
	})

	t.Run("should reject entries without a package name", func(t *testing.T) {
		t.Parallel()

		// given
		repo := crates.NewCratesRegistryRepository(httpclient.NewClient(), crates.DefaultBaseURL)

		// when
		_, err := repo.LatestRelease(context.Background(), entities.ManifestItem{Version: "1.0.0"})

		// then
		require.Error(t, err)
	})
}
