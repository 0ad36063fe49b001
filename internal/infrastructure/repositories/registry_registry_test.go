//go:build unit

package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/docsentinel/internal/domain/entities"
	infraRepos "github.com/rios0rios0/docsentinel/internal/infrastructure/repositories"
	doubles "github.com/rios0rios0/docsentinel/test/infrastructure/repositorydoubles"
)

func TestRegistryRegistry(t *testing.T) {
	t.Parallel()

	t.Run("should return registered lookups by category", func(t *testing.T) {
		t.Parallel()

		// given
		crates := &doubles.StubRegistryRepository{CategoryName: entities.CategoryCrates}
		npm := &doubles.StubRegistryRepository{CategoryName: entities.CategoryJavaScriptPackages}
		registry := infraRepos.NewRegistryRegistry()

		// when
		registry.Register(npm)
		registry.Register(crates)

		// then
		assert.Same(t, crates, registry.Get(entities.CategoryCrates))
		assert.Nil(t, registry.Get("unknown"))
		assert.Equal(t, []string{entities.CategoryCrates, entities.CategoryJavaScriptPackages}, registry.Categories())
	})
}

func TestDefaultRegistryRegistry(t *testing.T) {
	t.Parallel()

	t.Run("should cover every manifest category", func(t *testing.T) {
		t.Parallel()

		// when
		registry := infraRepos.NewDefaultRegistryRegistry(infraRepos.NewHTTPClient(), "")

		// then
		assert.Equal(t, []string{
			entities.CategoryCrates,
			entities.CategoryJavaScriptPackages,
			entities.CategoryPythonPackages,
			entities.CategoryRepositories,
		}, registry.Categories())
	})
}
