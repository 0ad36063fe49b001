package repositories

import (
	"net/http"
	"os"

	"go.uber.org/dig"

	"github.com/rios0rios0/docsentinel/internal/domain/entities"
	domainRepos "github.com/rios0rios0/docsentinel/internal/domain/repositories"
	cratesRepo "github.com/rios0rios0/docsentinel/internal/infrastructure/repositories/crates"
	ghRepo "github.com/rios0rios0/docsentinel/internal/infrastructure/repositories/github"
	"github.com/rios0rios0/docsentinel/internal/infrastructure/repositories/httpclient"
	npmRepo "github.com/rios0rios0/docsentinel/internal/infrastructure/repositories/npm"
	pypiRepo "github.com/rios0rios0/docsentinel/internal/infrastructure/repositories/pypi"
)

// NewHTTPClient returns the shared pooled client.
func NewHTTPClient() *http.Client {
	return httpclient.NewClient()
}

// NewDefaultRegistryRegistry registers one lookup per manifest category. Release
// lookups authenticate with token when given, anonymously otherwise.
func NewDefaultRegistryRegistry(client *http.Client, token string) *RegistryRegistry {
	reg := NewRegistryRegistry()
	reg.Register(ghRepo.NewGitHubReleaseRepository(ghRepo.NewClient(client, token)))
	reg.Register(cratesRepo.NewCratesRegistryRepository(client, cratesRepo.DefaultBaseURL))
	reg.Register(npmRepo.NewNpmRegistryRepository(client, npmRepo.DefaultBaseURL))
	reg.Register(pypiRepo.NewPyPIRegistryRepository(client, pypiRepo.DefaultBaseURL))
	return reg
}

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(NewHTTPClient); err != nil {
		return err
	}

	// Register registry lookups for every manifest category
	if err := container.Provide(func(client *http.Client) *RegistryRegistry {
		return NewDefaultRegistryRegistry(client, os.Getenv(entities.DefaultTokenEnv))
	}); err != nil {
		return err
	}

	if err := container.Provide(func(client *http.Client) domainRepos.ContentRepository {
		return httpclient.NewContentRepository(client)
	}); err != nil {
		return err
	}

	if err := container.Provide(ghRepo.NewGitHubIssueRepositoryFactory); err != nil {
		return err
	}

	return nil
}
