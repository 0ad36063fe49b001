//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations, no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"

	"github.com/rios0rios0/docsentinel/internal/domain/entities"
	"github.com/rios0rios0/docsentinel/internal/domain/repositories"
)

// StubRegistryRepository implements repositories.RegistryRepository with canned releases.
type StubRegistryRepository struct {
	CategoryName string

	// Releases keyed by manifest item version-less identity (Name or RepositoryURL).
	Releases map[string]entities.Release
	Errors   map[string]error

	// spy: items looked up, in order
	LookedUp []entities.ManifestItem
}

var _ repositories.RegistryRepository = (*StubRegistryRepository)(nil)

func (s *StubRegistryRepository) Category() string { return s.CategoryName }

func (s *StubRegistryRepository) LatestRelease(
	_ context.Context,
	item entities.ManifestItem,
) (entities.Release, error) {
	s.LookedUp = append(s.LookedUp, item)

	key := item.Name
	if key == "" {
		key = item.RepositoryURL
	}
	if err, ok := s.Errors[key]; ok {
		return entities.Release{}, err
	}
	if release, ok := s.Releases[key]; ok {
		return release, nil
	}
	return entities.Release{}, fmt.Errorf("no release stubbed for %q", key)
}
