package repositories

import (
	"sort"

	domainRepos "github.com/rios0rios0/docsentinel/internal/domain/repositories"
)

// RegistryRegistry manages the registry lookups available per manifest category.
type RegistryRegistry struct {
	registries map[string]domainRepos.RegistryRepository
}

// NewRegistryRegistry creates an empty registry.
func NewRegistryRegistry() *RegistryRegistry {
	return &RegistryRegistry{
		registries: make(map[string]domainRepos.RegistryRepository),
	}
}

// Register adds a registry lookup under its category.
func (r *RegistryRegistry) Register(registry domainRepos.RegistryRepository) {
	r.registries[registry.Category()] = registry
}

// Get returns the lookup for category, or nil if none is registered.
func (r *RegistryRegistry) Get(category string) domainRepos.RegistryRepository {
	return r.registries[category]
}

// Categories returns the registered categories, sorted.
func (r *RegistryRegistry) Categories() []string {
	names := make([]string, 0, len(r.registries))
	for name := range r.registries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
