package repositories

import (
	"context"

	"github.com/rios0rios0/docsentinel/internal/domain/entities"
)

// RegistryRepository abstracts a source of "latest version" information for one manifest
// category (GitHub releases, crates.io, npm, PyPI).
type RegistryRepository interface {
	// Category returns the manifest category served (e.g. "repositories", "crates").
	Category() string

	// LatestRelease resolves the newest published version of the manifest item.
	LatestRelease(ctx context.Context, item entities.ManifestItem) (entities.Release, error)
}
