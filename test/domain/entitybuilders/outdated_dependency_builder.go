//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/docsentinel/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// OutdatedDependencyBuilder helps create report entries with a fluent interface.
type OutdatedDependencyBuilder struct {
	*testkit.BaseBuilder
	name       string
	category   string
	currentVer string
	latestVer  string
	releaseURL string
	snippets   *[]entities.OutdatedSnippet
}

// NewOutdatedDependencyBuilder creates a new builder with sensible defaults.
func NewOutdatedDependencyBuilder() *OutdatedDependencyBuilder {
	return &OutdatedDependencyBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        "polkadot_sdk",
		category:    entities.CategoryRepositories,
		currentVer:  "v1.0.0",
		latestVer:   "v1.1.0",
		releaseURL:  "https://github.com/paritytech/polkadot-sdk/releases/tag/v1.1.0",
	}
}

// WithName sets the dependency name.
func (b *OutdatedDependencyBuilder) WithName(name string) *OutdatedDependencyBuilder {
	b.name = name
	return b
}

// WithCategory sets the manifest category.
func (b *OutdatedDependencyBuilder) WithCategory(category string) *OutdatedDependencyBuilder {
	b.category = category
	return b
}

// WithVersions sets the pinned and latest versions.
func (b *OutdatedDependencyBuilder) WithVersions(current, latest string) *OutdatedDependencyBuilder {
	b.currentVer = current
	b.latestVer = latest
	return b
}

// WithReleaseURL sets the latest release link.
func (b *OutdatedDependencyBuilder) WithReleaseURL(url string) *OutdatedDependencyBuilder {
	b.releaseURL = url
	return b
}

// WithSnippets attaches stale snippets.
func (b *OutdatedDependencyBuilder) WithSnippets(snippets ...entities.OutdatedSnippet) *OutdatedDependencyBuilder {
	list := append([]entities.OutdatedSnippet{}, snippets...)
	b.snippets = &list
	return b
}

// Build creates the dependency (satisfies testkit.Builder interface).
func (b *OutdatedDependencyBuilder) Build() interface{} {
	return b.BuildOutdatedDependency()
}

// BuildOutdatedDependency creates the dependency with a concrete return type.
func (b *OutdatedDependencyBuilder) BuildOutdatedDependency() entities.OutdatedDependency {
	return entities.OutdatedDependency{
		Name:             b.name,
		Category:         b.category,
		CurrentVersion:   b.currentVer,
		LatestVersion:    b.latestVer,
		LatestReleaseURL: b.releaseURL,
		OutdatedSnippets: b.snippets,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *OutdatedDependencyBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	fresh := NewOutdatedDependencyBuilder()
	b.name = fresh.name
	b.category = fresh.category
	b.currentVer = fresh.currentVer
	b.latestVer = fresh.latestVer
	b.releaseURL = fresh.releaseURL
	b.snippets = nil
	return b
}

// Clone creates a deep copy of the OutdatedDependencyBuilder.
func (b *OutdatedDependencyBuilder) Clone() testkit.Builder {
	clone := &OutdatedDependencyBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:        b.name,
		category:    b.category,
		currentVer:  b.currentVer,
		latestVer:   b.latestVer,
		releaseURL:  b.releaseURL,
	}
	if b.snippets != nil {
		list := append([]entities.OutdatedSnippet{}, *b.snippets...)
		clone.snippets = &list
	}
	return clone
}
