package entities

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Manifest categories understood by the dependency checker.
const (
	CategoryRepositories       = "repositories"
	CategoryCrates             = "crates"
	CategoryJavaScriptPackages = "javascript_packages"
	CategoryPythonPackages     = "python_packages"
)

// ManifestItem is a single tracked dependency inside the manifest.
type ManifestItem struct {
	Version       string `yaml:"version"`
	RepositoryURL string `yaml:"repository_url"` // repositories category
	Name          string `yaml:"name"`           // package registry categories
}

// Manifest is the YAML source of truth for tracked dependencies.
// Other top-level keys (the variables file doubles as the manifest) are ignored.
type Manifest struct {
	Dependencies map[string]map[string]ManifestItem `yaml:"dependencies"`
}

// TrackedDependency is a manifest entry flattened with its category and key.
type TrackedDependency struct {
	Category string
	Key      string
	Item     ManifestItem
}

// LoadManifest reads and parses the dependency manifest.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %q: %w", path, err)
	}
	return ParseManifest(data)
}

// ParseManifest decodes manifest YAML. Non-mapping entries under a category are rejected.
func ParseManifest(data []byte) (*Manifest, error) {
	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return &manifest, nil
}

// Flatten returns every tracked dependency sorted by category, then key.
func (m *Manifest) Flatten() []TrackedDependency {
	var result []TrackedDependency
	for category, items := range m.Dependencies {
		for key, item := range items {
			result = append(result, TrackedDependency{Category: category, Key: key, Item: item})
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Category != result[j].Category {
			return result[i].Category < result[j].Category
		}
		return result[i].Key < result[j].Key
	})
	return result
}

// Release is the latest published version of a dependency as reported by its registry.
type Release struct {
	Version string
	URL     string
}
