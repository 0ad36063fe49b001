package entities

import (
	"encoding/json"
	"fmt"
	"os"
)

// OutdatedSnippet is a documentation location whose embedded snippet differs between
// the pinned and the latest version of its repository.
type OutdatedSnippet struct {
	File        string  `json:"file"`
	LineNumber  int     `json:"line_number"`
	CurrentURL  string  `json:"current_url"`
	LatestURL   string  `json:"latest_url"`
	CurrentCode *string `json:"current_code,omitempty"`
	LatestCode  *string `json:"latest_code,omitempty"`
}

// OutdatedDependency is a tracked dependency whose latest version differs from the pinned one.
type OutdatedDependency struct {
	Name             string             `json:"name"`
	Category         string             `json:"category"`
	CurrentVersion   string             `json:"current_version"`
	LatestVersion    string             `json:"latest_version"`
	LatestReleaseURL string             `json:"latest_release_url"`
	OutdatedSnippets *[]OutdatedSnippet `json:"outdated_snippets,omitempty"`
}

// Snippets returns the attached stale snippets, or nil when none were recorded.
func (d OutdatedDependency) Snippets() []OutdatedSnippet {
	if d.OutdatedSnippets == nil {
		return nil
	}
	return *d.OutdatedSnippets
}

// Report is the outdated-dependency report exchanged between the checker,
// the snippet auditor and the issue reconciler.
type Report struct {
	OutdatedDependencies []OutdatedDependency `json:"outdated_dependencies"`
	OutdatedCount        int                  `json:"outdated_count"`
}

// NewReport builds a report with a consistent count.
func NewReport(deps []OutdatedDependency) *Report {
	if deps == nil {
		deps = []OutdatedDependency{}
	}
	return &Report{OutdatedDependencies: deps, OutdatedCount: len(deps)}
}

// LoadReport reads a report JSON file.
func LoadReport(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read report %q: %w", path, err)
	}
	var report Report
	if unmarshalErr := json.Unmarshal(data, &report); unmarshalErr != nil {
		return nil, fmt.Errorf("report %q contains invalid JSON: %w", path, unmarshalErr)
	}
	return &report, nil
}

// Marshal encodes the report as indented JSON.
func (r *Report) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}
	return data, nil
}

// Write encodes the report to path.
func (r *Report) Write(path string) error {
	data, err := r.Marshal()
	if err != nil {
		return err
	}
	if writeErr := os.WriteFile(path, append(data, '\n'), 0o644); writeErr != nil { //nolint:gosec // report is public CI output
		return fmt.Errorf("failed to write report %q: %w", path, writeErr)
	}
	return nil
}

// RepositoryDependencies returns the entries of the repositories category.
func (r *Report) RepositoryDependencies() []OutdatedDependency {
	var result []OutdatedDependency
	for _, dep := range r.OutdatedDependencies {
		if dep.Category == CategoryRepositories {
			result = append(result, dep)
		}
	}
	return result
}

// MergeSnippets attaches stale snippets keyed by dependency name. Every repository
// dependency receives a list, empty when nothing is stale; other categories are untouched.
func (r *Report) MergeSnippets(byName map[string][]OutdatedSnippet) {
	for i := range r.OutdatedDependencies {
		dep := &r.OutdatedDependencies[i]
		if dep.Category != CategoryRepositories {
			continue
		}
		snippets := byName[dep.Name]
		if snippets == nil {
			snippets = []OutdatedSnippet{}
		}
		dep.OutdatedSnippets = &snippets
	}
}
