package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/rios0rios0/docsentinel/internal/domain/entities"
)

// artifact is a generated page read back together with its modification time.
type artifact struct {
	Page     entities.AIPage
	Modified time.Time
}

// loadArtifacts reads dir/*.md in name order, keeping at most limit pages (0 = all).
func loadArtifacts(dir string, limit int) ([]artifact, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.md"))
	if err != nil {
		return nil, fmt.Errorf("failed to list pages in %q: %w", dir, err)
	}
	sort.Strings(paths)
	if limit > 0 && len(paths) > limit {
		paths = paths[:limit]
	}

	artifacts := make([]artifact, 0, len(paths))
	for _, path := range paths {
		info, statErr := os.Stat(path)
		if statErr != nil {
			return nil, fmt.Errorf("failed to stat page %q: %w", path, statErr)
		}
		page, readErr := entities.ReadAIPage(path)
		if readErr != nil {
			return nil, readErr
		}
		artifacts = append(artifacts, artifact{Page: page, Modified: info.ModTime()})
	}
	return artifacts, nil
}

func artifactPages(artifacts []artifact) []entities.AIPage {
	pages := make([]entities.AIPage, 0, len(artifacts))
	for _, a := range artifacts {
		pages = append(pages, a.Page)
	}
	return pages
}

// writeArtifact writes data to path, creating parent directories.
func writeArtifact(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { //nolint:gosec // generated artifacts are public
		return fmt.Errorf("failed to create directory for %q: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // generated artifacts are public
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	return nil
}

// marshalJSON encodes v as indented JSON without HTML escaping.
func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode JSON: %w", err)
	}
	return buf.Bytes(), nil
}

// marshalJSONLines encodes one compact JSON object per line.
func marshalJSONLines[T any](records []T) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	for _, record := range records {
		if err := encoder.Encode(record); err != nil {
			return nil, fmt.Errorf("failed to encode JSON line: %w", err)
		}
	}
	return buf.Bytes(), nil
}
