//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"

	"github.com/rios0rios0/docsentinel/internal/domain/repositories"
)

// StubContentRepository implements repositories.ContentRepository from an in-memory map.
type StubContentRepository struct {
	Contents map[string]string
	Errors   map[string]error

	// spy: URLs fetched, in order
	Fetched []string
}

var _ repositories.ContentRepository = (*StubContentRepository)(nil)

func (s *StubContentRepository) Fetch(_ context.Context, url string) (string, error) {
	s.Fetched = append(s.Fetched, url)
	if err, ok := s.Errors[url]; ok {
		return "", err
	}
	if content, ok := s.Contents[url]; ok {
		return content, nil
	}
	return "", fmt.Errorf("unexpected fetch of %q", url)
}
