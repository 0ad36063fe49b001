package crates

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/rios0rios0/docsentinel/internal/domain/entities"
	"github.com/rios0rios0/docsentinel/internal/infrastructure/repositories/httpclient"
)

// DefaultBaseURL is the crates.io API root.
const DefaultBaseURL = "https://crates.io/api/v1"

type crateResponse struct {
	Crate struct {
		MaxStableVersion string `json:"max_stable_version"`
	} `json:"crate"`
}

// CratesRegistryRepository resolves the latest stable version of a Rust crate.
type CratesRegistryRepository struct {
	client  *http.Client
	baseURL string
}

func NewCratesRegistryRepository(client *http.Client, baseURL string) *CratesRegistryRepository {
	return &CratesRegistryRepository{client: client, baseURL: strings.TrimRight(baseURL, "/")}
}

func (r *CratesRegistryRepository) Category() string { return entities.CategoryCrates }

func (r *CratesRegistryRepository) LatestRelease(
	ctx context.Context,
	item entities.ManifestItem,
) (entities.Release, error) {
	if item.Name == "" {
		return entities.Release{}, errors.New("crate entry has no name")
	}

	var resp crateResponse
	endpoint := fmt.Sprintf("%s/crates/%s", r.baseURL, url.PathEscape(item.Name))
	if err := httpclient.GetJSON(ctx, r.client, endpoint, &resp); err != nil {
		return entities.Release{}, err
	}

	version := resp.Crate.MaxStableVersion
	if version == "" {
		return entities.Release{}, fmt.Errorf("crate %q has no stable version", item.Name)
	}
	return entities.Release{
		Version: version,
		URL:     fmt.Sprintf("https://crates.io/crates/%s/%s", item.Name, version),
	}, nil
}
