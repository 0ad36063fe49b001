package pypi

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

// DefaultBaseURL is the PyPI JSON API root.
const DefaultBaseURL = "https://pypi.org/pypi"

type projectResponse struct {
	Info struct {
		Version string `json:"version"`
	} `json:"info"`
}

// PyPIRegistryRepository resolves the current version of a Python package.
type PyPIRegistryRepository struct {
	client  *http.Client
	baseURL string
}

func NewPyPIRegistryRepository(client *http.Client, baseURL string) *PyPIRegistryRepository {
	return &PyPIRegistryRepository{client: client, baseURL: strings.TrimRight(baseURL, "/")}
}

func (r *PyPIRegistryRepository) Category() string { return entities.CategoryPythonPackages }

func (r *PyPIRegistryRepository) LatestRelease(
	ctx context.Context,
	item entities.ManifestItem,
) (entities.Release, error) {
	if item.Name == "" {
		return entities.Release{}, errors.New("package entry has no name")
	}

	var resp projectResponse
	endpoint := fmt.Sprintf("%s/%s/json", r.baseURL, url.PathEscape(item.Name))
	if err := httpclient.GetJSON(ctx, r.client, endpoint, &resp); err != nil {
		return entities.Release{}, err
	}

	version := resp.Info.Version
	if version == "" {
		return entities.Release{}, fmt.Errorf("package %q has no version", item.Name)
	}
	return entities.Release{
		Version: version,
		URL:     fmt.Sprintf("https://pypi.org/project/%s/%s/", item.Name, version),
	}, nil
}
