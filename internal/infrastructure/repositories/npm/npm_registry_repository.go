package npm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/rios0rios0/docsentinel/internal/domain/entities"
	"github.com/rios0rios0/docsentinel/internal/infrastructure/repositories/httpclient"
)

// DefaultBaseURL is the public npm registry.
const DefaultBaseURL = "https://registry.npmjs.org"

type packageResponse struct {
	DistTags struct {
		Latest string `json:"latest"`
	} `json:"dist-tags"`
}

// NpmRegistryRepository resolves the "latest" dist-tag of an npm package.
type NpmRegistryRepository struct {
	client  *http.Client
	baseURL string
}

func NewNpmRegistryRepository(client *http.Client, baseURL string) *NpmRegistryRepository {
	return &NpmRegistryRepository{client: client, baseURL: strings.TrimRight(baseURL, "/")}
}

func (r *NpmRegistryRepository) Category() string { return entities.CategoryJavaScriptPackages }

func (r *NpmRegistryRepository) LatestRelease(
	ctx context.Context,
	item entities.ManifestItem,
) (entities.Release, error) {
	if item.Name == "" {
		return entities.Release{}, errors.New("package entry has no name")
	}

	// scoped names keep their "@scope/" prefix; only the slash is escaped
	var resp packageResponse
	endpoint := fmt.Sprintf("%s/%s", r.baseURL, strings.ReplaceAll(item.Name, "/", "%2F"))
	if err := httpclient.GetJSON(ctx, r.client, endpoint, &resp); err != nil {
		return entities.Release{}, err
	}

	version := resp.DistTags.Latest
	if version == "" {
		return entities.Release{}, fmt.Errorf("package %q has no latest dist-tag", item.Name)
	}
	return entities.Release{
		Version: version,
		URL:     fmt.Sprintf("https://www.npmjs.com/package/%s/v/%s", item.Name, version),
	}, nil
}
