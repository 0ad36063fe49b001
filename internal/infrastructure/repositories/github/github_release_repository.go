package github

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	gh "github.com/google/go-github/v66/github"

	"github.com/rios0rios0/docsentinel/internal/domain/entities"
)

// GitHubReleaseRepository resolves the latest release tag of a source repository.
type GitHubReleaseRepository struct {
	client *gh.Client
}

func NewGitHubReleaseRepository(client *gh.Client) *GitHubReleaseRepository {
	return &GitHubReleaseRepository{client: client}
}

func (r *GitHubReleaseRepository) Category() string { return entities.CategoryRepositories }

// LatestRelease reads GET /repos/{owner}/{repo}/releases/latest, where owner and repo
// are the last two path segments of the item's repository URL.
func (r *GitHubReleaseRepository) LatestRelease(
	ctx context.Context,
	item entities.ManifestItem,
) (entities.Release, error) {
	owner, repo, err := parseRepositoryURL(item.RepositoryURL)
	if err != nil {
		return entities.Release{}, err
	}

	release, resp, err := r.client.Repositories.GetLatestRelease(ctx, owner, repo)
	if err != nil {
		return entities.Release{}, trackerError(fmt.Sprintf("latest release of %s/%s", owner, repo), resp, err)
	}
	if release.GetTagName() == "" {
		return entities.Release{}, fmt.Errorf("latest release of %s/%s has no tag", owner, repo)
	}
	return entities.Release{Version: release.GetTagName(), URL: release.GetHTMLURL()}, nil
}

func parseRepositoryURL(raw string) (string, string, error) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("invalid repository URL %q: %w", raw, err)
	}
	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(segments) < 2 || segments[len(segments)-2] == "" {
		return "", "", fmt.Errorf("repository URL %q does not name owner/repo", raw)
	}
	owner := segments[len(segments)-2]
	repo := strings.TrimSuffix(segments[len(segments)-1], ".git")
	return owner, repo, nil
}
