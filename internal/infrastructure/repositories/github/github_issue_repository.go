package github

import (
	"context"
	"fmt"
	"net/http"

	gh "github.com/google/go-github/v66/github"

	"github.com/rios0rios0/docsentinel/internal/domain/entities"
	"github.com/rios0rios0/docsentinel/internal/domain/repositories"
)

// GitHubIssueRepository implements repositories.IssueRepository for one GitHub repository.
type GitHubIssueRepository struct {
	client *gh.Client
	owner  string
	name   string
}

func NewGitHubIssueRepository(client *gh.Client, owner, name string) *GitHubIssueRepository {
	return &GitHubIssueRepository{client: client, owner: owner, name: name}
}

// NewGitHubIssueRepositoryFactory binds the shared HTTP client into a factory that
// produces authenticated issue repositories.
func NewGitHubIssueRepositoryFactory(httpClient *http.Client) repositories.IssueRepositoryFactory {
	return func(token, owner, name string) repositories.IssueRepository {
		return NewGitHubIssueRepository(NewClient(httpClient, token), owner, name)
	}
}

func (r *GitHubIssueRepository) DefaultBranch(ctx context.Context) (string, error) {
	repo, resp, err := r.client.Repositories.Get(ctx, r.owner, r.name)
	if err != nil {
		return "", trackerError(fmt.Sprintf("read repository %s/%s", r.owner, r.name), resp, err)
	}
	return repo.GetDefaultBranch(), nil
}

// ListIssues pages through every issue, newest first, dropping pull requests.
func (r *GitHubIssueRepository) ListIssues(ctx context.Context) ([]entities.Issue, error) {
	var all []entities.Issue
	opts := &gh.IssueListByRepoOptions{
		State:       "all",
		Sort:        "created",
		Direction:   "desc",
		ListOptions: gh.ListOptions{PerPage: perPage},
	}

	for {
		issues, resp, err := r.client.Issues.ListByRepo(ctx, r.owner, r.name, opts)
		if err != nil {
			return nil, trackerError("list issues", resp, err)
		}

		for _, issue := range issues {
			if issue.IsPullRequest() {
				continue
			}
			all = append(all, toIssue(issue))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return all, nil
}

func (r *GitHubIssueRepository) ListComments(ctx context.Context, number int) ([]entities.IssueComment, error) {
	var all []entities.IssueComment
	opts := &gh.IssueListCommentsOptions{
		ListOptions: gh.ListOptions{PerPage: perPage},
	}

	for {
		comments, resp, err := r.client.Issues.ListComments(ctx, r.owner, r.name, number, opts)
		if err != nil {
			return nil, trackerError(fmt.Sprintf("list comments of #%d", number), resp, err)
		}

		for _, comment := range comments {
			all = append(all, entities.IssueComment{ID: comment.GetID(), Body: comment.GetBody()})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return all, nil
}

func (r *GitHubIssueRepository) CreateIssue(ctx context.Context, input entities.IssueInput) (entities.Issue, error) {
	req := &gh.IssueRequest{
		Title: gh.String(input.Title),
		Body:  gh.String(input.Body),
	}
	if len(input.Labels) > 0 {
		labels := input.Labels
		req.Labels = &labels
	}

	issue, resp, err := r.client.Issues.Create(ctx, r.owner, r.name, req)
	if err != nil {
		return entities.Issue{}, trackerError(fmt.Sprintf("create issue %q", input.Title), resp, err)
	}
	return toIssue(issue), nil
}

func (r *GitHubIssueRepository) CreateComment(ctx context.Context, number int, body string) error {
	_, resp, err := r.client.Issues.CreateComment(ctx, r.owner, r.name, number, &gh.IssueComment{
		Body: gh.String(body),
	})
	if err != nil {
		return trackerError(fmt.Sprintf("comment on #%d", number), resp, err)
	}
	return nil
}

func toIssue(issue *gh.Issue) entities.Issue {
	labels := make([]string, 0, len(issue.Labels))
	for _, label := range issue.Labels {
		labels = append(labels, label.GetName())
	}
	return entities.Issue{
		Number:    issue.GetNumber(),
		Title:     issue.GetTitle(),
		Body:      issue.GetBody(),
		State:     issue.GetState(),
		Labels:    labels,
		CreatedAt: issue.GetCreatedAt().Time,
		URL:       issue.GetHTMLURL(),
	}
}
