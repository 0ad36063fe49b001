package repositories

import (
	"context"

	"github.com/rios0rios0/docsentinel/internal/domain/entities"
)

// IssueRepository abstracts the issue tracker of a single repository.
type IssueRepository interface {
	// DefaultBranch reads the repository metadata; it doubles as an access check.
	DefaultBranch(ctx context.Context) (string, error)

	// ListIssues returns every issue (open and closed, pull requests excluded),
	// newest first, following pagination to the end.
	ListIssues(ctx context.Context) ([]entities.Issue, error)

	// ListComments returns all comments of an issue in creation order.
	ListComments(ctx context.Context, number int) ([]entities.IssueComment, error)

	CreateIssue(ctx context.Context, input entities.IssueInput) (entities.Issue, error)

	CreateComment(ctx context.Context, number int, body string) error
}

// IssueRepositoryFactory builds an IssueRepository for "owner/name" once the
// token is known at run time.
type IssueRepositoryFactory func(token, owner, name string) IssueRepository
