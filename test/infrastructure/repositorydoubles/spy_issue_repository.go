//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/docsentinel/internal/domain/entities"
	"github.com/rios0rios0/docsentinel/internal/domain/repositories"
)

// SpyIssueRepository implements repositories.IssueRepository as a configurable spy.
type SpyIssueRepository struct {
	// --- DefaultBranch ---
	Branch           string
	DefaultBranchErr error

	// --- ListIssues ---
	Issues        []entities.Issue
	ListIssuesErr error

	// --- ListComments ---
	Comments         map[int][]entities.IssueComment
	ListCommentsErr  error
	ListedCommentsOf []int

	// --- CreateIssue ---
	CreateIssueErr error
	IssueInputs    []entities.IssueInput

	// --- CreateComment ---
	CreateCommentErr error
	CommentCalls     []CommentCall
}

// CommentCall records a single invocation of CreateComment.
type CommentCall struct {
	Number int
	Body   string
}

var _ repositories.IssueRepository = (*SpyIssueRepository)(nil)

func (s *SpyIssueRepository) DefaultBranch(_ context.Context) (string, error) {
	if s.DefaultBranchErr != nil {
		return "", s.DefaultBranchErr
	}
	if s.Branch == "" {
		return "main", nil
	}
	return s.Branch, nil
}

func (s *SpyIssueRepository) ListIssues(_ context.Context) ([]entities.Issue, error) {
	return s.Issues, s.ListIssuesErr
}

func (s *SpyIssueRepository) ListComments(_ context.Context, number int) ([]entities.IssueComment, error) {
	s.ListedCommentsOf = append(s.ListedCommentsOf, number)
	if s.ListCommentsErr != nil {
		return nil, s.ListCommentsErr
	}
	return s.Comments[number], nil
}

func (s *SpyIssueRepository) CreateIssue(_ context.Context, input entities.IssueInput) (entities.Issue, error) {
	s.IssueInputs = append(s.IssueInputs, input)
	if s.CreateIssueErr != nil {
		return entities.Issue{}, s.CreateIssueErr
	}
	return entities.Issue{
		Number: 1000 + len(s.IssueInputs),
		Title:  input.Title,
		Body:   input.Body,
		State:  entities.IssueStateOpen,
		Labels: input.Labels,
	}, nil
}

func (s *SpyIssueRepository) CreateComment(_ context.Context, number int, body string) error {
	s.CommentCalls = append(s.CommentCalls, CommentCall{Number: number, Body: body})
	return s.CreateCommentErr
}

// MutationCount is the number of create calls received.
func (s *SpyIssueRepository) MutationCount() int {
	return len(s.IssueInputs) + len(s.CommentCalls)
}
