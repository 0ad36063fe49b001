package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/docsentinel/internal/domain/entities"
	"github.com/rios0rios0/docsentinel/internal/domain/repositories"
)

// CreateIssues is the interface for the create-issues command.
type CreateIssues interface {
	Execute(ctx context.Context, settings *entities.Settings, opts CreateIssuesOptions) (CreateIssuesResult, error)
}

// CreateIssuesOptions holds runtime options for a reconciler run.
type CreateIssuesOptions struct {
	ReportPath string
	DryRun     bool
	Limit      int // 0 reconciles every dependency
}

// CreateIssuesResult counts what happened to each dependency.
type CreateIssuesResult struct {
	Created   int
	Commented int
	Skipped   int
	Ignored   int
	Failed    int
}

type reconcileAction int

const (
	actionCreate reconcileAction = iota
	actionComment
	actionSkip
	actionIgnore
)

// CreateIssuesCommand keeps one tracking issue per outdated dependency, using hidden
// body markers to find the issue and to tell whether a version transition was posted.
type CreateIssuesCommand struct {
	factory repositories.IssueRepositoryFactory
	wait    func(ctx context.Context, d time.Duration) error
}

// NewCreateIssuesCommand creates a new CreateIssuesCommand.
func NewCreateIssuesCommand(factory repositories.IssueRepositoryFactory) *CreateIssuesCommand {
	return &CreateIssuesCommand{factory: factory, wait: waitFor}
}

// Execute reconciles every report entry against the tracker. Setup failures abort the
// run; per-dependency failures are logged and returned together at the end.
func (it *CreateIssuesCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts CreateIssuesOptions,
) (CreateIssuesResult, error) {
	var result CreateIssuesResult

	if err := settings.Validate(); err != nil {
		return result, err
	}
	report, err := entities.LoadReport(opts.ReportPath)
	if err != nil {
		return result, err
	}

	repo := it.factory(settings.Token, settings.Owner(), settings.Name())
	branch, err := repo.DefaultBranch(ctx)
	if err != nil {
		return result, fmt.Errorf("cannot access repository %q: %w", settings.Repository, err)
	}
	logger.Debugf("Repository %s (default branch %s)", settings.Repository, branch)

	issues, err := repo.ListIssues(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to list issues of %q: %w", settings.Repository, err)
	}
	index := entities.BuildIssueIndex(issues)
	logger.Infof("Indexed %d tracked dependencies from %d issues", len(index), len(issues))

	deps := report.OutdatedDependencies
	if opts.Limit > 0 && len(deps) > opts.Limit {
		deps = deps[:opts.Limit]
	}

	var failures *multierror.Error
	for _, dep := range deps {
		action, reconcileErr := it.reconcile(ctx, repo, index, dep, settings, opts.DryRun)
		if reconcileErr != nil {
			logTrackerFailure(dep.Name, reconcileErr)
			failures = multierror.Append(failures, fmt.Errorf("%s: %w", dep.Name, reconcileErr))
			result.Failed++
			continue
		}
		switch action {
		case actionCreate:
			result.Created++
		case actionComment:
			result.Commented++
		case actionSkip:
			result.Skipped++
		case actionIgnore:
			result.Ignored++
		}
	}

	logger.Infof(
		"Reconcile complete: %d created, %d commented, %d up to date, %d ignored, %d failed",
		result.Created, result.Commented, result.Skipped, result.Ignored, result.Failed,
	)
	return result, failures.ErrorOrNil()
}

func (it *CreateIssuesCommand) reconcile(
	ctx context.Context,
	repo repositories.IssueRepository,
	index entities.IssueIndex,
	dep entities.OutdatedDependency,
	settings *entities.Settings,
	dryRun bool,
) (reconcileAction, error) {
	bodyOpts := entities.IssueBodyOptions{MaxSnippets: settings.MaxSnippets, MaxDiffChars: settings.MaxDiffChars}
	issue, tracked := index[dep.Name]

	if !tracked || !issue.IsOpen() {
		if tracked {
			logger.Infof("[%s] Issue #%d is closed, opening a new one", dep.Name, issue.Number)
		}
		input := entities.IssueInput{
			Title:  entities.IssueTitle(dep),
			Body:   entities.IssueBody(dep, bodyOpts),
			Labels: settings.Labels,
		}
		if dryRun {
			logger.Infof("[dry-run] Would create issue %q", input.Title)
			return actionCreate, nil
		}
		created, err := repo.CreateIssue(ctx, input)
		if waitErr := it.wait(ctx, settings.MutationDelay); waitErr != nil && err == nil {
			err = waitErr
		}
		if err != nil {
			return actionCreate, err
		}
		logger.Infof("[%s] Created issue #%d: %s", dep.Name, created.Number, created.URL)
		index[dep.Name] = created
		return actionCreate, nil
	}

	marker := entities.VersionMarker(dep.CurrentVersion, dep.LatestVersion)
	if strings.Contains(issue.Body, marker) {
		logger.Infof("[%s] Issue #%d already tracks %s -> %s", dep.Name, issue.Number, dep.CurrentVersion, dep.LatestVersion)
		return actionSkip, nil
	}
	if issue.HasLabel(settings.IgnoreLabel) {
		logger.Infof("[%s] Issue #%d is labelled %q, not commenting", dep.Name, issue.Number, settings.IgnoreLabel)
		return actionIgnore, nil
	}

	posted, err := commentsContain(ctx, repo, issue.Number, marker)
	if err != nil {
		return actionComment, err
	}
	if posted {
		logger.Infof("[%s] Issue #%d already has a comment for %s -> %s",
			dep.Name, issue.Number, dep.CurrentVersion, dep.LatestVersion)
		return actionSkip, nil
	}

	if dryRun {
		logger.Infof("[dry-run] Would comment on issue #%d for %s", issue.Number, dep.Name)
		return actionComment, nil
	}
	err = repo.CreateComment(ctx, issue.Number, entities.IssueCommentBody(dep, bodyOpts))
	if waitErr := it.wait(ctx, settings.MutationDelay); waitErr != nil && err == nil {
		err = waitErr
	}
	if err != nil {
		return actionComment, err
	}
	logger.Infof("[%s] Commented on issue #%d", dep.Name, issue.Number)
	return actionComment, nil
}

func commentsContain(ctx context.Context, repo repositories.IssueRepository, number int, marker string) (bool, error) {
	comments, err := repo.ListComments(ctx, number)
	if err != nil {
		return false, err
	}
	for _, comment := range comments {
		if strings.Contains(comment.Body, marker) {
			return true, nil
		}
	}
	return false, nil
}

func logTrackerFailure(name string, err error) {
	var trackerErr *entities.TrackerError
	if errors.As(err, &trackerErr) && trackerErr.Retryable() {
		logger.Errorf("[%s] %v (looks transient, not retried)", name, err)
		return
	}
	logger.Errorf("[%s] %v", name, err)
}

// waitFor sleeps for d unless ctx is cancelled first.
func waitFor(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
