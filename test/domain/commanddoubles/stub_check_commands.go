//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/docsentinel/internal/domain/commands"
	"github.com/rios0rios0/docsentinel/internal/domain/entities"
)

// StubCheckDependenciesCommand is a stub implementation of commands.CheckDependencies.
type StubCheckDependenciesCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Report           *entities.Report
	LastOpts         commands.CheckDependenciesOptions
}

var _ commands.CheckDependencies = (*StubCheckDependenciesCommand)(nil)

func (s *StubCheckDependenciesCommand) Execute(
	_ context.Context,
	opts commands.CheckDependenciesOptions,
) (*entities.Report, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Report, s.ExecuteErr
}

// StubCheckSnippetsCommand is a stub implementation of commands.CheckSnippets.
type StubCheckSnippetsCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Report           *entities.Report
	LastOpts         commands.CheckSnippetsOptions
}

var _ commands.CheckSnippets = (*StubCheckSnippetsCommand)(nil)

func (s *StubCheckSnippetsCommand) Execute(
	_ context.Context,
	opts commands.CheckSnippetsOptions,
) (*entities.Report, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Report, s.ExecuteErr
}

// StubCreateIssuesCommand is a stub implementation of commands.CreateIssues.
type StubCreateIssuesCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Result           commands.CreateIssuesResult
	LastSettings     *entities.Settings
	LastOpts         commands.CreateIssuesOptions
}

var _ commands.CreateIssues = (*StubCreateIssuesCommand)(nil)

func (s *StubCreateIssuesCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.CreateIssuesOptions,
) (commands.CreateIssuesResult, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.Result, s.ExecuteErr
}

// StubNormalizeSnippetsCommand is a stub implementation of commands.NormalizeSnippets.
type StubNormalizeSnippetsCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Result           commands.NormalizeSnippetsResult
	LastOpts         commands.NormalizeSnippetsOptions
}

var _ commands.NormalizeSnippets = (*StubNormalizeSnippetsCommand)(nil)

func (s *StubNormalizeSnippetsCommand) Execute(
	_ context.Context,
	opts commands.NormalizeSnippetsOptions,
) (commands.NormalizeSnippetsResult, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Result, s.ExecuteErr
}
