//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/docsentinel/internal/domain/commands"
	"github.com/rios0rios0/docsentinel/internal/domain/entities"
)

// StubGeneratePagesCommand is a stub implementation of commands.GeneratePages.
type StubGeneratePagesCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Result           commands.GeneratePagesResult
	LastConfig       *entities.PipelineConfig
	LastOpts         commands.GeneratePagesOptions

	// Calls, when set, records the stage name of every stubbed command invoked
	Calls *[]string
}

var _ commands.GeneratePages = (*StubGeneratePagesCommand)(nil)

func (s *StubGeneratePagesCommand) Execute(
	_ context.Context,
	cfg *entities.PipelineConfig,
	opts commands.GeneratePagesOptions,
) (commands.GeneratePagesResult, error) {
	s.ExecuteCallCount++
	s.LastConfig = cfg
	s.LastOpts = opts
	record(s.Calls, "pages")
	return s.Result, s.ExecuteErr
}

// StubGenerateLLMSTxtCommand is a stub implementation of commands.GenerateLLMSTxt.
type StubGenerateLLMSTxtCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Text             string
	LastOpts         commands.GenerateLLMSTxtOptions
	Calls            *[]string
}

var _ commands.GenerateLLMSTxt = (*StubGenerateLLMSTxtCommand)(nil)

func (s *StubGenerateLLMSTxtCommand) Execute(
	_ context.Context,
	_ *entities.PipelineConfig,
	opts commands.GenerateLLMSTxtOptions,
) (string, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	record(s.Calls, "llms.txt")
	return s.Text, s.ExecuteErr
}

// StubGenerateIndexCommand is a stub implementation of commands.GenerateIndex.
type StubGenerateIndexCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Result           commands.GenerateIndexResult
	LastOpts         commands.GenerateIndexOptions
	Calls            *[]string
}

var _ commands.GenerateIndex = (*StubGenerateIndexCommand)(nil)

func (s *StubGenerateIndexCommand) Execute(
	_ context.Context,
	_ *entities.PipelineConfig,
	opts commands.GenerateIndexOptions,
) (commands.GenerateIndexResult, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	record(s.Calls, "index")
	return s.Result, s.ExecuteErr
}

// StubGenerateBundlesCommand is a stub implementation of commands.GenerateBundles.
type StubGenerateBundlesCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Bundles          []entities.Bundle
	LastOpts         commands.GenerateBundlesOptions
	Calls            *[]string
}

var _ commands.GenerateBundles = (*StubGenerateBundlesCommand)(nil)

func (s *StubGenerateBundlesCommand) Execute(
	_ context.Context,
	_ *entities.PipelineConfig,
	opts commands.GenerateBundlesOptions,
) ([]entities.Bundle, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	record(s.Calls, "bundles")
	return s.Bundles, s.ExecuteErr
}

// StubGenerateLLMSCommand is a stub implementation of commands.GenerateLLMS.
type StubGenerateLLMSCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastConfig       *entities.PipelineConfig
	LastOpts         commands.GenerateLLMSOptions
}

var _ commands.GenerateLLMS = (*StubGenerateLLMSCommand)(nil)

func (s *StubGenerateLLMSCommand) Execute(
	_ context.Context,
	cfg *entities.PipelineConfig,
	opts commands.GenerateLLMSOptions,
) error {
	s.ExecuteCallCount++
	s.LastConfig = cfg
	s.LastOpts = opts
	return s.ExecuteErr
}

func record(calls *[]string, stage string) {
	if calls != nil {
		*calls = append(*calls, stage)
	}
}
