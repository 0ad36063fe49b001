package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/docsentinel/internal/domain/entities"
)

// GenerateLLMSTxt is the interface for the generate-llms-txt command.
type GenerateLLMSTxt interface {
	Execute(ctx context.Context, cfg *entities.PipelineConfig, opts GenerateLLMSTxtOptions) (string, error)
}

// GenerateLLMSTxtOptions holds runtime options for llms.txt generation.
type GenerateLLMSTxtOptions struct {
	DryRun bool
}

// GenerateLLMSTxtCommand writes llms.txt, the category map of every page artifact.
type GenerateLLMSTxtCommand struct{}

// NewGenerateLLMSTxtCommand creates a new GenerateLLMSTxtCommand.
func NewGenerateLLMSTxtCommand() *GenerateLLMSTxtCommand {
	return &GenerateLLMSTxtCommand{}
}

// Execute renders llms.txt from the artifacts and returns its text.
func (it *GenerateLLMSTxtCommand) Execute(
	_ context.Context,
	cfg *entities.PipelineConfig,
	opts GenerateLLMSTxtOptions,
) (string, error) {
	artifacts, err := loadArtifacts(cfg.PagesDir(), 0)
	if err != nil {
		return "", err
	}

	text := entities.RenderLLMSTxt(entities.LLMSTxtInput{
		ProjectName:     cfg.Project.Name,
		Summary:         cfg.Project.DocsBaseURL,
		RawBase:         cfg.RawBase(),
		CategoriesOrder: cfg.Content.CategoriesOrder,
		Pages:           artifactPages(artifacts),
	})

	if opts.DryRun {
		logger.Infof("[dry-run] Would write %s (%d pages)", cfg.LLMSTxtPath(), len(artifacts))
		return text, nil
	}
	if writeErr := writeArtifact(cfg.LLMSTxtPath(), []byte(text)); writeErr != nil {
		return "", writeErr
	}
	logger.Infof("llms.txt written: %s (pages=%d)", cfg.LLMSTxtPath(), len(artifacts))
	return text, nil
}
