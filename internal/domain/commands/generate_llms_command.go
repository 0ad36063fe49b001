package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/docsentinel/internal/domain/entities"
)

// GenerateLLMS is the interface for the generate-llms command.
type GenerateLLMS interface {
	Execute(ctx context.Context, cfg *entities.PipelineConfig, opts GenerateLLMSOptions) error
}

// GenerateLLMSOptions holds runtime options shared by every pipeline stage.
type GenerateLLMSOptions struct {
	DryRun         bool
	NoRemote       bool
	TokenEstimator string
}

// GenerateLLMSCommand runs the full artifact pipeline: pages, llms.txt, site index
// with sections, then Markdown bundles.
type GenerateLLMSCommand struct {
	pages   GeneratePages
	llmsTxt GenerateLLMSTxt
	index   GenerateIndex
	bundles GenerateBundles
}

// NewGenerateLLMSCommand creates a new GenerateLLMSCommand.
func NewGenerateLLMSCommand(
	pages GeneratePages,
	llmsTxt GenerateLLMSTxt,
	index GenerateIndex,
	bundles GenerateBundles,
) *GenerateLLMSCommand {
	return &GenerateLLMSCommand{pages: pages, llmsTxt: llmsTxt, index: index, bundles: bundles}
}

// Execute runs the stages in order. Pages that failed to resolve do not stop the
// later stages, but their errors are returned once the pipeline finishes.
func (it *GenerateLLMSCommand) Execute(
	ctx context.Context,
	cfg *entities.PipelineConfig,
	opts GenerateLLMSOptions,
) error {
	var pageFailures *multierror.Error

	logger.Info("Step 1/4: generating AI pages")
	_, err := it.pages.Execute(ctx, cfg, GeneratePagesOptions{DryRun: opts.DryRun, NoRemote: opts.NoRemote})
	if err != nil {
		if !errors.As(err, &pageFailures) {
			return fmt.Errorf("generate pages: %w", err)
		}
		logger.Warnf("%d pages failed, continuing with the remaining steps", len(pageFailures.Errors))
	}

	logger.Info("Step 2/4: generating llms.txt")
	if _, err = it.llmsTxt.Execute(ctx, cfg, GenerateLLMSTxtOptions{DryRun: opts.DryRun}); err != nil {
		return fmt.Errorf("generate llms.txt: %w", err)
	}

	logger.Info("Step 3/4: generating site index and sections")
	if _, err = it.index.Execute(ctx, cfg, GenerateIndexOptions{
		DryRun:         opts.DryRun,
		Sections:       true,
		PreviewChars:   entities.DefaultPreviewChars,
		MaxDepth:       entities.DefaultMaxDepth,
		TokenEstimator: opts.TokenEstimator,
	}); err != nil {
		return fmt.Errorf("generate index: %w", err)
	}

	logger.Info("Step 4/4: generating category bundles")
	if _, err = it.bundles.Execute(ctx, cfg, GenerateBundlesOptions{
		Format:         entities.BundleFormatMarkdown,
		DryRun:         opts.DryRun,
		TokenEstimator: opts.TokenEstimator,
	}); err != nil {
		return fmt.Errorf("generate bundles: %w", err)
	}

	return pageFailures.ErrorOrNil()
}
