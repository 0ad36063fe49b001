package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/docsentinel/internal/domain/commands"
	"github.com/rios0rios0/docsentinel/internal/domain/entities"
)

// GenerateIndexController handles the "generate-index" subcommand.
type GenerateIndexController struct {
	command commands.GenerateIndex
}

// NewGenerateIndexController creates a new GenerateIndexController.
func NewGenerateIndexController(command commands.GenerateIndex) *GenerateIndexController {
	return &GenerateIndexController{command: command}
}

// GetBind returns the Cobra command metadata for the generate-index controller.
func (it *GenerateIndexController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "generate-index",
		Short: "Write site-index.json and, optionally, per-section JSON lines",
		Long: `Summarize every page artifact (preview, heading outline, size and token
statistics, content hash) into site-index.json. With --sections, also write
one JSON line per heading section to llms-full.jsonl.`,
	}
}

// Execute writes the site index.
func (it *GenerateIndexController) Execute(cmd *cobra.Command, _ []string) error {
	cfg, err := loadPipelineConfig(cmd)
	if err != nil {
		return err
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	limit, _ := cmd.Flags().GetInt("limit")
	sections, _ := cmd.Flags().GetBool("sections")
	previewChars, _ := cmd.Flags().GetInt("preview-chars")
	maxDepth, _ := cmd.Flags().GetInt("max-depth")
	estimator, _ := cmd.Flags().GetString("token-estimator")

	_, err = it.command.Execute(context.Background(), cfg, commands.GenerateIndexOptions{
		DryRun:         dryRun,
		Limit:          limit,
		Sections:       sections,
		PreviewChars:   previewChars,
		MaxDepth:       maxDepth,
		TokenEstimator: estimator,
	})
	return err
}

// AddFlags adds the generate-index flags to the given Cobra command.
func (it *GenerateIndexController) AddFlags(cmd *cobra.Command) {
	addPipelineFlags(cmd)
	cmd.Flags().Bool("sections", false, "Also write llms-full.jsonl with one line per section")
	cmd.Flags().Int("preview-chars", entities.DefaultPreviewChars, "Maximum characters of the page preview")
	cmd.Flags().Int("max-depth", entities.DefaultMaxDepth, "Deepest heading level indexed (2-6)")
	addTokenEstimatorFlag(cmd)
}
