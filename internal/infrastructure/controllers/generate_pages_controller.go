package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/docsentinel/internal/domain/commands"
	"github.com/rios0rios0/docsentinel/internal/domain/entities"
)

const defaultPreviewLines = 12

// GeneratePagesController handles the "generate-pages" subcommand.
type GeneratePagesController struct {
	command commands.GeneratePages
}

// NewGeneratePagesController creates a new GeneratePagesController.
func NewGeneratePagesController(command commands.GeneratePages) *GeneratePagesController {
	return &GeneratePagesController{command: command}
}

// GetBind returns the Cobra command metadata for the generate-pages controller.
func (it *GeneratePagesController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "generate-pages",
		Short: "Write one resolved Markdown artifact per documentation page",
		Long: `Resolve snippet includes and {{ placeholders }} in every documentation page,
strip HTML comments and write the result with a minimal front matter under
the configured pages directory.`,
	}
}

// Execute generates the page artifacts.
func (it *GeneratePagesController) Execute(cmd *cobra.Command, _ []string) error {
	cfg, err := loadPipelineConfig(cmd)
	if err != nil {
		return err
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	limit, _ := cmd.Flags().GetInt("limit")
	noRemote, _ := cmd.Flags().GetBool("no-remote")
	strictSlugs, _ := cmd.Flags().GetBool("strict-slugs")
	previewLines, _ := cmd.Flags().GetInt("preview-lines")

	_, err = it.command.Execute(context.Background(), cfg, commands.GeneratePagesOptions{
		DryRun:       dryRun,
		NoRemote:     noRemote,
		StrictSlugs:  strictSlugs,
		Limit:        limit,
		PreviewLines: previewLines,
	})
	return err
}

// AddFlags adds the generate-pages flags to the given Cobra command.
func (it *GeneratePagesController) AddFlags(cmd *cobra.Command) {
	addPipelineFlags(cmd)
	cmd.Flags().Bool("no-remote", false, "Do not fetch remote snippet includes")
	cmd.Flags().Bool("strict-slugs", false, "Fail when two pages map to the same slug")
	cmd.Flags().Int("preview-lines", defaultPreviewLines, "Lines of each page shown in dry-run mode")
}
