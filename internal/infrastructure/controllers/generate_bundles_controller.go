package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/docsentinel/internal/domain/commands"
	"github.com/rios0rios0/docsentinel/internal/domain/entities"
)

// GenerateBundlesController handles the "generate-bundles" subcommand.
type GenerateBundlesController struct {
	command commands.GenerateBundles
}

// NewGenerateBundlesController creates a new GenerateBundlesController.
func NewGenerateBundlesController(command commands.GenerateBundles) *GenerateBundlesController {
	return &GenerateBundlesController{command: command}
}

// GetBind returns the Cobra command metadata for the generate-bundles controller.
func (it *GenerateBundlesController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "generate-bundles",
		Short: "Write one page bundle per configured category",
		Long: `Concatenate the page artifacts of every category listed in
content.categories_order. Categories outside content.base_context_categories
also carry the pages of the base categories.`,
	}
}

// Execute writes the category bundles.
func (it *GenerateBundlesController) Execute(cmd *cobra.Command, _ []string) error {
	cfg, err := loadPipelineConfig(cmd)
	if err != nil {
		return err
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	limit, _ := cmd.Flags().GetInt("limit")
	format, _ := cmd.Flags().GetString("format")
	estimator, _ := cmd.Flags().GetString("token-estimator")

	_, err = it.command.Execute(context.Background(), cfg, commands.GenerateBundlesOptions{
		Format:         format,
		DryRun:         dryRun,
		Limit:          limit,
		TokenEstimator: estimator,
	})
	return err
}

// AddFlags adds the generate-bundles flags to the given Cobra command.
func (it *GenerateBundlesController) AddFlags(cmd *cobra.Command) {
	addPipelineFlags(cmd)
	cmd.Flags().String("format", entities.BundleFormatMarkdown, "Bundle format: md, json, jsonl or all")
	addTokenEstimatorFlag(cmd)
}
