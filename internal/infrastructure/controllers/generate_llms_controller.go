package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/docsentinel/internal/domain/commands"
	"github.com/rios0rios0/docsentinel/internal/domain/entities"
)

// GenerateLLMSController handles the "generate-llms" subcommand.
type GenerateLLMSController struct {
	command commands.GenerateLLMS
}

// NewGenerateLLMSController creates a new GenerateLLMSController.
func NewGenerateLLMSController(command commands.GenerateLLMS) *GenerateLLMSController {
	return &GenerateLLMSController{command: command}
}

// GetBind returns the Cobra command metadata for the generate-llms controller.
func (it *GenerateLLMSController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "generate-llms",
		Short: "Run the whole artifact pipeline",
		Long: `Generate the page artifacts, llms.txt, the site index with sections and
the Markdown category bundles, in that order.`,
	}
}

// Execute runs the pipeline.
func (it *GenerateLLMSController) Execute(cmd *cobra.Command, _ []string) error {
	cfg, err := loadPipelineConfig(cmd)
	if err != nil {
		return err
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	noRemote, _ := cmd.Flags().GetBool("no-remote")
	estimator, _ := cmd.Flags().GetString("token-estimator")

	return it.command.Execute(context.Background(), cfg, commands.GenerateLLMSOptions{
		DryRun:         dryRun,
		NoRemote:       noRemote,
		TokenEstimator: estimator,
	})
}

// AddFlags adds the generate-llms flags to the given Cobra command.
func (it *GenerateLLMSController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("config", "c", defaultPipelineConfigPath, "Path to the pipeline config (JSON)")
	cmd.Flags().String("root", ".", "Repository root the config paths are relative to")
	cmd.Flags().Bool("no-remote", false, "Do not fetch remote snippet includes")
	addTokenEstimatorFlag(cmd)
}
