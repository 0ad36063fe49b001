package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/docsentinel/internal/domain/commands"
	"github.com/rios0rios0/docsentinel/internal/domain/entities"
)

// GenerateLLMSTxtController handles the "generate-llms-txt" subcommand.
type GenerateLLMSTxtController struct {
	command commands.GenerateLLMSTxt
}

// NewGenerateLLMSTxtController creates a new GenerateLLMSTxtController.
func NewGenerateLLMSTxtController(command commands.GenerateLLMSTxt) *GenerateLLMSTxtController {
	return &GenerateLLMSTxtController{command: command}
}

// GetBind returns the Cobra command metadata for the generate-llms-txt controller.
func (it *GenerateLLMSTxtController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "generate-llms-txt",
		Short: "Write llms.txt, the category map of the page artifacts",
	}
}

// Execute writes llms.txt.
func (it *GenerateLLMSTxtController) Execute(cmd *cobra.Command, _ []string) error {
	cfg, err := loadPipelineConfig(cmd)
	if err != nil {
		return err
	}
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	_, err = it.command.Execute(context.Background(), cfg, commands.GenerateLLMSTxtOptions{DryRun: dryRun})
	return err
}

// AddFlags adds the generate-llms-txt flags to the given Cobra command.
func (it *GenerateLLMSTxtController) AddFlags(cmd *cobra.Command) {
	addPipelineFlags(cmd)
}
