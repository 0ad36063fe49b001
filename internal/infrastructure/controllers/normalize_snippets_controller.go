package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/docsentinel/internal/domain/commands"
	"github.com/rios0rios0/docsentinel/internal/domain/entities"
)

// NormalizeSnippetsController handles the "normalize-snippets" subcommand.
type NormalizeSnippetsController struct {
	command commands.NormalizeSnippets
}

// NewNormalizeSnippetsController creates a new NormalizeSnippetsController.
func NewNormalizeSnippetsController(command commands.NormalizeSnippets) *NormalizeSnippetsController {
	return &NormalizeSnippetsController{command: command}
}

// GetBind returns the Cobra command metadata for the normalize-snippets controller.
func (it *NormalizeSnippetsController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "normalize-snippets",
		Short: "Keep indentation in rendered HTML snippets",
		Long: `Replace the spaces that open a <span> element in the HTML snippet files
with non-breaking spaces. Meant to run as a pre-commit hook.`,
	}
}

// Execute rewrites the snippet files in place.
func (it *NormalizeSnippetsController) Execute(cmd *cobra.Command, _ []string) error {
	dir, _ := cmd.Flags().GetString("dir")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	_, err := it.command.Execute(context.Background(), commands.NormalizeSnippetsOptions{Dir: dir, DryRun: dryRun})
	return err
}

// AddFlags adds the normalize-snippets flags to the given Cobra command.
func (it *NormalizeSnippetsController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("dir", commands.DefaultSnippetsHTMLDir, "Directory scanned for .html snippets")
}
