package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/docsentinel/internal/domain/commands"
	"github.com/rios0rios0/docsentinel/internal/domain/entities"
)

// CheckSnippetsController handles the "check-snippets" subcommand.
type CheckSnippetsController struct {
	command commands.CheckSnippets
}

// NewCheckSnippetsController creates a new CheckSnippetsController.
func NewCheckSnippetsController(command commands.CheckSnippets) *CheckSnippetsController {
	return &CheckSnippetsController{command: command}
}

// GetBind returns the Cobra command metadata for the check-snippets controller.
func (it *CheckSnippetsController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "check-snippets <report.json> <docs-root>",
		Short: "Find code snippets that changed between pinned and latest releases",
		Long: `For every outdated repository dependency in the report, find the snippet
links in the documentation that are pinned to its version, fetch the linked
lines at both the current and the latest release and record the ones whose
code differs under "outdated_snippets" in the report.`,
	}
}

// Execute audits the snippets and rewrites the report.
func (it *CheckSnippetsController) Execute(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	_, err := it.command.Execute(context.Background(), commands.CheckSnippetsOptions{
		ReportPath: args[0],
		DocsRoot:   args[1],
		DryRun:     dryRun,
	})
	return err
}

// AddFlags adds the check-snippets arguments validation to the given Cobra command.
func (it *CheckSnippetsController) AddFlags(cmd *cobra.Command) {
	cmd.Args = cobra.ExactArgs(2) //nolint:mnd // report path and docs root
}
