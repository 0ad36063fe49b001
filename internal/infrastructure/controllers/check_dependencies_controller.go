package controllers

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/docsentinel/internal/domain/commands"
	"github.com/rios0rios0/docsentinel/internal/domain/entities"
)

// CheckDependenciesController handles the "check-dependencies" subcommand.
type CheckDependenciesController struct {
	command commands.CheckDependencies
}

// NewCheckDependenciesController creates a new CheckDependenciesController.
func NewCheckDependenciesController(command commands.CheckDependencies) *CheckDependenciesController {
	return &CheckDependenciesController{command: command}
}

// GetBind returns the Cobra command metadata for the check-dependencies controller.
func (it *CheckDependenciesController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "check-dependencies",
		Short: "Report dependencies pinned behind their latest release",
		Long: `Read the pinned versions from the dependency manifest, look up the latest
release of each item on its registry (GitHub releases, crates.io, npm, PyPI)
and write the outdated ones to a JSON report.

The report is also printed to stdout.`,
	}
}

// Execute runs the dependency check and prints the report.
func (it *CheckDependenciesController) Execute(cmd *cobra.Command, _ []string) error {
	manifestPath, _ := cmd.Flags().GetString("manifest")
	outputPath, _ := cmd.Flags().GetString("output")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	limit, _ := cmd.Flags().GetInt("limit")

	report, err := it.command.Execute(context.Background(), commands.CheckDependenciesOptions{
		ManifestPath: manifestPath,
		OutputPath:   outputPath,
		DryRun:       dryRun,
		Limit:        limit,
	})
	if err != nil {
		return err
	}

	data, err := report.Marshal()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

// AddFlags adds the check-dependencies flags to the given Cobra command.
func (it *CheckDependenciesController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("manifest", defaultManifestPath, "Dependency manifest (YAML)")
	cmd.Flags().String("output", entities.DefaultReportPath, "Where to write the outdated report")
	cmd.Flags().Int("limit", 0, "Check at most this many items (0 = all)")
}
