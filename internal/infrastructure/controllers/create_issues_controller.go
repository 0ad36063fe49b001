package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/docsentinel/internal/domain/commands"
	"github.com/rios0rios0/docsentinel/internal/domain/entities"
)

// CreateIssuesController handles the "create-issues" subcommand.
type CreateIssuesController struct {
	command commands.CreateIssues
}

// NewCreateIssuesController creates a new CreateIssuesController.
func NewCreateIssuesController(command commands.CreateIssues) *CreateIssuesController {
	return &CreateIssuesController{command: command}
}

// GetBind returns the Cobra command metadata for the create-issues controller.
func (it *CreateIssuesController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "create-issues",
		Short: "Open or update one tracking issue per outdated dependency",
		Long: `Reconcile the outdated report with the repository's issues.

Each dependency gets a single issue identified by a hidden marker. New
version ranges are posted as comments on the open issue, dependencies
labelled with the ignore label are left alone and closed issues are
replaced by a new one.`,
	}
}

// Execute loads the settings, applies the flag overrides and reconciles the issues.
func (it *CreateIssuesController) Execute(cmd *cobra.Command, _ []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	reportPath, _ := cmd.Flags().GetString("report")
	repository, _ := cmd.Flags().GetString("repo")
	token, _ := cmd.Flags().GetString("token")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	limit, _ := cmd.Flags().GetInt("limit")

	if configPath == "" {
		if found, err := entities.FindConfigFile(); err == nil {
			configPath = found
		} else {
			logger.Debugf("No settings file found, using defaults: %v", err)
		}
	}
	if configPath != "" {
		logger.Infof("Using config file: %s", configPath)
	}

	settings, err := entities.NewSettings(configPath)
	if err != nil {
		return err
	}
	if repository != "" {
		settings.Repository = repository
	}
	if token != "" {
		settings.Token = token
	}

	_, err = it.command.Execute(context.Background(), settings, commands.CreateIssuesOptions{
		ReportPath: reportPath,
		DryRun:     dryRun,
		Limit:      limit,
	})
	return err
}

// AddFlags adds the create-issues flags to the given Cobra command.
func (it *CreateIssuesController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("config", "c", "", "Path to the settings file (default: auto-detect)")
	cmd.Flags().String("report", entities.DefaultReportPath, "Outdated report to reconcile")
	cmd.Flags().String("repo", "", "Target repository as owner/name (overrides the settings file)")
	cmd.Flags().String("token", "", "GitHub token (overrides the settings file and "+entities.DefaultTokenEnv+")")
	cmd.Flags().Int("limit", 0, "Process at most this many dependencies (0 = all)")
}
