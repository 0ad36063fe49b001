package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/docsentinel/internal/domain/entities"
)

const (
	defaultManifestPath       = "variables.yml"
	defaultPipelineConfigPath = "llms_config.json"
)

// addPipelineFlags registers the flags shared by every doc-artifact subcommand.
func addPipelineFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("config", "c", defaultPipelineConfigPath, "Path to the pipeline config (JSON)")
	cmd.Flags().String("root", ".", "Repository root the config paths are relative to")
	cmd.Flags().Int("limit", 0, "Process at most this many pages (0 = all)")
}

// loadPipelineConfig reads the pipeline config named by the --config and --root flags.
func loadPipelineConfig(cmd *cobra.Command) (*entities.PipelineConfig, error) {
	configPath, _ := cmd.Flags().GetString("config")
	root, _ := cmd.Flags().GetString("root")
	return entities.LoadPipelineConfig(configPath, root)
}

func addTokenEstimatorFlag(cmd *cobra.Command) {
	cmd.Flags().String("token-estimator", entities.HeuristicEstimator,
		"Token estimator label recorded in the output (heuristic-v1, cl100k)")
}
