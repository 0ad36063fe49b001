//go:build unit

package controllers_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/docsentinel/internal/domain/commands"
	"github.com/rios0rios0/docsentinel/internal/domain/entities"
	"github.com/rios0rios0/docsentinel/internal/infrastructure/controllers"
	"github.com/rios0rios0/docsentinel/test/domain/commanddoubles"
)

// newCommand builds a subcommand the way main does, with the global flags attached.
func newCommand(t *testing.T, controller entities.Controller, flags map[string]string) *cobra.Command {
	t.Helper()
	//nolint:exhaustruct // test command
	cmd := &cobra.Command{Use: controller.GetBind().Use}
	cmd.Flags().Bool("dry-run", false, "")
	controller.AddFlags(cmd)
	for name, value := range flags {
		require.NoError(t, cmd.Flags().Set(name, value))
	}
	return cmd
}

func writePipelineConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "llms_config.json")
	content := `{"project": {"name": "Polkadot"}, "repository": {"org": "acme", "repo": "docs"}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestCheckDependenciesController(t *testing.T) {
	t.Parallel()

	t.Run("should pass the flags and print the report", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubCheckDependenciesCommand{
			Report: entities.NewReport([]entities.OutdatedDependency{{
				Name: "polkadot_sdk", Category: "repositories", CurrentVersion: "v1", LatestVersion: "v2",
			}}),
		}
		controller := controllers.NewCheckDependenciesController(stub)
		cmd := newCommand(t, controller, map[string]string{"manifest": "docs/variables.yml", "limit": "3", "dry-run": "true"})
		var out bytes.Buffer
		cmd.SetOut(&out)

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, commands.CheckDependenciesOptions{
			ManifestPath: "docs/variables.yml",
			OutputPath:   entities.DefaultReportPath,
			DryRun:       true,
			Limit:        3,
		}, stub.LastOpts)
		assert.Contains(t, out.String(), `"outdated_count": 1`)
	})

	t.Run("should return the command error", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubCheckDependenciesCommand{ExecuteErr: errors.New("bad manifest")}
		controller := controllers.NewCheckDependenciesController(stub)
		cmd := newCommand(t, controller, nil)

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.EqualError(t, err, "bad manifest")
	})
}

func TestCheckSnippetsController(t *testing.T) {
	t.Parallel()

	t.Run("should take the report and docs root from the arguments", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubCheckSnippetsCommand{}
		controller := controllers.NewCheckSnippetsController(stub)
		cmd := newCommand(t, controller, nil)

		// when
		argsErr := cmd.Args(cmd, []string{"report.json"})
		err := controller.Execute(cmd, []string{"report.json", "docs"})

		// then
		require.Error(t, argsErr)
		require.NoError(t, err)
		assert.Equal(t, commands.CheckSnippetsOptions{ReportPath: "report.json", DocsRoot: "docs"}, stub.LastOpts)
	})
}

func TestCreateIssuesController(t *testing.T) {
	t.Parallel()

	t.Run("should let flags override the settings file", func(t *testing.T) {
		t.Parallel()

		// given
		configPath := filepath.Join(t.TempDir(), ".docsentinel.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte("repository: acme/old\ntoken: file-token\nmax_snippets: 3\n"), 0o600))
		stub := &commanddoubles.StubCreateIssuesCommand{}
		controller := controllers.NewCreateIssuesController(stub)
		cmd := newCommand(t, controller, map[string]string{
			"config": configPath,
			"repo":   "acme/docs",
			"limit":  "5",
		})

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		require.NotNil(t, stub.LastSettings)
		assert.Equal(t, "acme/docs", stub.LastSettings.Repository)
		assert.Equal(t, "file-token", stub.LastSettings.Token)
		assert.Equal(t, 3, stub.LastSettings.MaxSnippets)
		assert.Equal(t, commands.CreateIssuesOptions{ReportPath: entities.DefaultReportPath, Limit: 5}, stub.LastOpts)
	})

	t.Run("should fail for an unreadable settings file", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubCreateIssuesCommand{}
		controller := controllers.NewCreateIssuesController(stub)
		cmd := newCommand(t, controller, map[string]string{"config": filepath.Join(t.TempDir(), "missing.yaml")})

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.Error(t, err)
		assert.Zero(t, stub.ExecuteCallCount)
	})
}

func TestGeneratePagesController(t *testing.T) {
	t.Parallel()

	t.Run("should load the pipeline config and pass the page flags", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubGeneratePagesCommand{}
		controller := controllers.NewGeneratePagesController(stub)
		root := t.TempDir()
		cmd := newCommand(t, controller, map[string]string{
			"config":       writePipelineConfig(t),
			"root":         root,
			"no-remote":    "true",
			"strict-slugs": "true",
			"limit":        "2",
		})

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		require.NotNil(t, stub.LastConfig)
		assert.Equal(t, "Polkadot", stub.LastConfig.Project.Name)
		assert.Equal(t, "main", stub.LastConfig.Repository.DefaultBranch)
		assert.Equal(t, root, stub.LastConfig.RepoRoot)
		assert.True(t, stub.LastOpts.NoRemote)
		assert.True(t, stub.LastOpts.StrictSlugs)
		assert.Equal(t, 2, stub.LastOpts.Limit)
	})

	t.Run("should fail without a pipeline config", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubGeneratePagesCommand{}
		controller := controllers.NewGeneratePagesController(stub)
		cmd := newCommand(t, controller, map[string]string{"config": filepath.Join(t.TempDir(), "none.json")})

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.Error(t, err)
		assert.Zero(t, stub.ExecuteCallCount)
	})
}

func TestGenerateIndexController(t *testing.T) {
	t.Parallel()

	t.Run("should default the preview, depth and estimator", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubGenerateIndexCommand{}
		controller := controllers.NewGenerateIndexController(stub)
		cmd := newCommand(t, controller, map[string]string{"config": writePipelineConfig(t), "sections": "true"})

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, commands.GenerateIndexOptions{
			Sections:       true,
			PreviewChars:   entities.DefaultPreviewChars,
			MaxDepth:       entities.DefaultMaxDepth,
			TokenEstimator: entities.HeuristicEstimator,
		}, stub.LastOpts)
	})
}

func TestGenerateBundlesController(t *testing.T) {
	t.Parallel()

	t.Run("should pass the bundle format", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubGenerateBundlesCommand{}
		controller := controllers.NewGenerateBundlesController(stub)
		cmd := newCommand(t, controller, map[string]string{"config": writePipelineConfig(t), "format": "all"})

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.BundleFormatAll, stub.LastOpts.Format)
	})
}

func TestGenerateLLMSController(t *testing.T) {
	t.Parallel()

	t.Run("should run the pipeline with the shared flags", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubGenerateLLMSCommand{}
		controller := controllers.NewGenerateLLMSController(stub)
		cmd := newCommand(t, controller, map[string]string{
			"config":          writePipelineConfig(t),
			"dry-run":         "true",
			"token-estimator": entities.CL100KEstimator,
		})

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, commands.GenerateLLMSOptions{DryRun: true, TokenEstimator: entities.CL100KEstimator}, stub.LastOpts)
	})
}

func TestNormalizeSnippetsController(t *testing.T) {
	t.Parallel()

	t.Run("should default the snippets directory", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubNormalizeSnippetsCommand{}
		controller := controllers.NewNormalizeSnippetsController(stub)
		cmd := newCommand(t, controller, nil)

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, commands.NormalizeSnippetsOptions{Dir: commands.DefaultSnippetsHTMLDir}, stub.LastOpts)
	})
}
