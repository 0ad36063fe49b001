//go:build unit

package entities_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/docsentinel/internal/domain/entities"
)

func writePipelineConfig(t *testing.T, root, content string) string {
	t.Helper()
	path := filepath.Join(root, "llms_config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadPipelineConfig(t *testing.T) {
	t.Parallel()

	t.Run("should apply defaults for omitted keys", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		path := writePipelineConfig(t, root, `{
			"project": {"name": "Acme", "docs_base_url": "https://docs.acme.io"},
			"repository": {"org": "acme", "repo": "docs"}
		}`)

		// when
		cfg, err := entities.LoadPipelineConfig(path, root)

		// then
		require.NoError(t, err)
		assert.Equal(t, "main", cfg.Repository.DefaultBranch)
		assert.Equal(t, "ai_exclude", cfg.Content.Exclusions.FrontMatterFlag)
		assert.Equal(t, ".ai/pages", cfg.ArtifactsPath())
		assert.Equal(t, filepath.Join(root, ".ai", "pages"), cfg.PagesDir())
		assert.Equal(t, filepath.Join(root, ".ai", "site-index.json"), cfg.SiteIndexPath())
		assert.Equal(t, filepath.Join(root, ".ai", "llms-full.jsonl"), cfg.SectionsPath())
		assert.Equal(t, filepath.Join(root, "llms.txt"), cfg.LLMSTxtPath())
		assert.Equal(t, filepath.Join(root, "docs"), cfg.DocsDir())
		assert.Equal(t, "https://docs.acme.io/", cfg.DocsBaseURL())
		assert.Equal(t, "https://raw.githubusercontent.com/acme/docs/main/.ai/pages", cfg.RawBase())
	})

	t.Run("should prefer ai_artifacts_path and strip the branch ref prefix", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		path := writePipelineConfig(t, root, `{
			"repository": {"org": "acme", "repo": "docs", "default_branch": "refs/heads/master",
				"ai_artifacts_path": "/artifacts/pages/"},
			"content": {"docs_dir": "content", "base_context_categories": ["Basics"]}
		}`)

		// when
		cfg, err := entities.LoadPipelineConfig(path, root)

		// then
		require.NoError(t, err)
		assert.Equal(t, "https://raw.githubusercontent.com/acme/docs/master/artifacts/pages", cfg.RawBase())
		assert.Equal(t, filepath.Join(root, "artifacts", "pages"), cfg.PagesDir())
		assert.Equal(t, filepath.Join(root, "content"), cfg.DocsDir())
		assert.Equal(t, filepath.Join(root, "content", ".snippets"), cfg.SnippetsDir())
		assert.True(t, cfg.IsBaseCategory("Basics"))
		assert.False(t, cfg.IsBaseCategory("basics"))
	})

	t.Run("should read docs_dir from mkdocs.yml", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, "mkdocs.yml"), []byte("docs_dir: site-src\n"), 0o600))
		path := writePipelineConfig(t, root, `{"repository": {"org": "acme", "repo": "docs"}}`)

		// when
		cfg, err := entities.LoadPipelineConfig(path, root)

		// then
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "site-src"), cfg.DocsDir())
	})

	t.Run("should fail when the config file is missing", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()

		// when
		_, err := entities.LoadPipelineConfig(filepath.Join(root, "missing.json"), root)

		// then
		require.Error(t, err)
	})
}
