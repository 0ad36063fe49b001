package entities

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	defaultPublicRoot      = "/.ai/"
	defaultPagesDir        = "pages"
	defaultFrontMatterFlag = "ai_exclude"
	defaultLLMSTxtPath     = "llms.txt"
	rawContentHost         = "https://raw.githubusercontent.com"
)

// PipelineConfig mirrors llms_config.json, the doc-artifact pipeline configuration.
type PipelineConfig struct {
	Project           ProjectConfig    `mapstructure:"project"`
	Repository        RepositoryConfig `mapstructure:"repository"`
	Content           ContentConfig    `mapstructure:"content"`
	Outputs           OutputsConfig    `mapstructure:"outputs"`
	LLMSTxtOutputPath string           `mapstructure:"llms_txt_output_path"`

	// RepoRoot anchors every relative path. It is not read from the file.
	RepoRoot string `mapstructure:"-"`
}

type ProjectConfig struct {
	Name        string `mapstructure:"name"`
	DocsBaseURL string `mapstructure:"docs_base_url"`
}

type RepositoryConfig struct {
	Org             string `mapstructure:"org"`
	Repo            string `mapstructure:"repo"`
	DefaultBranch   string `mapstructure:"default_branch"`
	DocsPath        string `mapstructure:"docs_path"`
	AIArtifactsPath string `mapstructure:"ai_artifacts_path"`
}

type ContentConfig struct {
	DocsDir               string           `mapstructure:"docs_dir"`
	Exclusions            ExclusionsConfig `mapstructure:"exclusions"`
	CategoriesOrder       []string         `mapstructure:"categories_order"`
	BaseContextCategories []string         `mapstructure:"base_context_categories"`
}

type ExclusionsConfig struct {
	FrontMatterFlag string   `mapstructure:"frontmatter_flag"`
	SkipBasenames   []string `mapstructure:"skip_basenames"`
	SkipPaths       []string `mapstructure:"skip_paths"`
}

type OutputsConfig struct {
	PublicRoot string            `mapstructure:"public_root"`
	Files      OutputFilesConfig `mapstructure:"files"`
}

type OutputFilesConfig struct {
	PagesDir string `mapstructure:"pages_dir"`
}

// LoadPipelineConfig reads the JSON pipeline config and anchors it at repoRoot.
func LoadPipelineConfig(path, repoRoot string) (*PipelineConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	v.SetDefault("repository.default_branch", "main")
	v.SetDefault("repository.docs_path", ".")
	v.SetDefault("content.exclusions.frontmatter_flag", defaultFrontMatterFlag)
	v.SetDefault("outputs.public_root", defaultPublicRoot)
	v.SetDefault("outputs.files.pages_dir", defaultPagesDir)
	v.SetDefault("llms_txt_output_path", defaultLLMSTxtPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read pipeline config %q: %w", path, err)
	}

	var cfg PipelineConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode pipeline config %q: %w", path, err)
	}

	root, err := filepath.Abs(repoRoot)
	if err != nil {
		return nil, fmt.Errorf("invalid repository root %q: %w", repoRoot, err)
	}
	cfg.RepoRoot = root
	return &cfg, nil
}

// DocsDir resolves the documentation source directory: content.docs_dir, then
// mkdocs.yml docs_dir, then "docs", all relative to repository.docs_path.
func (c *PipelineConfig) DocsDir() string {
	docsRoot := filepath.Join(c.RepoRoot, c.Repository.DocsPath)

	if c.Content.DocsDir != "" {
		if filepath.IsAbs(c.Content.DocsDir) {
			return filepath.Clean(c.Content.DocsDir)
		}
		return filepath.Join(docsRoot, c.Content.DocsDir)
	}

	if dir := mkdocsDocsDir(docsRoot); dir != "" {
		return dir
	}
	return filepath.Join(docsRoot, "docs")
}

// SnippetsDir is where local include directives are resolved from.
func (c *PipelineConfig) SnippetsDir() string {
	return filepath.Join(c.DocsDir(), ".snippets")
}

// VariablesPath is the YAML file backing {{ placeholder }} substitution.
func (c *PipelineConfig) VariablesPath() string {
	return filepath.Join(c.DocsDir(), "variables.yml")
}

// PublicRoot is the artifact root, ".ai" by default.
func (c *PipelineConfig) PublicRoot() string {
	return filepath.Join(c.RepoRoot, strings.Trim(c.Outputs.PublicRoot, "/"))
}

// ArtifactsPath is the repository-relative page artifact directory, using
// repository.ai_artifacts_path when set.
func (c *PipelineConfig) ArtifactsPath() string {
	if c.Repository.AIArtifactsPath != "" {
		return strings.Trim(c.Repository.AIArtifactsPath, "/")
	}
	return strings.Trim(c.Outputs.PublicRoot, "/") + "/" + strings.Trim(c.Outputs.Files.PagesDir, "/")
}

// PagesDir is the absolute page artifact directory.
func (c *PipelineConfig) PagesDir() string {
	return filepath.Join(c.RepoRoot, filepath.FromSlash(c.ArtifactsPath()))
}

// CategoriesDir holds the category bundles.
func (c *PipelineConfig) CategoriesDir() string {
	return filepath.Join(c.PublicRoot(), "categories")
}

// SiteIndexPath is the JSON site index output.
func (c *PipelineConfig) SiteIndexPath() string {
	return filepath.Join(c.PublicRoot(), "site-index.json")
}

// SectionsPath is the per-section JSON Lines export.
func (c *PipelineConfig) SectionsPath() string {
	return filepath.Join(c.PublicRoot(), "llms-full.jsonl")
}

// LLMSTxtPath is the llms.txt output.
func (c *PipelineConfig) LLMSTxtPath() string {
	if filepath.IsAbs(c.LLMSTxtOutputPath) {
		return c.LLMSTxtOutputPath
	}
	return filepath.Join(c.RepoRoot, c.LLMSTxtOutputPath)
}

// DocsBaseURL returns the docs site base URL with exactly one trailing slash.
func (c *PipelineConfig) DocsBaseURL() string {
	return strings.TrimRight(c.Project.DocsBaseURL, "/") + "/"
}

// RawBase is the raw.githubusercontent.com URL of the page artifact directory.
func (c *PipelineConfig) RawBase() string {
	branch := strings.TrimPrefix(c.Repository.DefaultBranch, "refs/heads/")
	return fmt.Sprintf("%s/%s/%s/%s/%s", rawContentHost, c.Repository.Org, c.Repository.Repo, branch, c.ArtifactsPath())
}

// IsBaseCategory reports whether category is shared base context.
func (c *PipelineConfig) IsBaseCategory(category string) bool {
	return isListed(category, c.Content.BaseContextCategories)
}

func mkdocsDocsDir(docsRoot string) string {
	data, err := os.ReadFile(filepath.Join(docsRoot, "mkdocs.yml"))
	if err != nil {
		return ""
	}
	var mkdocs struct {
		DocsDir string `yaml:"docs_dir"`
	}
	if unmarshalErr := yaml.Unmarshal(data, &mkdocs); unmarshalErr != nil || mkdocs.DocsDir == "" {
		return ""
	}
	return filepath.Join(docsRoot, mkdocs.DocsDir)
}
