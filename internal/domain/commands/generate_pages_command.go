package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/docsentinel/internal/domain/entities"
	"github.com/rios0rios0/docsentinel/internal/domain/repositories"
)

// ErrSlugCollision is returned in strict mode when two sources map to one artifact.
var ErrSlugCollision = errors.New("slug collision")

// GeneratePages is the interface for the generate-pages command.
type GeneratePages interface {
	Execute(ctx context.Context, cfg *entities.PipelineConfig, opts GeneratePagesOptions) (GeneratePagesResult, error)
}

// GeneratePagesOptions holds runtime options for page generation.
type GeneratePagesOptions struct {
	DryRun       bool
	NoRemote     bool
	StrictSlugs  bool
	Limit        int // 0 processes every page
	PreviewLines int // dry-run only
}

// GeneratePagesResult counts processed sources.
type GeneratePagesResult struct {
	Processed  int
	Skipped    int
	Collisions int
	Written    []string
}

// GeneratePagesCommand flattens documentation sources into AI page artifacts.
type GeneratePagesCommand struct {
	content repositories.ContentRepository
}

// NewGeneratePagesCommand creates a new GeneratePagesCommand.
func NewGeneratePagesCommand(content repositories.ContentRepository) *GeneratePagesCommand {
	return &GeneratePagesCommand{content: content}
}

type pageSource struct {
	path string
	rel  string // docs-relative, slash separated
	slug string
	url  string
}

// Execute resolves includes, placeholders and comments for each source page and
// writes one artifact per slug. A page whose includes cannot be resolved is skipped
// and the run fails once every other page is done.
func (it *GeneratePagesCommand) Execute(
	ctx context.Context,
	cfg *entities.PipelineConfig,
	opts GeneratePagesOptions,
) (GeneratePagesResult, error) {
	var result GeneratePagesResult

	docsDir := cfg.DocsDir()
	variables, err := entities.LoadVariables(cfg.VariablesPath())
	if err != nil {
		return result, err
	}

	sources, err := collectSources(docsDir, cfg)
	if err != nil {
		return result, err
	}

	result.Collisions = countSlugCollisions(sources)
	if result.Collisions > 0 && opts.StrictSlugs {
		return result, fmt.Errorf("%w: %d artifacts have more than one source", ErrSlugCollision, result.Collisions)
	}

	resolver := NewIncludeResolver(it.content, IncludeOptions{
		SnippetsDir: cfg.SnippetsDir(),
		Variables:   variables,
		AllowRemote: !opts.NoRemote,
	})

	if opts.DryRun {
		logger.Infof("[dry-run] docs_dir=%s", docsDir)
		logger.Infof("[dry-run] snippet_dir=%s", cfg.SnippetsDir())
		logger.Infof("[dry-run] output_dir=%s", cfg.PagesDir())
		logger.Infof("[dry-run] remote_snippets=%t", !opts.NoRemote)
		logger.Infof("[dry-run] total candidates=%d", len(sources))
	}

	var failures *multierror.Error
	for _, src := range sources {
		if opts.Limit > 0 && result.Processed >= opts.Limit {
			break
		}

		out, skip, pageErr := it.render(ctx, resolver, variables, cfg, src)
		if pageErr != nil {
			logger.Errorf("Skipping %s: %v", src.rel, pageErr)
			failures = multierror.Append(failures, fmt.Errorf("%s: %w", src.rel, pageErr))
			result.Skipped++
			continue
		}
		if skip {
			logger.Debugf("Skipping %s: excluded by front matter", src.rel)
			result.Skipped++
			continue
		}

		outPath := filepath.Join(cfg.PagesDir(), src.slug+".md")
		if opts.DryRun {
			logDryRunPage(cfg, src, outPath, out, opts.PreviewLines)
		} else {
			if writeErr := writeArtifact(outPath, []byte(out)); writeErr != nil {
				return result, writeErr
			}
			result.Written = append(result.Written, outPath)
		}
		result.Processed++
	}

	logger.Infof("[ai-pages] processed=%d skipped=%d", result.Processed, result.Skipped)
	if opts.DryRun {
		logger.Info("[dry-run] No files were written.")
	}
	logger.Infof("[ai-pages] output dir: %s", cfg.PagesDir())
	return result, failures.ErrorOrNil()
}

// render returns the artifact text for src, or skip=true for excluded pages.
func (it *GeneratePagesCommand) render(
	ctx context.Context,
	resolver *IncludeResolver,
	variables entities.Variables,
	cfg *entities.PipelineConfig,
	src pageSource,
) (string, bool, error) {
	raw, err := os.ReadFile(src.path)
	if err != nil {
		return "", false, fmt.Errorf("failed to read source: %w", err)
	}

	fm, body := entities.SplitFrontMatter(string(raw))
	if fm.Flag(cfg.Content.Exclusions.FrontMatterFlag) {
		return "", true, nil
	}

	body, err = resolver.Resolve(ctx, body)
	if err != nil {
		return "", false, err
	}
	body = variables.ResolvePlaceholders(body)
	body = entities.StripHTMLComments(body)

	out, err := entities.RenderAIPage(fm.MinimalHeader(src.url), body)
	if err != nil {
		return "", false, err
	}
	return out, false, nil
}

// collectSources lists *.md and *.mdx pages under docsDir in path order, applying the
// configured exclusions and ignoring the snippets tree.
func collectSources(docsDir string, cfg *entities.PipelineConfig) ([]pageSource, error) {
	exclusions := cfg.Content.Exclusions
	var sources []pageSource

	walkErr := filepath.WalkDir(docsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != docsDir && (d.Name() == ".snippets" || containsAny(filepath.ToSlash(path), exclusions.SkipPaths)) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), ".md") && !strings.HasSuffix(d.Name(), ".mdx") {
			return nil
		}
		if containsAny(filepath.ToSlash(filepath.Dir(path)), exclusions.SkipPaths) {
			return nil
		}
		for _, name := range exclusions.SkipBasenames {
			if d.Name() == name {
				return nil
			}
		}

		rel, relErr := filepath.Rel(docsDir, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)
		slug, url := entities.ComputeSlugAndURL(strings.TrimSuffix(rel, filepath.Ext(rel)), cfg.DocsBaseURL())
		sources = append(sources, pageSource{path: path, rel: rel, slug: slug, url: url})
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("failed to collect pages from %q: %w", docsDir, walkErr)
	}

	sort.Slice(sources, func(i, j int) bool { return sources[i].path < sources[j].path })
	return sources, nil
}

// countSlugCollisions warns about every slug claimed by several sources. The last
// source in path order wins.
func countSlugCollisions(sources []pageSource) int {
	bySlug := make(map[string][]string)
	for _, src := range sources {
		bySlug[src.slug] = append(bySlug[src.slug], src.rel)
	}

	slugs := make([]string, 0, len(bySlug))
	for slug, rels := range bySlug {
		if len(rels) > 1 {
			slugs = append(slugs, slug)
		}
	}
	sort.Strings(slugs)
	for _, slug := range slugs {
		rels := bySlug[slug]
		logger.Warnf("Slug %q is produced by %s; %s wins", slug, strings.Join(rels, ", "), rels[len(rels)-1])
	}
	return len(slugs)
}

func containsAny(s string, fragments []string) bool {
	for _, fragment := range fragments {
		if fragment != "" && strings.Contains(s, fragment) {
			return true
		}
	}
	return false
}

func logDryRunPage(cfg *entities.PipelineConfig, src pageSource, outPath, out string, previewLines int) {
	_, body := entities.SplitFrontMatter(out)
	logger.Infof("CREATE: %s", src.rel)
	logger.Infof("  slug: %s", src.slug)
	logger.Infof("  out:  %s", outPath)
	logger.Infof("  url:  %s", src.url)
	logger.Infof("  raw:  %s", entities.RawPageURL(cfg.RawBase(), src.slug))
	logger.Infof("  counts: snippets=%d vars=%d chars_out=%d",
		entities.CountIncludes(body), entities.CountPlaceholders(body), entities.CharCount(body))
	if previewLines <= 0 {
		return
	}
	lines := strings.Split(body, "\n")
	if len(lines) > previewLines {
		lines = lines[:previewLines]
	}
	for _, line := range lines {
		logger.Infof("    | %s", line)
	}
}
