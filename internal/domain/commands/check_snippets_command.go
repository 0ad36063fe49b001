package commands

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/docsentinel/internal/domain/entities"
	"github.com/rios0rios0/docsentinel/internal/domain/repositories"
)

// CheckSnippets is the interface for the check-snippets command.
type CheckSnippets interface {
	Execute(ctx context.Context, opts CheckSnippetsOptions) (*entities.Report, error)
}

// CheckSnippetsOptions holds runtime options for a snippet audit.
type CheckSnippetsOptions struct {
	ReportPath string
	DocsRoot   string
	DryRun     bool
}

// CheckSnippetsCommand finds documentation snippets pinned to an outdated repository
// version and records the ones whose code changed in the latest version.
type CheckSnippetsCommand struct {
	content repositories.ContentRepository
}

// NewCheckSnippetsCommand creates a new CheckSnippetsCommand.
func NewCheckSnippetsCommand(content repositories.ContentRepository) *CheckSnippetsCommand {
	return &CheckSnippetsCommand{content: content}
}

// Execute scans DocsRoot, compares each reference under both versions and rewrites
// the report with the stale snippets attached to their repository entry.
func (it *CheckSnippetsCommand) Execute(
	ctx context.Context,
	opts CheckSnippetsOptions,
) (*entities.Report, error) {
	report, err := entities.LoadReport(opts.ReportPath)
	if err != nil {
		return nil, err
	}

	deps := make(map[string]entities.OutdatedDependency)
	for _, dep := range report.RepositoryDependencies() {
		deps[dep.Name] = dep
	}
	logger.Infof("Found %d repository dependencies", len(deps))

	refs, err := scanDocs(opts.DocsRoot, deps)
	if err != nil {
		return nil, err
	}
	logger.Infof("Found %d repository references in %q", len(refs), opts.DocsRoot)

	stale := make(map[string][]entities.OutdatedSnippet)
	staleCount := 0
	for _, ref := range refs {
		snippet, matches := it.compare(ctx, ref, deps[ref.Dependency])
		if matches {
			continue
		}
		stale[ref.Dependency] = append(stale[ref.Dependency], snippet)
		staleCount++
	}
	logger.Infof("Found %d outdated code snippets", staleCount)

	report.MergeSnippets(stale)
	logSnippetSummary(report)

	if opts.DryRun {
		logger.Infof("[dry-run] Not rewriting %q", opts.ReportPath)
		return report, nil
	}
	if writeErr := report.Write(opts.ReportPath); writeErr != nil {
		return nil, writeErr
	}
	return report, nil
}

// compare fetches the referenced code under both versions. It reports a match only
// when both fetches succeed with equal, non-empty text; identical URLs always match.
func (it *CheckSnippetsCommand) compare(
	ctx context.Context,
	ref entities.SnippetReference,
	dep entities.OutdatedDependency,
) (entities.OutdatedSnippet, bool) {
	snippet := entities.OutdatedSnippet{
		File:       ref.File,
		LineNumber: ref.LineNumber,
		CurrentURL: entities.SubstituteVersion(ref.MatchText, dep.CurrentVersion),
		LatestURL:  entities.SubstituteVersion(ref.MatchText, dep.LatestVersion),
	}
	if snippet.CurrentURL == snippet.LatestURL {
		return snippet, true
	}

	logger.Debugf("Fetching code snippets for %s (%s:%d)", dep.Name, ref.File, ref.LineNumber)
	current, currentErr := it.fetchSnippet(ctx, snippet.CurrentURL)
	if currentErr != nil {
		logger.Warnf("Failed to fetch %s: %v", snippet.CurrentURL, currentErr)
	} else {
		snippet.CurrentCode = &current
	}
	latest, latestErr := it.fetchSnippet(ctx, snippet.LatestURL)
	if latestErr != nil {
		logger.Warnf("Failed to fetch %s: %v", snippet.LatestURL, latestErr)
	} else {
		snippet.LatestCode = &latest
	}

	if currentErr != nil || latestErr != nil || current == "" || latest == "" {
		return snippet, false
	}
	return snippet, current == latest
}

func (it *CheckSnippetsCommand) fetchSnippet(ctx context.Context, url string) (string, error) {
	target, err := entities.ResolveSnippetTarget(url)
	if err != nil {
		return "", err
	}
	content, err := it.content.Fetch(ctx, target.URL)
	if err != nil {
		return "", err
	}
	return target.SliceLines(content)
}

// scanDocs walks root for Markdown files referencing one of deps.
func scanDocs(root string, deps map[string]entities.OutdatedDependency) ([]entities.SnippetReference, error) {
	if len(deps) == 0 {
		return nil, nil
	}
	wanted := make(map[string]bool, len(deps))
	for name := range deps {
		wanted[name] = true
	}

	var refs []entities.SnippetReference
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}

		file, openErr := os.Open(path)
		if openErr != nil {
			logger.Warnf("Error reading file %q: %v", path, openErr)
			return nil
		}
		defer file.Close()

		found, scanErr := entities.ScanSnippetReferences(path, file, wanted)
		if scanErr != nil {
			logger.Warnf("%v", scanErr)
			return nil
		}
		refs = append(refs, found...)
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("failed to scan docs root %q: %w", root, walkErr)
	}
	return refs, nil
}

func logSnippetSummary(report *entities.Report) {
	for _, dep := range report.RepositoryDependencies() {
		snippets := dep.Snippets()
		if len(snippets) == 0 {
			continue
		}
		logger.Infof("%s: %d outdated snippets", dep.Name, len(snippets))
		for i, snippet := range snippets {
			logger.Infof("  %d. %s:%d", i+1, snippet.File, snippet.LineNumber)
		}
	}
}
