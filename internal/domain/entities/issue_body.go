package entities

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pmezard/go-difflib/difflib"
)

const (
	diffContextLines = 3
	truncatedSuffix  = "\n... (diff truncated)"
)

// IssueBodyOptions bounds the stale-snippet section of generated issue text.
type IssueBodyOptions struct {
	MaxSnippets  int
	MaxDiffChars int
}

// IssueTitle returns the title used for a dependency update issue.
func IssueTitle(dep OutdatedDependency) string {
	return fmt.Sprintf("Update needed: %s (%s -> %s)", dep.Name, dep.CurrentVersion, dep.LatestVersion)
}

// IssueBody renders the body of a new tracking issue, markers included.
func IssueBody(dep OutdatedDependency, opts IssueBodyOptions) string {
	var sb strings.Builder
	sb.WriteString(DependencyMarker(dep.Name) + "\n")
	sb.WriteString(VersionMarker(dep.CurrentVersion, dep.LatestVersion) + "\n\n")
	fmt.Fprintf(&sb, "A new release has been detected for **%s**.\n\n", dep.Name)
	writeSummary(&sb, dep)
	writeSnippets(&sb, dep.Snippets(), opts)
	sb.WriteString("\nPlease review the changelog and update the documentation accordingly.\n")
	return sb.String()
}

// IssueCommentBody renders the comment posted on an open issue for a newer transition.
func IssueCommentBody(dep OutdatedDependency, opts IssueBodyOptions) string {
	var sb strings.Builder
	sb.WriteString(VersionMarker(dep.CurrentVersion, dep.LatestVersion) + "\n\n")
	fmt.Fprintf(&sb, "A newer release has been detected for **%s**.\n\n", dep.Name)
	writeSummary(&sb, dep)
	writeSnippets(&sb, dep.Snippets(), opts)
	return sb.String()
}

func writeSummary(sb *strings.Builder, dep OutdatedDependency) {
	fmt.Fprintf(sb, "- Category: %s\n", dep.Category)
	fmt.Fprintf(sb, "- Current version: `%s`\n", dep.CurrentVersion)
	fmt.Fprintf(sb, "- Latest version: `%s`\n", dep.LatestVersion)
	fmt.Fprintf(sb, "- Update type: %s\n", ClassifyUpdate(dep.CurrentVersion, dep.LatestVersion))
	if dep.LatestReleaseURL != "" {
		fmt.Fprintf(sb, "\nChangelog: [View release](%s)\n", dep.LatestReleaseURL)
	}
}

func writeSnippets(sb *strings.Builder, snippets []OutdatedSnippet, opts IssueBodyOptions) {
	if len(snippets) == 0 {
		return
	}

	fmt.Fprintf(sb, "\n### Outdated snippets (%d)\n\n", len(snippets))

	shown := snippets
	if opts.MaxSnippets >= 0 && len(shown) > opts.MaxSnippets {
		shown = shown[:opts.MaxSnippets]
	}

	for i, snippet := range shown {
		fmt.Fprintf(sb, "%d. `%s:%d` ([current](%s) / [latest](%s))\n",
			i+1, snippet.File, snippet.LineNumber, snippet.CurrentURL, snippet.LatestURL)

		if snippet.CurrentCode == nil || snippet.LatestCode == nil {
			continue
		}
		diff := RenderUnifiedDiff(*snippet.CurrentCode, *snippet.LatestCode, opts.MaxDiffChars)
		if diff == "" {
			continue
		}
		sb.WriteString("\n   ```diff\n")
		for _, line := range strings.Split(strings.TrimRight(diff, "\n"), "\n") {
			sb.WriteString("   " + line + "\n")
		}
		sb.WriteString("   ```\n\n")
	}

	if remaining := len(snippets) - len(shown); remaining > 0 {
		fmt.Fprintf(sb, "\n... and %d more.\n", remaining)
	}
}

// RenderUnifiedDiff renders a unified diff between two snippet texts, truncated to
// maxChars (0 disables the diff entirely). Identical inputs produce an empty string.
func RenderUnifiedDiff(current, latest string, maxChars int) string {
	if maxChars == 0 || current == latest {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(current),
		B:        difflib.SplitLines(latest),
		FromFile: "current",
		ToFile:   "latest",
		Context:  diffContextLines,
	})
	if err != nil {
		return ""
	}

	if maxChars > 0 && len(diff) > maxChars {
		cut := maxChars
		for cut > 0 && !utf8.RuneStart(diff[cut]) {
			cut--
		}
		return diff[:cut] + truncatedSuffix
	}
	return diff
}
