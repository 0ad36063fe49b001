package entities

import (
	"fmt"
	"sort"
	"strings"
)

const (
	defaultProjectName = "Project"
	howToUseText       = "This directory lists URLs for raw Markdown pages that complement the rendered pages " +
		"on the documentation site. Use these Markdown files to retain semantic context when prompting " +
		"models while avoiding passing HTML elements."
	docsSectionText = "This section lists documentation pages by category. Each entry links to a raw " +
		"markdown version of the page and includes a short description. A page may appear in multiple categories."
)

// LLMSTxtInput carries everything rendered into llms.txt.
type LLMSTxtInput struct {
	ProjectName     string
	Summary         string
	RawBase         string
	CategoriesOrder []string
	Pages           []AIPage
}

// RenderLLMSTxt builds the llms.txt map of the documentation: header, usage notes,
// metadata, pages grouped by category, then tutorials.
func RenderLLMSTxt(in LLMSTxtInput) string {
	name := in.ProjectName
	if name == "" {
		name = defaultProjectName
	}

	parts := []string{"# " + name}
	if summary := strings.TrimSpace(in.Summary); summary != "" {
		parts = append(parts, "\n> "+summary+"\n")
	} else {
		parts = append(parts, "")
	}
	parts = append(parts,
		"## How to Use This File",
		howToUseText,
		"",
		renderMetadataSection(in.Pages),
		renderDocsSection(in.Pages, in.RawBase, in.CategoriesOrder),
		"",
		renderTutorialsSection(in.Pages, in.RawBase, name),
		"",
	)
	return strings.Join(parts, "\n")
}

func renderMetadataSection(pages []AIPage) string {
	categories := make(map[string]bool)
	for _, page := range pages {
		for _, category := range page.Categories {
			categories[category] = true
		}
	}
	return strings.Join([]string{
		"## Metadata",
		fmt.Sprintf("- Documentation pages: %d", len(pages)),
		fmt.Sprintf("- Categories: %d", len(categories)),
		fmt.Sprintf("- Tutorials: %d", len(tutorialPages(pages))),
		"",
	}, "\n")
}

func renderDocsSection(pages []AIPage, rawBase string, order []string) string {
	grouped := make(map[string][]string)
	for _, page := range pages {
		for _, category := range page.Categories {
			grouped[category] = append(grouped[category], pageLink(page, rawBase))
		}
	}

	lines := []string{"## Docs", docsSectionText}
	seen := make(map[string]bool)
	for _, category := range order {
		entries, ok := grouped[category]
		if !ok || seen[category] {
			continue
		}
		lines = append(lines, "\nDocs: "+category)
		lines = append(lines, entries...)
		seen[category] = true
	}

	remaining := make([]string, 0)
	for category := range grouped {
		if !seen[category] {
			remaining = append(remaining, category)
		}
	}
	sort.Strings(remaining)
	for _, category := range remaining {
		lines = append(lines, "\nDocs: "+category)
		lines = append(lines, grouped[category]...)
	}
	return strings.Join(lines, "\n")
}

func renderTutorialsSection(pages []AIPage, rawBase, projectName string) string {
	tutorials := tutorialPages(pages)
	if len(tutorials) == 0 {
		return "\n## Tutorials\nNo tutorials available."
	}
	links := make([]string, 0, len(tutorials))
	for _, page := range tutorials {
		links = append(links, pageLink(page, rawBase))
	}
	return fmt.Sprintf("\n## Tutorials\nTutorials for building with %s. "+
		"These provide step-by-step instructions for real-world use cases and implementations.\n%s",
		projectName, strings.Join(links, "\n"))
}

func tutorialPages(pages []AIPage) []AIPage {
	tutorials := make([]AIPage, 0)
	for _, page := range pages {
		for _, category := range page.Categories {
			if strings.Contains(strings.ToLower(category), "tutorial") {
				tutorials = append(tutorials, page)
				break
			}
		}
	}
	return tutorials
}

func pageLink(page AIPage, rawBase string) string {
	return fmt.Sprintf("- [%s](%s): %s", page.Title, RawPageURL(rawBase, page.Slug), page.Description)
}
