package entities

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

const (
	BundleFormatMarkdown = "md"
	BundleFormatJSON     = "json"
	BundleFormatJSONL    = "jsonl"
	BundleFormatAll      = "all"
)

var (
	ErrNoCategories        = errors.New("no categories_order configured under content.categories_order")
	ErrUnknownBundleFormat = errors.New("unknown bundle format")
)

// BundleFormats expands a --format value into the concrete formats to write.
func BundleFormats(format string) ([]string, error) {
	switch format {
	case "", BundleFormatMarkdown:
		return []string{BundleFormatMarkdown}, nil
	case BundleFormatJSON, BundleFormatJSONL:
		return []string{format}, nil
	case BundleFormatAll:
		return []string{BundleFormatMarkdown, BundleFormatJSON, BundleFormatJSONL}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBundleFormat, format)
	}
}

// Bundle is the ordered page set written for one category.
type Bundle struct {
	Category       string
	Slug           string
	IncludesBase   bool
	BaseCategories []string
	Pages          []AIPage
}

// SelectPagesForCategory keeps pages tagged with category (case-insensitive).
func SelectPagesForCategory(category string, pages []AIPage) []AIPage {
	selected := make([]AIPage, 0)
	for _, page := range pages {
		if page.HasCategory(category) {
			selected = append(selected, page)
		}
	}
	return selected
}

// UnionPages concatenates page sets, keeping the first page seen per slug.
func UnionPages(sets ...[]AIPage) []AIPage {
	seen := make(map[string]bool)
	union := make([]AIPage, 0)
	for _, set := range sets {
		for _, page := range set {
			if seen[page.Slug] {
				continue
			}
			seen[page.Slug] = true
			union = append(union, page)
		}
	}
	return union
}

// BuildBundles assembles one bundle per ordered category. Base categories hold only
// their own pages; every other category also carries the union of base pages.
func BuildBundles(categoriesOrder, baseCategories []string, pages []AIPage) []Bundle {
	baseSets := make([][]AIPage, 0, len(baseCategories))
	for _, base := range baseCategories {
		baseSets = append(baseSets, SelectPagesForCategory(base, pages))
	}
	baseUnion := UnionPages(baseSets...)

	bundles := make([]Bundle, 0, len(categoriesOrder))
	for _, category := range categoriesOrder {
		own := SelectPagesForCategory(category, pages)
		bundle := Bundle{
			Category:       category,
			Slug:           SlugifyCategory(category),
			BaseCategories: baseCategories,
		}
		if isListed(category, baseCategories) {
			bundle.Pages = own
		} else {
			bundle.IncludesBase = true
			bundle.Pages = UnionPages(baseUnion, own)
		}
		sortPagesByTitle(bundle.Pages)
		bundles = append(bundles, bundle)
	}
	return bundles
}

// RenderMarkdown concatenates the bundle pages with source headers between them.
func (b Bundle) RenderMarkdown(rawBase string) string {
	lines := []string{"# Bundle: " + b.Category}
	if b.IncludesBase {
		lines = append(lines, "> Includes shared base categories: "+strings.Join(b.BaseCategories, ", "))
	}
	lines = append(lines, "")

	for _, page := range b.Pages {
		lines = append(lines, fmt.Sprintf("\n---\n\n# %s\n", page.Title))
		lines = append(lines, "> Source (raw): "+RawPageURL(rawBase, page.Slug))
		if page.HTMLURL != "" {
			lines = append(lines, "> Canonical (HTML): "+page.HTMLURL)
		}
		if page.Description != "" {
			lines = append(lines, "> Summary: "+page.Description)
		}
		lines = append(lines, "", strings.TrimSpace(page.Body), "")
	}
	return strings.Join(lines, "\n")
}

// BundleManifestPage is one page entry of a bundle manifest.
type BundleManifestPage struct {
	Slug                string   `json:"slug"`
	Title               string   `json:"title"`
	Categories          []string `json:"categories"`
	RawMDURL            string   `json:"raw_md_url"`
	HTMLURL             string   `json:"html_url,omitempty"`
	EstimatedTokenCount int      `json:"estimated_token_count"`
}

// BundleManifest is the .manifest.json form of a bundle.
type BundleManifest struct {
	Category            string               `json:"category"`
	Slug                string               `json:"slug"`
	IncludesBase        bool                 `json:"includes_base"`
	BaseCategories      []string             `json:"base_categories"`
	PageCount           int                  `json:"page_count"`
	EstimatedTokenCount int                  `json:"estimated_token_count"`
	TokenEstimator      string               `json:"token_estimator"`
	Pages               []BundleManifestPage `json:"pages"`
}

// BundleRecord is one line of the .bundle.jsonl form.
type BundleRecord struct {
	Category            string   `json:"category"`
	Slug                string   `json:"slug"`
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	Categories          []string `json:"categories"`
	RawMDURL            string   `json:"raw_md_url"`
	HTMLURL             string   `json:"html_url,omitempty"`
	EstimatedTokenCount int      `json:"estimated_token_count"`
	TokenEstimator      string   `json:"token_estimator"`
	Text                string   `json:"text"`
}

// Manifest summarizes the bundle with per-page token estimates.
func (b Bundle) Manifest(rawBase string, estimator TokenEstimator) BundleManifest {
	manifest := BundleManifest{
		Category:       b.Category,
		Slug:           b.Slug,
		IncludesBase:   b.IncludesBase,
		BaseCategories: nonNilStrings(b.BaseCategories),
		PageCount:      len(b.Pages),
		TokenEstimator: estimator.Label(),
		Pages:          make([]BundleManifestPage, 0, len(b.Pages)),
	}
	for _, page := range b.Pages {
		tokens := estimator.Estimate(page.Body)
		manifest.EstimatedTokenCount += tokens
		manifest.Pages = append(manifest.Pages, BundleManifestPage{
			Slug:                page.Slug,
			Title:               page.Title,
			Categories:          page.Categories,
			RawMDURL:            RawPageURL(rawBase, page.Slug),
			HTMLURL:             page.HTMLURL,
			EstimatedTokenCount: tokens,
		})
	}
	return manifest
}

// Records returns one JSONL record per bundled page.
func (b Bundle) Records(rawBase string, estimator TokenEstimator) []BundleRecord {
	records := make([]BundleRecord, 0, len(b.Pages))
	for _, page := range b.Pages {
		text := strings.TrimSpace(page.Body)
		records = append(records, BundleRecord{
			Category:            b.Category,
			Slug:                page.Slug,
			Title:               page.Title,
			Description:         page.Description,
			Categories:          page.Categories,
			RawMDURL:            RawPageURL(rawBase, page.Slug),
			HTMLURL:             page.HTMLURL,
			EstimatedTokenCount: estimator.Estimate(page.Body),
			TokenEstimator:      estimator.Label(),
			Text:                text,
		})
	}
	return records
}

func sortPagesByTitle(pages []AIPage) {
	sort.SliceStable(pages, func(i, j int) bool {
		return strings.ToLower(pages[i].Title) < strings.ToLower(pages[j].Title)
	})
}

func isListed(value string, list []string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
