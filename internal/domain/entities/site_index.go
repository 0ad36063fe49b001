package entities

import (
	"time"
)

// PageStats summarizes a page body.
type PageStats struct {
	Chars               int    `json:"chars"`
	Words               int    `json:"words"`
	Headings            int    `json:"headings"`
	EstimatedTokenCount int    `json:"estimated_token_count"`
	TokenEstimator      string `json:"token_estimator"`
}

// SiteIndexRecord is one entry of site-index.json.
type SiteIndexRecord struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Slug         string         `json:"slug"`
	Categories   []string       `json:"categories"`
	RawMDURL     string         `json:"raw_md_url"`
	HTMLURL      *string        `json:"html_url"`
	Preview      string         `json:"preview"`
	Outline      []OutlineEntry `json:"outline"`
	Stats        PageStats      `json:"stats"`
	Hash         string         `json:"hash"`
	LastModified string         `json:"last_modified"`
}

// SectionRecord is one line of llms-full.jsonl.
type SectionRecord struct {
	PageID              string `json:"page_id"`
	Index               int    `json:"index"`
	Depth               int    `json:"depth"`
	Title               string `json:"title"`
	Anchor              string `json:"anchor"`
	StartChar           int    `json:"start_char"`
	EndChar             int    `json:"end_char"`
	EstimatedTokenCount int    `json:"estimated_token_count"`
	TokenEstimator      string `json:"token_estimator"`
	Text                string `json:"text"`
}

// IndexOptions controls how pages are summarized.
type IndexOptions struct {
	PreviewChars int
	MaxDepth     int
	Estimator    TokenEstimator
}

// BuildSiteIndexRecord summarizes a page. The preview falls back to the description.
func BuildSiteIndexRecord(page AIPage, rawBase string, modified time.Time, opts IndexOptions) (SiteIndexRecord, []SectionRecord) {
	outline, sections := ExtractOutlineAndSections(page.Body, opts.MaxDepth)

	preview := ExtractPreview(page.Body, opts.PreviewChars)
	if preview == "" {
		preview = page.Description
	}

	var htmlURL *string
	if page.HTMLURL != "" {
		url := page.HTMLURL
		htmlURL = &url
	}

	record := SiteIndexRecord{
		ID:         page.Slug,
		Title:      page.Title,
		Slug:       page.Slug,
		Categories: page.Categories,
		RawMDURL:   RawPageURL(rawBase, page.Slug),
		HTMLURL:    htmlURL,
		Preview:    preview,
		Outline:    outline,
		Stats: PageStats{
			Chars:               CharCount(page.Body),
			Words:               WordCount(page.Body),
			Headings:            len(outline),
			EstimatedTokenCount: opts.Estimator.Estimate(page.Body),
			TokenEstimator:      opts.Estimator.Label(),
		},
		Hash:         HashText(page.Body),
		LastModified: modified.UTC().Format(time.RFC3339),
	}

	records := make([]SectionRecord, 0, len(sections))
	for _, section := range sections {
		records = append(records, SectionRecord{
			PageID:              page.Slug,
			Index:               section.Index,
			Depth:               section.Depth,
			Title:               section.Title,
			Anchor:              section.Anchor,
			StartChar:           section.StartChar,
			EndChar:             section.EndChar,
			EstimatedTokenCount: opts.Estimator.Estimate(section.Text),
			TokenEstimator:      opts.Estimator.Label(),
			Text:                section.Text,
		})
	}
	return record, records
}

// RawPageURL links an artifact under the raw base.
func RawPageURL(rawBase, slug string) string {
	return rawBase + "/" + slug + ".md"
}
