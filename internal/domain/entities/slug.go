package entities

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

var (
	backtickPattern       = regexp.MustCompile("`+")
	nonSlugCharPattern    = regexp.MustCompile(`[^\p{L}\p{N}_\s-]`)
	whitespaceRunPattern  = regexp.MustCompile(`\s+`)
	repeatedHyphenPattern = regexp.MustCompile(`-{2,}`)
)

// ComputeSlugAndURL derives the artifact slug and canonical docs URL from a docs-relative
// path without extension. A trailing "/index" segment is collapsed, so "foo/index" and
// "foo" share the slug "foo".
func ComputeSlugAndURL(relPathNoExt, docsBaseURL string) (string, string) {
	route := filepath.ToSlash(relPathNoExt)
	route = strings.TrimSuffix(route, "/index")

	slug := strings.ToLower(strings.ReplaceAll(route, "/", "-"))
	if !strings.HasSuffix(route, "/") {
		route += "/"
	}
	return slug, docsBaseURL + route
}

// SlugifyCategory turns a category name into a file-name-safe slug.
func SlugifyCategory(name string) string {
	if s := slugify(name); s != "" {
		return s
	}
	return "category"
}

// AnchorSlugger approximates MkDocs heading anchors, numbering duplicates within a page.
type AnchorSlugger struct {
	seen map[string]int
}

func NewAnchorSlugger() *AnchorSlugger {
	return &AnchorSlugger{seen: make(map[string]int)}
}

// Slug returns the anchor for a heading text: "setup", then "setup-2", "setup-3"...
func (s *AnchorSlugger) Slug(text string) string {
	anchor := slugify(backtickPattern.ReplaceAllString(text, ""))
	if anchor == "" {
		anchor = "section"
	}
	if count, ok := s.seen[anchor]; ok {
		count++
		s.seen[anchor] = count
		return anchor + "-" + strconv.Itoa(count)
	}
	s.seen[anchor] = 1
	return anchor
}

func slugify(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = nonSlugCharPattern.ReplaceAllString(s, "")
	s = whitespaceRunPattern.ReplaceAllString(s, "-")
	s = repeatedHyphenPattern.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
