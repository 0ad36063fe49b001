package entities

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultDescription = "No description available."
	uncategorized      = "Uncategorized"
)

var frontMatterPattern = regexp.MustCompile(`(?s)\A---\s*\n(.*?)\n---\s*\n?`)

// FrontMatter is a decoded YAML front matter block.
type FrontMatter map[string]any

// SplitFrontMatter separates a leading YAML block from the body. Invalid YAML yields
// an empty FrontMatter while the block is still removed from the body.
func SplitFrontMatter(source string) (FrontMatter, string) {
	loc := frontMatterPattern.FindStringSubmatchIndex(source)
	if loc == nil {
		return FrontMatter{}, source
	}

	var fm FrontMatter
	if err := yaml.Unmarshal([]byte(source[loc[2]:loc[3]]), &fm); err != nil || fm == nil {
		fm = FrontMatter{}
	}
	return fm, source[loc[1]:]
}

// Flag reports whether key is set to a truthy value.
func (fm FrontMatter) Flag(key string) bool {
	switch value := fm[key].(type) {
	case bool:
		return value
	case string:
		return strings.EqualFold(value, "true") || strings.EqualFold(value, "yes")
	default:
		return false
	}
}

// PageHeader is the minimal front matter written on AI page artifacts, in output order.
type PageHeader struct {
	Title       any    `yaml:"title,omitempty"`
	Description any    `yaml:"description,omitempty"`
	Categories  any    `yaml:"categories,omitempty"`
	URL         string `yaml:"url,omitempty"`
}

// MinimalHeader keeps only title, description (falling back to summary) and categories.
func (fm FrontMatter) MinimalHeader(url string) PageHeader {
	header := PageHeader{
		Title:      nonEmpty(fm["title"]),
		Categories: nonEmpty(fm["categories"]),
		URL:        url,
	}
	if desc, ok := fm["description"]; ok {
		header.Description = nonEmpty(desc)
	} else {
		header.Description = nonEmpty(fm["summary"])
	}
	return header
}

// RenderAIPage produces the artifact text: minimal front matter plus the trimmed body.
func RenderAIPage(header PageHeader, body string) (string, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(header); err != nil {
		return "", fmt.Errorf("failed to encode front matter: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return "", fmt.Errorf("failed to encode front matter: %w", err)
	}

	fmText := strings.TrimSpace(buf.String())
	if fmText == "{}" {
		fmText = ""
	}
	return fmt.Sprintf("---\n%s\n---\n\n%s\n", fmText, strings.TrimSpace(body)), nil
}

// AIPage is a generated page artifact read back for indexing and bundling.
type AIPage struct {
	Path        string
	Slug        string
	Title       string
	Description string
	Categories  []string
	HTMLURL     string
	Body        string
}

// ReadAIPage loads an artifact from disk; the slug is the file stem.
func ReadAIPage(path string) (AIPage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return AIPage{}, fmt.Errorf("failed to read page %q: %w", path, err)
	}
	slug := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return ParseAIPage(path, slug, string(data)), nil
}

// ParseAIPage builds an AIPage from artifact text, normalizing loosely typed fields.
func ParseAIPage(path, slug, text string) AIPage {
	fm, body := SplitFrontMatter(text)

	title := slug
	if t, ok := fm["title"]; ok && t != nil && fmt.Sprint(t) != "" {
		title = fmt.Sprint(t)
	}

	page := AIPage{
		Path:        path,
		Slug:        slug,
		Title:       title,
		Description: normalizeDescription(fm),
		Categories:  NormalizeCategories(fm["categories"]),
		Body:        body,
	}
	if url, ok := fm["url"].(string); ok {
		page.HTMLURL = strings.TrimSpace(url)
	}
	return page
}

// HasCategory reports whether the page belongs to category (case-insensitive).
func (p AIPage) HasCategory(category string) bool {
	for _, c := range p.Categories {
		if strings.EqualFold(c, category) {
			return true
		}
	}
	return false
}

// NormalizeCategories accepts a YAML list, a comma-separated string or a bracketed
// "[A, B]" string. Anything else is "Uncategorized".
func NormalizeCategories(raw any) []string {
	switch value := raw.(type) {
	case []any:
		categories := make([]string, 0, len(value))
		for _, item := range value {
			if s := strings.TrimSpace(fmt.Sprint(item)); s != "" {
				categories = append(categories, s)
			}
		}
		return categories
	case string:
		s := strings.TrimSpace(value)
		if s == "" {
			return []string{uncategorized}
		}
		if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
			var parsed []any
			if err := yaml.Unmarshal([]byte(s), &parsed); err == nil {
				return NormalizeCategories(parsed)
			}
			return splitCategories(strings.Trim(s, "[]"))
		}
		if categories := splitCategories(s); len(categories) > 0 {
			return categories
		}
		return []string{s}
	default:
		return []string{uncategorized}
	}
}

func splitCategories(s string) []string {
	var categories []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			categories = append(categories, trimmed)
		}
	}
	return categories
}

func normalizeDescription(fm FrontMatter) string {
	raw := fm["description"]
	if s, ok := raw.(string); !ok || s == "" {
		if raw == nil || ok {
			raw = fm["summary"]
		}
	}

	description := ""
	switch value := raw.(type) {
	case nil:
	case string:
		description = strings.Join(strings.Fields(value), " ")
	default:
		description = strings.TrimSpace(fmt.Sprint(value))
	}

	if description == "" {
		return defaultDescription
	}
	return description
}

func nonEmpty(value any) any {
	switch typed := value.(type) {
	case nil:
		return nil
	case string:
		if typed == "" {
			return nil
		}
	case []any:
		if len(typed) == 0 {
			return nil
		}
	}
	return value
}
