package entities

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	DefaultPreviewChars = 500
	DefaultMaxDepth     = 3
	minSectionDepth     = 2
	maxHeadingDepth     = 6
)

var (
	headingPattern     = regexp.MustCompile(`^(#{2,6})\s+(.+?)\s*#*\s*$`)
	fencePattern       = regexp.MustCompile("^(\\s*)(`{3,}|~{3,})")
	orderedItemPattern = regexp.MustCompile(`^\d+\.\s`)
	wordPattern        = regexp.MustCompile(`[\p{L}\p{N}_]+`)
)

// OutlineEntry is one indexed heading of a page.
type OutlineEntry struct {
	Depth  int    `json:"depth"`
	Title  string `json:"title"`
	Anchor string `json:"anchor"`
}

// Section spans from its heading to the next indexed heading. Offsets count characters
// (not bytes) into the page body.
type Section struct {
	Index     int
	Depth     int
	Title     string
	Anchor    string
	StartChar int
	EndChar   int
	Text      string
}

// ExtractOutlineAndSections indexes H2..maxDepth headings found outside fenced code blocks.
func ExtractOutlineAndSections(body string, maxDepth int) ([]OutlineEntry, []Section) {
	if maxDepth > maxHeadingDepth {
		maxDepth = maxHeadingDepth
	}

	type heading struct {
		depth     int
		byteStart int
		charStart int
		title     string
		anchor    string
	}

	lines := strings.SplitAfter(body, "\n")
	slugger := NewAnchorSlugger()
	outline := make([]OutlineEntry, 0)
	var headings []heading

	inCode := false
	fence := ""
	byteOffset, charOffset := 0, 0
	for _, raw := range lines {
		lineBytes, lineChars := byteOffset, charOffset
		byteOffset += len(raw)
		charOffset += utf8.RuneCountInString(raw)

		line := strings.TrimRight(raw, "\r\n")
		if m := fencePattern.FindStringSubmatch(line); m != nil {
			switch {
			case !inCode:
				inCode, fence = true, m[2]
			case m[2] == fence:
				inCode, fence = false, ""
			}
			continue
		}
		if inCode {
			continue
		}

		m := headingPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		depth := len(m[1])
		if depth < minSectionDepth || depth > maxDepth {
			continue
		}
		title := strings.TrimSpace(m[2])
		anchor := slugger.Slug(title)
		outline = append(outline, OutlineEntry{Depth: depth, Title: title, Anchor: anchor})
		headings = append(headings, heading{
			depth: depth, byteStart: lineBytes, charStart: lineChars, title: title, anchor: anchor,
		})
	}

	sections := make([]Section, 0, len(headings))
	totalChars := utf8.RuneCountInString(body)
	for i, h := range headings {
		endByte, endChar := len(body), totalChars
		if i+1 < len(headings) {
			endByte, endChar = headings[i+1].byteStart, headings[i+1].charStart
		}
		sections = append(sections, Section{
			Index:     i,
			Depth:     h.depth,
			Title:     h.title,
			Anchor:    h.anchor,
			StartChar: h.charStart,
			EndChar:   endChar,
			Text:      strings.TrimSpace(body[h.byteStart:endByte]),
		})
	}
	return outline, sections
}

// ExtractPreview returns the first prose paragraph outside fenced code, skipping
// headings, quotes and list items, with whitespace collapsed and capped at maxChars.
func ExtractPreview(body string, maxChars int) string {
	var paragraph []string
	inCode := false

	for _, line := range strings.Split(strings.ReplaceAll(body, "\r\n", "\n"), "\n") {
		if fencePattern.MatchString(line) {
			inCode = !inCode
			if len(paragraph) > 0 {
				break
			}
			continue
		}
		if inCode {
			continue
		}
		if strings.TrimSpace(line) == "" {
			if len(paragraph) > 0 {
				break
			}
			continue
		}
		if len(paragraph) == 0 && isNonProseStart(line) {
			continue
		}
		paragraph = append(paragraph, line)
	}

	if len(paragraph) == 0 {
		return ""
	}
	text := strings.Join(strings.Fields(strings.Join(paragraph, " ")), " ")
	if maxChars >= 0 && utf8.RuneCountInString(text) > maxChars {
		text = string([]rune(text)[:maxChars])
	}
	return strings.TrimRight(text, " \t\n")
}

func isNonProseStart(line string) bool {
	s := strings.TrimLeft(line, " \t")
	return s == "" ||
		strings.HasPrefix(s, "#") ||
		strings.HasPrefix(s, ">") ||
		strings.HasPrefix(s, "- ") ||
		strings.HasPrefix(s, "* ") ||
		orderedItemPattern.MatchString(s)
}

// WordCount counts runs of letters, digits and underscores.
func WordCount(text string) int {
	return len(wordPattern.FindAllStringIndex(text, -1))
}

// CharCount counts characters, not bytes.
func CharCount(text string) int {
	return utf8.RuneCountInString(text)
}

// HashText returns the "sha256:<hex>" content hash used in the site index.
func HashText(text string) string {
	sum := sha256.Sum256([]byte(text))
	return "sha256:" + hex.EncodeToString(sum[:])
}
