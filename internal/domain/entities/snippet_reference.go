package entities

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

var (
	// GitHub blob URLs pointing at a single line, e.g.
	// https://github.com/org/repo/blob/{{ dependencies.repositories.sdk.version }}/src/lib.rs#L10
	blobReferencePattern = regexp.MustCompile(
		`https://github\.com/.*?/blob/\{\{\s*dependencies\.repositories\.([a-zA-Z_]+)\.version\s*\}\}.*?#L\d+`,
	)
	// raw.githubusercontent.com URLs with an explicit :start:end range.
	rawReferencePattern = regexp.MustCompile(
		`https://raw\.githubusercontent\.com/.*?/refs/tags/\{\{\s*dependencies\.repositories\.([a-zA-Z_]+)\.version\s*\}\}.*?:\d+:\d+`,
	)
	versionPlaceholderPattern = regexp.MustCompile(
		`\{\{\s*dependencies\.repositories\.[a-zA-Z_]+\.version\s*\}\}`,
	)
	blobURLPattern   = regexp.MustCompile(`^https://github\.com/([^/]+)/([^/]+)/blob/([^/]+)/(.+?)(?:#L(\d+))?$`)
	lineRangePattern = regexp.MustCompile(`^(.+):(\d+):(\d+)$`)
)

// SnippetReference is a templated source link found in documentation.
type SnippetReference struct {
	File       string
	LineNumber int
	MatchText  string
	Dependency string
}

// SnippetTarget is a resolved raw URL with an optional 1-based inclusive line range.
type SnippetTarget struct {
	URL       string
	StartLine int // 0 when the whole file is referenced
	EndLine   int
}

// ScanSnippetReferences reads Markdown content line by line and returns the templated
// references whose dependency is in wanted.
func ScanSnippetReferences(file string, r io.Reader, wanted map[string]bool) ([]SnippetReference, error) {
	var refs []SnippetReference
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		for _, pattern := range []*regexp.Regexp{blobReferencePattern, rawReferencePattern} {
			for _, match := range pattern.FindAllStringSubmatch(line, -1) {
				if !wanted[match[1]] {
					continue
				}
				refs = append(refs, SnippetReference{
					File:       file,
					LineNumber: lineNumber,
					MatchText:  match[0],
					Dependency: match[1],
				})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan %q: %w", file, err)
	}
	return refs, nil
}

// SubstituteVersion replaces the repository version placeholder with version.
func SubstituteVersion(templated, version string) string {
	return versionPlaceholderPattern.ReplaceAllLiteralString(templated, version)
}

// ResolveSnippetTarget normalizes a version-substituted reference to its raw form.
func ResolveSnippetTarget(url string) (SnippetTarget, error) {
	if strings.Contains(url, "raw.githubusercontent.com") {
		if match := lineRangePattern.FindStringSubmatch(url); match != nil {
			start, _ := strconv.Atoi(match[2])
			end, _ := strconv.Atoi(match[3])
			return SnippetTarget{URL: match[1], StartLine: start, EndLine: end}, nil
		}
		return SnippetTarget{URL: url}, nil
	}

	match := blobURLPattern.FindStringSubmatch(url)
	if match == nil {
		return SnippetTarget{}, fmt.Errorf("unrecognized snippet URL %q", url)
	}
	target := SnippetTarget{
		URL: fmt.Sprintf("https://raw.githubusercontent.com/%s/%s/%s/%s", match[1], match[2], match[3], match[4]),
	}
	if match[5] != "" {
		line, _ := strconv.Atoi(match[5])
		target.StartLine, target.EndLine = line, line
	}
	return target, nil
}

// SliceLines extracts the target line range (1-based, inclusive) from content.
func (t SnippetTarget) SliceLines(content string) (string, error) {
	if t.StartLine == 0 {
		return content, nil
	}
	normalized := strings.TrimSuffix(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	lines := strings.Split(normalized, "\n")

	if t.StartLine > len(lines) {
		return "", fmt.Errorf("line %d is beyond the end of %s (%d lines)", t.StartLine, t.URL, len(lines))
	}
	end := t.EndLine
	if end > len(lines) {
		end = len(lines)
	}
	if end < t.StartLine {
		return "", nil
	}
	return strings.Join(lines[t.StartLine-1:end], "\n"), nil
}
