package entities

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MaxIncludeDepth caps nested include resolution.
const MaxIncludeDepth = 16

var (
	ErrCircularInclude      = errors.New("circular include")
	ErrIncludeDepthExceeded = errors.New("include depth exceeded")
)

var (
	includePattern   = regexp.MustCompile(`-{1,}8<-{2,}\s*['"]([^'"]+)['"]`)
	remoteRefPattern = regexp.MustCompile(`^(https?://.+?)(?::(\d+))?(?::(\d+))?$`)
)

// IncludeRef is the target of a --8<-- directive with an optional line range.
type IncludeRef struct {
	Path      string
	StartLine int // 0 when unset
	EndLine   int // 0 when unset
}

// HasRange reports whether both range bounds are set.
func (r IncludeRef) HasRange() bool {
	return r.StartLine > 0 && r.EndLine > 0
}

// Slice keeps lines StartLine..EndLine (1-based, inclusive) when a full range is set.
// Out-of-range bounds are clamped.
func (r IncludeRef) Slice(content string) string {
	if !r.HasRange() {
		return content
	}
	lines := strings.Split(content, "\n")
	start := min(r.StartLine-1, len(lines))
	end := min(r.EndLine, len(lines))
	if end <= start {
		return ""
	}
	return strings.Join(lines[start:end], "\n")
}

// ParseLocalIncludeRef splits "path[:start[:end]]". Non-numeric range parts are ignored.
func ParseLocalIncludeRef(ref string) IncludeRef {
	parts := strings.Split(ref, ":")
	result := IncludeRef{Path: parts[0]}
	if len(parts) > 1 {
		result.StartLine = parseLineNumber(parts[1])
	}
	if len(parts) > 2 {
		result.EndLine = parseLineNumber(parts[2])
	}
	return result
}

// ParseRemoteIncludeRef splits "http(s)://url[:start[:end]]".
func ParseRemoteIncludeRef(ref string) (IncludeRef, bool) {
	match := remoteRefPattern.FindStringSubmatch(ref)
	if match == nil {
		return IncludeRef{}, false
	}
	return IncludeRef{
		Path:      match[1],
		StartLine: parseLineNumber(match[2]),
		EndLine:   parseLineNumber(match[3]),
	}, true
}

// IsRemoteInclude reports whether ref is fetched over HTTP.
func IsRemoteInclude(ref string) bool {
	return strings.HasPrefix(ref, "http")
}

// FindIncludes returns the submatch indices of every include directive in text.
func FindIncludes(text string) [][]int {
	return includePattern.FindAllStringSubmatchIndex(text, -1)
}

// HasIncludes reports whether text still holds an include directive.
func HasIncludes(text string) bool {
	return includePattern.MatchString(text)
}

// CountIncludes returns how many include directives text holds.
func CountIncludes(text string) int {
	return len(includePattern.FindAllStringIndex(text, -1))
}

func MissingLocalSnippetMarker(ref string) string {
	return fmt.Sprintf("<!-- MISSING LOCAL SNIPPET %s -->", ref)
}

func RemoteSnippetSkippedMarker(ref string) string {
	return fmt.Sprintf("<!-- REMOTE SNIPPET SKIPPED (no-remote): %s -->", ref)
}

func InvalidRemoteSnippetMarker(ref string) string {
	return fmt.Sprintf("<!-- INVALID REMOTE SNIPPET %s -->", ref)
}

func RemoteSnippetErrorMarker(ref string) string {
	return fmt.Sprintf("<!-- ERROR FETCHING REMOTE SNIPPET %s -->", ref)
}

func parseLineNumber(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
