package entities

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	IssueStateOpen   = "open"
	IssueStateClosed = "closed"
)

var dependencyMarkerPattern = regexp.MustCompile(`<!--\s*dependency:\s*(.+?)\s*-->`)

// Issue is the subset of a tracker issue the reconciler works with.
type Issue struct {
	Number    int
	Title     string
	Body      string
	State     string
	Labels    []string
	CreatedAt time.Time
	URL       string
}

// IsOpen reports whether the issue is still open.
func (i Issue) IsOpen() bool {
	return i.State == IssueStateOpen
}

// HasLabel reports whether the issue carries label (case-insensitive).
func (i Issue) HasLabel(label string) bool {
	if label == "" {
		return false
	}
	for _, l := range i.Labels {
		if strings.EqualFold(l, label) {
			return true
		}
	}
	return false
}

// IssueComment is a comment attached to an issue.
type IssueComment struct {
	ID   int64
	Body string
}

// IssueInput describes an issue to create.
type IssueInput struct {
	Title  string
	Body   string
	Labels []string
}

// DependencyMarker is the hidden token identifying which dependency an issue tracks.
func DependencyMarker(name string) string {
	return fmt.Sprintf("<!-- dependency: %s -->", name)
}

// VersionMarker is the hidden token identifying a posted version transition.
func VersionMarker(current, latest string) string {
	return fmt.Sprintf("<!-- version-range: %s -> %s -->", current, latest)
}

// ParseDependencyMarker extracts the dependency identifier from an issue body.
func ParseDependencyMarker(body string) (string, bool) {
	match := dependencyMarkerPattern.FindStringSubmatch(body)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// IssueIndex maps dependency identifiers to their canonical tracking issue.
type IssueIndex map[string]Issue

// BuildIssueIndex indexes issues by dependency marker. When several issues share a
// marker, the most recently created open one wins, else the most recently created closed one.
func BuildIssueIndex(issues []Issue) IssueIndex {
	index := make(IssueIndex)
	for _, issue := range issues {
		name, ok := ParseDependencyMarker(issue.Body)
		if !ok {
			continue
		}
		current, exists := index[name]
		if !exists || preferIssue(issue, current) {
			index[name] = issue
		}
	}
	return index
}

// preferIssue reports whether candidate should replace current as canonical.
func preferIssue(candidate, current Issue) bool {
	if candidate.IsOpen() != current.IsOpen() {
		return candidate.IsOpen()
	}
	if !candidate.CreatedAt.Equal(current.CreatedAt) {
		return candidate.CreatedAt.After(current.CreatedAt)
	}
	return candidate.Number > current.Number
}
