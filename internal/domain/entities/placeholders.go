package entities

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	placeholderPattern = regexp.MustCompile(`{{\s*([A-Za-z0-9_.-]+)\s*}}`)
	htmlCommentPattern = regexp.MustCompile(`(?s)<!--.*?-->`)
)

// Variables is the decoded variables file used for {{ dotted.path }} substitution.
type Variables map[string]any

// LoadVariables reads a YAML variables file. A missing or empty file yields no variables.
func LoadVariables(path string) (Variables, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Variables{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read variables %q: %w", path, err)
	}

	var vars Variables
	if unmarshalErr := yaml.Unmarshal(data, &vars); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse variables %q: %w", path, unmarshalErr)
	}
	if vars == nil {
		vars = Variables{}
	}
	return vars, nil
}

// Lookup resolves a dotted path through nested mappings (no list indexing).
func (v Variables) Lookup(path string) (any, bool) {
	var current any = map[string]any(v)
	found := false
	for _, key := range strings.Split(path, ".") {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		var mapping map[string]any
		switch typed := current.(type) {
		case Variables:
			mapping = typed
		case map[string]any:
			mapping = typed
		default:
			return nil, false
		}
		value, exists := mapping[key]
		if !exists {
			return nil, false
		}
		current = value
		found = true
	}
	if !found || current == nil {
		return nil, false
	}
	return current, true
}

// ResolvePlaceholders replaces {{ dotted.path }} tokens; unknown paths stay verbatim.
func (v Variables) ResolvePlaceholders(content string) string {
	return placeholderPattern.ReplaceAllStringFunc(content, func(match string) string {
		path := placeholderPattern.FindStringSubmatch(match)[1]
		value, ok := v.Lookup(path)
		if !ok {
			return match
		}
		return formatVariable(value)
	})
}

// CountPlaceholders returns how many placeholder tokens remain in content.
func CountPlaceholders(content string) int {
	return len(placeholderPattern.FindAllStringIndex(content, -1))
}

// StripHTMLComments removes every <!-- ... --> block, including multi-line ones.
func StripHTMLComments(content string) string {
	return htmlCommentPattern.ReplaceAllString(content, "")
}

func formatVariable(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}
