package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTokenEnv      = "GITHUB_TOKEN"
	DefaultIgnoreLabel   = "ignore-dependency-update"
	DefaultMutationDelay = 2 * time.Second
	DefaultMaxSnippets   = 10
	DefaultMaxDiffChars  = 2000
	DefaultReportPath    = "outdated_dependencies.json"
)

// ErrMissingToken is returned when no GitHub token could be resolved.
var ErrMissingToken = errors.New("GitHub token is not set")

// Settings configures the issue reconciler.
type Settings struct {
	Repository    string        `yaml:"repository"` // "owner/name"
	Token         string        `yaml:"token"`      // Inline, ${ENV_VAR}, or file path
	IgnoreLabel   string        `yaml:"ignore_label"`
	Labels        []string      `yaml:"labels"`
	MutationDelay time.Duration `yaml:"mutation_delay"`
	MaxSnippets   int           `yaml:"max_snippets"`
	MaxDiffChars  int           `yaml:"max_diff_chars"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// DefaultSettings returns the settings used when no config file is present.
func DefaultSettings() *Settings {
	return &Settings{
		Token:         "${" + DefaultTokenEnv + "}",
		IgnoreLabel:   DefaultIgnoreLabel,
		Labels:        []string{"dependencies"},
		MutationDelay: DefaultMutationDelay,
		MaxSnippets:   DefaultMaxSnippets,
		MaxDiffChars:  DefaultMaxDiffChars,
	}
}

// NewSettings reads a YAML settings file on top of the defaults and resolves the token.
// An empty path yields the defaults.
func NewSettings(path string) (*Settings, error) {
	settings := DefaultSettings()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
		}
		if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
		}
	}

	settings.Token = resolveToken(settings.Token)
	return settings, nil
}

// Owner returns the repository owner part of "owner/name".
func (s *Settings) Owner() string {
	owner, _, _ := strings.Cut(s.Repository, "/")
	return owner
}

// Name returns the repository name part of "owner/name".
func (s *Settings) Name() string {
	_, name, _ := strings.Cut(s.Repository, "/")
	return name
}

// Validate checks that the settings are usable for a reconciler run.
func (s *Settings) Validate() error {
	if s.Token == "" {
		return fmt.Errorf("%w (set %s, --token or token in the config file)", ErrMissingToken, DefaultTokenEnv)
	}
	if s.Owner() == "" || s.Name() == "" {
		return fmt.Errorf("repository must be in the form owner/name, got %q", s.Repository)
	}
	if s.MaxSnippets < 0 || s.MaxDiffChars < 0 {
		return errors.New("max_snippets and max_diff_chars must not be negative")
	}
	return nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".github",
		".config",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".docsentinel.yaml",
		".docsentinel.yml",
		"docsentinel.yaml",
		"docsentinel.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// resolveToken expands environment variable references (${VAR}) and, if the
// resulting string is a path to an existing file, reads the token from the file.
func resolveToken(raw string) string {
	if raw == "" {
		return raw
	}

	resolved := envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Debugf("Environment variable %q is not set", varName)
		return ""
	})

	if resolved == "" {
		return resolved
	}

	if info, statErr := os.Stat(resolved); statErr == nil && !info.IsDir() {
		data, readErr := os.ReadFile(resolved)
		if readErr != nil {
			logger.Warnf("Failed to read token file %q: %v", resolved, readErr)
			return resolved
		}
		logger.Infof("Read token from file %q", resolved)
		return strings.TrimSpace(string(data))
	}

	return resolved
}
