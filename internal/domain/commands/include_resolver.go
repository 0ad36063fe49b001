package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/docsentinel/internal/domain/entities"
	"github.com/rios0rios0/docsentinel/internal/domain/repositories"
)

// IncludeOptions configures include resolution for one run.
type IncludeOptions struct {
	SnippetsDir string
	Variables   entities.Variables
	AllowRemote bool
}

// IncludeResolver expands --8<-- directives from the snippets directory or over HTTP.
// Local snippets are expanded recursively; fetched content is rescanned.
type IncludeResolver struct {
	content repositories.ContentRepository
	opts    IncludeOptions
}

// NewIncludeResolver creates a resolver bound to one set of options.
func NewIncludeResolver(content repositories.ContentRepository, opts IncludeOptions) *IncludeResolver {
	return &IncludeResolver{content: content, opts: opts}
}

// Resolve expands every include directive in text. Missing or unreachable snippets
// become inline comment markers; include cycles and runaway nesting are errors.
func (r *IncludeResolver) Resolve(ctx context.Context, text string) (string, error) {
	return r.resolve(ctx, text, nil)
}

func (r *IncludeResolver) resolve(ctx context.Context, text string, chain []string) (string, error) {
	for pass := 0; entities.HasIncludes(text); pass++ {
		if pass >= entities.MaxIncludeDepth {
			return "", fmt.Errorf("%w: still unresolved after %d passes", entities.ErrIncludeDepthExceeded, pass)
		}

		var sb strings.Builder
		last := 0
		for _, loc := range entities.FindIncludes(text) {
			sb.WriteString(text[last:loc[0]])
			replacement, err := r.expand(ctx, text[loc[2]:loc[3]], chain)
			if err != nil {
				return "", err
			}
			sb.WriteString(replacement)
			last = loc[1]
		}
		sb.WriteString(text[last:])
		text = sb.String()
	}
	return text, nil
}

func (r *IncludeResolver) expand(ctx context.Context, rawRef string, chain []string) (string, error) {
	ref := r.opts.Variables.ResolvePlaceholders(rawRef)
	if entities.IsRemoteInclude(ref) {
		return r.expandRemote(ctx, ref), nil
	}
	return r.expandLocal(ctx, ref, chain)
}

func (r *IncludeResolver) expandRemote(ctx context.Context, ref string) string {
	if !r.opts.AllowRemote {
		return entities.RemoteSnippetSkippedMarker(ref)
	}
	target, ok := entities.ParseRemoteIncludeRef(ref)
	if !ok {
		return entities.InvalidRemoteSnippetMarker(ref)
	}
	content, err := r.content.Fetch(ctx, target.Path)
	if err != nil {
		logger.Warnf("Failed to fetch remote snippet %q: %v", ref, err)
		return entities.RemoteSnippetErrorMarker(ref)
	}
	return strings.TrimSpace(target.Slice(content))
}

func (r *IncludeResolver) expandLocal(ctx context.Context, ref string, chain []string) (string, error) {
	target := entities.ParseLocalIncludeRef(ref)
	path := filepath.Clean(filepath.Join(r.opts.SnippetsDir, target.Path))

	for _, seen := range chain {
		if seen == path {
			return "", fmt.Errorf("%w: %s", entities.ErrCircularInclude, strings.Join(append(chain, path), " -> "))
		}
	}
	if len(chain) >= entities.MaxIncludeDepth {
		return "", fmt.Errorf("%w: %s nested more than %d levels", entities.ErrIncludeDepthExceeded, path, entities.MaxIncludeDepth)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Warnf("Failed to read local snippet %q: %v", path, err)
		}
		return entities.MissingLocalSnippetMarker(ref), nil
	}

	nested := append(append([]string{}, chain...), path)
	return r.resolve(ctx, target.Slice(string(data)), nested)
}
