//go:build unit

package commands_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/docsentinel/internal/domain/commands"
	"github.com/rios0rios0/docsentinel/internal/domain/entities"
	doubles "github.com/rios0rios0/docsentinel/test/infrastructure/repositorydoubles"
)

func writeSnippets(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
	return dir
}

func TestIncludeResolverResolve(t *testing.T) {
	t.Parallel()

	t.Run("should expand nested local snippets with line ranges", func(t *testing.T) {
		t.Parallel()

		// given
		dir := writeSnippets(t, map[string]string{
			"code/outer.md": "before\n--8<-- 'code/inner.js:2:3'\nafter",
			"code/inner.js": "line1\nline2\nline3\nline4",
		})
		resolver := commands.NewIncludeResolver(&doubles.StubContentRepository{}, commands.IncludeOptions{SnippetsDir: dir})

		// when
		text, err := resolver.Resolve(context.Background(), "# Page\n--8<-- \"code/outer.md\"\n")

		// then
		require.NoError(t, err)
		assert.Equal(t, "# Page\nbefore\nline2\nline3\nafter\n", text)
	})

	t.Run("should resolve placeholders inside the reference", func(t *testing.T) {
		t.Parallel()

		// given
		dir := writeSnippets(t, map[string]string{"code/v2/a.txt": "v2 content"})
		resolver := commands.NewIncludeResolver(&doubles.StubContentRepository{}, commands.IncludeOptions{
			SnippetsDir: dir,
			Variables:   entities.Variables{"sdk": map[string]any{"dir": "v2"}},
		})

		// when
		text, err := resolver.Resolve(context.Background(), "--8<-- 'code/{{ sdk.dir }}/a.txt'")

		// then
		require.NoError(t, err)
		assert.Equal(t, "v2 content", text)
	})

	t.Run("should leave a marker for a missing local snippet", func(t *testing.T) {
		t.Parallel()

		// given
		resolver := commands.NewIncludeResolver(&doubles.StubContentRepository{}, commands.IncludeOptions{SnippetsDir: t.TempDir()})

		// when
		text, err := resolver.Resolve(context.Background(), "--8<-- 'code/none.js'")

		// then
		require.NoError(t, err)
		assert.Equal(t, "<!-- MISSING LOCAL SNIPPET code/none.js -->", text)
	})

	t.Run("should fetch, slice and trim remote snippets", func(t *testing.T) {
		t.Parallel()

		// given
		content := &doubles.StubContentRepository{Contents: map[string]string{
			"https://example.com/lib.rs": "a\n  b\nc\nd",
		}}
		resolver := commands.NewIncludeResolver(content, commands.IncludeOptions{AllowRemote: true})

		// when
		text, err := resolver.Resolve(context.Background(), "--8<-- 'https://example.com/lib.rs:2:3'")

		// then
		require.NoError(t, err)
		assert.Equal(t, "b\nc", text)
		assert.Equal(t, []string{"https://example.com/lib.rs"}, content.Fetched)
	})

	t.Run("should degrade remote failures to markers", func(t *testing.T) {
		t.Parallel()

		// given
		content := &doubles.StubContentRepository{Errors: map[string]error{
			"https://example.com/gone.rs": errors.New("404"),
		}}
		resolver := commands.NewIncludeResolver(content, commands.IncludeOptions{AllowRemote: true})

		// when
		text, err := resolver.Resolve(context.Background(), "--8<-- 'https://example.com/gone.rs'")

		// then
		require.NoError(t, err)
		assert.Equal(t, "<!-- ERROR FETCHING REMOTE SNIPPET https://example.com/gone.rs -->", text)
	})

	t.Run("should skip remote snippets when remote fetching is disabled", func(t *testing.T) {
		t.Parallel()

		// given
		content := &doubles.StubContentRepository{}
		resolver := commands.NewIncludeResolver(content, commands.IncludeOptions{})

		// when
		text, err := resolver.Resolve(context.Background(), "--8<-- 'https://example.com/lib.rs'")

		// then
		require.NoError(t, err)
		assert.Equal(t, "<!-- REMOTE SNIPPET SKIPPED (no-remote): https://example.com/lib.rs -->", text)
		assert.Empty(t, content.Fetched)
	})

	t.Run("should report a circular include", func(t *testing.T) {
		t.Parallel()

		// given
		dir := writeSnippets(t, map[string]string{
			"a.md": "--8<-- 'b.md'",
			"b.md": "--8<-- 'a.md'",
		})
		resolver := commands.NewIncludeResolver(&doubles.StubContentRepository{}, commands.IncludeOptions{SnippetsDir: dir})

		// when
		_, err := resolver.Resolve(context.Background(), "--8<-- 'a.md'")

		// then
		require.ErrorIs(t, err, entities.ErrCircularInclude)
	})

	t.Run("should report remote content that keeps including itself", func(t *testing.T) {
		t.Parallel()

		// given
		content := &doubles.StubContentRepository{Contents: map[string]string{
			"https://example.com/loop.md": "--8<-- 'https://example.com/loop.md'",
		}}
		resolver := commands.NewIncludeResolver(content, commands.IncludeOptions{AllowRemote: true})

		// when
		_, err := resolver.Resolve(context.Background(), "--8<-- 'https://example.com/loop.md'")

		// then
		require.ErrorIs(t, err, entities.ErrIncludeDepthExceeded)
		assert.Len(t, content.Fetched, entities.MaxIncludeDepth)
	})
}
