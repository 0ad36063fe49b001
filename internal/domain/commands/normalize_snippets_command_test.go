//go:build unit

package commands_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/docsentinel/internal/domain/commands"
)

const indentedSnippet = "<div class=\"termynal\">\n<span data-ty=\"input\">    cargo build</span>\n" +
	"<span data-ty>\tcompiled</span>\n</div>\n"

func TestNormalizeSnippetsCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should replace leading span spaces and leave other files alone", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		writeTree(t, dir, map[string]string{
			"build.html":        indentedSnippet,
			"nested/plain.html": "<span>ok</span>\n",
			"notes.txt":         "<span>    untouched</span>",
		})
		cmd := commands.NewNormalizeSnippetsCommand()

		// when
		result, err := cmd.Execute(context.Background(), commands.NormalizeSnippetsOptions{Dir: dir})

		// then
		require.NoError(t, err)
		assert.Equal(t, 3, result.Scanned)
		assert.Equal(t, []string{filepath.Join(dir, "build.html")}, result.Changed)

		data, readErr := os.ReadFile(filepath.Join(dir, "build.html"))
		require.NoError(t, readErr)
		assert.Equal(t, "<div class=\"termynal\">\n<span data-ty=\"input\">&nbsp;&nbsp;&nbsp;&nbsp;cargo build</span>\n"+
			"<span data-ty>\tcompiled</span>\n</div>\n", string(data))
	})

	t.Run("should be idempotent", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		writeTree(t, dir, map[string]string{"build.html": indentedSnippet})
		cmd := commands.NewNormalizeSnippetsCommand()
		_, err := cmd.Execute(context.Background(), commands.NormalizeSnippetsOptions{Dir: dir})
		require.NoError(t, err)

		// when
		result, err := cmd.Execute(context.Background(), commands.NormalizeSnippetsOptions{Dir: dir})

		// then
		require.NoError(t, err)
		assert.Empty(t, result.Changed)
	})

	t.Run("should only report changes in dry-run mode", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		writeTree(t, dir, map[string]string{"build.html": indentedSnippet})
		cmd := commands.NewNormalizeSnippetsCommand()

		// when
		result, err := cmd.Execute(context.Background(), commands.NormalizeSnippetsOptions{Dir: dir, DryRun: true})

		// then
		require.NoError(t, err)
		assert.Len(t, result.Changed, 1)
		data, readErr := os.ReadFile(filepath.Join(dir, "build.html"))
		require.NoError(t, readErr)
		assert.Equal(t, indentedSnippet, string(data))
	})

	t.Run("should fail for a missing directory", func(t *testing.T) {
		t.Parallel()

		// given
		cmd := commands.NewNormalizeSnippetsCommand()

		// when
		_, err := cmd.Execute(context.Background(), commands.NormalizeSnippetsOptions{
			Dir: filepath.Join(t.TempDir(), "missing"),
		})

		// then
		require.Error(t, err)
	})
}

func TestReplaceSpanLeadingWhitespace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "should replace spaces and keep other whitespace",
			content:  "<span class=\"a\">  x</span><span>\n y</span><b>  z</b>",
			expected: "<span class=\"a\">&nbsp;&nbsp;x</span><span>\n&nbsp;y</span><b>  z</b>",
		},
		{
			name:     "should leave spans inside comments alone",
			content:  "<!-- <span>  hidden</span> --><span>  shown</span>",
			expected: "<!-- <span>  hidden</span> --><span>&nbsp;&nbsp;shown</span>",
		},
		{
			name:     "should leave spans inside scripts alone",
			content:  "<script>const s = '<span>  x</span>';</script>",
			expected: "<script>const s = '<span>  x</span>';</script>",
		},
		{
			name:     "should ignore spans whose first child is an element",
			content:  "<span><b>  x</b></span>",
			expected: "<span><b>  x</b></span>",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// when
			out, err := commands.ReplaceSpanLeadingWhitespace(tt.content)

			// then
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}
