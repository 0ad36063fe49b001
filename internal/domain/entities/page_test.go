//go:build unit

package entities_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/docsentinel/internal/domain/entities"
)

func TestSplitFrontMatter(t *testing.T) {
	t.Parallel()

	t.Run("should separate the YAML block from the body", func(t *testing.T) {
		t.Parallel()

		// given
		source := "---\ntitle: Intro\nai_exclude: true\n---\n# Heading\n"

		// when
		fm, body := entities.SplitFrontMatter(source)

		// then
		assert.Equal(t, "Intro", fm["title"])
		assert.True(t, fm.Flag("ai_exclude"))
		assert.Equal(t, "# Heading\n", body)
	})

	t.Run("should return the source untouched without front matter", func(t *testing.T) {
		t.Parallel()

		// given
		source := "# Heading\n---\nnot: fm\n---\n"

		// when
		fm, body := entities.SplitFrontMatter(source)

		// then
		assert.Empty(t, fm)
		assert.Equal(t, source, body)
	})

	t.Run("should drop invalid YAML but still strip the block", func(t *testing.T) {
		t.Parallel()

		// given
		source := "---\ntitle: [broken\n---\nbody"

		// when
		fm, body := entities.SplitFrontMatter(source)

		// then
		assert.Empty(t, fm)
		assert.Equal(t, "body", body)
	})
}

func TestMinimalHeader(t *testing.T) {
	t.Parallel()

	t.Run("should fall back to summary and drop unknown keys", func(t *testing.T) {
		t.Parallel()

		// given
		fm := entities.FrontMatter{
			"title":    "Intro",
			"summary":  "Short summary",
			"template": "root-subdirectory-page.html",
		}

		// when
		header := fm.MinimalHeader("https://docs.example.com/intro/")

		// then
		assert.Equal(t, "Intro", header.Title)
		assert.Equal(t, "Short summary", header.Description)
		assert.Nil(t, header.Categories)
		assert.Equal(t, "https://docs.example.com/intro/", header.URL)
	})

	t.Run("should omit empty values", func(t *testing.T) {
		t.Parallel()

		// given
		fm := entities.FrontMatter{"title": "", "description": "", "categories": []any{}}

		// when
		header := fm.MinimalHeader("")

		// then
		assert.Nil(t, header.Title)
		assert.Nil(t, header.Description)
		assert.Nil(t, header.Categories)
	})
}

func TestRenderAIPage(t *testing.T) {
	t.Parallel()

	t.Run("should write minimal front matter that reads back", func(t *testing.T) {
		t.Parallel()

		// given
		header := entities.FrontMatter{
			"title":       "Intro",
			"description": "Start here",
			"categories":  []any{"Basics", "Tooling"},
		}.MinimalHeader("https://docs.example.com/intro/")

		// when
		text, err := entities.RenderAIPage(header, "\n\n# Intro\n\nHello\n\n")

		// then
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(text, "---\ntitle: Intro\n"))
		assert.True(t, strings.HasSuffix(text, "---\n\n# Intro\n\nHello\n"))

		page := entities.ParseAIPage("intro.md", "intro", text)
		assert.Equal(t, "Intro", page.Title)
		assert.Equal(t, "Start here", page.Description)
		assert.Equal(t, []string{"Basics", "Tooling"}, page.Categories)
		assert.Equal(t, "https://docs.example.com/intro/", page.HTMLURL)
	})
}

func TestReadAIPage(t *testing.T) {
	t.Parallel()

	t.Run("should use defaults when front matter is missing", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "develop-networks.md")
		require.NoError(t, os.WriteFile(path, []byte("# Networks\n"), 0o600))

		// when
		page, err := entities.ReadAIPage(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "develop-networks", page.Slug)
		assert.Equal(t, "develop-networks", page.Title)
		assert.Equal(t, "No description available.", page.Description)
		assert.Equal(t, []string{"Uncategorized"}, page.Categories)
		assert.Empty(t, page.HTMLURL)
	})

	t.Run("should collapse multi-line descriptions", func(t *testing.T) {
		t.Parallel()

		// given
		text := "---\ntitle: T\ndescription: |\n  line one\n  line two\n---\nbody"

		// when
		page := entities.ParseAIPage("t.md", "t", text)

		// then
		assert.Equal(t, "line one line two", page.Description)
	})
}

func TestNormalizeCategories(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      any
		expected []string
	}{
		{name: "should keep list entries", raw: []any{" Basics ", "", "Tooling"}, expected: []string{"Basics", "Tooling"}},
		{name: "should split comma strings", raw: "Basics, Tooling", expected: []string{"Basics", "Tooling"}},
		{name: "should parse bracketed strings", raw: "[Basics, Tooling]", expected: []string{"Basics", "Tooling"}},
		{name: "should default when missing", raw: nil, expected: []string{"Uncategorized"}},
		{name: "should default for blank strings", raw: "  ", expected: []string{"Uncategorized"}},
		{name: "should default for other types", raw: 42, expected: []string{"Uncategorized"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// when
			result := entities.NormalizeCategories(tt.raw)

			// then
			assert.Equal(t, tt.expected, result)
		})
	}
}
