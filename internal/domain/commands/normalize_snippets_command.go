package commands

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	logger "github.com/sirupsen/logrus"
	"golang.org/x/net/html"
)

// DefaultSnippetsHTMLDir is where rendered terminal-output snippets live.
const DefaultSnippetsHTMLDir = ".snippets/code"

const htmlWhitespace = " \t\n\f\r"

// NormalizeSnippets is the interface for the normalize-snippets command.
type NormalizeSnippets interface {
	Execute(ctx context.Context, opts NormalizeSnippetsOptions) (NormalizeSnippetsResult, error)
}

// NormalizeSnippetsOptions holds runtime options for the HTML normalizer.
type NormalizeSnippetsOptions struct {
	Dir    string
	DryRun bool
}

// NormalizeSnippetsResult lists the files that were (or would be) rewritten.
type NormalizeSnippetsResult struct {
	Scanned int
	Changed []string
}

// NormalizeSnippetsCommand keeps indentation in rendered snippets by turning the
// leading spaces of <span> text into non-breaking spaces.
type NormalizeSnippetsCommand struct{}

// NewNormalizeSnippetsCommand creates a new NormalizeSnippetsCommand.
func NewNormalizeSnippetsCommand() *NormalizeSnippetsCommand {
	return &NormalizeSnippetsCommand{}
}

func (it *NormalizeSnippetsCommand) Execute(
	_ context.Context,
	opts NormalizeSnippetsOptions,
) (NormalizeSnippetsResult, error) {
	var result NormalizeSnippetsResult
	dir := opts.Dir
	if dir == "" {
		dir = DefaultSnippetsHTMLDir
	}

	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".html" {
			return nil
		}
		result.Scanned++

		changed, spans, fileErr := normalizeFile(path, opts.DryRun)
		if fileErr != nil {
			logger.Errorf("Unable to process %s: %v", path, fileErr)
			return nil
		}
		if changed {
			result.Changed = append(result.Changed, path)
			logger.Infof("Processed: %s (%d spans)", path, spans)
		}
		return nil
	})
	if walkErr != nil {
		return result, fmt.Errorf("failed to walk %q: %w", dir, walkErr)
	}

	if opts.DryRun {
		logger.Infof("[dry-run] %d of %d files would change", len(result.Changed), result.Scanned)
	}
	return result, nil
}

// normalizeFile rewrites path in place when one of its spans starts with spaces.
// Tokens are copied back from their raw bytes, so only the rewritten whitespace changes.
func normalizeFile(path string, dryRun bool) (bool, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, 0, err
	}

	spans, err := countIndentedSpans(data)
	if err != nil || spans == 0 {
		return false, 0, err
	}

	out, err := ReplaceSpanLeadingWhitespace(string(data))
	if err != nil {
		return false, 0, err
	}
	if out == string(data) {
		return false, 0, nil
	}
	if dryRun {
		return true, spans, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, 0, err
	}
	if writeErr := os.WriteFile(path, []byte(out), info.Mode().Perm()); writeErr != nil {
		return false, 0, writeErr
	}
	return true, spans, nil
}

// countIndentedSpans counts <span> elements whose first child is text starting with
// whitespace that holds at least one plain space.
func countIndentedSpans(data []byte) (int, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return 0, fmt.Errorf("failed to parse HTML: %w", err)
	}

	count := 0
	doc.Find("span").Each(func(_ int, s *goquery.Selection) {
		first := s.Nodes[0].FirstChild
		if first == nil || first.Type != html.TextNode {
			return
		}
		leading := first.Data[:len(first.Data)-len(strings.TrimLeft(first.Data, htmlWhitespace))]
		if strings.Contains(leading, " ") {
			count++
		}
	})
	return count, nil
}

// ReplaceSpanLeadingWhitespace turns the spaces that open the text of each <span>
// element into &nbsp; entities. Other whitespace characters are kept, and markup inside
// comments or raw-text elements such as <script> is never rewritten.
func ReplaceSpanLeadingWhitespace(content string) (string, error) {
	var out strings.Builder
	tokenizer := html.NewTokenizer(strings.NewReader(content))
	afterSpan := false

	for {
		tokenType := tokenizer.Next()
		if tokenType == html.ErrorToken {
			if errors.Is(tokenizer.Err(), io.EOF) {
				return out.String(), nil
			}
			return "", fmt.Errorf("failed to tokenize HTML: %w", tokenizer.Err())
		}

		raw := string(tokenizer.Raw())
		if tokenType == html.TextToken && afterSpan {
			rest := strings.TrimLeft(raw, htmlWhitespace)
			leading := raw[:len(raw)-len(rest)]
			raw = strings.ReplaceAll(leading, " ", "&nbsp;") + rest
		}
		out.WriteString(raw)

		afterSpan = false
		if tokenType == html.StartTagToken {
			name, _ := tokenizer.TagName()
			afterSpan = string(name) == "span"
		}
	}
}
