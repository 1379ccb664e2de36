package conv

import (
	"fmt"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/inbucket/html2text"
	"github.com/microcosm-cc/bluemonday"
)

var (
	extensions   = parser.CommonExtensions | parser.NoEmptyLineBeforeBlock
	htmlFlags    = html.CommonFlags
	exportPolicy = bluemonday.NewPolicy()
)

func init() {
	// Document subset produced by the markdown exporter
	exportPolicy.AllowElements(
		"h1", "h2", "h3", "h4", "p", "br", "hr",
		"ul", "ol", "li",
		"b", "strong", "i", "em", "del", "code", "pre", "blockquote",
		"table", "thead", "tbody", "tr", "th", "td",
	)
	exportPolicy.AllowStandardURLs()
	exportPolicy.AllowAttrs("href").OnElements("a")
	exportPolicy.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("code", "span")
}

// MarkdownToHTML renders md and strips everything outside the export subset.
// Raw HTML inside md, scripts included, never survives.
func MarkdownToHTML(md []byte) string {
	p := parser.NewWithExtensions(extensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: htmlFlags})
	unsafeHTML := markdown.Render(p.Parse(md), renderer)

	return string(exportPolicy.SanitizeBytes(unsafeHTML))
}

// HTMLToText flattens html into readable plain text. Link targets are dropped.
func HTMLToText(doc string) (string, error) {
	text, err := html2text.FromString(doc, html2text.Options{
		OmitLinks:    true,
		PrettyTables: true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to convert html to text: %w", err)
	}
	return text, nil
}

// MarkdownToText renders md to sanitized html and flattens it to plain text.
func MarkdownToText(md []byte) (string, error) {
	return HTMLToText(MarkdownToHTML(md))
}
