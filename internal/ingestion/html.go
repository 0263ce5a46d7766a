package ingestion

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var tagPattern = regexp.MustCompile(`(?i)<\s*(html|body|div|p|br|span|ul|li|table|h[1-6])\b`)

// looksLikeHTML is a cheap heuristic for pasted markup: a known tag
// opening anywhere in the content.
func looksLikeHTML(content string) bool {
	return tagPattern.MatchString(content)
}

// StripHTML extracts the visible text from HTML content. Script and
// style bodies are dropped; block elements become line breaks so the
// downstream cleaner can collapse them. On unparseable input the
// original content is returned unchanged.
func StripHTML(content string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return content
	}

	doc.Find("script, style, noscript").Remove()

	// Force breaks after block elements so words do not run together.
	doc.Find("p, div, li, br, h1, h2, h3, h4, h5, h6, tr").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	return doc.Text()
}
