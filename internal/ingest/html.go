package ingest

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/alexchen/internlens/internal/sections"
)

// jobPostingSelectors are tried in order to locate the posting body on job
// board pages before falling back to the page body.
func jobPostingSelectors() []string {
	return []string{
		".job-description",
		".job-content",
		"#job-description",
		"#job-content",
		".posting-content",
		".job-details",
		"[data-testid='job-description']",
		"main",
		"article",
		".content",
		"#content",
	}
}

// noiseSelector removes chrome and boilerplate elements before text
// extraction.
const noiseSelector = "nav, footer, header, script, style, noscript, .ad, .advertisement, .ads, .sidebar, .cookie-banner, .popup"

// ExtractJobPostingText parses HTML and returns the whitespace-normalized
// main posting text. Plain text input passes through unchanged apart from
// normalization.
func ExtractJobPostingText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find(noiseSelector).Remove()

	var content *goquery.Selection
	for _, selector := range jobPostingSelectors() {
		if selection := doc.Find(selector); selection.Length() > 0 {
			content = selection.First()
			break
		}
	}
	if content == nil {
		content = doc.Find("body")
	}

	return sections.NormalizeWhitespace(content.Text()), nil
}
