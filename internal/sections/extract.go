// Package sections turns raw resume text into section-tagged text blocks.
package sections

import (
	"regexp"
	"strings"
)

// Section is a detected resume section with its heading and body text
type Section struct {
	Heading string `json:"heading"`
	Content string `json:"content"`
}

// Sections holds the four canonical resume sections (nil when not found),
// non-canonical headings in encounter order, and the normalized source text.
type Sections struct {
	Skills         *Section  `json:"skills"`
	Experience     *Section  `json:"experience"`
	Education      *Section  `json:"education"`
	Projects       *Section  `json:"projects"`
	Other          []Section `json:"other"`
	NormalizedText string    `json:"normalized_text"`
}

// Patterns holds the case-insensitive heading patterns for the four canonical
// section families. Injecting patterns keeps the lookup tables out of package
// state and lets tests use restricted vocabularies.
type Patterns struct {
	Skills     *regexp.Regexp
	Experience *regexp.Regexp
	Education  *regexp.Regexp
	Projects   *regexp.Regexp
}

// DefaultPatterns returns the standard heading pattern families
func DefaultPatterns() Patterns {
	return Patterns{
		Skills:     regexp.MustCompile(`(?i)^(technical\s+skills|skills|core\s+competencies|competencies|tech\s+stack)$`),
		Experience: regexp.MustCompile(`(?i)^(work\s+experience|professional\s+experience|experience|employment\s+history)$`),
		Education:  regexp.MustCompile(`(?i)^(education|academic\s+background|qualifications)$`),
		Projects:   regexp.MustCompile(`(?i)^(projects|personal\s+projects|side\s+projects|portfolio)$`),
	}
}

// headingRx matches a section heading line: an uppercase letter followed by
// 2-48 characters drawn from letters, spaces, &, /, comma and hyphen, with an
// optional trailing colon and nothing else on the line.
var headingRx = regexp.MustCompile(`^[A-Z][A-Za-z &/,\-]{2,48}:?$`)

// horizontalWhitespaceRx collapses runs of spaces and tabs
var horizontalWhitespaceRx = regexp.MustCompile(`[ \t]+`)

// excessiveBlankLinesRx matches runs of 3 or more consecutive blank lines
var excessiveBlankLinesRx = regexp.MustCompile(`\n{4,}`)

// Extractor detects canonical resume sections in normalized text
type Extractor struct {
	patterns Patterns
}

// NewExtractor creates an Extractor using the given heading patterns
func NewExtractor(patterns Patterns) *Extractor {
	return &Extractor{patterns: patterns}
}

// NormalizeWhitespace unifies line endings, collapses runs of horizontal
// whitespace, trims each line, collapses 3+ consecutive blank lines to exactly
// one blank line, and trims the overall text.
func NormalizeWhitespace(raw string) string {
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(horizontalWhitespaceRx.ReplaceAllString(line, " "))
	}

	text = strings.Join(lines, "\n")
	text = excessiveBlankLinesRx.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// Extract normalizes raw resume text and splits it into section-tagged
// blocks. It never fails: when no headings are detected, all canonical
// sections are nil and the normalized text is still returned.
func (e *Extractor) Extract(raw string) Sections {
	result := Sections{
		Other:          []Section{},
		NormalizedText: NormalizeWhitespace(raw),
	}

	lines := strings.Split(result.NormalizedText, "\n")

	// Locate heading lines first so each section body can be taken as the
	// lines strictly between consecutive headings.
	type headingPos struct {
		index   int
		heading string
	}
	headings := make([]headingPos, 0)
	for i, line := range lines {
		if isHeading(line) {
			headings = append(headings, headingPos{index: i, heading: strings.TrimSuffix(line, ":")})
		}
	}

	for i, h := range headings {
		start := h.index + 1
		end := len(lines)
		if i+1 < len(headings) {
			end = headings[i+1].index
		}
		content := strings.TrimSpace(strings.Join(lines[start:end], "\n"))
		section := Section{Heading: h.heading, Content: content}

		switch {
		case e.patterns.Skills != nil && e.patterns.Skills.MatchString(h.heading):
			if result.Skills == nil {
				result.Skills = &section
			}
		case e.patterns.Experience != nil && e.patterns.Experience.MatchString(h.heading):
			if result.Experience == nil {
				result.Experience = &section
			}
		case e.patterns.Education != nil && e.patterns.Education.MatchString(h.heading):
			if result.Education == nil {
				result.Education = &section
			}
		case e.patterns.Projects != nil && e.patterns.Projects.MatchString(h.heading):
			if result.Projects == nil {
				result.Projects = &section
			}
		default:
			result.Other = append(result.Other, section)
		}
	}

	return result
}

// isHeading reports whether a normalized line qualifies as a section heading.
// Lines starting with a digit, @, http or www. are treated as content to
// avoid misclassifying dates, emails and URLs as section titles.
func isHeading(line string) bool {
	if len(line) < 3 {
		return false
	}

	lower := strings.ToLower(line)
	if strings.HasPrefix(lower, "@") || strings.HasPrefix(lower, "http") || strings.HasPrefix(lower, "www.") {
		return false
	}
	if line[0] >= '0' && line[0] <= '9' {
		return false
	}

	return headingRx.MatchString(line)
}
