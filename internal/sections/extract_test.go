package sections

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_CanonicalSectionsRoundTrip(t *testing.T) {
	raw := "Skills\nGo, Python, SQL (since 2019)\n\nExperience\nBuilt internal tooling at Acme.\nShipped a billing service.\n\nEducation\nB.S. Computer Science, State University"

	result := NewExtractor(DefaultPatterns()).Extract(raw)

	require.NotNil(t, result.Skills)
	require.NotNil(t, result.Experience)
	require.NotNil(t, result.Education)
	assert.Equal(t, "Go, Python, SQL (since 2019)", result.Skills.Content)
	assert.Equal(t, "Built internal tooling at Acme.\nShipped a billing service.", result.Experience.Content)
	assert.Equal(t, "B.S. Computer Science, State University", result.Education.Content)
	assert.Nil(t, result.Projects)
	assert.Empty(t, result.Other)
}

func TestExtract_HeadingAliases(t *testing.T) {
	raw := "Technical Skills\nGo\n\nEmployment History\nAcme Corp, 2021-2023\n\nAcademic Background\nB.S. Math\n\nSide Projects\nCLI tool for parsing logs."

	result := NewExtractor(DefaultPatterns()).Extract(raw)

	require.NotNil(t, result.Skills)
	require.NotNil(t, result.Experience)
	require.NotNil(t, result.Education)
	require.NotNil(t, result.Projects)
	assert.Equal(t, "Technical Skills", result.Skills.Heading)
	assert.Equal(t, "CLI tool for parsing logs.", result.Projects.Content)
}

func TestExtract_TrailingColonStripped(t *testing.T) {
	raw := "Skills:\nGo\n\nExperience:\nacme corp."

	result := NewExtractor(DefaultPatterns()).Extract(raw)

	require.NotNil(t, result.Skills)
	assert.Equal(t, "Skills", result.Skills.Heading)
	require.NotNil(t, result.Experience)
	assert.Equal(t, "acme corp.", result.Experience.Content)
}

func TestExtract_FirstOccurrenceWins(t *testing.T) {
	raw := "Skills\nGo\n\nSkills\npython tooling"

	result := NewExtractor(DefaultPatterns()).Extract(raw)

	require.NotNil(t, result.Skills)
	assert.Equal(t, "Go", result.Skills.Content)
}

func TestExtract_OtherSectionsPreserveOrder(t *testing.T) {
	raw := "Certifications\nAWS SAA, 2022\n\nAwards\nDean's List\n\nSkills\nGo"

	result := NewExtractor(DefaultPatterns()).Extract(raw)

	require.Len(t, result.Other, 2)
	assert.Equal(t, "Certifications", result.Other[0].Heading)
	assert.Equal(t, "AWS SAA, 2022", result.Other[0].Content)
	assert.Equal(t, "Awards", result.Other[1].Heading)
	require.NotNil(t, result.Skills)
}

func TestExtract_NoHeadingsDegradesToNilSections(t *testing.T) {
	raw := "just a paragraph of text without any headings in it at all"

	result := NewExtractor(DefaultPatterns()).Extract(raw)

	assert.Nil(t, result.Skills)
	assert.Nil(t, result.Experience)
	assert.Nil(t, result.Education)
	assert.Nil(t, result.Projects)
	assert.Empty(t, result.Other)
	assert.Equal(t, raw, result.NormalizedText)
}

func TestIsHeading_RejectsDatesEmailsAndURLs(t *testing.T) {
	assert.False(t, isHeading("2021 - 2023"))
	assert.False(t, isHeading("@janedoe"))
	assert.False(t, isHeading("http://example.com"))
	assert.False(t, isHeading("www.example.com"))
	assert.False(t, isHeading("Http Stuff")) // http prefix is content even when capitalized
}

func TestIsHeading_RejectsShortAndMixedContent(t *testing.T) {
	assert.False(t, isHeading("Go"))                           // too short
	assert.False(t, isHeading("built a service with Go 1.22")) // lowercase start
	assert.False(t, isHeading("Skills: Go, Python"))           // text after colon
	assert.True(t, isHeading("Skills"))
	assert.True(t, isHeading("Work Experience:"))
	assert.True(t, isHeading("Awards & Honors"))
}

func TestNormalizeWhitespace_CollapsesRunsAndBlankLines(t *testing.T) {
	raw := "  Skills \t here\r\n\n\n\n\nGo   and    Python\r"

	got := NormalizeWhitespace(raw)

	assert.Equal(t, "Skills here\n\nGo and Python", got)
}
