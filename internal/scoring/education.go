package scoring

import (
	"regexp"
	"strings"

	"github.com/alexchen/internlens/internal/types"
)

// degreeRank orders degree levels for minimum-degree comparisons
var degreeRank = map[string]int{
	"associate":     1,
	"associates":    1,
	"bachelor":      2,
	"bachelors":     2,
	"bs":            2,
	"ba":            2,
	"bsc":           2,
	"b.s":           2,
	"b.a":           2,
	"undergraduate": 2,
	"master":        3,
	"masters":       3,
	"ms":            3,
	"msc":           3,
	"m.s":           3,
	"mba":           3,
	"graduate":      3,
	"phd":           4,
	"ph.d":          4,
	"doctorate":     4,
	"doctoral":      4,
}

// genericRequirementWords are requirement-phrasing words that carry no field
// signal ("bachelor's degree in a related field or equivalent")
var genericRequirementWords = map[string]bool{
	"degree": true, "field": true, "related": true, "relevant": true,
	"required": true, "preferred": true, "equivalent": true, "similar": true,
	"discipline": true, "area": true, "study": true, "studies": true,
	"pursuing": true, "currently": true, "enrolled": true, "minimum": true,
	"a": true, "an": true, "or": true, "in": true, "of": true, "the": true,
	"and": true, "with": true, "from": true,
}

var wordRx = regexp.MustCompile(`[a-z#+.]+`)

// educationRequirementMet reports whether a free-text education requirement
// is satisfied by any resume education entry. The check is lexical: a degree
// level keyword in the requirement must be met or exceeded, and any remaining
// field words must appear in the entry's field or degree text.
func educationRequirementMet(requirement string, education []types.Education) bool {
	reqLower := strings.ToLower(requirement)
	words := wordRx.FindAllString(reqLower, -1)

	requiredRank := 0
	fieldWords := make([]string, 0, len(words))
	for _, word := range words {
		trimmed := strings.Trim(word, ".")
		if rank, ok := degreeRank[trimmed]; ok {
			if rank > requiredRank {
				requiredRank = rank
			}
			continue
		}
		if genericRequirementWords[trimmed] || len(trimmed) < 2 {
			continue
		}
		fieldWords = append(fieldWords, trimmed)
	}

	for _, entry := range education {
		if !rankSatisfied(requiredRank, entry) {
			continue
		}
		if fieldSatisfied(fieldWords, entry) {
			return true
		}
	}

	return false
}

// rankSatisfied reports whether the entry's degree meets the required rank.
// A requirement without a recognizable degree level only needs some entry.
func rankSatisfied(requiredRank int, entry types.Education) bool {
	if requiredRank == 0 {
		return true
	}
	return entryRank(entry) >= requiredRank
}

// entryRank derives the degree rank of a resume education entry
func entryRank(entry types.Education) int {
	rank := 0
	for _, word := range wordRx.FindAllString(strings.ToLower(entry.Degree), -1) {
		trimmed := strings.Trim(word, ".")
		if r, ok := degreeRank[trimmed]; ok && r > rank {
			rank = r
		}
	}
	return rank
}

// fieldSatisfied reports whether any requirement field word appears in the
// entry's field or degree text. No field words means no field constraint.
func fieldSatisfied(fieldWords []string, entry types.Education) bool {
	if len(fieldWords) == 0 {
		return true
	}

	haystack := strings.ToLower(entry.Field + " " + entry.Degree)
	for _, word := range fieldWords {
		if strings.Contains(haystack, word) {
			return true
		}
	}
	return false
}
