// Package respmatch classifies job description responsibilities into coverage
// buckets using keyword overlap against resume bullets.
package respmatch

import (
	"regexp"
	"strings"

	"github.com/alexchen/internlens/internal/types"
)

// Coverage thresholds are a versioned policy constant: an overlap ratio at or
// above StrongOverlap counts as covered, at or above WeakOverlap as weakly
// covered, anything lower as not covered.
const (
	DefaultStrongOverlap = 0.5
	DefaultWeakOverlap   = 0.25
)

// nonWordRx strips punctuation during tokenization
var nonWordRx = regexp.MustCompile(`[^a-z0-9]+`)

// DefaultStopWords returns the common-word list excluded from overlap
// computation.
func DefaultStopWords() []string {
	return []string{
		"a", "an", "and", "are", "as", "at", "be", "by", "for", "from",
		"in", "into", "is", "it", "of", "on", "or", "our", "per", "that",
		"the", "their", "them", "they", "this", "to", "was", "were",
		"will", "with", "you", "your",
	}
}

// Matcher classifies responsibilities against resume bullets. Stop words and
// thresholds are immutable configuration supplied at construction.
type Matcher struct {
	stopWords map[string]struct{}
	strong    float64
	weak      float64
}

// NewMatcher creates a Matcher with the given stop words and thresholds
func NewMatcher(stopWords []string, strongOverlap, weakOverlap float64) *Matcher {
	set := make(map[string]struct{}, len(stopWords))
	for _, word := range stopWords {
		set[strings.ToLower(word)] = struct{}{}
	}
	return &Matcher{stopWords: set, strong: strongOverlap, weak: weakOverlap}
}

// Tokenize splits text into a normalized word set: case-folded, punctuation
// stripped, stop words and single characters removed.
func (m *Matcher) Tokenize(text string) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, word := range strings.Fields(nonWordRx.ReplaceAllString(strings.ToLower(text), " ")) {
		if len(word) < 2 {
			continue
		}
		if _, stop := m.stopWords[word]; stop {
			continue
		}
		tokens[word] = struct{}{}
	}
	return tokens
}

// Match partitions the responsibility list into covered, weakly covered and
// not covered buckets. Each responsibility appears in exactly one bucket; the
// overlap ratio is |intersection| / |responsibility tokens| maximized over
// all bullets. Responsibilities with no usable tokens are not covered.
func (m *Matcher) Match(responsibilities, bullets []string) types.ResponsibilityMatchingResult {
	result := types.ResponsibilityMatchingResult{
		Covered:       []string{},
		WeaklyCovered: []string{},
		NotCovered:    []string{},
	}

	bulletTokens := make([]map[string]struct{}, 0, len(bullets))
	for _, bullet := range bullets {
		bulletTokens = append(bulletTokens, m.Tokenize(bullet))
	}

	for _, resp := range responsibilities {
		switch ratio := m.bestOverlap(m.Tokenize(resp), bulletTokens); {
		case ratio >= m.strong:
			result.Covered = append(result.Covered, resp)
		case ratio >= m.weak:
			result.WeaklyCovered = append(result.WeaklyCovered, resp)
		default:
			result.NotCovered = append(result.NotCovered, resp)
		}
	}

	return result
}

// bestOverlap returns the maximum overlap ratio of the responsibility tokens
// across all bullet token sets. An empty responsibility token set yields 0.
func (m *Matcher) bestOverlap(respTokens map[string]struct{}, bulletTokens []map[string]struct{}) float64 {
	if len(respTokens) == 0 {
		return 0
	}

	best := 0.0
	for _, tokens := range bulletTokens {
		intersection := 0
		for token := range respTokens {
			if _, ok := tokens[token]; ok {
				intersection++
			}
		}
		if ratio := float64(intersection) / float64(len(respTokens)); ratio > best {
			best = ratio
		}
	}
	return best
}
