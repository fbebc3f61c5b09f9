package skillmatch

import (
	"regexp"
	"strings"
	"unicode"
)

// LearnabilitySignals holds the phrase lists that mark a job description's
// skill mentions as a descriptive stack listing rather than hard requirements.
type LearnabilitySignals struct {
	Descriptive []string `json:"descriptive"`
	Learning    []string `json:"learning"`
}

// DefaultLearnabilitySignals returns the standard signal phrase lists
func DefaultLearnabilitySignals() LearnabilitySignals {
	return LearnabilitySignals{
		Descriptive: []string{
			"we work mostly in",
			"we work mostly with",
			"our stack",
			"tech stack",
			"technology stack",
			"we use",
			"our team uses",
			"we build with",
		},
		Learning: []string{
			"can be learned",
			"can be picked up",
			"willing to learn",
			"you'll learn",
			"you will learn",
			"ability to learn new",
			"learn new languages",
			"learn on the job",
		},
	}
}

// explicitRequirementRx builds a pattern matching an explicit-requirement
// phrase immediately preceding the skill, e.g. "must have experience with X"
// or "required: X". A small window of connector words is allowed between the
// requirement marker and the skill itself.
func explicitRequirementRx(skill string) *regexp.Regexp {
	pattern := `(?i)\b(?:must|required|mandatory|needs?|have\s+to)\b[:,]?(?:\s+(?:have|has|had|be|a|an|the|of|in|with|using|experience|expertise|proficiency|knowledge|skills?|strong|solid|hands-on|working)){0,4}\s+` + regexp.QuoteMeta(skill)

	// Only anchor on a word boundary when the skill ends in a word character
	// (skills like "C++" would otherwise never match).
	runes := []rune(skill)
	if len(runes) > 0 {
		last := runes[len(runes)-1]
		if unicode.IsLetter(last) || unicode.IsDigit(last) {
			pattern += `\b`
		}
	}

	return regexp.MustCompile(pattern)
}

// containsAny reports whether lowercased text contains any of the phrases
func containsAny(textLower string, phrases []string) bool {
	for _, phrase := range phrases {
		if phrase == "" {
			continue
		}
		if strings.Contains(textLower, strings.ToLower(phrase)) {
			return true
		}
	}
	return false
}

// ApplyLearnability applies the "skills learnable" adjustment to the raw job
// description skill lists before categorization. When the job text carries a
// descriptive-list or learning signal, every nominally required skill that is
// not explicitly requirement-qualified in the text is demoted to preferred.
// The returned lists are deduplicated by normalized key and mutually
// exclusive; required membership wins on overlap.
func (c *Comparator) ApplyLearnability(jobText string, required, preferred []string, signals LearnabilitySignals) (adjustedRequired, adjustedPreferred []string) {
	textLower := strings.ToLower(jobText)
	signaled := containsAny(textLower, signals.Descriptive) || containsAny(textLower, signals.Learning)

	keepRequired := required
	movedToPreferred := []string{}
	if signaled {
		keepRequired = make([]string, 0, len(required))
		for _, skill := range required {
			if explicitRequirementRx(strings.TrimSpace(skill)).MatchString(jobText) {
				keepRequired = append(keepRequired, skill)
			} else {
				movedToPreferred = append(movedToPreferred, skill)
			}
		}
	}

	adjustedRequired = c.dedupeByKey(keepRequired)

	requiredKeys := make(map[string]bool, len(adjustedRequired))
	for _, skill := range adjustedRequired {
		requiredKeys[c.Key(skill)] = true
	}

	adjustedPreferred = make([]string, 0, len(preferred)+len(movedToPreferred))
	for _, skill := range c.dedupeByKey(append(append([]string{}, preferred...), movedToPreferred...)) {
		if !requiredKeys[c.Key(skill)] {
			adjustedPreferred = append(adjustedPreferred, skill)
		}
	}

	return adjustedRequired, adjustedPreferred
}
