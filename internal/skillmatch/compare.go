// Package skillmatch classifies job description skills as matched or missing
// against a resume's skill set using alias-aware normalized-key equality.
package skillmatch

import (
	"github.com/alexchen/internlens/internal/normalize"
	"github.com/alexchen/internlens/internal/types"
)

// DefaultAliases maps normalized skill-name variants to a shared canonical
// key so spellings like "React.js" and "react js" compare equal.
func DefaultAliases() map[string]string {
	return map[string]string{
		"golang":                "go",
		"go lang":               "go",
		"js":                    "javascript",
		"ts":                    "typescript",
		"react.js":              "react",
		"reactjs":               "react",
		"react js":              "react",
		"next.js":               "nextjs",
		"next js":               "nextjs",
		"vue.js":                "vue",
		"vuejs":                 "vue",
		"node":                  "node.js",
		"nodejs":                "node.js",
		"node js":               "node.js",
		"k8s":                   "kubernetes",
		"postgres":              "postgresql",
		"c sharp":               "c#",
		"express.js":            "express",
		"expressjs":             "express",
		"tailwind":              "tailwindcss",
		"tailwind css":          "tailwindcss",
		"scikit learn":          "scikit-learn",
		"amazon web services":   "aws",
		"google cloud platform": "gcp",
	}
}

// Comparator matches skills on normalized keys with alias folding. The alias
// table is immutable configuration supplied at construction.
type Comparator struct {
	aliases map[string]string
}

// NewComparator creates a Comparator with the given alias table. A nil table
// disables alias folding.
func NewComparator(aliases map[string]string) *Comparator {
	return &Comparator{aliases: aliases}
}

// Key returns the comparison key for a skill: lower-cased, whitespace
// collapsed, trailing periods stripped, then alias-folded.
func (c *Comparator) Key(skill string) string {
	key := normalize.SkillKey(skill)
	if canonical, ok := c.aliases[key]; ok {
		return canonical
	}
	return key
}

// dedupeByKey drops entries whose key was already seen, keeping the original
// display casing of the first occurrence.
func (c *Comparator) dedupeByKey(skills []string) []string {
	result := make([]string, 0, len(skills))
	seen := make(map[string]bool)
	for _, skill := range skills {
		cleaned := normalize.CleanSkill(skill)
		if cleaned == "" {
			continue
		}
		key := c.Key(cleaned)
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, cleaned)
	}
	return result
}

// Compare partitions every required and preferred job description skill into
// matched or missing against the resume skills, and flags resume skills the
// job did not ask for. The partition holds by construction: each deduplicated
// job skill lands in exactly one bucket for its category.
func (c *Comparator) Compare(resumeSkills, required, preferred []string) types.SkillComparisonResult {
	result := types.SkillComparisonResult{
		MatchedRequired:  []string{},
		MissingRequired:  []string{},
		MatchedPreferred: []string{},
		MissingPreferred: []string{},
		ExtraSkills:      []string{},
	}

	resumeKeys := make(map[string]bool, len(resumeSkills))
	for _, skill := range resumeSkills {
		if key := c.Key(skill); key != "" {
			resumeKeys[key] = true
		}
	}

	requestedKeys := make(map[string]bool)
	for _, skill := range c.dedupeByKey(required) {
		key := c.Key(skill)
		requestedKeys[key] = true
		if resumeKeys[key] {
			result.MatchedRequired = append(result.MatchedRequired, skill)
		} else {
			result.MissingRequired = append(result.MissingRequired, skill)
		}
	}

	for _, skill := range c.dedupeByKey(preferred) {
		key := c.Key(skill)
		requestedKeys[key] = true
		if resumeKeys[key] {
			result.MatchedPreferred = append(result.MatchedPreferred, skill)
		} else {
			result.MissingPreferred = append(result.MissingPreferred, skill)
		}
	}

	for _, skill := range c.dedupeByKey(resumeSkills) {
		if !requestedKeys[c.Key(skill)] {
			result.ExtraSkills = append(result.ExtraSkills, skill)
		}
	}

	result.Summary = types.SkillComparisonSummary{
		MatchedRequired:  len(result.MatchedRequired),
		MissingRequired:  len(result.MissingRequired),
		MatchedPreferred: len(result.MatchedPreferred),
		MissingPreferred: len(result.MissingPreferred),
		ExtraSkills:      len(result.ExtraSkills),
	}

	return result
}
