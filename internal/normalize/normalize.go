// Package normalize converts loosely-typed extraction output into the
// canonical resume and job description shapes used by the matching stages.
package normalize

import (
	"strings"

	"github.com/alexchen/internlens/internal/types"
)

// CleanSkill trims a skill string, collapses internal whitespace and strips
// trailing periods. The original casing is preserved for display.
func CleanSkill(s string) string {
	cleaned := strings.Join(strings.Fields(s), " ")
	cleaned = strings.TrimRight(cleaned, ".")
	return strings.TrimSpace(cleaned)
}

// SkillKey is the normalized comparison key for a skill: cleaned and
// lower-cased.
func SkillKey(s string) string {
	return strings.ToLower(CleanSkill(s))
}

// DedupeSkills cleans and deduplicates skills case-insensitively while
// preserving the first-seen casing for display. Empty entries are dropped.
func DedupeSkills(skills []string) []string {
	result := make([]string, 0, len(skills))
	seen := make(map[string]bool)

	for _, skill := range skills {
		cleaned := CleanSkill(skill)
		if cleaned == "" {
			continue
		}
		key := strings.ToLower(cleaned)
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, cleaned)
	}

	return result
}

// cleanLines trims each entry and drops empties
func cleanLines(lines []string) []string {
	result := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// Resume maps a raw extraction payload into the canonical resume shape.
// A nil input yields an empty resume; missing fields become empty slices.
func Resume(raw *types.RawResume) *types.NormalizedResume {
	resume := &types.NormalizedResume{
		Skills:     []string{},
		Experience: []types.Experience{},
		Projects:   []types.Project{},
		Education:  []types.Education{},
	}
	if raw == nil {
		return resume
	}

	resume.Skills = DedupeSkills(raw.Skills)

	for _, exp := range raw.Experience {
		resume.Experience = append(resume.Experience, types.Experience{
			Title:   strings.TrimSpace(exp.Title),
			Company: strings.TrimSpace(exp.Company),
			Bullets: cleanLines(exp.Bullets),
		})
	}

	for _, proj := range raw.Projects {
		resume.Projects = append(resume.Projects, types.Project{
			Name:    strings.TrimSpace(proj.Name),
			Bullets: cleanLines(proj.Bullets),
		})
	}

	for _, edu := range raw.Education {
		resume.Education = append(resume.Education, types.Education{
			Degree:      strings.TrimSpace(edu.Degree),
			Field:       strings.TrimSpace(edu.Field),
			Institution: strings.TrimSpace(edu.Institution),
		})
	}

	return resume
}

// JobDescription maps a raw extraction payload into the canonical job
// description shape. A nil input yields an empty job description.
func JobDescription(raw *types.RawJobDescription) *types.ParsedJobDescription {
	job := &types.ParsedJobDescription{
		RequiredSkills:        []string{},
		PreferredSkills:       []string{},
		Responsibilities:      []string{},
		EducationRequirements: []string{},
		SeniorityLevel:        types.SeniorityUnknown,
		SenioritySignals:      []string{},
	}
	if raw == nil {
		return job
	}

	job.RequiredSkills = DedupeSkills(raw.RequiredSkills)
	job.PreferredSkills = DedupeSkills(raw.PreferredSkills)
	job.Responsibilities = cleanLines(raw.Responsibilities)
	job.EducationRequirements = cleanLines(raw.EducationRequirements)
	job.SeniorityLevel = types.ParseSeniorityLevel(raw.SeniorityLevel)
	job.SenioritySignals = cleanLines(raw.SenioritySignals)
	job.YearsOfExperience = raw.YearsOfExperience

	return job
}
