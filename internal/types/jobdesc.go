package types

import "strings"

// SeniorityLevel is the target seniority extracted from a job description
type SeniorityLevel string

// Known seniority levels, ordered from least to most senior
const (
	SeniorityUnknown SeniorityLevel = "unknown"
	SeniorityIntern  SeniorityLevel = "intern"
	SeniorityJunior  SeniorityLevel = "junior"
	SeniorityMid     SeniorityLevel = "mid"
	SenioritySenior  SeniorityLevel = "senior"
	SeniorityStaff   SeniorityLevel = "staff+"
)

// ParseSeniorityLevel maps a free-form seniority string to a known level.
// Unrecognized values map to SeniorityUnknown.
func ParseSeniorityLevel(s string) SeniorityLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "intern", "internship":
		return SeniorityIntern
	case "junior", "entry", "entry-level", "entry level":
		return SeniorityJunior
	case "mid", "mid-level", "mid level", "intermediate":
		return SeniorityMid
	case "senior":
		return SenioritySenior
	case "staff", "staff+", "principal", "lead":
		return SeniorityStaff
	default:
		return SeniorityUnknown
	}
}

// ParsedJobDescription is the canonical job description shape consumed by the
// matching stages. Required and preferred skill lists are mutually exclusive
// after the learnability adjustment has been applied.
type ParsedJobDescription struct {
	RequiredSkills        []string       `json:"required_skills"`
	PreferredSkills       []string       `json:"preferred_skills"`
	Responsibilities      []string       `json:"responsibilities"`
	EducationRequirements []string       `json:"education_requirements"`
	SeniorityLevel        SeniorityLevel `json:"seniority_level"`
	SenioritySignals      []string       `json:"seniority_signals"`
	YearsOfExperience     *float64       `json:"years_of_experience"`
}
