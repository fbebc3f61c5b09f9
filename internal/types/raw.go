package types

// RawResume is the loosely-typed resume shape produced by the extraction
// collaborator. All fields are optional; the normalizer substitutes empty
// values for anything missing.
type RawResume struct {
	Skills     []string        `json:"skills,omitempty"`
	Experience []RawExperience `json:"experience,omitempty"`
	Projects   []RawProject    `json:"projects,omitempty"`
	Education  []RawEducation  `json:"education,omitempty"`
}

// RawExperience is an unvalidated work experience entry
type RawExperience struct {
	Title   string   `json:"title,omitempty"`
	Company string   `json:"company,omitempty"`
	Bullets []string `json:"bullets,omitempty"`
}

// RawProject is an unvalidated project entry
type RawProject struct {
	Name    string   `json:"name,omitempty"`
	Bullets []string `json:"bullets,omitempty"`
}

// RawEducation is an unvalidated education entry
type RawEducation struct {
	Degree      string `json:"degree,omitempty"`
	Field       string `json:"field,omitempty"`
	Institution string `json:"institution,omitempty"`
}

// RawJobDescription is the loosely-typed job description shape produced by
// the extraction collaborator.
type RawJobDescription struct {
	RequiredSkills        []string `json:"required_skills,omitempty"`
	PreferredSkills       []string `json:"preferred_skills,omitempty"`
	Responsibilities      []string `json:"responsibilities,omitempty"`
	EducationRequirements []string `json:"education_requirements,omitempty"`
	SeniorityLevel        string   `json:"seniority_level,omitempty"`
	SenioritySignals      []string `json:"seniority_signals,omitempty"`
	YearsOfExperience     *float64 `json:"years_of_experience,omitempty"`
}
