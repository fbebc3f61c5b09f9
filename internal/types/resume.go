// Package types provides type definitions for the structured data exchanged
// between the ATS matching stages.
//
//nolint:revive // types is a standard Go package name pattern
package types

// NormalizedResume is the canonical resume shape consumed by the matching
// stages. Skill strings are trimmed and deduplicated case-insensitively with
// the first-seen casing retained for display; bullets are non-empty trimmed
// strings.
type NormalizedResume struct {
	Skills     []string     `json:"skills"`
	Experience []Experience `json:"experience"`
	Projects   []Project    `json:"projects"`
	Education  []Education  `json:"education"`
}

// Experience represents a single work experience entry
type Experience struct {
	Title   string   `json:"title"`
	Company string   `json:"company"`
	Bullets []string `json:"bullets"`
}

// Project represents a single project entry
type Project struct {
	Name    string   `json:"name"`
	Bullets []string `json:"bullets"`
}

// Education represents a single education entry
type Education struct {
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Institution string `json:"institution"`
}

// AllBullets returns all experience and project bullets in document order.
func (r *NormalizedResume) AllBullets() []string {
	if r == nil {
		return nil
	}

	bullets := make([]string, 0)
	for _, exp := range r.Experience {
		bullets = append(bullets, exp.Bullets...)
	}
	for _, proj := range r.Projects {
		bullets = append(bullets, proj.Bullets...)
	}
	return bullets
}
