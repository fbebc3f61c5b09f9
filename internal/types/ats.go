package types

import "fmt"

// SkillComparisonResult classifies every job description skill as matched or
// missing against the resume skill set. Each job description skill appears in
// exactly one of the matched/missing lists for its category.
type SkillComparisonResult struct {
	MatchedRequired  []string               `json:"matched_required"`
	MissingRequired  []string               `json:"missing_required"`
	MatchedPreferred []string               `json:"matched_preferred"`
	MissingPreferred []string               `json:"missing_preferred"`
	ExtraSkills      []string               `json:"extra_skills"`
	Summary          SkillComparisonSummary `json:"summary"`
}

// SkillComparisonSummary holds the per-category counts
type SkillComparisonSummary struct {
	MatchedRequired  int `json:"matched_required"`
	MissingRequired  int `json:"missing_required"`
	MatchedPreferred int `json:"matched_preferred"`
	MissingPreferred int `json:"missing_preferred"`
	ExtraSkills      int `json:"extra_skills"`
}

// ResponsibilityMatchingResult partitions the job description responsibility
// list into three coverage buckets. Every responsibility belongs to exactly
// one bucket.
type ResponsibilityMatchingResult struct {
	Covered       []string `json:"covered_responsibilities"`
	WeaklyCovered []string `json:"weakly_covered"`
	NotCovered    []string `json:"not_covered"`
}

// Verify checks the partition contract: the three buckets together must hold
// exactly total entries. A violation indicates a programming error in the
// matcher, not bad input.
func (r *ResponsibilityMatchingResult) Verify(total int) error {
	got := len(r.Covered) + len(r.WeaklyCovered) + len(r.NotCovered)
	if got != total {
		return fmt.Errorf("responsibility coverage buckets hold %d entries, want %d", got, total)
	}
	return nil
}

// CategoryScore is the scoring breakdown for a single weighted category
type CategoryScore struct {
	Weight        int     `json:"weight"`
	Percentage    float64 `json:"percentage"`
	WeightedScore float64 `json:"weighted_score"`
}

// Deduction is a single itemized point loss
type Deduction struct {
	Category   string  `json:"category"`
	Reason     string  `json:"reason"`
	PointsLost float64 `json:"points_lost"`
}

// ATSScore is the weighted, explainable match score. The overall score is the
// sum of the per-category weighted scores with integer rounding applied once
// at the end, clamped to [0, 100].
type ATSScore struct {
	OverallScore  int                      `json:"overall_score"`
	Breakdown     map[string]CategoryScore `json:"breakdown"`
	AllDeductions []Deduction              `json:"all_deductions"`
}

// FeedbackItem is a single qualitative improvement suggestion
type FeedbackItem struct {
	Title            string   `json:"title"`
	Detail           string   `json:"detail"`
	EvidenceSnippets []string `json:"evidence_snippets,omitempty"`
}

// ResumeQualityFeedback holds qualitative writing-quality feedback. It is
// produced fresh per analysis request and never persisted.
type ResumeQualityFeedback struct {
	Items []FeedbackItem `json:"items"`
}

// AnalysisResult is the full JSON-serializable response payload combining the
// score, skill comparison, responsibility coverage and optional feedback.
type AnalysisResult struct {
	Score            ATSScore                     `json:"score"`
	Skills           SkillComparisonResult        `json:"skills"`
	Responsibilities ResponsibilityMatchingResult `json:"responsibilities"`
	Feedback         *ResumeQualityFeedback       `json:"feedback,omitempty"`
}
