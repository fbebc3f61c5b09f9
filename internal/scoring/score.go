// Package scoring combines skill comparison, responsibility coverage and
// education checks into a weighted, explainable 0-100 match score.
package scoring

import (
	"fmt"
	"math"

	"github.com/alexchen/internlens/internal/types"
)

// Category names used as breakdown keys
const (
	CategoryRequiredSkills   = "required_skills"
	CategoryPreferredSkills  = "preferred_skills"
	CategoryResponsibilities = "responsibilities"
	CategoryEducation        = "education"
)

// Weights is the fixed point budget per category. The split is a pinned
// policy constant: regression tests depend on these exact values.
type Weights struct {
	RequiredSkills   int `json:"required_skills" validate:"gte=0,lte=100"`
	PreferredSkills  int `json:"preferred_skills" validate:"gte=0,lte=100"`
	Responsibilities int `json:"responsibilities" validate:"gte=0,lte=100"`
	Education        int `json:"education" validate:"gte=0,lte=100"`
}

// DefaultWeights returns the pinned category split
func DefaultWeights() Weights {
	return Weights{
		RequiredSkills:   40,
		PreferredSkills:  15,
		Responsibilities: 35,
		Education:        10,
	}
}

// Total returns the sum of all category weights
func (w Weights) Total() int {
	return w.RequiredSkills + w.PreferredSkills + w.Responsibilities + w.Education
}

// Validate checks that the weights sum to exactly 100 points
func (w Weights) Validate() error {
	if total := w.Total(); total != 100 {
		return fmt.Errorf("category weights must sum to 100, got %d", total)
	}
	return nil
}

// Calculator computes ATS scores from the matcher outputs. It holds only
// immutable policy and is safe for concurrent use.
type Calculator struct {
	weights Weights
}

// NewCalculator creates a Calculator after validating the weight split
func NewCalculator(weights Weights) (*Calculator, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	return &Calculator{weights: weights}, nil
}

// Score combines the comparator and matcher results with the education
// requirement check into a single explainable score. Weighted scores are kept
// fractional per category; integer rounding is applied once to the overall
// sum, then clamped to [0, 100]. Identical inputs always produce identical
// output.
func (c *Calculator) Score(
	skills types.SkillComparisonResult,
	responsibilities types.ResponsibilityMatchingResult,
	educationRequirements []string,
	education []types.Education,
) types.ATSScore {
	score := types.ATSScore{
		Breakdown:     make(map[string]types.CategoryScore, 4),
		AllDeductions: []types.Deduction{},
	}

	c.scoreRequiredSkills(&score, skills)
	c.scorePreferredSkills(&score, skills)
	c.scoreResponsibilities(&score, responsibilities)
	c.scoreEducation(&score, educationRequirements, education)

	total := 0.0
	for _, category := range score.Breakdown {
		total += category.WeightedScore
	}
	overall := int(math.Round(total))
	if overall < 0 {
		overall = 0
	}
	if overall > 100 {
		overall = 100
	}
	score.OverallScore = overall

	return score
}

// scoreRequiredSkills scores matched/total required skills and itemizes one
// deduction per missing skill. An empty requirement list is trivially
// satisfied at 100%.
func (c *Calculator) scoreRequiredSkills(score *types.ATSScore, skills types.SkillComparisonResult) {
	weight := c.weights.RequiredSkills
	total := len(skills.MatchedRequired) + len(skills.MissingRequired)

	percentage := 100.0
	if total > 0 {
		percentage = float64(len(skills.MatchedRequired)) / float64(total) * 100
		share := float64(weight) / float64(total)
		for _, skill := range skills.MissingRequired {
			score.AllDeductions = append(score.AllDeductions, types.Deduction{
				Category:   CategoryRequiredSkills,
				Reason:     fmt.Sprintf("missing required skill: %s", skill),
				PointsLost: share,
			})
		}
	}

	score.Breakdown[CategoryRequiredSkills] = types.CategoryScore{
		Weight:        weight,
		Percentage:    percentage,
		WeightedScore: float64(weight) * percentage / 100,
	}
}

// scorePreferredSkills scores matched/total preferred skills. Preferred
// shortfall is deliberately not itemized: the point loss stays explainable
// from the category weight and percentage alone.
func (c *Calculator) scorePreferredSkills(score *types.ATSScore, skills types.SkillComparisonResult) {
	weight := c.weights.PreferredSkills
	total := len(skills.MatchedPreferred) + len(skills.MissingPreferred)

	percentage := 100.0
	if total > 0 {
		percentage = float64(len(skills.MatchedPreferred)) / float64(total) * 100
	}

	score.Breakdown[CategoryPreferredSkills] = types.CategoryScore{
		Weight:        weight,
		Percentage:    percentage,
		WeightedScore: float64(weight) * percentage / 100,
	}
}

// scoreResponsibilities scores coverage with weakly covered responsibilities
// counting at half value, and itemizes the per-responsibility point losses.
func (c *Calculator) scoreResponsibilities(score *types.ATSScore, result types.ResponsibilityMatchingResult) {
	weight := c.weights.Responsibilities
	total := len(result.Covered) + len(result.WeaklyCovered) + len(result.NotCovered)

	percentage := 100.0
	if total > 0 {
		covered := float64(len(result.Covered)) + 0.5*float64(len(result.WeaklyCovered))
		percentage = covered / float64(total) * 100

		share := float64(weight) / float64(total)
		for _, resp := range result.NotCovered {
			score.AllDeductions = append(score.AllDeductions, types.Deduction{
				Category:   CategoryResponsibilities,
				Reason:     fmt.Sprintf("responsibility not covered by resume: %s", resp),
				PointsLost: share,
			})
		}
		for _, resp := range result.WeaklyCovered {
			score.AllDeductions = append(score.AllDeductions, types.Deduction{
				Category:   CategoryResponsibilities,
				Reason:     fmt.Sprintf("responsibility only weakly covered: %s", resp),
				PointsLost: share / 2,
			})
		}
	}

	score.Breakdown[CategoryResponsibilities] = types.CategoryScore{
		Weight:        weight,
		Percentage:    percentage,
		WeightedScore: float64(weight) * percentage / 100,
	}
}

// scoreEducation scores met/total education requirements and itemizes one
// deduction per unmet requirement.
func (c *Calculator) scoreEducation(score *types.ATSScore, requirements []string, education []types.Education) {
	weight := c.weights.Education
	total := len(requirements)

	percentage := 100.0
	if total > 0 {
		met := 0
		share := float64(weight) / float64(total)
		for _, requirement := range requirements {
			if educationRequirementMet(requirement, education) {
				met++
				continue
			}
			score.AllDeductions = append(score.AllDeductions, types.Deduction{
				Category:   CategoryEducation,
				Reason:     fmt.Sprintf("education requirement not met: %s", requirement),
				PointsLost: share,
			})
		}
		percentage = float64(met) / float64(total) * 100
	}

	score.Breakdown[CategoryEducation] = types.CategoryScore{
		Weight:        weight,
		Percentage:    percentage,
		WeightedScore: float64(weight) * percentage / 100,
	}
}
