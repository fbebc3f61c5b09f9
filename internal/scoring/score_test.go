package scoring

import (
	"testing"

	"github.com/alexchen/internlens/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDefaultCalculator(t *testing.T) *Calculator {
	t.Helper()
	calc, err := NewCalculator(DefaultWeights())
	require.NoError(t, err)
	return calc
}

func TestNewCalculator_RejectsBadWeightSplit(t *testing.T) {
	_, err := NewCalculator(Weights{RequiredSkills: 50, PreferredSkills: 10, Responsibilities: 30, Education: 5})

	assert.Error(t, err)
}

func TestScore_EmptyRequirementsScoreFullWeight(t *testing.T) {
	calc := newDefaultCalculator(t)

	score := calc.Score(
		types.SkillComparisonResult{},
		types.ResponsibilityMatchingResult{},
		nil,
		nil,
	)

	assert.Equal(t, 100, score.OverallScore)
	assert.Empty(t, score.AllDeductions)
	for name, category := range score.Breakdown {
		assert.Equal(t, 100.0, category.Percentage, name)
		assert.Equal(t, float64(category.Weight), category.WeightedScore, name)
	}
}

func TestScore_BoundsAndWeightCaps(t *testing.T) {
	calc := newDefaultCalculator(t)

	score := calc.Score(
		types.SkillComparisonResult{
			MissingRequired:  []string{"Rust", "Haskell"},
			MissingPreferred: []string{"OCaml"},
		},
		types.ResponsibilityMatchingResult{
			NotCovered: []string{"design compilers"},
		},
		[]string{"PhD in type theory"},
		nil,
	)

	assert.GreaterOrEqual(t, score.OverallScore, 0)
	assert.LessOrEqual(t, score.OverallScore, 100)
	for name, category := range score.Breakdown {
		assert.LessOrEqual(t, category.WeightedScore, float64(category.Weight), name)
	}
	assert.Equal(t, 0, score.OverallScore)
}

func TestScore_PreferredShortfallIsNotItemized(t *testing.T) {
	calc := newDefaultCalculator(t)

	// Required skills all matched, both preferred skills missing, no
	// education requirements: points are lost but no deduction is recorded.
	score := calc.Score(
		types.SkillComparisonResult{
			MatchedRequired:  []string{"TypeScript"},
			MissingPreferred: []string{"React", "Next.js"},
		},
		types.ResponsibilityMatchingResult{},
		nil,
		nil,
	)

	assert.Less(t, score.OverallScore, 100)
	assert.Empty(t, score.AllDeductions)

	preferred := score.Breakdown[CategoryPreferredSkills]
	assert.Equal(t, 0.0, preferred.Percentage)
	assert.Less(t, preferred.WeightedScore, float64(preferred.Weight))
}

func TestScore_RequiredSkillDeductionsItemized(t *testing.T) {
	calc := newDefaultCalculator(t)

	score := calc.Score(
		types.SkillComparisonResult{
			MatchedRequired: []string{"Go"},
			MissingRequired: []string{"Rust"},
		},
		types.ResponsibilityMatchingResult{},
		nil,
		nil,
	)

	require.Len(t, score.AllDeductions, 1)
	deduction := score.AllDeductions[0]
	assert.Equal(t, CategoryRequiredSkills, deduction.Category)
	assert.Contains(t, deduction.Reason, "Rust")
	assert.InDelta(t, 20.0, deduction.PointsLost, 0.001) // 40 points over 2 required skills

	required := score.Breakdown[CategoryRequiredSkills]
	assert.Equal(t, 50.0, required.Percentage)
	assert.InDelta(t, 20.0, required.WeightedScore, 0.001)
}

func TestScore_WeaklyCoveredCountsHalf(t *testing.T) {
	calc := newDefaultCalculator(t)

	score := calc.Score(
		types.SkillComparisonResult{},
		types.ResponsibilityMatchingResult{
			Covered:       []string{"a"},
			WeaklyCovered: []string{"b"},
			NotCovered:    []string{"c", "d"},
		},
		nil,
		nil,
	)

	responsibilities := score.Breakdown[CategoryResponsibilities]
	assert.InDelta(t, 37.5, responsibilities.Percentage, 0.001) // (1 + 0.5) / 4

	// One full-share deduction per not-covered entry, half-share per weak.
	var lost float64
	for _, d := range score.AllDeductions {
		require.Equal(t, CategoryResponsibilities, d.Category)
		lost += d.PointsLost
	}
	assert.InDelta(t, float64(responsibilities.Weight)-responsibilities.WeightedScore, lost, 0.001)
}

func TestScore_EducationRequirementChecks(t *testing.T) {
	calc := newDefaultCalculator(t)
	education := []types.Education{
		{Degree: "B.S.", Field: "Computer Science", Institution: "State University"},
	}

	score := calc.Score(
		types.SkillComparisonResult{},
		types.ResponsibilityMatchingResult{},
		[]string{"Bachelor's degree in Computer Science or related field", "Master's degree preferred"},
		education,
	)

	educationScore := score.Breakdown[CategoryEducation]
	assert.Equal(t, 50.0, educationScore.Percentage)
	require.Len(t, score.AllDeductions, 1)
	assert.Equal(t, CategoryEducation, score.AllDeductions[0].Category)
	assert.Contains(t, score.AllDeductions[0].Reason, "Master's")
}

func TestScore_Deterministic(t *testing.T) {
	calc := newDefaultCalculator(t)
	skills := types.SkillComparisonResult{
		MatchedRequired:  []string{"Go"},
		MissingRequired:  []string{"Rust"},
		MatchedPreferred: []string{"React"},
	}
	coverage := types.ResponsibilityMatchingResult{
		Covered:    []string{"build APIs"},
		NotCovered: []string{"mentor interns"},
	}
	requirements := []string{"Bachelor's degree in Computer Science"}
	education := []types.Education{{Degree: "BS", Field: "Computer Science"}}

	first := calc.Score(skills, coverage, requirements, education)
	second := calc.Score(skills, coverage, requirements, education)

	assert.Equal(t, first, second)
}

func TestEducationRequirementMet_DegreeRankComparison(t *testing.T) {
	bachelors := []types.Education{{Degree: "Bachelor of Science", Field: "Computer Science"}}
	masters := []types.Education{{Degree: "M.S.", Field: "Data Science"}}

	assert.True(t, educationRequirementMet("Bachelor's degree in Computer Science", bachelors))
	assert.False(t, educationRequirementMet("Master's degree in Computer Science", bachelors))
	assert.True(t, educationRequirementMet("Bachelor's degree in Data Science or related field", masters))
	assert.False(t, educationRequirementMet("PhD in Data Science", masters))
}

func TestEducationRequirementMet_FieldOnlyRequirement(t *testing.T) {
	education := []types.Education{{Degree: "BS", Field: "Statistics"}}

	assert.True(t, educationRequirementMet("background in statistics", education))
	assert.False(t, educationRequirementMet("background in biology", education))
}

func TestEducationRequirementMet_NoEducationEntries(t *testing.T) {
	assert.False(t, educationRequirementMet("Bachelor's degree", nil))
}
