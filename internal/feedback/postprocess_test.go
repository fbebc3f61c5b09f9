package feedback

import (
	"fmt"
	"testing"

	"github.com/alexchen/internlens/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resumeWithBullets(bullets ...string) *types.NormalizedResume {
	return &types.NormalizedResume{
		Experience: []types.Experience{{Title: "Engineer", Company: "Acme", Bullets: bullets}},
	}
}

func TestProcess_QuantificationItemPrependedAndCapped(t *testing.T) {
	p := NewProcessor(DefaultConfig())
	resume := resumeWithBullets(
		"built a service",
		"maintained the docs site",
		"refactored the parser",
		"reviewed pull requests",
		"ran team standups",
		"improved onboarding",
	)

	modelItems := make([]types.FeedbackItem, 0, 8)
	for i := 0; i < 8; i++ {
		modelItems = append(modelItems, types.FeedbackItem{Title: fmt.Sprintf("model item %d", i)})
	}

	result := p.Process(modelItems, resume)

	require.NotNil(t, result)
	assert.LessOrEqual(t, len(result.Items), 6)
	assert.Equal(t, "Add measurable outcomes", result.Items[0].Title)
	assert.Len(t, result.Items[0].EvidenceSnippets, 2)
}

func TestProcess_QuantificationSkippedWhenEnoughDigits(t *testing.T) {
	p := NewProcessor(DefaultConfig())
	resume := resumeWithBullets(
		"cut latency by 40ms",
		"served 2M users",
		"saved $10k per month",
		"built a service",
		"reviewed pull requests",
		"improved onboarding",
	)

	result := p.Process(nil, resume)

	assert.Nil(t, result) // 3 of 6 quantified (50%) clears the 35% bar
}

func TestProcess_QuantificationSkippedBelowMinimumBullets(t *testing.T) {
	p := NewProcessor(DefaultConfig())
	resume := resumeWithBullets("built a service", "reviewed pull requests")

	result := p.Process(nil, resume)

	assert.Nil(t, result)
}

func TestProcess_WeakOpenerItem(t *testing.T) {
	p := NewProcessor(DefaultConfig())
	resume := resumeWithBullets(
		"Responsible for deploys in 3 regions",
		"Worked on the 2024 billing migration",
		"Shipped 12 features",
	)

	result := p.Process(nil, resume)

	require.NotNil(t, result)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Start bullets with strong action verbs", result.Items[0].Title)
	assert.Equal(t, []string{
		"Responsible for deploys in 3 regions",
		"Worked on the 2024 billing migration",
	}, result.Items[0].EvidenceSnippets)
}

func TestProcess_SingleWeakOpenerNotFlagged(t *testing.T) {
	p := NewProcessor(DefaultConfig())
	resume := resumeWithBullets("Responsible for deploys in 3 regions", "Shipped 12 features")

	result := p.Process(nil, resume)

	assert.Nil(t, result)
}

func TestProcess_PhoneFormattingNitpickDropped(t *testing.T) {
	p := NewProcessor(DefaultConfig())
	modelItems := []types.FeedbackItem{
		{Title: "Fix phone number formatting", Detail: "Use a consistent format"},
		{Title: "Tighten the summary", Detail: "Two sentences max"},
	}

	result := p.Process(modelItems, resumeWithBullets("shipped 3 features"))

	require.NotNil(t, result)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Tighten the summary", result.Items[0].Title)
}

func TestProcess_PhoneNitpickInEvidenceDropped(t *testing.T) {
	p := NewProcessor(DefaultConfig())
	modelItems := []types.FeedbackItem{
		{Title: "Contact section", EvidenceSnippets: []string{"telephone should be formatted as (555) 555-5555"}},
	}

	result := p.Process(modelItems, resumeWithBullets("shipped 3 features"))

	assert.Nil(t, result)
}

func TestProcess_HeuristicItemsTakePriorityOverModelItems(t *testing.T) {
	p := NewProcessor(DefaultConfig())
	resume := resumeWithBullets(
		"Responsible for the parser",
		"Worked on the docs site",
		"maintained dashboards",
		"reviewed pull requests",
		"ran team standups",
		"improved onboarding",
	)

	modelItems := []types.FeedbackItem{
		{Title: "model item 0"}, {Title: "model item 1"}, {Title: "model item 2"},
		{Title: "model item 3"}, {Title: "model item 4"}, {Title: "model item 5"},
	}

	result := p.Process(modelItems, resume)

	require.NotNil(t, result)
	require.Len(t, result.Items, 6)
	assert.Equal(t, "Add measurable outcomes", result.Items[0].Title)
	assert.Equal(t, "Start bullets with strong action verbs", result.Items[1].Title)
	assert.Equal(t, "model item 0", result.Items[2].Title)
}

func TestProcess_EmptyInputsYieldNil(t *testing.T) {
	p := NewProcessor(DefaultConfig())

	assert.Nil(t, p.Process(nil, &types.NormalizedResume{}))
}
