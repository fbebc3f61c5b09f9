// Package feedback derives writing-quality feedback from resume bullets and
// filters low-value nitpicks out of model-generated feedback items.
package feedback

import (
	"regexp"
	"strings"

	"github.com/alexchen/internlens/internal/types"
)

// Config holds the post-processing policy
type Config struct {
	// MaxItems caps the final feedback list
	MaxItems int `json:"max_items" validate:"gt=0"`
	// MinBulletsForQuantCheck is the minimum bullet count before the
	// quantification heuristic applies
	MinBulletsForQuantCheck int `json:"min_bullets_for_quant_check" validate:"gt=0"`
	// QuantifiedRatio is the fraction of bullets that must contain a digit
	// before the quantification suggestion is suppressed
	QuantifiedRatio float64 `json:"quantified_ratio" validate:"gt=0,lte=1"`
	// WeakOpeners are bullet prefixes that read as passive filler
	WeakOpeners []string `json:"weak_openers"`
}

// DefaultConfig returns the pinned post-processing policy
func DefaultConfig() Config {
	return Config{
		MaxItems:                6,
		MinBulletsForQuantCheck: 6,
		QuantifiedRatio:         0.35,
		WeakOpeners: []string{
			"responsible for",
			"worked on",
			"helped",
			"assisted",
			"involved in",
			"participated in",
		},
	}
}

const maxEvidenceSnippets = 2

// digitRx detects quantified bullets
var digitRx = regexp.MustCompile(`\d`)

// phoneNitpickRx matches feedback about phone number formatting, which is
// judged too low-value to surface.
var phoneNitpickRx = regexp.MustCompile(`(?is)(\b(phone|tel|telephone)\b.{0,80}\bformat)|(\bformat\w*\b.{0,80}\b(phone|tel|telephone)\b)`)

// Processor refines model-produced feedback using resume-derived signals. It
// is purely additive/filtering and never invents claims beyond its two
// heuristic checks.
type Processor struct {
	cfg Config
}

// NewProcessor creates a Processor with the given policy
func NewProcessor(cfg Config) *Processor {
	return &Processor{cfg: cfg}
}

// Process filters the (possibly nil) model feedback and prepends heuristic
// items, most recent first. The result is capped at MaxItems and nil when
// empty.
func (p *Processor) Process(modelItems []types.FeedbackItem, resume *types.NormalizedResume) *types.ResumeQualityFeedback {
	items := make([]types.FeedbackItem, 0, len(modelItems))
	for _, item := range modelItems {
		if isPhoneFormattingNitpick(item) {
			continue
		}
		items = append(items, item)
	}

	bullets := resume.AllBullets()

	if weak := p.weakOpenerBullets(bullets); len(weak) >= 2 {
		items = prepend(items, types.FeedbackItem{
			Title:            "Start bullets with strong action verbs",
			Detail:           "Several bullets open with passive phrases. Lead with what you built, shipped or improved instead.",
			EvidenceSnippets: firstN(weak, maxEvidenceSnippets),
		})
	}

	if unquantified, applies := p.unquantifiedBullets(bullets); applies {
		items = prepend(items, types.FeedbackItem{
			Title:            "Add measurable outcomes",
			Detail:           "Most bullets lack numbers. Quantify impact with metrics like request volume, latency or revenue.",
			EvidenceSnippets: firstN(unquantified, maxEvidenceSnippets),
		})
	}

	if len(items) > p.cfg.MaxItems {
		items = items[:p.cfg.MaxItems]
	}
	if len(items) == 0 {
		return nil
	}

	return &types.ResumeQualityFeedback{Items: items}
}

// weakOpenerBullets returns bullets starting with a weak opener,
// case-insensitive prefix match.
func (p *Processor) weakOpenerBullets(bullets []string) []string {
	weak := make([]string, 0)
	for _, bullet := range bullets {
		lower := strings.ToLower(strings.TrimSpace(bullet))
		for _, opener := range p.cfg.WeakOpeners {
			if strings.HasPrefix(lower, opener) {
				weak = append(weak, bullet)
				break
			}
		}
	}
	return weak
}

// unquantifiedBullets returns bullets without digits and whether the
// quantification heuristic applies: at least MinBulletsForQuantCheck bullets
// overall with fewer than QuantifiedRatio of them containing a digit.
func (p *Processor) unquantifiedBullets(bullets []string) ([]string, bool) {
	if len(bullets) < p.cfg.MinBulletsForQuantCheck {
		return nil, false
	}

	unquantified := make([]string, 0)
	quantified := 0
	for _, bullet := range bullets {
		if digitRx.MatchString(bullet) {
			quantified++
		} else {
			unquantified = append(unquantified, bullet)
		}
	}

	ratio := float64(quantified) / float64(len(bullets))
	return unquantified, ratio < p.cfg.QuantifiedRatio
}

// isPhoneFormattingNitpick reports whether the item is about phone number
// formatting in its title, detail or evidence.
func isPhoneFormattingNitpick(item types.FeedbackItem) bool {
	if phoneNitpickRx.MatchString(item.Title) || phoneNitpickRx.MatchString(item.Detail) {
		return true
	}
	for _, snippet := range item.EvidenceSnippets {
		if phoneNitpickRx.MatchString(snippet) {
			return true
		}
	}
	return false
}

// prepend inserts an item at the head of the list
func prepend(items []types.FeedbackItem, item types.FeedbackItem) []types.FeedbackItem {
	return append([]types.FeedbackItem{item}, items...)
}

// firstN returns at most n entries of the list
func firstN(list []string, n int) []string {
	if len(list) <= n {
		return list
	}
	return list[:n]
}
