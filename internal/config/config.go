// Package config assembles the matching policy: category weights, coverage
// thresholds, signal phrase lists and lookup tables. Defaults are pinned
// constants; a JSON policy file can override any subset of them.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/alexchen/internlens/internal/feedback"
	"github.com/alexchen/internlens/internal/respmatch"
	"github.com/alexchen/internlens/internal/scoring"
	"github.com/alexchen/internlens/internal/skillmatch"
)

// ResponsibilityThresholds holds the coverage cutoffs for responsibility
// matching. StrongOverlap must stay above WeakOverlap or the coverage buckets
// lose their ordering.
type ResponsibilityThresholds struct {
	StrongOverlap float64 `json:"strong_overlap" validate:"gt=0,lte=1"`
	WeakOverlap   float64 `json:"weak_overlap" validate:"gt=0,lte=1"`
}

// Policy is the full matching policy consumed by the engine
type Policy struct {
	Weights        scoring.Weights                `json:"weights"`
	Responsibility ResponsibilityThresholds       `json:"responsibility"`
	Feedback       feedback.Config                `json:"feedback"`
	Learnability   skillmatch.LearnabilitySignals `json:"learnability"`
	SkillAliases   map[string]string              `json:"skill_aliases"`
	StopWords      []string                       `json:"stop_words"`
}

// Default returns the pinned policy
func Default() Policy {
	return Policy{
		Weights: scoring.DefaultWeights(),
		Responsibility: ResponsibilityThresholds{
			StrongOverlap: respmatch.DefaultStrongOverlap,
			WeakOverlap:   respmatch.DefaultWeakOverlap,
		},
		Feedback:     feedback.DefaultConfig(),
		Learnability: skillmatch.DefaultLearnabilitySignals(),
		SkillAliases: skillmatch.DefaultAliases(),
		StopWords:    respmatch.DefaultStopWords(),
	}
}

// Load reads a JSON policy file on top of the defaults. Fields absent from
// the file keep their default values.
func Load(path string) (Policy, error) {
	if path == "" {
		return Policy{}, fmt.Errorf("policy path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return Policy{}, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Policy{}, fmt.Errorf("failed to read policy file %s: %w", path, err)
	}

	policy := Default()
	if err := json.Unmarshal(data, &policy); err != nil {
		return Policy{}, fmt.Errorf("failed to parse policy JSON: %w", err)
	}

	if err := policy.Validate(); err != nil {
		return Policy{}, err
	}
	return policy, nil
}

// Validate checks tag constraints plus the cross-field rules the tags cannot
// express: weights must sum to 100 and the coverage thresholds must be
// ordered.
func (p Policy) Validate() error {
	if err := validator.New().Struct(p); err != nil {
		return fmt.Errorf("policy validation failed: %w", err)
	}
	if err := p.Weights.Validate(); err != nil {
		return err
	}
	if p.Responsibility.StrongOverlap <= p.Responsibility.WeakOverlap {
		return fmt.Errorf("strong overlap threshold (%.2f) must exceed weak overlap threshold (%.2f)",
			p.Responsibility.StrongOverlap, p.Responsibility.WeakOverlap)
	}
	return nil
}
