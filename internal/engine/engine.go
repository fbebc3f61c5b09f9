// Package engine orchestrates the ATS matching pipeline: normalization,
// skill comparison, responsibility matching, scoring and feedback
// post-processing. The engine itself performs no I/O; the extraction
// collaborator is injected behind an interface.
package engine

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/alexchen/internlens/internal/config"
	"github.com/alexchen/internlens/internal/feedback"
	"github.com/alexchen/internlens/internal/normalize"
	"github.com/alexchen/internlens/internal/respmatch"
	"github.com/alexchen/internlens/internal/scoring"
	"github.com/alexchen/internlens/internal/sections"
	"github.com/alexchen/internlens/internal/skillmatch"
	"github.com/alexchen/internlens/internal/types"
)

// FieldExtractor is the upstream collaborator that turns free text into
// loosely-typed structured fields. Its failures, timeouts and retries are the
// caller's concern; the engine only consumes its output values.
type FieldExtractor interface {
	ExtractResume(ctx context.Context, resumeText string) (*types.RawResume, error)
	ExtractJobDescription(ctx context.Context, jobText string) (*types.RawJobDescription, error)
}

// Engine runs the matching pipeline. It holds only immutable policy and
// stateless components, so concurrent invocations are safe; every call
// allocates its own intermediate structures.
type Engine struct {
	sections   *sections.Extractor
	comparator *skillmatch.Comparator
	signals    skillmatch.LearnabilitySignals
	matcher    *respmatch.Matcher
	calculator *scoring.Calculator
	processor  *feedback.Processor
}

// New creates an Engine from a validated policy
func New(policy config.Policy) (*Engine, error) {
	if err := policy.Validate(); err != nil {
		return nil, fmt.Errorf("invalid policy: %w", err)
	}

	calculator, err := scoring.NewCalculator(policy.Weights)
	if err != nil {
		return nil, err
	}

	return &Engine{
		sections:   sections.NewExtractor(sections.DefaultPatterns()),
		comparator: skillmatch.NewComparator(policy.SkillAliases),
		signals:    policy.Learnability,
		matcher:    respmatch.NewMatcher(policy.StopWords, policy.Responsibility.StrongOverlap, policy.Responsibility.WeakOverlap),
		calculator: calculator,
		processor:  feedback.NewProcessor(policy.Feedback),
	}, nil
}

// Input carries already-extracted fields into a pure analysis run
type Input struct {
	// Resume is the normalized resume; nil is treated as empty
	Resume *types.NormalizedResume
	// Job is the parsed job description; nil is treated as empty
	Job *types.ParsedJobDescription
	// JobText is the raw job description text used by the learnability
	// heuristic; empty disables the signal-phrase scan
	JobText string
	// ModelFeedback is optional model-generated feedback to post-process
	ModelFeedback []types.FeedbackItem
}

// Analyze runs the full pipeline over already-extracted fields. It is pure
// and deterministic: identical inputs yield identical results.
func (e *Engine) Analyze(in Input) (*types.AnalysisResult, error) {
	resume := in.Resume
	if resume == nil {
		resume = normalize.Resume(nil)
	}
	job := in.Job
	if job == nil {
		job = normalize.JobDescription(nil)
	}

	required, preferred := e.comparator.ApplyLearnability(in.JobText, job.RequiredSkills, job.PreferredSkills, e.signals)
	skills := e.comparator.Compare(resume.Skills, required, preferred)

	coverage := e.matcher.Match(job.Responsibilities, resume.AllBullets())
	if err := coverage.Verify(len(job.Responsibilities)); err != nil {
		return nil, fmt.Errorf("responsibility matcher contract violation: %w", err)
	}

	score := e.calculator.Score(skills, coverage, job.EducationRequirements, resume.Education)

	return &types.AnalysisResult{
		Score:            score,
		Skills:           skills,
		Responsibilities: coverage,
		Feedback:         e.processor.Process(in.ModelFeedback, resume),
	}, nil
}

// ExtractSections splits raw resume text into section-tagged blocks
func (e *Engine) ExtractSections(resumeText string) sections.Sections {
	return e.sections.Extract(resumeText)
}

// AnalyzeText extracts structured fields from both raw texts via the
// collaborator (concurrently) and then runs the pure pipeline. The resume
// text is section-tagged first so the collaborator receives labeled blocks.
func (e *Engine) AnalyzeText(ctx context.Context, extractor FieldExtractor, resumeText, jobText string, modelFeedback []types.FeedbackItem) (*types.AnalysisResult, error) {
	if extractor == nil {
		return nil, fmt.Errorf("field extractor is required")
	}

	tagged := TagSections(e.sections.Extract(resumeText))

	var rawResume *types.RawResume
	var rawJob *types.RawJobDescription

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rawResume, err = extractor.ExtractResume(gctx, tagged)
		return err
	})
	g.Go(func() error {
		var err error
		rawJob, err = extractor.ExtractJobDescription(gctx, jobText)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("field extraction failed: %w", err)
	}

	return e.Analyze(Input{
		Resume:        normalize.Resume(rawResume),
		Job:           normalize.JobDescription(rawJob),
		JobText:       jobText,
		ModelFeedback: modelFeedback,
	})
}

// TagSections renders extracted sections as labeled text blocks for the
// extraction collaborator, falling back to the normalized text when no
// canonical section was detected.
func TagSections(s sections.Sections) string {
	var sb strings.Builder
	write := func(label string, section *sections.Section) {
		if section == nil || section.Content == "" {
			return
		}
		sb.WriteString("[")
		sb.WriteString(label)
		sb.WriteString("]\n")
		sb.WriteString(section.Content)
		sb.WriteString("\n\n")
	}

	write("SKILLS", s.Skills)
	write("EXPERIENCE", s.Experience)
	write("EDUCATION", s.Education)
	write("PROJECTS", s.Projects)
	for i := range s.Other {
		write(strings.ToUpper(s.Other[i].Heading), &s.Other[i])
	}

	if sb.Len() == 0 {
		return s.NormalizedText
	}
	return strings.TrimSpace(sb.String())
}
