package llm

import (
	"context"
	"fmt"

	"github.com/alexchen/internlens/internal/normalize"
	"github.com/alexchen/internlens/internal/types"
)

const resumeExtractionPrompt = `You are an expert resume parser. COPY TEXT VERBATIM - do not paraphrase, summarize, or reword.
Your task is to extract structured fields from resume text. Section labels like [SKILLS] mark detected sections.

Return ONLY valid JSON matching this exact structure:
{
  "skills": ["string"], // individual skill names, one entry per skill
  "experience": [{"title": "string", "company": "string", "bullets": ["string"]}], // one entry per role, bullets copied verbatim
  "projects": [{"name": "string", "bullets": ["string"]}], // one entry per project
  "education": [{"degree": "string", "field": "string", "institution": "string"}] // one entry per degree
}

IMPORTANT:
- Extract information directly from the text, do not invent or summarize.
- Split comma-separated skill lists into individual entries.
- Return ONLY the JSON object, no markdown, no explanation, no code blocks.

Input text:
"""
%s
"""
`

const jobExtractionPrompt = `You are an expert job posting parser. COPY TEXT VERBATIM - do not paraphrase, summarize, or reword.
Your task is to extract and categorize requirements from a raw job posting.
EXCLUDE: Application form fields, EEO statements, legal disclaimers, generic "About Company" boilerplate.

Return ONLY valid JSON matching this exact structure:
{
  "required_skills": ["string"], // hard skill requirements, one skill per entry
  "preferred_skills": ["string"], // nice-to-have skills, one skill per entry
  "responsibilities": ["string"], // job duties, copy each responsibility verbatim
  "education_requirements": ["string"], // degree or coursework requirements, copy verbatim
  "seniority_level": "string", // one of: intern, junior, mid, senior, staff+, unknown
  "seniority_signals": ["string"], // phrases that indicate the seniority level
  "years_of_experience": 0 // required years of experience as a number, omit when not stated
}

IMPORTANT:
- Extract information directly from the text, do not invent or summarize.
- A skill mentioned only as part of the team's stack still belongs in required_skills or preferred_skills as written.
- Return ONLY the JSON object, no markdown, no explanation, no code blocks.

Input text:
"""
%s
"""
`

// Extractor turns free resume and job description text into loosely-typed
// structured fields using an LLM. Responses are schema-validated before use.
type Extractor struct {
	client Client
	tier   ModelTier
}

// NewExtractor creates an Extractor using the given client and model tier
func NewExtractor(client Client, tier ModelTier) *Extractor {
	return &Extractor{client: client, tier: tier}
}

// ExtractResume extracts structured resume fields from section-tagged text
func (e *Extractor) ExtractResume(ctx context.Context, resumeText string) (*types.RawResume, error) {
	payload, err := e.client.GenerateJSON(ctx, fmt.Sprintf(resumeExtractionPrompt, resumeText), e.tier)
	if err != nil {
		return nil, fmt.Errorf("resume extraction failed: %w", err)
	}

	raw, err := normalize.DecodeRawResume([]byte(payload))
	if err != nil {
		return nil, fmt.Errorf("resume extraction returned an invalid payload: %w", err)
	}
	return raw, nil
}

// ExtractJobDescription extracts structured job description fields from raw
// posting text.
func (e *Extractor) ExtractJobDescription(ctx context.Context, jobText string) (*types.RawJobDescription, error) {
	payload, err := e.client.GenerateJSON(ctx, fmt.Sprintf(jobExtractionPrompt, jobText), e.tier)
	if err != nil {
		return nil, fmt.Errorf("job description extraction failed: %w", err)
	}

	raw, err := normalize.DecodeRawJobDescription([]byte(payload))
	if err != nil {
		return nil, fmt.Errorf("job description extraction returned an invalid payload: %w", err)
	}
	return raw, nil
}
