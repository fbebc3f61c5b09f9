package normalize

import (
	"encoding/json"
	"fmt"

	"github.com/alexchen/internlens/internal/types"
)

// DecodeRawResume validates and decodes a resume extraction payload
func DecodeRawResume(data []byte) (*types.RawResume, error) {
	if err := validateAgainstSchema(resumeSchema, "resume", data); err != nil {
		return nil, err
	}

	var raw types.RawResume
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode resume payload: %w", err)
	}
	return &raw, nil
}

// DecodeRawJobDescription validates and decodes a job description extraction
// payload
func DecodeRawJobDescription(data []byte) (*types.RawJobDescription, error) {
	if err := validateAgainstSchema(jobDescriptionSchema, "job description", data); err != nil {
		return nil, err
	}

	var raw types.RawJobDescription
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode job description payload: %w", err)
	}
	return &raw, nil
}

// DecodeResume decodes and normalizes a resume extraction payload in one step
func DecodeResume(data []byte) (*types.NormalizedResume, error) {
	raw, err := DecodeRawResume(data)
	if err != nil {
		return nil, err
	}
	return Resume(raw), nil
}

// DecodeJobDescription decodes and normalizes a job description extraction
// payload in one step
func DecodeJobDescription(data []byte) (*types.ParsedJobDescription, error) {
	raw, err := DecodeRawJobDescription(data)
	if err != nil {
		return nil, err
	}
	return JobDescription(raw), nil
}
