// Package parsing converts semi-structured provider output into validated
// domain values. Provider text is supposed to be JSON but may be wrapped in
// markdown fences or surrounded by commentary; normalization never lets a
// malformed response crash the caller; it yields a typed error and the
// caller applies its own failure policy.
package parsing

import (
	"encoding/json"
	"strings"

	"github.com/jordan/resume-studio/internal/llm"
	"github.com/jordan/resume-studio/internal/schemas"
	"github.com/jordan/resume-studio/internal/types"
)

// ParseAnalysis normalizes an ATS-analysis response. matchScore and analysis
// are mandatory; the three keyword arrays default to empty when absent.
func ParseAnalysis(text string) (*types.AIAnalysisResult, error) {
	cleaned := llm.CleanJSONBlock(text)
	if candidate := llm.ExtractJSONObject(cleaned); candidate != "" {
		cleaned = candidate
	}

	if err := schemas.Validate(schemas.AnalysisSchema, cleaned); err != nil {
		return nil, &ParseError{Message: "analysis response is not the expected shape", Cause: err}
	}

	var result types.AIAnalysisResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return nil, &ParseError{Message: "failed to parse analysis JSON", Cause: err}
	}

	if result.MissingKeywords == nil {
		result.MissingKeywords = []string{}
	}
	if result.Improvements == nil {
		result.Improvements = []string{}
	}
	if result.Strengths == nil {
		result.Strengths = []string{}
	}

	return &result, nil
}

// ParseSkillList normalizes a flat JSON array of skill names. A response
// whose top-level value is not an array is rejected; commentary around the
// array is tolerated.
func ParseSkillList(text string) ([]string, error) {
	cleaned := llm.CleanJSONBlock(text)
	if !strings.HasPrefix(cleaned, "[") {
		// Trailing or leading commentary, but never an object envelope.
		if strings.HasPrefix(cleaned, "{") {
			return nil, &ParseError{Message: "skill list response is not a flat array"}
		}
		if candidate := llm.ExtractJSONArray(cleaned); candidate != "" {
			cleaned = candidate
		}
	} else if candidate := llm.ExtractJSONArray(cleaned); candidate != "" {
		cleaned = candidate
	}

	var skills []string
	if err := json.Unmarshal([]byte(cleaned), &skills); err != nil {
		return nil, &ParseError{Message: "failed to parse skill list", Cause: err}
	}

	return skills, nil
}

// jobsEnvelope matches the object shape requested from the provider.
type jobsEnvelope struct {
	Jobs []types.JobListing `json:"jobs"`
}

// ParseJobListings normalizes a job-matching response. The provider is asked
// for a {"jobs": [...]} object; a bare array is tolerated.
func ParseJobListings(text string) ([]types.JobListing, error) {
	cleaned := llm.CleanJSONBlock(text)

	if candidate := llm.ExtractJSONObject(cleaned); candidate != "" {
		if err := schemas.Validate(schemas.JobsSchema, candidate); err != nil {
			return nil, &ParseError{Message: "jobs response is not the expected shape", Cause: err}
		}
		var envelope jobsEnvelope
		if err := json.Unmarshal([]byte(candidate), &envelope); err != nil {
			return nil, &ParseError{Message: "failed to parse jobs JSON", Cause: err}
		}
		return withJobDefaults(envelope.Jobs), nil
	}

	if candidate := llm.ExtractJSONArray(cleaned); candidate != "" {
		var jobs []types.JobListing
		if err := json.Unmarshal([]byte(candidate), &jobs); err != nil {
			return nil, &ParseError{Message: "failed to parse jobs JSON", Cause: err}
		}
		return withJobDefaults(jobs), nil
	}

	return nil, &ParseError{Message: "no JSON found in jobs response"}
}

func withJobDefaults(jobs []types.JobListing) []types.JobListing {
	if jobs == nil {
		jobs = []types.JobListing{}
	}
	for i := range jobs {
		if jobs[i].Skills == nil {
			jobs[i].Skills = []string{}
		}
	}
	return jobs
}
