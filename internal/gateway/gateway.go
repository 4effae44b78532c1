// Package gateway builds prompts from resume data and invokes the external
// generative-language provider. Prompt construction is deterministic; each
// operation makes exactly one provider call with the fixed configured model.
package gateway

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/jordan/resume-studio/internal/llm"
	"github.com/jordan/resume-studio/internal/parsing"
	"github.com/jordan/resume-studio/internal/prompts"
	"github.com/jordan/resume-studio/internal/types"
)

const promptFile = "resume.json"

// Service is the AI gateway. The client is nil when no provider credential
// is configured; hard-fail operations then return ConfigurationError.
type Service struct {
	client llm.Client
}

// New creates a gateway over the given provider client. A nil client is
// valid and marks the gateway as unconfigured.
func New(client llm.Client) *Service {
	return &Service{client: client}
}

// Configured reports whether a provider credential is available.
func (s *Service) Configured() bool {
	return s.client != nil
}

// Analyze scores the resume against a job description. A blank job
// description falls back to a built-in generic one. Parse failures are hard
// errors for this operation.
func (s *Service) Analyze(ctx context.Context, doc *types.ResumeDocument, jobDescription string) (*types.AIAnalysisResult, error) {
	if s.client == nil {
		return nil, &ConfigurationError{Message: "add GEMINI_API_KEY to your environment variables"}
	}

	jd := strings.TrimSpace(jobDescription)
	if jd == "" {
		jd = DefaultJobDescription
	}

	prompt := prompts.Format(prompts.MustGet(promptFile, "analyze"), map[string]string{
		"ResumeText":     FormatResume(doc),
		"JobDescription": jd,
	})

	text, err := s.client.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, &parsing.UpstreamError{Message: "failed to analyze resume", Cause: err}
	}

	return parsing.ParseAnalysis(text)
}

// GenerateSummary produces a 2-3 sentence career summary as trimmed raw
// text; the response is not parsed as JSON.
func (s *Service) GenerateSummary(ctx context.Context, doc *types.ResumeDocument) (string, error) {
	if s.client == nil {
		return "", &ConfigurationError{Message: "add GEMINI_API_KEY to your environment variables"}
	}

	prompt := prompts.Format(prompts.MustGet(promptFile, "generate-summary"), map[string]string{
		"Name":       orDefault(doc.PersonalInfo.FullName, "Professional"),
		"Experience": experienceLine(doc),
		"Education":  educationLine(doc),
		"Skills":     skillsLine(doc),
	})

	text, err := s.client.GenerateText(ctx, prompt)
	if err != nil {
		return "", &parsing.UpstreamError{Message: "failed to generate summary", Cause: err}
	}

	return strings.TrimSpace(text), nil
}

// EnhanceText rewrites a snippet according to per-kind formatting rules:
// bullet list for experience, short prose for summary and project.
func (s *Service) EnhanceText(ctx context.Context, text string, kind types.EnhanceKind) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", &InvalidArgumentError{Field: "text", Message: "text is required"}
	}
	if !kind.IsValid() {
		return "", &InvalidArgumentError{Field: "type", Message: "use: experience, summary, or project"}
	}
	if s.client == nil {
		return "", &ConfigurationError{Message: "add GEMINI_API_KEY to your environment variables"}
	}

	prompt := prompts.Format(prompts.MustGet(promptFile, "enhance-"+string(kind)), map[string]string{
		"Text": text,
	})

	improved, err := s.client.GenerateText(ctx, prompt)
	if err != nil {
		return "", &parsing.UpstreamError{Message: "failed to enhance text", Cause: err}
	}

	return strings.TrimSpace(improved), nil
}

// SuggestSkills requests ten complementary skill names. A malformed provider
// response yields the fixed fallback list instead of an error; configuration
// and upstream failures still propagate.
func (s *Service) SuggestSkills(ctx context.Context, doc *types.ResumeDocument) ([]string, error) {
	if s.client == nil {
		return nil, &ConfigurationError{Message: "add GEMINI_API_KEY to your environment variables"}
	}

	experience := "your experience"
	if len(doc.Experience) > 0 && doc.Experience[0].Role != "" {
		experience = doc.Experience[0].Role
	}
	skills := "your skills"
	if len(doc.Skills) > 0 {
		skills = strings.Join(doc.Skills, ", ")
	}

	prompt := prompts.Format(prompts.MustGet(promptFile, "suggest-skills"), map[string]string{
		"Experience": experience,
		"Skills":     skills,
	})

	text, err := s.client.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, &parsing.UpstreamError{Message: "failed to suggest skills", Cause: err}
	}

	suggestions, err := parsing.ParseSkillList(text)
	if err != nil {
		log.Printf("suggest-skills: falling back to default list: %v", err)
		return append([]string(nil), FallbackSkills...), nil
	}

	return suggestions, nil
}

// MatchJobs requests six synthetic job postings. Every failure (missing
// credential, provider error, unparseable output) yields an empty slice so
// job discovery never surfaces a hard error.
func (s *Service) MatchJobs(ctx context.Context, doc *types.ResumeDocument, filters types.JobFilters) []types.JobListing {
	if s.client == nil {
		log.Printf("match-jobs: provider not configured")
		return []types.JobListing{}
	}

	resumeJSON, err := json.Marshal(doc)
	if err != nil {
		log.Printf("match-jobs: failed to serialize resume: %v", err)
		return []types.JobListing{}
	}

	prompt := prompts.Format(prompts.MustGet(promptFile, "match-jobs"), map[string]string{
		"ResumeJSON":  string(resumeJSON),
		"SearchQuery": filters.SearchQuery,
		"Location":    filters.Location,
		"JobType":     filters.JobType,
	})

	text, err := s.client.GenerateJSON(ctx, prompt)
	if err != nil {
		log.Printf("match-jobs: provider call failed: %v", err)
		return []types.JobListing{}
	}

	jobs, err := parsing.ParseJobListings(text)
	if err != nil {
		log.Printf("match-jobs: discarding unparseable response: %v", err)
		return []types.JobListing{}
	}

	return jobs
}
