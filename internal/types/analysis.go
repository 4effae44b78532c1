package types

// AIAnalysisResult is the structured outcome of an ATS-match analysis.
// A new result fully replaces any previous one; results are never merged.
type AIAnalysisResult struct {
	MatchScore      int      `json:"matchScore"`
	Analysis        string   `json:"analysis"`
	MissingKeywords []string `json:"missingKeywords"`
	Improvements    []string `json:"improvements"`
	Strengths       []string `json:"strengths"`
}

// JobListing is a single synthetic job posting produced by the job-matching
// operation. Salary and Posted are optional.
type JobListing struct {
	Title      string   `json:"title"`
	Company    string   `json:"company"`
	Location   string   `json:"location"`
	Type       string   `json:"type"`
	MatchScore int      `json:"matchScore"`
	Reason     string   `json:"reason"`
	Salary     string   `json:"salary,omitempty"`
	Posted     string   `json:"posted,omitempty"`
	Skills     []string `json:"skills"`
}

// JobFilters carries the optional free-text filters of a job search.
type JobFilters struct {
	SearchQuery string `json:"searchQuery,omitempty"`
	Location    string `json:"location,omitempty"`
	JobType     string `json:"jobType,omitempty"`
}

// EnhanceKind selects the per-kind rewrite rules for text enhancement.
type EnhanceKind string

// Enhancement kinds accepted by the AI gateway.
const (
	EnhanceExperience EnhanceKind = "experience"
	EnhanceSummary    EnhanceKind = "summary"
	EnhanceProject    EnhanceKind = "project"
)

// IsValid reports whether k is one of the enumerated enhancement kinds.
func (k EnhanceKind) IsValid() bool {
	switch k {
	case EnhanceExperience, EnhanceSummary, EnhanceProject:
		return true
	}
	return false
}
