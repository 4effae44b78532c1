package gateway

import (
	"fmt"
	"strings"

	"github.com/jordan/resume-studio/internal/types"
)

// DefaultJobDescription is used by Analyze when no job description is given.
const DefaultJobDescription = `General Software Engineer / Technical Professional role.
Requirements:
- Strong technical skills and relevant experience
- Understanding of modern development practices
- Good communication and problem-solving abilities
- Ability to work in a team environment`

// FallbackSkills is returned by SuggestSkills when the provider response
// cannot be parsed. The UI never sees a hard failure for this operation.
var FallbackSkills = []string{"JavaScript", "Python", "Cloud Computing", "DevOps", "Git"}

// FormatResume serializes a resume document into the human-readable
// transcript sent to the provider for analysis.
func FormatResume(doc *types.ResumeDocument) string {
	var sb strings.Builder

	pi := doc.PersonalInfo
	sb.WriteString(fmt.Sprintf("Name: %s\n", orPlaceholder(pi.FullName)))
	sb.WriteString(fmt.Sprintf("Email: %s\n", orPlaceholder(pi.Email)))
	sb.WriteString(fmt.Sprintf("Phone: %s\n", orPlaceholder(pi.Phone)))
	if pi.LinkedIn != "" {
		sb.WriteString(fmt.Sprintf("LinkedIn: %s\n", pi.LinkedIn))
	}
	if pi.Portfolio != "" {
		sb.WriteString(fmt.Sprintf("Portfolio: %s\n", pi.Portfolio))
	}
	if pi.Summary != "" {
		sb.WriteString(fmt.Sprintf("\nSummary:\n%s\n", pi.Summary))
	}

	if len(doc.Experience) > 0 {
		sb.WriteString("\n\nPROFESSIONAL EXPERIENCE:\n")
		for _, exp := range doc.Experience {
			sb.WriteString(fmt.Sprintf("\n%s at %s\n", orDefault(exp.Role, "Role"), orDefault(exp.Company, "Company")))
			sb.WriteString(fmt.Sprintf("%s - %s\n", orDefault(exp.StartDate, "Start"), orDefault(exp.EndDate, "End")))
			if exp.Description != "" {
				sb.WriteString(exp.Description + "\n")
			}
		}
	}

	if len(doc.Education) > 0 {
		sb.WriteString("\n\nEDUCATION:\n")
		for _, edu := range doc.Education {
			sb.WriteString(fmt.Sprintf("%s - %s (%s)\n",
				orDefault(edu.Degree, "Degree"), orDefault(edu.School, "School"), orDefault(edu.Year, "Year")))
		}
	}

	if len(doc.Skills) > 0 {
		sb.WriteString("\n\nSKILLS:\n")
		sb.WriteString(strings.Join(doc.Skills, ", ") + "\n")
	}

	if len(doc.Projects) > 0 {
		sb.WriteString("\n\nPROJECTS:\n")
		for _, proj := range doc.Projects {
			sb.WriteString(fmt.Sprintf("\n%s\n", orDefault(proj.Title, "Project")))
			if proj.Description != "" {
				sb.WriteString(proj.Description + "\n")
			}
			if proj.Link != "" {
				sb.WriteString(fmt.Sprintf("Link: %s\n", proj.Link))
			}
		}
	}

	return sb.String()
}

// experienceLine summarizes work history for the summary/skills prompts.
func experienceLine(doc *types.ResumeDocument) string {
	if len(doc.Experience) == 0 {
		return "No experience listed"
	}
	parts := make([]string, 0, len(doc.Experience))
	for _, exp := range doc.Experience {
		parts = append(parts, fmt.Sprintf("%s at %s", exp.Role, exp.Company))
	}
	return strings.Join(parts, ", ")
}

func educationLine(doc *types.ResumeDocument) string {
	if len(doc.Education) == 0 {
		return "No education listed"
	}
	parts := make([]string, 0, len(doc.Education))
	for _, edu := range doc.Education {
		parts = append(parts, fmt.Sprintf("%s from %s", edu.Degree, edu.School))
	}
	return strings.Join(parts, ", ")
}

func skillsLine(doc *types.ResumeDocument) string {
	if len(doc.Skills) == 0 {
		return "No skills listed"
	}
	return strings.Join(doc.Skills, ", ")
}

func orPlaceholder(s string) string {
	return orDefault(s, "Not specified")
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
