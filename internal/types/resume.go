// Package types provides type definitions for structured data used throughout the resume-studio system.
package types

import "github.com/google/uuid"

// Template identifies one of the fixed visual layouts for rendering a resume.
// The set is closed: rendering code switches exhaustively over these values.
type Template string

// Template variants supported by the preview surface.
const (
	TemplateClassic      Template = "classic"
	TemplateModern       Template = "modern"
	TemplateMinimal      Template = "minimal"
	TemplateProfessional Template = "professional"
	TemplateCreative     Template = "creative"
	TemplateExecutive    Template = "executive"
)

// Templates lists every template variant in display order.
var Templates = []Template{
	TemplateClassic,
	TemplateModern,
	TemplateMinimal,
	TemplateProfessional,
	TemplateCreative,
	TemplateExecutive,
}

// IsValid reports whether t is one of the enumerated template variants.
func (t Template) IsValid() bool {
	switch t {
	case TemplateClassic, TemplateModern, TemplateMinimal,
		TemplateProfessional, TemplateCreative, TemplateExecutive:
		return true
	}
	return false
}

// PersonalInfo holds the contact and summary fields of a resume.
// Every field is optional and defaults to the empty string.
type PersonalInfo struct {
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	LinkedIn  string `json:"linkedin"`
	Portfolio string `json:"portfolio"`
	Summary   string `json:"summary"`
}

// IsEmpty reports whether no personal info field is populated.
func (p PersonalInfo) IsEmpty() bool {
	return p.FullName == "" && p.Email == "" && p.Phone == "" &&
		p.LinkedIn == "" && p.Portfolio == "" && p.Summary == ""
}

// Experience is a single work-history entry. The ID is assigned once at
// creation and never reused; display order is insertion order.
type Experience struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Role        string `json:"role"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// Education is a single education entry.
type Education struct {
	ID     string `json:"id"`
	School string `json:"school"`
	Degree string `json:"degree"`
	Year   string `json:"year"`
}

// Project is a single project entry.
type Project struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description"`
}

// TemplateSettings controls the appearance of the rendered resume.
type TemplateSettings struct {
	FontFamily   string   `json:"fontFamily"`
	PrimaryColor string   `json:"primaryColor"`
	Template     Template `json:"template"`
}

// ResumeDocument is the root aggregate of the resume data model. It is
// created empty at session start and mutated in place; snapshots are
// persisted as a whole through the storage layer.
type ResumeDocument struct {
	PersonalInfo     PersonalInfo     `json:"personalInfo"`
	Experience       []Experience     `json:"experience"`
	Education        []Education      `json:"education"`
	Skills           []string         `json:"skills"`
	Projects         []Project        `json:"projects"`
	TemplateSettings TemplateSettings `json:"templateSettings"`
}

// NewResumeDocument returns an empty document with default appearance settings.
func NewResumeDocument() *ResumeDocument {
	return &ResumeDocument{
		Experience: []Experience{},
		Education:  []Education{},
		Skills:     []string{},
		Projects:   []Project{},
		TemplateSettings: TemplateSettings{
			FontFamily:   "Inter",
			PrimaryColor: "#6366f1",
			Template:     TemplateClassic,
		},
	}
}

// UpdatePersonalInfo sets a single personal info field by name.
// Unknown field names are ignored.
func (d *ResumeDocument) UpdatePersonalInfo(field, value string) {
	switch field {
	case "fullName":
		d.PersonalInfo.FullName = value
	case "email":
		d.PersonalInfo.Email = value
	case "phone":
		d.PersonalInfo.Phone = value
	case "linkedin":
		d.PersonalInfo.LinkedIn = value
	case "portfolio":
		d.PersonalInfo.Portfolio = value
	case "summary":
		d.PersonalInfo.Summary = value
	}
}

// AddExperience appends an empty experience entry and returns its new ID.
func (d *ResumeDocument) AddExperience() string {
	id := uuid.NewString()
	d.Experience = append(d.Experience, Experience{ID: id})
	return id
}

// UpdateExperience sets a single field on the entry with the given ID.
// Returns false when no entry matches.
func (d *ResumeDocument) UpdateExperience(id, field, value string) bool {
	for i := range d.Experience {
		if d.Experience[i].ID != id {
			continue
		}
		switch field {
		case "company":
			d.Experience[i].Company = value
		case "role":
			d.Experience[i].Role = value
		case "startDate":
			d.Experience[i].StartDate = value
		case "endDate":
			d.Experience[i].EndDate = value
		case "description":
			d.Experience[i].Description = value
		}
		return true
	}
	return false
}

// RemoveExperience deletes the entry with the given ID. Removal filters by
// identifier, not index, so other entries are unaffected; a no-op when the
// identifier is absent.
func (d *ResumeDocument) RemoveExperience(id string) {
	kept := d.Experience[:0]
	for _, exp := range d.Experience {
		if exp.ID != id {
			kept = append(kept, exp)
		}
	}
	d.Experience = kept
}

// AddEducation appends an empty education entry and returns its new ID.
func (d *ResumeDocument) AddEducation() string {
	id := uuid.NewString()
	d.Education = append(d.Education, Education{ID: id})
	return id
}

// UpdateEducation sets a single field on the entry with the given ID.
func (d *ResumeDocument) UpdateEducation(id, field, value string) bool {
	for i := range d.Education {
		if d.Education[i].ID != id {
			continue
		}
		switch field {
		case "school":
			d.Education[i].School = value
		case "degree":
			d.Education[i].Degree = value
		case "year":
			d.Education[i].Year = value
		}
		return true
	}
	return false
}

// RemoveEducation deletes the entry with the given ID; no-op when absent.
func (d *ResumeDocument) RemoveEducation(id string) {
	kept := d.Education[:0]
	for _, edu := range d.Education {
		if edu.ID != id {
			kept = append(kept, edu)
		}
	}
	d.Education = kept
}

// AddSkill inserts a skill into the skill set. Duplicate adds are a no-op;
// insertion order is preserved.
func (d *ResumeDocument) AddSkill(skill string) {
	for _, s := range d.Skills {
		if s == skill {
			return
		}
	}
	d.Skills = append(d.Skills, skill)
}

// RemoveSkill deletes a skill from the set; no-op when absent.
func (d *ResumeDocument) RemoveSkill(skill string) {
	kept := d.Skills[:0]
	for _, s := range d.Skills {
		if s != skill {
			kept = append(kept, s)
		}
	}
	d.Skills = kept
}

// AddProject appends an empty project entry and returns its new ID.
func (d *ResumeDocument) AddProject() string {
	id := uuid.NewString()
	d.Projects = append(d.Projects, Project{ID: id})
	return id
}

// UpdateProject sets a single field on the entry with the given ID.
func (d *ResumeDocument) UpdateProject(id, field, value string) bool {
	for i := range d.Projects {
		if d.Projects[i].ID != id {
			continue
		}
		switch field {
		case "title":
			d.Projects[i].Title = value
		case "link":
			d.Projects[i].Link = value
		case "description":
			d.Projects[i].Description = value
		}
		return true
	}
	return false
}

// RemoveProject deletes the entry with the given ID; no-op when absent.
func (d *ResumeDocument) RemoveProject(id string) {
	kept := d.Projects[:0]
	for _, p := range d.Projects {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	d.Projects = kept
}

// TemplateSettingsPatch carries optional appearance overrides.
type TemplateSettingsPatch struct {
	FontFamily   *string   `json:"fontFamily,omitempty"`
	PrimaryColor *string   `json:"primaryColor,omitempty"`
	Template     *Template `json:"template,omitempty"`
}

// UpdateTemplateSettings applies the non-nil fields of the patch.
func (d *ResumeDocument) UpdateTemplateSettings(patch TemplateSettingsPatch) {
	if patch.FontFamily != nil {
		d.TemplateSettings.FontFamily = *patch.FontFamily
	}
	if patch.PrimaryColor != nil {
		d.TemplateSettings.PrimaryColor = *patch.PrimaryColor
	}
	if patch.Template != nil {
		d.TemplateSettings.Template = *patch.Template
	}
}
