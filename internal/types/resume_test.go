package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResumeDocument_Defaults(t *testing.T) {
	doc := NewResumeDocument()

	assert.True(t, doc.PersonalInfo.IsEmpty())
	assert.Empty(t, doc.Experience)
	assert.Empty(t, doc.Education)
	assert.Empty(t, doc.Skills)
	assert.Empty(t, doc.Projects)
	assert.Equal(t, "Inter", doc.TemplateSettings.FontFamily)
	assert.Equal(t, "#6366f1", doc.TemplateSettings.PrimaryColor)
	assert.Equal(t, TemplateClassic, doc.TemplateSettings.Template)
}

func TestTemplate_IsValid(t *testing.T) {
	for _, tpl := range Templates {
		assert.True(t, tpl.IsValid(), string(tpl))
	}
	assert.False(t, Template("neon").IsValid())
	assert.False(t, Template("").IsValid())
}

func TestUpdatePersonalInfo(t *testing.T) {
	doc := NewResumeDocument()

	doc.UpdatePersonalInfo("fullName", "Ada Lovelace")
	doc.UpdatePersonalInfo("email", "ada@example.com")
	doc.UpdatePersonalInfo("notAField", "ignored")

	assert.Equal(t, "Ada Lovelace", doc.PersonalInfo.FullName)
	assert.Equal(t, "ada@example.com", doc.PersonalInfo.Email)
	assert.False(t, doc.PersonalInfo.IsEmpty())
}

func TestExperienceLifecycle(t *testing.T) {
	doc := NewResumeDocument()

	first := doc.AddExperience()
	second := doc.AddExperience()
	third := doc.AddExperience()
	require.Len(t, doc.Experience, 3)
	assert.NotEqual(t, first, second)

	assert.True(t, doc.UpdateExperience(second, "company", "Acme"))
	assert.True(t, doc.UpdateExperience(second, "role", "Engineer"))
	assert.False(t, doc.UpdateExperience("missing-id", "company", "Nowhere"))

	// Removal is by identifier, not position: the others keep their data.
	doc.RemoveExperience(first)
	require.Len(t, doc.Experience, 2)
	assert.Equal(t, second, doc.Experience[0].ID)
	assert.Equal(t, "Acme", doc.Experience[0].Company)
	assert.Equal(t, third, doc.Experience[1].ID)

	// Removing an absent id is a no-op.
	doc.RemoveExperience(first)
	assert.Len(t, doc.Experience, 2)
}

func TestEducationLifecycle(t *testing.T) {
	doc := NewResumeDocument()

	id := doc.AddEducation()
	assert.True(t, doc.UpdateEducation(id, "school", "MIT"))
	assert.True(t, doc.UpdateEducation(id, "degree", "BSc"))
	assert.Equal(t, "MIT", doc.Education[0].School)

	doc.RemoveEducation(id)
	assert.Empty(t, doc.Education)
	doc.RemoveEducation(id)
	assert.Empty(t, doc.Education)
}

func TestProjectLifecycle(t *testing.T) {
	doc := NewResumeDocument()

	id := doc.AddProject()
	assert.True(t, doc.UpdateProject(id, "title", "Note G"))
	assert.False(t, doc.UpdateProject("missing-id", "title", "Nothing"))
	assert.Equal(t, "Note G", doc.Projects[0].Title)

	doc.RemoveProject(id)
	assert.Empty(t, doc.Projects)
}

func TestSkills(t *testing.T) {
	doc := NewResumeDocument()

	doc.AddSkill("Go")
	doc.AddSkill("Postgres")
	doc.AddSkill("Go") // duplicate is a no-op
	assert.Equal(t, []string{"Go", "Postgres"}, doc.Skills, "insertion order preserved, no duplicates")

	doc.RemoveSkill("Go")
	assert.Equal(t, []string{"Postgres"}, doc.Skills)

	doc.RemoveSkill("Go") // absent is a no-op
	assert.Equal(t, []string{"Postgres"}, doc.Skills)
}

func TestUpdateTemplateSettings(t *testing.T) {
	doc := NewResumeDocument()

	font := "Georgia"
	doc.UpdateTemplateSettings(TemplateSettingsPatch{FontFamily: &font})
	assert.Equal(t, "Georgia", doc.TemplateSettings.FontFamily)
	assert.Equal(t, "#6366f1", doc.TemplateSettings.PrimaryColor, "unset fields untouched")

	tpl := TemplateExecutive
	color := "#0f766e"
	doc.UpdateTemplateSettings(TemplateSettingsPatch{PrimaryColor: &color, Template: &tpl})
	assert.Equal(t, "#0f766e", doc.TemplateSettings.PrimaryColor)
	assert.Equal(t, TemplateExecutive, doc.TemplateSettings.Template)
	assert.Equal(t, "Georgia", doc.TemplateSettings.FontFamily)
}

func TestEnhanceKind_IsValid(t *testing.T) {
	assert.True(t, EnhanceExperience.IsValid())
	assert.True(t, EnhanceSummary.IsValid())
	assert.True(t, EnhanceProject.IsValid())
	assert.False(t, EnhanceKind("poem").IsValid())
	assert.False(t, EnhanceKind("").IsValid())
}
