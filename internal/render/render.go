// Package render projects a resume document into print-ready HTML. Rendering
// is a pure function of the document: same input, same markup. Six fixed
// template variants control typography and layout accents; PDF conversion is
// left to the browser's print pipeline.
package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/jordan/resume-studio/internal/types"
)

//go:embed layout.gohtml
var layoutSrc string

var layout = template.Must(template.New("resume").Funcs(template.FuncMap{
	"lines": splitLines,
}).Parse(layoutSrc))

// UnknownTemplateError indicates a template tag outside the closed variant set.
type UnknownTemplateError struct {
	Template types.Template
}

func (e *UnknownTemplateError) Error() string {
	return fmt.Sprintf("unknown template %q", string(e.Template))
}

type pageData struct {
	Doc        *types.ResumeDocument
	Name       string
	Contact    []string
	Font       string
	Color      string
	Variant    string
	VariantCSS template.CSS
}

// Render produces the HTML projection of doc using the given template
// variant. An empty variant falls back to the document's own setting.
// Sections with no data are omitted entirely.
func Render(doc *types.ResumeDocument, variant types.Template) (string, error) {
	if variant == "" {
		variant = doc.TemplateSettings.Template
	}

	css, err := styleFor(variant)
	if err != nil {
		return "", err
	}

	name := doc.PersonalInfo.FullName
	if name == "" {
		name = "Your Name"
	}

	data := pageData{
		Doc:        doc,
		Name:       name,
		Contact:    contactParts(doc.PersonalInfo),
		Font:       doc.TemplateSettings.FontFamily,
		Color:      doc.TemplateSettings.PrimaryColor,
		Variant:    string(variant),
		VariantCSS: css,
	}

	var buf bytes.Buffer
	if err := layout.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render resume: %w", err)
	}
	return buf.String(), nil
}

// styleFor maps a template tag to its variant stylesheet. The switch is
// exhaustive over the closed set; anything else is an error.
func styleFor(variant types.Template) (template.CSS, error) {
	switch variant {
	case types.TemplateClassic:
		return cssClassic, nil
	case types.TemplateModern:
		return cssModern, nil
	case types.TemplateMinimal:
		return cssMinimal, nil
	case types.TemplateProfessional:
		return cssProfessional, nil
	case types.TemplateCreative:
		return cssCreative, nil
	case types.TemplateExecutive:
		return cssExecutive, nil
	default:
		return "", &UnknownTemplateError{Template: variant}
	}
}

func contactParts(pi types.PersonalInfo) []string {
	parts := make([]string, 0, 4)
	for _, s := range []string{pi.Email, pi.Phone, pi.LinkedIn, pi.Portfolio} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return parts
}

// splitLines breaks a free-text description into display lines, dropping
// blank ones. Bullet characters entered by the user are preserved as-is.
func splitLines(s string) []string {
	raw := strings.Split(s, "\n")
	out := make([]string, 0, len(raw))
	for _, line := range raw {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Per-variant stylesheets. The base layout stays identical; variants change
// typography, header treatment, and how the accent color is applied.
const (
	cssClassic template.CSS = `
.resume.classic .header { text-align: center; border-bottom: 2px solid var(--accent); }
.resume.classic h2 { border-bottom: 1px solid #d1d5db; text-transform: uppercase; letter-spacing: 0.05em; font-size: 0.95rem; }
`

	cssModern template.CSS = `
.resume.modern .header { border-left: 6px solid var(--accent); padding-left: 16px; }
.resume.modern h1 { color: var(--accent); }
.resume.modern h2 { color: var(--accent); font-size: 1rem; }
.resume.modern .skill { background: var(--accent); color: #fff; }
`

	cssMinimal template.CSS = `
.resume.minimal { color: #111827; }
.resume.minimal .header { border: none; }
.resume.minimal h1 { font-weight: 400; }
.resume.minimal h2 { font-size: 0.85rem; text-transform: uppercase; letter-spacing: 0.12em; color: #6b7280; }
.resume.minimal .skill { border: 1px solid #d1d5db; background: none; }
`

	cssProfessional template.CSS = `
.resume.professional .header { background: var(--accent); color: #fff; padding: 24px; margin: -40px -40px 24px; }
.resume.professional .header .contact { color: rgba(255, 255, 255, 0.85); }
.resume.professional h2 { border-bottom: 2px solid var(--accent); font-size: 1rem; }
`

	cssCreative template.CSS = `
.resume.creative .header { background: linear-gradient(135deg, var(--accent), #1f2937); color: #fff; padding: 28px; border-radius: 12px; }
.resume.creative .header .contact { color: rgba(255, 255, 255, 0.9); }
.resume.creative h2 { color: var(--accent); font-size: 1.05rem; }
.resume.creative .skill { border-radius: 999px; background: var(--accent); color: #fff; }
`

	cssExecutive template.CSS = `
.resume.executive h1 { text-transform: uppercase; letter-spacing: 0.18em; font-size: 1.6rem; }
.resume.executive .header { border-bottom: 3px double #111827; }
.resume.executive h2 { text-transform: uppercase; letter-spacing: 0.1em; font-size: 0.9rem; color: #374151; }
.resume.executive .entry-title { font-variant: small-caps; }
`
)
