// Package render projects a ResumeRecord into a style-annotated document
// tree. Each template is a pure function of the record: no shared state, no
// re-sorting, and sections backed by empty fields or lists are omitted
// entirely.
package render

import (
	"fmt"
	"strings"

	"resumeforge/pkg/models"
)

// Template selects one of the visual layouts
type Template string

const (
	TemplateModern       Template = "modern"
	TemplateProfessional Template = "professional"
	TemplateMinimalist   Template = "minimalist"
)

// Templates lists every known template in display order
func Templates() []Template {
	return []Template{TemplateModern, TemplateProfessional, TemplateMinimalist}
}

// ParseTemplate maps a wire-level template name onto a Template
func ParseTemplate(name string) (Template, error) {
	switch Template(strings.ToLower(strings.TrimSpace(name))) {
	case TemplateModern:
		return TemplateModern, nil
	case TemplateProfessional:
		return TemplateProfessional, nil
	case TemplateMinimalist:
		return TemplateMinimalist, nil
	}
	return "", fmt.Errorf("unknown template: %s", name)
}

// Render projects the record under the given template. All record fields
// are treated as possibly empty; an absent field never fails the render.
func Render(record models.ResumeRecord, template Template) (*Node, error) {
	switch template {
	case TemplateModern:
		return renderModern(record), nil
	case TemplateProfessional:
		return renderProfessional(record), nil
	case TemplateMinimalist:
		return renderMinimalist(record), nil
	default:
		return nil, fmt.Errorf("unknown template: %s", template)
	}
}
