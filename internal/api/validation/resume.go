package validation

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"resumeforge/internal/editor"
	"resumeforge/pkg/models"
)

// List names accepted by the item endpoints
const (
	ListExperience = "experience"
	ListEducation  = "education"
	ListSkills     = "skills"
	ListProjects   = "projects"
)

// DecodeListItem decodes a raw item payload into the entity type selected
// by list. Unknown JSON keys are rejected so client typos surface as 400s
// instead of silently dropped fields. An item without an id gets a fresh
// one; empty drafts are allowed.
func DecodeListItem(list string, raw json.RawMessage) (any, error) {
	switch list {
	case ListExperience:
		var item models.WorkExperience
		if err := strictDecode(raw, &item); err != nil {
			return nil, err
		}
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		return item, nil
	case ListEducation:
		var item models.Education
		if err := strictDecode(raw, &item); err != nil {
			return nil, err
		}
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		return item, nil
	case ListSkills:
		var item models.Skill
		if err := strictDecode(raw, &item); err != nil {
			return nil, err
		}
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		return item, nil
	case ListProjects:
		var item models.Project
		if err := strictDecode(raw, &item); err != nil {
			return nil, err
		}
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		return item, nil
	default:
		return nil, fmt.Errorf("unknown list %q", list)
	}
}

// DecodeItemField parses a field name and raw value for the item endpoints
// and returns values the editor accepts without panicking. The experience
// "current" flag takes a bool; every other field takes a string.
func DecodeItemField(list, field string, raw json.RawMessage) (any, error) {
	wantBool := list == ListExperience && field == string(editor.ExperienceCurrent)

	if wantBool {
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, fmt.Errorf("field %q needs a boolean value", field)
		}
		return b, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("field %q needs a string value", field)
	}
	return s, nil
}

// KnownItemField reports whether field is a mutable field of the given list
func KnownItemField(list, field string) bool {
	switch list {
	case ListExperience:
		switch editor.ExperienceField(field) {
		case editor.ExperienceCompany, editor.ExperiencePosition, editor.ExperienceStartDate,
			editor.ExperienceEndDate, editor.ExperienceCurrent, editor.ExperienceDescription:
			return true
		}
	case ListEducation:
		switch editor.EducationField(field) {
		case editor.EducationInstitution, editor.EducationDegree,
			editor.EducationFieldOfStudy, editor.EducationGraduationDate:
			return true
		}
	case ListSkills:
		switch editor.SkillField(field) {
		case editor.SkillName, editor.SkillLevel:
			return true
		}
	case ListProjects:
		switch editor.ProjectField(field) {
		case editor.ProjectName, editor.ProjectDescription, editor.ProjectLink:
			return true
		}
	}
	return false
}

// ListLength returns the current length of the named list
func ListLength(record *models.ResumeRecord, list string) int {
	switch list {
	case ListExperience:
		return len(record.Experience)
	case ListEducation:
		return len(record.Education)
	case ListSkills:
		return len(record.Skills)
	case ListProjects:
		return len(record.Projects)
	}
	return 0
}

func strictDecode(raw json.RawMessage, target any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(target); err != nil {
		return fmt.Errorf("invalid item payload: %w", err)
	}
	return nil
}
