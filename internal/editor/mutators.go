// Package editor implements the pure update operations over a ResumeRecord.
// Every mutator takes the current record by value and returns a new record;
// the input is never modified, and only the touched list or field differs in
// the result. Persistence is the caller's responsibility.
package editor

import (
	"fmt"

	"resumeforge/pkg/models"
)

// Field names the scalar fields of a ResumeRecord
type Field string

const (
	FieldFullName Field = "fullName"
	FieldEmail    Field = "email"
	FieldPhone    Field = "phone"
	FieldLocation Field = "location"
	FieldWebsite  Field = "website"
	FieldLinkedIn Field = "linkedin"
	FieldSummary  Field = "summary"
)

// ParseField maps a wire-level field name onto a Field constant
func ParseField(name string) (Field, bool) {
	switch Field(name) {
	case FieldFullName, FieldEmail, FieldPhone, FieldLocation,
		FieldWebsite, FieldLinkedIn, FieldSummary:
		return Field(name), true
	}
	return "", false
}

// SetField replaces one scalar field. Any string is accepted, including
// empty. An unknown field is a programmer error and panics.
func SetField(record models.ResumeRecord, field Field, value string) models.ResumeRecord {
	out := record
	switch field {
	case FieldFullName:
		out.FullName = value
	case FieldEmail:
		out.Email = value
	case FieldPhone:
		out.Phone = value
	case FieldLocation:
		out.Location = value
	case FieldWebsite:
		out.Website = value
	case FieldLinkedIn:
		out.LinkedIn = value
	case FieldSummary:
		out.Summary = value
	default:
		panic(fmt.Sprintf("editor: unknown field %q", field))
	}
	return out
}

type identifiable interface {
	models.WorkExperience | models.Education | models.Skill | models.Project
}

func appendItem[T identifiable](list []T, item T) []T {
	out := make([]T, len(list), len(list)+1)
	copy(out, list)
	return append(out, item)
}

func removeByID[T identifiable](list []T, id string, idOf func(T) string) []T {
	for i, item := range list {
		if idOf(item) == id {
			out := make([]T, 0, len(list)-1)
			out = append(out, list[:i]...)
			return append(out, list[i+1:]...)
		}
	}
	return list
}

func replaceAt[T identifiable](list []T, index int, item T) []T {
	if index < 0 || index >= len(list) {
		panic(fmt.Sprintf("editor: index %d out of range for list of %d", index, len(list)))
	}
	out := make([]T, len(list))
	copy(out, list)
	out[index] = item
	return out
}

// AddExperience appends a work experience entry. The caller supplies the id.
func AddExperience(record models.ResumeRecord, item models.WorkExperience) models.ResumeRecord {
	record.Experience = appendItem(record.Experience, item)
	return record
}

// AddEducation appends an education entry
func AddEducation(record models.ResumeRecord, item models.Education) models.ResumeRecord {
	record.Education = appendItem(record.Education, item)
	return record
}

// AddSkill appends a skill
func AddSkill(record models.ResumeRecord, item models.Skill) models.ResumeRecord {
	record.Skills = appendItem(record.Skills, item)
	return record
}

// AddProject appends a project
func AddProject(record models.ResumeRecord, item models.Project) models.ResumeRecord {
	record.Projects = appendItem(record.Projects, item)
	return record
}

// RemoveExperience removes the experience entry with the given id. Removing
// an absent id returns the record unchanged, so the operation is idempotent.
func RemoveExperience(record models.ResumeRecord, id string) models.ResumeRecord {
	record.Experience = removeByID(record.Experience, id, func(e models.WorkExperience) string { return e.ID })
	return record
}

// RemoveEducation removes the education entry with the given id
func RemoveEducation(record models.ResumeRecord, id string) models.ResumeRecord {
	record.Education = removeByID(record.Education, id, func(e models.Education) string { return e.ID })
	return record
}

// RemoveSkill removes the skill with the given id
func RemoveSkill(record models.ResumeRecord, id string) models.ResumeRecord {
	record.Skills = removeByID(record.Skills, id, func(s models.Skill) string { return s.ID })
	return record
}

// RemoveProject removes the project with the given id
func RemoveProject(record models.ResumeRecord, id string) models.ResumeRecord {
	record.Projects = removeByID(record.Projects, id, func(p models.Project) string { return p.ID })
	return record
}

// ExperienceField names one mutable field of a WorkExperience
type ExperienceField string

const (
	ExperienceCompany     ExperienceField = "company"
	ExperiencePosition    ExperienceField = "position"
	ExperienceStartDate   ExperienceField = "startDate"
	ExperienceEndDate     ExperienceField = "endDate"
	ExperienceCurrent     ExperienceField = "current"
	ExperienceDescription ExperienceField = "description"
)

// UpdateExperience replaces one field of the experience entry at index.
// An out-of-range index, an unknown field, or a value of the wrong dynamic
// type is a programmer error and panics; the editing surface validates
// requests before calling in.
func UpdateExperience(record models.ResumeRecord, index int, field ExperienceField, value any) models.ResumeRecord {
	if index < 0 || index >= len(record.Experience) {
		panic(fmt.Sprintf("editor: experience index %d out of range", index))
	}
	item := record.Experience[index]
	switch field {
	case ExperienceCompany:
		item.Company = mustString(value, field)
	case ExperiencePosition:
		item.Position = mustString(value, field)
	case ExperienceStartDate:
		item.StartDate = mustString(value, field)
	case ExperienceEndDate:
		item.EndDate = mustString(value, field)
	case ExperienceCurrent:
		b, ok := value.(bool)
		if !ok {
			panic(fmt.Sprintf("editor: field %q needs a bool, got %T", field, value))
		}
		item.Current = b
	case ExperienceDescription:
		item.Description = mustString(value, field)
	default:
		panic(fmt.Sprintf("editor: unknown experience field %q", field))
	}
	record.Experience = replaceAt(record.Experience, index, item)
	return record
}

// EducationField names one mutable field of an Education entry
type EducationField string

const (
	EducationInstitution    EducationField = "institution"
	EducationDegree         EducationField = "degree"
	EducationFieldOfStudy   EducationField = "fieldOfStudy"
	EducationGraduationDate EducationField = "graduationDate"
)

// UpdateEducation replaces one field of the education entry at index
func UpdateEducation(record models.ResumeRecord, index int, field EducationField, value any) models.ResumeRecord {
	if index < 0 || index >= len(record.Education) {
		panic(fmt.Sprintf("editor: education index %d out of range", index))
	}
	item := record.Education[index]
	switch field {
	case EducationInstitution:
		item.Institution = mustString(value, field)
	case EducationDegree:
		item.Degree = mustString(value, field)
	case EducationFieldOfStudy:
		item.FieldOfStudy = mustString(value, field)
	case EducationGraduationDate:
		item.GraduationDate = mustString(value, field)
	default:
		panic(fmt.Sprintf("editor: unknown education field %q", field))
	}
	record.Education = replaceAt(record.Education, index, item)
	return record
}

// SkillField names one mutable field of a Skill
type SkillField string

const (
	SkillName  SkillField = "name"
	SkillLevel SkillField = "level"
)

// UpdateSkill replaces one field of the skill at index
func UpdateSkill(record models.ResumeRecord, index int, field SkillField, value any) models.ResumeRecord {
	if index < 0 || index >= len(record.Skills) {
		panic(fmt.Sprintf("editor: skill index %d out of range", index))
	}
	item := record.Skills[index]
	switch field {
	case SkillName:
		item.Name = mustString(value, field)
	case SkillLevel:
		item.Level = models.SkillLevel(mustString(value, field))
	default:
		panic(fmt.Sprintf("editor: unknown skill field %q", field))
	}
	record.Skills = replaceAt(record.Skills, index, item)
	return record
}

// ProjectField names one mutable field of a Project
type ProjectField string

const (
	ProjectName        ProjectField = "name"
	ProjectDescription ProjectField = "description"
	ProjectLink        ProjectField = "link"
)

// UpdateProject replaces one field of the project at index
func UpdateProject(record models.ResumeRecord, index int, field ProjectField, value any) models.ResumeRecord {
	if index < 0 || index >= len(record.Projects) {
		panic(fmt.Sprintf("editor: project index %d out of range", index))
	}
	item := record.Projects[index]
	switch field {
	case ProjectName:
		item.Name = mustString(value, field)
	case ProjectDescription:
		item.Description = mustString(value, field)
	case ProjectLink:
		item.Link = mustString(value, field)
	default:
		panic(fmt.Sprintf("editor: unknown project field %q", field))
	}
	record.Projects = replaceAt(record.Projects, index, item)
	return record
}

func mustString[F ~string](value any, field F) string {
	s, ok := value.(string)
	if !ok {
		panic(fmt.Sprintf("editor: field %q needs a string, got %T", string(field), value))
	}
	return s
}
