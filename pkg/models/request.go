package models

import "encoding/json"

// SetFieldRequest replaces one scalar field of the record
type SetFieldRequest struct {
	Field string `json:"field" validate:"required"`
	Value string `json:"value"`
}

// AddItemRequest appends one item to the named list. Item is decoded into
// the entity type selected by List; an item without an id gets a fresh one.
type AddItemRequest struct {
	List string          `json:"list" validate:"required,oneof=experience education skills projects"`
	Item json.RawMessage `json:"item" validate:"required"`
}

// UpdateItemRequest replaces one field of the item at Index in the named list
type UpdateItemRequest struct {
	Field string          `json:"field" validate:"required"`
	Value json.RawMessage `json:"value"`
}

// GenerateSummaryRequest asks the AI collaborator for a professional summary.
// JobTitle is required: invoking summary generation without one is a usage
// error and is rejected at the editing surface.
type GenerateSummaryRequest struct {
	JobTitle string `json:"job_title" validate:"required"`
	Skills   string `json:"skills"`
}

// EnhanceBulletsRequest rewrites the description of the experience at Index
type EnhanceBulletsRequest struct {
	Index int `json:"index" validate:"min=0"`
}

// AnalyzeMatchRequest scores the resume against a job description
type AnalyzeMatchRequest struct {
	JobDescription string `json:"job_description" validate:"required"`
}

// ExportRequest renders the resume under a template and encodes it
type ExportRequest struct {
	Template string `json:"template" validate:"required,oneof=modern professional minimalist"`
	Format   string `json:"format" validate:"required,oneof=pdf html docx"`
}
