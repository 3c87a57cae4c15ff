package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"resumeforge/internal/api/validation"
	"resumeforge/internal/editor"
	"resumeforge/internal/logging"
	"resumeforge/internal/session"
	"resumeforge/pkg/models"
	"resumeforge/pkg/utils"
)

var validate = validator.New()

// GetResumeHandler handles GET /api/v1/resumes/:id
func GetResumeHandler(sessions *session.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		resumeID := c.Param("id")

		record, err := sessions.Get(c.Request().Context(), resumeID)
		if err != nil {
			return storeError(c, requestID, err)
		}

		return c.JSON(http.StatusOK, models.RecordResponse{Resume: *record, RequestID: requestID})
	}
}

// PutResumeHandler handles PUT /api/v1/resumes/:id, replacing the record
// wholesale with the request body.
func PutResumeHandler(sessions *session.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		resumeID := c.Param("id")
		logger := logging.GetGlobalLogger()

		var record models.ResumeRecord
		if err := c.Bind(&record); err != nil {
			return c.JSON(http.StatusBadRequest, models.NewErrorResponse(
				"invalid_request", "Invalid request body: "+err.Error(), requestID))
		}

		updated, err := sessions.Replace(c.Request().Context(), resumeID, &record)
		if err != nil {
			return storeError(c, requestID, err)
		}

		logger.Info("Resume replaced", map[string]interface{}{
			"request_id": requestID,
			"resume_id":  resumeID,
		})

		return c.JSON(http.StatusOK, models.RecordResponse{Resume: *updated, RequestID: requestID})
	}
}

// SetFieldHandler handles POST /api/v1/resumes/:id/fields
func SetFieldHandler(sessions *session.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		resumeID := c.Param("id")

		var req models.SetFieldRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.NewErrorResponse(
				"invalid_request", "Invalid request body: "+err.Error(), requestID))
		}
		if err := validate.Struct(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.NewErrorResponse(
				"validation_failed", err.Error(), requestID))
		}

		field, ok := editor.ParseField(req.Field)
		if !ok {
			return c.JSON(http.StatusBadRequest, models.NewErrorResponse(
				"unknown_field", "Unknown field: "+req.Field, requestID))
		}

		updated, err := sessions.Update(c.Request().Context(), resumeID, func(r *models.ResumeRecord) *models.ResumeRecord {
			next := editor.SetField(*r, field, req.Value)
			return &next
		})
		if err != nil {
			return storeError(c, requestID, err)
		}

		return c.JSON(http.StatusOK, models.RecordResponse{Resume: *updated, RequestID: requestID})
	}
}

// AddItemHandler handles POST /api/v1/resumes/:id/items
func AddItemHandler(sessions *session.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		resumeID := c.Param("id")

		var req models.AddItemRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.NewErrorResponse(
				"invalid_request", "Invalid request body: "+err.Error(), requestID))
		}
		if err := validate.Struct(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.NewErrorResponse(
				"validation_failed", err.Error(), requestID))
		}

		item, err := validation.DecodeListItem(req.List, req.Item)
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.NewErrorResponse(
				"invalid_item", err.Error(), requestID))
		}

		updated, err := sessions.Update(c.Request().Context(), resumeID, func(r *models.ResumeRecord) *models.ResumeRecord {
			var next models.ResumeRecord
			switch v := item.(type) {
			case models.WorkExperience:
				next = editor.AddExperience(*r, v)
			case models.Education:
				next = editor.AddEducation(*r, v)
			case models.Skill:
				next = editor.AddSkill(*r, v)
			case models.Project:
				next = editor.AddProject(*r, v)
			}
			return &next
		})
		if err != nil {
			return storeError(c, requestID, err)
		}

		return c.JSON(http.StatusOK, models.RecordResponse{Resume: *updated, RequestID: requestID})
	}
}

// RemoveItemHandler handles DELETE /api/v1/resumes/:id/items/:list/:itemID.
// Removing an ID that is not present is a no-op, not an error.
func RemoveItemHandler(sessions *session.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		resumeID := c.Param("id")
		list := c.Param("list")
		itemID := c.Param("itemID")

		remove, ok := removerFor(list)
		if !ok {
			return c.JSON(http.StatusBadRequest, models.NewErrorResponse(
				"unknown_list", "Unknown list: "+list, requestID))
		}

		updated, err := sessions.Update(c.Request().Context(), resumeID, func(r *models.ResumeRecord) *models.ResumeRecord {
			next := remove(*r, itemID)
			return &next
		})
		if err != nil {
			return storeError(c, requestID, err)
		}

		return c.JSON(http.StatusOK, models.RecordResponse{Resume: *updated, RequestID: requestID})
	}
}

// UpdateItemHandler handles POST /api/v1/resumes/:id/items/:list/:index
func UpdateItemHandler(sessions *session.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		resumeID := c.Param("id")
		list := c.Param("list")

		index, err := parseIndex(c.Param("index"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.NewErrorResponse(
				"invalid_index", err.Error(), requestID))
		}

		var req models.UpdateItemRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.NewErrorResponse(
				"invalid_request", "Invalid request body: "+err.Error(), requestID))
		}
		if err := validate.Struct(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.NewErrorResponse(
				"validation_failed", err.Error(), requestID))
		}

		if !validation.KnownItemField(list, req.Field) {
			return c.JSON(http.StatusBadRequest, models.NewErrorResponse(
				"unknown_field", "Unknown field "+req.Field+" for list "+list, requestID))
		}

		value, err := validation.DecodeItemField(list, req.Field, req.Value)
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.NewErrorResponse(
				"invalid_value", err.Error(), requestID))
		}

		var outOfRange bool
		updated, err := sessions.Update(c.Request().Context(), resumeID, func(r *models.ResumeRecord) *models.ResumeRecord {
			if index >= validation.ListLength(r, list) {
				outOfRange = true
				return r
			}
			var next models.ResumeRecord
			switch list {
			case validation.ListExperience:
				next = editor.UpdateExperience(*r, index, editor.ExperienceField(req.Field), value)
			case validation.ListEducation:
				next = editor.UpdateEducation(*r, index, editor.EducationField(req.Field), value)
			case validation.ListSkills:
				next = editor.UpdateSkill(*r, index, editor.SkillField(req.Field), value)
			case validation.ListProjects:
				next = editor.UpdateProject(*r, index, editor.ProjectField(req.Field), value)
			}
			return &next
		})
		if err != nil {
			return storeError(c, requestID, err)
		}
		if outOfRange {
			return c.JSON(http.StatusBadRequest, models.NewErrorResponse(
				"index_out_of_range", "No item at that index", requestID))
		}

		return c.JSON(http.StatusOK, models.RecordResponse{Resume: *updated, RequestID: requestID})
	}
}

func removerFor(list string) (func(models.ResumeRecord, string) models.ResumeRecord, bool) {
	switch list {
	case validation.ListExperience:
		return editor.RemoveExperience, true
	case validation.ListEducation:
		return editor.RemoveEducation, true
	case validation.ListSkills:
		return editor.RemoveSkill, true
	case validation.ListProjects:
		return editor.RemoveProject, true
	}
	return nil, false
}

func parseIndex(raw string) (int, error) {
	index, err := strconv.Atoi(raw)
	if err != nil || index < 0 {
		return 0, fmt.Errorf("index must be a non-negative integer")
	}
	return index, nil
}

func storeError(c echo.Context, requestID string, err error) error {
	logging.GetGlobalLogger().Error("Snapshot store error", map[string]interface{}{
		"request_id": requestID,
		"error":      err.Error(),
	})
	return c.JSON(http.StatusInternalServerError, models.NewErrorResponse(
		"storage_error", "Could not access the resume store", requestID))
}
