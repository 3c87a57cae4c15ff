package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"resumeforge/internal/editor"
	"resumeforge/internal/llm"
	"resumeforge/internal/logging"
	"resumeforge/internal/session"
	"resumeforge/pkg/models"
	"resumeforge/pkg/utils"
)

// GenerateSummaryHandler handles POST /api/v1/resumes/:id/ai/summary.
// A failed generation leaves the record untouched and reports applied=false;
// the endpoint never errors on provider failure.
func GenerateSummaryHandler(sessions *session.Manager, llmManager *llm.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		resumeID := c.Param("id")
		logger := logging.GetGlobalLogger()

		var req models.GenerateSummaryRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.NewErrorResponse(
				"invalid_request", "Invalid request body: "+err.Error(), requestID))
		}
		if err := validate.Struct(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.NewErrorResponse(
				"validation_failed", err.Error(), requestID))
		}

		record, err := sessions.Get(c.Request().Context(), resumeID)
		if err != nil {
			return storeError(c, requestID, err)
		}

		skills := req.Skills
		if skills == "" {
			names := make([]string, 0, len(record.Skills))
			for _, s := range record.Skills {
				names = append(names, s.Name)
			}
			skills = strings.Join(names, ", ")
		}

		summary := llmManager.GenerateSummary(c.Request().Context(), req.JobTitle, skills)
		if summary == "" {
			logger.Warn("Summary generation returned nothing, record unchanged", map[string]interface{}{
				"request_id": requestID,
				"resume_id":  resumeID,
			})
			return c.JSON(http.StatusOK, models.SummaryResponse{
				Summary:   "",
				Applied:   false,
				Resume:    *record,
				RequestID: requestID,
			})
		}

		updated, err := sessions.Update(c.Request().Context(), resumeID, func(r *models.ResumeRecord) *models.ResumeRecord {
			next := editor.SetField(*r, editor.FieldSummary, summary)
			return &next
		})
		if err != nil {
			return storeError(c, requestID, err)
		}

		return c.JSON(http.StatusOK, models.SummaryResponse{
			Summary:   summary,
			Applied:   true,
			Resume:    *updated,
			RequestID: requestID,
		})
	}
}

// EnhanceBulletsHandler handles POST /api/v1/resumes/:id/ai/enhance. Each
// bullet line of the selected experience is rewritten independently; lines
// the provider cannot improve stay verbatim.
func EnhanceBulletsHandler(sessions *session.Manager, llmManager *llm.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		resumeID := c.Param("id")

		var req models.EnhanceBulletsRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.NewErrorResponse(
				"invalid_request", "Invalid request body: "+err.Error(), requestID))
		}
		if err := validate.Struct(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.NewErrorResponse(
				"validation_failed", err.Error(), requestID))
		}

		record, err := sessions.Get(c.Request().Context(), resumeID)
		if err != nil {
			return storeError(c, requestID, err)
		}
		if req.Index >= len(record.Experience) {
			return c.JSON(http.StatusBadRequest, models.NewErrorResponse(
				"index_out_of_range", "No experience entry at that index", requestID))
		}

		exp := record.Experience[req.Index]
		rewritten := llmManager.OptimizeDescription(c.Request().Context(), exp.Description, exp.Position)

		updated, err := sessions.Update(c.Request().Context(), resumeID, func(r *models.ResumeRecord) *models.ResumeRecord {
			if req.Index >= len(r.Experience) {
				return r
			}
			next := editor.UpdateExperience(*r, req.Index, editor.ExperienceDescription, rewritten)
			return &next
		})
		if err != nil {
			return storeError(c, requestID, err)
		}

		return c.JSON(http.StatusOK, models.RecordResponse{Resume: *updated, RequestID: requestID})
	}
}

// AnalyzeMatchHandler handles POST /api/v1/resumes/:id/ai/analyze. The
// analysis never mutates the record and always returns a well-formed
// result, falling back to a zero-score analysis on provider failure.
func AnalyzeMatchHandler(sessions *session.Manager, llmManager *llm.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		resumeID := c.Param("id")

		var req models.AnalyzeMatchRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.NewErrorResponse(
				"invalid_request", "Invalid request body: "+err.Error(), requestID))
		}
		if err := validate.Struct(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.NewErrorResponse(
				"validation_failed", err.Error(), requestID))
		}

		record, err := sessions.Get(c.Request().Context(), resumeID)
		if err != nil {
			return storeError(c, requestID, err)
		}

		analysis := llmManager.AnalyzeMatch(c.Request().Context(), *record, req.JobDescription)

		return c.JSON(http.StatusOK, models.AnalysisResponse{
			Analysis:  analysis,
			RequestID: requestID,
		})
	}
}
