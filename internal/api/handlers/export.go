package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"resumeforge/internal/exporter"
	"resumeforge/internal/logging"
	"resumeforge/internal/render"
	"resumeforge/internal/session"
	"resumeforge/pkg/models"
	"resumeforge/pkg/utils"
)

// ExportHandler handles POST /api/v1/resumes/:id/export and streams the
// document back as an attachment.
func ExportHandler(sessions *session.Manager, exp *exporter.Exporter) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		resumeID := c.Param("id")
		logger := logging.LogWithRequestID(requestID)

		var req models.ExportRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.NewErrorResponse(
				"invalid_request", "Invalid request body: "+err.Error(), requestID))
		}
		if err := validate.Struct(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.NewErrorResponse(
				"validation_failed", err.Error(), requestID))
		}

		template, err := render.ParseTemplate(req.Template)
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.NewErrorResponse(
				"unknown_template", err.Error(), requestID))
		}

		record, err := sessions.Get(c.Request().Context(), resumeID)
		if err != nil {
			return storeError(c, requestID, err)
		}

		result, err := exp.Export(c.Request().Context(), record, template, req.Format)
		if err != nil {
			logger.Error("Export failed", map[string]interface{}{
				"resume_id": resumeID,
				"template":  req.Template,
				"format":    req.Format,
				"error":     err.Error(),
			})
			switch {
			case errors.Is(err, exporter.ErrUnknownFormat):
				return c.JSON(http.StatusBadRequest, models.NewErrorResponse(
					"unknown_format", "Unknown export format: "+req.Format, requestID))
			case errors.Is(err, exporter.ErrCompile):
				return c.JSON(http.StatusBadGateway, models.NewErrorResponse(
					"compile_failed", "PDF compilation failed", requestID))
			default:
				return c.JSON(http.StatusInternalServerError, models.NewErrorResponse(
					"export_failed", "Could not export the resume", requestID))
			}
		}

		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+result.Filename+`"`)
		return c.Blob(http.StatusOK, result.ContentType, result.Data)
	}
}
