package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"resumeforge/internal/render"
	"resumeforge/internal/session"
	"resumeforge/pkg/models"
	"resumeforge/pkg/utils"
)

// RenderResponse carries the projected document tree for one template
type RenderResponse struct {
	Template  string       `json:"template"`
	Document  *render.Node `json:"document"`
	RequestID string       `json:"request_id"`
}

// RenderHandler handles GET /api/v1/resumes/:id/render?template=modern
func RenderHandler(sessions *session.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		resumeID := c.Param("id")

		template, err := render.ParseTemplate(c.QueryParam("template"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.NewErrorResponse(
				"unknown_template", err.Error(), requestID))
		}

		record, err := sessions.Get(c.Request().Context(), resumeID)
		if err != nil {
			return storeError(c, requestID, err)
		}

		document, err := render.Render(*record, template)
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.NewErrorResponse(
				"unknown_template", err.Error(), requestID))
		}

		return c.JSON(http.StatusOK, RenderResponse{
			Template:  string(template),
			Document:  document,
			RequestID: requestID,
		})
	}
}
