package routes

import (
	"net/http"
	"time"

	"resumeforge/internal/api/handlers"
	"resumeforge/internal/api/middleware"
	"resumeforge/internal/config"
	"resumeforge/internal/exporter"
	"resumeforge/internal/llm"
	"resumeforge/internal/session"
	"resumeforge/internal/storage"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, store storage.Store, sessions *session.Manager, llmManager *llm.Manager, exp *exporter.Exporter) {
	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation())
	// Selective timeout: default for edits, 2 minutes for AI and export
	e.Use(middleware.SelectiveTimeoutConfig(cfg.Server.ReadTimeout, 2*time.Minute))

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler(store, llmManager))
		health.GET("/live", handlers.LivenessHandler)
	}

	// Status route
	e.GET("/status", handlers.StatusHandler(store, llmManager))

	// API v1 routes
	v1 := e.Group("/api/v1")
	{
		resumes := v1.Group("/resumes/:id")
		{
			resumes.GET("", handlers.GetResumeHandler(sessions))
			resumes.PUT("", handlers.PutResumeHandler(sessions))
			resumes.POST("/fields", handlers.SetFieldHandler(sessions))
			resumes.POST("/items", handlers.AddItemHandler(sessions))
			resumes.POST("/items/:list/:index", handlers.UpdateItemHandler(sessions))
			resumes.DELETE("/items/:list/:itemID", handlers.RemoveItemHandler(sessions))
			resumes.GET("/render", handlers.RenderHandler(sessions))
			resumes.POST("/export", handlers.ExportHandler(sessions, exp))

			ai := resumes.Group("/ai")
			{
				ai.POST("/summary", handlers.GenerateSummaryHandler(sessions, llmManager))
				ai.POST("/enhance", handlers.EnhanceBulletsHandler(sessions, llmManager))
				ai.POST("/analyze", handlers.AnalyzeMatchHandler(sessions, llmManager))
			}
		}
	}

	// Root route
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"service": "ResumeForge",
			"version": "1.0.0",
			"status":  "running",
		})
	})
}
