package llm

import (
	"context"

	"resumeforge/internal/llm/providers"
	"resumeforge/pkg/models"
)

// ErrMalformedResponse marks a provider response that came back but could
// not be decoded into the expected shape. Callers use it to distinguish
// service/parse failures from transport failures.
var ErrMalformedResponse = providers.ErrMalformedResponse

// Provider defines the interface for text-generation providers. Operations
// return raw results and errors; the fallback policy that makes every
// operation total lives in the Manager, not here.
type Provider interface {
	// GenerateSummary writes a short professional summary for the given
	// job title and comma-separated skills
	GenerateSummary(ctx context.Context, jobTitle, skills string) (string, error)

	// OptimizeBullet rewrites one resume bullet line for the given role
	OptimizeBullet(ctx context.Context, text, role string) (string, error)

	// AnalyzeMatch scores the resume against a job description
	AnalyzeMatch(ctx context.Context, record models.ResumeRecord, jobDescription string) (*models.ATSAnalysis, error)

	// IsHealthy checks if the provider is healthy and available
	IsHealthy(ctx context.Context) error

	// GetProviderName returns the name of the provider
	GetProviderName() string
}
