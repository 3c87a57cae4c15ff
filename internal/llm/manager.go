package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"resumeforge/internal/config"
	"resumeforge/internal/logging"
	"resumeforge/pkg/models"
)

// Lines at or below this length are headers or separators, not bullets;
// they are passed through untouched instead of burning a provider call.
const minBulletLineLength = 11

// Manager wraps a Provider and makes every operation total: any transport
// or parse failure resolves to the documented fallback value, never to an
// error surfaced to the caller.
type Manager struct {
	config   *config.Config
	factory  *Factory
	provider Provider
	limiter  *rate.Limiter
	logger   logging.Logger
	mu       sync.RWMutex
	healthy  bool
}

// NewManager creates a new LLM manager instance
func NewManager(cfg *config.Config) *Manager {
	perMinute := cfg.LLM.RateLimit
	if perMinute <= 0 {
		perMinute = 30
	}

	return &Manager{
		config:  cfg,
		factory: NewFactory(cfg),
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute),
		logger:  logging.GetGlobalLogger(),
	}
}

// NewManagerWithProvider creates a manager around an existing provider.
// Used by tests to substitute a stub provider.
func NewManagerWithProvider(cfg *config.Config, provider Provider) *Manager {
	m := NewManager(cfg)
	m.provider = provider
	m.healthy = true
	return m
}

// Start initializes the manager and probes the provider. A failed probe
// degrades the service instead of stopping it: every operation then
// resolves to its fallback.
func (m *Manager) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger.Info("Starting LLM manager", map[string]interface{}{
		"provider": m.config.LLM.Provider,
	})

	provider, err := m.factory.CreateProvider()
	if err != nil {
		return fmt.Errorf("failed to create LLM provider: %w", err)
	}

	m.provider = provider

	ctx, cancel := context.WithTimeout(context.Background(), m.config.LLM.Timeout)
	defer cancel()

	if err := provider.IsHealthy(ctx); err != nil {
		m.logger.Warn("LLM provider health check failed - AI features will resolve to fallbacks", map[string]interface{}{
			"error": err.Error(),
		})
		m.healthy = false
	} else {
		m.healthy = true
		m.logger.Info("LLM manager started successfully", map[string]interface{}{
			"provider": provider.GetProviderName(),
		})
	}

	return nil
}

// Stop shuts down the LLM manager
func (m *Manager) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger.Info("Stopping LLM manager")
	m.provider = nil
	m.healthy = false
	return nil
}

// GenerateSummary returns a generated professional summary, or "" on any
// failure. The empty string is a sentinel for "no change": the caller must
// leave the existing summary untouched rather than overwrite it.
func (m *Manager) GenerateSummary(ctx context.Context, jobTitle, skills string) string {
	provider := m.currentProvider()
	if provider == nil {
		return ""
	}

	if err := m.limiter.Wait(ctx); err != nil {
		return ""
	}

	summary, err := provider.GenerateSummary(ctx, jobTitle, skills)
	if err != nil {
		m.logger.Warn("Summary generation failed", map[string]interface{}{
			"job_title": jobTitle,
			"error":     err.Error(),
		})
		return ""
	}

	return strings.TrimSpace(summary)
}

// OptimizeBullet returns the rewritten bullet line, or the input unchanged
// on any failure. It never returns empty for non-empty input.
func (m *Manager) OptimizeBullet(ctx context.Context, text, role string) string {
	provider := m.currentProvider()
	if provider == nil {
		return text
	}

	if err := m.limiter.Wait(ctx); err != nil {
		return text
	}

	rewritten, err := provider.OptimizeBullet(ctx, text, role)
	if err != nil {
		m.logger.Warn("Bullet optimization failed", map[string]interface{}{
			"error": err.Error(),
		})
		return text
	}

	rewritten = strings.TrimSpace(rewritten)
	if rewritten == "" {
		return text
	}
	return rewritten
}

// OptimizeDescription rewrites a multi-line description: each line past the
// trivial-length threshold is optimized independently and concurrently,
// short lines pass through verbatim, and the lines are rejoined with
// newlines in their original order. A failure on one line falls back to
// that line alone and never affects the others.
func (m *Manager) OptimizeDescription(ctx context.Context, description, role string) string {
	lines := strings.Split(description, "\n")
	results := make([]string, len(lines))

	g, gctx := errgroup.WithContext(ctx)
	for i, line := range lines {
		if len(line) < minBulletLineLength {
			results[i] = line
			continue
		}
		i, line := i, line
		g.Go(func() error {
			results[i] = m.OptimizeBullet(gctx, line, role)
			return nil
		})
	}
	// Workers only record fallback values, never errors
	_ = g.Wait()

	return strings.Join(results, "\n")
}

// AnalyzeMatch returns the ATS analysis for the record against the job
// description. On any failure it returns a well-formed sentinel analysis
// with score 0, one explanatory missing-keyword entry, and one actionable
// suggestion; the failure category distinguishes unparseable responses
// from unreachable service.
func (m *Manager) AnalyzeMatch(ctx context.Context, record models.ResumeRecord, jobDescription string) models.ATSAnalysis {
	provider := m.currentProvider()
	if provider == nil {
		return analysisFallback(errors.New("provider not available"))
	}

	if err := m.limiter.Wait(ctx); err != nil {
		return analysisFallback(err)
	}

	analysis, err := provider.AnalyzeMatch(ctx, record, jobDescription)
	if err != nil {
		m.logger.Warn("ATS analysis failed", map[string]interface{}{
			"error": err.Error(),
		})
		return analysisFallback(err)
	}

	return normalizeAnalysis(*analysis)
}

func analysisFallback(err error) models.ATSAnalysis {
	if errors.Is(err, ErrMalformedResponse) {
		return models.ATSAnalysis{
			Score:           0,
			MissingKeywords: []string{"The analysis response could not be read"},
			Suggestions:     []string{"Please try again."},
		}
	}
	return models.ATSAnalysis{
		Score:           0,
		MissingKeywords: []string{"The analysis service could not be reached"},
		Suggestions:     []string{"Check your connectivity and try again."},
	}
}

// normalizeAnalysis clamps the score into [0,100] and replaces nil slices
// with empty ones so every result is renderable as-is. Suggestion and
// keyword counts are accepted exactly as returned.
func normalizeAnalysis(analysis models.ATSAnalysis) models.ATSAnalysis {
	if analysis.Score < 0 {
		analysis.Score = 0
	}
	if analysis.Score > 100 {
		analysis.Score = 100
	}
	if analysis.MissingKeywords == nil {
		analysis.MissingKeywords = []string{}
	}
	if analysis.Suggestions == nil {
		analysis.Suggestions = []string{}
	}
	return analysis
}

func (m *Manager) currentProvider() Provider {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.provider
}

// IsHealthy reports whether the manager has a provider that passed its
// last health probe
func (m *Manager) IsHealthy() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.healthy && m.provider != nil
}

// GetProviderName returns the name of the current LLM provider
func (m *Manager) GetProviderName() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.provider != nil {
		return m.provider.GetProviderName()
	}
	return "none"
}

// CheckHealth performs a health check on the LLM provider
func (m *Manager) CheckHealth(ctx context.Context) error {
	m.mu.RLock()
	provider := m.provider
	m.mu.RUnlock()

	if provider == nil {
		return fmt.Errorf("LLM provider not available")
	}

	err := provider.IsHealthy(ctx)

	m.mu.Lock()
	m.healthy = (err == nil)
	m.mu.Unlock()

	return err
}
