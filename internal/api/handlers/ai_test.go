package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeforge/internal/config"
	"resumeforge/internal/llm"
	"resumeforge/internal/session"
	"resumeforge/internal/storage"
	"resumeforge/pkg/models"
)

type scriptedProvider struct {
	summary     string
	summaryErr  error
	bulletErr   error
	analysis    *models.ATSAnalysis
	analysisErr error
}

func (p *scriptedProvider) GenerateSummary(ctx context.Context, jobTitle, skills string) (string, error) {
	return p.summary, p.summaryErr
}

func (p *scriptedProvider) OptimizeBullet(ctx context.Context, text, role string) (string, error) {
	if p.bulletErr != nil {
		return "", p.bulletErr
	}
	return "Refined: " + text, nil
}

func (p *scriptedProvider) AnalyzeMatch(ctx context.Context, record models.ResumeRecord, jobDescription string) (*models.ATSAnalysis, error) {
	return p.analysis, p.analysisErr
}

func (p *scriptedProvider) IsHealthy(ctx context.Context) error { return nil }
func (p *scriptedProvider) GetProviderName() string             { return "scripted" }

func testLLMManager(t *testing.T, provider llm.Provider) *llm.Manager {
	t.Helper()
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	return llm.NewManagerWithProvider(cfg, provider)
}

func TestGenerateSummaryApplied(t *testing.T) {
	sessions := session.NewManager(storage.NewMemoryStore())
	manager := testLLMManager(t, &scriptedProvider{summary: "A sharper summary."})

	c, rec := newTestContext(t, http.MethodPost,
		`{"job_title": "Platform Engineer"}`,
		[]string{"id"}, []string{"abc"})
	require.NoError(t, GenerateSummaryHandler(sessions, manager)(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.SummaryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Applied)
	assert.Equal(t, "A sharper summary.", resp.Resume.Summary)

	record, err := sessions.Get(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "A sharper summary.", record.Summary)
}

func TestGenerateSummaryFailureLeavesRecordUntouched(t *testing.T) {
	sessions := session.NewManager(storage.NewMemoryStore())
	manager := testLLMManager(t, &scriptedProvider{summaryErr: errors.New("boom")})

	original, err := sessions.Get(context.Background(), "abc")
	require.NoError(t, err)

	c, rec := newTestContext(t, http.MethodPost,
		`{"job_title": "Platform Engineer"}`,
		[]string{"id"}, []string{"abc"})
	require.NoError(t, GenerateSummaryHandler(sessions, manager)(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.SummaryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Applied)
	assert.Equal(t, original.Summary, resp.Resume.Summary)
}

func TestGenerateSummaryRequiresJobTitle(t *testing.T) {
	sessions := session.NewManager(storage.NewMemoryStore())
	manager := testLLMManager(t, &scriptedProvider{summary: "x"})

	c, rec := newTestContext(t, http.MethodPost, `{}`, []string{"id"}, []string{"abc"})
	require.NoError(t, GenerateSummaryHandler(sessions, manager)(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEnhanceBulletsRewritesDescription(t *testing.T) {
	sessions := session.NewManager(storage.NewMemoryStore())
	manager := testLLMManager(t, &scriptedProvider{})

	c, rec := newTestContext(t, http.MethodPost, `{"index": 0}`, []string{"id"}, []string{"abc"})
	require.NoError(t, EnhanceBulletsHandler(sessions, manager)(c))
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeRecord(t, rec)
	assert.Contains(t, resp.Resume.Experience[0].Description, "Refined: ")
}

func TestEnhanceBulletsOutOfRange(t *testing.T) {
	sessions := session.NewManager(storage.NewMemoryStore())
	manager := testLLMManager(t, &scriptedProvider{})

	c, rec := newTestContext(t, http.MethodPost, `{"index": 42}`, []string{"id"}, []string{"abc"})
	require.NoError(t, EnhanceBulletsHandler(sessions, manager)(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeMatchHandler(t *testing.T) {
	sessions := session.NewManager(storage.NewMemoryStore())
	manager := testLLMManager(t, &scriptedProvider{
		analysis: &models.ATSAnalysis{
			Score:           76,
			MissingKeywords: []string{"Kubernetes"},
			Suggestions:     []string{"Mention orchestration work.", "Quantify outcomes.", "Add cloud certifications."},
		},
	})

	c, rec := newTestContext(t, http.MethodPost,
		`{"job_description": "Looking for a platform engineer"}`,
		[]string{"id"}, []string{"abc"})
	require.NoError(t, AnalyzeMatchHandler(sessions, manager)(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.AnalysisResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, float64(76), resp.Analysis.Score)
	assert.Equal(t, []string{"Kubernetes"}, resp.Analysis.MissingKeywords)

	// Analysis never mutates the record
	record, err := sessions.Get(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultResume(), *record)
}

func TestAnalyzeMatchHandlerFallback(t *testing.T) {
	sessions := session.NewManager(storage.NewMemoryStore())
	manager := testLLMManager(t, &scriptedProvider{analysisErr: errors.New("connection refused")})

	c, rec := newTestContext(t, http.MethodPost,
		`{"job_description": "Looking for a platform engineer"}`,
		[]string{"id"}, []string{"abc"})
	require.NoError(t, AnalyzeMatchHandler(sessions, manager)(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.AnalysisResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Zero(t, resp.Analysis.Score)
	assert.NotEmpty(t, resp.Analysis.Suggestions)
}
