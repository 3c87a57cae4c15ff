package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"resumeforge/internal/config"
	"resumeforge/internal/llm/processors"
	"resumeforge/internal/logging"
	"resumeforge/pkg/models"
)

// ErrMalformedResponse marks a provider response that arrived but could not
// be decoded into the expected shape
var ErrMalformedResponse = errors.New("malformed provider response")

// ClaudeProvider implements the provider interface using Anthropic's Claude
type ClaudeProvider struct {
	client anthropic.Client
	config *config.Config
	logger logging.Logger
}

// NewClaudeProvider creates a new Claude provider instance
func NewClaudeProvider(cfg *config.Config) *ClaudeProvider {
	client := anthropic.NewClient(
		option.WithAPIKey(cfg.LLM.APIKey),
	)

	return &ClaudeProvider{
		client: client,
		config: cfg,
		logger: logging.GetGlobalLogger(),
	}
}

// GenerateSummary asks Claude for a 3-4 sentence professional summary
func (cp *ClaudeProvider) GenerateSummary(ctx context.Context, jobTitle, skills string) (string, error) {
	startTime := time.Now()

	prompt := fmt.Sprintf(`Write a professional, concise (3-4 sentences), and impactful resume summary for a %s with skills in: %s. Focus on value and achievements. Do not include placeholders. Return only the summary text, no additional commentary.`, jobTitle, skills)

	text, err := cp.complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to generate summary: %w", err)
	}

	cp.logger.Debug("Summary generated", map[string]interface{}{
		"job_title":       jobTitle,
		"processing_time": time.Since(startTime),
		"provider":        "claude",
	})

	return text, nil
}

// OptimizeBullet rewrites one bullet line to be result-oriented and
// action-verb-led, keeping it to a single sentence
func (cp *ClaudeProvider) OptimizeBullet(ctx context.Context, text, role string) (string, error) {
	prompt := fmt.Sprintf(`Rewrite the following resume bullet point for a %s role to be more result-oriented, using strong action verbs and quantifying results if implied. Keep it to one concise sentence. Return only the rewritten sentence.
Original: "%s"`, role, text)

	rewritten, err := cp.complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to optimize bullet: %w", err)
	}

	return rewritten, nil
}

// AnalyzeMatch scores the full resume against a job description and returns
// the structured analysis
func (cp *ClaudeProvider) AnalyzeMatch(ctx context.Context, record models.ResumeRecord, jobDescription string) (*models.ATSAnalysis, error) {
	startTime := time.Now()

	resumeJSON, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize resume: %w", err)
	}

	prompt := cp.buildAnalysisPrompt(string(resumeJSON), jobDescription)

	text, err := cp.complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to call Claude API: %w", err)
	}

	analysis, err := cp.parseAnalysisResponse(text)
	if err != nil {
		return nil, err
	}

	cp.logger.Info("ATS analysis completed", map[string]interface{}{
		"score":            analysis.Score,
		"missing_keywords": len(analysis.MissingKeywords),
		"processing_time":  time.Since(startTime),
		"provider":         "claude",
	})

	return analysis, nil
}

// buildAnalysisPrompt creates the ATS scan prompt with the response-shape
// contract spelled out
func (cp *ClaudeProvider) buildAnalysisPrompt(resumeJSON, jobDescription string) string {
	return fmt.Sprintf(`You are an expert ATS (Applicant Tracking System) scanner. Analyze the provided resume JSON against the Job Description.

Job Description:
%s

Resume JSON:
%s

Provide an objective match score (0-100), identify critical missing hard/soft skills (keywords), and give 3 specific suggestions for improvement.

Return ONLY a valid JSON object with exactly these fields, no additional text:
{
  "score": number - match quality from 0 to 100,
  "missingKeywords": ["array of important keywords from the JD missing in the resume"],
  "suggestions": ["array of exactly 3 specific actionable suggestions"]
}`, jobDescription, resumeJSON)
}

// parseAnalysisResponse strips any markdown fence and decodes the analysis
func (cp *ClaudeProvider) parseAnalysisResponse(text string) (*models.ATSAnalysis, error) {
	cleaned := processors.StripCodeFence(text)

	var analysis models.ATSAnalysis
	if err := json.Unmarshal([]byte(cleaned), &analysis); err != nil {
		cp.logger.Debug("Analysis response failed to decode", map[string]interface{}{
			"response_text": cleaned,
			"error":         err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return &analysis, nil
}

// complete issues a single-turn request and returns the first text block
func (cp *ClaudeProvider) complete(ctx context.Context, prompt string) (string, error) {
	response, err := cp.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       cp.model(),
		MaxTokens:   int64(cp.config.LLM.MaxTokens),
		Temperature: anthropic.Float(float64(cp.config.LLM.Temperature)),
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: prompt},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})
	if err != nil {
		return "", err
	}

	if len(response.Content) == 0 {
		return "", fmt.Errorf("%w: empty response", ErrMalformedResponse)
	}

	var responseText string
	for _, content := range response.Content {
		textContent := content.AsText()
		responseText = textContent.Text
		break
	}

	if responseText == "" {
		return "", fmt.Errorf("%w: no text content", ErrMalformedResponse)
	}

	return responseText, nil
}

func (cp *ClaudeProvider) model() anthropic.Model {
	if cp.config.LLM.Model != "" {
		return anthropic.Model(cp.config.LLM.Model)
	}
	return anthropic.ModelClaude3_7SonnetLatest
}

// IsHealthy checks if the Claude provider is healthy and available
func (cp *ClaudeProvider) IsHealthy(ctx context.Context) error {
	if cp.config.LLM.APIKey == "" {
		return fmt.Errorf("Claude API key not configured - set LLM_API_KEY environment variable")
	}

	_, err := cp.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     cp.model(),
		MaxTokens: 16,
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: "Hello"},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})

	if err != nil {
		return fmt.Errorf("Claude API health check failed: %w", err)
	}

	return nil
}

// GetProviderName returns the name of the LLM provider
func (cp *ClaudeProvider) GetProviderName() string {
	return "claude"
}
