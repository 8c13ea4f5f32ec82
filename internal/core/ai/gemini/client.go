package gemini

import (
	"context"
	"fmt"
	"net/http"

	"pairing-generator/internal/infrastructure/config"
	"pairing-generator/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const baseURL = "https://generativelanguage.googleapis.com/v1beta"

// maximum response body length echoed into errors and logs
const errorBodyLimit = 512

// Client talks to the Google generative-language API. One call per
// GenerateText invocation; fallback across models is the caller's job.
type Client struct {
	config *config.Config
	client *resty.Client
}

// APIError is a non-2xx answer from the generation service.
type APIError struct {
	Model      string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gemini model %s returned status %d: %s", e.Model, e.StatusCode, e.Body)
}

// RateLimited reports whether the model rejected the call for quota reasons.
func (e *APIError) RateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

type generateRequest struct {
	Contents         []requestContent  `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type requestContent struct {
	Parts []requestPart `json:"parts"`
}

type requestPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	MaxOutputTokens int `json:"maxOutputTokens,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// NewClient creates a Gemini API client.
func NewClient(cfg *config.Config) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("x-goog-api-key", cfg.Gemini.APIKey).
		SetTimeout(cfg.Gemini.Timeout)

	return &Client{
		config: cfg,
		client: client,
	}
}

// GenerateText sends one prompt to one named model and returns the raw
// text of the first candidate. No retries happen here.
func (c *Client) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	req := &generateRequest{
		Contents: []requestContent{
			{Parts: []requestPart{{Text: prompt}}},
		},
	}
	if c.config.Gemini.MaxTokens > 0 {
		req.GenerationConfig = &generationConfig{
			MaxOutputTokens: c.config.Gemini.MaxTokens,
		}
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		Post(fmt.Sprintf("/models/%s:generateContent", model))

	if err != nil {
		return "", fmt.Errorf("failed to send request to gemini: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		apiErr := &APIError{
			Model:      model,
			StatusCode: resp.StatusCode(),
			Body:       truncate(resp.String(), errorBodyLimit),
		}
		common.LogWarn("gemini returned error status",
			zap.String("model", model),
			zap.Int("status_code", apiErr.StatusCode),
			zap.Bool("rate_limited", apiErr.RateLimited()),
		)
		return "", apiErr
	}

	var result generateResponse
	if err := common.ParseJSONBytes(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("failed to parse gemini response: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no candidates in gemini response")
	}

	text := result.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", fmt.Errorf("empty candidate text in gemini response")
	}

	common.LogDebug("gemini response received",
		zap.String("model", model),
		zap.Int("content_length", len(text)),
	)

	return text, nil
}

// Close releases idle connections.
func (c *Client) Close() error {
	c.client.GetClient().CloseIdleConnections()
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
