// Package nutriai talks to the external nutrition-insight scoring service.
// Every call is bounded by the configured timeout and is never retried: a
// single failure makes the report pipeline fall back to its fixed local
// result, so retrying here would only delay that.
package nutriai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/bablog/bablog-backend/internal/config"
	"github.com/bablog/bablog-backend/internal/provider"
)

const (
	dailyPath  = "/v1/insights/daily"
	weeklyPath = "/v1/insights/weekly"
)

// Client is the HTTP adapter for the insight-scoring service.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client from AIConfig.
func NewClient(cfg config.AIConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "nutriai"),
	}
}

// NewClientWithURL creates a Client with a custom base URL and timeout (for testing).
func NewClientWithURL(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "nutriai"),
	}
}

// ScoreDaily requests scoring for one day of intake.
func (c *Client) ScoreDaily(ctx context.Context, req provider.DailyScoringRequest) (*provider.DailyInsight, error) {
	var result provider.DailyInsight
	if err := c.post(ctx, dailyPath, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ScoreWeekly requests scoring for a week of daily metrics.
func (c *Client) ScoreWeekly(ctx context.Context, req provider.WeeklyScoringRequest) (*provider.WeeklyInsight, error) {
	var result provider.WeeklyInsight
	if err := c.post(ctx, weeklyPath, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) post(ctx context.Context, path string, payload, result any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("nutriai: encode request: %w", err)
	}

	c.log.DebugContext(ctx, "nutriai request", slog.String("path", path), slog.Int("bytes", len(body)))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("nutriai: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.ErrorContext(ctx, "nutriai request failed", slog.String("path", path), slog.String("error", err.Error()))
		return fmt.Errorf("nutriai: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.ErrorContext(ctx, "nutriai unexpected status", slog.String("path", path), slog.Int("status", resp.StatusCode))
		return fmt.Errorf("nutriai: unexpected status %d", resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("nutriai: read body: %w", err)
	}

	if err := json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("nutriai: decode json: %w", err)
	}

	c.log.DebugContext(ctx, "nutriai response", slog.String("path", path), slog.Int("status", resp.StatusCode))

	return nil
}
