package advice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/vincentqiao/medflow/internal/constants"
	"github.com/vincentqiao/medflow/internal/logger"
	"github.com/vincentqiao/medflow/internal/models"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1/models"
	defaultModel   = "gemini-2.5-flash"
	defaultTimeout = 10 * time.Second

	fallbackMessage = "Remember to take your meds on time. Feel better soon!"
)

// Fallback is the static advice shown whenever the remote service is
// unavailable, misconfigured, or returns something unreadable.
func Fallback() models.Advice {
	return models.Advice{Message: fallbackMessage, Type: models.AdviceEncouragement}
}

// Client talks to the Gemini generateContent endpoint. The zero key case
// is valid: every fetch then degrades to the fallback without a network
// round trip.
type Client struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		APIKey:     apiKey,
		Model:      defaultModel,
		BaseURL:    defaultBaseURL,
		HTTPClient: &http.Client{Timeout: defaultTimeout},
	}
}

// Fetch asks for a short message reacting to the triggering event, given
// the most recent check-ins as context. It never fails: any error is
// logged for diagnostics and the static fallback is returned instead.
func (c *Client) Fetch(ctx context.Context, event string, entries []models.DoseEntry) models.Advice {
	if c.APIKey == "" {
		logger.Warn("advice API key missing, using fallback advice")
		return Fallback()
	}

	advice, err := c.fetch(ctx, event, entries)
	if err != nil {
		logger.Warn("advice request failed, using fallback advice", "err", err)
		return Fallback()
	}
	return advice
}

func (c *Client) fetch(ctx context.Context, event string, entries []models.DoseEntry) (models.Advice, error) {
	if len(entries) > constants.AdviceHistoryLimit {
		entries = entries[:constants.AdviceHistoryLimit]
	}

	times := make([]string, 0, len(entries))
	for _, entry := range entries {
		times = append(times, time.UnixMilli(entry.Timestamp).Format("2006-01-02 15:04:05"))
	}

	prompt := fmt.Sprintf(`The user just took their medication: %s.
Recent history: %s.
Provide a very short (max 15 words) encouraging message or a brief health tip.

Respond ONLY with a JSON object (no markdown, no explanations) of this exact shape:

{"message": "the message", "type": "encouragement"}

where "type" is one of "encouragement", "info", "warning".`,
		event, strings.Join(times, ", "))

	payload := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature":     0.7,
			"maxOutputTokens": 256,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return models.Advice{}, fmt.Errorf("failed to encode request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", c.BaseURL, c.Model, c.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return models.Advice{}, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return models.Advice{}, fmt.Errorf("advice request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.Advice{}, fmt.Errorf("advice service returned status %d", resp.StatusCode)
	}

	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return models.Advice{}, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return models.Advice{}, fmt.Errorf("empty response from advice service")
	}

	text := strings.TrimSpace(result.Candidates[0].Content.Parts[0].Text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var advice models.Advice
	if err := json.Unmarshal([]byte(text), &advice); err != nil {
		return models.Advice{}, fmt.Errorf("failed to parse advice: %w", err)
	}
	if advice.Message == "" || !advice.Type.Valid() {
		return models.Advice{}, fmt.Errorf("advice response is malformed: %q", text)
	}

	return advice, nil
}
