package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Client generates a single chat completion for a system/user prompt pair.
type Client interface {
	Chat(ctx context.Context, system, user string) (string, error)
}

// HTTPClient talks to a DeepSeek/OpenAI-compatible chat completions endpoint.
type HTTPClient struct {
	apiKey string
	apiURL string
	model  string
	client *http.Client
	logger *zap.Logger
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient creates a client for the given endpoint. An empty apiURL
// falls back to the DeepSeek chat completions endpoint.
func NewHTTPClient(apiKey, apiURL, model string, logger *zap.Logger) (*HTTPClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("llm api key must be set")
	}
	if apiURL == "" {
		apiURL = "https://api.deepseek.com/v1/chat/completions"
	}
	if model == "" {
		model = "deepseek-chat"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPClient{
		apiKey: apiKey,
		apiURL: strings.TrimSpace(apiURL),
		model:  model,
		client: &http.Client{Timeout: 60 * time.Second},
		logger: logger,
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string            `json:"model"`
	Messages       []chatMessage     `json:"messages"`
	ResponseFormat map[string]string `json:"response_format"`
	Temperature    float64           `json:"temperature"`
	MaxTokens      int               `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Chat sends one system+user exchange and returns the raw completion text.
// Errors are transport-level: timeouts, HTTP failures, empty completions.
func (c *HTTPClient) Chat(ctx context.Context, system, user string) (string, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		ResponseFormat: map[string]string{"type": "json_object"},
		Temperature:    0.3,
		MaxTokens:      1000,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		c.logger.Warn("llm request failed",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", truncate(body, 512)))
		return "", fmt.Errorf("llm request failed with status %d", resp.StatusCode)
	}

	var cr chatResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if cr.Error != nil {
		return "", fmt.Errorf("llm api error: %s", cr.Error.Message)
	}
	if len(cr.Choices) == 0 || cr.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("no response from llm")
	}

	return cr.Choices[0].Message.Content, nil
}

func truncate(b []byte, n int) []byte {
	if len(b) <= n {
		return b
	}
	return b[:n]
}
