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
)

// DefaultOllamaTimeout bounds a single generation request.
const DefaultOllamaTimeout = 120 * time.Second

// OllamaClient implements Client against the Ollama /api/generate endpoint
type OllamaClient struct {
	httpClient *http.Client
	config     *Config
}

type ollamaRequest struct {
	Model   string        `json:"model"`
	Prompt  string        `json:"prompt"`
	Stream  bool          `json:"stream"`
	Format  string        `json:"format"`
	Options ollamaOptions `json:"options"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature"`
}

type ollamaResponse struct {
	Response string `json:"response"`
	Error    string `json:"error,omitempty"`
}

// NewOllamaClient creates a client for a local or remote Ollama daemon.
// A nil httpClient gets a client with DefaultOllamaTimeout.
func NewOllamaClient(config *Config, httpClient *http.Client) (*OllamaClient, error) {
	if config == nil {
		config = DefaultOllamaConfig()
	}
	if config.BaseURL == "" {
		copied := *config
		copied.BaseURL = DefaultOllamaURL
		config = &copied
	}
	if config.GetModel(TierStandard) == "" {
		return nil, fmt.Errorf("no Ollama model configured")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultOllamaTimeout}
	}
	return &OllamaClient{httpClient: httpClient, config: config}, nil
}

// GenerateJSON posts a non-streaming JSON-format generation request and returns
// the "response" field of the envelope.
func (c *OllamaClient) GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	modelName := c.config.GetModel(tier)
	if modelName == "" {
		return "", fmt.Errorf("no model configured for tier %s", tier)
	}

	body, err := json.Marshal(ollamaRequest{
		Model:   modelName,
		Prompt:  prompt,
		Stream:  false,
		Format:  "json",
		Options: ollamaOptions{Temperature: Temperature},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	endpoint := strings.TrimRight(c.config.BaseURL, "/") + "/api/generate"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call Ollama: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read Ollama response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("ollama returned HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var envelope ollamaResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return "", fmt.Errorf("failed to decode Ollama envelope: %w", err)
	}
	if envelope.Error != "" {
		return "", fmt.Errorf("ollama error: %s", envelope.Error)
	}

	return envelope.Response, nil
}

// GetModel returns the model name for a tier
func (c *OllamaClient) GetModel(tier ModelTier) string {
	return c.config.GetModel(tier)
}

// Close is a no-op; the HTTP client holds no dedicated resources.
func (c *OllamaClient) Close() error {
	return nil
}
