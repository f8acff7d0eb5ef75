package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"codeberg.org/gesturecode/server/internal/logger"
)

const (
	GroqChatCompletionsURL = "https://api.groq.com/openai/v1/chat/completions"

	Model       = "mixtral-8x7b-32768"
	Temperature = float32(0.5)
	MaxTokens   = 4000
	TopP        = float32(1)

	defaultTimeout = 30 * time.Second
)

type GroqConfig struct {
	APIKey  string
	URL     string        // defaults to GroqChatCompletionsURL
	Timeout time.Duration // defaults to 30s
}

type GroqClient struct {
	config     GroqConfig
	httpClient *http.Client
}

func NewGroqClient(config GroqConfig) *GroqClient {
	if config.URL == "" {
		config.URL = GroqChatCompletionsURL
	}

	if config.Timeout == 0 {
		config.Timeout = defaultTimeout
	}

	return &GroqClient{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
	}
}

func (g *GroqClient) URL() string {
	return g.config.URL
}

// Complete makes exactly one call to the chat-completion endpoint.
//
// A non-200 response with a JSON body is returned as *ProviderError. A body that
// is not JSON, whatever the status, is a parse error. Nothing is retried.
func (g *GroqClient) Complete(ctx context.Context, prompt string) (*ChatCompletion, error) {
	log := logger.FromContext(ctx)

	reqBody := chatRequest{
		Model: Model,
		Messages: []Message{
			{Role: RoleUser, Content: prompt},
		},
		Temperature: Temperature,
		MaxTokens:   MaxTokens,
		TopP:        TopP,
		Stream:      false,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.config.URL, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+g.config.APIKey)

	log.Info("making request to groq api", "model", Model, "prompt_length", len(prompt))

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		log.Error("no response from groq", "error", err)
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	defer resp.Body.Close() //nolint:errcheck

	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		log.Error("failed to read groq response", "status", resp.StatusCode, "error", readErr)

		// forward a partial error body when it is still well-formed
		if resp.StatusCode != http.StatusOK && json.Valid(body) {
			return nil, &ProviderError{StatusCode: resp.StatusCode, Body: body}
		}

		return nil, fmt.Errorf("failed to read response: %w", readErr)
	}

	var raw json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		log.Error("failed to parse groq response", "status", resp.StatusCode, "error", err)
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	log.Info("groq api response", "status", resp.StatusCode)
	log.Debug("groq api response body", "body", string(body))

	if resp.StatusCode != http.StatusOK {
		log.Error("groq api error", "status", resp.StatusCode, "body", string(body))
		return nil, &ProviderError{StatusCode: resp.StatusCode, Body: raw}
	}

	var completion ChatCompletion
	if err := json.Unmarshal(raw, &completion); err != nil {
		log.Error("unexpected groq response shape", "error", err)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	completion.Raw = raw

	return &completion, nil
}
