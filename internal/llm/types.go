package llm

import (
	"context"
	"encoding/json"
)

// sends a single-turn prompt to a chat-completion provider
type ChatCompleter interface {
	Complete(ctx context.Context, prompt string) (*ChatCompletion, error)
}

const RoleUser = "user"

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// outbound body; sampling values are package constants, never request-derived
type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float32   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
	TopP        float32   `json:"top_p"`
	Stream      bool      `json:"stream"`
}

// ChatCompletion is a successful provider response. Raw holds the body as received.
type ChatCompletion struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`

	Raw json.RawMessage `json:"-"`
}

type Choice struct {
	Index        int     `json:"index"`
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// returns the first choice's message content
func (c *ChatCompletion) Content() (string, error) {
	if c == nil || len(c.Choices) == 0 {
		return "", ErrNoChoices
	}

	return c.Choices[0].Message.Content, nil
}
