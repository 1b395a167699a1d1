package llm

import (
	"context"
	"errors"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ErrRefusal is returned when the provider declines to answer.
var ErrRefusal = errors.New("model refused the request")

// ErrEmptyResponse is returned when the provider answers with no content.
var ErrEmptyResponse = errors.New("model returned empty content")

// Client abstracts chat-completion providers.
type Client interface {
	Complete(ctx context.Context, req Request) (Response, error)
}

// Message is one chat turn.
type Message struct {
	Role    string
	Content string
}

// JSONSchema constrains the response to a named JSON Schema.
type JSONSchema struct {
	Name   string
	Schema map[string]any
	Strict bool
}

// Request is a single completion call. A nil Schema requests free-form text.
type Request struct {
	Messages []Message
	Schema   *JSONSchema
}

// Usage reports token accounting for one completion.
type Usage struct {
	PromptTokens     int64
	CompletionTokens int64
	TotalTokens      int64
}

// Response is the first choice of a completion.
type Response struct {
	Content string
	Refusal string
	Model   string
	Usage   Usage
}
