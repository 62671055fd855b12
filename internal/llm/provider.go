// Package llm is the provider-neutral client used to author quizzes. Every
// provider returns JSON that already conforms to the request's schema;
// retry and event logging are layered on as decorators.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates one structured response per call.
type Provider interface {
	// Generate sends the conversation and returns the model's output. When
	// req.Schema is set the output has been validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request is one call to a model.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation so far, oldest first.
	Messages []Message

	// Schema, when set, asks the provider for JSON of that shape using its
	// native structured output support.
	Schema *Schema

	MaxTokens int

	// Temperature ranges 0.0 - 1.0; zero leaves the provider default.
	Temperature float64
}

// Followup returns a copy of r extended with the assistant's reply and a
// new user turn.
func (r Request) Followup(reply, user string) Request {
	next := r
	next.Messages = append(append([]Message(nil), r.Messages...),
		Message{Role: RoleAssistant, Content: reply},
		Message{Role: RoleUser, Content: user},
	)
	return next
}

// Message is a single conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names a JSON Schema the response must satisfy.
type Schema struct {
	// Name is a kebab-case identifier such as "quiz-radio". It doubles as
	// the cache key for the compiled schema.
	Name string

	Description string

	Definition map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is the validated JSON document, or the raw text when the
	// request carried no schema.
	Content json.RawMessage

	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalised to "end" or "max_tokens".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
