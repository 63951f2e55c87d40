package llm

import (
	"context"
	"errors"
)

// ErrMissingCredential is returned by providers built without an API key.
var ErrMissingCredential = errors.New("llm: missing API credential")

// Message represents a chat message in a provider-agnostic format
type Message struct {
	Role    string // "user", "assistant", "system"
	Content string
}

// Option allows for optional parameters like Temperature, MaxTokens, etc.
type Option func(*Options)

type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string // Override default model

	// SystemInstruction is sent out of band where the backend supports it,
	// otherwise as a leading system message.
	SystemInstruction string
	// ResponseSchema is a JSON schema the reply must conform to.
	ResponseSchema   map[string]any
	ResponseMIMEType string
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

func WithSystemInstruction(instruction string) Option {
	return func(o *Options) {
		o.SystemInstruction = instruction
	}
}

// WithJSONSchema asks for application/json output matching schema.
func WithJSONSchema(schema map[string]any) Option {
	return func(o *Options) {
		o.ResponseSchema = schema
		o.ResponseMIMEType = "application/json"
	}
}

// Apply folds opts over base.
func Apply(base Options, opts ...Option) *Options {
	o := base
	for _, opt := range opts {
		opt(&o)
	}
	return &o
}

// LLMProvider defines the contract for any LLM backend
type LLMProvider interface {
	// Chat sends a chat history to the model and returns the response
	Chat(ctx context.Context, history []Message, options ...Option) (string, error)

	// Generate sends a single prompt to the model (convenience method)
	Generate(ctx context.Context, prompt string, options ...Option) (string, error)
}
