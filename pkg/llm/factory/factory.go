package factory

import (
	"context"
	"fmt"

	"academic-assistant-be/pkg/llm"
	"academic-assistant-be/pkg/llm/gemini"
	"academic-assistant-be/pkg/llm/ollama"
	"academic-assistant-be/pkg/llm/openaicompat"
)

type ProviderConfig struct {
	Type    string // "gemini", "ollama", "openai"
	Model   string
	APIKey  string
	BaseURL string
}

// NewLLMProvider builds the configured backend. A missing API key yields
// llm.ErrMissingCredential so the caller can decide whether that is fatal.
func NewLLMProvider(ctx context.Context, cfg ProviderConfig) (llm.LLMProvider, error) {
	switch cfg.Type {
	case "gemini", "":
		p, err := gemini.NewGeminiProvider(ctx, cfg.APIKey, cfg.Model, cfg.BaseURL)
		if err != nil {
			return nil, err
		}
		return p, nil
	case "ollama":
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, cfg.Model), nil
	case "openai":
		p, err := openaicompat.NewProvider(cfg.APIKey, cfg.BaseURL, cfg.Model)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Type)
	}
}
