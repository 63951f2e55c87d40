package gemini

import (
	"context"
	"fmt"
	"strings"

	"academic-assistant-be/pkg/llm"

	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.5-flash"

type GeminiProvider struct {
	client    *genai.Client
	modelName string
}

// Ensure GeminiProvider implements LLMProvider
var _ llm.LLMProvider = &GeminiProvider{}

// NewGeminiProvider builds a provider on the Gemini API backend. baseURL is
// empty in production and points at a fake server in tests.
func NewGeminiProvider(ctx context.Context, apiKey, modelName, baseURL string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, llm.ErrMissingCredential
	}
	if modelName == "" {
		modelName = DefaultModel
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiProvider{
		client:    client,
		modelName: modelName,
	}, nil
}

func (g *GeminiProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := llm.Apply(llm.Options{Temperature: 0.7}, opts...)

	model := g.modelName
	if options.Model != "" {
		model = options.Model
	}

	contents, systemParts := convertMessages(history)
	if options.SystemInstruction != "" {
		systemParts = append([]string{options.SystemInstruction}, systemParts...)
	}

	config, err := buildConfig(options, systemParts)
	if err != nil {
		return "", err
	}

	resp, err := g.client.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	return resp.Text(), nil
}

func (g *GeminiProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return g.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}

func buildConfig(options *llm.Options, systemParts []string) (*genai.GenerateContentConfig, error) {
	temp := float32(options.Temperature)
	config := &genai.GenerateContentConfig{
		Temperature: &temp,
	}
	if options.MaxTokens > 0 {
		config.MaxOutputTokens = int32(options.MaxTokens)
	}
	if len(systemParts) > 0 {
		config.SystemInstruction = genai.NewContentFromText(strings.Join(systemParts, "\n\n"), genai.RoleUser)
	}
	if options.ResponseMIMEType != "" {
		config.ResponseMIMEType = options.ResponseMIMEType
	}
	if options.ResponseSchema != nil {
		schema, err := toGenaiSchema(options.ResponseSchema)
		if err != nil {
			return nil, fmt.Errorf("convert response schema: %w", err)
		}
		config.ResponseSchema = schema
	}
	return config, nil
}

// convertMessages splits system messages out of the history; Gemini takes
// them as SystemInstruction rather than as contents.
func convertMessages(history []llm.Message) ([]*genai.Content, []string) {
	var contents []*genai.Content
	var systemParts []string

	for _, msg := range history {
		switch msg.Role {
		case "system":
			if msg.Content != "" {
				systemParts = append(systemParts, msg.Content)
			}
		case "assistant", "model":
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleUser))
		}
	}

	return contents, systemParts
}
