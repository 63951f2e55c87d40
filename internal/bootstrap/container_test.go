package bootstrap

import (
	"context"
	"testing"

	"academic-assistant-be/internal/config"
	"academic-assistant-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{EventsTopic: "ASSISTANT_REQUEST_PROCESSED"},
		Ai: config.AIConfig{
			LLMProvider:    "gemini",
			LLMModel:       "gemini-2.5-flash",
			Temperature:    0.3,
			TimeoutSeconds: 120,
		},
	}
}

func TestNewContainerWithoutCredential(t *testing.T) {
	c, err := NewContainer(context.Background(), testConfig(), logger.NewNopLogger())
	require.NoError(t, err)
	defer c.PubSub.Close()

	assert.NotNil(t, c.AssistantController)
	assert.NotNil(t, c.ConsumerService)
}

func TestNewContainerUnknownProvider(t *testing.T) {
	cfg := testConfig()
	cfg.Ai.LLMProvider = "carrier-pigeon"

	_, err := NewContainer(context.Background(), cfg, logger.NewNopLogger())
	assert.ErrorContains(t, err, "unsupported LLM provider")
}

func TestNewContainerOllama(t *testing.T) {
	cfg := testConfig()
	cfg.Ai.LLMProvider = "ollama"
	cfg.Ai.LLMModel = "llama3.1"

	c, err := NewContainer(context.Background(), cfg, logger.NewNopLogger())
	require.NoError(t, err)
	defer c.PubSub.Close()
}
