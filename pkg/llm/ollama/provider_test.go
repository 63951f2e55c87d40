package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"academic-assistant-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSendsSchemaAndSystemMessage(t *testing.T) {
	var got ollamaChatRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		_ = json.NewEncoder(w).Encode(ollamaChatResponse{
			Model:   got.Model,
			Message: ollamaMessage{Role: "assistant", Content: `{"rewrittenText":"x","findings":[]}`},
			Done:    true,
		})
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, "llama3")
	out, err := p.Generate(context.Background(), "prompt",
		llm.WithTemperature(0.3),
		llm.WithSystemInstruction("system rules"),
		llm.WithJSONSchema(map[string]any{"type": "object"}),
	)
	require.NoError(t, err)

	assert.Equal(t, `{"rewrittenText":"x","findings":[]}`, out)
	assert.Equal(t, "llama3", got.Model)
	assert.False(t, got.Stream)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "system rules", got.Messages[0].Content)
	assert.Equal(t, "user", got.Messages[1].Role)
	assert.Equal(t, map[string]any{"type": "object"}, got.Format)
	assert.InDelta(t, 0.3, got.Options.Temperature, 1e-9)
}

func TestChatMapsModelRoleAndModelOverride(t *testing.T) {
	var got ollamaChatRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(ollamaChatResponse{Message: ollamaMessage{Content: "ok"}})
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, "llama3")
	_, err := p.Chat(context.Background(), []llm.Message{
		{Role: "user", Content: "q"},
		{Role: "model", Content: "a"},
	}, llm.WithModel("qwen2.5"))
	require.NoError(t, err)

	assert.Equal(t, "qwen2.5", got.Model)
	assert.Equal(t, "assistant", got.Messages[1].Role)
	assert.Nil(t, got.Format)
}

func TestChatReturnsStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("model not loaded"))
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, "llama3")
	_, err := p.Generate(context.Background(), "prompt")
	assert.ErrorContains(t, err, "status 500")
}
