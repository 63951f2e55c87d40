package gemini

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"academic-assistant-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestNewGeminiProviderRequiresKey(t *testing.T) {
	p, err := NewGeminiProvider(context.Background(), "", "", "")
	assert.Nil(t, p)
	assert.ErrorIs(t, err, llm.ErrMissingCredential)
}

func TestGenerateSendsConfig(t *testing.T) {
	var captured map[string]any
	var path string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &captured)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"{\"ok\":true}"}]},"finishReason":"STOP"}]}`))
	}))
	defer srv.Close()

	p, err := NewGeminiProvider(context.Background(), "test-key", "", srv.URL)
	require.NoError(t, err)

	out, err := p.Generate(context.Background(), "hello",
		llm.WithTemperature(0.3),
		llm.WithSystemInstruction("be terse"),
		llm.WithJSONSchema(map[string]any{"type": "object"}),
	)
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, out)
	assert.True(t, strings.HasSuffix(path, DefaultModel+":generateContent"), path)

	genCfg, ok := captured["generationConfig"].(map[string]any)
	require.True(t, ok, "generationConfig missing: %v", captured)
	assert.InDelta(t, 0.3, genCfg["temperature"], 1e-6)
	assert.Equal(t, "application/json", genCfg["responseMimeType"])
	assert.NotNil(t, genCfg["responseSchema"])
	assert.Contains(t, captured, "systemInstruction")
}

func TestGenerateSurfacesHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":{"code":503,"message":"overloaded","status":"UNAVAILABLE"}}`))
	}))
	defer srv.Close()

	p, err := NewGeminiProvider(context.Background(), "test-key", "gemini-x", srv.URL)
	require.NoError(t, err)

	_, err = p.Generate(context.Background(), "hello")
	assert.Error(t, err)
}

func TestToGenaiSchema(t *testing.T) {
	in := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name": map[string]any{"type": "string"},
			"tags": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []string{"name", "tags"},
	}

	s, err := toGenaiSchema(in)
	require.NoError(t, err)
	assert.Equal(t, genai.TypeObject, s.Type)
	assert.Equal(t, genai.TypeString, s.Properties["name"].Type)
	assert.Equal(t, genai.TypeArray, s.Properties["tags"].Type)
	assert.Equal(t, genai.TypeString, s.Properties["tags"].Items.Type)
	assert.Equal(t, []string{"name", "tags"}, s.Required)
}

func TestToGenaiSchemaRejectsUnknownType(t *testing.T) {
	_, err := toGenaiSchema(map[string]any{
		"type":       "object",
		"properties": map[string]any{"x": map[string]any{"type": "date"}},
	})
	assert.ErrorContains(t, err, `property "x"`)
}

func TestConvertMessagesSplitsSystem(t *testing.T) {
	contents, system := convertMessages([]llm.Message{
		{Role: "system", Content: "rules"},
		{Role: "user", Content: "hi"},
		{Role: "assistant", Content: "hello"},
	})

	assert.Equal(t, []string{"rules"}, system)
	require.Len(t, contents, 2)
	assert.Equal(t, "user", contents[0].Role)
	assert.Equal(t, "model", contents[1].Role)
}
