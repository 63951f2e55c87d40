package factory

import (
	"context"
	"os"
	"testing"
	"time"

	"academic-assistant-be/internal/entity"
	"academic-assistant-be/pkg/ai/composer"
	"academic-assistant-be/pkg/ai/contract"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLiveRoundTrip talks to a real model. Run with
// LLM_LIVE_TEST=1 LLM_PROVIDER=ollama LLM_MODEL=llama3.1 go test ./pkg/llm/factory -run Live
func TestLiveRoundTrip(t *testing.T) {
	if os.Getenv("LLM_LIVE_TEST") != "1" {
		t.Skip("set LLM_LIVE_TEST=1 to call a real model")
	}

	cfg := ProviderConfig{
		Type:    os.Getenv("LLM_PROVIDER"),
		Model:   os.Getenv("LLM_MODEL"),
		APIKey:  os.Getenv("LLM_API_KEY"),
		BaseURL: os.Getenv("LLM_BASE_URL"),
	}
	if cfg.Type == "" || cfg.Type == "gemini" {
		cfg.APIKey = os.Getenv("GOOGLE_GEMINI_API_KEY")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	provider, err := NewLLMProvider(ctx, cfg)
	require.NoError(t, err)

	t.Run("drafting", func(t *testing.T) {
		prompt := composer.Compose("Atatürk'ün eğitim reformları", entity.OperatingModeDrafting, nil)
		res, err := contract.Invoke(ctx, prompt, contract.SystemInstruction, provider)
		require.NoError(t, err)
		assert.NotEmpty(t, res.RewrittenText)
		t.Logf("draft: %d chars, %d findings", len(res.RewrittenText), len(res.Findings))
	})

	t.Run("analysis", func(t *testing.T) {
		text := "Yapılan araştırmalar gösteriyor ki eğitim çok önemlidir. Bu yüzden herkes okumalıdır. Sonuç olarak eğitim önemlidir."
		prompt := composer.Compose(text, entity.OperatingModeAnalysis, composer.DefaultToggles())
		res, err := contract.Invoke(ctx, prompt, contract.SystemInstruction, provider)
		require.NoError(t, err)
		assert.NotEmpty(t, res.RewrittenText)
		assert.NotNil(t, res.Findings)
		for _, f := range res.Findings {
			t.Logf("[%s] %s: %q -> %q (%s)", f.Category, f.IssueSummary, f.OriginalFragment, f.SuggestedFragment, f.LocationHint)
		}
	})
}
