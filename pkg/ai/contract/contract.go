package contract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"academic-assistant-be/internal/constant"
	"academic-assistant-be/internal/entity"
	"academic-assistant-be/pkg/llm"

	jsoniter "github.com/json-iterator/go"
)

// Keys must match Schema exactly; "Findings" is not "findings".
var json = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	CaseSensitive:          true,
}.Froze()

// SystemInstruction is the fixed role and output mandate sent with every call.
const SystemInstruction = constant.AssistantSystemInstructionV1

// DefaultTemperature keeps replies literal and schema-conformant.
const DefaultTemperature = 0.3

// Pointers distinguish an absent key from an empty value.
type replyEnvelope struct {
	RewrittenText *string         `json:"rewrittenText"`
	Findings      *[]replyFinding `json:"findings"`
}

type replyFinding struct {
	Category          *string `json:"category"`
	IssueSummary      *string `json:"issueSummary"`
	OriginalFragment  *string `json:"originalFragment"`
	SuggestedFragment *string `json:"suggestedFragment"`
	LocationHint      *string `json:"locationHint"`
}

// Invoke sends one composed prompt to capability and validates the reply.
// extra options are applied after the contract defaults and may override
// temperature or model; they cannot drop the schema.
func Invoke(
	ctx context.Context,
	composedPrompt string,
	systemInstruction string,
	capability llm.LLMProvider,
	extra ...llm.Option,
) (*entity.AssistantResult, error) {
	if capability == nil {
		return nil, ErrConfiguration
	}

	opts := []llm.Option{
		llm.WithTemperature(DefaultTemperature),
		llm.WithSystemInstruction(systemInstruction),
	}
	opts = append(opts, extra...)
	opts = append(opts, llm.WithJSONSchema(Schema()))

	text, err := capability.Generate(ctx, composedPrompt, opts...)
	if err != nil {
		if errors.Is(err, llm.ErrMissingCredential) {
			return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyResponse
	}

	return Parse(text)
}

// Parse validates a raw reply against Schema. It never returns a partial
// result: any missing key fails the whole reply.
func Parse(text string) (*entity.AssistantResult, error) {
	payload := stripCodeFence([]byte(text))
	if len(payload) == 0 {
		return nil, ErrEmptyResponse
	}

	var env replyEnvelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if env.RewrittenText == nil {
		return nil, fmt.Errorf("%w: missing %q", ErrMalformedResponse, KeyRewrittenText)
	}
	if env.Findings == nil {
		return nil, fmt.Errorf("%w: missing %q", ErrMalformedResponse, KeyFindings)
	}

	findings := make([]entity.AnalysisFinding, 0, len(*env.Findings))
	for i, f := range *env.Findings {
		finding, err := f.toEntity()
		if err != nil {
			return nil, fmt.Errorf("%w: findings[%d]: %v", ErrMalformedResponse, i, err)
		}
		findings = append(findings, finding)
	}

	return &entity.AssistantResult{
		RewrittenText: *env.RewrittenText,
		Findings:      findings,
	}, nil
}

func (f replyFinding) toEntity() (entity.AnalysisFinding, error) {
	fields := []struct {
		key string
		val *string
	}{
		{KeyCategory, f.Category},
		{KeyIssueSummary, f.IssueSummary},
		{KeyOriginalFragment, f.OriginalFragment},
		{KeySuggestedFragment, f.SuggestedFragment},
		{KeyLocationHint, f.LocationHint},
	}
	for _, field := range fields {
		if field.val == nil {
			return entity.AnalysisFinding{}, fmt.Errorf("missing %q", field.key)
		}
	}

	return entity.AnalysisFinding{
		Category:          *f.Category,
		IssueSummary:      *f.IssueSummary,
		OriginalFragment:  *f.OriginalFragment,
		SuggestedFragment: *f.SuggestedFragment,
		LocationHint:      *f.LocationHint,
	}, nil
}

// stripCodeFence removes a ```json wrapper some models add despite the
// MIME type.
func stripCodeFence(b []byte) []byte {
	b = bytes.TrimSpace(b)
	if !bytes.HasPrefix(b, []byte("```")) {
		return b
	}
	b = bytes.TrimPrefix(b, []byte("```json"))
	b = bytes.TrimPrefix(b, []byte("```"))
	b = bytes.TrimSuffix(b, []byte("```"))
	return bytes.TrimSpace(b)
}
