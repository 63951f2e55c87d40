package contract

// Reply keys. They appear in the system instruction too.
const (
	KeyRewrittenText     = "rewrittenText"
	KeyFindings          = "findings"
	KeyCategory          = "category"
	KeyIssueSummary      = "issueSummary"
	KeyOriginalFragment  = "originalFragment"
	KeySuggestedFragment = "suggestedFragment"
	KeyLocationHint      = "locationHint"
)

// Schema returns the JSON schema the model reply must satisfy. A new map is
// built on every call so providers may mutate it.
func Schema() map[string]any {
	str := func() map[string]any { return map[string]any{"type": "string"} }

	finding := map[string]any{
		"type": "object",
		"properties": map[string]any{
			KeyCategory:          str(),
			KeyIssueSummary:      str(),
			KeyOriginalFragment:  str(),
			KeySuggestedFragment: str(),
			KeyLocationHint:      str(),
		},
		"required": []string{
			KeyCategory,
			KeyIssueSummary,
			KeyOriginalFragment,
			KeySuggestedFragment,
			KeyLocationHint,
		},
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			KeyRewrittenText: str(),
			KeyFindings: map[string]any{
				"type":  "array",
				"items": finding,
			},
		},
		"required": []string{KeyRewrittenText, KeyFindings},
	}
}
