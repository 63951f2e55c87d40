package gemini

import (
	"fmt"

	"google.golang.org/genai"
)

// toGenaiSchema converts a JSON schema map (type, properties, items,
// required, description) into the SDK's Schema.
func toGenaiSchema(m map[string]any) (*genai.Schema, error) {
	if m == nil {
		return nil, nil
	}

	s := &genai.Schema{}
	if t, ok := m["type"].(string); ok {
		gt, err := schemaType(t)
		if err != nil {
			return nil, err
		}
		s.Type = gt
	}
	if desc, ok := m["description"].(string); ok {
		s.Description = desc
	}

	if props, ok := m["properties"].(map[string]any); ok {
		s.Properties = make(map[string]*genai.Schema, len(props))
		for name, raw := range props {
			sub, ok := raw.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("property %q: expected object, got %T", name, raw)
			}
			conv, err := toGenaiSchema(sub)
			if err != nil {
				return nil, fmt.Errorf("property %q: %w", name, err)
			}
			s.Properties[name] = conv
		}
	}

	if items, ok := m["items"].(map[string]any); ok {
		conv, err := toGenaiSchema(items)
		if err != nil {
			return nil, fmt.Errorf("items: %w", err)
		}
		s.Items = conv
	}

	switch r := m["required"].(type) {
	case []string:
		s.Required = append([]string(nil), r...)
	case []any:
		for _, x := range r {
			if str, ok := x.(string); ok {
				s.Required = append(s.Required, str)
			}
		}
	}

	return s, nil
}

func schemaType(t string) (genai.Type, error) {
	switch t {
	case "string":
		return genai.TypeString, nil
	case "number":
		return genai.TypeNumber, nil
	case "integer":
		return genai.TypeInteger, nil
	case "boolean":
		return genai.TypeBoolean, nil
	case "array":
		return genai.TypeArray, nil
	case "object":
		return genai.TypeObject, nil
	default:
		return genai.TypeUnspecified, fmt.Errorf("unsupported schema type %q", t)
	}
}
