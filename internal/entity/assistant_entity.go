package entity

import (
	"fmt"
	"strings"
)

type OperatingMode string

const (
	OperatingModeDrafting OperatingMode = "DRAFTING" // İçerik Üretimi
	OperatingModeAnalysis OperatingMode = "ANALYSIS" // Metin Analizi
)

// ParseOperatingMode accepts the mode names case-insensitively.
func ParseOperatingMode(raw string) (OperatingMode, error) {
	switch OperatingMode(strings.ToUpper(strings.TrimSpace(raw))) {
	case OperatingModeDrafting:
		return OperatingModeDrafting, nil
	case OperatingModeAnalysis:
		return OperatingModeAnalysis, nil
	default:
		return "", fmt.Errorf("unknown operating mode %q", raw)
	}
}

func (m OperatingMode) String() string {
	return string(m)
}

// CapabilityToggle is one user-selectable analysis agent.
type CapabilityToggle struct {
	Id          string
	Label       string
	Description string
	Enabled     bool
}

type AnalysisFinding struct {
	Category          string
	IssueSummary      string
	OriginalFragment  string
	SuggestedFragment string
	LocationHint      string
}

// AssistantResult is the output of one request cycle. Findings is never nil.
type AssistantResult struct {
	RewrittenText string
	Findings      []AnalysisFinding
}
