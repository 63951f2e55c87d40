package dto

import (
	"github.com/google/uuid"
)

type CapabilityToggleDTO struct {
	Id          string `json:"id" validate:"required,max=64"`
	Label       string `json:"label" validate:"required,max=200"`
	Description string `json:"description" validate:"max=500"`
	Enabled     bool   `json:"enabled"`
}

type ProcessRequest struct {
	Input   string                `json:"input" validate:"required"`
	Mode    string                `json:"mode" validate:"required,oneof=DRAFTING ANALYSIS"`
	Toggles []CapabilityToggleDTO `json:"toggles" validate:"max=16,unique=Id,dive"`
}

type AnalysisFindingDTO struct {
	Category          string `json:"category"`
	IssueSummary      string `json:"issueSummary"`
	OriginalFragment  string `json:"originalFragment"`
	SuggestedFragment string `json:"suggestedFragment"`
	LocationHint      string `json:"locationHint"`
}

type ProcessResponse struct {
	RequestId     uuid.UUID            `json:"requestId"`
	Mode          string               `json:"mode"`
	RewrittenText string               `json:"rewrittenText"`
	Findings      []AnalysisFindingDTO `json:"findings"` // never null
}

type ExportRequest struct {
	Mode          string `json:"mode" validate:"required,oneof=DRAFTING ANALYSIS"`
	RawInput      string `json:"rawInput"`
	RewrittenText string `json:"rewrittenText"`
}

type ExportResponse struct {
	Filename string
	Content  string
}

type HealthResponse struct {
	Status               string `json:"status"`
	Provider             string `json:"provider"`
	CapabilityConfigured bool   `json:"capabilityConfigured"`
}

// PublishAssistantEventMessage is the payload of a usage event.
type PublishAssistantEventMessage struct {
	RequestId    uuid.UUID `json:"request_id"`
	Mode         string    `json:"mode"`
	Outcome      string    `json:"outcome"`
	FindingCount int       `json:"finding_count"`
	ActiveAgents []string  `json:"active_agents,omitempty"`
	InputChars   int       `json:"input_chars"`
	DurationMs   int64     `json:"duration_ms"`
}
