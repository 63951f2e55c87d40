package mapper

import (
	"academic-assistant-be/internal/dto"
	"academic-assistant-be/internal/entity"
)

type AssistantMapper struct{}

func NewAssistantMapper() *AssistantMapper {
	return &AssistantMapper{}
}

func (m *AssistantMapper) TogglesToEntity(in []dto.CapabilityToggleDTO) []entity.CapabilityToggle {
	out := make([]entity.CapabilityToggle, 0, len(in))
	for _, t := range in {
		out = append(out, entity.CapabilityToggle{
			Id:          t.Id,
			Label:       t.Label,
			Description: t.Description,
			Enabled:     t.Enabled,
		})
	}
	return out
}

func (m *AssistantMapper) TogglesToDTO(in []entity.CapabilityToggle) []dto.CapabilityToggleDTO {
	out := make([]dto.CapabilityToggleDTO, 0, len(in))
	for _, t := range in {
		out = append(out, dto.CapabilityToggleDTO{
			Id:          t.Id,
			Label:       t.Label,
			Description: t.Description,
			Enabled:     t.Enabled,
		})
	}
	return out
}

// FindingsToDTO always returns a non-nil slice so the JSON is [] not null.
func (m *AssistantMapper) FindingsToDTO(in []entity.AnalysisFinding) []dto.AnalysisFindingDTO {
	out := make([]dto.AnalysisFindingDTO, 0, len(in))
	for _, f := range in {
		out = append(out, dto.AnalysisFindingDTO{
			Category:          f.Category,
			IssueSummary:      f.IssueSummary,
			OriginalFragment:  f.OriginalFragment,
			SuggestedFragment: f.SuggestedFragment,
			LocationHint:      f.LocationHint,
		})
	}
	return out
}
