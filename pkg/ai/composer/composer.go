package composer

import (
	"fmt"
	"strings"

	"academic-assistant-be/internal/constant"
	"academic-assistant-be/internal/entity"
)

// Compose builds the user prompt for one request. rawInput is embedded
// verbatim; callers must reject blank input before calling.
func Compose(rawInput string, mode entity.OperatingMode, toggles []entity.CapabilityToggle) string {
	if mode == entity.OperatingModeDrafting {
		return fmt.Sprintf(constant.DraftingUserPromptTemplateV1, rawInput)
	}

	activeAgents := strings.Join(ActiveLabels(toggles), constant.ActiveAgentSeparator)
	if activeAgents == "" {
		activeAgents = constant.AllStandardChecksFallback
	}

	return fmt.Sprintf(constant.AnalysisUserPromptTemplateV1, rawInput, activeAgents)
}

// ActiveLabels returns the labels of enabled toggles in input order.
func ActiveLabels(toggles []entity.CapabilityToggle) []string {
	labels := make([]string, 0, len(toggles))
	for _, t := range toggles {
		if t.Enabled {
			labels = append(labels, t.Label)
		}
	}
	return labels
}

// DefaultToggles returns a fresh copy of the initial agent catalog.
func DefaultToggles() []entity.CapabilityToggle {
	return []entity.CapabilityToggle{
		{
			Id:          constant.AgentIdFormal,
			Label:       "Resmi Dil ve Nesnellik Analizi",
			Description: "Sübjektif ve pasif ifadeleri düzeltir.",
			Enabled:     true,
		},
		{
			Id:          constant.AgentIdConciseness,
			Label:       "Sözcük Ekonomisi ve Kısalık",
			Description: "Gereksiz dolgu kelimeleri temizler.",
			Enabled:     true,
		},
		{
			Id:          constant.AgentIdFlow,
			Label:       "Mantıksal Akış ve Geçiş Kontrolü",
			Description: "Bağlaç ve paragraf geçişlerini güçlendirir.",
			Enabled:     true,
		},
		{
			Id:          constant.AgentIdAPA,
			Label:       "APA 7 Standart Denetimi",
			Description: "Kaynak eksikliklerini raporlar.",
			Enabled:     true,
		},
	}
}
