package mapper

import (
	"encoding/json"
	"testing"

	"academic-assistant-be/internal/dto"
	"academic-assistant-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindingsToDTONeverNull(t *testing.T) {
	m := NewAssistantMapper()

	out := m.FindingsToDTO(nil)
	require.NotNil(t, out)

	raw, err := json.Marshal(dto.ProcessResponse{Findings: out})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"findings":[]`)
}

func TestTogglesKeepOrder(t *testing.T) {
	m := NewAssistantMapper()
	in := []dto.CapabilityToggleDTO{
		{Id: "b", Label: "B", Enabled: true},
		{Id: "a", Label: "A", Description: "d"},
	}

	got := m.TogglesToEntity(in)
	assert.Equal(t, []entity.CapabilityToggle{
		{Id: "b", Label: "B", Enabled: true},
		{Id: "a", Label: "A", Description: "d"},
	}, got)
	assert.Equal(t, in, m.TogglesToDTO(got))
}
