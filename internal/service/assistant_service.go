package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"academic-assistant-be/internal/config"
	"academic-assistant-be/internal/constant"
	"academic-assistant-be/internal/dto"
	"academic-assistant-be/internal/entity"
	"academic-assistant-be/internal/mapper"
	"academic-assistant-be/internal/pkg/logger"
	"academic-assistant-be/internal/repository/memory"
	"academic-assistant-be/pkg/ai/composer"
	"academic-assistant-be/pkg/ai/contract"
	"academic-assistant-be/pkg/llm"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var (
	ErrEmptyInput      = errors.New("assistant: input is empty")
	ErrInputTooLong    = errors.New("assistant: input exceeds the configured limit")
	ErrRequestInFlight = errors.New("assistant: a request from this client is already in flight")
	ErrInvalidMode     = errors.New("assistant: invalid operating mode")
)

// OutcomeOK marks a usage event for a request that produced a result.
const OutcomeOK = "ok"

var tracer = otel.Tracer("academic-assistant-be/internal/service")

type IAssistantService interface {
	Process(ctx context.Context, clientKey string, req *dto.ProcessRequest) (*dto.ProcessResponse, error)
	DefaultAgents(ctx context.Context) []dto.CapabilityToggleDTO
	Export(ctx context.Context, req *dto.ExportRequest) (*dto.ExportResponse, error)
	Health() dto.HealthResponse
}

type assistantService struct {
	capability       llm.LLMProvider
	inFlight         *memory.InFlightRepository
	publisherService IPublisherService
	mapper           *mapper.AssistantMapper
	aiConfig         config.AIConfig
	logger           logger.ILogger
}

func NewAssistantService(
	capability llm.LLMProvider,
	inFlight *memory.InFlightRepository,
	publisherService IPublisherService,
	aiConfig config.AIConfig,
	logger logger.ILogger,
) IAssistantService {
	return &assistantService{
		capability:       capability,
		inFlight:         inFlight,
		publisherService: publisherService,
		mapper:           mapper.NewAssistantMapper(),
		aiConfig:         aiConfig,
		logger:           logger,
	}
}

func (s *assistantService) Process(ctx context.Context, clientKey string, req *dto.ProcessRequest) (*dto.ProcessResponse, error) {
	mode, err := entity.ParseOperatingMode(req.Mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMode, err)
	}

	input := strings.TrimSpace(req.Input)
	if input == "" {
		return nil, ErrEmptyInput
	}
	inputChars := utf8.RuneCountInString(input)
	if s.aiConfig.MaxInputChars > 0 && inputChars > s.aiConfig.MaxInputChars {
		return nil, fmt.Errorf("%w: %d > %d", ErrInputTooLong, inputChars, s.aiConfig.MaxInputChars)
	}

	if s.inFlight != nil {
		if !s.inFlight.Acquire(clientKey) {
			return nil, ErrRequestInFlight
		}
		defer s.inFlight.Release(clientKey)
	}

	requestId := uuid.New()
	toggles := s.mapper.TogglesToEntity(req.Toggles)
	activeAgents := composer.ActiveLabels(toggles)

	ctx, span := tracer.Start(ctx, "AssistantService.Process")
	defer span.End()
	span.SetAttributes(
		attribute.String("assistant.request_id", requestId.String()),
		attribute.String("assistant.mode", mode.String()),
		attribute.Int("assistant.input_chars", inputChars),
		attribute.Int("assistant.active_agents", len(activeAgents)),
	)

	callCtx := ctx
	if timeout := s.aiConfig.Timeout(); timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var opts []llm.Option
	if s.aiConfig.Temperature > 0 {
		opts = append(opts, llm.WithTemperature(s.aiConfig.Temperature))
	}
	if s.aiConfig.LLMModel != "" {
		opts = append(opts, llm.WithModel(s.aiConfig.LLMModel))
	}

	prompt := composer.Compose(input, mode, toggles)

	started := time.Now()
	result, err := contract.Invoke(callCtx, prompt, contract.SystemInstruction, s.capability, opts...)
	elapsed := time.Since(started)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, contract.Kind(err))
		s.logger.Error("Assistant", "Model call failed", map[string]interface{}{
			"request_id":  requestId.String(),
			"mode":        mode.String(),
			"kind":        contract.Kind(err),
			"duration_ms": elapsed.Milliseconds(),
			"error":       err,
		})
		s.publishUsage(ctx, dto.PublishAssistantEventMessage{
			RequestId:    requestId,
			Mode:         mode.String(),
			Outcome:      contract.Kind(err),
			ActiveAgents: activeAgents,
			InputChars:   inputChars,
			DurationMs:   elapsed.Milliseconds(),
		})
		return nil, err
	}

	if mode == entity.OperatingModeDrafting && len(result.Findings) > 0 {
		s.logger.Warn("Assistant", "Discarding findings returned for a drafting request", map[string]interface{}{
			"request_id":    requestId.String(),
			"finding_count": len(result.Findings),
		})
		result.Findings = []entity.AnalysisFinding{}
	}

	span.SetAttributes(attribute.Int("assistant.finding_count", len(result.Findings)))
	s.logger.Info("Assistant", "Request processed", map[string]interface{}{
		"request_id":    requestId.String(),
		"mode":          mode.String(),
		"finding_count": len(result.Findings),
		"duration_ms":   elapsed.Milliseconds(),
	})

	s.publishUsage(ctx, dto.PublishAssistantEventMessage{
		RequestId:    requestId,
		Mode:         mode.String(),
		Outcome:      OutcomeOK,
		FindingCount: len(result.Findings),
		ActiveAgents: activeAgents,
		InputChars:   inputChars,
		DurationMs:   elapsed.Milliseconds(),
	})

	return &dto.ProcessResponse{
		RequestId:     requestId,
		Mode:          mode.String(),
		RewrittenText: result.RewrittenText,
		Findings:      s.mapper.FindingsToDTO(result.Findings),
	}, nil
}

func (s *assistantService) DefaultAgents(ctx context.Context) []dto.CapabilityToggleDTO {
	return s.mapper.TogglesToDTO(composer.DefaultToggles())
}

func (s *assistantService) Export(ctx context.Context, req *dto.ExportRequest) (*dto.ExportResponse, error) {
	mode, err := entity.ParseOperatingMode(req.Mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMode, err)
	}

	content := req.RewrittenText
	if strings.TrimSpace(content) == "" {
		content = req.RawInput
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyInput
	}

	filename := constant.ExportFilenameAnalysis
	if mode == entity.OperatingModeDrafting {
		filename = constant.ExportFilenameDrafting
	}

	return &dto.ExportResponse{
		Filename: filename,
		Content:  content,
	}, nil
}

func (s *assistantService) Health() dto.HealthResponse {
	provider := s.aiConfig.LLMProvider
	if provider == "" {
		provider = "gemini"
	}
	return dto.HealthResponse{
		Status:               "ok",
		Provider:             provider,
		CapabilityConfigured: s.capability != nil,
	}
}

// publishUsage never fails the request; usage events are best effort.
func (s *assistantService) publishUsage(ctx context.Context, evt dto.PublishAssistantEventMessage) {
	if s.publisherService == nil {
		return
	}

	payload, err := json.Marshal(evt)
	if err != nil {
		s.logger.Warn("Assistant", "Failed to marshal usage event", map[string]interface{}{"error": err.Error()})
		return
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.logger.Warn("Assistant", "Failed to publish usage event", map[string]interface{}{
			"request_id": evt.RequestId.String(),
			"error":      err.Error(),
		})
	}
}
