package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"academic-assistant-be/internal/config"
	"academic-assistant-be/internal/controller"
	"academic-assistant-be/internal/pkg/logger"
	"academic-assistant-be/internal/repository/memory"
	"academic-assistant-be/internal/service"
	"academic-assistant-be/pkg/llm"
	"academic-assistant-be/pkg/llm/factory"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type Container struct {
	// Controllers
	AssistantController controller.IAssistantController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
	PubSub *gochannel.GoChannel
}

func NewContainer(ctx context.Context, cfg *config.Config, sysLogger logger.ILogger) (*Container, error) {
	// 1. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2. LLM Provider
	// A missing credential is not fatal; every process request reports it instead.
	var llmProvider llm.LLMProvider
	provider, err := factory.NewLLMProvider(ctx, factory.ProviderConfig{
		Type:    cfg.Ai.LLMProvider,
		Model:   cfg.Ai.LLMModel,
		APIKey:  cfg.Ai.APIKey(cfg.Keys),
		BaseURL: cfg.Ai.BaseURL(),
	})
	switch {
	case errors.Is(err, llm.ErrMissingCredential):
		sysLogger.Warn("Bootstrap", "LLM credential missing, assistant requests will fail until configured", map[string]interface{}{
			"provider": cfg.Ai.LLMProvider,
		})
	case err != nil:
		_ = pubSub.Close()
		return nil, fmt.Errorf("failed to initialize LLM provider: %w", err)
	default:
		llmProvider = provider
		sysLogger.Info("Bootstrap", "Using LLM Provider", map[string]interface{}{
			"provider": cfg.Ai.LLMProvider,
			"model":    cfg.Ai.LLMModel,
		})
	}

	// 3. In-memory state
	// Entries outlive the model deadline so a slow call keeps its slot.
	inFlightTTL := cfg.Ai.Timeout()
	if inFlightTTL > 0 {
		inFlightTTL += inFlightTTL / 2
	}
	inFlightRepo := memory.NewInFlightRepository(inFlightTTL)

	// 4. Services
	publisherService := service.NewPublisherService(cfg.App.EventsTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.App.EventsTopic, sysLogger)

	assistantService := service.NewAssistantService(
		llmProvider,
		inFlightRepo,
		publisherService,
		cfg.Ai,
		sysLogger,
	)

	// 5. Controllers
	return &Container{
		AssistantController: controller.NewAssistantController(assistantService),
		ConsumerService:     consumerService,
		Logger:              sysLogger,
		PubSub:              pubSub,
	}, nil
}
