package service

import (
	"context"
	"encoding/json"

	"academic-assistant-be/internal/dto"
	"academic-assistant-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	subscriber message.Subscriber
	topicName  string
	logger     logger.ILogger
}

func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	logger logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		topicName:  topicName,
		logger:     logger,
	}
}

// Consume subscribes to the usage topic and blocks until ctx is done.
func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	for msg := range messages {
		cs.processMessage(msg)
	}
	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var payload dto.PublishAssistantEventMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("UsageConsumer", "Failed to unmarshal usage event", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err,
		})
		// Ack invalid messages to prevent infinite redelivery
		msg.Ack()
		return
	}

	details := map[string]interface{}{
		"request_id":    payload.RequestId.String(),
		"mode":          payload.Mode,
		"outcome":       payload.Outcome,
		"finding_count": payload.FindingCount,
		"input_chars":   payload.InputChars,
		"duration_ms":   payload.DurationMs,
	}
	if len(payload.ActiveAgents) > 0 {
		details["active_agents"] = payload.ActiveAgents
	}

	if payload.Outcome == OutcomeOK {
		cs.logger.Info("UsageConsumer", "Assistant request recorded", details)
	} else {
		cs.logger.Warn("UsageConsumer", "Assistant request failed", details)
	}
	msg.Ack()
}
