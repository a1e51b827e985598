package service

import (
	"context"
	"encoding/json"

	"crm-meetings-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
)

const activityModule = "MEETING_ACTIVITY"

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService records every meeting event into the activity log.
type consumerService struct {
	pubSub      message.Subscriber
	topicName   string
	activityLog logger.ILogger
}

func NewConsumerService(
	pubSub message.Subscriber,
	topicName string,
	activityLog logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:      pubSub,
		topicName:   topicName,
		activityLog: activityLog,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	defer msg.Ack()

	var payload map[string]interface{}
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.activityLog.Warn(activityModule, "Dropping undecodable event", map[string]interface{}{
			"message_uuid": msg.UUID,
			"error":        err.Error(),
		})
		return
	}

	payload["occurred_at"] = msg.Metadata.Get("occurred_at")
	cs.activityLog.Info(activityModule, msg.Metadata.Get("event_type"), payload)
}
