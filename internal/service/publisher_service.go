package service

import (
	"context"
	"encoding/json"
	"time"

	"crm-meetings-be/internal/entity"
	"crm-meetings-be/internal/pkg/logger"
	"crm-meetings-be/pkg/events"
	pktNats "crm-meetings-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

type IPublisherService interface {
	PublishMeetingCreated(ctx context.Context, meeting *entity.Meeting)
	PublishMeetingsDeleted(ctx context.Context, ids []uuid.UUID, modified int64)
}

// publisherService fans meeting events out to the in-process channel and,
// when connected, to NATS. Delivery failures are logged and swallowed.
type publisherService struct {
	topicName string
	pubSub    message.Publisher
	natsPub   *pktNats.Publisher
	logger    logger.ILogger
}

func NewPublisherService(
	topicName string,
	pubSub message.Publisher,
	natsPub *pktNats.Publisher,
	logger logger.ILogger,
) IPublisherService {
	return &publisherService{
		topicName: topicName,
		pubSub:    pubSub,
		natsPub:   natsPub,
		logger:    logger,
	}
}

func (p *publisherService) PublishMeetingCreated(ctx context.Context, meeting *entity.Meeting) {
	p.publish(ctx, events.NewMeetingCreated(meeting.Id, meeting.CreatedBy, meeting.Agenda, time.Now()))
}

func (p *publisherService) PublishMeetingsDeleted(ctx context.Context, ids []uuid.UUID, modified int64) {
	p.publish(ctx, events.NewMeetingDeleted(ids, modified, time.Now()))
}

func (p *publisherService) publish(ctx context.Context, evt events.Event) {
	if p.pubSub != nil {
		payload, err := json.Marshal(evt.Payload())
		if err != nil {
			p.logger.Warn(meetingModule, "Failed to marshal event", map[string]interface{}{"event_type": evt.EventType(), "error": err.Error()})
			return
		}

		msg := message.NewMessage(watermill.NewUUID(), payload)
		msg.Metadata.Set("event_type", evt.EventType())
		msg.Metadata.Set("occurred_at", evt.Timestamp().Format(time.RFC3339Nano))

		if err := p.pubSub.Publish(p.topicName, msg); err != nil {
			p.logger.Warn(meetingModule, "Failed to publish event to channel", map[string]interface{}{"event_type": evt.EventType(), "error": err.Error()})
		}
	}

	if p.natsPub != nil {
		if err := p.natsPub.Publish(ctx, evt); err != nil {
			p.logger.Warn(meetingModule, "Failed to publish event to NATS", map[string]interface{}{"event_type": evt.EventType(), "error": err.Error()})
		}
	}
}
