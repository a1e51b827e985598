package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	MeetingCreated = "MEETING_CREATED"
	MeetingDeleted = "MEETING_DELETED"
)

func NewMeetingCreated(meetingId uuid.UUID, createdBy *uuid.UUID, agenda string, at time.Time) BaseEvent {
	data := map[string]interface{}{
		"meeting_id": meetingId.String(),
		"agenda":     agenda,
	}
	if createdBy != nil {
		data["created_by"] = createdBy.String()
	}
	return BaseEvent{Type: MeetingCreated, Data: data, OccurredAt: at}
}

func NewMeetingDeleted(meetingIds []uuid.UUID, modified int64, at time.Time) BaseEvent {
	ids := make([]string, len(meetingIds))
	for i, id := range meetingIds {
		ids[i] = id.String()
	}
	return BaseEvent{
		Type: MeetingDeleted,
		Data: map[string]interface{}{
			"meeting_ids":    ids,
			"modified_count": modified,
		},
		OccurredAt: at,
	}
}
