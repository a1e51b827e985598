package mapper

import (
	"encoding/json"

	"crm-meetings-be/internal/entity"
	"crm-meetings-be/internal/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type MeetingMapper struct{}

func NewMeetingMapper() *MeetingMapper {
	return &MeetingMapper{}
}

func (m *MeetingMapper) ToEntity(mt *model.Meeting) *entity.Meeting {
	if mt == nil {
		return nil
	}

	var related json.RawMessage
	if len(mt.Related) > 0 {
		related = json.RawMessage(mt.Related)
	}

	return &entity.Meeting{
		Id:            mt.Id,
		Agenda:        mt.Agenda,
		Attendees:     copyIds(mt.Attendees),
		AttendeesLead: copyIds(mt.AttendeesLead),
		Location:      mt.Location,
		Related:       related,
		DateTime:      mt.DateTime,
		Notes:         mt.Notes,
		CreatedBy:     mt.CreatedBy,
		Timestamp:     mt.Timestamp,
		Deleted:       mt.Deleted,
	}
}

func (m *MeetingMapper) ToModel(mt *entity.Meeting) *model.Meeting {
	if mt == nil {
		return nil
	}

	var related datatypes.JSON
	if len(mt.Related) > 0 {
		related = datatypes.JSON(mt.Related)
	}

	return &model.Meeting{
		Id:            mt.Id,
		Agenda:        mt.Agenda,
		Attendees:     datatypes.NewJSONSlice(copyIds(mt.Attendees)),
		AttendeesLead: datatypes.NewJSONSlice(copyIds(mt.AttendeesLead)),
		Location:      mt.Location,
		Related:       related,
		DateTime:      mt.DateTime,
		Notes:         mt.Notes,
		CreatedBy:     mt.CreatedBy,
		Timestamp:     mt.Timestamp,
		Deleted:       mt.Deleted,
	}
}

func (m *MeetingMapper) ToEntities(meetings []*model.Meeting) []*entity.Meeting {
	entities := make([]*entity.Meeting, len(meetings))
	for i, mt := range meetings {
		entities[i] = m.ToEntity(mt)
	}
	return entities
}

// copyIds never returns nil so empty reference lists persist as [] rather than null.
func copyIds(ids []uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, len(ids))
	copy(out, ids)
	return out
}
