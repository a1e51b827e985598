package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MeetingColumn is a meetings column callers may match on exactly.
type MeetingColumn string

const (
	MeetingAgenda   MeetingColumn = "agenda"
	MeetingLocation MeetingColumn = "location"
	MeetingNotes    MeetingColumn = "notes"
)

var meetingColumnsByKey = map[string]MeetingColumn{
	"agenda":   MeetingAgenda,
	"location": MeetingLocation,
	"notes":    MeetingNotes,
}

// MeetingColumnFor resolves a query key. Keys outside the list report false.
func MeetingColumnFor(key string) (MeetingColumn, bool) {
	column, ok := meetingColumnsByKey[key]
	return column, ok
}

// ByMeetingColumn matches a meeting column against a literal value.
type ByMeetingColumn struct {
	Column MeetingColumn
	Value  string
}

func (s ByMeetingColumn) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(clause.Eq{Column: clause.Column{Name: string(s.Column)}, Value: s.Value})
}

// ByCreator matches meetings created by the given user.
type ByCreator struct {
	UserID uuid.UUID
}

func (s ByCreator) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("created_by = ?", s.UserID)
}

// NewestFirst orders meetings by their creation stamp.
type NewestFirst struct{}

func (s NewestFirst) Apply(db *gorm.DB) *gorm.DB {
	return db.Order(clause.OrderByColumn{Column: clause.Column{Name: "timestamp"}, Desc: true})
}
