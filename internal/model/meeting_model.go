package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Meeting struct {
	Id            uuid.UUID                      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Agenda        string                         `gorm:"type:text"`
	Attendees     datatypes.JSONSlice[uuid.UUID] `gorm:"type:jsonb"`
	AttendeesLead datatypes.JSONSlice[uuid.UUID] `gorm:"type:jsonb"`
	Location      string                         `gorm:"type:varchar(255)"`
	Related       datatypes.JSON                 `gorm:"type:jsonb"`
	DateTime      *time.Time
	Notes         string     `gorm:"type:text"`
	CreatedBy     *uuid.UUID `gorm:"type:uuid;index"`
	Timestamp     time.Time  `gorm:"not null;index"`
	Deleted       bool       `gorm:"not null;default:false;index"`
}

func (Meeting) TableName() string {
	return "meetings"
}
