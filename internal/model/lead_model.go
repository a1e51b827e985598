package model

import (
	"time"

	"github.com/google/uuid"
)

type Lead struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	LeadName        string    `gorm:"type:varchar(255)"`
	LeadEmail       string    `gorm:"type:varchar(255)"`
	LeadPhoneNumber string    `gorm:"type:varchar(50)"`
	LeadStatus      string    `gorm:"type:varchar(50)"`
	Deleted         bool      `gorm:"not null;default:false"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
}

func (Lead) TableName() string {
	return "Leads"
}
