package entity

import (
	"time"

	"github.com/google/uuid"
)

type Lead struct {
	Id              uuid.UUID
	LeadName        string
	LeadEmail       string
	LeadPhoneNumber string
	LeadStatus      string
	Deleted         bool
	CreatedAt       time.Time
}
