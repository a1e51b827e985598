package entity

import (
	"time"

	"github.com/google/uuid"
)

type Contact struct {
	Id          uuid.UUID
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Deleted     bool
	CreatedAt   time.Time
}
