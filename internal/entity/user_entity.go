package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	UserRoleUser  = "user"
	UserRoleAdmin = "admin"
)

type User struct {
	Id        uuid.UUID
	Username  string
	FirstName string
	LastName  string
	Role      string
	Deleted   bool // Soft-deleted users drop out of meeting listings
	CreatedAt time.Time
}
