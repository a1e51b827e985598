package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Meeting struct {
	Id            uuid.UUID
	Agenda        string
	Attendees     []uuid.UUID // Contact ids, in caller order
	AttendeesLead []uuid.UUID // Lead ids, in caller order
	Location      string
	Related       json.RawMessage
	DateTime      *time.Time
	Notes         string
	CreatedBy     *uuid.UUID
	Timestamp     time.Time // Set once on creation
	Deleted       bool
}

// UpdateResult reports how many meetings an update matched and how many it changed.
type UpdateResult struct {
	MatchedCount  int64
	ModifiedCount int64
}
