package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type CreateMeetingRequest struct {
	Agenda        string          `json:"agenda" validate:"max=2000"`
	Attendees     []string        `json:"attendees"`
	AttendeesLead []string        `json:"attendeesLead"`
	Location      string          `json:"location" validate:"max=255"`
	Related       json.RawMessage `json:"related"`
	DateTime      *time.Time      `json:"dateTime"`
	Notes         string          `json:"notes"`
	CreatedBy     string          `json:"createdBy"`
}

// ListMeetingRequest carries the raw query string filters; the service decides
// which keys it understands.
type ListMeetingRequest struct {
	Filters map[string]string
	Limit   int `validate:"gte=0,lte=500"`
	Offset  int `validate:"gte=0"`
}

type MeetingResponse struct {
	Id            uuid.UUID       `json:"id"`
	Agenda        string          `json:"agenda"`
	Attendees     []uuid.UUID     `json:"attendees"`
	AttendeesLead []uuid.UUID     `json:"attendeesLead"`
	Location      string          `json:"location"`
	Related       json.RawMessage `json:"related,omitempty"`
	DateTime      *time.Time      `json:"dateTime"`
	Notes         string          `json:"notes"`
	CreatedBy     *uuid.UUID      `json:"createdBy"`
	Timestamp     time.Time       `json:"timestamp"`
	Deleted       bool            `json:"deleted"`
}

type ContactResponse struct {
	Id          uuid.UUID `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
}

type LeadResponse struct {
	Id              uuid.UUID `json:"id"`
	LeadName        string    `json:"leadName"`
	LeadEmail       string    `json:"leadEmail"`
	LeadPhoneNumber string    `json:"leadPhoneNumber"`
	LeadStatus      string    `json:"leadStatus"`
}

// MeetingListItemResponse keeps the raw reference ids and adds the resolved
// records under the *Details keys.
type MeetingListItemResponse struct {
	MeetingResponse
	AttendeesDetails     []*ContactResponse `json:"attendeesDetails"`
	AttendeesLeadDetails []*LeadResponse    `json:"attendeesLeadDetails"`
	CreatedByName        string             `json:"createdByName"`
}

// MeetingDetailResponse replaces the reference ids with the resolved records.
type MeetingDetailResponse struct {
	Id            uuid.UUID          `json:"id"`
	Agenda        string             `json:"agenda"`
	Attendees     []*ContactResponse `json:"attendees"`
	AttendeesLead []*LeadResponse    `json:"attendeesLead"`
	Location      string             `json:"location"`
	Related       json.RawMessage    `json:"related,omitempty"`
	DateTime      *time.Time         `json:"dateTime"`
	Notes         string             `json:"notes"`
	CreatedBy     *uuid.UUID         `json:"createdBy"`
	CreatedByName string             `json:"createdByName,omitempty"`
	Timestamp     time.Time          `json:"timestamp"`
	Deleted       bool               `json:"deleted"`
}

type DeleteMeetingResponse struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}
