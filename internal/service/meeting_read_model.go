package service

import (
	"context"

	"crm-meetings-be/internal/dto"
	"crm-meetings-be/internal/entity"
	"crm-meetings-be/internal/repository/specification"
	"crm-meetings-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// meetingReadModel resolves the contact, lead and creator references of a
// page of meetings with one batch query per reference table.
type meetingReadModel struct {
	uow unitofwork.UnitOfWork
}

func newMeetingReadModel(uow unitofwork.UnitOfWork) *meetingReadModel {
	return &meetingReadModel{uow: uow}
}

type meetingReferences struct {
	contacts map[uuid.UUID]*entity.Contact
	leads    map[uuid.UUID]*entity.Lead
	users    map[uuid.UUID]*entity.User
}

type idSet struct {
	seen map[uuid.UUID]struct{}
	ids  []uuid.UUID
}

func newIdSet() *idSet {
	return &idSet{seen: make(map[uuid.UUID]struct{})}
}

func (s *idSet) add(ids ...uuid.UUID) {
	for _, id := range ids {
		if _, ok := s.seen[id]; ok {
			continue
		}
		s.seen[id] = struct{}{}
		s.ids = append(s.ids, id)
	}
}

func (b *meetingReadModel) resolve(ctx context.Context, meetings []*entity.Meeting) (*meetingReferences, error) {
	contactIds, leadIds, userIds := newIdSet(), newIdSet(), newIdSet()
	for _, m := range meetings {
		contactIds.add(m.Attendees...)
		leadIds.add(m.AttendeesLead...)
		if m.CreatedBy != nil {
			userIds.add(*m.CreatedBy)
		}
	}

	refs := &meetingReferences{
		contacts: make(map[uuid.UUID]*entity.Contact),
		leads:    make(map[uuid.UUID]*entity.Lead),
		users:    make(map[uuid.UUID]*entity.User),
	}

	if len(contactIds.ids) > 0 {
		contacts, err := b.uow.ContactRepository().FindAll(ctx, specification.ByIDs{IDs: contactIds.ids})
		if err != nil {
			return nil, err
		}
		for _, c := range contacts {
			refs.contacts[c.Id] = c
		}
	}

	if len(leadIds.ids) > 0 {
		leads, err := b.uow.LeadRepository().FindAll(ctx, specification.ByIDs{IDs: leadIds.ids})
		if err != nil {
			return nil, err
		}
		for _, l := range leads {
			refs.leads[l.Id] = l
		}
	}

	if len(userIds.ids) > 0 {
		users, err := b.uow.UserRepository().FindAll(ctx, specification.ByIDs{IDs: userIds.ids})
		if err != nil {
			return nil, err
		}
		for _, u := range users {
			refs.users[u.Id] = u
		}
	}

	return refs, nil
}

// contactsFor keeps the meeting's attendee order and skips dangling ids.
func (r *meetingReferences) contactsFor(ids []uuid.UUID) []*dto.ContactResponse {
	out := make([]*dto.ContactResponse, 0, len(ids))
	for _, id := range ids {
		c, ok := r.contacts[id]
		if !ok {
			continue
		}
		out = append(out, &dto.ContactResponse{
			Id:          c.Id,
			FirstName:   c.FirstName,
			LastName:    c.LastName,
			Email:       c.Email,
			PhoneNumber: c.PhoneNumber,
		})
	}
	return out
}

func (r *meetingReferences) leadsFor(ids []uuid.UUID) []*dto.LeadResponse {
	out := make([]*dto.LeadResponse, 0, len(ids))
	for _, id := range ids {
		l, ok := r.leads[id]
		if !ok {
			continue
		}
		out = append(out, &dto.LeadResponse{
			Id:              l.Id,
			LeadName:        l.LeadName,
			LeadEmail:       l.LeadEmail,
			LeadPhoneNumber: l.LeadPhoneNumber,
			LeadStatus:      l.LeadStatus,
		})
	}
	return out
}

func (r *meetingReferences) creator(m *entity.Meeting) *entity.User {
	if m.CreatedBy == nil {
		return nil
	}
	return r.users[*m.CreatedBy]
}

func (r *meetingReferences) listItem(m *entity.Meeting, creator *entity.User) *dto.MeetingListItemResponse {
	return &dto.MeetingListItemResponse{
		MeetingResponse:      *toMeetingResponse(m),
		AttendeesDetails:     r.contactsFor(m.Attendees),
		AttendeesLeadDetails: r.leadsFor(m.AttendeesLead),
		CreatedByName:        creator.Username,
	}
}

func (r *meetingReferences) detail(m *entity.Meeting) *dto.MeetingDetailResponse {
	res := &dto.MeetingDetailResponse{
		Id:            m.Id,
		Agenda:        m.Agenda,
		Attendees:     r.contactsFor(m.Attendees),
		AttendeesLead: r.leadsFor(m.AttendeesLead),
		Location:      m.Location,
		Related:       m.Related,
		DateTime:      m.DateTime,
		Notes:         m.Notes,
		CreatedBy:     m.CreatedBy,
		Timestamp:     m.Timestamp,
		Deleted:       m.Deleted,
	}
	if u := r.creator(m); u != nil {
		res.CreatedByName = u.Username
	}
	return res
}

func toMeetingResponse(m *entity.Meeting) *dto.MeetingResponse {
	attendees := m.Attendees
	if attendees == nil {
		attendees = []uuid.UUID{}
	}
	attendeesLead := m.AttendeesLead
	if attendeesLead == nil {
		attendeesLead = []uuid.UUID{}
	}
	return &dto.MeetingResponse{
		Id:            m.Id,
		Agenda:        m.Agenda,
		Attendees:     attendees,
		AttendeesLead: attendeesLead,
		Location:      m.Location,
		Related:       m.Related,
		DateTime:      m.DateTime,
		Notes:         m.Notes,
		CreatedBy:     m.CreatedBy,
		Timestamp:     m.Timestamp,
		Deleted:       m.Deleted,
	}
}
