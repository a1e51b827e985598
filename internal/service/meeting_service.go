package service

import (
	"bytes"
	"context"
	"sort"
	"time"

	"crm-meetings-be/internal/dto"
	"crm-meetings-be/internal/entity"
	"crm-meetings-be/internal/pkg/logger"
	"crm-meetings-be/internal/repository/specification"
	"crm-meetings-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const meetingModule = "MEETING"

type IMeetingService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateMeetingRequest) (*dto.MeetingResponse, error)
	GetAll(ctx context.Context, req *dto.ListMeetingRequest) ([]*dto.MeetingListItemResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.MeetingDetailResponse, error)
	Delete(ctx context.Context, id uuid.UUID) (*dto.DeleteMeetingResponse, error)
	DeleteMany(ctx context.Context, ids []string) (*dto.DeleteMeetingResponse, error)
}

type meetingService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	logger           logger.ILogger
	now              func() time.Time
}

func NewMeetingService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	logger logger.ILogger,
) IMeetingService {
	return &meetingService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		logger:           logger,
		now:              time.Now,
	}
}

func (s *meetingService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateMeetingRequest) (*dto.MeetingResponse, error) {
	attendees, idx, ok := entity.ParseReferences(req.Attendees)
	if !ok {
		return nil, &ValidationError{Field: "attendees", Value: req.Attendees[idx]}
	}
	attendeesLead, idx, ok := entity.ParseReferences(req.AttendeesLead)
	if !ok {
		return nil, &ValidationError{Field: "attendeesLead", Value: req.AttendeesLead[idx]}
	}

	var createdBy *uuid.UUID
	if req.CreatedBy != "" {
		if !entity.IsValidReference(req.CreatedBy) {
			return nil, &ValidationError{Field: "createdBy", Value: req.CreatedBy}
		}
		id := uuid.MustParse(req.CreatedBy)
		createdBy = &id
	} else if userId != uuid.Nil {
		createdBy = &userId
	}

	meeting := entity.Meeting{
		Agenda:        req.Agenda,
		Attendees:     attendees,
		AttendeesLead: attendeesLead,
		Location:      req.Location,
		Related:       normalizeRelated(req.Related),
		DateTime:      req.DateTime,
		Notes:         req.Notes,
		CreatedBy:     createdBy,
		Timestamp:     s.now(),
		Deleted:       false,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.MeetingRepository().Create(ctx, &meeting); err != nil {
		s.logger.Error(meetingModule, "Failed to create meeting", map[string]interface{}{"error": err.Error()})
		return nil, &PersistenceError{Op: "create meeting", Err: err}
	}

	s.publisherService.PublishMeetingCreated(ctx, &meeting)

	return toMeetingResponse(&meeting), nil
}

func (s *meetingService) GetAll(ctx context.Context, req *dto.ListMeetingRequest) ([]*dto.MeetingListItemResponse, error) {
	specs, err := meetingListSpecifications(req)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	meetings, err := uow.MeetingRepository().FindAll(ctx, specs...)
	if err != nil {
		s.logger.Error(meetingModule, "Failed to list meetings", map[string]interface{}{"error": err.Error()})
		return nil, &PersistenceError{Op: "list meetings", Err: err}
	}

	refs, err := newMeetingReadModel(uow).resolve(ctx, meetings)
	if err != nil {
		s.logger.Error(meetingModule, "Failed to resolve meeting references", map[string]interface{}{"error": err.Error()})
		return nil, &PersistenceError{Op: "resolve meeting references", Err: err}
	}

	result := make([]*dto.MeetingListItemResponse, 0, len(meetings))
	for _, m := range meetings {
		creator := refs.creator(m)
		if creator == nil || creator.Deleted {
			continue
		}
		result = append(result, refs.listItem(m, creator))
	}

	return result, nil
}

// meetingListSpecifications turns query filters into specifications. The
// deleted=false constraint is always present and cannot be overridden.
func meetingListSpecifications(req *dto.ListMeetingRequest) ([]specification.Specification, error) {
	specs := []specification.Specification{specification.NotDeleted{}}

	keys := make([]string, 0, len(req.Filters))
	for key := range req.Filters {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := req.Filters[key]
		switch key {
		case "createdBy":
			// an empty value means no creator filter
			if value == "" {
				continue
			}
			if !entity.IsValidReference(value) {
				return nil, &ValidationError{Field: "createdBy", Value: value}
			}
			specs = append(specs, specification.ByCreator{UserID: uuid.MustParse(value)})
		default:
			if column, ok := specification.MeetingColumnFor(key); ok {
				specs = append(specs, specification.ByMeetingColumn{Column: column, Value: value})
			}
		}
	}

	specs = append(specs,
		specification.NewestFirst{},
		specification.Pagination{Limit: req.Limit, Offset: req.Offset},
	)
	return specs, nil
}

func (s *meetingService) Show(ctx context.Context, id uuid.UUID) (*dto.MeetingDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	meeting, err := uow.MeetingRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		s.logger.Error(meetingModule, "Failed to load meeting", map[string]interface{}{"meeting_id": id.String(), "error": err.Error()})
		return nil, &PersistenceError{Op: "load meeting", Err: err}
	}
	if meeting == nil {
		return nil, ErrMeetingNotFound
	}

	refs, err := newMeetingReadModel(uow).resolve(ctx, []*entity.Meeting{meeting})
	if err != nil {
		s.logger.Error(meetingModule, "Failed to resolve meeting references", map[string]interface{}{"meeting_id": id.String(), "error": err.Error()})
		return nil, &PersistenceError{Op: "resolve meeting references", Err: err}
	}

	return refs.detail(meeting), nil
}

// Delete reports success even when id matched nothing; callers read the counts.
func (s *meetingService) Delete(ctx context.Context, id uuid.UUID) (*dto.DeleteMeetingResponse, error) {
	ids := []uuid.UUID{id}
	result, err := s.markDeleted(ctx, ids)
	if err != nil {
		s.logger.Error(meetingModule, "Failed to delete meeting", map[string]interface{}{"meeting_id": id.String(), "error": err.Error()})
		return nil, &PersistenceError{Op: "delete meeting", Err: err}
	}

	if result.ModifiedCount > 0 {
		s.publisherService.PublishMeetingsDeleted(ctx, ids, result.ModifiedCount)
	}

	return &dto.DeleteMeetingResponse{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}, nil
}

func (s *meetingService) DeleteMany(ctx context.Context, rawIds []string) (*dto.DeleteMeetingResponse, error) {
	ids, idx, ok := entity.ParseReferences(rawIds)
	if !ok {
		return nil, &ValidationError{Field: "ids", Value: rawIds[idx]}
	}
	if len(ids) == 0 {
		return nil, ErrMeetingsNotRemoved
	}

	result, err := s.markDeleted(ctx, ids)
	if err != nil {
		s.logger.Error(meetingModule, "Failed to delete meetings", map[string]interface{}{"count": len(ids), "error": err.Error()})
		return nil, &PersistenceError{Op: "delete meetings", Err: err}
	}

	if result.MatchedCount == 0 || result.ModifiedCount == 0 {
		return nil, ErrMeetingsNotRemoved
	}

	s.publisherService.PublishMeetingsDeleted(ctx, ids, result.ModifiedCount)

	return &dto.DeleteMeetingResponse{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}, nil
}

// markDeleted counts the matched ids and flags the live ones in one transaction.
func (s *meetingService) markDeleted(ctx context.Context, ids []uuid.UUID) (*entity.UpdateResult, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	repo := uow.MeetingRepository()
	matched, err := repo.Count(ctx, specification.ByIDs{IDs: ids})
	if err != nil {
		_ = uow.Rollback()
		return nil, err
	}

	modified, err := repo.MarkDeleted(ctx, specification.ByIDs{IDs: ids}, specification.NotDeleted{})
	if err != nil {
		_ = uow.Rollback()
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &entity.UpdateResult{MatchedCount: matched, ModifiedCount: modified}, nil
}

func normalizeRelated(raw []byte) []byte {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	return trimmed
}
