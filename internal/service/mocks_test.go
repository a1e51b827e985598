package service

import (
	"context"

	"crm-meetings-be/internal/entity"
	"crm-meetings-be/internal/repository/contract"
	"crm-meetings-be/internal/repository/specification"
	"crm-meetings-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockRepositoryFactory struct {
	uow unitofwork.UnitOfWork
}

func (f *mockRepositoryFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type mockUnitOfWork struct {
	mock.Mock
	meetings *mockMeetingRepo
	contacts *mockContactRepo
	leads    *mockLeadRepo
	users    *mockUserRepo
}

func newMockUnitOfWork() *mockUnitOfWork {
	return &mockUnitOfWork{
		meetings: new(mockMeetingRepo),
		contacts: new(mockContactRepo),
		leads:    new(mockLeadRepo),
		users:    new(mockUserRepo),
	}
}

func (u *mockUnitOfWork) Begin(ctx context.Context) error {
	args := u.Called(ctx)
	return args.Error(0)
}

func (u *mockUnitOfWork) Commit() error {
	args := u.Called()
	return args.Error(0)
}

func (u *mockUnitOfWork) Rollback() error {
	args := u.Called()
	return args.Error(0)
}

func (u *mockUnitOfWork) MeetingRepository() contract.MeetingRepository { return u.meetings }
func (u *mockUnitOfWork) ContactRepository() contract.ContactRepository { return u.contacts }
func (u *mockUnitOfWork) LeadRepository() contract.LeadRepository       { return u.leads }
func (u *mockUnitOfWork) UserRepository() contract.UserRepository       { return u.users }

type mockMeetingRepo struct {
	mock.Mock
}

func (m *mockMeetingRepo) Create(ctx context.Context, meeting *entity.Meeting) error {
	args := m.Called(ctx, meeting)
	return args.Error(0)
}

func (m *mockMeetingRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Meeting, error) {
	args := m.Called(ctx, specs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Meeting), args.Error(1)
}

func (m *mockMeetingRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Meeting, error) {
	args := m.Called(ctx, specs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Meeting), args.Error(1)
}

func (m *mockMeetingRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	args := m.Called(ctx, specs)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockMeetingRepo) MarkDeleted(ctx context.Context, specs ...specification.Specification) (int64, error) {
	args := m.Called(ctx, specs)
	return args.Get(0).(int64), args.Error(1)
}

type mockContactRepo struct {
	mock.Mock
}

func (m *mockContactRepo) Create(ctx context.Context, contact *entity.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *mockContactRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Contact, error) {
	args := m.Called(ctx, specs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Contact), args.Error(1)
}

type mockLeadRepo struct {
	mock.Mock
}

func (m *mockLeadRepo) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *mockLeadRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Lead, error) {
	args := m.Called(ctx, specs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Lead), args.Error(1)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	args := m.Called(ctx, specs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

type mockPublisher struct {
	mock.Mock
}

func (p *mockPublisher) PublishMeetingCreated(ctx context.Context, meeting *entity.Meeting) {
	p.Called(ctx, meeting)
}

func (p *mockPublisher) PublishMeetingsDeleted(ctx context.Context, ids []uuid.UUID, modified int64) {
	p.Called(ctx, ids, modified)
}

// hasSpec matches a specification slice containing want.
func hasSpec(want specification.Specification) interface{} {
	return mock.MatchedBy(func(specs []specification.Specification) bool {
		for _, s := range specs {
			if assert.ObjectsAreEqual(want, s) {
				return true
			}
		}
		return false
	})
}
