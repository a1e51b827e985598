package unitofwork

import (
	"context"

	"crm-meetings-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	MeetingRepository() contract.MeetingRepository
	ContactRepository() contract.ContactRepository
	LeadRepository() contract.LeadRepository
	UserRepository() contract.UserRepository
}
