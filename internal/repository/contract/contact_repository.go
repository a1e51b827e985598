package contract

import (
	"context"

	"crm-meetings-be/internal/entity"
	"crm-meetings-be/internal/repository/specification"
)

type ContactRepository interface {
	Create(ctx context.Context, contact *entity.Contact) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Contact, error)
}
