package contract

import (
	"context"

	"crm-meetings-be/internal/entity"
	"crm-meetings-be/internal/repository/specification"
)

type MeetingRepository interface {
	Create(ctx context.Context, meeting *entity.Meeting) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Meeting, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Meeting, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// MarkDeleted sets deleted=true on every matching meeting and returns the rows touched.
	MarkDeleted(ctx context.Context, specs ...specification.Specification) (int64, error)
}
