package mapper

import (
	"crm-meetings-be/internal/entity"
	"crm-meetings-be/internal/model"
)

type LeadMapper struct{}

func NewLeadMapper() *LeadMapper {
	return &LeadMapper{}
}

func (m *LeadMapper) ToEntity(l *model.Lead) *entity.Lead {
	if l == nil {
		return nil
	}
	return &entity.Lead{
		Id:              l.Id,
		LeadName:        l.LeadName,
		LeadEmail:       l.LeadEmail,
		LeadPhoneNumber: l.LeadPhoneNumber,
		LeadStatus:      l.LeadStatus,
		Deleted:         l.Deleted,
		CreatedAt:       l.CreatedAt,
	}
}

func (m *LeadMapper) ToModel(l *entity.Lead) *model.Lead {
	if l == nil {
		return nil
	}
	return &model.Lead{
		Id:              l.Id,
		LeadName:        l.LeadName,
		LeadEmail:       l.LeadEmail,
		LeadPhoneNumber: l.LeadPhoneNumber,
		LeadStatus:      l.LeadStatus,
		Deleted:         l.Deleted,
		CreatedAt:       l.CreatedAt,
	}
}

func (m *LeadMapper) ToEntities(leads []*model.Lead) []*entity.Lead {
	entities := make([]*entity.Lead, len(leads))
	for i, l := range leads {
		entities[i] = m.ToEntity(l)
	}
	return entities
}
