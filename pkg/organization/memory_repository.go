package organization

import (
	"context"
	"sync"

	"FoodRescue-Backend/entities"

	"gorm.io/gorm"
)

type memoryOrganizationRepository struct {
	mu   sync.RWMutex
	orgs map[string]entities.Organization
}

func NewMemoryOrganizationRepository() OrganizationRepository {
	return &memoryOrganizationRepository{
		orgs: make(map[string]entities.Organization),
	}
}

func (r *memoryOrganizationRepository) CreateOrganization(_ context.Context, org *entities.Organization) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orgs[org.ID.String()] = *org
	return nil
}

func (r *memoryOrganizationRepository) GetOrganizationByID(_ context.Context, id string) (*entities.Organization, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	org, ok := r.orgs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &org, nil
}

func (r *memoryOrganizationRepository) GetOrganizations(_ context.Context) ([]*entities.Organization, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orgs := make([]*entities.Organization, 0, len(r.orgs))
	for _, org := range r.orgs {
		o := org
		orgs = append(orgs, &o)
	}
	return orgs, nil
}
