package organization

import (
	"context"

	"FoodRescue-Backend/entities"

	"gorm.io/gorm"
)

type (
	OrganizationRepository interface {
		CreateOrganization(ctx context.Context, org *entities.Organization) error
		GetOrganizationByID(ctx context.Context, id string) (*entities.Organization, error)
		GetOrganizations(ctx context.Context) ([]*entities.Organization, error)
	}

	organizationRepository struct {
		db *gorm.DB
	}
)

func NewOrganizationRepository(db *gorm.DB) OrganizationRepository {
	return &organizationRepository{db: db}
}

func (r *organizationRepository) CreateOrganization(ctx context.Context, org *entities.Organization) error {
	return r.db.WithContext(ctx).Create(org).Error
}

func (r *organizationRepository) GetOrganizationByID(ctx context.Context, id string) (*entities.Organization, error) {
	var org entities.Organization
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&org).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *organizationRepository) GetOrganizations(ctx context.Context) ([]*entities.Organization, error) {
	var orgs []*entities.Organization
	if err := r.db.WithContext(ctx).Find(&orgs).Error; err != nil {
		return nil, err
	}
	return orgs, nil
}
