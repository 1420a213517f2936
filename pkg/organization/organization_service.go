package organization

import (
	"context"
	"errors"
	"time"

	"FoodRescue-Backend/domain"
	"FoodRescue-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	OrganizationService interface {
		CreateOrganization(ctx context.Context, req domain.CreateOrganizationRequest) (*entities.Organization, error)
		GetOrganizationByID(ctx context.Context, id string) (*entities.Organization, error)
		GetOrganizations(ctx context.Context) ([]*entities.Organization, error)
	}

	organizationService struct {
		organizationRepository OrganizationRepository
	}
)

func NewOrganizationService(organizationRepository OrganizationRepository) OrganizationService {
	return &organizationService{organizationRepository: organizationRepository}
}

func (s *organizationService) CreateOrganization(ctx context.Context, req domain.CreateOrganizationRequest) (*entities.Organization, error) {
	org := &entities.Organization{
		ID:           uuid.New(),
		Name:         req.Name,
		Type:         req.Type,
		Description:  req.Description,
		Location:     req.Location,
		Latitude:     *req.Latitude,
		Longitude:    *req.Longitude,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Website:      req.Website,
		ImageURL:     req.ImageURL,
		Verified:     0,
		CreatedAt:    time.Now(),
	}

	if err := s.organizationRepository.CreateOrganization(ctx, org); err != nil {
		return nil, err
	}
	return org, nil
}

func (s *organizationService) GetOrganizationByID(ctx context.Context, id string) (*entities.Organization, error) {
	org, err := s.organizationRepository.GetOrganizationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrganizationNotFound
		}
		return nil, err
	}
	return org, nil
}

func (s *organizationService) GetOrganizations(ctx context.Context) ([]*entities.Organization, error) {
	return s.organizationRepository.GetOrganizations(ctx)
}
