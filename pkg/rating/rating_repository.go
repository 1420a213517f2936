package rating

import (
	"context"

	"FoodRescue-Backend/entities"

	"gorm.io/gorm"
)

type (
	RatingRepository interface {
		CreateRating(ctx context.Context, rating *entities.SupplierRating) error
		GetRatingsForOrganization(ctx context.Context, organizationID string) ([]*entities.SupplierRating, error)
	}

	ratingRepository struct {
		db *gorm.DB
	}
)

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) CreateRating(ctx context.Context, rating *entities.SupplierRating) error {
	return r.db.WithContext(ctx).Create(rating).Error
}

func (r *ratingRepository) GetRatingsForOrganization(ctx context.Context, organizationID string) ([]*entities.SupplierRating, error) {
	var ratings []*entities.SupplierRating
	if err := r.db.WithContext(ctx).
		Where("organization_id = ?", organizationID).
		Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}
