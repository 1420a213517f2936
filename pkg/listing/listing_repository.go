package listing

import (
	"context"

	"FoodRescue-Backend/entities"

	"gorm.io/gorm"
)

type (
	// ListingRepository is the storage contract for food listings. Both the
	// database-backed and the in-memory implementation behave identically:
	// absence is signalled with gorm.ErrRecordNotFound, never a panic, and
	// updates are a shallow merge of the provided columns.
	ListingRepository interface {
		CreateListing(ctx context.Context, listing *entities.FoodListing) error
		GetListingByID(ctx context.Context, id string) (*entities.FoodListing, error)
		GetListings(ctx context.Context, availableOnly bool) ([]*entities.FoodListing, error)
		UpdateListing(ctx context.Context, id string, updates map[string]interface{}) (*entities.FoodListing, error)
		DeleteListing(ctx context.Context, id string) (bool, error)
	}

	listingRepository struct {
		db *gorm.DB
	}
)

func NewListingRepository(db *gorm.DB) ListingRepository {
	return &listingRepository{db: db}
}

func (r *listingRepository) CreateListing(ctx context.Context, listing *entities.FoodListing) error {
	return r.db.WithContext(ctx).Create(listing).Error
}

func (r *listingRepository) GetListingByID(ctx context.Context, id string) (*entities.FoodListing, error) {
	var listing entities.FoodListing
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&listing).Error; err != nil {
		return nil, err
	}
	return &listing, nil
}

func (r *listingRepository) GetListings(ctx context.Context, availableOnly bool) ([]*entities.FoodListing, error) {
	var listings []*entities.FoodListing

	query := r.db.WithContext(ctx)
	if availableOnly {
		query = query.Where("status = ?", entities.ListingStatusAvailable)
	}

	if err := query.Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *listingRepository) UpdateListing(ctx context.Context, id string, updates map[string]interface{}) (*entities.FoodListing, error) {
	var listing entities.FoodListing
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&listing).Error; err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).Model(&listing).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return &listing, nil
}

func (r *listingRepository) DeleteListing(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.FoodListing{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
