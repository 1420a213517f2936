package rating

import (
	"context"
	"sync"

	"FoodRescue-Backend/entities"
)

type memoryRatingRepository struct {
	mu      sync.RWMutex
	ratings map[string]entities.SupplierRating
}

func NewMemoryRatingRepository() RatingRepository {
	return &memoryRatingRepository{
		ratings: make(map[string]entities.SupplierRating),
	}
}

func (r *memoryRatingRepository) CreateRating(_ context.Context, rating *entities.SupplierRating) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ratings[rating.ID.String()] = *rating
	return nil
}

func (r *memoryRatingRepository) GetRatingsForOrganization(_ context.Context, organizationID string) ([]*entities.SupplierRating, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ratings := make([]*entities.SupplierRating, 0)
	for _, rating := range r.ratings {
		if rating.OrganizationID.String() != organizationID {
			continue
		}
		rr := rating
		ratings = append(ratings, &rr)
	}
	return ratings, nil
}
