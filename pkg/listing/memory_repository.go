package listing

import (
	"context"
	"sync"

	"FoodRescue-Backend/entities"

	"gorm.io/gorm"
)

// memoryListingRepository keeps listings in a keyed map. Used for tests and
// development; nothing survives a restart. Handlers run concurrently, so the
// map is mutex-guarded.
type memoryListingRepository struct {
	mu       sync.RWMutex
	listings map[string]entities.FoodListing
}

func NewMemoryListingRepository() ListingRepository {
	return &memoryListingRepository{
		listings: make(map[string]entities.FoodListing),
	}
}

func (r *memoryListingRepository) CreateListing(_ context.Context, listing *entities.FoodListing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listings[listing.ID.String()] = *listing
	return nil
}

func (r *memoryListingRepository) GetListingByID(_ context.Context, id string) (*entities.FoodListing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	listing, ok := r.listings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &listing, nil
}

func (r *memoryListingRepository) GetListings(_ context.Context, availableOnly bool) ([]*entities.FoodListing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	listings := make([]*entities.FoodListing, 0, len(r.listings))
	for _, listing := range r.listings {
		if availableOnly && listing.Status != entities.ListingStatusAvailable {
			continue
		}
		l := listing
		listings = append(listings, &l)
	}
	return listings, nil
}

func (r *memoryListingRepository) UpdateListing(_ context.Context, id string, updates map[string]interface{}) (*entities.FoodListing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	listing, ok := r.listings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}

	for column, value := range updates {
		switch column {
		case "status":
			if s, ok := value.(string); ok {
				listing.Status = s
			}
		case "image_url":
			if s, ok := value.(string); ok {
				listing.ImageURL = s
			}
		}
	}

	r.listings[id] = listing
	return &listing, nil
}

func (r *memoryListingRepository) DeleteListing(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.listings[id]; !ok {
		return false, nil
	}
	delete(r.listings, id)
	return true, nil
}
