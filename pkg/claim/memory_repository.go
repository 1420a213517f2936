package claim

import (
	"context"
	"sort"
	"sync"

	"FoodRescue-Backend/entities"

	"gorm.io/gorm"
)

type memoryClaimRepository struct {
	mu     sync.RWMutex
	claims map[string]entities.Claim
}

func NewMemoryClaimRepository() ClaimRepository {
	return &memoryClaimRepository{
		claims: make(map[string]entities.Claim),
	}
}

func (r *memoryClaimRepository) CreateClaim(_ context.Context, claim *entities.Claim) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.claims[claim.ID.String()] = *claim
	return nil
}

func (r *memoryClaimRepository) GetClaimByID(_ context.Context, id string) (*entities.Claim, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	claim, ok := r.claims[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &claim, nil
}

func (r *memoryClaimRepository) GetClaimsForListing(_ context.Context, listingID string) ([]*entities.Claim, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	claims := make([]*entities.Claim, 0)
	for _, claim := range r.claims {
		if claim.ListingID.String() != listingID {
			continue
		}
		c := claim
		claims = append(claims, &c)
	}

	sort.Slice(claims, func(i, j int) bool {
		return claims[i].ClaimedAt.After(claims[j].ClaimedAt)
	})
	return claims, nil
}

func (r *memoryClaimRepository) UpdateClaim(_ context.Context, id string, updates map[string]interface{}) (*entities.Claim, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	claim, ok := r.claims[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}

	for column, value := range updates {
		if column == "status" {
			if s, ok := value.(string); ok {
				claim.Status = s
			}
		}
	}

	r.claims[id] = claim
	return &claim, nil
}
