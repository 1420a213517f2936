package listing

import (
	"context"
	"errors"
	"time"

	"FoodRescue-Backend/domain"
	"FoodRescue-Backend/entities"
	"FoodRescue-Backend/internal/utils/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ListingService interface {
		CreateListing(ctx context.Context, req domain.CreateListingRequest) (*entities.FoodListing, error)
		GetAvailableListings(ctx context.Context) ([]*entities.FoodListing, error)
		GetListingByID(ctx context.Context, id string) (*entities.FoodListing, error)
		UpdateListingStatus(ctx context.Context, id string, status string) (*entities.FoodListing, error)
		DeleteListing(ctx context.Context, id string) error
	}

	listingService struct {
		listingRepository ListingRepository
		uploads           storage.Storage
	}
)

func NewListingService(listingRepository ListingRepository, uploads storage.Storage) ListingService {
	return &listingService{
		listingRepository: listingRepository,
		uploads:           uploads,
	}
}

func (s *listingService) CreateListing(ctx context.Context, req domain.CreateListingRequest) (*entities.FoodListing, error) {
	if req.PickupTimeEnd.Before(req.PickupTimeStart) {
		return nil, domain.ErrInvalidPickupWindow
	}

	donorID, err := uuid.Parse(req.DonorID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	imageURL := ""
	if req.Image != nil {
		imageURL, err = s.uploads.UploadFile(req.Image, storage.AllowImage...)
		if err != nil {
			return nil, err
		}
	}

	defects := req.DefectsDetected
	if defects == nil {
		defects = []string{}
	}

	listing := &entities.FoodListing{
		ID:              uuid.New(),
		Title:           req.Title,
		Description:     req.Description,
		Quantity:        req.Quantity,
		Category:        req.Category,
		ImageURL:        imageURL,
		Cost:            req.Cost,
		Location:        req.Location,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		PickupTimeStart: req.PickupTimeStart,
		PickupTimeEnd:   req.PickupTimeEnd,
		FreshnessScore:  req.FreshnessScore,
		QualityScore:    req.QualityScore,
		DefectsDetected: defects,
		AiAnalysis:      req.AiAnalysis,
		Status:          entities.ListingStatusAvailable,
		DonorID:         donorID,
		CreatedAt:       time.Now(),
	}

	if err := s.listingRepository.CreateListing(ctx, listing); err != nil {
		if imageURL != "" {
			_ = s.uploads.DeleteFile(imageURL)
		}
		return nil, err
	}
	return listing, nil
}

func (s *listingService) GetAvailableListings(ctx context.Context) ([]*entities.FoodListing, error) {
	return s.listingRepository.GetListings(ctx, true)
}

func (s *listingService) GetListingByID(ctx context.Context, id string) (*entities.FoodListing, error) {
	listing, err := s.listingRepository.GetListingByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrListingNotFound
		}
		return nil, err
	}
	return listing, nil
}

// UpdateListingStatus is the only write path exposed for existing listings:
// an allow-list of exactly one column.
func (s *listingService) UpdateListingStatus(ctx context.Context, id string, status string) (*entities.FoodListing, error) {
	listing, err := s.listingRepository.UpdateListing(ctx, id, map[string]interface{}{"status": status})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrListingNotFound
		}
		return nil, err
	}
	return listing, nil
}

func (s *listingService) DeleteListing(ctx context.Context, id string) error {
	listing, err := s.listingRepository.GetListingByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrListingNotFound
		}
		return err
	}

	existed, err := s.listingRepository.DeleteListing(ctx, id)
	if err != nil {
		return err
	}
	if !existed {
		return domain.ErrListingNotFound
	}

	// The image goes only once the record is gone; a failed delete must not
	// orphan the listing's picture.
	if listing.ImageURL != "" {
		_ = s.uploads.DeleteFile(listing.ImageURL)
	}
	return nil
}
