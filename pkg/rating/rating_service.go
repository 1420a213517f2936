package rating

import (
	"context"
	"time"

	"FoodRescue-Backend/domain"
	"FoodRescue-Backend/entities"
	"FoodRescue-Backend/pkg/ai"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

type (
	RatingService interface {
		CreateRating(ctx context.Context, req domain.CreateSupplierRatingRequest) (*entities.SupplierRating, error)
		GetRatingsForOrganization(ctx context.Context, organizationID string) ([]*entities.SupplierRating, error)
	}

	ratingService struct {
		ratingRepository RatingRepository
		gateway          ai.Gateway
	}
)

func NewRatingService(ratingRepository RatingRepository, gateway ai.Gateway) RatingService {
	return &ratingService{
		ratingRepository: ratingRepository,
		gateway:          gateway,
	}
}

func (s *ratingService) CreateRating(ctx context.Context, req domain.CreateSupplierRatingRequest) (*entities.SupplierRating, error) {
	supplierID, err := uuid.Parse(req.SupplierID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	organizationID, err := uuid.Parse(req.OrganizationID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	rating := &entities.SupplierRating{
		ID:                  uuid.New(),
		SupplierID:          supplierID,
		OrganizationID:      organizationID,
		OverallRating:       req.OverallRating,
		GoogleReviewScore:   req.GoogleReviewScore,
		FoodSafetyCertified: req.FoodSafetyCertified,
		ReliabilityScore:    req.ReliabilityScore,
		QualityScore:        req.QualityScore,
		TotalDonations:      req.TotalDonations,
		Timestamp: entities.Timestamp{
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}

	// The narrative is best effort; a missing or failing gateway never blocks
	// the rating itself.
	if s.gateway != nil && s.gateway.Configured() {
		analysis, err := s.gateway.AnalyzeSupplier(ctx, req)
		if err != nil {
			log.Warnf("supplier analysis skipped: %v", err)
		} else {
			factors := make(map[string]interface{}, len(analysis.Factors))
			for k, v := range analysis.Factors {
				factors[k] = v
			}
			rating.AiAnalysis = entities.JSONMap{
				"reasoning":  analysis.Reasoning,
				"factors":    factors,
				"confidence": analysis.Confidence,
			}
		}
	}

	if err := s.ratingRepository.CreateRating(ctx, rating); err != nil {
		return nil, err
	}
	return rating, nil
}

func (s *ratingService) GetRatingsForOrganization(ctx context.Context, organizationID string) ([]*entities.SupplierRating, error) {
	return s.ratingRepository.GetRatingsForOrganization(ctx, organizationID)
}
