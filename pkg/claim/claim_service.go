package claim

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"FoodRescue-Backend/domain"
	"FoodRescue-Backend/entities"
	"FoodRescue-Backend/pkg/listing"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ClaimService interface {
		CreateClaim(ctx context.Context, req domain.CreateClaimRequest) (*entities.Claim, error)
		GetClaimsForListing(ctx context.Context, listingID string) ([]*entities.Claim, error)
		ConfirmClaim(ctx context.Context, id string) (*entities.Claim, error)
	}

	// MailSender delivers the confirmation notice. nil disables mailing.
	MailSender func(toEmail, subject, body string) error

	claimService struct {
		claimRepository   ClaimRepository
		listingRepository listing.ListingRepository
		sendMail          MailSender
	}
)

func NewClaimService(claimRepository ClaimRepository, listingRepository listing.ListingRepository, sendMail MailSender) ClaimService {
	return &claimService{
		claimRepository:   claimRepository,
		listingRepository: listingRepository,
		sendMail:          sendMail,
	}
}

func (s *claimService) CreateClaim(ctx context.Context, req domain.CreateClaimRequest) (*entities.Claim, error) {
	listingID, err := uuid.Parse(req.ListingID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	// Flip the listing first; a claim must never exist for a listing that is
	// still browseable as available.
	if _, err := s.listingRepository.UpdateListing(ctx, req.ListingID,
		map[string]interface{}{"status": entities.ListingStatusClaimed}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrListingNotFound
		}
		return nil, err
	}

	claim := &entities.Claim{
		ID:             uuid.New(),
		ListingID:      listingID,
		ClaimerName:    req.ClaimerName,
		ClaimerContact: req.ClaimerContact,
		Status:         entities.ClaimStatusPending,
		ClaimedAt:      time.Now(),
	}

	if err := s.claimRepository.CreateClaim(ctx, claim); err != nil {
		_, _ = s.listingRepository.UpdateListing(ctx, req.ListingID,
			map[string]interface{}{"status": entities.ListingStatusAvailable})
		return nil, err
	}

	return claim, nil
}

func (s *claimService) GetClaimsForListing(ctx context.Context, listingID string) ([]*entities.Claim, error) {
	return s.claimRepository.GetClaimsForListing(ctx, listingID)
}

func (s *claimService) ConfirmClaim(ctx context.Context, id string) (*entities.Claim, error) {
	claim, err := s.claimRepository.UpdateClaim(ctx, id,
		map[string]interface{}{"status": entities.ClaimStatusConfirmed})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrClaimNotFound
		}
		return nil, err
	}

	if s.sendMail != nil && strings.Contains(claim.ClaimerContact, "@") {
		go func(c entities.Claim) {
			body := fmt.Sprintf(
				"<p>Hi %s,</p><p>your claim has been confirmed. Please pick up the food during the listed window.</p>",
				c.ClaimerName,
			)
			if err := s.sendMail(c.ClaimerContact, "Your food claim is confirmed", body); err != nil {
				log.Errorf("failed to send claim confirmation mail: %v", err)
			}
		}(*claim)
	}

	return claim, nil
}
