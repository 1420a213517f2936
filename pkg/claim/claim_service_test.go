package claim

import (
	"context"
	"errors"
	"testing"
	"time"

	"FoodRescue-Backend/domain"
	"FoodRescue-Backend/entities"
	"FoodRescue-Backend/pkg/listing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingClaimRepository struct {
	ClaimRepository
}

func (r *failingClaimRepository) CreateClaim(context.Context, *entities.Claim) error {
	return errors.New("claim store unavailable")
}

func seedListing(t *testing.T, repo listing.ListingRepository) *entities.FoodListing {
	t.Helper()
	l := &entities.FoodListing{
		ID:        uuid.New(),
		Title:     "Crates of apples",
		Status:    entities.ListingStatusAvailable,
		DonorID:   uuid.New(),
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.CreateListing(context.Background(), l))
	return l
}

func claimRequest(listingID, contact string) domain.CreateClaimRequest {
	return domain.CreateClaimRequest{
		ListingID:      listingID,
		ClaimerName:    "Sam",
		ClaimerContact: contact,
	}
}

func TestCreateClaimFlipsListingToClaimed(t *testing.T) {
	listingRepo := listing.NewMemoryListingRepository()
	seeded := seedListing(t, listingRepo)
	service := NewClaimService(NewMemoryClaimRepository(), listingRepo, nil)

	created, err := service.CreateClaim(context.Background(), claimRequest(seeded.ID.String(), "555-0100"))
	require.NoError(t, err)
	assert.Equal(t, entities.ClaimStatusPending, created.Status)

	got, err := listingRepo.GetListingByID(context.Background(), seeded.ID.String())
	require.NoError(t, err)
	assert.Equal(t, entities.ListingStatusClaimed, got.Status)
}

func TestCreateClaimFailureLeavesListingAvailable(t *testing.T) {
	listingRepo := listing.NewMemoryListingRepository()
	seeded := seedListing(t, listingRepo)
	service := NewClaimService(&failingClaimRepository{NewMemoryClaimRepository()}, listingRepo, nil)

	_, err := service.CreateClaim(context.Background(), claimRequest(seeded.ID.String(), "555-0100"))
	require.Error(t, err)

	got, err := listingRepo.GetListingByID(context.Background(), seeded.ID.String())
	require.NoError(t, err)
	assert.Equal(t, entities.ListingStatusAvailable, got.Status,
		"a failed claim must not leave the listing stuck as claimed")
}

func TestCreateClaimUnknownListing(t *testing.T) {
	service := NewClaimService(NewMemoryClaimRepository(), listing.NewMemoryListingRepository(), nil)

	_, err := service.CreateClaim(context.Background(), claimRequest(uuid.NewString(), "555-0100"))
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}

func TestConfirmClaimMailsEmailContacts(t *testing.T) {
	listingRepo := listing.NewMemoryListingRepository()
	seeded := seedListing(t, listingRepo)

	sent := make(chan string, 1)
	service := NewClaimService(NewMemoryClaimRepository(), listingRepo, func(to, subject, body string) error {
		sent <- to
		return nil
	})

	created, err := service.CreateClaim(context.Background(), claimRequest(seeded.ID.String(), "sam@example.com"))
	require.NoError(t, err)

	confirmed, err := service.ConfirmClaim(context.Background(), created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, entities.ClaimStatusConfirmed, confirmed.Status)

	select {
	case to := <-sent:
		assert.Equal(t, "sam@example.com", to)
	case <-time.After(time.Second):
		t.Fatal("confirmation mail was never sent")
	}
}
