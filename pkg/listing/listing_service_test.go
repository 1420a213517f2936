package listing

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"FoodRescue-Backend/domain"
	"FoodRescue-Backend/entities"
	"FoodRescue-Backend/internal/utils/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// vanishingListingRepository reports every record delete as a miss, as when
// the row disappears between the lookup and the delete.
type vanishingListingRepository struct {
	ListingRepository
}

func (r *vanishingListingRepository) DeleteListing(context.Context, string) (bool, error) {
	return false, nil
}

func seedListingWithImage(t *testing.T, repo ListingRepository, dir, imageName string) *entities.FoodListing {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, imageName), []byte("img"), 0o644))

	listing := newListing(entities.ListingStatusAvailable)
	listing.ImageURL = "/uploads/" + imageName
	require.NoError(t, repo.CreateListing(context.Background(), listing))
	return listing
}

func TestDeleteListingKeepsImageWhenRecordDeleteMisses(t *testing.T) {
	dir := t.TempDir()
	uploads, err := storage.NewLocalStorage(dir)
	require.NoError(t, err)

	repo := NewMemoryListingRepository()
	listing := seedListingWithImage(t, repo, dir, "1724-42.jpg")

	service := NewListingService(&vanishingListingRepository{repo}, uploads)
	err = service.DeleteListing(context.Background(), listing.ID.String())
	assert.ErrorIs(t, err, domain.ErrListingNotFound)

	_, statErr := os.Stat(filepath.Join(dir, "1724-42.jpg"))
	assert.NoError(t, statErr, "image must survive when the record was not deleted")
}

func TestDeleteListingRemovesImageWithRecord(t *testing.T) {
	dir := t.TempDir()
	uploads, err := storage.NewLocalStorage(dir)
	require.NoError(t, err)

	repo := NewMemoryListingRepository()
	listing := seedListingWithImage(t, repo, dir, "1724-43.jpg")

	service := NewListingService(repo, uploads)
	require.NoError(t, service.DeleteListing(context.Background(), listing.ID.String()))

	_, statErr := os.Stat(filepath.Join(dir, "1724-43.jpg"))
	assert.True(t, os.IsNotExist(statErr), "image should be removed with the record")
}
