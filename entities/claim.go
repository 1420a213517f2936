package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	ClaimStatusPending   = "pending"
	ClaimStatusConfirmed = "confirmed"
)

type Claim struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ListingID      uuid.UUID `json:"listingId"`
	ClaimerName    string    `json:"claimerName"`
	ClaimerContact string    `json:"claimerContact"`
	Status         string    `json:"status"` // pending or confirmed
	ClaimedAt      time.Time `json:"claimedAt"`

	Listing *FoodListing `gorm:"foreignKey:ListingID" json:"-"`
}
