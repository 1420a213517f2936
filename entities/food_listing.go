package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	ListingStatusAvailable = "available"
	ListingStatusClaimed   = "claimed"
)

type FoodListing struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Quantity        string     `json:"quantity"`
	Category        string     `json:"category"` // produce, bakery, dairy, prepared, packaged, other
	ImageURL        string     `json:"imageUrl,omitempty"`
	Cost            string     `json:"cost,omitempty"`
	Location        string     `json:"location"`
	Latitude        float64    `json:"latitude"`
	Longitude       float64    `json:"longitude"`
	ExpiryDate      *time.Time `json:"expiryDate,omitempty"`
	PickupTimeStart time.Time  `json:"pickupTimeStart"`
	PickupTimeEnd   time.Time  `json:"pickupTimeEnd"`
	FreshnessScore  int        `json:"freshnessScore"`
	QualityScore    int        `json:"qualityScore"`
	DefectsDetected StringList `gorm:"type:jsonb" json:"defectsDetected"`
	AiAnalysis      JSONMap    `gorm:"type:jsonb" json:"aiAnalysis,omitempty"`
	Status          string     `json:"status"` // available or claimed
	DonorID         uuid.UUID  `json:"donorId"`
	CreatedAt       time.Time  `json:"createdAt"`

	Donor *User `gorm:"foreignKey:DonorID" json:"-"`
}
