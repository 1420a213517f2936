package entities

import (
	"time"

	"github.com/google/uuid"
)

type SensorData struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ListingID   uuid.UUID `json:"listingId"`
	Temperature float64   `json:"temperature"`
	Humidity    float64   `json:"humidity"`
	Timestamp   time.Time `json:"timestamp"`

	Listing *FoodListing `gorm:"foreignKey:ListingID" json:"-"`
}
