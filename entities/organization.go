package entities

import (
	"time"

	"github.com/google/uuid"
)

type Organization struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"` // food bank, shelter, community kitchen, ...
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	ContactEmail string    `json:"contactEmail"`
	ContactPhone string    `json:"contactPhone"`
	Website      string    `json:"website,omitempty"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	Verified     int       `json:"verified"`
	CreatedAt    time.Time `json:"createdAt"`

	SupplierRatings []*SupplierRating `gorm:"foreignKey:OrganizationID" json:"-"`
}
