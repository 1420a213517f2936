package entities

import (
	"github.com/google/uuid"
)

type SupplierRating struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	SupplierID          uuid.UUID `json:"supplierId"`
	OrganizationID      uuid.UUID `json:"organizationId"`
	OverallRating       float64   `json:"overallRating"`
	GoogleReviewScore   float64   `json:"googleReviewScore,omitempty"`
	FoodSafetyCertified int       `json:"foodSafetyCertified"`
	ReliabilityScore    float64   `json:"reliabilityScore"`
	QualityScore        float64   `json:"qualityScore"`
	TotalDonations      int       `json:"totalDonations"`
	AiAnalysis          JSONMap   `gorm:"type:jsonb" json:"aiAnalysis,omitempty"`

	Supplier     *User         `gorm:"foreignKey:SupplierID" json:"-"`
	Organization *Organization `gorm:"foreignKey:OrganizationID" json:"-"`
	Timestamp
}
