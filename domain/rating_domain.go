package domain

import (
	"errors"
)

var (
	MessageSuccessCreateRating = "supplier rating created successfully"
	MessageSuccessGetRatings   = "supplier ratings retrieved successfully"

	MessageFailedCreateRating = "failed to create supplier rating"
	MessageFailedGetRatings   = "failed to fetch supplier ratings"

	ErrRatingNotFound = errors.New("supplier rating not found")
)

type (
	CreateSupplierRatingRequest struct {
		SupplierID          string  `json:"supplierId" validate:"required,uuid"`
		OrganizationID      string  `json:"organizationId" validate:"required,uuid"`
		OverallRating       float64 `json:"overallRating" validate:"required,gte=0,lte=5"`
		GoogleReviewScore   float64 `json:"googleReviewScore" validate:"omitempty,gte=0,lte=5"`
		FoodSafetyCertified int     `json:"foodSafetyCertified" validate:"gte=0,lte=1"`
		ReliabilityScore    float64 `json:"reliabilityScore" validate:"required,gte=0,lte=5"`
		QualityScore        float64 `json:"qualityScore" validate:"required,gte=0,lte=5"`
		TotalDonations      int     `json:"totalDonations" validate:"gte=0"`
	}

	// SupplierAnalysis is the opaque AI payload attached to a rating: a short
	// narrative, a per-factor breakdown and a confidence in [0,1].
	SupplierAnalysis struct {
		Reasoning  string             `json:"reasoning"`
		Factors    map[string]float64 `json:"factors"`
		Confidence float64            `json:"confidence"`
	}
)
