package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessCreateListing = "food listing created successfully"
	MessageSuccessUpdateListing = "food listing updated successfully"
	MessageSuccessDeleteListing = "food listing deleted successfully"
	MessageSuccessGetListings   = "food listings retrieved successfully"

	MessageFailedCreateListing = "failed to create food listing"
	MessageFailedUpdateListing = "failed to update food listing"
	MessageFailedDeleteListing = "failed to delete food listing"
	MessageFailedGetListings   = "failed to fetch food listings"
	MessageListingNotFound     = "food listing not found"

	ErrListingNotFound      = errors.New("food listing not found")
	ErrInvalidPickupWindow  = errors.New("pickup window end must not be before start")
	ErrInvalidListingStatus = errors.New("invalid listing status")
	ErrInvalidCoordinates   = errors.New("invalid coordinates")
	ErrInvalidScore         = errors.New("score must be between 0 and 100")
	ErrInvalidImageFormat   = errors.New("only image files are allowed")
)

type (
	CreateListingRequest struct {
		Title           string                 `json:"title" form:"title" validate:"required"`
		Description     string                 `json:"description" form:"description" validate:"required"`
		Quantity        string                 `json:"quantity" form:"quantity" validate:"required"`
		Category        string                 `json:"category" form:"category" validate:"required"`
		Cost            string                 `json:"cost" form:"cost" validate:"omitempty"`
		Location        string                 `json:"location" form:"location" validate:"required"`
		Latitude        float64                `json:"latitude" validate:"gte=-90,lte=90"`
		Longitude       float64                `json:"longitude" validate:"gte=-180,lte=180"`
		PickupTimeStart time.Time              `json:"pickupTimeStart" validate:"required"`
		PickupTimeEnd   time.Time              `json:"pickupTimeEnd" validate:"required"`
		FreshnessScore  int                    `json:"freshnessScore" validate:"gte=0,lte=100"`
		QualityScore    int                    `json:"qualityScore" validate:"gte=0,lte=100"`
		DefectsDetected []string               `json:"defectsDetected"`
		AiAnalysis      map[string]interface{} `json:"aiAnalysis"`
		DonorID         string                 `json:"donorId" form:"donorId" validate:"required"`
		Image           *multipart.FileHeader  `json:"-" form:"image"`
	}

	// UpdateListingRequest is an explicit allow-list: callers may only move a
	// listing between statuses, never rewrite other fields through this path.
	UpdateListingRequest struct {
		Status string `json:"status" validate:"required,oneof=available claimed"`
	}
)
