package domain

import (
	"errors"
)

var (
	MessageSuccessCreateClaim  = "claim created successfully"
	MessageSuccessConfirmClaim = "claim confirmed successfully"
	MessageSuccessGetClaims    = "claims retrieved successfully"

	MessageFailedCreateClaim  = "failed to create claim"
	MessageFailedConfirmClaim = "failed to confirm claim"
	MessageFailedGetClaims    = "failed to fetch claims"
	MessageClaimNotFound      = "claim not found"

	ErrClaimNotFound      = errors.New("claim not found")
	ErrInvalidClaimStatus = errors.New("invalid claim status")
)

type (
	CreateClaimRequest struct {
		ListingID      string `json:"listingId" validate:"required,uuid"`
		ClaimerName    string `json:"claimerName" validate:"required"`
		ClaimerContact string `json:"claimerContact" validate:"required"`
	}

	// UpdateClaimRequest only ever moves a claim to confirmed.
	UpdateClaimRequest struct {
		Status string `json:"status" validate:"required,oneof=confirmed"`
	}
)
