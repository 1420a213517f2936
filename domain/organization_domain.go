package domain

import (
	"errors"
)

var (
	MessageSuccessCreateOrganization = "organization created successfully"
	MessageSuccessGetOrganizations   = "organizations retrieved successfully"

	MessageFailedCreateOrganization = "failed to create organization"
	MessageFailedGetOrganizations   = "failed to fetch organizations"
	MessageOrganizationNotFound     = "organization not found"

	ErrOrganizationNotFound = errors.New("organization not found")
)

// Coordinates are pointers so that 0 survives the required check: the equator
// and the prime meridian are valid places for an organization.
type CreateOrganizationRequest struct {
	Name         string   `json:"name" validate:"required"`
	Type         string   `json:"type" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Location     string   `json:"location" validate:"required"`
	Latitude     *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude    *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
	ContactEmail string   `json:"contactEmail" validate:"required,email"`
	ContactPhone string   `json:"contactPhone" validate:"required"`
	Website      string   `json:"website" validate:"omitempty,url"`
	ImageURL     string   `json:"imageUrl" validate:"omitempty"`
}
