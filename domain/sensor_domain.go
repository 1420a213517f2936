package domain

import (
	"errors"
)

var (
	MessageSuccessCreateSensorData = "sensor reading recorded successfully"
	MessageSuccessGetSensorData    = "sensor readings retrieved successfully"

	MessageFailedCreateSensorData = "failed to record sensor reading"
	MessageFailedGetSensorData    = "failed to fetch sensor data"

	ErrSensorListingMissing = errors.New("listing id is required")
)

type CreateSensorDataRequest struct {
	ListingID   string   `json:"listingId" validate:"required,uuid"`
	Temperature *float64 `json:"temperature" validate:"required"`
	Humidity    *float64 `json:"humidity" validate:"required"`
}
