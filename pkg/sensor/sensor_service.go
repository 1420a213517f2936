package sensor

import (
	"context"
	"time"

	"FoodRescue-Backend/domain"
	"FoodRescue-Backend/entities"

	"github.com/google/uuid"
)

type (
	SensorService interface {
		CreateSensorData(ctx context.Context, req domain.CreateSensorDataRequest) (*entities.SensorData, error)
		GetSensorDataForListing(ctx context.Context, listingID string) ([]*entities.SensorData, error)
	}

	sensorService struct {
		sensorRepository SensorRepository
	}
)

func NewSensorService(sensorRepository SensorRepository) SensorService {
	return &sensorService{sensorRepository: sensorRepository}
}

func (s *sensorService) CreateSensorData(ctx context.Context, req domain.CreateSensorDataRequest) (*entities.SensorData, error) {
	listingID, err := uuid.Parse(req.ListingID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	// Capture time is server-assigned, never taken from the caller.
	data := &entities.SensorData{
		ID:          uuid.New(),
		ListingID:   listingID,
		Temperature: *req.Temperature,
		Humidity:    *req.Humidity,
		Timestamp:   time.Now(),
	}

	if err := s.sensorRepository.CreateSensorData(ctx, data); err != nil {
		return nil, err
	}
	return data, nil
}

func (s *sensorService) GetSensorDataForListing(ctx context.Context, listingID string) ([]*entities.SensorData, error) {
	return s.sensorRepository.GetSensorDataForListing(ctx, listingID)
}
