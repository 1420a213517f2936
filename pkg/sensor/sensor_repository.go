package sensor

import (
	"context"

	"FoodRescue-Backend/entities"

	"gorm.io/gorm"
)

type (
	SensorRepository interface {
		CreateSensorData(ctx context.Context, data *entities.SensorData) error
		GetSensorDataForListing(ctx context.Context, listingID string) ([]*entities.SensorData, error)
	}

	sensorRepository struct {
		db *gorm.DB
	}
)

func NewSensorRepository(db *gorm.DB) SensorRepository {
	return &sensorRepository{db: db}
}

func (r *sensorRepository) CreateSensorData(ctx context.Context, data *entities.SensorData) error {
	return r.db.WithContext(ctx).Create(data).Error
}

func (r *sensorRepository) GetSensorDataForListing(ctx context.Context, listingID string) ([]*entities.SensorData, error) {
	var readings []*entities.SensorData
	if err := r.db.WithContext(ctx).
		Where("listing_id = ?", listingID).
		Order("timestamp desc").
		Find(&readings).Error; err != nil {
		return nil, err
	}
	return readings, nil
}
