package sensor

import (
	"context"
	"sort"
	"sync"

	"FoodRescue-Backend/entities"
)

type memorySensorRepository struct {
	mu       sync.RWMutex
	readings map[string]entities.SensorData
}

func NewMemorySensorRepository() SensorRepository {
	return &memorySensorRepository{
		readings: make(map[string]entities.SensorData),
	}
}

func (r *memorySensorRepository) CreateSensorData(_ context.Context, data *entities.SensorData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.readings[data.ID.String()] = *data
	return nil
}

func (r *memorySensorRepository) GetSensorDataForListing(_ context.Context, listingID string) ([]*entities.SensorData, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	readings := make([]*entities.SensorData, 0)
	for _, reading := range r.readings {
		if reading.ListingID.String() != listingID {
			continue
		}
		d := reading
		readings = append(readings, &d)
	}

	sort.Slice(readings, func(i, j int) bool {
		return readings[i].Timestamp.After(readings[j].Timestamp)
	})
	return readings, nil
}
