package services

import (
	"math"

	"smartkumbh-http-service/config"
	"smartkumbh-http-service/models"
	"smartkumbh-http-service/storage"
)

// InterfaceCrowdService defines the crowd data service interface
type InterfaceCrowdService interface {
	GetAllCrowdData() []*models.CrowdData
	CreateCrowdData(data *models.CrowdData) *models.CrowdData
	RefreshReading(locationName string, count int) (*models.CrowdData, error)
	FindByLocation(locationName string) (*models.CrowdData, bool)
}

// CrowdService provides crowd density operations. Count, capacity,
// occupancy rate, density level, wait time and status are mutually
// derived; any write rederives the whole record.
type CrowdService struct {
	Store  *storage.Store
	Config *config.Config
}

// NewCrowdService creates a new crowd data service
func NewCrowdService(store *storage.Store, cfg *config.Config) InterfaceCrowdService {
	return &CrowdService{
		Store:  store,
		Config: cfg,
	}
}

// 1 GetAllCrowdData returns all crowd readings
func (s *CrowdService) GetAllCrowdData() []*models.CrowdData {
	return s.Store.CrowdData.List()
}

// 2 CreateCrowdData creates a new reading with derived fields filled in
func (s *CrowdService) CreateCrowdData(data *models.CrowdData) *models.CrowdData {
	DeriveCrowdMetrics(data)
	return s.Store.CrowdData.Create(data)
}

// 3 RefreshReading replaces the reading for a location with a freshly
// derived record for the new count. Capacity is kept from the stored
// record.
func (s *CrowdService) RefreshReading(locationName string, count int) (*models.CrowdData, error) {
	existing, ok := s.FindByLocation(locationName)
	if !ok {
		return nil, storage.ErrNotFound
	}
	next := &models.CrowdData{
		LocationName: existing.LocationName,
		Latitude:     existing.Latitude,
		Longitude:    existing.Longitude,
		CrowdCount:   count,
		Capacity:     existing.Capacity,
	}
	DeriveCrowdMetrics(next)
	return s.Store.CrowdData.Replace(existing.ID, next)
}

// 4 FindByLocation returns the reading for a location name, if any
func (s *CrowdService) FindByLocation(locationName string) (*models.CrowdData, bool) {
	for _, data := range s.Store.CrowdData.List() {
		if data.LocationName == locationName {
			return data, true
		}
	}
	return nil, false
}

// DeriveCrowdMetrics fills occupancy rate, density level, wait time
// and status from count and capacity. The density bands are:
// critical above 90%, high above 75%, medium above 50%, low otherwise.
func DeriveCrowdMetrics(data *models.CrowdData) {
	if data.Capacity <= 0 {
		data.OccupancyRate = 0
	} else {
		data.OccupancyRate = int(math.Round(100 * float64(data.CrowdCount) / float64(data.Capacity)))
	}

	switch {
	case data.OccupancyRate > 90:
		data.DensityLevel = models.DensityCritical
		data.WaitTime = "45-60 min"
		data.Status = "overcrowded"
	case data.OccupancyRate > 75:
		data.DensityLevel = models.DensityHigh
		data.WaitTime = "25-35 min"
		data.Status = "busy"
	case data.OccupancyRate > 50:
		data.DensityLevel = models.DensityMedium
		data.WaitTime = "10-20 min"
		data.Status = "moderate"
	default:
		data.DensityLevel = models.DensityLow
		data.WaitTime = "No wait"
		data.Status = "normal"
	}
}
