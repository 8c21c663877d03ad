package services

import (
	"smartkumbh-http-service/config"
	"smartkumbh-http-service/models"
	"smartkumbh-http-service/storage"
)

// InterfaceHelpBoothService defines the help booth service interface
type InterfaceHelpBoothService interface {
	GetAllBooths() []*models.HelpBooth
	CreateBooth(booth *models.HelpBooth) *models.HelpBooth
	UpdateBooth(id string, updates map[string]interface{}) (*models.HelpBooth, error)
}

// HelpBoothService provides help booth operations
type HelpBoothService struct {
	Store  *storage.Store
	Config *config.Config
}

// NewHelpBoothService creates a new help booth service
func NewHelpBoothService(store *storage.Store, cfg *config.Config) InterfaceHelpBoothService {
	return &HelpBoothService{
		Store:  store,
		Config: cfg,
	}
}

// 1 GetAllBooths returns all help booths
func (s *HelpBoothService) GetAllBooths() []*models.HelpBooth {
	return s.Store.HelpBooths.List()
}

// 2 CreateBooth creates a new help booth. A booth with no services
// listed still stores an empty list rather than null.
func (s *HelpBoothService) CreateBooth(booth *models.HelpBooth) *models.HelpBooth {
	if booth.Services == nil {
		booth.Services = []string{}
	}
	return s.Store.HelpBooths.Create(booth)
}

// 3 UpdateBooth merges the given fields onto an existing booth. The
// staff and services lists are replaced wholesale, never appended.
func (s *HelpBoothService) UpdateBooth(id string, updates map[string]interface{}) (*models.HelpBooth, error) {
	return s.Store.HelpBooths.Update(id, updates)
}
