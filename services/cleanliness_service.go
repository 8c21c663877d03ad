package services

import (
	"time"

	"smartkumbh-http-service/config"
	"smartkumbh-http-service/models"
	"smartkumbh-http-service/storage"
)

// InterfaceCleanlinessService defines the cleanliness report service interface
type InterfaceCleanlinessService interface {
	GetAllReports() []*models.CleanlinessReport
	CreateReport(report *models.CleanlinessReport) *models.CleanlinessReport
	UpdateReport(id string, updates map[string]interface{}) (*models.CleanlinessReport, error)
}

// CleanlinessService provides facility feedback operations
type CleanlinessService struct {
	Store  *storage.Store
	Config *config.Config
	now    func() time.Time
}

// NewCleanlinessService creates a new cleanliness report service
func NewCleanlinessService(store *storage.Store, cfg *config.Config) InterfaceCleanlinessService {
	return &CleanlinessService{
		Store:  store,
		Config: cfg,
		now:    time.Now,
	}
}

// 1 GetAllReports returns all cleanliness reports
func (s *CleanlinessService) GetAllReports() []*models.CleanlinessReport {
	return s.Store.CleanlinessReports.List()
}

// 2 CreateReport creates a new report. The star rating was validated
// at the facade; it is not re-checked here or on later updates.
func (s *CleanlinessService) CreateReport(report *models.CleanlinessReport) *models.CleanlinessReport {
	return s.Store.CleanlinessReports.Create(report)
}

// 3 UpdateReport merges the given fields onto an existing report.
// Marking a report resolved stamps the resolution time.
func (s *CleanlinessService) UpdateReport(id string, updates map[string]interface{}) (*models.CleanlinessReport, error) {
	if resolved, ok := updates["isResolved"].(bool); ok && resolved {
		if _, set := updates["resolvedAt"]; !set {
			updates["resolvedAt"] = s.now().Format(time.RFC3339Nano)
		}
	}
	return s.Store.CleanlinessReports.Update(id, updates)
}
