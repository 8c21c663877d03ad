package services

import (
	"fmt"

	"smartkumbh-http-service/config"
	"smartkumbh-http-service/models"
	"smartkumbh-http-service/storage"
)

// InterfaceAlertService defines the safety alert service interface
type InterfaceAlertService interface {
	GetAllAlerts() []*models.SafetyAlert
	GetActiveAlerts() []*models.SafetyAlert
	CreateAlert(alert *models.SafetyAlert) *models.SafetyAlert
	UpdateAlert(id string, updates map[string]interface{}) (*models.SafetyAlert, error)
}

// AlertService provides safety alert operations
type AlertService struct {
	Store  *storage.Store
	Config *config.Config
}

// NewAlertService creates a new safety alert service
func NewAlertService(store *storage.Store, cfg *config.Config) InterfaceAlertService {
	return &AlertService{
		Store:  store,
		Config: cfg,
	}
}

// 1 GetAllAlerts returns all safety alerts
func (s *AlertService) GetAllAlerts() []*models.SafetyAlert {
	return s.Store.SafetyAlerts.List()
}

// 2 GetActiveAlerts returns only alerts still flagged active
func (s *AlertService) GetActiveAlerts() []*models.SafetyAlert {
	all := s.Store.SafetyAlerts.List()
	active := make([]*models.SafetyAlert, 0, len(all))
	for _, a := range all {
		if a.IsActive {
			active = append(active, a)
		}
	}
	return active
}

// 3 CreateAlert creates a new safety alert. The active flag defaults
// to true; the facade passes false only when the caller set it
// explicitly.
func (s *AlertService) CreateAlert(alert *models.SafetyAlert) *models.SafetyAlert {
	return s.Store.SafetyAlerts.Create(alert)
}

// 4 UpdateAlert merges the given fields onto an existing alert.
// Enumerated fields are re-validated when present in the patch.
func (s *AlertService) UpdateAlert(id string, updates map[string]interface{}) (*models.SafetyAlert, error) {
	if err := validateEnumUpdate(updates, "priority",
		models.PriorityLow, models.PriorityMedium, models.PriorityHigh, models.PriorityCritical); err != nil {
		return nil, err
	}
	return s.Store.SafetyAlerts.Update(id, updates)
}

// validateEnumUpdate checks an enumerated string field in a partial
// update, if the patch carries it. Create requests are validated by
// binding tags at the facade; partial updates arrive as loose maps and
// get this check instead.
func validateEnumUpdate(updates map[string]interface{}, field string, allowed ...string) error {
	raw, ok := updates[field]
	if !ok {
		return nil
	}
	value, ok := raw.(string)
	if !ok {
		return fmt.Errorf("field %q must be a string", field)
	}
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("field %q must be one of %v", field, allowed)
}
