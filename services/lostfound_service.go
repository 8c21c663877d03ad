package services

import (
	"strings"
	"time"

	"smartkumbh-http-service/config"
	"smartkumbh-http-service/models"
	"smartkumbh-http-service/storage"
)

// InterfaceLostFoundService defines the lost-and-found service interface
type InterfaceLostFoundService interface {
	GetAllCases() []*models.LostAndFoundCase
	GetActiveCases() []*models.LostAndFoundCase
	CreateCase(lfCase *models.LostAndFoundCase) *models.LostAndFoundCase
	UpdateCase(id string, updates map[string]interface{}) (*models.LostAndFoundCase, error)
	ResolveCase(id string) (*models.LostAndFoundCase, error)
}

// LostFoundService provides lost-and-found case operations
type LostFoundService struct {
	Store  *storage.Store
	Config *config.Config
	now    func() time.Time
}

// NewLostFoundService creates a new lost-and-found service
func NewLostFoundService(store *storage.Store, cfg *config.Config) InterfaceLostFoundService {
	return &LostFoundService{
		Store:  store,
		Config: cfg,
		now:    time.Now,
	}
}

// 1 GetAllCases returns all lost-and-found cases
func (s *LostFoundService) GetAllCases() []*models.LostAndFoundCase {
	return s.Store.LostFoundCases.List()
}

// 2 GetActiveCases returns cases still in the active state
func (s *LostFoundService) GetActiveCases() []*models.LostAndFoundCase {
	all := s.Store.LostFoundCases.List()
	active := make([]*models.LostAndFoundCase, 0, len(all))
	for _, c := range all {
		if c.Status == models.CaseStatusActive {
			active = append(active, c)
		}
	}
	return active
}

// 3 CreateCase creates a new case. Status defaults to active and
// approval defaults to false (a staff member approves it later).
func (s *LostFoundService) CreateCase(lfCase *models.LostAndFoundCase) *models.LostAndFoundCase {
	if lfCase.Status == "" {
		lfCase.Status = models.CaseStatusActive
	}
	return s.Store.LostFoundCases.Create(lfCase)
}

// 4 UpdateCase merges the given fields onto an existing case. A status
// change to a terminal state stamps the resolution time.
func (s *LostFoundService) UpdateCase(id string, updates map[string]interface{}) (*models.LostAndFoundCase, error) {
	if err := validateEnumUpdate(updates, "status",
		models.CaseStatusActive, models.CaseStatusFound, models.CaseStatusResolved,
		models.CaseStatusReunited, models.CaseStatusClaimed); err != nil {
		return nil, err
	}
	if status, ok := updates["status"].(string); ok && isTerminalStatus(status) {
		if _, set := updates["resolvedAt"]; !set {
			updates["resolvedAt"] = s.now().Format(time.RFC3339Nano)
		}
	}
	return s.Store.LostFoundCases.Update(id, updates)
}

// 5 ResolveCase moves an active case to its terminal state: reunited
// when the case type involves a person, claimed otherwise.
func (s *LostFoundService) ResolveCase(id string) (*models.LostAndFoundCase, error) {
	lfCase, err := s.Store.LostFoundCases.Get(id)
	if err != nil {
		return nil, err
	}
	status := models.CaseStatusClaimed
	if strings.Contains(lfCase.CaseType, "person") {
		status = models.CaseStatusReunited
	}
	return s.Store.LostFoundCases.Update(id, map[string]interface{}{
		"status":     status,
		"resolvedAt": s.now().Format(time.RFC3339Nano),
	})
}

func isTerminalStatus(status string) bool {
	switch status {
	case models.CaseStatusResolved, models.CaseStatusReunited, models.CaseStatusClaimed, models.CaseStatusFound:
		return true
	}
	return false
}
