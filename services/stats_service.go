package services

import (
	"time"

	"smartkumbh-http-service/config"
	"smartkumbh-http-service/models"
	"smartkumbh-http-service/storage"
)

const statsCacheKey = "smartkumbh:dashboard:stats"

// DashboardStats is the aggregate counters block for the admin
// dashboard.
type DashboardStats struct {
	TotalUsers   int `json:"totalUsers"`
	ActiveUsers  int `json:"activeUsers"` // non-blocked users
	ActiveCases  int `json:"activeCases"`
	ActiveAlerts int `json:"activeAlerts"`
}

// InterfaceStatsService defines the dashboard stats interface
type InterfaceStatsService interface {
	GetDashboardStats() DashboardStats
}

// StatsService computes dashboard aggregates, with a short-TTL Redis
// cache in front when Redis is configured. The TTL is short enough
// that the simulation's writes show up within seconds.
type StatsService struct {
	Store  *storage.Store
	Config *config.Config
	Redis  InterfaceRedisService // nil when Redis is not configured
}

// NewStatsService creates a new stats service
func NewStatsService(store *storage.Store, cfg *config.Config, redisService InterfaceRedisService) InterfaceStatsService {
	return &StatsService{
		Store:  store,
		Config: cfg,
		Redis:  redisService,
	}
}

// GetDashboardStats returns the aggregate counts
func (s *StatsService) GetDashboardStats() DashboardStats {
	if s.Redis != nil {
		var cached DashboardStats
		if err := s.Redis.Get(statsCacheKey, &cached); err == nil {
			return cached
		}
	}

	stats := s.compute()

	if s.Redis != nil {
		if err := s.Redis.Set(statsCacheKey, stats, 15*time.Second); err != nil {
			config.Warning("cache dashboard stats: %v", err)
		}
	}
	return stats
}

func (s *StatsService) compute() DashboardStats {
	var stats DashboardStats

	users := s.Store.Users.List()
	stats.TotalUsers = len(users)
	for _, u := range users {
		if !u.IsBlocked {
			stats.ActiveUsers++
		}
	}

	for _, c := range s.Store.LostFoundCases.List() {
		if c.Status == models.CaseStatusActive {
			stats.ActiveCases++
		}
	}

	for _, a := range s.Store.SafetyAlerts.List() {
		if a.IsActive {
			stats.ActiveAlerts++
		}
	}

	return stats
}
