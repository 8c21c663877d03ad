package services

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-redis/redis/v8"

	"smartkumbh-http-service/config"
	"smartkumbh-http-service/models"
	"smartkumbh-http-service/storage"
)

// SeedMarkerKey is the stable key of the already-seeded marker.
const SeedMarkerKey = "smartkumbh:seed_completed"

// SeedMarker is the persisted already-seeded flag. Redis-backed when
// Redis is configured, a local marker file otherwise.
type SeedMarker interface {
	IsSet() (bool, error)
	Set() error
}

// InterfaceSeedService defines the demo data seeder interface
type InterfaceSeedService interface {
	Seed() error
}

// SeedService populates the store with the demo catalogue exactly once
// per environment lifetime. The marker is only written after every
// category succeeds; a mid-seed failure leaves it unset so the seed
// can be retried, and already-written categories are NOT rolled back.
// A retry after partial failure therefore duplicates completed
// categories; this inconsistency window is accepted for demo data.
type SeedService struct {
	Store       *storage.Store
	Config      *config.Config
	Marker      SeedMarker
	Users       InterfaceUserService
	Crowd       InterfaceCrowdService
	Events      InterfaceEventService
	Alerts      InterfaceAlertService
	LostFound   InterfaceLostFoundService
	Cleanliness InterfaceCleanlinessService
	Booths      InterfaceHelpBoothService
	now         func() time.Time
}

// NewSeedService creates a new seed service
func NewSeedService(
	store *storage.Store,
	cfg *config.Config,
	marker SeedMarker,
	users InterfaceUserService,
	crowd InterfaceCrowdService,
	events InterfaceEventService,
	alerts InterfaceAlertService,
	lostFound InterfaceLostFoundService,
	cleanliness InterfaceCleanlinessService,
	booths InterfaceHelpBoothService,
) InterfaceSeedService {
	return &SeedService{
		Store:       store,
		Config:      cfg,
		Marker:      marker,
		Users:       users,
		Crowd:       crowd,
		Events:      events,
		Alerts:      alerts,
		LostFound:   lostFound,
		Cleanliness: cleanliness,
		Booths:      booths,
		now:         time.Now,
	}
}

// Seed loads every fixture category in a fixed order. The order only
// matters for log readability; the categories are independent.
func (s *SeedService) Seed() error {
	seeded, err := s.Marker.IsSet()
	if err != nil {
		return fmt.Errorf("check seed marker: %w", err)
	}
	if seeded {
		config.Info("demo data already seeded, skipping")
		return nil
	}

	categories := []struct {
		name string
		load func() (int, error)
	}{
		{"users", s.loadUsers},
		{"crowd data", s.loadCrowdData},
		{"spiritual events", s.loadEvents},
		{"safety alerts", s.loadAlerts},
		{"lost and found", s.loadLostFound},
		{"cleanliness reports", s.loadCleanliness},
		{"help booths", s.loadHelpBooths},
	}

	for _, cat := range categories {
		n, err := cat.load()
		if err != nil {
			return fmt.Errorf("seed %s: %w", cat.name, err)
		}
		config.Info("seeded %d %s", n, cat.name)
	}

	if err := s.Marker.Set(); err != nil {
		return fmt.Errorf("set seed marker: %w", err)
	}
	config.Info("demo data seeding complete")
	return nil
}

func (s *SeedService) loadUsers() (int, error) {
	users := seedUsers()
	for _, u := range users {
		s.Users.CreateUser(u)
	}
	return len(users), nil
}

func (s *SeedService) loadCrowdData() (int, error) {
	for _, b := range crowdBaselines {
		s.Crowd.CreateCrowdData(&models.CrowdData{
			LocationName: b.LocationName,
			Latitude:     b.Latitude,
			Longitude:    b.Longitude,
			CrowdCount:   b.BaseCount,
			Capacity:     b.Capacity(),
		})
	}
	return len(crowdBaselines), nil
}

func (s *SeedService) loadEvents() (int, error) {
	events := seedEvents(s.now())
	for _, e := range events {
		s.Events.CreateEvent(e)
	}
	return len(events), nil
}

func (s *SeedService) loadAlerts() (int, error) {
	alerts := seedAlerts()
	for _, a := range alerts {
		s.Alerts.CreateAlert(a)
	}
	return len(alerts), nil
}

func (s *SeedService) loadLostFound() (int, error) {
	cases := seedLostFound(s.now())
	for _, c := range cases {
		s.LostFound.CreateCase(c)
	}
	return len(cases), nil
}

func (s *SeedService) loadCleanliness() (int, error) {
	reports := seedCleanlinessReports()
	for _, r := range reports {
		s.Cleanliness.CreateReport(r)
	}
	return len(reports), nil
}

func (s *SeedService) loadHelpBooths() (int, error) {
	booths := seedHelpBooths()
	for _, b := range booths {
		s.Booths.CreateBooth(b)
	}
	return len(booths), nil
}

// FileSeedMarker persists the seeded flag as a file on disk.
type FileSeedMarker struct {
	Path string
}

// IsSet reports whether the marker file exists
func (m *FileSeedMarker) IsSet() (bool, error) {
	_, err := os.Stat(m.Path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Set creates the marker file
func (m *FileSeedMarker) Set() error {
	if err := os.MkdirAll(filepath.Dir(m.Path), 0755); err != nil {
		return err
	}
	return os.WriteFile(m.Path, []byte(time.Now().Format(time.RFC3339)+"\n"), 0644)
}

// RedisSeedMarker persists the seeded flag in Redis.
type RedisSeedMarker struct {
	Redis InterfaceRedisService
}

// IsSet reports whether the marker key exists
func (m *RedisSeedMarker) IsSet() (bool, error) {
	ok, err := m.Redis.Exists(SeedMarkerKey)
	if err != nil && err != redis.Nil {
		return false, err
	}
	return ok, nil
}

// Set writes the marker key without expiry
func (m *RedisSeedMarker) Set() error {
	return m.Redis.SetFlag(SeedMarkerKey)
}
