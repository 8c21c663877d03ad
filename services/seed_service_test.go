package services

import (
	"path/filepath"
	"testing"

	"smartkumbh-http-service/config"
	"smartkumbh-http-service/storage"
)

// memoryMarker is an in-process seed marker for tests.
type memoryMarker struct {
	set bool
}

func (m *memoryMarker) IsSet() (bool, error) { return m.set, nil }
func (m *memoryMarker) Set() error           { m.set = true; return nil }

func newTestSeedService(store *storage.Store, marker SeedMarker) InterfaceSeedService {
	cfg := &config.Config{}
	users := NewUserService(store, cfg)
	crowd := NewCrowdService(store, cfg)
	events := NewEventService(store, cfg)
	alerts := NewAlertService(store, cfg)
	lost := NewLostFoundService(store, cfg)
	cleanliness := NewCleanlinessService(store, cfg)
	booths := NewHelpBoothService(store, cfg)
	return NewSeedService(store, cfg, marker, users, crowd, events, alerts, lost, cleanliness, booths)
}

func TestSeedLoadsEveryCategory(t *testing.T) {
	store := storage.NewStore()
	marker := &memoryMarker{}

	if err := newTestSeedService(store, marker).Seed(); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	counts := []struct {
		name string
		got  int
		want int
	}{
		{"users", store.Users.Count(), 5},
		{"crowd data", store.CrowdData.Count(), 10},
		{"events", store.SpiritualEvents.Count(), 5},
		{"alerts", store.SafetyAlerts.Count(), 5},
		{"lost and found", store.LostFoundCases.Count(), 5},
		{"cleanliness reports", store.CleanlinessReports.Count(), 5},
		{"help booths", store.HelpBooths.Count(), 5},
	}
	for _, c := range counts {
		if c.got != c.want {
			t.Errorf("%s = %d, want %d", c.name, c.got, c.want)
		}
	}

	if !marker.set {
		t.Error("marker not set after successful seed")
	}
}

func TestSeedCrowdRecordsHaveDerivedFields(t *testing.T) {
	store := storage.NewStore()
	if err := newTestSeedService(store, &memoryMarker{}).Seed(); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	for _, data := range store.CrowdData.List() {
		if data.DensityLevel == "" || data.WaitTime == "" || data.Status == "" {
			t.Errorf("location %q missing derived fields: %+v", data.LocationName, data)
		}
		if data.Capacity <= 0 {
			t.Errorf("location %q has no capacity", data.LocationName)
		}
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	store := storage.NewStore()
	marker := &memoryMarker{}
	svc := newTestSeedService(store, marker)

	if err := svc.Seed(); err != nil {
		t.Fatalf("first Seed: %v", err)
	}
	if err := svc.Seed(); err != nil {
		t.Fatalf("second Seed: %v", err)
	}

	if n := store.Users.Count(); n != 5 {
		t.Errorf("users = %d after reseed, want 5", n)
	}
	if n := store.CrowdData.Count(); n != 10 {
		t.Errorf("crowd data = %d after reseed, want 10", n)
	}
}

func TestSeedSkipsWhenMarkerAlreadySet(t *testing.T) {
	store := storage.NewStore()
	marker := &memoryMarker{set: true}

	if err := newTestSeedService(store, marker).Seed(); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if n := store.Users.Count(); n != 0 {
		t.Errorf("users = %d with marker pre-set, want 0", n)
	}
}

func TestFileSeedMarker(t *testing.T) {
	marker := &FileSeedMarker{Path: filepath.Join(t.TempDir(), "seed_completed")}

	set, err := marker.IsSet()
	if err != nil {
		t.Fatalf("IsSet: %v", err)
	}
	if set {
		t.Fatal("fresh marker reads as set")
	}

	if err := marker.Set(); err != nil {
		t.Fatalf("Set: %v", err)
	}
	set, err = marker.IsSet()
	if err != nil {
		t.Fatalf("IsSet after Set: %v", err)
	}
	if !set {
		t.Error("marker not set after Set")
	}
}
