package services

import (
	"errors"
	"testing"

	"smartkumbh-http-service/config"
	"smartkumbh-http-service/models"
	"smartkumbh-http-service/storage"
)

func TestDeriveCrowdMetricsBands(t *testing.T) {
	tests := []struct {
		name      string
		count     int
		capacity  int
		occupancy int
		density   string
		waitTime  string
		status    string
	}{
		{"empty", 0, 1000, 0, models.DensityLow, "No wait", "normal"},
		{"exactly 50 stays low", 500, 1000, 50, models.DensityLow, "No wait", "normal"},
		{"just over 50 is medium", 510, 1000, 51, models.DensityMedium, "10-20 min", "moderate"},
		{"exactly 75 stays medium", 750, 1000, 75, models.DensityMedium, "10-20 min", "moderate"},
		{"just over 75 is high", 760, 1000, 76, models.DensityHigh, "25-35 min", "busy"},
		{"exactly 90 stays high", 900, 1000, 90, models.DensityHigh, "25-35 min", "busy"},
		{"just over 90 is critical", 910, 1000, 91, models.DensityCritical, "45-60 min", "overcrowded"},
		{"over capacity is critical", 1200, 1000, 120, models.DensityCritical, "45-60 min", "overcrowded"},
		{"zero capacity reads empty", 500, 0, 0, models.DensityLow, "No wait", "normal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := &models.CrowdData{CrowdCount: tt.count, Capacity: tt.capacity}
			DeriveCrowdMetrics(data)

			if data.OccupancyRate != tt.occupancy {
				t.Errorf("occupancyRate = %d, want %d", data.OccupancyRate, tt.occupancy)
			}
			if data.DensityLevel != tt.density {
				t.Errorf("densityLevel = %q, want %q", data.DensityLevel, tt.density)
			}
			if data.WaitTime != tt.waitTime {
				t.Errorf("waitTime = %q, want %q", data.WaitTime, tt.waitTime)
			}
			if data.Status != tt.status {
				t.Errorf("status = %q, want %q", data.Status, tt.status)
			}
		})
	}
}

func TestDeriveCrowdMetricsRoundsOccupancy(t *testing.T) {
	// 505/1000 rounds to 51, not truncates to 50
	data := &models.CrowdData{CrowdCount: 505, Capacity: 1000}
	DeriveCrowdMetrics(data)
	if data.OccupancyRate != 51 {
		t.Errorf("occupancyRate = %d, want 51", data.OccupancyRate)
	}
}

func TestCreateCrowdDataDerivesFields(t *testing.T) {
	store := storage.NewStore()
	svc := NewCrowdService(store, &config.Config{})

	data := svc.CreateCrowdData(&models.CrowdData{
		LocationName: "Ram Ghat",
		CrowdCount:   4800,
		Capacity:     6000,
	})

	if data.OccupancyRate != 80 || data.DensityLevel != models.DensityHigh {
		t.Errorf("derived = %d%%/%s, want 80%%/high", data.OccupancyRate, data.DensityLevel)
	}
	if data.ID == "" {
		t.Error("expected an id")
	}
}

func TestRefreshReadingReplacesKeepingIdentityAndCapacity(t *testing.T) {
	store := storage.NewStore()
	svc := NewCrowdService(store, &config.Config{})

	seeded := svc.CreateCrowdData(&models.CrowdData{
		LocationName: "Mahakaleshwar Temple",
		CrowdCount:   1000,
		Capacity:     8000,
	})

	refreshed, err := svc.RefreshReading("Mahakaleshwar Temple", 7500)
	if err != nil {
		t.Fatalf("RefreshReading: %v", err)
	}

	if refreshed.ID != seeded.ID {
		t.Errorf("id changed: %q -> %q", seeded.ID, refreshed.ID)
	}
	if refreshed.Capacity != 8000 {
		t.Errorf("capacity = %d, want 8000", refreshed.Capacity)
	}
	if refreshed.CrowdCount != 7500 {
		t.Errorf("crowdCount = %d, want 7500", refreshed.CrowdCount)
	}
	if refreshed.DensityLevel != models.DensityCritical {
		t.Errorf("densityLevel = %q, want critical", refreshed.DensityLevel)
	}
	if store.CrowdData.Count() != 1 {
		t.Errorf("count = %d, want 1", store.CrowdData.Count())
	}
}

func TestRefreshReadingUnknownLocation(t *testing.T) {
	store := storage.NewStore()
	svc := NewCrowdService(store, &config.Config{})

	_, err := svc.RefreshReading("Nowhere Ghat", 100)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if store.CrowdData.Count() != 0 {
		t.Errorf("refresh upserted a record for an unknown location")
	}
}
