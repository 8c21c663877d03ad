package services

import (
	"testing"

	"smartkumbh-http-service/config"
	"smartkumbh-http-service/models"
	"smartkumbh-http-service/storage"
)

func TestCreateCaseDefaultsToActive(t *testing.T) {
	store := storage.NewStore()
	svc := NewLostFoundService(store, &config.Config{})

	created := svc.CreateCase(&models.LostAndFoundCase{
		CaseType:    models.CaseMissingItem,
		Description: "Brown wallet",
		ContactInfo: "+91-9876500003",
	})
	if created.Status != models.CaseStatusActive {
		t.Errorf("status = %q, want active", created.Status)
	}
	if created.IsApproved {
		t.Error("new case should await approval")
	}
}

func TestUpdateCaseRejectsUnknownStatus(t *testing.T) {
	store := storage.NewStore()
	svc := NewLostFoundService(store, &config.Config{})

	created := svc.CreateCase(&models.LostAndFoundCase{
		CaseType:    models.CaseMissingItem,
		Description: "Keys",
		ContactInfo: "+91-9876500004",
	})

	_, err := svc.UpdateCase(created.ID, map[string]interface{}{"status": "vanished"})
	if err == nil {
		t.Fatal("expected an enum validation error")
	}

	got, _ := store.LostFoundCases.Get(created.ID)
	if got.Status != models.CaseStatusActive {
		t.Errorf("status = %q after rejected update", got.Status)
	}
}

func TestUpdateCaseTerminalStatusStampsResolution(t *testing.T) {
	store := storage.NewStore()
	svc := NewLostFoundService(store, &config.Config{})

	created := svc.CreateCase(&models.LostAndFoundCase{
		CaseType:    models.CaseFoundItem,
		Description: "Spectacles at booth 2",
		ContactInfo: "+91-9876500005",
	})

	updated, err := svc.UpdateCase(created.ID, map[string]interface{}{
		"status": models.CaseStatusClaimed,
	})
	if err != nil {
		t.Fatalf("UpdateCase: %v", err)
	}
	if updated.ResolvedAt == nil {
		t.Error("terminal status did not stamp resolvedAt")
	}
}

func TestUpdateCaseNonTerminalStatusLeavesResolutionUnset(t *testing.T) {
	store := storage.NewStore()
	svc := NewLostFoundService(store, &config.Config{})

	created := svc.CreateCase(&models.LostAndFoundCase{
		CaseType:    models.CaseMissingPerson,
		Description: "Child in yellow kurta",
		ContactInfo: "+91-9876500006",
	})

	updated, err := svc.UpdateCase(created.ID, map[string]interface{}{
		"lastSeenLocation": "Ram Ghat",
	})
	if err != nil {
		t.Fatalf("UpdateCase: %v", err)
	}
	if updated.ResolvedAt != nil {
		t.Errorf("resolvedAt stamped without a terminal status: %v", updated.ResolvedAt)
	}
}

func TestGetActiveCasesFiltersTerminal(t *testing.T) {
	store := storage.NewStore()
	svc := NewLostFoundService(store, &config.Config{})

	active := svc.CreateCase(&models.LostAndFoundCase{
		CaseType: models.CaseMissingItem, Description: "a", ContactInfo: "x",
	})
	done := svc.CreateCase(&models.LostAndFoundCase{
		CaseType: models.CaseMissingItem, Description: "b", ContactInfo: "y",
	})
	if _, err := svc.ResolveCase(done.ID); err != nil {
		t.Fatalf("ResolveCase: %v", err)
	}

	got := svc.GetActiveCases()
	if len(got) != 1 || got[0].ID != active.ID {
		t.Errorf("active cases = %+v", got)
	}
}
