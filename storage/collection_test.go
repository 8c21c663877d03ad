package storage

import (
	"errors"
	"testing"
	"time"

	"smartkumbh-http-service/models"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestCreateAssignsIdentity(t *testing.T) {
	now := time.Date(2027, 4, 12, 6, 0, 0, 0, time.UTC)
	store := NewStoreWithClock(fixedClock(now))

	user := store.Users.Create(&models.User{Name: "Ramesh Tiwari"})
	if user.ID == "" {
		t.Fatal("expected a generated id")
	}
	if !user.CreatedAt.Equal(now) {
		t.Errorf("createdAt = %v, want %v", user.CreatedAt, now)
	}

	got, err := store.Users.Get(user.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "Ramesh Tiwari" {
		t.Errorf("name = %q", got.Name)
	}
}

func TestGetUnknownIDReturnsNotFound(t *testing.T) {
	store := NewStore()
	_, err := store.Users.Get("nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestListPreservesInsertionOrder(t *testing.T) {
	store := NewStore()
	store.HelpBooths.Create(&models.HelpBooth{Name: "first"})
	store.HelpBooths.Create(&models.HelpBooth{Name: "second"})
	store.HelpBooths.Create(&models.HelpBooth{Name: "third"})

	got := store.HelpBooths.List()
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for i, want := range []string{"first", "second", "third"} {
		if got[i].Name != want {
			t.Errorf("got[%d].Name = %q, want %q", i, got[i].Name, want)
		}
	}
}

func TestUpdateMergesShallow(t *testing.T) {
	created := time.Date(2027, 4, 12, 6, 0, 0, 0, time.UTC)
	clock := created
	store := NewStoreWithClock(func() time.Time { return clock })

	alert := store.SafetyAlerts.Create(&models.SafetyAlert{
		Title:         "Water supply interruption",
		Message:       "Supply paused in sector 6.",
		Type:          "infrastructure",
		Priority:      models.PriorityMedium,
		AffectedAreas: []string{"Sector 6"},
		IsActive:      true,
	})

	clock = created.Add(10 * time.Minute)
	updated, err := store.SafetyAlerts.Update(alert.ID, map[string]interface{}{
		"isActive":      false,
		"affectedAreas": []interface{}{"Sector 6", "Sector 7"},
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if updated.IsActive {
		t.Error("isActive not updated")
	}
	// untouched fields survive the merge
	if updated.Title != "Water supply interruption" || updated.Priority != models.PriorityMedium {
		t.Errorf("untouched fields changed: %+v", updated)
	}
	// lists are replaced wholesale
	if len(updated.AffectedAreas) != 2 || updated.AffectedAreas[1] != "Sector 7" {
		t.Errorf("affectedAreas = %v", updated.AffectedAreas)
	}
	if !updated.CreatedAt.Equal(created) {
		t.Errorf("createdAt changed: %v", updated.CreatedAt)
	}
	if !updated.UpdatedAt.Equal(clock) {
		t.Errorf("updatedAt = %v, want %v", updated.UpdatedAt, clock)
	}
}

func TestUpdateProtectsIdentityFields(t *testing.T) {
	store := NewStore()
	user := store.Users.Create(&models.User{Name: "Asha"})

	updated, err := store.Users.Update(user.ID, map[string]interface{}{
		"id":        "forged",
		"createdAt": "2001-01-01T00:00:00Z",
		"name":      "Asha Devi",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.ID != user.ID {
		t.Errorf("id overwritten: %q", updated.ID)
	}
	if !updated.CreatedAt.Equal(user.CreatedAt) {
		t.Errorf("createdAt overwritten: %v", updated.CreatedAt)
	}
	if updated.Name != "Asha Devi" {
		t.Errorf("name = %q", updated.Name)
	}
}

func TestUpdateTypeMismatchLeavesRecordUntouched(t *testing.T) {
	store := NewStore()
	event := store.SpiritualEvents.Create(&models.SpiritualEvent{
		Name:     "Evening aarti",
		Capacity: 500,
	})

	_, err := store.SpiritualEvents.Update(event.ID, map[string]interface{}{
		"capacity": "lots",
	})
	if err == nil {
		t.Fatal("expected a merge error")
	}

	got, _ := store.SpiritualEvents.Get(event.ID)
	if got.Capacity != 500 {
		t.Errorf("capacity = %d after failed update, want 500", got.Capacity)
	}
}

func TestUpdateUnknownIDReturnsNotFound(t *testing.T) {
	store := NewStore()
	_, err := store.SafetyAlerts.Update("missing", map[string]interface{}{"isActive": false})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestReplaceKeepsIDAndCreationTime(t *testing.T) {
	created := time.Date(2027, 4, 12, 6, 0, 0, 0, time.UTC)
	clock := created
	store := NewStoreWithClock(func() time.Time { return clock })

	data := store.CrowdData.Create(&models.CrowdData{
		LocationName: "Ram Ghat",
		CrowdCount:   1000,
		Capacity:     6000,
	})

	clock = created.Add(time.Minute)
	replaced, err := store.CrowdData.Replace(data.ID, &models.CrowdData{
		LocationName: "Ram Ghat",
		CrowdCount:   4200,
		Capacity:     6000,
	})
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if replaced.ID != data.ID {
		t.Errorf("id = %q, want %q", replaced.ID, data.ID)
	}
	if !replaced.CreatedAt.Equal(created) {
		t.Errorf("createdAt = %v, want %v", replaced.CreatedAt, created)
	}
	if replaced.CrowdCount != 4200 {
		t.Errorf("crowdCount = %d", replaced.CrowdCount)
	}
	if store.CrowdData.Count() != 1 {
		t.Errorf("count = %d, want 1", store.CrowdData.Count())
	}
}

func TestHubNotifiesSubscriberOnMutation(t *testing.T) {
	store := NewStore()
	events, cancel := store.Hub.Subscribe(ColUsers)
	defer cancel()

	created := store.Users.Create(&models.User{Name: "Meena"})

	select {
	case ev := <-events:
		if ev.Collection != ColUsers {
			t.Errorf("collection = %q", ev.Collection)
		}
		user, ok := ev.Record.(*models.User)
		if !ok || user.ID != created.ID {
			t.Errorf("unexpected record %#v", ev.Record)
		}
	case <-time.After(time.Second):
		t.Fatal("no event received")
	}
}

func TestHubSubscriberOnlySeesItsCollection(t *testing.T) {
	store := NewStore()
	events, cancel := store.Hub.Subscribe(ColSafetyAlerts)
	defer cancel()

	store.Users.Create(&models.User{Name: "noise"})
	store.SafetyAlerts.Create(&models.SafetyAlert{Title: "signal"})

	select {
	case ev := <-events:
		if ev.Collection != ColSafetyAlerts {
			t.Errorf("leaked event for %q", ev.Collection)
		}
	case <-time.After(time.Second):
		t.Fatal("no event received")
	}
}
