package storage

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"smartkumbh-http-service/models"
)

func openTestMirror(t *testing.T) *MirrorStore {
	t.Helper()
	mirror, err := OpenMirror(filepath.Join(t.TempDir(), "mirror.db"))
	if err != nil {
		t.Fatalf("OpenMirror: %v", err)
	}
	return mirror
}

func TestMirrorAddGeneratesTimestampedID(t *testing.T) {
	mirror := openTestMirror(t)

	id, err := mirror.Add(ColHelpBooths, &models.HelpBooth{Name: "Ram Ghat Help Center"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if ok, _ := regexp.MatchString(`^\d+-\d{6}$`, id); !ok {
		t.Errorf("id = %q, want <unixmilli>-<6 digits>", id)
	}
}

func TestMirrorRoundTrip(t *testing.T) {
	mirror := openTestMirror(t)

	_, err := mirror.Add(ColHelpBooths, &models.HelpBooth{Name: "Ram Ghat Help Center", IsActive: true})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	rows, err := mirror.Get(ColHelpBooths)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("len = %d, want 1", len(rows))
	}

	var booth models.HelpBooth
	if err := json.Unmarshal(rows[0], &booth); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if booth.Name != "Ram Ghat Help Center" || !booth.IsActive {
		t.Errorf("round trip lost fields: %+v", booth)
	}
}

func TestMirrorCollectionsAreNamespaced(t *testing.T) {
	mirror := openTestMirror(t)

	if _, err := mirror.Add(ColHelpBooths, &models.HelpBooth{Name: "booth"}); err != nil {
		t.Fatalf("Add booth: %v", err)
	}
	if _, err := mirror.Add(ColUsers, &models.User{Name: "user"}); err != nil {
		t.Fatalf("Add user: %v", err)
	}

	booths, err := mirror.Get(ColHelpBooths)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(booths) != 1 {
		t.Errorf("booths = %d, want 1", len(booths))
	}
}

func TestMirrorUpdateUnknownIDReturnsNotFound(t *testing.T) {
	mirror := openTestMirror(t)

	err := mirror.Update(ColUsers, "missing", &models.User{Name: "x"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestMirrorDelete(t *testing.T) {
	mirror := openTestMirror(t)

	id, err := mirror.Add(ColUsers, &models.User{Name: "gone"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := mirror.Delete(ColUsers, id); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	rows, err := mirror.Get(ColUsers)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("len = %d after delete, want 0", len(rows))
	}
}

func TestMirrorPutUpserts(t *testing.T) {
	mirror := openTestMirror(t)

	if err := mirror.Put(ColUsers, "fixed-id", &models.User{Name: "v1"}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := mirror.Put(ColUsers, "fixed-id", &models.User{Name: "v2"}); err != nil {
		t.Fatalf("Put again: %v", err)
	}

	rows, err := mirror.Get(ColUsers)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("len = %d, want 1", len(rows))
	}
	var user models.User
	if err := json.Unmarshal(rows[0], &user); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if user.Name != "v2" {
		t.Errorf("name = %q, want v2", user.Name)
	}
}

func TestMirrorSubscribeDeliversSnapshots(t *testing.T) {
	mirror := openTestMirror(t)

	if _, err := mirror.Add(ColUsers, &models.User{Name: "one"}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	snapshots := make(chan int, 8)
	stop := mirror.Subscribe(ColUsers, 20*time.Millisecond, func(rows []json.RawMessage) {
		snapshots <- len(rows)
	})
	defer stop()

	select {
	case n := <-snapshots:
		if n != 1 {
			t.Errorf("snapshot size = %d, want 1", n)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no snapshot delivered")
	}
}
