package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"smartkumbh-http-service/config"
	"smartkumbh-http-service/internal/error/code"
	"smartkumbh-http-service/models"
	"smartkumbh-http-service/routes"
	"smartkumbh-http-service/storage"
)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T) (*gin.Engine, *storage.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := storage.NewStore()
	cfg := &config.Config{
		JWTSecretKey:         "test-secret",
		AdminUsername:        "admin",
		DefaultAdminPassword: "admin123",
		SeedMarkerPath:       filepath.Join(t.TempDir(), "seed_completed"),
	}
	r, _ := routes.SetupRouter(store, cfg)
	return r, store
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, token string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope (%s %s, status %d): %v\nbody: %s",
			method, path, w.Code, err, w.Body.String())
	}
	return w, env
}

func TestPing(t *testing.T) {
	r, _ := newTestRouter(t)
	w, env := doJSON(t, r, http.MethodGet, "/api/ping", nil, "")
	if w.Code != http.StatusOK || env.Code != code.ErrSuccess {
		t.Fatalf("status %d, code %d", w.Code, env.Code)
	}
}

func TestCreateAndListAlerts(t *testing.T) {
	r, store := newTestRouter(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/safety-alerts", gin.H{
		"title":    "Heavy rain expected",
		"message":  "Move to covered areas near gate 2.",
		"type":     "weather",
		"priority": "high",
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}

	var alert models.SafetyAlert
	if err := json.Unmarshal(env.Data, &alert); err != nil {
		t.Fatalf("decode alert: %v", err)
	}
	if alert.ID == "" {
		t.Error("no id assigned")
	}
	if !alert.IsActive {
		t.Error("isActive should default to true")
	}

	if n := store.SafetyAlerts.Count(); n != 1 {
		t.Errorf("stored alerts = %d, want 1", n)
	}

	w, env = doJSON(t, r, http.MethodGet, "/api/safety-alerts", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("list status %d", w.Code)
	}
	var list []models.SafetyAlert
	if err := json.Unmarshal(env.Data, &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 1 || list[0].Title != "Heavy rain expected" {
		t.Errorf("list = %+v", list)
	}
}

func TestCreateAlertMissingTitleIsRejected(t *testing.T) {
	r, store := newTestRouter(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/safety-alerts", gin.H{
		"message":  "No title on this one.",
		"type":     "weather",
		"priority": "low",
	}, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", w.Code)
	}
	if env.Code != code.ErrValidation {
		t.Errorf("code = %d, want %d", env.Code, code.ErrValidation)
	}

	var details struct {
		Fields []struct {
			Field  string `json:"field"`
			Reason string `json:"reason"`
		} `json:"fields"`
	}
	if err := json.Unmarshal(env.Data, &details); err != nil {
		t.Fatalf("decode fields: %v", err)
	}
	found := false
	for _, f := range details.Fields {
		if f.Field == "title" {
			found = true
		}
	}
	if !found {
		t.Errorf("field list does not name title: %+v", details.Fields)
	}

	if n := store.SafetyAlerts.Count(); n != 0 {
		t.Errorf("rejected request created %d records", n)
	}
}

func TestCreateAlertInvalidEnum(t *testing.T) {
	r, _ := newTestRouter(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/safety-alerts", gin.H{
		"title":    "Bad priority",
		"message":  "x",
		"type":     "weather",
		"priority": "urgent",
	}, "")
	if w.Code != http.StatusBadRequest || env.Code != code.ErrValidation {
		t.Fatalf("status %d code %d, want 400/%d", w.Code, env.Code, code.ErrValidation)
	}
}

func TestPatchAlertDeactivates(t *testing.T) {
	r, store := newTestRouter(t)

	_, env := doJSON(t, r, http.MethodPost, "/api/safety-alerts", gin.H{
		"title":    "Crowd surge at gate 4",
		"message":  "Avoid gate 4 for the next hour.",
		"type":     "crowd",
		"priority": "critical",
	}, "")
	var created models.SafetyAlert
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	w, env := doJSON(t, r, http.MethodPatch, "/api/safety-alerts/"+created.ID, gin.H{
		"isActive": false,
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}

	var updated models.SafetyAlert
	if err := json.Unmarshal(env.Data, &updated); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if updated.IsActive {
		t.Error("alert still active after patch")
	}
	// untouched fields survive
	if updated.Title != created.Title || updated.Priority != created.Priority {
		t.Errorf("patch clobbered fields: %+v", updated)
	}

	stored, err := store.SafetyAlerts.Get(created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored.IsActive {
		t.Error("store still has the alert active")
	}
}

func TestPatchAlertUnknownIDReturns404(t *testing.T) {
	r, _ := newTestRouter(t)

	w, env := doJSON(t, r, http.MethodPatch, "/api/safety-alerts/no-such-id", gin.H{
		"isActive": false,
	}, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", w.Code)
	}
	if env.Code != code.ErrRecordNotFound {
		t.Errorf("code = %d, want %d", env.Code, code.ErrRecordNotFound)
	}
}

func TestCreateUserAssignsQRID(t *testing.T) {
	r, _ := newTestRouter(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/users", gin.H{
		"name":  "Sunita Sharma",
		"phone": "+91-9876500010",
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}

	var user models.User
	if err := json.Unmarshal(env.Data, &user); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(user.QRID) != 12 || user.QRID[:4] != "KMB-" {
		t.Errorf("qrId = %q, want KMB- plus 8 characters", user.QRID)
	}
	if user.Role != models.RolePilgrim {
		t.Errorf("role = %q, want pilgrim", user.Role)
	}
}

func TestPatchUserRequiresAdminToken(t *testing.T) {
	r, _ := newTestRouter(t)

	_, env := doJSON(t, r, http.MethodPost, "/api/users", gin.H{"name": "Blockable"}, "")
	var user models.User
	if err := json.Unmarshal(env.Data, &user); err != nil {
		t.Fatalf("decode: %v", err)
	}

	// without a token
	w, _ := doJSON(t, r, http.MethodPatch, "/api/users/"+user.ID, gin.H{"isBlocked": true}, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status %d without token, want 401", w.Code)
	}

	// log in and retry
	_, env = doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"username": "admin",
		"password": "admin123",
	}, "")
	var login struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &login); err != nil || login.Token == "" {
		t.Fatalf("no token in login response: %s", env.Data)
	}

	w, env = doJSON(t, r, http.MethodPatch, "/api/users/"+user.ID, gin.H{"isBlocked": true}, login.Token)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d with token: %s", w.Code, w.Body.String())
	}
	var updated models.User
	if err := json.Unmarshal(env.Data, &updated); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !updated.IsBlocked {
		t.Error("user not blocked after patch")
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	r, _ := newTestRouter(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"username": "admin",
		"password": "wrong",
	}, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status %d, want 401", w.Code)
	}
	if env.Code != code.ErrUserPasswordIncorrect {
		t.Errorf("code = %d, want %d", env.Code, code.ErrUserPasswordIncorrect)
	}
}

func TestCleanlinessPatchStampsResolution(t *testing.T) {
	r, _ := newTestRouter(t)

	_, env := doJSON(t, r, http.MethodPost, "/api/cleanliness-reports", gin.H{
		"location":     "Ram Ghat toilet block A",
		"facilityType": "toilet",
		"rating":       2,
	}, "")
	var report models.CleanlinessReport
	if err := json.Unmarshal(env.Data, &report); err != nil {
		t.Fatalf("decode: %v", err)
	}

	w, env := doJSON(t, r, http.MethodPatch, "/api/cleanliness-reports/"+report.ID, gin.H{
		"isResolved":    true,
		"assignedStaff": "Cleaning crew 4",
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	var resolved models.CleanlinessReport
	if err := json.Unmarshal(env.Data, &resolved); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resolved.IsResolved || resolved.ResolvedAt == nil {
		t.Errorf("resolution not stamped: %+v", resolved)
	}
}

func TestCleanlinessRatingOutOfRange(t *testing.T) {
	r, _ := newTestRouter(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/cleanliness-reports", gin.H{
		"location":     "Ghat steps",
		"facilityType": "ghat",
		"rating":       9,
	}, "")
	if w.Code != http.StatusBadRequest || env.Code != code.ErrValidation {
		t.Fatalf("status %d code %d, want 400/%d", w.Code, env.Code, code.ErrValidation)
	}
}

func TestPatchHelpBoothTogglesActive(t *testing.T) {
	r, _ := newTestRouter(t)

	_, env := doJSON(t, r, http.MethodPost, "/api/help-booths", gin.H{
		"name":     "Triveni Ghat Booth",
		"location": "Triveni Ghat east gate",
		"services": []string{"lost_found"},
	}, "")
	var booth models.HelpBooth
	if err := json.Unmarshal(env.Data, &booth); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !booth.IsActive {
		t.Fatalf("new booth should default to active")
	}

	w, env := doJSON(t, r, http.MethodPatch, "/api/help-booths/"+booth.ID, gin.H{
		"isActive": false,
		"staff":    []string{"Volunteer 12"},
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	var updated models.HelpBooth
	if err := json.Unmarshal(env.Data, &updated); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if updated.IsActive {
		t.Errorf("booth still active after patch")
	}
	if len(updated.Staff) != 1 || updated.Staff[0] != "Volunteer 12" {
		t.Errorf("staff list not replaced: %v", updated.Staff)
	}

	w, _ = doJSON(t, r, http.MethodPatch, "/api/help-booths/missing", gin.H{"isActive": true}, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown booth id: status %d, want 404", w.Code)
	}
}

func TestChatAskFallsBackToTemplates(t *testing.T) {
	r, store := newTestRouter(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/chat/ask", gin.H{
		"question": "Where is the nearest help booth?",
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}

	var msg models.ChatMessage
	if err := json.Unmarshal(env.Data, &msg); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if msg.Response == "" {
		t.Error("empty assistant response")
	}
	if n := store.ChatMessages.Count(); n != 1 {
		t.Errorf("chat log has %d messages, want 1", n)
	}
}

func adminToken(t *testing.T, r *gin.Engine) string {
	t.Helper()
	_, env := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"username": "admin",
		"password": "admin123",
	}, "")
	var login struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &login); err != nil || login.Token == "" {
		t.Fatalf("no token in login response: %s", env.Data)
	}
	return login.Token
}

func TestBroadcastSMSCountsReachableUsers(t *testing.T) {
	r, _ := newTestRouter(t)
	token := adminToken(t, r)

	doJSON(t, r, http.MethodPost, "/api/users", gin.H{"name": "Reachable", "phone": "+91-9000000001"}, "")
	doJSON(t, r, http.MethodPost, "/api/users", gin.H{"name": "No phone"}, "")

	w, env := doJSON(t, r, http.MethodPost, "/api/emergency/broadcast-sms", gin.H{
		"message": "Test broadcast",
		"area":    "Ram Ghat",
	}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	var result struct {
		Recipients int `json:"recipients"`
	}
	if err := json.Unmarshal(env.Data, &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Recipients != 1 {
		t.Errorf("recipients = %d, want 1", result.Recipients)
	}
}

func TestActivateEvacuationCreatesCriticalAlert(t *testing.T) {
	r, store := newTestRouter(t)
	token := adminToken(t, r)

	w, env := doJSON(t, r, http.MethodPost, "/api/emergency/activate-evacuation", gin.H{
		"zone":   "Sector 7",
		"reason": "Footbridge damage",
	}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}

	var alert models.SafetyAlert
	if err := json.Unmarshal(env.Data, &alert); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if alert.Priority != models.PriorityCritical || !alert.IsActive {
		t.Errorf("alert = %+v, want active critical", alert)
	}
	if n := store.SafetyAlerts.Count(); n != 1 {
		t.Errorf("stored alerts = %d, want 1", n)
	}
}

func TestEmergencyRequiresToken(t *testing.T) {
	r, _ := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/emergency/broadcast-sms", gin.H{
		"message": "unauthorized",
	}, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status %d, want 401", w.Code)
	}
}

func TestDashboardStats(t *testing.T) {
	r, _ := newTestRouter(t)

	doJSON(t, r, http.MethodPost, "/api/users", gin.H{"name": "Counted"}, "")

	w, env := doJSON(t, r, http.MethodGet, "/api/dashboard/stats", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	var stats struct {
		TotalUsers int `json:"totalUsers"`
	}
	if err := json.Unmarshal(env.Data, &stats); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if stats.TotalUsers != 1 {
		t.Errorf("totalUsers = %d, want 1", stats.TotalUsers)
	}
}
