package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/SANTHOSHG-WEB/disaster/internal/cache"
	"github.com/SANTHOSHG-WEB/disaster/internal/domain"
	"github.com/SANTHOSHG-WEB/disaster/internal/handler"
	"github.com/SANTHOSHG-WEB/disaster/internal/repository/memory"
	"github.com/SANTHOSHG-WEB/disaster/internal/service"
)

const testJWTSecret = "test-secret-key-for-handler-tests"

type testEnv struct {
	srv      *httptest.Server
	client   *http.Client
	remote   *memory.ProgressStore
	sessions *service.SessionManager
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	local, err := cache.NewJSONStore(filepath.Join(t.TempDir(), "cache.json"))
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	remote := memory.NewProgressStore()

	auth := service.NewAuthService(memory.NewUserRepository(), testJWTSecret, 4)
	sessions := service.NewSessionManager(local, remote)
	contacts := service.NewContactService(memory.NewEmergencyContactRepository())
	shelters := service.NewShelterService(memory.NewShelterRepository())
	if err := shelters.SeedPredefined(context.Background()); err != nil {
		t.Fatalf("seed shelters: %v", err)
	}
	certificates := service.NewCertificateService(memory.NewCertificateRepository(), sessions)
	alerts := service.NewStaticAlertProvider()
	alerts.Set("tamil-nadu", []domain.WeatherAlert{
		{Region: "tamil-nadu", Event: "Cyclone", Severity: domain.AlertSeverityWarning},
	})

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, auth, sessions, contacts, shelters, certificates, alerts, "tamil-nadu", false)

	srv := httptest.NewServer(handler.SecurityHeaders(mux))
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("create cookie jar: %v", err)
	}

	return &testEnv{
		srv:      srv,
		client:   &http.Client{Jar: jar},
		remote:   remote,
		sessions: sessions,
	}
}

// doJSON issues a request with a JSON body and decodes the JSON response
// into out (when out is non-nil). It returns the status code.
func (e *testEnv) doJSON(t *testing.T, method, path string, body, out any) int {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}

	req, err := http.NewRequest(method, e.srv.URL+path, &buf)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s %s response: %v", method, path, err)
		}
	}
	return resp.StatusCode
}

// signUp registers and logs in a fresh user, returning their ID.
func (e *testEnv) signUp(t *testing.T, email string) string {
	t.Helper()

	creds := map[string]string{
		"email":           email,
		"displayName":     "Test User",
		"password":        "password123",
		"confirmPassword": "password123",
	}
	var registered struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	if status := e.doJSON(t, http.MethodPost, "/api/auth/register", creds, &registered); status != http.StatusCreated {
		t.Fatalf("register: status %d", status)
	}

	login := map[string]string{"email": email, "password": "password123"}
	if status := e.doJSON(t, http.MethodPost, "/api/auth/login", login, nil); status != http.StatusOK {
		t.Fatalf("login: status %d", status)
	}
	return registered.User.ID
}

type progressResponse struct {
	Progress   domain.UserProgress `json:"progress"`
	SyncStatus string              `json:"syncStatus"`
}

func TestIntegration_AuthFlow(t *testing.T) {
	env := newTestEnv(t)

	env.signUp(t, "flow@example.com")

	var me struct {
		User struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	if status := env.doJSON(t, http.MethodGet, "/api/auth/me", nil, &me); status != http.StatusOK {
		t.Fatalf("me: status %d", status)
	}
	if me.User.Email != "flow@example.com" {
		t.Fatalf("me returned %q", me.User.Email)
	}

	req, _ := http.NewRequest(http.MethodPost, env.srv.URL+"/api/auth/logout", nil)
	resp, err := env.client.Do(req)
	if err != nil {
		t.Fatalf("logout: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("logout: status %d", resp.StatusCode)
	}

	if status := env.doJSON(t, http.MethodGet, "/api/auth/me", nil, nil); status != http.StatusUnauthorized {
		t.Fatalf("me after logout: status %d, want 401", status)
	}
}

func TestIntegration_ProgressLifecycle(t *testing.T) {
	env := newTestEnv(t)
	env.signUp(t, "learner@example.com")

	// Fresh account starts with empty progress.
	var initial progressResponse
	if status := env.doJSON(t, http.MethodGet, "/api/progress", nil, &initial); status != http.StatusOK {
		t.Fatalf("get progress: status %d", status)
	}
	if len(initial.Progress.Modules) != 0 {
		t.Fatalf("fresh account has progress: %+v", initial.Progress)
	}

	// Module 2 is locked before module 1 completes.
	if status := env.doJSON(t, http.MethodPost, "/api/progress/modules/2",
		map[string]bool{"videoWatched": true}, nil); status != http.StatusForbidden {
		t.Fatalf("locked module update: status %d, want 403", status)
	}

	// Work through module 1: video, game, then quiz.
	var afterVideo progressResponse
	if status := env.doJSON(t, http.MethodPost, "/api/progress/modules/1",
		map[string]bool{"videoWatched": true}, &afterVideo); status != http.StatusOK {
		t.Fatalf("video update: status %d", status)
	}
	if !afterVideo.Progress.Modules["1"].VideoWatched {
		t.Fatal("video flag not recorded")
	}

	if status := env.doJSON(t, http.MethodPost, "/api/progress/modules/1",
		map[string]bool{"gameCompleted": true}, nil); status != http.StatusOK {
		t.Fatalf("game update: status %d", status)
	}

	var quiz struct {
		Result   struct{ Score int }  `json:"result"`
		Progress domain.UserProgress `json:"progress"`
	}
	answers := map[string]any{"answers": map[string]string{
		"1-1": "To reduce risks and minimize impacts",
		"1-2": "true",
		"1-3": "Mitigation",
	}}
	if status := env.doJSON(t, http.MethodPost, "/api/modules/1/quiz", answers, &quiz); status != http.StatusOK {
		t.Fatalf("quiz submit: status %d", status)
	}
	if quiz.Result.Score != 100 {
		t.Fatalf("quiz score = %d, want 100", quiz.Result.Score)
	}

	m := quiz.Progress.Modules["1"]
	if m.CompletedAt == nil {
		t.Fatal("module 1 not marked complete after all three stages")
	}
	if quiz.Progress.Points != 200 {
		t.Fatalf("points = %d, want 200", quiz.Progress.Points)
	}

	// Module 2 unlocks once module 1 is complete.
	if status := env.doJSON(t, http.MethodGet, "/api/modules/2", nil, nil); status != http.StatusOK {
		t.Fatalf("module 2 after unlock: status %d", status)
	}

	// The update reaches the remote store.
	env.sessions.Wait()
	if env.remote.Len() == 0 {
		t.Fatal("no progress rows pushed to the remote store")
	}
}

func TestIntegration_RefreshAdoptsRemoteProgress(t *testing.T) {
	env := newTestEnv(t)
	userID := env.signUp(t, "returning@example.com")

	// Progress recorded on another device lands in the remote store.
	env.remote.Seed(domain.ProgressRow{
		UserID: userID, ModuleID: "1",
		VideoWatched: true, GameCompleted: true, QuizCompleted: true,
		QuizScore: 67, Status: domain.ProgressStatusCompleted,
		UpdatedAt: time.Now().UTC(),
	})

	var refreshed progressResponse
	if status := env.doJSON(t, http.MethodPost, "/api/progress/refresh", nil, &refreshed); status != http.StatusOK {
		t.Fatalf("refresh: status %d", status)
	}
	if refreshed.Progress.Modules["1"].CompletedAt == nil {
		t.Fatal("remote completion not adopted on refresh")
	}
	if refreshed.SyncStatus != string(domain.SyncSynced) {
		t.Fatalf("sync status = %q, want synced", refreshed.SyncStatus)
	}
}

func TestIntegration_ModuleCatalog(t *testing.T) {
	env := newTestEnv(t)
	env.signUp(t, "catalog@example.com")

	var list struct {
		Modules []struct {
			ID         string `json:"id"`
			Accessible bool   `json:"accessible"`
			Questions  []struct {
				CorrectAnswer string `json:"correctAnswer"`
			} `json:"questions"`
		} `json:"modules"`
	}
	if status := env.doJSON(t, http.MethodGet, "/api/modules", nil, &list); status != http.StatusOK {
		t.Fatalf("list modules: status %d", status)
	}
	if len(list.Modules) != 10 {
		t.Fatalf("catalog has %d modules, want 10", len(list.Modules))
	}
	if !list.Modules[0].Accessible {
		t.Error("first module not accessible on a fresh account")
	}
	if list.Modules[1].Accessible {
		t.Error("second module accessible before the first completes")
	}
	for _, q := range list.Modules[0].Questions {
		if q.CorrectAnswer != "" {
			t.Fatal("catalog response leaks correct answers")
		}
	}

	if status := env.doJSON(t, http.MethodGet, "/api/modules/5", nil, nil); status != http.StatusForbidden {
		t.Fatalf("locked module fetch: status %d, want 403", status)
	}
	if status := env.doJSON(t, http.MethodGet, "/api/modules/42", nil, nil); status != http.StatusNotFound {
		t.Fatalf("unknown module fetch: status %d, want 404", status)
	}
}

func TestIntegration_Contacts(t *testing.T) {
	env := newTestEnv(t)
	env.signUp(t, "contacts@example.com")

	var created struct {
		Contact struct {
			ID int64 `json:"id"`
		} `json:"contact"`
	}
	body := map[string]string{"name": "Appa", "phone": "+91 98765 43210", "relation": "father"}
	if status := env.doJSON(t, http.MethodPost, "/api/contacts", body, &created); status != http.StatusCreated {
		t.Fatalf("create contact: status %d", status)
	}

	var list struct {
		Contacts []struct {
			Name string `json:"name"`
		} `json:"contacts"`
	}
	if status := env.doJSON(t, http.MethodGet, "/api/contacts", nil, &list); status != http.StatusOK {
		t.Fatalf("list contacts: status %d", status)
	}
	if len(list.Contacts) != 1 || list.Contacts[0].Name != "Appa" {
		t.Fatalf("contacts = %+v", list.Contacts)
	}

	path := fmt.Sprintf("/api/contacts/%d", created.Contact.ID)
	if status := env.doJSON(t, http.MethodPut, path,
		map[string]string{"name": "Appa", "phone": "112", "relation": "father"}, nil); status != http.StatusOK {
		t.Fatalf("update contact: status %d", status)
	}

	req, _ := http.NewRequest(http.MethodDelete, env.srv.URL+path, nil)
	resp, err := env.client.Do(req)
	if err != nil {
		t.Fatalf("delete contact: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete contact: status %d", resp.StatusCode)
	}
}

func TestIntegration_SheltersAndAlertsArePublic(t *testing.T) {
	env := newTestEnv(t)

	// No login at all for these.
	var shelters struct {
		Shelters []struct {
			Name string `json:"name"`
		} `json:"shelters"`
	}
	if status := env.doJSON(t, http.MethodGet, "/api/shelters", nil, &shelters); status != http.StatusOK {
		t.Fatalf("list shelters: status %d", status)
	}
	if len(shelters.Shelters) == 0 {
		t.Fatal("no shelters returned")
	}

	var nearest struct {
		Shelters []struct {
			District   string  `json:"district"`
			DistanceKm float64 `json:"distanceKm"`
		} `json:"shelters"`
	}
	if status := env.doJSON(t, http.MethodGet, "/api/shelters/nearest?lat=13.05&lng=80.25&limit=2", nil, &nearest); status != http.StatusOK {
		t.Fatalf("nearest shelters: status %d", status)
	}
	if len(nearest.Shelters) != 2 || nearest.Shelters[0].District != "Chennai" {
		t.Fatalf("nearest = %+v", nearest.Shelters)
	}

	if status := env.doJSON(t, http.MethodGet, "/api/shelters/nearest", nil, nil); status != http.StatusBadRequest {
		t.Fatalf("nearest without coordinates: status %d, want 400", status)
	}

	var alerts struct {
		Alerts []struct {
			Event string `json:"event"`
		} `json:"alerts"`
	}
	if status := env.doJSON(t, http.MethodGet, "/api/alerts", nil, &alerts); status != http.StatusOK {
		t.Fatalf("alerts: status %d", status)
	}
	if len(alerts.Alerts) != 1 || alerts.Alerts[0].Event != "Cyclone" {
		t.Fatalf("alerts = %+v", alerts.Alerts)
	}
}

func TestIntegration_Certificate(t *testing.T) {
	env := newTestEnv(t)
	userID := env.signUp(t, "graduate@example.com")

	// Not eligible with an incomplete course.
	if status := env.doJSON(t, http.MethodPost, "/api/certificate", map[string]string{}, nil); status != http.StatusForbidden {
		t.Fatalf("premature certificate: status %d, want 403", status)
	}

	for i := 1; i <= 10; i++ {
		env.remote.Seed(domain.ProgressRow{
			UserID: userID, ModuleID: fmt.Sprintf("%d", i),
			VideoWatched: true, GameCompleted: true, QuizCompleted: true,
			QuizScore: 100, Status: domain.ProgressStatusCompleted,
			UpdatedAt: time.Now().UTC(),
		})
	}
	if status := env.doJSON(t, http.MethodPost, "/api/progress/refresh", nil, nil); status != http.StatusOK {
		t.Fatalf("refresh: status %d", status)
	}

	var issued struct {
		Certificate struct {
			ID            string `json:"id"`
			RecipientName string `json:"recipientName"`
		} `json:"certificate"`
	}
	if status := env.doJSON(t, http.MethodPost, "/api/certificate", map[string]string{}, &issued); status != http.StatusCreated {
		t.Fatalf("issue certificate: status %d", status)
	}
	if issued.Certificate.RecipientName != "Test User" {
		t.Fatalf("recipient defaulted to %q, want the display name", issued.Certificate.RecipientName)
	}

	var fetched struct {
		Certificate struct {
			ID string `json:"id"`
		} `json:"certificate"`
	}
	if status := env.doJSON(t, http.MethodGet, "/api/certificate", nil, &fetched); status != http.StatusOK {
		t.Fatalf("get certificate: status %d", status)
	}
	if fetched.Certificate.ID != issued.Certificate.ID {
		t.Fatal("fetched certificate differs from the issued one")
	}
}

func TestIntegration_ProtectedRoutesRequireAuth(t *testing.T) {
	env := newTestEnv(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/progress"},
		{http.MethodGet, "/api/modules"},
		{http.MethodGet, "/api/contacts"},
		{http.MethodGet, "/api/certificate"},
	}
	for _, p := range paths {
		if status := env.doJSON(t, p.method, p.path, nil, nil); status != http.StatusUnauthorized {
			t.Errorf("%s %s without auth: status %d, want 401", p.method, p.path, status)
		}
	}
}
