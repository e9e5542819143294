package actions

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/campuslink/portal/internal/app/client"
	"github.com/campuslink/portal/internal/app/loader"
	"github.com/campuslink/portal/internal/app/models"
	"github.com/campuslink/portal/internal/app/models/dto"
	"github.com/campuslink/portal/internal/app/state"
	"github.com/campuslink/portal/internal/pkg/apperrors"
)

// fixture is a fake portal backend. It records every request and serves
// canned responses, defaulting to empty collections for the loader fetches.
type fixture struct {
	mu        sync.Mutex
	requests  []string
	responses map[string]string
}

func (f *fixture) handle(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.Path

	f.mu.Lock()
	f.requests = append(f.requests, key)
	body, ok := f.responses[key]
	f.mu.Unlock()

	if !ok {
		body = "{}"
		if r.Method == http.MethodGet {
			body = "[]"
		}
	}
	w.Write([]byte(body))
}

func (f *fixture) respond(method, path, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[method+" "+path] = body
}

func (f *fixture) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requests...)
}

func (f *fixture) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func (f *fixture) resetCalls() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = nil
}

func setupService(t *testing.T) (*Service, *state.Store, *fixture) {
	t.Helper()

	f := &fixture{responses: make(map[string]string)}
	srv := httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(srv.Close)

	store := state.NewStore()
	apiClient := client.New(srv.URL, 5*time.Second, zerolog.Nop())
	ldr := loader.New(apiClient, store, nil, zerolog.Nop())
	return NewService(apiClient, store, ldr, zerolog.Nop()), store, f
}

func pdfUpload() *dto.FileUpload {
	return &dto.FileUpload{FileName: "notes.pdf", Content: strings.NewReader("pdf-bytes")}
}

func TestLoginInstallsSessionAndRefreshes(t *testing.T) {
	svc, store, f := setupService(t)
	f.respond(http.MethodPost, "/auth/login",
		`{"token":"tok-1","user":{"_id":"u1","fullName":"Asha Rao","role":"student"}}`)

	account, err := svc.Login(context.Background(), dto.LoginRequest{
		RegisteredID: "CS-101",
		Password:     "secret",
		Role:         "student",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if account.ID != "u1" || account.FullName != "Asha Rao" {
		t.Errorf("unexpected account: %+v", account)
	}
	if svc.Token() != "tok-1" {
		t.Errorf("token not installed, got %q", svc.Token())
	}
	if user := store.CurrentUser(); user == nil || user.ID != "u1" {
		t.Errorf("current user not installed: %+v", user)
	}

	// The post-login refresh must have fetched the core collections
	var sawResources bool
	for _, call := range f.calls() {
		if call == "GET /resources" {
			sawResources = true
		}
	}
	if !sawResources {
		t.Error("expected a full refresh after login")
	}
}

func TestLoginValidatesBeforeNetwork(t *testing.T) {
	svc, _, f := setupService(t)

	_, err := svc.Login(context.Background(), dto.LoginRequest{RegisteredID: "CS-101"})
	if !apperrors.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if f.callCount() != 0 {
		t.Errorf("validation failures must not hit the network, got %v", f.calls())
	}
}

func TestLoginMissingTokenMeansBadCredentials(t *testing.T) {
	svc, _, f := setupService(t)
	f.respond(http.MethodPost, "/auth/login", `{"message":"nope"}`)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		RegisteredID: "CS-101",
		Password:     "wrong",
		Role:         "student",
	})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogoutClearsEverything(t *testing.T) {
	svc, store, _ := setupService(t)
	store.SetCurrentUser(&models.Account{ID: "u1"})
	store.Install(state.Collections{Resources: []models.Resource{{ID: "r1"}}})

	svc.Logout()

	if svc.Token() != "" {
		t.Error("token must clear on logout")
	}
	if store.CurrentUser() != nil {
		t.Error("current user must clear on logout")
	}
	if len(store.Snapshot().Resources) != 0 {
		t.Error("collections must clear on logout")
	}
}

func TestResumeReinstallsSession(t *testing.T) {
	svc, store, _ := setupService(t)

	svc.Resume(&models.Account{ID: "u1", Role: models.RoleStudent}, "tok-9")

	if svc.Token() != "tok-9" {
		t.Errorf("expected resumed token, got %q", svc.Token())
	}
	if user := store.CurrentUser(); user == nil || user.ID != "u1" {
		t.Errorf("expected resumed user, got %+v", user)
	}
}

func TestSubmitGuardRejectsConcurrentSubmission(t *testing.T) {
	svc, store, f := setupService(t)
	store.SetCurrentUser(&models.Account{ID: "u1", Role: models.RoleStudent})

	// Simulate a submission still in flight
	if !store.BeginSubmit() {
		t.Fatal("priming BeginSubmit failed")
	}

	err := svc.UploadResource(context.Background(), dto.UploadResourceRequest{
		Title:   "Notes",
		Subject: "CS201",
		File:    pdfUpload(),
	})
	if !errors.Is(err, apperrors.ErrSubmissionInProgress) {
		t.Fatalf("expected ErrSubmissionInProgress, got %v", err)
	}
	if f.callCount() != 0 {
		t.Errorf("guarded rejection must make no network call, got %v", f.calls())
	}

	// The original submission's flag is untouched
	if !store.Submitting() {
		t.Error("guard must not clear the running submission's flag")
	}
}

func TestSubmitGuardClearsOnFailure(t *testing.T) {
	svc, store, _ := setupService(t)
	store.SetCurrentUser(&models.Account{ID: "u1", Role: models.RoleStudent})

	// Validation failure inside the guard
	err := svc.UploadResource(context.Background(), dto.UploadResourceRequest{})
	if !apperrors.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}

	if store.Submitting() {
		t.Error("guard must clear on every exit path")
	}
}

func TestConfirmDelete(t *testing.T) {
	if err := confirmDelete(dto.DeleteRequest{ID: "x", Confirmed: true}); err != nil {
		t.Errorf("confirmed delete must pass, got %v", err)
	}
	if err := confirmDelete(dto.DeleteRequest{ID: "x"}); !errors.Is(err, apperrors.ErrConfirmationRequired) {
		t.Errorf("expected ErrConfirmationRequired, got %v", err)
	}
	if err := confirmDelete(dto.DeleteRequest{Confirmed: true}); !apperrors.IsValidation(err) {
		t.Errorf("expected validation error for missing id, got %v", err)
	}
}

func TestCreatedIDUnwrapsCreationEnvelopes(t *testing.T) {
	payload := []byte(`{"resource":{"_id":"r42","title":"New"}}`)
	if got := createdID(payload, "resource"); got != "r42" {
		t.Errorf("expected r42, got %q", got)
	}

	// Numeric ids coerce to strings like everywhere else
	payload = []byte(`{"post":{"id":7}}`)
	if got := createdID(payload, "post"); got != "7" {
		t.Errorf("expected coerced id, got %q", got)
	}

	if got := createdID([]byte(`{}`), "resource"); got != "" {
		t.Errorf("missing record must skip the highlight, got %q", got)
	}
}
