package actions

import (
	"context"
	"errors"
	"testing"

	"github.com/campuslink/portal/internal/app/models"
	"github.com/campuslink/portal/internal/app/models/dto"
	"github.com/campuslink/portal/internal/app/state"
	"github.com/campuslink/portal/internal/pkg/apperrors"
)

func eventsFixture(store *state.Store) {
	store.Install(state.Collections{Events: []models.Event{
		{ID: "e1", Title: "Hack Night", Organizer: models.Author{ID: "org1"}},
		{ID: "e2", Title: "Alumni Meet", RegistrationClosed: true, Organizer: models.Author{ID: "org2"}},
		{ID: "e3", Title: "Tech Talk", Registered: true, Organizer: models.Author{ID: "org1"}},
	}})
}

func TestCreateEventOrganizerOnly(t *testing.T) {
	svc, store, f := setupService(t)
	store.SetCurrentUser(&models.Account{ID: "u1", Role: models.RoleStudent})

	err := svc.CreateEvent(context.Background(), dto.CreateEventRequest{
		Title:  "Sneaky Event",
		Date:   "2026-09-10",
		Poster: pdfUpload(),
	})
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("students must not create events, got %v", err)
	}
	if f.callCount() != 0 {
		t.Error("denied creation must not hit the network")
	}
}

func TestCreateEventRequiresPoster(t *testing.T) {
	svc, store, _ := setupService(t)
	store.SetCurrentUser(&models.Account{ID: "org1", Role: models.RoleOrganizer})

	err := svc.CreateEvent(context.Background(), dto.CreateEventRequest{
		Title: "Hack Night",
		Date:  "2026-09-10",
	})
	if !apperrors.IsValidation(err) {
		t.Errorf("missing poster must fail validation, got %v", err)
	}
}

func TestRegisterForClosedEvent(t *testing.T) {
	svc, store, f := setupService(t)
	store.SetCurrentUser(&models.Account{ID: "u1", Role: models.RoleStudent})
	eventsFixture(store)

	if err := svc.RegisterForEvent(context.Background(), "e2"); !apperrors.IsValidation(err) {
		t.Errorf("closed event must be rejected client-side, got %v", err)
	}
	if err := svc.RegisterForEvent(context.Background(), "e3"); !apperrors.IsValidation(err) {
		t.Errorf("duplicate registration must be rejected, got %v", err)
	}
	if f.callCount() != 0 {
		t.Error("client-side rejections must not hit the network")
	}

	if err := svc.RegisterForEvent(context.Background(), "e1"); err != nil {
		t.Errorf("open event registration failed: %v", err)
	}
}

func TestToggleRegistrationOwnEventsOnly(t *testing.T) {
	svc, store, f := setupService(t)
	eventsFixture(store)

	store.SetCurrentUser(&models.Account{ID: "org1", Role: models.RoleOrganizer})
	if err := svc.ToggleRegistration(context.Background(), "e2"); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("another organizer's event must be denied, got %v", err)
	}
	if f.callCount() != 0 {
		t.Error("denied toggle must not hit the network")
	}

	if err := svc.ToggleRegistration(context.Background(), "e1"); err != nil {
		t.Errorf("own event toggle failed: %v", err)
	}
}

func TestDeleteEventDisappearsAfterRefresh(t *testing.T) {
	svc, store, f := setupService(t)
	store.SetCurrentUser(&models.Account{ID: "adm", Role: models.RoleAdmin})
	eventsFixture(store)

	// The refreshed backend no longer knows the event
	f.respond("GET", "/events", `{"events":[{"_id":"e1"},{"_id":"e3"}]}`)

	err := svc.DeleteEvent(context.Background(), dto.DeleteRequest{ID: "e2", Confirmed: true})
	if err != nil {
		t.Fatalf("DeleteEvent failed: %v", err)
	}

	for _, ev := range store.Snapshot().Events {
		if ev.ID == "e2" {
			t.Error("deleted event must be gone after the refresh")
		}
	}
}
