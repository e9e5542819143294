package views

import (
	"testing"

	"github.com/campuslink/portal/internal/app/models"
	"github.com/campuslink/portal/internal/app/state"
)

func sampleEvents() []models.Event {
	return []models.Event{
		{ID: "e1", Title: "Hack Night", Organizer: models.Author{ID: "org1"}},
		{ID: "e2", Title: "Alumni Meet", Organizer: models.Author{ID: "org2"}, RegistrationClosed: true},
		{ID: "e3", Title: "Tech Talk", Organizer: models.Author{ID: "org1"}, Registered: true},
	}
}

func TestEventsRegistrationOffers(t *testing.T) {
	e, store := setupEngine(t, state.Collections{Events: sampleEvents()})
	store.SetCurrentUser(&models.Account{ID: "u1", Role: models.RoleStudent})

	view := e.Events()
	flags := make(map[string]bool, len(view.Rows))
	for _, row := range view.Rows {
		flags[row.ID] = row.CanRegister
	}

	if !flags["e1"] {
		t.Error("open unregistered event must offer registration")
	}
	if flags["e2"] {
		t.Error("closed event must not offer registration")
	}
	if flags["e3"] {
		t.Error("already registered event must not offer registration again")
	}
}

func TestOrganizerEventsShowsOnlyOwn(t *testing.T) {
	e, store := setupEngine(t, state.Collections{Events: sampleEvents()})
	store.SetCurrentUser(&models.Account{ID: "org1", Role: models.RoleOrganizer})

	view := e.OrganizerEvents()
	if len(view.Rows) != 2 {
		t.Fatalf("expected org1's 2 events, got %d", len(view.Rows))
	}
	for _, row := range view.Rows {
		if !row.CanManage {
			t.Errorf("own event %s must be manageable", row.ID)
		}
	}
}

func TestOrganizerEventsAdminSeesEverything(t *testing.T) {
	e, store := setupEngine(t, state.Collections{Events: sampleEvents()})
	store.SetCurrentUser(&models.Account{ID: "adm", Role: models.RoleAdmin})

	view := e.OrganizerEvents()
	if len(view.Rows) != 3 {
		t.Errorf("admin must see all events, got %d", len(view.Rows))
	}
}

func TestEventsEmptyStates(t *testing.T) {
	e, store := setupEngine(t, state.Collections{})
	store.SetCurrentUser(&models.Account{ID: "org1", Role: models.RoleOrganizer})

	if got := e.Events().Empty; got != "No upcoming events. Check back later!" {
		t.Errorf("unexpected empty state: %q", got)
	}
	if got := e.OrganizerEvents().Empty; got != "No events yet. Create one!" {
		t.Errorf("unexpected empty state: %q", got)
	}
}
