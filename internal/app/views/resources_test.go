package views

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/campuslink/portal/internal/app/models"
	"github.com/campuslink/portal/internal/app/state"
)

func setupEngine(t *testing.T, c state.Collections) (*Engine, *state.Store) {
	t.Helper()
	store := state.NewStore()
	store.Install(c)
	return NewEngine(store, zerolog.Nop()), store
}

func sampleResources() []models.Resource {
	return []models.Resource{
		{ID: "r1", Title: "Data Structures Notes", Branch: "CSE", Semester: "3", Status: models.StatusVerified},
		{ID: "r2", Title: "Thermodynamics Summary", Branch: "MECH", Semester: "3", Status: models.StatusPending},
		{ID: "r3", Title: "Data Mining Slides", Branch: "CSE", Semester: "5", Status: models.StatusPending},
	}
}

func TestResourcesFiltersAreANDed(t *testing.T) {
	e, _ := setupEngine(t, state.Collections{Resources: sampleResources()})

	view := e.Resources(ResourceFilters{Branch: "CSE", Query: "data"})
	if len(view.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(view.Rows))
	}

	view = e.Resources(ResourceFilters{Branch: "CSE", Semester: "5", Query: "data"})
	if len(view.Rows) != 1 || view.Rows[0].ID != "r3" {
		t.Errorf("expected only r3, got %+v", view.Rows)
	}
}

func TestResourcesQueryIsCaseInsensitive(t *testing.T) {
	e, _ := setupEngine(t, state.Collections{Resources: sampleResources()})

	view := e.Resources(ResourceFilters{Query: "THERMO"})
	if len(view.Rows) != 1 || view.Rows[0].ID != "r2" {
		t.Errorf("expected case-insensitive match on r2, got %+v", view.Rows)
	}
}

func TestResourcesEmptyStates(t *testing.T) {
	e, _ := setupEngine(t, state.Collections{Resources: sampleResources()})

	view := e.Resources(ResourceFilters{Query: "no such thing"})
	if view.Empty != "No resources match the selected filters." {
		t.Errorf("unexpected filtered empty state: %q", view.Empty)
	}

	e, _ = setupEngine(t, state.Collections{})
	view = e.Resources(ResourceFilters{})
	if view.Empty != "No resources yet. Be the first to upload!" {
		t.Errorf("unexpected unfiltered empty state: %q", view.Empty)
	}
}

func TestResourcesVerifiedFollowsStatusOnly(t *testing.T) {
	e, _ := setupEngine(t, state.Collections{Resources: []models.Resource{
		// A record claiming verified while its status is still pending
		{ID: "r1", Title: "Inconsistent", Status: models.StatusPending, Verified: true},
		{ID: "r2", Title: "Real", Status: models.StatusVerified, Verified: true},
	}})

	view := e.Resources(ResourceFilters{})
	for _, row := range view.Rows {
		if row.ID == "r1" && row.Verified {
			t.Error("pending record must not render verified")
		}
		if row.ID == "r2" && !row.Verified {
			t.Error("verified record must render verified")
		}
	}
}

func TestResourcesWishlistFlag(t *testing.T) {
	e, _ := setupEngine(t, state.Collections{
		Resources: sampleResources(),
		Wishlist:  []string{"r2"},
	})

	view := e.Resources(ResourceFilters{})
	for _, row := range view.Rows {
		if row.ID == "r2" && !row.Wishlisted {
			t.Error("r2 must render wishlisted")
		}
		if row.ID == "r1" && row.Wishlisted {
			t.Error("r1 must not render wishlisted")
		}
	}
}

func TestResourcesJustAddedRendersOnce(t *testing.T) {
	e, store := setupEngine(t, state.Collections{Resources: sampleResources()})
	store.MarkLastAdded(state.CollectionResources, "r3")

	view := e.Resources(ResourceFilters{})
	var flagged int
	for _, row := range view.Rows {
		if row.JustAdded {
			flagged++
			if row.ID != "r3" {
				t.Errorf("wrong row flagged: %s", row.ID)
			}
		}
	}
	if flagged != 1 {
		t.Fatalf("expected exactly one flagged row, got %d", flagged)
	}

	// Second render must not highlight again
	view = e.Resources(ResourceFilters{})
	for _, row := range view.Rows {
		if row.JustAdded {
			t.Error("highlight must clear after one render")
		}
	}
}

func TestWishlistShowsOnlySavedResources(t *testing.T) {
	e, _ := setupEngine(t, state.Collections{
		Resources: sampleResources(),
		Wishlist:  []string{"r1", "r3"},
	})

	view := e.Wishlist()
	if len(view.Rows) != 2 {
		t.Fatalf("expected 2 saved rows, got %d", len(view.Rows))
	}
	for _, row := range view.Rows {
		if !row.Wishlisted {
			t.Errorf("wishlist row %s must render wishlisted", row.ID)
		}
	}
}

func TestWishlistEmptyState(t *testing.T) {
	e, _ := setupEngine(t, state.Collections{Resources: sampleResources()})

	view := e.Wishlist()
	if view.Empty != "No saved resources yet." {
		t.Errorf("unexpected empty state: %q", view.Empty)
	}
}

func TestPendingVerificationCountMatchesRows(t *testing.T) {
	e, _ := setupEngine(t, state.Collections{Resources: []models.Resource{
		{ID: "r1", Status: models.StatusPending},
		{ID: "r2", Status: models.StatusVerified},
		{ID: "r3", Status: models.StatusPending, Verified: true}, // inconsistent, excluded
		{ID: "r4", Status: models.StatusRejected},
	}})

	view := e.PendingVerification()
	if len(view.Rows) != 1 || view.Rows[0].ID != "r1" {
		t.Fatalf("expected only r1 pending, got %+v", view.Rows)
	}
	if view.Count != len(view.Rows) {
		t.Errorf("badge count %d must equal row count %d", view.Count, len(view.Rows))
	}
}

func TestPendingVerificationEmptyState(t *testing.T) {
	e, _ := setupEngine(t, state.Collections{})

	view := e.PendingVerification()
	if view.Empty != "No pending notes to verify." {
		t.Errorf("unexpected empty state: %q", view.Empty)
	}
	if view.Count != 0 {
		t.Errorf("expected zero count, got %d", view.Count)
	}
}

func TestFormatDate(t *testing.T) {
	if got := formatDate("2024-03-01T10:00:00Z"); got != "Mar 1, 2024" {
		t.Errorf("expected formatted date, got %q", got)
	}
	if got := formatDate(""); got != "-" {
		t.Errorf("expected dash for empty, got %q", got)
	}
	if got := formatDate("next week"); got != "next week" {
		t.Errorf("unrecognized values must pass through, got %q", got)
	}
}
