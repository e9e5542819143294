package actions

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"testing"

	"github.com/campuslink/portal/internal/app/models"
	"github.com/campuslink/portal/internal/app/state"
	"github.com/campuslink/portal/internal/pkg/apperrors"
)

func TestToggleWishlistRequiresLogin(t *testing.T) {
	svc, _, f := setupService(t)

	if err := svc.ToggleWishlist(context.Background(), "r1"); !errors.Is(err, apperrors.ErrNotLoggedIn) {
		t.Fatalf("expected ErrNotLoggedIn, got %v", err)
	}
	if f.callCount() != 0 {
		t.Error("logged-out toggle must not hit the network")
	}
}

func TestToggleWishlistAddsWhenAbsent(t *testing.T) {
	svc, store, f := setupService(t)
	store.SetCurrentUser(&models.Account{ID: "u1", Role: models.RoleStudent})
	f.respond(http.MethodGet, "/wishlist", `{"wishlist":["r1"]}`)

	if err := svc.ToggleWishlist(context.Background(), "r1"); err != nil {
		t.Fatalf("ToggleWishlist failed: %v", err)
	}

	want := []string{"POST /wishlist/add", "GET /wishlist"}
	if got := f.calls(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected the narrow add-then-reload sequence, got %v", got)
	}
	if got := store.Snapshot().Wishlist; len(got) != 1 || got[0] != "r1" {
		t.Errorf("wishlist not refreshed, got %v", got)
	}
}

func TestToggleWishlistRemovesWhenPresent(t *testing.T) {
	svc, store, f := setupService(t)
	store.SetCurrentUser(&models.Account{ID: "u1", Role: models.RoleStudent})
	store.Install(state.Collections{Wishlist: []string{"r1"}})
	f.respond(http.MethodGet, "/wishlist", `{"wishlist":[]}`)

	if err := svc.ToggleWishlist(context.Background(), "r1"); err != nil {
		t.Fatalf("ToggleWishlist failed: %v", err)
	}

	want := []string{"POST /wishlist/remove", "GET /wishlist"}
	if got := f.calls(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected the narrow remove-then-reload sequence, got %v", got)
	}
	if got := store.Snapshot().Wishlist; len(got) != 0 {
		t.Errorf("wishlist not refreshed, got %v", got)
	}
}

func TestToggleWishlistOnlyReloadsWishlist(t *testing.T) {
	svc, store, f := setupService(t)
	store.SetCurrentUser(&models.Account{ID: "u1", Role: models.RoleStudent})
	store.Install(state.Collections{Resources: []models.Resource{{ID: "r1"}}})

	if err := svc.ToggleWishlist(context.Background(), "r1"); err != nil {
		t.Fatalf("ToggleWishlist failed: %v", err)
	}

	for _, call := range f.calls() {
		if call == "GET /resources" {
			t.Error("wishlist toggle must not trigger a full refresh")
		}
	}
	// The resources collection is untouched by the narrow reload
	if len(store.Snapshot().Resources) != 1 {
		t.Error("resources must survive a wishlist reload")
	}
}
