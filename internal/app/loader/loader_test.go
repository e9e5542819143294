package loader

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/campuslink/portal/internal/app/state"
	"github.com/campuslink/portal/internal/pkg/apperrors"
)

// stubBackend serves canned responses per endpoint and fails the rest.
// Fetches arrive concurrently, so the call log is mutex-guarded.
type stubBackend struct {
	mu        sync.Mutex
	responses map[string]string
	failures  map[string]error
	calls     []string
}

func (b *stubBackend) Call(ctx context.Context, method, endpoint string, body any) (json.RawMessage, error) {
	b.mu.Lock()
	b.calls = append(b.calls, endpoint)
	err, failed := b.failures[endpoint]
	resp, ok := b.responses[endpoint]
	b.mu.Unlock()

	if failed {
		return nil, err
	}
	if ok {
		return json.RawMessage(resp), nil
	}
	return json.RawMessage(`[]`), nil
}

func (b *stubBackend) resetCalls() {
	b.mu.Lock()
	b.calls = nil
	b.mu.Unlock()
}

func (b *stubBackend) callLog() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.calls...)
}

// recordingSink counts render notifications
type recordingSink struct {
	all, resources, wishlist int
}

func (r *recordingSink) RenderAll()       { r.all++ }
func (r *recordingSink) RenderResources() { r.resources++ }
func (r *recordingSink) RenderWishlist()  { r.wishlist++ }

func setupLoader(t *testing.T, backend *stubBackend) (*Loader, *state.Store, *recordingSink) {
	t.Helper()
	store := state.NewStore()
	sink := &recordingSink{}
	return New(backend, store, sink, zerolog.Nop()), store, sink
}

func fullBackend() *stubBackend {
	return &stubBackend{
		responses: map[string]string{
			"/resources":   `{"resources":[{"_id":"r1","title":"Notes","status":"pending"}]}`,
			"/marketplace": `{"items":[{"_id":"m1","title":"Calculator"}]}`,
			"/events":      `{"events":[{"_id":"e1","title":"Hack Night"}]}`,
			"/lostfound":   `{"posts":[{"_id":"l1","type":"lost","itemName":"ID Card"}]}`,
			"/community":   `{"posts":[{"_id":"p1","type":"discussion","title":"Exam tips"},{"_id":"p2","type":"announcement","title":"Fee notice"}]}`,
			"/admin/users": `{"users":[{"_id":"u1","fullName":"Asha"}]}`,
			"/wishlist":    `{"wishlist":["r1"]}`,
		},
		failures: map[string]error{},
	}
}

func TestLoadAllInstallsEveryCollection(t *testing.T) {
	backend := fullBackend()
	l, store, sink := setupLoader(t, backend)

	if err := l.LoadAll(context.Background()); err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	snap := store.Snapshot()
	if len(snap.Resources) != 1 || snap.Resources[0].ID != "r1" {
		t.Errorf("resources not installed: %+v", snap.Resources)
	}
	if len(snap.MarketplaceItems) != 1 {
		t.Errorf("marketplace not installed: %+v", snap.MarketplaceItems)
	}
	if len(snap.Events) != 1 {
		t.Errorf("events not installed: %+v", snap.Events)
	}
	if len(snap.LostFoundItems) != 1 {
		t.Errorf("lostfound not installed: %+v", snap.LostFoundItems)
	}
	if len(snap.Users) != 1 {
		t.Errorf("users not installed: %+v", snap.Users)
	}
	if len(snap.Wishlist) != 1 || snap.Wishlist[0] != "r1" {
		t.Errorf("wishlist not installed: %v", snap.Wishlist)
	}
	if sink.all != 1 {
		t.Errorf("expected exactly one RenderAll, got %d", sink.all)
	}
}

func TestLoadAllPartitionsAnnouncements(t *testing.T) {
	l, store, _ := setupLoader(t, fullBackend())

	if err := l.LoadAll(context.Background()); err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	snap := store.Snapshot()
	if len(snap.Discussions) != 1 || snap.Discussions[0].ID != "p1" {
		t.Errorf("expected p1 in discussions, got %+v", snap.Discussions)
	}
	if len(snap.Notifications) != 1 || snap.Notifications[0].ID != "p2" {
		t.Errorf("expected p2 in notifications, got %+v", snap.Notifications)
	}
}

func TestLoadAllTwiceIsIdempotent(t *testing.T) {
	l, store, sink := setupLoader(t, fullBackend())

	if err := l.LoadAll(context.Background()); err != nil {
		t.Fatalf("first load failed: %v", err)
	}
	first := store.Snapshot()

	if err := l.LoadAll(context.Background()); err != nil {
		t.Fatalf("second load failed: %v", err)
	}
	second := store.Snapshot()

	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical backend data must yield identical state\nfirst:  %+v\nsecond: %+v", first, second)
	}
	if sink.all != 2 {
		t.Errorf("each load notifies once, got %d RenderAll", sink.all)
	}
}

func TestLoadAllCriticalFailureKeepsPriorState(t *testing.T) {
	backend := fullBackend()
	l, store, sink := setupLoader(t, backend)
	if err := l.LoadAll(context.Background()); err != nil {
		t.Fatalf("priming load failed: %v", err)
	}

	backend.failures["/events"] = apperrors.NewHTTPError(500, "boom")
	err := l.LoadAll(context.Background())
	if err == nil {
		t.Fatal("expected load error when a critical fetch fails")
	}

	var loadErr *apperrors.LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected LoadError, got %T", err)
	}
	if loadErr.Fetch != "events" {
		t.Errorf("expected events fetch named, got %q", loadErr.Fetch)
	}

	snap := store.Snapshot()
	if len(snap.Resources) != 1 || len(snap.Events) != 1 {
		t.Error("prior state must survive an aborted refresh")
	}
	if sink.all != 1 {
		t.Errorf("aborted refresh must not notify the sink, got %d RenderAll", sink.all)
	}
}

func TestLoadAllDegradesPrivilegedFetches(t *testing.T) {
	backend := fullBackend()
	backend.failures["/admin/users"] = apperrors.NewHTTPError(403, "admin only")
	backend.failures["/wishlist"] = apperrors.NewHTTPError(403, "no wishlist")
	l, store, _ := setupLoader(t, backend)

	if err := l.LoadAll(context.Background()); err != nil {
		t.Fatalf("load must survive privileged fetch failures: %v", err)
	}

	snap := store.Snapshot()
	if len(snap.Users) != 0 {
		t.Errorf("users must degrade to empty, got %+v", snap.Users)
	}
	if len(snap.Wishlist) != 0 {
		t.Errorf("wishlist must degrade to empty, got %v", snap.Wishlist)
	}
	if len(snap.Resources) != 1 {
		t.Error("core collections must still install")
	}
}

func TestLoadAllAcceptsBareArrays(t *testing.T) {
	backend := fullBackend()
	backend.responses["/resources"] = `[{"_id":"r1","title":"Bare"}]`
	l, store, _ := setupLoader(t, backend)

	if err := l.LoadAll(context.Background()); err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(store.Snapshot().Resources) != 1 {
		t.Error("bare array responses must decode like enveloped ones")
	}
}

func TestReloadWishlistNarrowPath(t *testing.T) {
	backend := fullBackend()
	l, store, sink := setupLoader(t, backend)
	if err := l.LoadAll(context.Background()); err != nil {
		t.Fatalf("priming load failed: %v", err)
	}

	backend.responses["/wishlist"] = `{"wishlist":["r1","r2"]}`
	backend.resetCalls()

	if err := l.ReloadWishlist(context.Background()); err != nil {
		t.Fatalf("ReloadWishlist failed: %v", err)
	}

	if calls := backend.callLog(); len(calls) != 1 || calls[0] != "/wishlist" {
		t.Errorf("expected only the wishlist fetch, got %v", calls)
	}
	if got := store.Snapshot().Wishlist; len(got) != 2 {
		t.Errorf("expected refreshed wishlist, got %v", got)
	}
	if sink.resources != 1 || sink.wishlist != 1 {
		t.Errorf("expected resource and wishlist renders, got %d/%d", sink.resources, sink.wishlist)
	}
	if sink.all != 1 {
		t.Errorf("narrow reload must not trigger RenderAll, got %d", sink.all)
	}
}

func TestReloadWishlistFailureWrapsLoadError(t *testing.T) {
	backend := fullBackend()
	backend.failures["/wishlist"] = apperrors.NewHTTPError(500, "boom")
	l, _, _ := setupLoader(t, backend)

	err := l.ReloadWishlist(context.Background())

	var loadErr *apperrors.LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected LoadError, got %T", err)
	}
}
