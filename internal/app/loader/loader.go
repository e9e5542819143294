// Package loader orchestrates full refreshes of the application state. It
// is the only path by which fetched data reaches the Store: action handlers
// mutate the backend and then ask for a reload, never writing fetched
// records themselves.
package loader

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/campuslink/portal/internal/app/models"
	"github.com/campuslink/portal/internal/app/normalize"
	"github.com/campuslink/portal/internal/app/state"
	"github.com/campuslink/portal/internal/pkg/apperrors"
)

// Backend issues requests against the portal API
type Backend interface {
	Call(ctx context.Context, method, endpoint string, body any) (json.RawMessage, error)
}

// Sink is notified after the Store changed, so the presentation layer can
// redraw. Notifications arrive only after a fully completed load; a partial
// or interleaved state is never announced.
type Sink interface {
	RenderAll()
	RenderResources()
	RenderWishlist()
}

// NopSink discards render notifications
type NopSink struct{}

func (NopSink) RenderAll()       {}
func (NopSink) RenderResources() {}
func (NopSink) RenderWishlist()  {}

// Loader populates the Store from the backend
type Loader struct {
	backend Backend
	store   *state.Store
	sink    Sink
	logger  zerolog.Logger
}

// New creates a Loader. A nil sink falls back to NopSink.
func New(backend Backend, store *state.Store, sink Sink, logger zerolog.Logger) *Loader {
	if sink == nil {
		sink = NopSink{}
	}
	return &Loader{
		backend: backend,
		store:   store,
		sink:    sink,
		logger:  logger,
	}
}

// LoadAll refreshes every domain collection. The domain fetches run in
// parallel; the first failing critical fetch aborts the refresh with a
// LoadError and leaves the prior Store state intact. The privileged and
// per-user fetches (admin users, wishlist) degrade to empty collections on
// failure so core browsing survives a 403.
func (l *Loader) LoadAll(ctx context.Context) error {
	var (
		resources []models.Resource
		items     []models.MarketplaceItem
		events    []models.Event
		lostFound []models.LostFoundPost
		posts     []models.CommunityPost
		users     []models.User
		wishlist  []string
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(l.critical(gctx, "resources", "/resources", "resources", &resources))
	g.Go(l.critical(gctx, "marketplace", "/marketplace", "items", &items))
	g.Go(l.critical(gctx, "events", "/events", "events", &events))
	g.Go(l.critical(gctx, "lostfound", "/lostfound", "posts", &lostFound))
	g.Go(l.critical(gctx, "community", "/community", "posts", &posts))
	g.Go(l.optional(gctx, "users", "/admin/users", "users", &users))
	g.Go(l.optional(gctx, "wishlist", "/wishlist", "wishlist", &wishlist))

	if err := g.Wait(); err != nil {
		l.logger.Error().Err(err).Msg("Full refresh aborted; keeping previous state")
		return err
	}

	discussions, notifications := partitionPosts(posts)

	l.store.Install(state.Collections{
		Resources:        resources,
		MarketplaceItems: items,
		Events:           events,
		LostFoundItems:   lostFound,
		Discussions:      discussions,
		Notifications:    notifications,
		Users:            users,
		Wishlist:         wishlist,
	})

	l.logger.Debug().
		Int("resources", len(resources)).
		Int("marketplace", len(items)).
		Int("events", len(events)).
		Int("lostfound", len(lostFound)).
		Int("discussions", len(discussions)).
		Int("announcements", len(notifications)).
		Msg("Store refreshed")

	l.sink.RenderAll()
	return nil
}

// ReloadWishlist refreshes only the wishlist collection. This narrower path
// backs the wishlist toggle, which re-renders just the resource and
// wishlist views instead of everything.
func (l *Loader) ReloadWishlist(ctx context.Context) error {
	var wishlist []string
	if err := l.fetchInto(ctx, "/wishlist", "wishlist", &wishlist); err != nil {
		return apperrors.NewLoadError("wishlist", err)
	}

	l.store.SetWishlist(wishlist)
	l.sink.RenderResources()
	l.sink.RenderWishlist()
	return nil
}

// critical returns a fetch task whose failure aborts the whole load
func (l *Loader) critical(ctx context.Context, name, endpoint, key string, dst any) func() error {
	return func() error {
		if err := l.fetchInto(ctx, endpoint, key, dst); err != nil {
			return apperrors.NewLoadError(name, err)
		}
		return nil
	}
}

// optional returns a fetch task that degrades to an empty collection. A 403
// on a privileged sub-resource must not take browsing down with it.
func (l *Loader) optional(ctx context.Context, name, endpoint, key string, dst any) func() error {
	return func() error {
		if err := l.fetchInto(ctx, endpoint, key, dst); err != nil {
			l.logger.Debug().Err(err).Str("fetch", name).Msg("Non-critical fetch degraded to empty")
		}
		return nil
	}
}

// fetchInto GETs an endpoint, unwraps the response envelope, and decodes the
// normalized payload into dst.
func (l *Loader) fetchInto(ctx context.Context, endpoint, key string, dst any) error {
	raw, err := l.backend.Call(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	list, err := decodeList(raw, key)
	if err != nil {
		return err
	}

	return normalize.Into(list, dst)
}

// decodeList extracts the named collection from a response envelope like
// {"resources": [...]}, accepting a bare JSON array as well.
func decodeList(raw json.RawMessage, key string) ([]any, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if inner, ok := envelope[key]; ok {
			raw = inner
		}
	}

	var list []any
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// partitionPosts splits community posts into the generic discussion feed and
// the announcements feed. Announcements never show up in discussion lists,
// and the split happens here once so role-scoped views separate the two
// without re-fetching.
func partitionPosts(posts []models.CommunityPost) (discussions, notifications []models.CommunityPost) {
	for _, p := range posts {
		if p.IsAnnouncement() {
			notifications = append(notifications, p)
		} else {
			discussions = append(discussions, p)
		}
	}
	return discussions, notifications
}
