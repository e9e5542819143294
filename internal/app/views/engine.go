// Package views is the render engine: one function per portal section, each
// reading a Store snapshot plus the caller's current filter values and
// producing a view model. Functions are idempotent and safe to call for
// sections a role's page does not have; the presentation layer decides what
// to do with the result.
package views

import (
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/campuslink/portal/internal/app/state"
)

// Engine computes view models from the Store
type Engine struct {
	store  *state.Store
	logger zerolog.Logger
}

// NewEngine creates a render Engine over the Store
func NewEngine(store *state.Store, logger zerolog.Logger) *Engine {
	return &Engine{store: store, logger: logger}
}

// RenderAll is the loader's signal that every section may redraw. View
// models are computed on demand, so the signal only logs; pages pull the
// sections they actually show.
func (e *Engine) RenderAll() {
	e.logger.Debug().Msg("Render: all sections invalidated")
}

// RenderResources signals that the resources section may redraw
func (e *Engine) RenderResources() {
	e.logger.Debug().Msg("Render: resources invalidated")
}

// RenderWishlist signals that the wishlist section may redraw
func (e *Engine) RenderWishlist() {
	e.logger.Debug().Msg("Render: wishlist invalidated")
}

// containsFold reports whether s contains substr, case-insensitively. An
// empty needle matches everything, which is what an empty filter means.
func containsFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// equalsFold compares filter values the way the portal pages do: empty
// filter means no constraint.
func equalsFold(value, filter string) bool {
	if filter == "" {
		return true
	}
	return strings.EqualFold(value, filter)
}

// formatDate renders an ISO timestamp for display, passing through values
// the backend sends in a shape we do not recognize.
func formatDate(iso string) string {
	if iso == "" {
		return "-"
	}
	if t, err := time.Parse(time.RFC3339, iso); err == nil {
		return t.Format("Jan 2, 2006")
	}
	return iso
}
