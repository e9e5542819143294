package views

import (
	"github.com/campuslink/portal/internal/app/models"
	"github.com/campuslink/portal/internal/app/models/dto"
	"github.com/campuslink/portal/internal/app/state"
)

// ResourceFilters are the resource section's current widget values. Empty
// values mean no constraint; active filters are ANDed.
type ResourceFilters struct {
	Branch   string
	Semester string
	Query    string // Case-insensitive title substring
}

func (f ResourceFilters) active() bool {
	return f.Branch != "" || f.Semester != "" || f.Query != ""
}

// Resources computes the filtered academic resources view
func (e *Engine) Resources(f ResourceFilters) dto.ResourceListView {
	snap := e.store.Snapshot()
	justAdded := e.store.TakeLastAdded(state.CollectionResources)

	saved := make(map[string]bool, len(snap.Wishlist))
	for _, id := range snap.Wishlist {
		saved[id] = true
	}

	var rows []dto.ResourceRow
	for _, r := range snap.Resources {
		if !equalsFold(r.Branch, f.Branch) {
			continue
		}
		if !equalsFold(r.Semester, f.Semester) {
			continue
		}
		if !containsFold(r.Title, f.Query) {
			continue
		}
		rows = append(rows, resourceRow(r, saved[r.ID], r.ID == justAdded))
	}

	view := dto.ResourceListView{Rows: rows}
	if len(rows) == 0 {
		if f.active() {
			view.Empty = "No resources match the selected filters."
		} else {
			view.Empty = "No resources yet. Be the first to upload!"
		}
	}
	return view
}

// Wishlist computes the saved-resources view for the current user
func (e *Engine) Wishlist() dto.ResourceListView {
	snap := e.store.Snapshot()

	saved := make(map[string]bool, len(snap.Wishlist))
	for _, id := range snap.Wishlist {
		saved[id] = true
	}

	var rows []dto.ResourceRow
	for _, r := range snap.Resources {
		if saved[r.ID] {
			rows = append(rows, resourceRow(r, true, false))
		}
	}

	view := dto.ResourceListView{Rows: rows}
	if len(rows) == 0 {
		view.Empty = "No saved resources yet."
	}
	return view
}

// PendingVerification computes the faculty verification queue: resources
// still pending and not yet verified. The badge count always equals the
// number of rows shown.
func (e *Engine) PendingVerification() dto.PendingVerificationView {
	snap := e.store.Snapshot()

	var rows []dto.ResourceRow
	for _, r := range snap.Resources {
		if r.PendingVerification() {
			rows = append(rows, resourceRow(r, false, false))
		}
	}

	view := dto.PendingVerificationView{Rows: rows, Count: len(rows)}
	if len(rows) == 0 {
		view.Empty = "No pending notes to verify."
	}
	return view
}

// resourceRow maps a Resource onto its row. A resource shows as verified
// only when its status says so; a pending record never renders verified.
func resourceRow(r models.Resource, wishlisted, justAdded bool) dto.ResourceRow {
	return dto.ResourceRow{
		ID:          r.ID,
		Title:       r.Title,
		Subject:     r.Subject,
		Branch:      r.Branch,
		Semester:    r.Semester,
		Description: r.Description,
		FileURL:     r.FileURL,
		FileName:    r.FileName,
		UploadedBy:  r.UploadedBy.Display(),
		UploadedAt:  formatDate(r.UploadedAt),
		Verified:    r.Status == models.StatusVerified,
		Status:      string(r.Status),
		Upvotes:     r.Upvotes,
		Downloads:   r.Downloads,
		Wishlisted:  wishlisted,
		JustAdded:   justAdded,
	}
}
