package views

import (
	"github.com/campuslink/portal/internal/app/models/dto"
	"github.com/campuslink/portal/internal/app/state"
)

// LostFoundFilters are the lost & found section's tab plus search box
type LostFoundFilters struct {
	Tab   string // all | lost | found; empty behaves as all
	Query string // Searched across item name, location and description
}

// LostFound computes the lost & found list. The search term matches any of
// the three text fields, case-insensitively.
func (e *Engine) LostFound(f LostFoundFilters) dto.LostFoundView {
	snap := e.store.Snapshot()
	justAdded := e.store.TakeLastAdded(state.CollectionLostFound)

	var rows []dto.LostFoundRow
	for _, post := range snap.LostFoundItems {
		if f.Tab != "" && f.Tab != "all" && string(post.Type) != f.Tab {
			continue
		}
		if f.Query != "" &&
			!containsFold(post.ItemName, f.Query) &&
			!containsFold(post.Location, f.Query) &&
			!containsFold(post.Description, f.Query) {
			continue
		}

		rows = append(rows, dto.LostFoundRow{
			ID:          post.ID,
			Type:        string(post.Type),
			ItemName:    post.ItemName,
			Description: post.Description,
			Location:    post.Location,
			Contact:     post.Contact,
			Image:       post.Image,
			PostedBy:    post.PostedBy.Display(),
			CreatedAt:   formatDate(post.CreatedAt),
			JustAdded:   post.ID == justAdded,
		})
	}

	view := dto.LostFoundView{Rows: rows}
	if len(rows) == 0 {
		view.Empty = "No lost or found items reported."
	}
	return view
}
