package views

import (
	"fmt"
	"strings"

	"github.com/campuslink/portal/internal/app/auth"
	"github.com/campuslink/portal/internal/app/models"
	"github.com/campuslink/portal/internal/app/models/dto"
)

// AdminUserFilters are the admin user list's search box and role selector
type AdminUserFilters struct {
	Query string // Matches full name or registration number
	Role  string
}

// AdminUsers computes the filtered admin user management list
func (e *Engine) AdminUsers(f AdminUserFilters) dto.AdminUserListView {
	snap := e.store.Snapshot()

	roleFilter := auth.NormalizeRole(models.Role(strings.ToLower(f.Role)))

	var rows []dto.AdminUserRow
	for _, u := range snap.Users {
		if f.Query != "" &&
			!containsFold(u.FullName, f.Query) &&
			!containsFold(u.RegisteredID, f.Query) {
			continue
		}
		if f.Role != "" && auth.NormalizeRole(u.Role) != roleFilter {
			continue
		}

		rows = append(rows, dto.AdminUserRow{
			ID:           u.ID,
			FullName:     u.FullName,
			RegisteredID: u.RegisteredID,
			Role:         string(u.Role),
			Banned:       u.Banned,
		})
	}

	view := dto.AdminUserListView{Rows: rows}
	if len(rows) == 0 {
		view.Empty = "No users match filters."
	}
	return view
}

// OrganizerRequests computes the pending organizer approval queue
func (e *Engine) OrganizerRequests() dto.OrganizerRequestListView {
	snap := e.store.Snapshot()

	var rows []dto.OrganizerRequestRow
	for _, r := range snap.OrganizerRequests {
		rows = append(rows, dto.OrganizerRequestRow{
			ID:          r.ID,
			Name:        r.Name,
			RequestedBy: r.RequestedBy,
			Email:       r.Email,
		})
	}

	view := dto.OrganizerRequestListView{Rows: rows}
	if len(rows) == 0 {
		view.Empty = "No pending requests."
	}
	return view
}

// ModerationFilters are the moderation view's two mandatory selectors
type ModerationFilters struct {
	Role    string
	Section string
}

// Moderation computes the admin moderation view. Content renders only after
// both a role and a section are selected; until then the view shows a
// placeholder and zero rows, never an unscoped list.
func (e *Engine) Moderation(f ModerationFilters) dto.ModerationView {
	if f.Role == "" || f.Section == "" {
		return dto.ModerationView{
			Ready: false,
			Empty: "Select a role and section to review content.",
		}
	}

	snap := e.store.Snapshot()
	role := auth.NormalizeRole(models.Role(strings.ToLower(f.Role)))
	section := strings.ToLower(f.Section)

	var rows []dto.ModerationRow
	add := func(id, title string, author models.Author) {
		if title == "" {
			title = "Untitled"
		}
		rows = append(rows, dto.ModerationRow{
			ID:      id,
			Title:   title,
			Author:  author.Display(),
			Section: section,
		})
	}

	switch role {
	case models.RoleStudent:
		switch section {
		case "resources":
			for _, r := range snap.Resources {
				add(r.ID, r.Title, r.UploadedBy)
			}
		case "marketplace":
			for _, item := range snap.MarketplaceItems {
				if auth.NormalizeRole(item.PostedBy.Role) == models.RoleStudent {
					add(item.ID, item.Title, item.PostedBy)
				}
			}
		case "lostfound":
			for _, post := range snap.LostFoundItems {
				if auth.NormalizeRole(post.PostedBy.Role) == models.RoleStudent {
					add(post.ID, post.ItemName, post.PostedBy)
				}
			}
		case "community":
			for _, post := range snap.Discussions {
				if auth.NormalizeRole(post.PostedBy.Role) == models.RoleStudent {
					add(post.ID, post.Title, post.PostedBy)
				}
			}
		}

	case models.RoleFaculty:
		switch section {
		case "resources":
			for _, r := range snap.Resources {
				add(r.ID, r.Title, r.UploadedBy)
			}
		case "community":
			for _, post := range snap.Discussions {
				if auth.NormalizeRole(post.PostedBy.Role) == models.RoleFaculty {
					add(post.ID, post.Title, post.PostedBy)
				}
			}
		}

	case models.RoleOrganizer:
		switch section {
		case "announcements":
			for _, post := range snap.Notifications {
				if auth.NormalizeRole(post.PostedBy.Role) == models.RoleOrganizer {
					title := post.Title
					if title == "" {
						title = post.Content
					}
					add(post.ID, title, post.PostedBy)
				}
			}
		case "events":
			for _, ev := range snap.Events {
				if auth.NormalizeRole(ev.Organizer.Role) == models.RoleOrganizer {
					add(ev.ID, ev.Title, ev.Organizer)
				}
			}
		}
	}

	view := dto.ModerationView{Ready: true, Rows: rows}
	if len(rows) == 0 {
		view.Empty = fmt.Sprintf("No %s found.", section)
	}
	return view
}
