package views

import (
	"github.com/campuslink/portal/internal/app/auth"
	"github.com/campuslink/portal/internal/app/models"
	"github.com/campuslink/portal/internal/app/models/dto"
)

// Stats computes the dashboard counters for the viewer's role. A load
// finishing is what makes these numbers current; they are derived, never
// stored.
func (e *Engine) Stats() dto.StatsView {
	user := e.store.CurrentUser()
	if user == nil {
		return dto.StatsView{}
	}

	snap := e.store.Snapshot()
	role := auth.NormalizeRole(user.Role)
	view := dto.StatsView{Role: string(role)}

	switch role {
	case models.RoleStudent:
		myUploads := 0
		for _, r := range snap.Resources {
			if r.UploadedBy.ID == user.ID {
				myUploads++
			}
		}
		view.Student = &dto.StudentStats{
			Resources:  len(snap.Resources),
			MyUploads:  myUploads,
			Events:     len(snap.Events),
			Wishlisted: len(snap.Wishlist),
		}

	case models.RoleFaculty:
		pending, verified := 0, 0
		for _, r := range snap.Resources {
			if r.PendingVerification() {
				pending++
			}
			if r.Status == models.StatusVerified {
				verified++
			}
		}
		view.Faculty = &dto.FacultyStats{
			Resources:       len(snap.Resources),
			PendingVerify:   pending,
			MyVerifications: verified,
		}

	case models.RoleOrganizer:
		myEvents, myAnnouncements := 0, 0
		for _, ev := range snap.Events {
			if ev.Organizer.ID == user.ID {
				myEvents++
			}
		}
		for _, p := range snap.Notifications {
			if p.PostedBy.ID == user.ID {
				myAnnouncements++
			}
		}
		view.Organizer = &dto.OrganizerStats{
			MyEvents:      myEvents,
			Announcements: myAnnouncements,
		}

	case models.RoleAdmin:
		banned := 0
		for _, u := range snap.Users {
			if u.Banned {
				banned++
			}
		}
		view.Admin = &dto.AdminStats{
			Users:           len(snap.Users),
			Banned:          banned,
			PendingRequests: len(snap.OrganizerRequests),
			Resources:       len(snap.Resources),
			Events:          len(snap.Events),
		}
	}

	return view
}
