// Package auth makes permission decisions for user-triggered actions. All
// role checks live here, including the teacher/faculty naming alias and the
// admin override, so render and action code never compares role strings.
package auth

import (
	"github.com/campuslink/portal/internal/app/models"
)

// Action names a user-triggered operation subject to a permission decision
type Action string

const (
	ActionUploadResource     Action = "resource.upload"
	ActionVerifyResource     Action = "resource.verify"
	ActionDeleteResource     Action = "resource.delete"
	ActionPostItem           Action = "marketplace.post"
	ActionPurchaseItem       Action = "marketplace.purchase"
	ActionToggleSold         Action = "marketplace.toggleSold"
	ActionDeleteItem         Action = "marketplace.delete"
	ActionCreateEvent        Action = "event.create"
	ActionDeleteEvent        Action = "event.delete"
	ActionToggleRegistration Action = "event.toggleRegistration"
	ActionRegisterEvent      Action = "event.register"
	ActionPostDiscussion     Action = "community.post"
	ActionPostAnnouncement   Action = "community.announce"
	ActionDeletePost         Action = "community.delete"
	ActionPostLostFound      Action = "lostfound.post"
	ActionDeleteLostFound    Action = "lostfound.delete"
	ActionBanUser            Action = "admin.banUser"
	ActionDeleteUser         Action = "admin.deleteUser"
	ActionManageOrganizers   Action = "admin.manageOrganizers"
	ActionModerate           Action = "admin.moderate"
)

// Decision is an explicit permission result
type Decision struct {
	Allowed bool
	Reason  string
}

// Allow returns a positive decision
func Allow() Decision {
	return Decision{Allowed: true}
}

// Deny returns a negative decision with its reason
func Deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// NormalizeRole maps the UI-facing "teacher" alias onto the backend-facing
// "faculty" role. Every role comparison goes through this.
func NormalizeRole(role models.Role) models.Role {
	if role == models.RoleTeacher {
		return models.RoleFaculty
	}
	return role
}

// Can decides whether user may perform action on target. Target is the
// entity the action applies to when ownership or entity state matters;
// integrity rules on the target (sold items, closed registrations) hold
// even for admins.
func Can(user *models.Account, action Action, target any) Decision {
	if user == nil {
		return Deny("not logged in")
	}
	role := NormalizeRole(user.Role)
	admin := role == models.RoleAdmin

	switch action {
	case ActionUploadResource, ActionPostItem, ActionPostLostFound, ActionPostDiscussion:
		return Allow()

	case ActionVerifyResource:
		if admin || role == models.RoleFaculty {
			return Allow()
		}
		return Deny("only faculty can verify resources")

	case ActionDeleteResource:
		if admin || role == models.RoleFaculty {
			return Allow()
		}
		if r, ok := target.(models.Resource); ok && r.UploadedBy.ID == user.ID {
			return Allow()
		}
		return Deny("only the uploader, faculty or an admin can delete a resource")

	case ActionPurchaseItem:
		item, ok := target.(models.MarketplaceItem)
		if !ok {
			return Deny("no listing to purchase")
		}
		if item.Sold {
			return Deny("item has already been sold")
		}
		if item.PostedBy.ID == user.ID {
			return Deny("sellers cannot purchase their own listing")
		}
		return Allow()

	case ActionToggleSold:
		item, ok := target.(models.MarketplaceItem)
		if !ok {
			return Deny("no listing selected")
		}
		if admin || item.PostedBy.ID == user.ID {
			return Allow()
		}
		return Deny("only the seller can change listing status")

	case ActionDeleteItem:
		if item, ok := target.(models.MarketplaceItem); ok && (admin || item.PostedBy.ID == user.ID) {
			return Allow()
		}
		return Deny("only the seller or an admin can delete a listing")

	case ActionCreateEvent:
		if admin || role == models.RoleOrganizer {
			return Allow()
		}
		return Deny("only organizers can create events")

	case ActionDeleteEvent, ActionToggleRegistration:
		ev, ok := target.(models.Event)
		if !ok {
			return Deny("no event selected")
		}
		if admin {
			return Allow()
		}
		if role == models.RoleOrganizer && ev.Organizer.ID == user.ID {
			return Allow()
		}
		return Deny("only the organizer of this event or an admin can manage it")

	case ActionRegisterEvent:
		ev, ok := target.(models.Event)
		if !ok {
			return Deny("no event selected")
		}
		if ev.RegistrationClosed {
			return Deny("registrations are closed for this event")
		}
		if ev.Registered {
			return Deny("already registered for this event")
		}
		return Allow()

	case ActionPostAnnouncement:
		if admin || role == models.RoleOrganizer {
			return Allow()
		}
		return Deny("only organizers and admins can post announcements")

	case ActionDeletePost:
		if post, ok := target.(models.CommunityPost); ok && (admin || post.PostedBy.ID == user.ID) {
			return Allow()
		}
		return Deny("only the poster or an admin can delete a post")

	case ActionDeleteLostFound:
		if post, ok := target.(models.LostFoundPost); ok && (admin || post.PostedBy.ID == user.ID) {
			return Allow()
		}
		return Deny("only the poster or an admin can delete a report")

	case ActionBanUser, ActionDeleteUser, ActionManageOrganizers, ActionModerate:
		if admin {
			return Allow()
		}
		return Deny("admin only")
	}

	return Deny("unknown action")
}
