package views

import (
	"github.com/campuslink/portal/internal/app/auth"
	"github.com/campuslink/portal/internal/app/models"
	"github.com/campuslink/portal/internal/app/models/dto"
)

// Events computes the public events grid. Registration is offered only when
// the event is open and the viewer has not registered yet.
func (e *Engine) Events() dto.EventListView {
	snap := e.store.Snapshot()
	user := e.store.CurrentUser()

	var rows []dto.EventRow
	for _, ev := range snap.Events {
		rows = append(rows, eventRow(ev, user))
	}

	view := dto.EventListView{Rows: rows}
	if len(rows) == 0 {
		view.Empty = "No upcoming events. Check back later!"
	}
	return view
}

// OrganizerEvents computes the organizer's own-events management view.
// Admins see every event.
func (e *Engine) OrganizerEvents() dto.EventListView {
	snap := e.store.Snapshot()
	user := e.store.CurrentUser()

	var rows []dto.EventRow
	for _, ev := range snap.Events {
		if !auth.Can(user, auth.ActionToggleRegistration, ev).Allowed {
			continue
		}
		rows = append(rows, eventRow(ev, user))
	}

	view := dto.EventListView{Rows: rows}
	if len(rows) == 0 {
		view.Empty = "No events yet. Create one!"
	}
	return view
}

func eventRow(ev models.Event, user *models.Account) dto.EventRow {
	return dto.EventRow{
		ID:          ev.ID,
		Title:       ev.Title,
		Date:        formatDate(ev.Date),
		Venue:       ev.Venue,
		Description: ev.Description,
		Image:       ev.Image,
		FormLink:    ev.FormLink,
		Organizer:   ev.Organizer.Display(),
		Closed:      ev.RegistrationClosed,
		Registered:  ev.Registered,
		CanRegister: auth.Can(user, auth.ActionRegisterEvent, ev).Allowed,
		CanManage:   auth.Can(user, auth.ActionToggleRegistration, ev).Allowed,
	}
}
