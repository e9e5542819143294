package actions

import (
	"context"
	"fmt"
	"net/http"

	"github.com/campuslink/portal/internal/app/auth"
	"github.com/campuslink/portal/internal/app/client"
	"github.com/campuslink/portal/internal/app/models"
	"github.com/campuslink/portal/internal/app/models/dto"
	"github.com/campuslink/portal/internal/pkg/apperrors"
)

// CreateEvent publishes a campus event. Organizer only; a poster image must
// be selected before the network call.
func (s *Service) CreateEvent(ctx context.Context, req dto.CreateEventRequest) error {
	return s.submitGuarded(func() error {
		if decision := auth.Can(s.store.CurrentUser(), auth.ActionCreateEvent, nil); !decision.Allowed {
			return apperrors.ErrPermissionDenied
		}
		if err := requireFields(map[string]string{
			"title": req.Title,
			"date":  req.Date,
		}); err != nil {
			return err
		}
		if req.Poster == nil {
			return apperrors.NewValidationError("poster", "a poster image must be selected")
		}

		_, err := s.client.CallWithFormData(ctx, "/events", map[string]string{
			"title":       req.Title,
			"date":        req.Date,
			"venue":       req.Venue,
			"description": req.Description,
			"formLink":    req.FormLink,
		}, []client.FilePart{{
			Field:    "poster",
			FileName: req.Poster.FileName,
			Content:  req.Poster.Content,
		}})
		if err != nil {
			return err
		}
		return s.refresh(ctx)
	})
}

// RegisterForEvent registers the current user. Closed registrations and
// duplicates are rejected client-side.
func (s *Service) RegisterForEvent(ctx context.Context, eventID string) error {
	event, ok := s.findEvent(eventID)
	if !ok {
		return apperrors.ErrNotFound
	}
	if decision := auth.Can(s.store.CurrentUser(), auth.ActionRegisterEvent, event); !decision.Allowed {
		return apperrors.NewValidationError("", decision.Reason)
	}

	if _, err := s.client.Call(ctx, http.MethodPost, fmt.Sprintf("/events/%s/register", eventID), nil); err != nil {
		return err
	}
	return s.refresh(ctx)
}

// ToggleRegistration opens or closes registrations for an event the current
// user organizes.
func (s *Service) ToggleRegistration(ctx context.Context, eventID string) error {
	event, ok := s.findEvent(eventID)
	if !ok {
		return apperrors.ErrNotFound
	}
	if decision := auth.Can(s.store.CurrentUser(), auth.ActionToggleRegistration, event); !decision.Allowed {
		return apperrors.ErrPermissionDenied
	}

	if _, err := s.client.Call(ctx, http.MethodPost, fmt.Sprintf("/events/%s/close", eventID), nil); err != nil {
		return err
	}
	return s.refresh(ctx)
}

// DeleteEvent removes an event after confirmation. The follow-up refresh
// covers every view since the event disappears from the public grid and the
// organizer's own list at once.
func (s *Service) DeleteEvent(ctx context.Context, req dto.DeleteRequest) error {
	if err := confirmDelete(req); err != nil {
		return err
	}

	event, ok := s.findEvent(req.ID)
	if !ok {
		return apperrors.ErrNotFound
	}
	if decision := auth.Can(s.store.CurrentUser(), auth.ActionDeleteEvent, event); !decision.Allowed {
		return apperrors.ErrPermissionDenied
	}

	if _, err := s.client.Call(ctx, http.MethodDelete, fmt.Sprintf("/events/%s", req.ID), nil); err != nil {
		return err
	}
	return s.refresh(ctx)
}

func (s *Service) findEvent(id string) (models.Event, bool) {
	for _, ev := range s.store.Snapshot().Events {
		if ev.ID == id {
			return ev, true
		}
	}
	return models.Event{}, false
}
