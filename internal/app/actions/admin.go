package actions

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/campuslink/portal/internal/app/auth"
	"github.com/campuslink/portal/internal/app/models"
	"github.com/campuslink/portal/internal/app/models/dto"
	"github.com/campuslink/portal/internal/pkg/apperrors"
)

// ToggleBan bans or unbans a user. Admin only.
func (s *Service) ToggleBan(ctx context.Context, userID string) error {
	if decision := auth.Can(s.store.CurrentUser(), auth.ActionBanUser, nil); !decision.Allowed {
		return apperrors.ErrPermissionDenied
	}

	if _, err := s.client.Call(ctx, http.MethodPost, fmt.Sprintf("/admin/users/%s/ban", userID), nil); err != nil {
		return err
	}
	return s.refresh(ctx)
}

// DeleteUser removes a user after confirmation. Admin only.
func (s *Service) DeleteUser(ctx context.Context, req dto.DeleteRequest) error {
	if err := confirmDelete(req); err != nil {
		return err
	}
	if decision := auth.Can(s.store.CurrentUser(), auth.ActionDeleteUser, nil); !decision.Allowed {
		return apperrors.ErrPermissionDenied
	}

	if _, err := s.client.Call(ctx, http.MethodDelete, fmt.Sprintf("/admin/users/%s", req.ID), nil); err != nil {
		return err
	}
	return s.refresh(ctx)
}

// SubmitOrganizerRequest queues a club's request for organizer rights. The
// queue is client-local until an admin decides.
func (s *Service) SubmitOrganizerRequest(name, requestedBy, email string) error {
	if err := requireFields(map[string]string{
		"name":  name,
		"email": email,
	}); err != nil {
		return err
	}

	s.store.AddOrganizerRequest(models.OrganizerRequest{
		ID:          uuid.NewString(),
		Name:        name,
		RequestedBy: requestedBy,
		Email:       email,
	})
	return nil
}

// ApproveOrganizer grants organizer rights, removes the request from the
// local queue, and refreshes. Admin only.
func (s *Service) ApproveOrganizer(ctx context.Context, requestID string) error {
	if decision := auth.Can(s.store.CurrentUser(), auth.ActionManageOrganizers, nil); !decision.Allowed {
		return apperrors.ErrPermissionDenied
	}

	if _, err := s.client.Call(ctx, http.MethodPost, fmt.Sprintf("/admin/organizer-requests/%s/approve", requestID), nil); err != nil {
		return err
	}

	s.store.RemoveOrganizerRequest(requestID)
	return s.refresh(ctx)
}

// RejectOrganizer declines a pending request and drops it from the local
// queue. Admin only.
func (s *Service) RejectOrganizer(ctx context.Context, requestID string) error {
	if decision := auth.Can(s.store.CurrentUser(), auth.ActionManageOrganizers, nil); !decision.Allowed {
		return apperrors.ErrPermissionDenied
	}

	if _, err := s.client.Call(ctx, http.MethodPost, fmt.Sprintf("/admin/organizer-requests/%s/reject", requestID), nil); err != nil {
		return err
	}

	s.store.RemoveOrganizerRequest(requestID)
	return s.refresh(ctx)
}
