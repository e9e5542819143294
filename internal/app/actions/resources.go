package actions

import (
	"context"
	"fmt"
	"net/http"

	"github.com/campuslink/portal/internal/app/auth"
	"github.com/campuslink/portal/internal/app/client"
	"github.com/campuslink/portal/internal/app/models"
	"github.com/campuslink/portal/internal/app/models/dto"
	"github.com/campuslink/portal/internal/app/state"
	"github.com/campuslink/portal/internal/pkg/apperrors"
)

// UploadResource submits a new academic resource with its file and then
// refreshes everything. The new record is flagged for one render.
func (s *Service) UploadResource(ctx context.Context, req dto.UploadResourceRequest) error {
	return s.submitGuarded(func() error {
		if err := requireFields(map[string]string{
			"title":   req.Title,
			"subject": req.Subject,
		}); err != nil {
			return err
		}
		if req.File == nil {
			return apperrors.NewValidationError("file", "a file must be selected")
		}

		payload, err := s.client.CallWithFormData(ctx, "/resources", map[string]string{
			"title":       req.Title,
			"subject":     req.Subject,
			"branch":      req.Branch,
			"semester":    req.Semester,
			"description": req.Description,
		}, []client.FilePart{{
			Field:    "file",
			FileName: req.File.FileName,
			Content:  req.File.Content,
		}})
		if err != nil {
			return err
		}

		if err := s.refresh(ctx); err != nil {
			return err
		}
		if id := createdID(payload, "resource"); id != "" {
			s.store.MarkLastAdded(state.CollectionResources, id)
		}
		return nil
	})
}

// UpvoteResource casts an upvote and refreshes. The displayed count always
// reflects the post-refresh server value; nothing is incremented locally.
func (s *Service) UpvoteResource(ctx context.Context, resourceID string) error {
	if _, err := s.client.Call(ctx, http.MethodPost, fmt.Sprintf("/resources/%s/upvote", resourceID), nil); err != nil {
		return err
	}
	return s.refresh(ctx)
}

// DownloadResource records a download server-side and returns the file URL
// for the page to open.
func (s *Service) DownloadResource(ctx context.Context, resourceID string) (string, error) {
	resource, ok := s.findResource(resourceID)
	if !ok {
		return "", apperrors.ErrNotFound
	}

	if _, err := s.client.Call(ctx, http.MethodPost, fmt.Sprintf("/resources/%s/download", resourceID), nil); err != nil {
		return "", err
	}
	if err := s.refresh(ctx); err != nil {
		return "", err
	}
	return resource.FileURL, nil
}

// VerifyResource marks a pending resource verified. Faculty only.
func (s *Service) VerifyResource(ctx context.Context, resourceID string) error {
	if decision := auth.Can(s.store.CurrentUser(), auth.ActionVerifyResource, nil); !decision.Allowed {
		return apperrors.NewValidationError("", decision.Reason)
	}

	if _, err := s.client.Call(ctx, http.MethodPost, fmt.Sprintf("/resources/%s/verify", resourceID), nil); err != nil {
		return err
	}
	return s.refresh(ctx)
}

// DeleteResource removes a resource after confirmation, then refreshes all
// state since deletions cascade across views.
func (s *Service) DeleteResource(ctx context.Context, req dto.DeleteRequest) error {
	if err := confirmDelete(req); err != nil {
		return err
	}

	resource, ok := s.findResource(req.ID)
	if !ok {
		return apperrors.ErrNotFound
	}
	if decision := auth.Can(s.store.CurrentUser(), auth.ActionDeleteResource, resource); !decision.Allowed {
		return apperrors.ErrPermissionDenied
	}

	if _, err := s.client.Call(ctx, http.MethodDelete, fmt.Sprintf("/resources/%s", req.ID), nil); err != nil {
		return err
	}
	return s.refresh(ctx)
}

func (s *Service) findResource(id string) (models.Resource, bool) {
	for _, r := range s.store.Snapshot().Resources {
		if r.ID == id {
			return r, true
		}
	}
	return models.Resource{}, false
}
