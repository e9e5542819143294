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

// PostLostFound files a lost or found report with its photo
func (s *Service) PostLostFound(ctx context.Context, req dto.PostLostFoundRequest) error {
	return s.submitGuarded(func() error {
		if err := requireFields(map[string]string{
			"type":     req.Type,
			"itemName": req.ItemName,
		}); err != nil {
			return err
		}
		if req.Type != string(models.TypeLost) && req.Type != string(models.TypeFound) {
			return apperrors.NewValidationError("type", "must be lost or found")
		}
		if req.Image == nil {
			return apperrors.NewValidationError("image", "an image must be selected")
		}

		payload, err := s.client.CallWithFormData(ctx, "/lostfound", map[string]string{
			"type":        req.Type,
			"itemName":    req.ItemName,
			"description": req.Description,
			"location":    req.Location,
			"contact":     req.Contact,
		}, []client.FilePart{{
			Field:    "image",
			FileName: req.Image.FileName,
			Content:  req.Image.Content,
		}})
		if err != nil {
			return err
		}

		if err := s.refresh(ctx); err != nil {
			return err
		}
		if id := createdID(payload, "post"); id != "" {
			s.store.MarkLastAdded(state.CollectionLostFound, id)
		}
		return nil
	})
}

// DeleteLostFound removes a report after confirmation
func (s *Service) DeleteLostFound(ctx context.Context, req dto.DeleteRequest) error {
	if err := confirmDelete(req); err != nil {
		return err
	}

	post, ok := s.findLostFound(req.ID)
	if !ok {
		return apperrors.ErrNotFound
	}
	if decision := auth.Can(s.store.CurrentUser(), auth.ActionDeleteLostFound, post); !decision.Allowed {
		return apperrors.ErrPermissionDenied
	}

	if _, err := s.client.Call(ctx, http.MethodDelete, fmt.Sprintf("/lostfound/%s", req.ID), nil); err != nil {
		return err
	}
	return s.refresh(ctx)
}

func (s *Service) findLostFound(id string) (models.LostFoundPost, bool) {
	for _, post := range s.store.Snapshot().LostFoundItems {
		if post.ID == id {
			return post, true
		}
	}
	return models.LostFoundPost{}, false
}
